package schematic

import "fmt"

// Normalizer maps raw design names onto valid target-language identifiers.
// Implementations must be pure: the same input always yields the same output.
// A name with no usable identifier form fails with an error wrapping
// ErrInvalidName.
type Normalizer interface {
	NormalizeComponentName(name string) (string, error)
	NormalizeNetName(name string) (string, error)
	NormalizePartName(name string) (string, error)

	// NormalizePortName derives a port's signal identifier from its logical
	// signal name, falling back to the physical pin name.
	NormalizePortName(pinName, signalName string) (string, error)
}

// buildRenameMap normalizes every name in one namespace, failing with
// ErrNameConflict if two distinct names collapse to the same identifier.
func buildRenameMap(names []string, normalize func(string) (string, error)) (map[string]string, error) {
	renamed := make(map[string]string, len(names))
	taken := make(map[string]struct{}, len(names))
	for _, name := range names {
		newName, err := normalize(name)
		if err != nil {
			return nil, err
		}
		if _, ok := taken[newName]; ok {
			return nil, fmt.Errorf("%w: %s", ErrNameConflict, newName)
		}
		taken[newName] = struct{}{}
		renamed[name] = newName
	}
	return renamed, nil
}

// Normalize rewrites every part, component, and net name (and every port
// signal) through the given normalizer. The pass is atomic over the whole
// graph: all rename maps are computed up front, and any failure (an invalid
// name or a post-normalization collision) aborts before anything is mutated.
// Partial normalization is never observable.
func (s *Schematic) Normalize(normalizer Normalizer) error {
	componentNames, err := buildRenameMap(mapKeys(s.componentsByName), normalizer.NormalizeComponentName)
	if err != nil {
		return err
	}

	netNames, err := buildRenameMap(mapKeys(s.netsByName), normalizer.NormalizeNetName)
	if err != nil {
		return err
	}

	partNames, err := buildRenameMap(mapKeys(s.partsByName), normalizer.NormalizePartName)
	if err != nil {
		return err
	}

	// For each part, compute the renamed signal for every port before
	// touching anything.
	portSignals := make(map[string]map[string]string, len(s.partsByName))
	for name, part := range s.partsByName {
		signals := make(map[string]string, len(part.Ports))
		for terminalIdentifier, port := range part.Ports {
			signal, err := normalizer.NormalizePortName(terminalIdentifier, port.Signal)
			if err != nil {
				return err
			}
			signals[terminalIdentifier] = signal
		}
		portSignals[name] = signals
	}

	// Everything normalized cleanly; apply the renames in place.
	components := make(map[string]*Component, len(s.componentsByName))
	for name, component := range s.componentsByName {
		component.Name = componentNames[name]
		components[component.Name] = component
	}
	s.componentsByName = components

	nets := make(map[string]*Net, len(s.netsByName))
	for name, net := range s.netsByName {
		net.Name = netNames[name]
		nets[net.Name] = net
	}
	s.netsByName = nets

	parts := make(map[string]*Part, len(s.partsByName))
	for name, part := range s.partsByName {
		for terminalIdentifier, port := range part.Ports {
			port.Signal = portSignals[name][terminalIdentifier]
		}
		part.Name = partNames[name]
		parts[part.Name] = part
	}
	s.partsByName = parts

	return nil
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
