// Package schematic holds the logical representation of an electrical design.
// It does not carry any visual information for layout or rendering, but is
// conducive to schematic type-checking and to generating artifacts such as
// netlists or atopile code.
//
// A schematic contains a library of Parts, each of which defines a specific
// electrical component (e.g. a resistor or an IC). Instances of these parts
// are represented as Components. The pins on parts are connected together via
// Nets.
package schematic

import (
	"errors"
	"fmt"
)

// Sentinel errors for the schematic error taxonomy. All operations wrap these
// with fmt.Errorf("%w: ...") so callers can classify failures with errors.Is.
var (
	// ErrNameExists is returned when registering a part, component, or net
	// under a name that is already taken in its namespace.
	ErrNameExists = errors.New("name already exists")

	// ErrNameNotFound is returned when a reference (net, component, or
	// terminal identifier) does not resolve.
	ErrNameNotFound = errors.New("name not found")

	// ErrUninitializedField is returned by builders when a required field was
	// never supplied.
	ErrUninitializedField = errors.New("uninitialized field")

	// ErrNameConflict is returned by Normalize when two distinct names
	// normalize to the same identifier.
	ErrNameConflict = errors.New("name conflict")

	// ErrInvalidName is returned by normalizers when a name has no usable
	// identifier form.
	ErrInvalidName = errors.New("invalid name")
)

// Schematic owns three disjoint namespaces: parts, components, and nets.
// Names are unique within each namespace at all times; registering a
// duplicate fails without mutating state.
type Schematic struct {
	// A part is an entry in the "library". It can be a concrete part (e.g.
	// "NRF52840-QIAA-R") or a generic one (e.g. "Capacitor"), with 0 or more
	// ports.
	partsByName map[string]*Part

	// A component is an instantiation of a part in the design. It holds a
	// reference to its part and any associated metadata.
	componentsByName map[string]*Component

	// A net is a set of connections between ports on components.
	netsByName map[string]*Net
}

// New creates an empty schematic.
func New() *Schematic {
	return &Schematic{
		partsByName:      make(map[string]*Part),
		componentsByName: make(map[string]*Component),
		netsByName:       make(map[string]*Net),
	}
}

// AddPart registers a part under its name. The returned pointer is shared
// with the schematic; components reference it directly.
func (s *Schematic) AddPart(part *Part) (*Part, error) {
	if _, ok := s.partsByName[part.Name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrNameExists, part.Name)
	}
	s.partsByName[part.Name] = part
	return part, nil
}

// AddComponent registers a component under its name.
func (s *Schematic) AddComponent(component *Component) (*Component, error) {
	if _, ok := s.componentsByName[component.Name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrNameExists, component.Name)
	}
	s.componentsByName[component.Name] = component
	return component, nil
}

// AddNet registers a net under its name.
func (s *Schematic) AddNet(net *Net) (*Net, error) {
	if _, ok := s.netsByName[net.Name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrNameExists, net.Name)
	}
	s.netsByName[net.Name] = net
	return net, nil
}

// Part looks up a part by name.
func (s *Schematic) Part(name string) (*Part, bool) {
	part, ok := s.partsByName[name]
	return part, ok
}

// Component looks up a component by name.
func (s *Schematic) Component(name string) (*Component, bool) {
	component, ok := s.componentsByName[name]
	return component, ok
}

// Net looks up a net by name.
func (s *Schematic) Net(name string) (*Net, bool) {
	net, ok := s.netsByName[name]
	return net, ok
}

// Parts returns all registered parts in no particular order. Callers that
// emit output must sort.
func (s *Schematic) Parts() []*Part {
	parts := make([]*Part, 0, len(s.partsByName))
	for _, part := range s.partsByName {
		parts = append(parts, part)
	}
	return parts
}

// Components returns all registered components in no particular order.
func (s *Schematic) Components() []*Component {
	components := make([]*Component, 0, len(s.componentsByName))
	for _, component := range s.componentsByName {
		components = append(components, component)
	}
	return components
}

// Nets returns all registered nets in no particular order.
func (s *Schematic) Nets() []*Net {
	nets := make([]*Net, 0, len(s.netsByName))
	for _, net := range s.netsByName {
		nets = append(nets, net)
	}
	return nets
}

// Connect attaches a component pin to a net. The port is resolved through the
// component's part by terminal identifier. Reconnecting an already-connected
// pair is a no-op; a missing net, component, or terminal identifier fails
// with ErrNameNotFound and leaves the schematic unchanged.
func (s *Schematic) Connect(netName, componentName, terminalIdentifier string) error {
	component, ok := s.componentsByName[componentName]
	if !ok {
		return fmt.Errorf("%w: component %s", ErrNameNotFound, componentName)
	}

	port, ok := component.Port(terminalIdentifier)
	if !ok {
		return fmt.Errorf("%w: terminal %s on part %s", ErrNameNotFound, terminalIdentifier, component.Part.Name)
	}

	net, ok := s.netsByName[netName]
	if !ok {
		return fmt.Errorf("%w: net %s", ErrNameNotFound, netName)
	}

	net.Connect(component, port)
	return nil
}
