package netlist

import (
	"fmt"

	"github.com/atogen/atogen/pkg/schematic"
)

// ToSchematic loads a decoded netlist into a fresh schematic: the standard
// library plus one part per libpart, one component per comp, and one
// connected net per net. A component referencing an unregistered part, or a
// net node referencing an unknown component or pin, fails with a descriptive
// not-found error.
func ToSchematic(nl *Netlist) (*schematic.Schematic, error) {
	sch := schematic.New()
	if err := sch.RegisterStandardLibrary(); err != nil {
		return nil, fmt.Errorf("failed to register standard library: %w", err)
	}

	// Register a part for each library part.
	for _, libpart := range nl.LibParts {
		builder := schematic.NewPartBuilder().Name(libpart.Part)
		for _, pin := range libpart.Pins {
			builder.Port(pin.Num, pin.Name)
		}
		for _, field := range libpart.Fields {
			builder.Metadata(field.Name, field.Value)
		}

		part, err := builder.Build()
		if err != nil {
			return nil, err
		}
		if _, err := sch.AddPart(part); err != nil {
			return nil, err
		}
	}

	// Register a component for each component in the netlist.
	for _, component := range nl.Components {
		part, ok := sch.Part(component.Libsource.Part)
		if !ok {
			return nil, fmt.Errorf("%w: part %s (referenced by %s)",
				schematic.ErrNameNotFound, component.Libsource.Part, component.Ref)
		}

		builder := schematic.NewComponentBuilder().
			Name(component.Ref).
			Part(part)
		for _, property := range component.Properties {
			builder.Metadata(property.Name, property.Value)
		}

		built, err := builder.Build()
		if err != nil {
			return nil, err
		}
		if _, err := sch.AddComponent(built); err != nil {
			return nil, err
		}
	}

	// Register a net for each net, and connect its nodes.
	for _, net := range nl.Nets {
		built, err := schematic.NewNetBuilder().Name(net.Name).Build()
		if err != nil {
			return nil, err
		}
		if _, err := sch.AddNet(built); err != nil {
			return nil, err
		}

		for _, node := range net.Nodes {
			if err := sch.Connect(net.Name, node.Ref, node.Pin); err != nil {
				return nil, fmt.Errorf("net %s: %w", net.Name, err)
			}
		}
	}

	return sch, nil
}
