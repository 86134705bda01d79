package schematic

import "fmt"

func uninitialized(field string) error {
	return fmt.Errorf("%w: %s", ErrUninitializedField, field)
}

// Component is an instantiation of a part in the design, identified by its
// reference designator (e.g. "R1"). Many components may share one part.
type Component struct {
	Name string
	Part *Part

	// Metadata holds free-form key/value properties from the source design;
	// the "Sheetname" property drives hierarchical placement.
	Metadata map[string]string
}

// Port resolves a terminal identifier through the component's part.
func (c *Component) Port(terminalIdentifier string) (*Port, bool) {
	return c.Part.Port(terminalIdentifier)
}

// ComponentBuilder assembles a Component. Name and part are required.
type ComponentBuilder struct {
	name     string
	nameSet  bool
	part     *Part
	metadata map[string]string
}

// NewComponentBuilder creates an empty component builder.
func NewComponentBuilder() *ComponentBuilder {
	return &ComponentBuilder{
		metadata: make(map[string]string),
	}
}

// Name sets the component's reference designator.
func (b *ComponentBuilder) Name(name string) *ComponentBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// Part sets the part this component instantiates.
func (b *ComponentBuilder) Part(part *Part) *ComponentBuilder {
	b.part = part
	return b
}

// Metadata adds a metadata key/value pair.
func (b *ComponentBuilder) Metadata(key, value string) *ComponentBuilder {
	b.metadata[key] = value
	return b
}

// Build constructs the component, failing with ErrUninitializedField if the
// name or part was never set.
func (b *ComponentBuilder) Build() (*Component, error) {
	if !b.nameSet {
		return nil, uninitialized("name")
	}
	if b.part == nil {
		return nil, uninitialized("part")
	}
	return &Component{
		Name:     b.name,
		Part:     b.part,
		Metadata: b.metadata,
	}, nil
}
