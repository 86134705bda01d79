package schematic

// Port is a single pin of a part: a physical terminal identifier (e.g. "1")
// paired with a logical signal name (e.g. "VCC").
type Port struct {
	TerminalIdentifier string
	Signal             string
}

// Part represents an electronic part, e.g. a resistor or an IC.
type Part struct {
	Name string

	// Ports keyed by terminal identifier. Two ports with the same terminal
	// identifier cannot coexist on one part.
	Ports map[string]*Port

	// DatasheetURL optionally points at the part's datasheet.
	DatasheetURL string

	// Metadata holds free-form key/value fields from the source design, e.g.
	// manufacturer part number, footprint, or sheet name.
	Metadata map[string]string
}

// Port returns the port with the given terminal identifier, if it exists.
func (p *Part) Port(terminalIdentifier string) (*Port, bool) {
	port, ok := p.Ports[terminalIdentifier]
	return port, ok
}

// PartBuilder assembles a Part. Name is required; ports and metadata are
// optional.
type PartBuilder struct {
	name         string
	nameSet      bool
	ports        map[string]*Port
	datasheetURL string
	metadata     map[string]string
}

// NewPartBuilder creates an empty part builder.
func NewPartBuilder() *PartBuilder {
	return &PartBuilder{
		ports:    make(map[string]*Port),
		metadata: make(map[string]string),
	}
}

// Name sets the part name.
func (b *PartBuilder) Name(name string) *PartBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// Port adds a port. A repeated terminal identifier replaces the earlier port.
func (b *PartBuilder) Port(terminalIdentifier, signal string) *PartBuilder {
	b.ports[terminalIdentifier] = &Port{
		TerminalIdentifier: terminalIdentifier,
		Signal:             signal,
	}
	return b
}

// DatasheetURL sets the datasheet reference.
func (b *PartBuilder) DatasheetURL(url string) *PartBuilder {
	b.datasheetURL = url
	return b
}

// Metadata adds a metadata key/value pair.
func (b *PartBuilder) Metadata(key, value string) *PartBuilder {
	b.metadata[key] = value
	return b
}

// Build constructs the part, failing with ErrUninitializedField if the name
// was never set.
func (b *PartBuilder) Build() (*Part, error) {
	if !b.nameSet {
		return nil, uninitialized("name")
	}
	return &Part{
		Name:         b.name,
		Ports:        b.ports,
		DatasheetURL: b.datasheetURL,
		Metadata:     b.metadata,
	}, nil
}
