package schematic

// NetType classifies a net. The classification is informational only; it has
// no effect on project building or emission.
type NetType int

const (
	NetTypeUnknown NetType = iota
	NetTypePower
	NetTypeGround
	NetTypeDigital
	NetTypeAnalog
)

// String returns the human-readable net type name.
func (t NetType) String() string {
	switch t {
	case NetTypePower:
		return "power"
	case NetTypeGround:
		return "ground"
	case NetTypeDigital:
		return "digital"
	case NetTypeAnalog:
		return "analog"
	default:
		return "unknown"
	}
}

// Connection is one (component, port) pair attached to a net.
type Connection struct {
	Component *Component
	Port      *Port
}

// Net is a named equipotential set of connections between component ports.
type Net struct {
	Name        string
	Type        NetType
	Connections []Connection
}

// Connect adds a (component, port) pair to the net. Pairs are unique; adding
// an existing pair is a no-op.
func (n *Net) Connect(component *Component, port *Port) {
	for _, conn := range n.Connections {
		if conn.Component == component && conn.Port == port {
			return
		}
	}
	n.Connections = append(n.Connections, Connection{Component: component, Port: port})
}

// NetBuilder assembles a Net. Name is required; the type defaults to
// NetTypeUnknown.
type NetBuilder struct {
	name    string
	nameSet bool
	netType NetType
}

// NewNetBuilder creates an empty net builder.
func NewNetBuilder() *NetBuilder {
	return &NetBuilder{}
}

// Name sets the net name.
func (b *NetBuilder) Name(name string) *NetBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// Type sets the net type.
func (b *NetBuilder) Type(t NetType) *NetBuilder {
	b.netType = t
	return b
}

// Build constructs the net, failing with ErrUninitializedField if the name
// was never set.
func (b *NetBuilder) Build() (*Net, error) {
	if !b.nameSet {
		return nil, uninitialized("name")
	}
	return &Net{Name: b.name, Type: b.netType}, nil
}
