// Package netlist parses KiCad netlist exports (.net files) and loads them
// into the schematic representation.
package netlist

// Netlist is the decoded contents of a KiCad netlist export: the library
// parts used by the design, the component instantiations, and the nets
// connecting their pins.
type Netlist struct {
	Version    string
	Design     Design
	LibParts   []LibPart
	Components []Component
	Nets       []Net
}

// Design carries the provenance block of the export.
type Design struct {
	Source string // Path of the schematic the netlist was exported from
	Date   string
	Tool   string // Generator, e.g. "Eeschema 8.0.4"
}

// LibPart is one library entry: a part definition with its pins and fields.
type LibPart struct {
	Lib         string
	Part        string
	Description string
	Fields      []Field
	Pins        []Pin
}

// Field is a named free-form value on a library part (e.g. "Footprint").
type Field struct {
	Name  string
	Value string
}

// Pin is one pin of a library part.
type Pin struct {
	Num  string // Physical pin number, e.g. "1"
	Name string // Logical pin name, e.g. "VCC" ("~" when unnamed)
	Type string // Electrical type, e.g. "passive"
}

// Component is one part instantiation in the design.
type Component struct {
	Ref        string // Reference designator, e.g. "R1"
	Value      string
	Libsource  Libsource
	Properties []Field
}

// Libsource identifies the library part a component instantiates.
type Libsource struct {
	Lib         string
	Part        string
	Description string
}

// Net is one electrical node: a name and the pins connected to it.
type Net struct {
	Code  string
	Name  string
	Nodes []Node
}

// Node is a single (component, pin) attachment on a net.
type Node struct {
	Ref         string
	Pin         string
	PinFunction string
	PinType     string
}
