package netlist

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses KiCad netlist export files.
type Parser struct {
	parser *participle.Parser[sexpNode]
}

// NewParser creates a new netlist parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[sexpNode](
		participle.Lexer(netlistLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a netlist from a reader.
func (p *Parser) Parse(r io.Reader) (*Netlist, error) {
	root, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return decode(root)
}

// ParseString parses a netlist from a string.
func (p *Parser) ParseString(input string) (*Netlist, error) {
	root, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return decode(root)
}

// ParseFile parses a netlist from a file path.
func (p *Parser) ParseFile(filename string) (*Netlist, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// ParseFile is a convenience wrapper constructing a parser and parsing one
// file.
func ParseFile(filename string) (*Netlist, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	return parser.ParseFile(filename)
}

// decode maps the raw s-expression tree onto the netlist records.
func decode(root *sexpNode) (*Netlist, error) {
	if root.Name != "export" {
		return nil, fmt.Errorf("not a KiCad netlist file: expected 'export', got '%s'", root.Name)
	}

	nl := &Netlist{
		Version: root.attr("version"),
	}

	if design := root.child("design"); design != nil {
		nl.Design = Design{
			Source: design.attr("source"),
			Date:   design.attr("date"),
			Tool:   design.attr("tool"),
		}
	}

	if libparts := root.child("libparts"); libparts != nil {
		for _, node := range libparts.children("libpart") {
			nl.LibParts = append(nl.LibParts, decodeLibPart(node))
		}
	}

	if components := root.child("components"); components != nil {
		for _, node := range components.children("comp") {
			nl.Components = append(nl.Components, decodeComponent(node))
		}
	}

	if nets := root.child("nets"); nets != nil {
		for _, node := range nets.children("net") {
			nl.Nets = append(nl.Nets, decodeNet(node))
		}
	}

	return nl, nil
}

func decodeLibPart(node *sexpNode) LibPart {
	libpart := LibPart{
		Lib:         node.attr("lib"),
		Part:        node.attr("part"),
		Description: node.attr("description"),
	}

	if fields := node.child("fields"); fields != nil {
		for _, field := range fields.children("field") {
			// Field values trail the (name ...) attribute:
			// (field (name "Footprint") "R_0805")
			libpart.Fields = append(libpart.Fields, Field{
				Name:  field.attr("name"),
				Value: field.atom(0),
			})
		}
	}

	if pins := node.child("pins"); pins != nil {
		for _, pin := range pins.children("pin") {
			libpart.Pins = append(libpart.Pins, Pin{
				Num:  pin.attr("num"),
				Name: pin.attr("name"),
				Type: pin.attr("type"),
			})
		}
	}

	return libpart
}

func decodeComponent(node *sexpNode) Component {
	component := Component{
		Ref:   node.attr("ref"),
		Value: node.attr("value"),
	}

	if libsource := node.child("libsource"); libsource != nil {
		component.Libsource = Libsource{
			Lib:         libsource.attr("lib"),
			Part:        libsource.attr("part"),
			Description: libsource.attr("description"),
		}
	}

	for _, property := range node.children("property") {
		component.Properties = append(component.Properties, Field{
			Name:  property.attr("name"),
			Value: property.attr("value"),
		})
	}

	return component
}

func decodeNet(node *sexpNode) Net {
	net := Net{
		Code: node.attr("code"),
		Name: node.attr("name"),
	}

	for _, n := range node.children("node") {
		net.Nodes = append(net.Nodes, Node{
			Ref:         n.attr("ref"),
			Pin:         n.attr("pin"),
			PinFunction: n.attr("pinfunction"),
			PinType:     n.attr("pintype"),
		})
	}

	return net
}
