package netlist

import "strings"

// sexpNode is one parenthesized s-expression: a head symbol followed by a
// mix of atoms and nested nodes, e.g. (net (code "1") (name "/vdd") ...).
type sexpNode struct {
	Name   string       `parser:"LParen @(Symbol | String)"`
	Values []*sexpValue `parser:"@@* RParen"`
}

// sexpValue is a single element inside a node: either a nested node or an
// atom (bare symbol or quoted string).
type sexpValue struct {
	Node *sexpNode `parser:"  @@"`
	Atom *string   `parser:"| @(String | Symbol)"`
}

// child returns the first nested node with the given head symbol, or nil.
func (n *sexpNode) child(name string) *sexpNode {
	for _, v := range n.Values {
		if v.Node != nil && v.Node.Name == name {
			return v.Node
		}
	}
	return nil
}

// children returns all nested nodes with the given head symbol.
func (n *sexpNode) children(name string) []*sexpNode {
	var nodes []*sexpNode
	for _, v := range n.Values {
		if v.Node != nil && v.Node.Name == name {
			nodes = append(nodes, v.Node)
		}
	}
	return nodes
}

// atom returns the i-th atom of the node (nested nodes are skipped), or ""
// if there are fewer atoms.
func (n *sexpNode) atom(i int) string {
	for _, v := range n.Values {
		if v.Node != nil {
			continue
		}
		if i == 0 {
			return unquote(*v.Atom)
		}
		i--
	}
	return ""
}

// attr returns the first atom of the named child, the common
// (key "value") attribute shape, or "" when the child is absent.
func (n *sexpNode) attr(name string) string {
	child := n.child(name)
	if child == nil {
		return ""
	}
	return child.atom(0)
}

// unquote strips the surrounding quotes from a string token and resolves its
// escape sequences. Bare symbols pass through unchanged.
func unquote(token string) string {
	if len(token) < 2 || token[0] != '"' {
		return token
	}
	body := token[1 : len(token)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}
