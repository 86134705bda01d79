package netlist

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// netlistLexer defines the lexical structure of KiCad netlist exports, which
// are plain s-expressions: parentheses, quoted strings, and bare symbols.
var netlistLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments (from # to end of line)
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},

	// Parentheses
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// Quoted string literals with escape sequences
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},

	// Bare symbols: anything up to whitespace, parentheses, or a quote
	{Name: "Symbol", Pattern: `[^()"\s]+`},
})
