package format

import (
	"regexp"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

var trailingBreak = regexp.MustCompile(`([\r\n]+) *$`)

// applyCase converts keywords and unquoted names according to the options.
func applyCase(tokens []*parser.Token, opts Options) {
	for _, t := range tokens {
		switch {
		case t.IsKeyword() && opts.KeywordCase != "":
			t.Value = opts.KeywordCase.Apply(t.Value)
		case (t.Type == parser.Name || t.Type == parser.Builtin) && opts.IdentifierCase != "" && !quoted(t.Value):
			t.Value = opts.IdentifierCase.Apply(t.Value)
		}
	}
}

func quoted(value string) bool {
	return value != "" && (value[0] == '"' || value[0] == '`')
}

// stripComments turns every comment into whitespace, keeping the line break a
// line comment ends with so the statement stays on separate lines.
func stripComments(tokens []*parser.Token) {
	for _, t := range tokens {
		if !t.IsComment() {
			continue
		}

		value := " "
		if m := trailingBreak.FindStringSubmatch(t.Value); m != nil {
			value = m[1]
		}

		t.Type = parser.Whitespace
		t.Value = value
	}
}

// spaceOperators makes sure binary operators and comparisons have exactly one
// space on each side. Type casts and unary signs are left alone.
func spaceOperators(g *parser.Group) {
	for _, sub := range g.Sublists() {
		spaceOperators(sub)
	}

	for i := 0; i < len(g.Nodes); i++ {
		t := parser.AsToken(g.Nodes[i])
		if t == nil || (t.Type != parser.Operator && t.Type != parser.Comparison) || t.Value == "::" {
			continue
		}
		if unary(g.Nodes, i) {
			continue
		}

		if i+1 < len(g.Nodes) && !parser.IsWhitespace(g.Nodes[i+1]) {
			g.Insert(i+1, parser.NewWhitespace(" "))
		}
		if i > 0 && !parser.IsWhitespace(g.Nodes[i-1]) {
			g.Insert(i, parser.NewWhitespace(" "))
			i++
		}
	}
}

// unary reports whether the sign at i has no left operand.
func unary(nodes []parser.Node, i int) bool {
	t := parser.AsToken(nodes[i])
	if t.Value != "-" && t.Value != "+" {
		return false
	}

	for j := i - 1; j >= 0; j-- {
		prev := parser.AsToken(nodes[j])
		if prev == nil {
			return false
		}
		if prev.IsWhitespace() || prev.IsComment() {
			continue
		}

		switch prev.Type {
		case parser.Operator, parser.Comparison, parser.Keyword, parser.DML, parser.DDL, parser.CTE:
			return true
		case parser.Punctuation:
			return prev.Value != ")"
		}
		return false
	}

	return true
}
