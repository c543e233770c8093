package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

// stripWhitespace collapses whitespace runs to a single space, drops
// whitespace at the start of every group and right inside brackets, and
// removes the trailing whitespace of the statement.
func stripWhitespace(g *parser.Group, depth int) {
	for _, sub := range g.Sublists() {
		stripWhitespace(sub, depth+1)
	}

	switch g.Kind {
	case parser.IdentifierList:
		for i := 1; i < len(g.Nodes); i++ {
			if isComma(g.Nodes[i]) && parser.IsWhitespace(g.Nodes[i-1]) {
				g.Remove(i - 1)
				i--
			}
		}
	case parser.Parenthesis:
		for len(g.Nodes) > 2 && parser.IsWhitespace(g.Nodes[1]) {
			g.Remove(1)
		}
		for len(g.Nodes) > 2 && parser.IsWhitespace(g.Nodes[len(g.Nodes)-2]) {
			g.Remove(len(g.Nodes) - 2)
		}
		if len(g.Nodes) > 2 {
			if sub := parser.AsGroup(g.Nodes[len(g.Nodes)-2]); sub != nil {
				trimTrailing(sub)
			}
		}
	}

	collapse(g)

	if n := len(g.Nodes); depth == 0 && n > 0 && parser.IsWhitespace(g.Nodes[n-1]) {
		g.Remove(n - 1)
	}
}

func collapse(g *parser.Group) {
	nodes := make([]parser.Node, 0, len(g.Nodes))
	lastWS, afterBreak := false, false

	for i, n := range g.Nodes {
		if t := parser.AsToken(n); t != nil && t.IsWhitespace() {
			if !lastWS && !afterBreak && i > 0 {
				t.Value = " "
				nodes = append(nodes, t)
			}
			lastWS = true
			continue
		}

		lastWS = false
		leaf := parser.LastLeaf(n)
		afterBreak = leaf != nil && strings.HasSuffix(leaf.Value, "\n")
		nodes = append(nodes, n)
	}

	g.Nodes = nodes
}

func trimTrailing(g *parser.Group) {
	for n := len(g.Nodes); n > 0 && parser.IsWhitespace(g.Nodes[n-1]); n = len(g.Nodes) {
		g.Remove(n - 1)
	}
}

func isComma(n parser.Node) bool {
	t := parser.AsToken(n)
	return t != nil && t.IsPunct(",")
}
