package parser_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

// shape renders the group structure of n on one line. Groups print as
// Kind(children...), tokens print their value and whitespace is omitted.
func shape(n Node) string {
	if t := AsToken(n); t != nil {
		return t.Value
	}

	g := AsGroup(n)
	parts := make([]string, 0, len(g.Nodes))
	for _, c := range g.Nodes {
		if IsWhitespace(c) {
			continue
		}
		parts = append(parts, shape(c))
	}
	return g.Kind.String() + "(" + strings.Join(parts, " ") + ")"
}

// shapeTest defines a single grouping test case.
type shapeTest struct {
	name  string // Test name
	sql   string // Input SQL to parse
	shape string // Expected shape of the first statement
}

// runShapeTests parses each case and compares the shape of its first
// statement. It also checks that grouping kept every byte of the input.
func runShapeTests(t *testing.T, tests []shapeTest) {
	t.Helper()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmts, err := ParseString(tt.sql)
			require.NoError(t, err)
			require.NotEmpty(t, stmts)
			require.Equal(t, tt.shape, shape(stmts[0]))
			require.Equal(t, tt.sql, stmts[0].String())
		})
	}
}
