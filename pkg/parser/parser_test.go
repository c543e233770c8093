package parser_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sql := `select a, b from t where a = 1;
insert into t (a, b) values (1, 2), (3, 4);`

	result, err := Parse(strings.NewReader(sql))
	require.NoError(t, err)
	require.Len(t, result, 2)

	// statements keep the text they were parsed from
	require.Equal(t, "select a, b from t where a = 1;\n", result[0].String())
	require.Equal(t, "insert into t (a, b) values (1, 2), (3, 4);", result[1].String())

	kinds := func(g *Group) []GroupKind {
		var out []GroupKind
		for _, sub := range g.Sublists() {
			out = append(out, sub.Kind)
		}
		return out
	}

	require.Equal(t, []GroupKind{IdentifierList, Where}, kinds(result[0]))
	require.Equal(t, []GroupKind{Parenthesis, Values}, kinds(result[1]))
}

func TestParseString_Errors(t *testing.T) {
	_, err := ParseString("select \xff from t")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to lex SQL")
	require.Contains(t, err.Error(), "not valid UTF-8")
}

func TestParseString_Lenient(t *testing.T) {
	tests := []string{
		"",
		"   \n\t",
		"select (a from t",
		"select a) from t",
		"case when end end",
		"this is not sql at all",
		"select * from t where",
		"select 'abc",
		`select "abc`,
		"select a # b",
		"select $$never closed",
		"select {x} \\ 😀 from t",
	}

	for _, sql := range tests {
		t.Run(sql, func(t *testing.T) {
			stmts, err := ParseString(sql)
			require.NoError(t, err)

			var sb strings.Builder
			for _, stmt := range stmts {
				sb.WriteString(stmt.String())
			}
			if strings.TrimSpace(sql) == "" {
				require.Empty(t, stmts)
				return
			}
			require.Equal(t, sql, sb.String())
		})
	}
}
