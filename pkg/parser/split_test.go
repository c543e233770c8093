package parser_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "single statement without terminator",
			sql:  "select 1",
			want: []string{"select 1"},
		},
		{
			name: "whitespace after semicolon stays with the statement",
			sql:  "select 1;  \n select 2;",
			want: []string{"select 1;  \n ", "select 2;"},
		},
		{
			name: "line comment after semicolon stays with the statement",
			sql:  "select 1; -- one\nselect 2",
			want: []string{"select 1; -- one\n", "select 2"},
		},
		{
			name: "block comment starts the next statement",
			sql:  "select 1; /* two */ select 2",
			want: []string{"select 1; ", "/* two */ select 2"},
		},
		{
			name: "semicolon inside a string",
			sql:  "select ';'; select 2",
			want: []string{"select ';'; ", "select 2"},
		},
		{
			name: "empty statements",
			sql:  ";;",
			want: []string{";", ";"},
		},
		{
			name: "trailing whitespace only",
			sql:  "  \n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.sql)
			require.NoError(t, err)

			var got []string
			for _, stmt := range Split(tokens) {
				require.Equal(t, Statement, stmt.Kind)
				got = append(got, stmt.String())
			}
			require.Equal(t, tt.want, got)
		})
	}
}
