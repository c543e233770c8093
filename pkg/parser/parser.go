package parser

import (
	"io"

	"github.com/pkg/errors"
)

// Parse reads all of reader and parses it with ParseString.
func Parse(reader io.Reader) ([]*Group, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL")
	}

	return ParseString(string(data))
}

// ParseString lexes sql, splits it into statements and groups each statement
// into a token tree.
//
// Example usage:
//
//	stmts, err := parser.ParseString("select a, b from t where a = 1; select 2")
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, stmt := range stmts {
//		for _, sub := range stmt.Sublists() {
//			fmt.Printf("%s: %q\n", sub.Kind, sub.String())
//		}
//	}
//
// Parsing is lenient: anything the lexer accepts produces a tree, with
// unbalanced brackets left as plain tokens. Only input the lexer rejects
// returns an error.
func ParseString(sql string) ([]*Group, error) {
	tokens, err := Lex(sql)
	if err != nil {
		return nil, err
	}

	stmts := Split(tokens)
	for _, stmt := range stmts {
		Build(stmt)
	}

	return stmts, nil
}
