// Package parser provides a lenient, participle-lexer based tokenizer and
// grouper for generic SQL.
//
// Unlike a grammar driven parser it never rejects a statement for being
// syntactically unusual. Text is split into classified tokens, the tokens are
// split into statements at semicolons and each statement is grouped into a
// shallow tree that formatting filters can walk and rewrite:
//
//   - Parenthesis: a bracketed run, including the brackets
//   - Case: CASE ... END
//   - Function: a name immediately followed by a parenthesis
//   - Where: WHERE up to ORDER BY, GROUP BY, LIMIT, UNION and friends
//   - Values: VALUES followed by its comma separated rows
//   - Identifier: qualified names, expressions, aliases and sort directions
//   - IdentifierList: comma separated identifiers
//
// Basic usage:
//
//	stmts, err := parser.ParseString("select a, b as c from t where a = 1")
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(stmts[0].String()) // the tree always round-trips its input
//
// Every byte of the input is kept in some token, so String on a statement
// returns the exact text it was parsed from until a filter changes it.
// Characters no lexer rule accepts become Unrecognized tokens; only input that
// is not valid UTF-8 fails to lex.
package parser
