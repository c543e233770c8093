// Package format reformats SQL text for readability.
//
// Formatting is driven by a set of named options, the same names used in
// configuration files:
//
//   - keyword_case: "upper", "lower" or "capitalize" for keywords
//   - identifier_case: the same, for unquoted names
//   - strip_comments: remove comments
//   - strip_whitespace: collapse whitespace runs to one space
//   - use_space_around_operators: one space on each side of binary operators
//   - reindent: put clauses on their own lines and indent nested queries
//   - indent_width / indent_tabs: the indent unit
//   - wrap_after: the column after which identifier lists wrap
//   - output_format: only "sql" is supported
//
// Unknown option names are ignored.
//
// Usage:
//
//	// Functional API
//	out, err := format.Format(sql, format.Settings{"keyword_case": "upper", "reindent": true})
//
//	// Object-oriented API with validated options
//	opts, err := format.Settings{"reindent": true}.Options()
//	if err != nil {
//		return err
//	}
//
//	var buf bytes.Buffer
//	err = format.New(opts).Format(&buf, sql)
//
// Formatting never rejects SQL it does not understand. Anything the grouper
// cannot make sense of is passed through with only whitespace changes, and
// characters the lexer does not recognize are kept as they are. The only
// input error is text that is not valid UTF-8.
package format
