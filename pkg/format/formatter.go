package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
	"github.com/sirupsen/logrus"
)

// Formatter formats SQL text with a fixed set of validated options.
type Formatter struct {
	options Options
}

// New creates a Formatter using options.
func New(options Options) *Formatter {
	if options.IndentWidth < 1 {
		options.IndentWidth = DefaultOptions().IndentWidth
	}
	if options.IndentChar == "" {
		options.IndentChar = " "
	}
	return &Formatter{options: options}
}

// Format writes the formatted form of sql to w.
//
// The text is lexed, case conversion and comment stripping are applied to the
// raw tokens, and the tokens are split into statements. When any layout
// option is enabled each statement is then grouped and run through operator
// spacing, whitespace stripping and reindenting, in that order. Every
// statement is serialized with trailing line whitespace removed.
func (f *Formatter) Format(w io.Writer, sql string) error {
	tokens, err := parser.Lex(sql)
	if err != nil {
		return err
	}

	applyCase(tokens, f.options)
	if f.options.StripComments {
		stripComments(tokens)
	}

	stmts := parser.Split(tokens)
	logrus.WithField("statements", len(stmts)).Debug("formatting SQL")

	r := newReindenter(f.options)
	for _, stmt := range stmts {
		if f.options.grouping() {
			parser.Build(stmt)
			if f.options.SpaceAroundOperators {
				spaceOperators(stmt)
			}
			if f.options.StripWhitespace {
				stripWhitespace(stmt, 0)
			}
			if f.options.Reindent {
				r.Process(stmt)
			}
		}

		if _, err := io.WriteString(w, serialize(stmt)); err != nil {
			return errors.Wrap(err, "failed to write formatted SQL")
		}
	}

	return nil
}

// Format formats sql according to settings and returns the result.
//
// Example:
//
//	out, err := format.Format("select a,b from t where a=1", format.Settings{
//		"keyword_case": "upper",
//		"reindent":     true,
//		"indent_width": 4,
//	})
//	// out == "SELECT a,b\nFROM t\nWHERE a=1"
func Format(sql string, settings Settings) (string, error) {
	opts, err := settings.Options()
	if err != nil {
		return "", errors.Wrap(err, "invalid formatting options")
	}

	var sb strings.Builder
	if err := New(opts).Format(&sb, sql); err != nil {
		return "", err
	}
	return sb.String(), nil
}
