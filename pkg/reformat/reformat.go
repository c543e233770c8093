// Package reformat implements the sqlfmt filter: read SQL, format it once with
// a fixed set of options and print the trimmed result.
package reformat

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/format"
)

type (
	// Formatter formats a complete SQL text according to settings.
	Formatter interface {
		Format(sql string, settings format.Settings) (string, error)
	}

	// FormatterFunc adapts a plain function to the Formatter interface.
	FormatterFunc func(sql string, settings format.Settings) (string, error)
)

// Format calls f.
func (f FormatterFunc) Format(sql string, settings format.Settings) (string, error) {
	return f(sql, settings)
}

// Default is the production formatter.
var Default Formatter = FormatterFunc(format.Format)

// Settings returns the fixed settings every reformat uses: upper case
// keywords, reindented with a width of 4, wrapped after 80 columns.
//
// The identifier case entry is spelled "indentifier_case" and is therefore
// ignored by the formatter; identifiers keep whatever case they were written
// in.
func Settings() format.Settings {
	return format.Settings{
		format.KeyKeywordCase:     "upper",
		"indentifier_case":        "lower",
		format.KeyReindent:        true,
		format.KeyReindentAligned: false,
		format.KeyIndentWidth:     4,
		format.KeyOutputFormat:    format.OutputSQL,
		format.KeyWrapAfter:       80,
	}
}

// Run reads all of r, formats it with a single call to f and writes the
// result to w with surrounding whitespace trimmed and one trailing newline.
//
// Nothing is written when reading or formatting fails. Empty input produces
// a lone newline.
func Run(r io.Reader, w io.Writer, f Formatter, settings format.Settings) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read SQL")
	}

	formatted, err := f.Format(string(data), settings)
	if err != nil {
		return errors.Wrap(err, "failed to format SQL")
	}

	if _, err := io.WriteString(w, strings.TrimSpace(formatted)+"\n"); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}

	return nil
}
