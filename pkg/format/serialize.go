package format

import (
	"bytes"
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

const trailingSpace = " \t\f\v"

// serialize renders stmt with trailing whitespace removed from every line.
// String literals and quoted names are written verbatim, so whitespace and
// line breaks inside them survive.
func serialize(stmt *parser.Group) string {
	var buf []byte
	for _, leaf := range stmt.Leaves(nil) {
		if leaf.Type == parser.String || (leaf.Type == parser.Name && quoted(leaf.Value)) {
			buf = append(buf, leaf.Value...)
			continue
		}

		value := strings.ReplaceAll(leaf.Value, "\r\n", "\n")
		value = strings.ReplaceAll(value, "\r", "\n")
		for {
			i := strings.IndexByte(value, '\n')
			if i < 0 {
				buf = append(buf, value...)
				break
			}

			buf = append(bytes.TrimRight(append(buf, value[:i]...), trailingSpace), '\n')
			value = value[i+1:]
		}
	}

	return string(bytes.TrimRight(buf, trailingSpace))
}
