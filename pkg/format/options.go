package format

import (
	"maps"
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Recognized settings keys.
const (
	KeyKeywordCase          = "keyword_case"
	KeyIdentifierCase       = "identifier_case"
	KeyStripComments        = "strip_comments"
	KeyStripWhitespace      = "strip_whitespace"
	KeySpaceAroundOperators = "use_space_around_operators"
	KeyReindent             = "reindent"
	KeyReindentAligned      = "reindent_aligned"
	KeyIndentWidth          = "indent_width"
	KeyIndentTabs           = "indent_tabs"
	KeyWrapAfter            = "wrap_after"
	KeyOutputFormat         = "output_format"
)

// OutputSQL is the only supported output format: plain SQL text.
const OutputSQL = "sql"

type (
	// Settings are formatting options keyed by name, the way they are written
	// in configuration files. Unrecognized keys are ignored.
	Settings map[string]any

	// Case is a letter case conversion applied to keywords or identifiers.
	Case string

	// Options are validated formatting options.
	Options struct {
		// KeywordCase converts keywords when set
		KeywordCase Case
		// IdentifierCase converts unquoted names when set
		IdentifierCase Case
		// StripComments removes comments, keeping their line breaks
		StripComments bool
		// StripWhitespace collapses runs of whitespace to a single space
		StripWhitespace bool
		// SpaceAroundOperators puts one space on each side of binary operators
		SpaceAroundOperators bool
		// Reindent breaks statements into indented lines
		Reindent bool
		// IndentWidth is the number of IndentChar per indent level
		IndentWidth int
		// IndentChar is a space, or a tab when indent_tabs is set
		IndentChar string
		// WrapAfter is the column after which identifier lists wrap (0 = every item)
		WrapAfter int
		// OutputFormat is always OutputSQL
		OutputFormat string
	}
)

const (
	CaseUpper      Case = "upper"
	CaseLower      Case = "lower"
	CaseCapitalize Case = "capitalize"
)

// Apply converts s to the case.
func (c Case) Apply(s string) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	case CaseCapitalize:
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return s
		}
		return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
	default:
		return s
	}
}

// DefaultOptions returns the options used for empty settings.
func DefaultOptions() Options {
	return Options{
		IndentWidth:  2,
		IndentChar:   " ",
		OutputFormat: OutputSQL,
	}
}

// With returns a copy of s with overrides applied on top.
func (s Settings) With(overrides Settings) Settings {
	merged := make(Settings, len(s)+len(overrides))
	maps.Copy(merged, s)
	maps.Copy(merged, overrides)
	return merged
}

// Options validates the settings. A nil value leaves the option at its
// default. Keys that are not recognized are skipped and logged at debug level.
func (s Settings) Options() (Options, error) {
	opts := DefaultOptions()

	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := s[key]
		if value == nil {
			continue
		}

		var err error
		switch key {
		case KeyKeywordCase:
			opts.KeywordCase, err = caseValue(key, value)
		case KeyIdentifierCase:
			opts.IdentifierCase, err = caseValue(key, value)
		case KeyStripComments:
			opts.StripComments, err = boolValue(key, value)
		case KeyStripWhitespace:
			opts.StripWhitespace, err = boolValue(key, value)
		case KeySpaceAroundOperators:
			opts.SpaceAroundOperators, err = boolValue(key, value)
		case KeyReindent:
			opts.Reindent, err = boolValue(key, value)
		case KeyReindentAligned:
			var aligned bool
			if aligned, err = boolValue(key, value); err == nil && aligned {
				err = errors.Errorf("%s is not supported", key)
			}
		case KeyIndentWidth:
			if opts.IndentWidth, err = intValue(key, value); err == nil && opts.IndentWidth < 1 {
				err = errors.Errorf("%s requires a positive integer", key)
			}
		case KeyIndentTabs:
			var tabs bool
			if tabs, err = boolValue(key, value); err == nil && tabs {
				opts.IndentChar = "\t"
			}
		case KeyWrapAfter:
			if opts.WrapAfter, err = intValue(key, value); err == nil && opts.WrapAfter < 0 {
				err = errors.Errorf("%s requires a positive integer", key)
			}
		case KeyOutputFormat:
			opts.OutputFormat, err = outputValue(key, value)
		default:
			logrus.WithField("option", key).Debug("ignoring unrecognized formatting option")
		}

		if err != nil {
			return Options{}, err
		}
	}

	if opts.Reindent {
		opts.StripWhitespace = true
	}

	return opts, nil
}

// grouping reports whether any filter needs the token tree.
func (o Options) grouping() bool {
	return o.StripWhitespace || o.Reindent || o.SpaceAroundOperators
}

func caseValue(key string, value any) (Case, error) {
	str, ok := value.(string)
	if !ok {
		return "", errors.Errorf("invalid value for %s: %v", key, value)
	}

	switch c := Case(strings.ToLower(str)); c {
	case CaseUpper, CaseLower, CaseCapitalize:
		return c, nil
	}
	return "", errors.Errorf("invalid value for %s: %q", key, str)
}

func boolValue(key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, errors.Errorf("invalid value for %s: %v", key, value)
	}
	return b, nil
}

func intValue(key string, value any) (int, error) {
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		if n <= math.MaxInt {
			return int(n), nil
		}
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, errors.Errorf("%s requires an integer, got %v", key, value)
}

func outputValue(key string, value any) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", errors.Errorf("invalid value for %s: %v", key, value)
	}

	switch f := strings.ToLower(str); f {
	case OutputSQL:
		return f, nil
	case "python", "php":
		return "", errors.Errorf("%s %q is not supported", key, str)
	}
	return "", errors.Errorf("invalid value for %s: %q", key, str)
}
