package format_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestSettings_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := Settings{}.Options()
		require.NoError(t, err)
		require.Equal(t, DefaultOptions(), opts)
	})

	t.Run("reindent settings", func(t *testing.T) {
		opts, err := Settings{
			"keyword_case":     "upper",
			"indentifier_case": "lower",
			"reindent":         true,
			"reindent_aligned": false,
			"indent_width":     4,
			"output_format":    "sql",
			"wrap_after":       80,
		}.Options()
		require.NoError(t, err)

		want := Options{
			KeywordCase:     CaseUpper,
			StripWhitespace: true,
			Reindent:        true,
			IndentWidth:     4,
			IndentChar:      " ",
			WrapAfter:       80,
			OutputFormat:    OutputSQL,
		}
		if diff := cmp.Diff(want, opts); diff != "" {
			t.Errorf("Options() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("numbers decoded from yaml or json", func(t *testing.T) {
		opts, err := Settings{"indent_width": float64(2), "wrap_after": uint64(40)}.Options()
		require.NoError(t, err)
		require.Equal(t, 2, opts.IndentWidth)
		require.Equal(t, 40, opts.WrapAfter)
	})

	t.Run("large unsigned values", func(t *testing.T) {
		opts, err := Settings{"wrap_after": uint64(math.MaxInt32) + 1}.Options()
		require.NoError(t, err)
		require.Equal(t, math.MaxInt32+1, opts.WrapAfter)

		_, err = Settings{"wrap_after": uint64(math.MaxUint64)}.Options()
		require.EqualError(t, err, "wrap_after requires an integer, got 18446744073709551615")
	})

	t.Run("nil values keep defaults", func(t *testing.T) {
		opts, err := Settings{"indent_width": nil}.Options()
		require.NoError(t, err)
		require.Equal(t, 2, opts.IndentWidth)
	})

	t.Run("tabs", func(t *testing.T) {
		opts, err := Settings{"indent_tabs": true}.Options()
		require.NoError(t, err)
		require.Equal(t, "\t", opts.IndentChar)
	})
}

func TestSettings_Options_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		err      string
	}{
		{"bad case", Settings{"keyword_case": "shouty"}, `invalid value for keyword_case: "shouty"`},
		{"case not a string", Settings{"identifier_case": 1}, "invalid value for identifier_case: 1"},
		{"bool not a bool", Settings{"reindent": "yes"}, "invalid value for reindent: yes"},
		{"aligned", Settings{"reindent_aligned": true}, "reindent_aligned is not supported"},
		{"zero indent", Settings{"indent_width": 0}, "indent_width requires a positive integer"},
		{"fractional indent", Settings{"indent_width": 1.5}, "indent_width requires an integer, got 1.5"},
		{"negative wrap", Settings{"wrap_after": -1}, "wrap_after requires a positive integer"},
		{"python output", Settings{"output_format": "python"}, `output_format "python" is not supported`},
		{"unknown output", Settings{"output_format": "xml"}, `invalid value for output_format: "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.settings.Options()
			require.EqualError(t, err, tt.err)
		})
	}
}

func TestSettings_With(t *testing.T) {
	base := Settings{"keyword_case": "upper", "reindent": true}
	merged := base.With(Settings{"keyword_case": "lower", "wrap_after": 40})

	require.Equal(t, Settings{"keyword_case": "lower", "reindent": true, "wrap_after": 40}, merged)
	require.Equal(t, "upper", base["keyword_case"], "base settings are not modified")
}

func TestCase_Apply(t *testing.T) {
	require.Equal(t, "SELECT", CaseUpper.Apply("select"))
	require.Equal(t, "select", CaseLower.Apply("SELECT"))
	require.Equal(t, "Select", CaseCapitalize.Apply("sELECT"))
	require.Equal(t, "", CaseCapitalize.Apply(""))
	require.Equal(t, "As Is", Case("").Apply("As Is"))
}
