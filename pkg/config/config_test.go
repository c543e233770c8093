package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sqlfmt.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Empty input
		config, err = LoadConfig(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Invalid setting value
		config, err = LoadConfig(strings.NewReader("format:\n  keyword_case: shouty\n"))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "invalid format settings")

		// Valid YAML with no format section
		config, err = LoadConfig(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.NotNil(t, config)
		require.Empty(t, config.Format)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sqlfmt.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))

		config, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Nonexistent file
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")

		// Directory instead of file
		config, err = LoadConfigFile(t.TempDir())
		require.Error(t, err)
		require.Nil(t, config)
		// Error message can vary by system, so check for either possibility
		require.True(t, strings.Contains(err.Error(), "failed to open file") ||
			strings.Contains(err.Error(), "failed to unmarshal config"))
	})
}

func TestConfig_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqlfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))

	config := &Config{}
	require.NoError(t, config.Load(path))
	validateTestConfig(t, config)

	require.Error(t, config.Load(filepath.Join(t.TempDir(), "missing.yaml")))
	validateTestConfig(t, config)
}

func TestConfig_Apply(t *testing.T) {
	base := format.Settings{"keyword_case": "upper", "reindent": true, "wrap_after": 80}

	t.Run("nil config", func(t *testing.T) {
		var config *Config
		require.Equal(t, base, config.Apply(base))
	})

	t.Run("empty config", func(t *testing.T) {
		require.Equal(t, base, (&Config{}).Apply(base))
	})

	t.Run("overrides", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)

		require.Equal(t, format.Settings{
			"keyword_case": "lower",
			"reindent":     true,
			"indent_width": 2,
			"wrap_after":   60,
		}, config.Apply(base))
		require.Equal(t, "upper", base["keyword_case"])
	})
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, format.Settings{
		"keyword_case": "lower",
		"indent_width": 2,
		"wrap_after":   60,
	}, config.Format)
}
