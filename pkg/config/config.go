package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"gopkg.in/yaml.v3"
)

// Config is the optional sqlfmt configuration file.
type Config struct {
	// Format overrides individual formatting settings. Keys use the same names
	// as format.Settings, for example keyword_case or wrap_after.
	Format format.Settings `yaml:"format"`
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The settings are validated as they would be when formatting, so a bad
// value is reported when the file is loaded rather than on the first format.
//
// Example:
//
//	yamlData := `
//	format:
//	  keyword_case: lower
//	  wrap_after: 60
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	settings := cfg.Apply(reformat.Settings())
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if _, err := cfg.Format.Options(); err != nil {
		return nil, errors.Wrap(err, "invalid format settings")
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %s", path)
	}

	return cfg, nil
}

// Load replaces c with the configuration read from path.
func (c *Config) Load(path string) error {
	cfg, err := LoadConfigFile(path)
	if err != nil {
		return err
	}

	*c = *cfg
	return nil
}

// Apply returns base with the configured settings layered on top. A nil or
// empty config returns base unchanged.
func (c *Config) Apply(base format.Settings) format.Settings {
	if c == nil || len(c.Format) == 0 {
		return base
	}

	return base.With(c.Format)
}
