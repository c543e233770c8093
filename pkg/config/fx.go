package config

import (
	"go.uber.org/fx"
)

// Module provides an empty *Config shared by every command. Commands load
// the file named by their --config flag into it before running, so nothing
// is read from disk unless a file was asked for.
var Module = fx.Module("config", fx.Provide(
	func() *Config {
		return &Config{}
	},
))
