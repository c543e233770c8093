package main

import (
	"context"
	"os"

	"github.com/pseudomuto/sqlfmt/pkg/cmd"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Supply(
			os.Args,
			&cmd.IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr},
			&cmd.Version{Version: version, Commit: commit, Timestamp: date},
		),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		cmd.Module,
	).Run()
}
