package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/reformat"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		App        *cli.Command
		Args       []string
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Logger     *logrus.Logger
		Shutdowner fx.Shutdowner
	}

	AppParams struct {
		fx.In

		Config  *config.Config
		IO      *IO
		Logger  *logrus.Logger
		Version *Version
	}

	// IO holds the streams the command reads SQL from and writes results and
	// diagnostics to.
	IO struct {
		In  io.Reader
		Out io.Writer
		Err io.Writer
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run executes the sqlfmt command once the fx application starts and shuts
// the application down with the command's exit status: 0 on success, 1 when
// the command fails. Failures are logged; nothing is written to the output.
//
// The command runs on its own goroutine so that waiting on standard input
// does not count against the application's start timeout.
func Run(p Params) {
	p.Lifecycle.Append(fx.StartHook(func() {
		go func() {
			code := 0
			if err := p.App.Run(p.Ctx, p.Args); err != nil {
				p.Logger.WithError(err).Error("sqlfmt failed")
				code = 1
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
		}()
	}))
}

// newApp creates the sqlfmt command.
//
// With no arguments it is a filter: SQL is read from standard input until
// end of stream, formatted in a single pass and printed with surrounding
// whitespace trimmed and one trailing newline.
//
// Global Flags:
//   - --config, -c: YAML file of formatting settings layered over the built-in ones
//   - --verbose, -v: Log debug output to standard error
//   - --write, -w: Write results back to the given files instead of standard output
//
// Example usage:
//
//	# Filter mode
//	sqlfmt < query.sql
//
//	# Format files and directories, printed in argument order
//	sqlfmt queries/ report.sql
//
//	# Rewrite files in place with custom settings
//	sqlfmt -c sqlfmt.yaml -w queries/
func newApp(p AppParams) *cli.Command {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:        "version",
		Usage:       "print the version",
		HideDefault: true,
		Local:       true,
	}
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	return &cli.Command{
		Name:      "sqlfmt",
		Usage:     "Reformat SQL with upper case keywords and consistent indentation",
		ArgsUsage: "[path ...]",
		Description: `sqlfmt reads SQL from standard input, reformats it and prints the result.
When paths are given, .sql files (and directories of them) are formatted
instead.`,
		Version:   p.Version.Version,
		Reader:    p.IO.In,
		Writer:    p.IO.Out,
		ErrWriter: p.IO.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "a YAML file of formatting settings",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output to stderr",
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "write results to the source files instead of stdout",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				p.Logger.SetLevel(logrus.DebugLevel)
			}

			if path := cmd.String("config"); path != "" {
				if err := p.Config.Load(path); err != nil {
					return ctx, err
				}
				p.Logger.WithField("path", path).Debug("loaded config")
			}

			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings := p.Config.Apply(reformat.Settings())

			if cmd.Args().Len() == 0 {
				if cmd.Bool("write") {
					return errors.New("--write requires at least one path")
				}

				return reformat.Run(cmd.Reader, cmd.Writer, reformat.Default, settings)
			}

			return formatPaths(ctx, pathParams{
				Paths:     cmd.Args().Slice(),
				WriteBack: cmd.Bool("write"),
				Writer:    cmd.Writer,
				Settings:  settings,
				Logger:    p.Logger,
			})
		},
	}
}
