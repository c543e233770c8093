// Package cmd provides the sqlfmt command line interface.
//
// The command is a urfave/cli/v3 command assembled with go.uber.org/fx. The
// application supplies the arguments, version and standard streams; this
// package provides the logger and the command, and runs it when the
// application starts.
//
// # Filter Mode
//
// Without arguments sqlfmt reads standard input to the end, formats it with
// the built-in settings and prints the result followed by a newline:
//
//	echo "select a,b from t where a=1" | sqlfmt
//	SELECT a,b
//	FROM t
//	WHERE a=1
//
// # File Mode
//
// Paths to .sql files or directories are formatted concurrently and printed
// in argument order, or written back in place with --write:
//
//	sqlfmt queries/ report.sql
//	sqlfmt -w queries/
//
// # Exit Status
//
// sqlfmt exits 0 on success. Any failure is logged to standard error and the
// process exits 1 without printing SQL.
package cmd
