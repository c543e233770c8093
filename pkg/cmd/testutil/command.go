package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// RunCommand executes a root command with the given arguments. The command
// name is prepended the way the shell would.
func RunCommand(t *testing.T, command *cli.Command, args ...string) error {
	t.Helper()
	return RunCommandWithContext(context.Background(), t, command, args...)
}

// RunCommandWithContext executes a root command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args ...string) error {
	t.Helper()

	fullArgs := append([]string{command.Name}, args...)
	return command.Run(ctx, fullArgs)
}

// WriteFiles creates each file (relative to dir) with its content, making
// parent directories as needed.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))
	}
}

// RequireFileContent asserts that the file at path holds exactly want
func RequireFileContent(t *testing.T, path, want string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Equal(t, want, string(content), "Unexpected content in %s", path)
}
