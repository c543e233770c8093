package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func runModule(t *testing.T, stdin string, args ...string) (fx.ShutdownSignal, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := fxtest.New(t,
		fx.Supply(
			append([]string{"sqlfmt"}, args...),
			&IO{In: strings.NewReader(stdin), Out: &out, Err: &errOut},
			&Version{Version: "test"},
		),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		Module,
	)

	app.RequireStart()
	sig := <-app.Wait()
	app.RequireStop()

	return sig, out.String(), errOut.String()
}

func TestModule(t *testing.T) {
	t.Run("success exits zero", func(t *testing.T) {
		sig, out, _ := runModule(t, "select a,b from t where a=1")
		require.Equal(t, 0, sig.ExitCode)
		require.Equal(t, "SELECT a,b\nFROM t\nWHERE a=1\n", out)
	})

	t.Run("unrecognized text still succeeds", func(t *testing.T) {
		sig, out, _ := runModule(t, "select data @> '{}' from t")
		require.Equal(t, 0, sig.ExitCode)
		require.Equal(t, "SELECT data @> '{}'\nFROM t\n", out)
	})

	t.Run("failure exits one and logs", func(t *testing.T) {
		sig, out, errOut := runModule(t, "select '\xff'")
		require.Equal(t, 1, sig.ExitCode)
		require.Empty(t, out)
		require.Contains(t, errOut, "sqlfmt failed")
	})
}
