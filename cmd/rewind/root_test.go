package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(bytes.NewReader(nil))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag to its default and clears Changed, so
// one test's flags never leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	t.Run("color", func(t *testing.T) {
		out, _, err := execute(t, "order", "beef", "--render", "color", "--log-level", "error")
		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[")
	})

	out, _, err := execute(t, "order", "beef")
	require.NoError(t, err)
	assert.Equal(t, "Preparing a beef hamburger\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rewind version ")
}

func TestPlayCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rewind.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("render: plain\nlog_level: error\ncapacity: 2\n"), 0644))

	out, _, err := execute(t, "play", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "After undo")
	assert.NotContains(t, out, "\x1b[")
}

func TestOrderCommand(t *testing.T) {
	out, _, err := execute(t, "order", "chicken", "--render", "plain", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "Preparing a chicken hamburger\n", out)
}

func TestOrderCommand_NoKind(t *testing.T) {
	_, _, err := execute(t, "order", "--render", "plain", "--log-level", "error")
	assert.Error(t, err)
}
