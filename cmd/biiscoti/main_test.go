package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useDataDir points the global config at a fresh directory for one test.
func useDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	viper.Set("data.dir", dir)
	t.Cleanup(viper.Reset)
	return dir
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"tui", "shop", "account", "profile", "contact", "migrate", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}

	for _, flag := range []string{"config", "data-dir", "log-level", "log-format"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, versionCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "biiscoti dev")
}

func TestContactCmd(t *testing.T) {
	useDataDir(t)

	out, err := execute(t, contactCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "0741462249")

	flag := contactCmd().Flag("call")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestContactCmdConfiguredPhone(t *testing.T) {
	useDataDir(t)
	viper.Set("contact.phone", "0700000000")

	out, err := execute(t, contactCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "0700000000")
}

func TestParseRoute(t *testing.T) {
	for _, name := range []string{"splash", "login", "register"} {
		r, err := parseRoute(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.String())
	}

	_, err := parseRoute("restaurants/admin")
	assert.Error(t, err)
}

func TestTuiCmdFlags(t *testing.T) {
	cmd := tuiCmd()

	start := cmd.Flag("start")
	require.NotNil(t, start)
	assert.Equal(t, "splash", start.DefValue)

	theme := cmd.Flag("theme")
	require.NotNil(t, theme)
	assert.Equal(t, "default", theme.DefValue)
}

func TestTuiCmdRejectsStartScreen(t *testing.T) {
	useDataDir(t)

	_, err := execute(t, tuiCmd(), "--start", "profile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start screen")
}
