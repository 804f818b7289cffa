package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPalette runs palette against a throwaway config file so the user's own
// ~/.config/palette never leaks into a test.
func runPalette(t *testing.T, configYAML, stdin string, args ...string) (int, string, string) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configYAML), 0644))

	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"--config", cfgPath}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", newRootCmd().Version)
}

func TestRootCommand(t *testing.T) {
	rootCmd := newRootCmd()

	assert.Equal(t, "palette", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage, "Expected SilenceUsage to be true")
	assert.True(t, rootCmd.SilenceErrors, "Expected SilenceErrors to be true")
}

func TestSubcommands(t *testing.T) {
	foundCommands := make(map[string]bool)
	for _, c := range newRootCmd().Commands() {
		foundCommands[c.Name()] = true
	}

	for _, expected := range []string{"rand", "wal", "gradient", "gradient-rand", "colourize", "version"} {
		assert.True(t, foundCommands[expected], "Expected subcommand %s to be registered", expected)
	}
}

func TestPersistentFlags(t *testing.T) {
	flags := newRootCmd().PersistentFlags()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"limit", "n", "8"},
		{"plain", "p", "false"},
		{"code", "", "false"},
		{"cpcode", "", "false"},
		{"lined", "f", "false"},
		{"seed", "", "0"},
		{"debug", "", "false"},
		{"config", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := flags.Lookup(tt.name)
			require.NotNil(t, f, "flag --%s not registered", tt.name)
			assert.Equal(t, tt.shorthand, f.Shorthand)
			assert.Equal(t, tt.defValue, f.DefValue)
		})
	}
}

func TestRun_NoSubcommandPrintsHelp(t *testing.T) {
	code, stdout, stderr := runPalette(t, "", "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "gradient-rand")
	assert.Empty(t, stderr)
}

func TestRun_NoSubcommandWithFlags(t *testing.T) {
	code, stdout, _ := runPalette(t, "", "", "--plain", "-n", "3")
	assert.Equal(t, 2, code)
	assert.Contains(t, stdout, "Usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, stdout, stderr := runPalette(t, "", "", "frobnicate")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "E: "), "stderr should start with the error prefix, got %q", stderr)
	assert.Contains(t, stderr, "frobnicate")
}

func TestRun_Version(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()
	SetVersion("1.0.0")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, Run([]string{"--version"}, strings.NewReader(""), &stdout, &stderr))
	assert.Equal(t, "palette version 1.0.0\n", stdout.String())

	stdout.Reset()
	assert.Equal(t, 0, Run([]string{"version"}, strings.NewReader(""), &stdout, &stderr))
	assert.Equal(t, "palette version 1.0.0\n", stdout.String())
}

func TestRootCommandHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "pywal")
	assert.Contains(t, stdout.String(), "--cpcode")
}
