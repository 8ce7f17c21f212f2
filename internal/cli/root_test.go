package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd resets all global flag values and Cobra's internal "Changed"
// tracking to pristine state. This must be called at the start of every test
// that invokes Execute() or manipulates rootCmd.
func resetRootCmd(t *testing.T) {
	t.Helper()
	flagVerbose = false
	flagQuiet = false
	flagConfig = ""
	flagTable = ""
	flagNoColor = false
	flagNoAdvice = false
	pathsResolveAll = false
	rootCmd.SetArgs(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	tablePathsCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
}

// runCommand executes rootCmd with the given args, capturing the command
// writers. It returns stdout, stderr, and the execution error.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "shinkoku", rootCmd.Use)
}

func TestRootCmd_Long(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "questionnaire")
	assert.Contains(t, rootCmd.Long, "checklist")
}

func TestRootCmd_Silence(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage, "SilenceUsage must be true")
	assert.True(t, rootCmd.SilenceErrors, "SilenceErrors must be true")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "config", "table", "no-color", "no-advice"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing persistent flag --%s", name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"plan", "table", "config", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	resetRootCmd(t)

	_, _, err := runCommand(t, "no-such-command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootCmd_Help(t *testing.T) {
	resetRootCmd(t)

	stdout, _, err := runCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "shinkoku")
	assert.Contains(t, stdout, "plan")
	assert.Contains(t, stdout, "version")
}

func TestRootCmd_EnvVarFallback(t *testing.T) {
	resetRootCmd(t)
	t.Setenv("SHINKOKU_VERBOSE", "1")

	_, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, flagVerbose, "SHINKOKU_VERBOSE should enable --verbose")
}

func TestRootCmd_ExplicitFlagBeatsEnv(t *testing.T) {
	resetRootCmd(t)
	t.Setenv("SHINKOKU_QUIET", "1")

	_, _, err := runCommand(t, "version", "--quiet=false")
	require.NoError(t, err)
	assert.False(t, flagQuiet, "explicit --quiet=false must override SHINKOKU_QUIET")
}

func TestNewRootCmd_DoesNotReparentSubcommands(t *testing.T) {
	resetRootCmd(t)

	_ = NewRootCmd()
	for _, child := range rootCmd.Commands() {
		assert.Same(t, rootCmd, child.Parent(), "subcommand %q was reparented onto the mirror", child.Name())
	}

	// Output from the live tree must still route through rootCmd's writers.
	stdout, _, err := runCommand(t, "table", "lint")
	require.NoError(t, err)
	assert.Contains(t, stdout, "table OK: 11 questions, 22 tasks, 17 glossary terms")
}

func TestNewRootCmd_MirrorsRoot(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, rootCmd.Use, cmd.Use)
	assert.Equal(t, rootCmd.Short, cmd.Short)

	for _, name := range []string{"verbose", "quiet", "config", "table", "no-color", "no-advice"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing persistent flag --%s", name)
	}

	names := map[string]bool{}
	for _, child := range cmd.Commands() {
		names[child.Name()] = true
	}
	for _, want := range []string{"plan", "table", "config", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
