package e2e_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// testProject provides an isolated working directory and a built shinkoku
// binary for end-to-end tests of the non-interactive subcommands.
type testProject struct {
	Dir        string
	BinaryPath string
	t          *testing.T
}

var (
	buildOnce sync.Once
	buildDir  string
	buildErr  error
)

// newTestProject builds the shinkoku binary (once per test run) and returns
// a testProject with a fresh temp working directory.
func newTestProject(t *testing.T) *testProject {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "shinkoku-e2e-*")
		if err != nil {
			buildErr = err
			return
		}
		buildDir = dir
		binary := filepath.Join(dir, "shinkoku")
		build := exec.Command("go", "build", "-o", binary, "./cmd/shinkoku")
		build.Dir = projectRoot()
		out, err := build.CombinedOutput()
		if err != nil {
			buildErr = errors.New("building shinkoku: " + string(out))
		}
	})
	require.NoError(t, buildErr)

	return &testProject{
		Dir:        t.TempDir(),
		BinaryPath: filepath.Join(buildDir, "shinkoku"),
		t:          t,
	}
}

// projectRoot returns the absolute path to the root of the repository.
// It uses runtime.Caller(0) to find this source file's location and navigates
// two directories up (tests/e2e/ -> tests/ -> repo root).
func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// writeConfig writes content to shinkoku.toml in tp.Dir.
func (tp *testProject) writeConfig(content string) {
	tp.t.Helper()
	err := os.WriteFile(filepath.Join(tp.Dir, "shinkoku.toml"), []byte(content), 0o644)
	require.NoError(tp.t, err)
}

// writeTable writes content to a TOML table file in tp.Dir and returns its path.
func (tp *testProject) writeTable(name, content string) string {
	tp.t.Helper()
	path := filepath.Join(tp.Dir, name)
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(tp.t, err)
	return path
}

// run creates an exec.Cmd for shinkoku with deterministic output settings.
func (tp *testProject) run(args ...string) *exec.Cmd {
	cmd := exec.Command(tp.BinaryPath, args...)
	cmd.Dir = tp.Dir
	cmd.Env = append(os.Environ(),
		"NO_COLOR=1",               // disable ANSI color in output
		"SHINKOKU_LOG_FORMAT=json", // structured logs for easier parsing
		"GEMINI_API_KEY=",          // never reach the real API from tests
	)
	return cmd
}

// runExpectSuccess runs shinkoku and asserts exit code 0.
// Returns combined stdout+stderr output.
func (tp *testProject) runExpectSuccess(args ...string) string {
	tp.t.Helper()
	cmd := tp.run(args...)
	out, err := cmd.CombinedOutput()
	require.NoError(tp.t, err, "shinkoku %v failed:\n%s", args, string(out))
	return string(out)
}

// runExpectFailure runs shinkoku and asserts a non-zero exit code.
// Returns combined output and the exit code.
func (tp *testProject) runExpectFailure(args ...string) (string, int) {
	tp.t.Helper()
	cmd := tp.run(args...)
	out, err := cmd.CombinedOutput()
	require.Error(tp.t, err, "shinkoku %v expected to fail but succeeded:\n%s", args, string(out))
	var exitErr *exec.ExitError
	require.True(tp.t, errors.As(err, &exitErr), "expected *exec.ExitError, got %T: %v", err, err)
	return string(out), exitErr.ExitCode()
}

// tinyTable is a self-contained question table with one question and two tasks,
// small enough to assert exact lint and paths output against.
const tinyTable = `
[glossary]
"控除" = "所得から差し引ける金額のことです。"

[[task]]
id = "t1"
title = "売上をまとめる"
category = "preparation"

[[task]]
id = "t-final"
title = "申告書を提出する"
category = "submission"

[[question]]
id = "q1"
text = "副業の収入はありますか？"

  [[question.option]]
  id = "yes"
  label = "はい"
  add_tasks = ["t1", "t-final"]

  [[question.option]]
  id = "no"
  label = "いいえ"
  add_tasks = ["t-final"]
`
