package internal_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectRoot returns the absolute path to the project root directory.
// It walks up from the current file's directory until it finds go.mod.
func projectRoot(t *testing.T) string {
	t.Helper()

	// Start from the working directory (tests run from the package directory).
	dir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (no go.mod found in any parent directory)")
		}
		dir = parent
	}
}

// readFileContent reads a file and returns its content as a string.
func readFileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read file: %s", path)
	return string(data)
}

func TestInternalSubpackages_Exist(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)

	expectedPackages := []struct {
		name    string
		pkgDecl string
	}{
		{name: "advice", pkgDecl: "package advice"},
		{name: "buildinfo", pkgDecl: "package buildinfo"},
		{name: "cli", pkgDecl: "package cli"},
		{name: "config", pkgDecl: "package config"},
		{name: "logging", pkgDecl: "package logging"},
		{name: "table", pkgDecl: "package table"},
		{name: "tui", pkgDecl: "package tui"},
		{name: "wizard", pkgDecl: "package wizard"},
	}

	for _, pkg := range expectedPackages {
		t.Run(pkg.name, func(t *testing.T) {
			t.Parallel()

			pkgDir := filepath.Join(root, "internal", pkg.name)

			// Verify directory exists.
			info, err := os.Stat(pkgDir)
			require.NoError(t, err, "internal/%s directory does not exist", pkg.name)
			assert.True(t, info.IsDir(), "internal/%s is not a directory", pkg.name)

			// Verify doc.go exists and has valid package declaration.
			docPath := filepath.Join(pkgDir, "doc.go")
			content := readFileContent(t, docPath)
			assert.Contains(t, content, pkg.pkgDecl,
				"doc.go in internal/%s must contain %q", pkg.name, pkg.pkgDecl)
		})
	}
}

func TestInternalSubpackages_Count(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	internalDir := filepath.Join(root, "internal")

	entries, err := os.ReadDir(internalDir)
	require.NoError(t, err, "failed to read internal/ directory")

	// Count only directories (exclude files like project_test.go).
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	assert.Len(t, dirs, 8,
		"expected exactly 8 internal subpackages, got: %v", dirs)
}

func TestInternalSubpackages_DocGoHasComment(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)

	packages := []string{
		"advice", "buildinfo", "cli", "config",
		"logging", "table", "tui", "wizard",
	}

	for _, pkg := range packages {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()

			docPath := filepath.Join(root, "internal", pkg, "doc.go")
			content := readFileContent(t, docPath)

			// doc.go should have a doc comment starting with "// Package <name>"
			expectedComment := "// Package " + pkg
			assert.Contains(t, content, expectedComment,
				"doc.go in internal/%s should have a doc comment starting with %q", pkg, expectedComment)
		})
	}
}

func TestGoMod_Exists(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	goModPath := filepath.Join(root, "go.mod")

	_, err := os.Stat(goModPath)
	require.NoError(t, err, "go.mod does not exist at project root")
}

func TestGoMod_ModulePath(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "go.mod"))

	assert.Contains(t, content, "module github.com/hmuraoka/shinkoku-navi",
		"go.mod must declare module path as github.com/hmuraoka/shinkoku-navi")
}

func TestGoMod_GoDirective(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "go.mod"))

	// The go directive should specify 1.24 or higher.
	// It may be "go 1.24", "go 1.24.0", "go 1.24.2", etc.
	assert.Contains(t, content, "go 1.24",
		"go.mod must have a Go 1.24+ directive")
}

func TestGoMod_DirectDependencies(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "go.mod"))

	expectedDeps := []struct {
		name       string
		modulePath string
	}{
		{name: "cobra", modulePath: "github.com/spf13/cobra"},
		{name: "pflag", modulePath: "github.com/spf13/pflag"},
		{name: "bubbletea", modulePath: "github.com/charmbracelet/bubbletea"},
		{name: "lipgloss", modulePath: "github.com/charmbracelet/lipgloss"},
		{name: "bubbles", modulePath: "github.com/charmbracelet/bubbles"},
		{name: "huh", modulePath: "github.com/charmbracelet/huh"},
		{name: "glamour", modulePath: "github.com/charmbracelet/glamour"},
		{name: "log", modulePath: "github.com/charmbracelet/log"},
		{name: "toml", modulePath: "github.com/BurntSushi/toml"},
		{name: "termenv", modulePath: "github.com/muesli/termenv"},
		{name: "sync", modulePath: "golang.org/x/sync"},
		{name: "genai", modulePath: "google.golang.org/genai"},
		{name: "testify", modulePath: "github.com/stretchr/testify"},
	}

	for _, dep := range expectedDeps {
		t.Run(dep.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, content, dep.modulePath,
				"go.mod must declare direct dependency on %s (%s)", dep.name, dep.modulePath)
		})
	}
}

func TestGoMod_NoReplaceDirectives(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "go.mod"))

	assert.NotContains(t, content, "replace ",
		"go.mod must not contain replace directives")
}

func TestDefaultTable_Embedded(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	tablePath := filepath.Join(root, "internal", "table", "table.toml")

	info, err := os.Stat(tablePath)
	require.NoError(t, err, "internal/table/table.toml does not exist")
	assert.Greater(t, info.Size(), int64(0),
		"table.toml must not be empty")
}

func TestMainGo_Exists(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	mainPath := filepath.Join(root, "cmd", "shinkoku", "main.go")

	_, err := os.Stat(mainPath)
	require.NoError(t, err, "cmd/shinkoku/main.go does not exist")
}

func TestMainGo_PackageMain(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "cmd", "shinkoku", "main.go"))

	assert.Contains(t, content, "package main",
		"cmd/shinkoku/main.go must declare package main")
	assert.Contains(t, content, "func main()",
		"cmd/shinkoku/main.go must define a main function")
}

func TestProjectStructure_CmdShinkokuDir(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	cmdDir := filepath.Join(root, "cmd", "shinkoku")

	info, err := os.Stat(cmdDir)
	require.NoError(t, err, "cmd/shinkoku/ directory does not exist")
	assert.True(t, info.IsDir(), "cmd/shinkoku/ is not a directory")
}

func TestProjectStructure_InternalDir(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	internalDir := filepath.Join(root, "internal")

	info, err := os.Stat(internalDir)
	require.NoError(t, err, "internal/ directory does not exist")
	assert.True(t, info.IsDir(), "internal/ is not a directory")
}

func TestGoMod_DependencyVersions(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "go.mod"))

	versionChecks := []struct {
		name       string
		dep        string
		minVersion string
	}{
		{name: "toml v1.5.0", dep: "github.com/BurntSushi/toml", minVersion: "v1.5.0"},
		{name: "cobra v1.10+", dep: "github.com/spf13/cobra", minVersion: "v1.10"},
		{name: "bubbletea v1.3+", dep: "github.com/charmbracelet/bubbletea", minVersion: "v1.3"},
		{name: "genai v1+", dep: "google.golang.org/genai", minVersion: "v1."},
	}

	for _, vc := range versionChecks {
		t.Run(vc.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, content, vc.dep,
				"go.mod must contain dependency %s", vc.dep)
			// Extract the version line for this dependency.
			scanner := bufio.NewScanner(strings.NewReader(content))
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if strings.Contains(line, vc.dep) && !strings.HasPrefix(line, "//") {
					assert.Contains(t, line, vc.minVersion,
						"dependency %s must be at least version %s", vc.dep, vc.minVersion)
					break
				}
			}
		})
	}
}
