// Package integration provides the harness for CLI integration tests: the
// sudoku binary is built once in TestMain, and every test runs it against
// isolated config and data directories.
package integration

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// sudokuBin is the path to the built binary, set by TestMain.
	sudokuBin string

	// buildErr is a binary build failure, set by TestMain.
	buildErr error
)

// SetSudokuBin records the binary path for test runs.
func SetSudokuBin(path string) { sudokuBin = path }

// SetBuildErr records a build failure so tests can fail with context.
func SetBuildErr(err error) { buildErr = err }

// FindProjectRoot walks up from the working directory to the directory
// containing go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// RunResult captures one CLI invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TestEnv is an isolated environment for one test: its own config and data
// directories, wired through environment variables.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates an isolated environment under t.TempDir().
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("sudoku binary build failed: %v", buildErr)
	}
	base := t.TempDir()
	env := &TestEnv{
		t:         t,
		ConfigDir: filepath.Join(base, "config"),
		DataDir:   filepath.Join(base, "data"),
	}
	return env
}

// Run executes the sudoku binary with the given arguments.
func (e *TestEnv) Run(args ...string) RunResult {
	e.t.Helper()

	cmd := exec.Command(sudokuBin, args...)
	cmd.Env = append(os.Environ(),
		"SUDOKU_CONFIG_DIR="+e.ConfigDir,
		"SUDOKU_DATA_DIR="+e.DataDir,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("run sudoku %v: %v", args, err)
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: code,
	}
}

// MustRun executes the binary and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) RunResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("sudoku %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// WriteFixture writes content to a file under the test's temp space and
// returns its path.
func (e *TestEnv) WriteFixture(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// BuildError wraps a go build failure with its output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v\n%s", e.Err, e.Output)
}
