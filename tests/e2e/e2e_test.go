//go:build e2e

// Package e2e contains end-to-end tests for the aisafe CLI.
// These tests exercise the CLI binary as a black box, testing all features
// through the command line interface.
//
// Run with: go test -tags=e2e ./tests/e2e/... -v
package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var testBinary string

func TestMain(m *testing.M) {
	// Build test binary
	tmpDir, err := os.MkdirTemp("", "aisafe-e2e-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	testBinary = filepath.Join(tmpDir, "aisafe")
	if os.PathSeparator == '\\' {
		testBinary += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", testBinary, "../../cmd/aisafe")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	os.Exit(m.Run())
}

// ============================================================================
// Response Types
// ============================================================================

type Response struct {
	OK            bool           `json:"ok" yaml:"ok"`
	SchemaVersion int            `json:"schema_version" yaml:"schema_version"`
	Data          map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Error         *Error         `json:"error,omitempty" yaml:"error,omitempty"`
}

type Error struct {
	Code    string         `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

// ============================================================================
// Helper Functions
// ============================================================================

func newAisafeCmd(credFile string, args ...string) *exec.Cmd {
	cmd := exec.Command(testBinary, args...)
	cmd.Env = append(os.Environ(), "AISAFE_FILE="+credFile)
	return cmd
}

// runAisafe 在独立的 credentials 文件上运行一条命令
func runAisafe(t *testing.T, credFile string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	cmd := newAisafeCmd(credFile, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run command: %v", err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}

func tempCredFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "credentials.toml")
}
