package refcheck

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTool writes an executable that exits with the given status.
func stubTool(t *testing.T, exitCode string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tool uses a shell script")
	}
	path := filepath.Join(t.TempDir(), "agentskills-stub")
	script := "#!/bin/sh\nexit " + exitCode + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestExecRunner_Passes(t *testing.T) {
	runner := ExecRunner{Command: stubTool(t, "0")}

	err := runner.Validate(context.Background(), t.TempDir())

	assert.NoError(t, err)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	runner := ExecRunner{Command: stubTool(t, "3")}

	err := runner.Validate(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate failed")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	runner := ExecRunner{Command: filepath.Join(t.TempDir(), "no-such-tool")}

	assert.Error(t, runner.Validate(context.Background(), t.TempDir()))
}

func TestNewExecRunner_DefaultCommand(t *testing.T) {
	assert.Equal(t, DefaultCommand, NewExecRunner("").Command)
	assert.Equal(t, "custom", NewExecRunner("custom").Command)
}

func TestSkip(t *testing.T) {
	assert.NoError(t, Skip{}.Validate(context.Background(), "anywhere"))
}
