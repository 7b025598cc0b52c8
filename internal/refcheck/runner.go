// Package refcheck invokes the external skills-ref validator. Only its exit
// status is consumed; its output passes straight through to the user.
package refcheck

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// DefaultCommand is the validator binary expected on PATH.
const DefaultCommand = "agentskills"

// Runner validates a skill repository root.
type Runner interface {
	Validate(ctx context.Context, root string) error
}

// ExecRunner shells out to the validator tool.
type ExecRunner struct {
	Command string
}

// NewExecRunner returns an ExecRunner for the given command, falling back
// to DefaultCommand when empty.
func NewExecRunner(command string) ExecRunner {
	if command == "" {
		command = DefaultCommand
	}
	return ExecRunner{Command: command}
}

// Validate runs `<command> validate <root>` and reports any non-zero exit
// (or a missing binary) as an error.
func (r ExecRunner) Validate(ctx context.Context, root string) error {
	cmd := exec.CommandContext(ctx, r.Command, "validate", root)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s validate failed: %w", r.Command, err)
	}
	return nil
}

// Skip is a Runner that always passes, for runs without the external tool.
type Skip struct{}

// Validate implements Runner.
func (Skip) Validate(context.Context, string) error { return nil }
