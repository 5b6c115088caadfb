// Package runner wraps os/exec for the package tool invocations used by the
// rest of the module. Commands are described declaratively so callers never
// touch exec.Cmd directly.
package runner

import (
	"bytes"
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/errors"
)

// CmdError reports a command that exited with a non-zero status.
type CmdError struct {
	Cmd      string
	ExitCode int
	Stderr   string
}

func (e *CmdError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command %q exited with status %d", e.Cmd, e.ExitCode)
	}
	return fmt.Sprintf("command %q exited with status %d: %s", e.Cmd, e.ExitCode, e.Stderr)
}

// ExecRunner runs commands on the local system.
type ExecRunner struct {
	sudoPath string
}

// NewExecRunner creates a runner for local command execution.
func NewExecRunner() *ExecRunner {
	// Resolved once; commands that request sudo fail later if it is absent.
	sudoPath, _ := exec.LookPath("sudo")
	return &ExecRunner{sudoPath: sudoPath}
}

// Run executes the command and captures stdout and stderr separately.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	path := cmd.Path
	args := cmd.Args
	if cmd.Sudo && os.Geteuid() != 0 {
		if r.sudoPath == "" {
			return nil, errors.Wrapf(errors.ErrCommandNotFound, "sudo required for %q", cmd.String())
		}
		args = append([]string{path}, args...)
		path = r.sudoPath
	}

	logger.DebugfWithFields(logger.Fields{"sudo": cmd.Sudo}, "running %s", cmd.String())

	execCmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if goerrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			if cmd.IgnoreStatus {
				return result, nil
			}
			return nil, &CmdError{Cmd: cmd.String(), ExitCode: result.ExitCode, Stderr: result.Stderr}
		}
		return nil, errors.Wrapf(err, "failed to run %q", cmd.String())
	}

	return result, nil
}
