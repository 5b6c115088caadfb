//go:generate mockgen -destination=./mocks/runner.go . Runner

package runner

import (
	"context"
	"strings"
)

// Runner executes external commands. It is the single seam between this
// module and the system package tools, so everything above it can be tested
// against a mock.
type Runner interface {
	// Run executes cmd and returns its captured output. A non-zero exit
	// status is returned as a *CmdError unless cmd.IgnoreStatus is set, in
	// which case the Result carries the exit code and err is nil.
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// Command describes one external command invocation.
type Command struct {
	Path         string   // executable name or path (e.g. "yum")
	Args         []string // arguments, not including the executable itself
	Sudo         bool     // run through sudo when not already root
	IgnoreStatus bool     // treat non-zero exit as a regular result, not an error
}

// String renders the command line for logging and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
