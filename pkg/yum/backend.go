// Package yum adapts the yum/dnf family of package tools. Every operation
// builds a command line for the external tool or edits its repository
// configuration; nothing is resolved or downloaded by this module itself.
package yum

import (
	"context"
	"os"
	"os/exec"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/glorpus-work/yumctl/pkg/hooks"
	"github.com/glorpus-work/yumctl/pkg/rpm"
	"github.com/glorpus-work/yumctl/pkg/runner"
)

// DefaultTool is the package tool wrapped when none is configured.
const DefaultTool = "yum"

// imageModeRoot marks hosts running an image-based (ostree) deployment;
// package transactions on those need the --transient flag.
const imageModeRoot = "/ostree"

// Options configure optional backend behavior.
type Options struct {
	// Tool is the package tool command name or path. Defaults to DefaultTool.
	Tool string
	// Transient overrides image-mode detection when set.
	Transient *bool
	// Hooks, when set, runs scripted hooks around package operations.
	Hooks hooks.HookManager
	// CapFactory builds the capability index for Provides. Defaults to
	// DefaultCapabilityFactory.
	CapFactory CapabilityIndexFactory
}

// Backend wraps one yum-compatible tool installation.
type Backend struct {
	cmdName  string // configured command, e.g. "yum"
	toolPath string // resolved executable path
	version  string // detected tool version

	transient bool

	run   runner.Runner
	rpm   rpm.Capabilities
	repos RepoManager
	hooks hooks.HookManager

	capFactory CapabilityIndexFactory
	capIndex   CapabilityIndex
	capReady   bool
}

// New resolves the package tool, detects its version and the host's image
// mode, and returns a ready backend.
func New(ctx context.Context, run runner.Runner, rpmCaps rpm.Capabilities, repos RepoManager, opts Options) (*Backend, error) {
	cmdName := opts.Tool
	if cmdName == "" {
		cmdName = DefaultTool
	}

	toolPath, err := exec.LookPath(cmdName)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCommandNotFound, "%s", cmdName)
	}

	capFactory := opts.CapFactory
	if capFactory == nil {
		capFactory = DefaultCapabilityFactory
	}

	b := &Backend{
		cmdName:    cmdName,
		toolPath:   toolPath,
		run:        run,
		rpm:        rpmCaps,
		repos:      repos,
		hooks:      opts.Hooks,
		capFactory: capFactory,
	}

	if opts.Transient != nil {
		b.transient = *opts.Transient
	} else {
		b.transient = isImageMode()
	}

	if err := b.detectVersion(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

// Tool returns the resolved path of the wrapped package tool.
func (b *Backend) Tool() string {
	return b.toolPath
}

// Version returns the detected tool version. When no N.N.N token could be
// extracted this is the raw first line of the tool's version output.
func (b *Backend) Version() string {
	return b.version
}

// Transient reports whether package transactions run with --transient.
func (b *Backend) Transient() bool {
	return b.transient
}

// command assembles the standard "<tool> -y <verb> [name]" invocation.
func (b *Backend) command(verb, name string) runner.Command {
	args := []string{"-y", verb}
	if name != "" {
		args = append(args, name)
	}
	if b.transient {
		args = append(args, "--transient")
	}
	return runner.Command{Path: b.toolPath, Args: args, Sudo: true}
}

func (b *Backend) detectVersion(ctx context.Context) error {
	res, err := b.run.Run(ctx, runner.Command{
		Path:         b.toolPath,
		Args:         []string{"-y", "--version"},
		IgnoreStatus: true,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to detect %s version", b.cmdName)
	}
	b.version = parseVersionOutput(res.Stdout)
	logger.Debugf("%s version: %s", b.cmdName, b.version)
	return nil
}

// firePre runs a pre-operation hook; a hook error aborts the operation.
func (b *Backend) firePre(hookType hooks.HookType, pkg, op string) error {
	if b.hooks == nil {
		return nil
	}
	err := b.hooks.Execute(hookType, hooks.HookContext{
		PackageName: pkg,
		Operation:   op,
		Tool:        b.cmdName,
	})
	if err != nil {
		return errors.Wrapf(err, "%s hook rejected %s", hookType, op)
	}
	return nil
}

// firePost runs a post-operation hook; failures are logged, not returned.
func (b *Backend) firePost(hookType hooks.HookType, pkg, op string) {
	if b.hooks == nil {
		return
	}
	err := b.hooks.Execute(hookType, hooks.HookContext{
		PackageName: pkg,
		Operation:   op,
		Tool:        b.cmdName,
	})
	if err != nil {
		logger.Warnf("%s hook failed: %v", hookType, err)
	}
}

func isImageMode() bool {
	info, err := os.Stat(imageModeRoot)
	return err == nil && info.IsDir()
}
