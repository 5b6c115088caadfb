package yum

import (
	"context"
	"os/exec"
	"strings"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/glorpus-work/yumctl/pkg/runner"
)

// Provides returns the best package match providing the named capability,
// or "" when nothing matches. The capability is queried with a leading
// path glob (*/name) so file capabilities resolve as well. Query failures
// are logged and collapse into the no-match result; only an unavailable
// query backend is reported as an error.
func (b *Backend) Provides(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.ErrEmptyPackage
	}

	index := b.capabilityIndex()
	if index == nil {
		logger.Errorf("provides is disabled: no capability query backend available for %s", b.cmdName)
		return "", errors.ErrProvidesDisabled
	}

	matches, err := index.WhatProvides(ctx, "*/"+name)
	if err != nil {
		logger.Errorf("error searching for package that provides %s: %v", name, err)
		return "", nil
	}
	if len(matches) == 0 {
		return "", nil
	}
	return matches[0], nil
}

// capabilityIndex lazily builds the capability index on first use and holds
// the result, including a nil "unavailable" result.
func (b *Backend) capabilityIndex() CapabilityIndex {
	if !b.capReady {
		b.capReady = true
		if b.capFactory != nil {
			b.capIndex = b.capFactory(b.run)
		}
	}
	return b.capIndex
}

// DefaultCapabilityFactory backs capability lookup with the repoquery tool
// when it is installed, and disables lookup otherwise.
func DefaultCapabilityFactory(run runner.Runner) CapabilityIndex {
	if _, err := exec.LookPath("repoquery"); err != nil {
		return nil
	}
	return &repoqueryIndex{run: run}
}

// repoqueryIndex resolves capability queries through repoquery.
type repoqueryIndex struct {
	run runner.Runner
}

func (q *repoqueryIndex) WhatProvides(ctx context.Context, pattern string) ([]string, error) {
	res, err := q.run.Run(ctx, runner.Command{
		Path: "repoquery",
		Args: []string{"--whatprovides", pattern},
	})
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			matches = append(matches, line)
		}
	}
	return matches, nil
}
