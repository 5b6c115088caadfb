//go:generate mockgen -destination=./mocks/yum.go . RepoManager,CapabilityIndex

package yum

import (
	"context"

	"github.com/glorpus-work/yumctl/pkg/repofile"
	"github.com/glorpus-work/yumctl/pkg/runner"
)

// RepoManager is the subset of the repository file manager used by the backend.
type RepoManager interface {
	Add(ctx context.Context, baseURL string, options map[string]string) (bool, error)
	Remove(ctx context.Context, baseURL string) (bool, error)
	List() ([]repofile.Repo, error)
	Path() string
}

// CapabilityIndex answers "which package provides this capability" queries.
// It stands in for the package tool's native query API, which may not be
// available on every host.
type CapabilityIndex interface {
	// WhatProvides returns the packages providing the glob-qualified
	// capability pattern, best match first.
	WhatProvides(ctx context.Context, pattern string) ([]string, error)
}

// CapabilityIndexFactory builds the optional capability index on first use.
// Returning nil marks capability lookup as unavailable.
type CapabilityIndexFactory func(run runner.Runner) CapabilityIndex
