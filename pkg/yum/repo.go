package yum

import (
	"context"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/repofile"
)

// AddRepo registers a package repository for baseURL with the merged
// default and caller options. Adding an already-configured URL succeeds
// without change. After a new repository is written the tool's cache is
// cleaned so the next operation sees it; a failed clean is logged, not
// returned, since the repository itself is in place.
func (b *Backend) AddRepo(ctx context.Context, baseURL string, options map[string]string) (bool, error) {
	added, err := b.repos.Add(ctx, baseURL, options)
	if err != nil {
		return false, err
	}
	if added {
		if err := b.CleanCache(ctx); err != nil {
			logger.Warnf("repository added but cache clean failed: %v", err)
		}
	}
	return added, nil
}

// RemoveRepo deletes every repository entry matching baseURL. Removing an
// unknown URL succeeds and reports false.
func (b *Backend) RemoveRepo(ctx context.Context, baseURL string) (bool, error) {
	return b.repos.Remove(ctx, baseURL)
}

// ListRepos returns the repositories in the managed repository file.
func (b *Backend) ListRepos() ([]repofile.Repo, error) {
	return b.repos.List()
}

// RepoFilePath returns the location of the managed repository file.
func (b *Backend) RepoFilePath() string {
	return b.repos.Path()
}
