package yum

import (
	"context"

	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/glorpus-work/yumctl/pkg/hooks"
	"github.com/glorpus-work/yumctl/pkg/runner"
)

// Install installs the named package. Local package files are accepted too;
// the tool handles both.
func (b *Backend) Install(ctx context.Context, name string) error {
	if name == "" {
		return errors.ErrEmptyPackage
	}
	if err := b.firePre(hooks.PreInstall, name, "install"); err != nil {
		return err
	}
	if _, err := b.run.Run(ctx, b.command("install", name)); err != nil {
		return errors.Wrapf(err, "failed to install %s", name)
	}
	b.firePost(hooks.PostInstall, name, "install")
	return nil
}

// Remove erases the named package.
func (b *Backend) Remove(ctx context.Context, name string) error {
	if name == "" {
		return errors.ErrEmptyPackage
	}
	if err := b.firePre(hooks.PreRemove, name, "remove"); err != nil {
		return err
	}
	if _, err := b.run.Run(ctx, b.command("erase", name)); err != nil {
		return errors.Wrapf(err, "failed to remove %s", name)
	}
	b.firePost(hooks.PostRemove, name, "remove")
	return nil
}

// Upgrade updates the named package, or every available package when name
// is empty.
func (b *Backend) Upgrade(ctx context.Context, name string) error {
	if err := b.firePre(hooks.PreUpgrade, name, "upgrade"); err != nil {
		return err
	}
	if _, err := b.run.Run(ctx, b.command("update", name)); err != nil {
		if name == "" {
			return errors.Wrap(err, "failed to upgrade packages")
		}
		return errors.Wrapf(err, "failed to upgrade %s", name)
	}
	b.firePost(hooks.PostUpgrade, name, "upgrade")
	return nil
}

// CleanCache drops the tool's metadata caches so fresh package information
// is downloaded on the next operation.
func (b *Backend) CleanCache(ctx context.Context) error {
	cmd := runner.Command{
		Path: b.toolPath,
		Args: []string{"clean", "all"},
		Sudo: true,
	}
	if _, err := b.run.Run(ctx, cmd); err != nil {
		return errors.Wrapf(err, "failed to clean %s cache", b.cmdName)
	}
	return nil
}
