package yum

import (
	"context"
	"os"
	"path/filepath"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/glorpus-work/yumctl/pkg/fsutil"
	"github.com/glorpus-work/yumctl/pkg/rpm"
	"github.com/glorpus-work/yumctl/pkg/runner"
)

// helperPackages must be installed before source retrieval can work:
// rpm-build supplies rpmbuild, yum-utils supplies yumdownloader and
// yum-builddep.
var helperPackages = []string{"rpm-build", "yum-utils"}

// GetSource downloads the source package for name and prepares it under
// destPath, ready to build. It returns the prepared source directory. The
// staging directory for the downloaded source rpm is always removed.
func (b *Backend) GetSource(ctx context.Context, name, destPath, buildOption string) (string, error) {
	if name == "" {
		return "", errors.ErrEmptyPackage
	}
	if destPath == "" {
		return "", errors.ErrNoDestination
	}

	staging, err := os.MkdirTemp("", "yumctl-source-")
	if err != nil {
		return "", errors.Wrap(err, "failed to create staging directory")
	}
	defer func() { _ = os.RemoveAll(staging) }()

	if err := b.ensureHelpers(ctx); err != nil {
		return "", err
	}

	srcRPM, err := b.downloadSource(ctx, name, staging)
	if err != nil {
		return "", err
	}

	// Installing a source rpm unpacks it into the invoking user's
	// rpmbuild tree.
	if err := b.rpm.InstallFile(ctx, srcRPM, rpm.InstallOptions{}); err != nil {
		return "", errors.Wrap(errors.ErrSourceInstall, err.Error())
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate home directory")
	}
	specPath := filepath.Join(home, "rpmbuild", "SPECS", name+".spec")

	if err := b.BuildDep(ctx, specPath); err != nil {
		return "", errors.Wrap(errors.ErrBuildDepsInstall, err.Error())
	}

	if err := fsutil.EnsureDir(destPath); err != nil {
		return "", errors.Wrapf(err, "failed to create destination %s", destPath)
	}
	return b.rpm.PrepareSource(ctx, specPath, destPath, buildOption)
}

// BuildDep installs the build dependencies for a package name or spec file.
func (b *Backend) BuildDep(ctx context.Context, name string) error {
	if name == "" {
		return errors.ErrEmptyPackage
	}
	cmd := runner.Command{
		Path: "yum-builddep",
		Args: []string{"-y", "--tolerant", name},
		Sudo: true,
	}
	if _, err := b.run.Run(ctx, cmd); err != nil {
		return errors.Wrapf(err, "failed to install build dependencies for %s", name)
	}
	return nil
}

// ensureHelpers installs the packages source retrieval depends on.
func (b *Backend) ensureHelpers(ctx context.Context) error {
	for _, pkg := range helperPackages {
		installed, err := b.rpm.CheckInstalled(ctx, pkg)
		if err != nil {
			return err
		}
		if installed {
			continue
		}
		logger.Debugf("installing helper package %s", pkg)
		if err := b.Install(ctx, pkg); err != nil {
			return errors.Wrapf(errors.ErrHelperInstall, "%s: %v", pkg, err)
		}
	}
	return nil
}

// downloadSource fetches the source rpm for name into dir and returns its
// path. Exactly one source rpm must result.
func (b *Backend) downloadSource(ctx context.Context, name, dir string) (string, error) {
	cmd := runner.Command{
		Path: "yumdownloader",
		Args: []string{"--assumeyes", "--verbose", "--source", name, "--destdir", dir},
	}
	if _, err := b.run.Run(ctx, cmd); err != nil {
		return "", errors.Wrap(errors.ErrSourceDownload, err.Error())
	}

	srcRPMs, err := filepath.Glob(filepath.Join(dir, "*.src.rpm"))
	if err != nil {
		return "", errors.Wrap(errors.ErrSourceDownload, err.Error())
	}
	if len(srcRPMs) != 1 {
		return "", errors.Wrapf(errors.ErrSourceDownload,
			"expected exactly one source rpm in %s, found %d", dir, len(srcRPMs))
	}
	return srcRPMs[0], nil
}
