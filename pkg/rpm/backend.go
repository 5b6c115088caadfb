// Package rpm wraps the rpm and rpmbuild tools for package-database queries,
// local package installs and source preparation.
package rpm

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/glorpus-work/yumctl/pkg/runner"
)

// DefaultBuildOption is the rpmbuild mode used by PrepareSource when the
// caller does not pick one; -bp executes the prep stage only (unpack and
// patch).
const DefaultBuildOption = "-bp"

// Backend implements Capabilities over a command Runner.
type Backend struct {
	run runner.Runner
}

// NewBackend creates an rpm backend on top of the given runner.
func NewBackend(run runner.Runner) *Backend {
	return &Backend{run: run}
}

// CheckInstalled queries the rpm database for the named package. A non-zero
// exit means "not installed", not an error.
func (b *Backend) CheckInstalled(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, errors.ErrEmptyPackage
	}
	res, err := b.run.Run(ctx, runner.Command{
		Path:         "rpm",
		Args:         []string{"-q", name},
		IgnoreStatus: true,
	})
	if err != nil {
		return false, errors.Wrapf(err, "failed to query package %s", name)
	}
	return res.ExitCode == 0, nil
}

// InstallFile installs a local rpm file into the system (or, for source
// rpms, into the invoking user's rpmbuild tree).
func (b *Backend) InstallFile(ctx context.Context, path string, opts InstallOptions) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return errors.Wrapf(errors.ErrSourceInstall, "not an rpm file: %s", path)
	}

	args := []string{"-i", path}
	if opts.NoDeps {
		args = append(args, "--nodeps")
	}
	if opts.Replace {
		args = append(args, "--replacepkgs")
	}

	if _, err := b.run.Run(ctx, runner.Command{Path: "rpm", Args: args}); err != nil {
		return errors.Wrapf(err, "failed to install %s", path)
	}
	return nil
}

// PrepareSource runs rpmbuild for specPath with _builddir pointed at
// destPath and returns the directory the sources were unpacked into.
func (b *Backend) PrepareSource(ctx context.Context, specPath, destPath, buildOption string) (string, error) {
	if destPath == "" {
		return "", errors.ErrNoDestination
	}
	if buildOption == "" {
		buildOption = DefaultBuildOption
	}

	args := strings.Fields(buildOption)
	args = append(args, "--define", "_builddir "+destPath, specPath)

	if _, err := b.run.Run(ctx, runner.Command{Path: "rpmbuild", Args: args}); err != nil {
		return "", errors.Wrapf(err, "rpmbuild failed for %s", specPath)
	}

	entries, err := os.ReadDir(destPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read build directory %s", destPath)
	}
	if len(entries) == 0 {
		return "", errors.Wrapf(errors.ErrSourcePrepare, "no sources unpacked into %s", destPath)
	}

	dir := filepath.Join(destPath, entries[0].Name())
	logger.Debugf("sources for %s prepared in %s", filepath.Base(specPath), dir)
	return dir, nil
}
