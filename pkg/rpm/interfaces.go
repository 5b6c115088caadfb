//go:generate mockgen -destination=./mocks/rpm.go . Capabilities

package rpm

import "context"

// Capabilities are the base package-database operations shared by every
// rpm-family backend: querying the install state, installing a package file
// and unpacking a source package for building.
type Capabilities interface {
	// CheckInstalled reports whether the named package is present in the
	// rpm database.
	CheckInstalled(ctx context.Context, name string) (bool, error)

	// InstallFile installs a local package file (binary or source rpm).
	InstallFile(ctx context.Context, path string, opts InstallOptions) error

	// PrepareSource unpacks and patches the sources described by specPath
	// into destPath and returns the ready-to-build directory.
	PrepareSource(ctx context.Context, specPath, destPath, buildOption string) (string, error)
}

// InstallOptions control how a package file is installed.
type InstallOptions struct {
	NoDeps  bool // skip dependency checks (--nodeps)
	Replace bool // reinstall over an existing package (--replacepkgs)
}
