// Package archive packs prepared source trees into distributable archives.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/yumctl/pkg/fsutil"
	"github.com/mholt/archives"
)

// Manager handles archive creation operations.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// Pack creates a gzip-compressed tarball at archivePath from the specified
// source directory. The archived tree is rooted under the directory's base
// name, so unpacking yields a single top-level directory.
func (am *Manager) Pack(ctx context.Context, sourceDir, archivePath string) error {
	absolutePath, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for source directory: %w", err)
	}

	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absolutePath: filepath.Base(absolutePath),
	})
	if err != nil {
		return fmt.Errorf("failed to read files from disk: %w", err)
	}

	// Ensure the output directory exists
	if err := fsutil.EnsureFileDir(archivePath); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Create the output file
	file, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", archivePath, err)
	}
	// Ensure data is flushed and handle is released promptly
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}

	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	return nil
}
