package fsutil

import (
	"os"
)

// CreateFilePerm creates a new file with the specified permissions.
// An existing file at the same path is truncated.
func CreateFilePerm(name string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
}
