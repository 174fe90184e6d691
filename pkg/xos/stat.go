package xos

import (
	"errors"
	"io/fs"
	"os"
)

const (
	// FilePerm is the mode given to generated files.
	FilePerm os.FileMode = 0o644

	// DirPerm is the mode given to directories created for generated files.
	DirPerm os.FileMode = 0o755
)

// Exists reports whether a file or directory exists at path.
// Errors other than "not exist" are treated as existing so that callers
// never overwrite something they could not inspect.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
