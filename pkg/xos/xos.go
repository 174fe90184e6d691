//go:build !windows
// +build !windows

// Package xos provides atomic file operations for generated sources.
// Every write goes through a temp file in the target directory and a rename,
// so a crash never leaves a half-written scaffold behind.
package xos

import (
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteFile writes data to the named file atomically using rename.
// Missing parent directories are created with DirPerm.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(filename), DirPerm); err != nil {
		return err
	}
	return renameio.WriteFile(filename, data, perm)
}
