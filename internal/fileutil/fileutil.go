// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for file utility operations.
var (
	ErrOutputPathEmpty = errors.New("output path cannot be empty")
	ErrOutputIsDir     = errors.New("output path is a directory")
	ErrCreateDir       = errors.New("failed to create output directory")
	ErrWriteFile       = errors.New("failed to write output file")
)

// WriteFile writes data to path, creating missing parent directories.
// An existing file is replaced unconditionally; nothing is merged or backed up.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return ErrOutputPathEmpty
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateDir, err)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputIsDir, path)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil { // #nosec G306 -- generated sources are meant to be readable
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "webembed" -> false (name)
//   - "./webembed.yaml" -> true (relative path)
//   - "/etc/webembed.yaml" -> true (absolute)
//   - "C:\build\webembed.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
