package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File is one discovered asset on disk.
type File struct {
	RelPath string // root-relative, forward slashes, no leading slash
	Path    string // absolute path used for reading
}

// Collector enumerates regular files under a single input root.
type Collector struct {
	root string
}

// NewCollector creates a Collector for root.
// Returns ErrInputDir if root is empty, does not exist, or is not a directory.
func NewCollector(root string) (*Collector, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInputDir)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputDir, err)
	}

	// WalkDir does not descend into a symlinked root, so resolve it first.
	if realRoot, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = realRoot
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInputDir, absRoot)
		}
		return nil, fmt.Errorf("%w: %v", ErrInputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInputDir, absRoot)
	}

	return &Collector{root: absRoot}, nil
}

// Root returns the resolved absolute input root.
func (c *Collector) Root() string {
	return c.root
}

// Collect walks the root and returns every regular file sorted by RelPath.
func (c *Collector) Collect() ([]File, error) {
	var files []File

	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: scanning %s: %v", ErrAssetRead, path, err)
		}
		if path == c.root || d.IsDir() {
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}

		rel, err := c.relPath(path)
		if err != nil {
			return err
		}
		files = append(files, File{RelPath: rel, Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b File) int {
		return strings.Compare(a.RelPath, b.RelPath)
	})

	return files, nil
}

// relPath converts an absolute path under the root into a request-style
// relative path.
func (c *Collector) relPath(path string) (string, error) {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidRelPath, path, err)
	}
	rel = filepath.ToSlash(rel)
	if err := ValidateRelPath(rel); err != nil {
		return "", err
	}
	return rel, nil
}

// isRegularFile reports whether the entry is a regular file, following a
// symlink one level to decide.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile returns the contents of f.
// Errors are wrapped in ErrAssetRead.
func ReadFile(f File) ([]byte, error) {
	data, err := os.ReadFile(f.Path) // #nosec G304 -- path comes from walking the input root
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetRead, f.RelPath, err)
	}
	return data, nil
}
