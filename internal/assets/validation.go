package assets

import (
	"fmt"
	"strings"
)

// ValidateRelPath checks that rel is usable as a request key once prefixed
// with "/": non-empty, no leading slash, no empty, "." or ".." elements,
// and no NUL byte.
func ValidateRelPath(rel string) error {
	if rel == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidRelPath)
	}
	if strings.HasPrefix(rel, "/") {
		return fmt.Errorf("%w: %q has a leading slash", ErrInvalidRelPath, rel)
	}
	if strings.ContainsRune(rel, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidRelPath, rel)
	}
	for _, elem := range strings.Split(rel, "/") {
		if elem == "" || elem == "." || elem == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidRelPath, rel)
		}
	}
	return nil
}
