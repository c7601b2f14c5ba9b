// Package ident turns relative asset paths into C++ symbol names.
package ident

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSymbolCollision indicates two distinct assets sanitize to the same symbol.
var ErrSymbolCollision = errors.New("symbol collision")

// Sanitize returns a valid C++ identifier derived from s.
// Every character outside [A-Za-z0-9] becomes a single underscore, position
// for position. An underscore is prepended when the result is empty or would
// start with a digit.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 1)

	for _, r := range s {
		if isAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	out := b.String()
	if out == "" || isDigit(out[0]) {
		return "_" + out
	}
	return out
}

// IsValid reports whether s is usable as a C++ identifier: non-empty,
// [A-Za-z0-9_] only, and not starting with a digit.
func IsValid(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for _, r := range s {
		if r != '_' && !isAlnum(r) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Registry tracks symbols already emitted in one generation run.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	owners map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{owners: make(map[string]string)}
}

// Claim records symbol as belonging to owner.
// Returns ErrSymbolCollision when a different owner already holds symbol.
// Claiming the same symbol twice for the same owner is a no-op.
func (r *Registry) Claim(symbol, owner string) error {
	if prev, ok := r.owners[symbol]; ok && prev != owner {
		return fmt.Errorf("%w: %q and %q both map to %s", ErrSymbolCollision, prev, owner, symbol)
	}
	r.owners[symbol] = owner
	return nil
}

// Len returns the number of claimed symbols.
func (r *Registry) Len() int {
	return len(r.owners)
}
