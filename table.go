package webembed

import (
	"fmt"

	"github.com/alnah/go-webembed/internal/assets"
	"github.com/alnah/go-webembed/internal/ident"
)

// Table is the ordered, immutable list of embedded assets.
// Lookup is a linear scan in collection order, matching the generated code.
type Table struct {
	assets []Asset
}

// NewTable validates assets and returns them as a Table.
// Order is preserved. Returns ErrInvalidRelPath, ErrDuplicatePath or
// ErrSymbolCollision when an asset breaks a table invariant.
func NewTable(list []Asset) (*Table, error) {
	seen := make(map[string]struct{}, len(list))
	symbols := ident.NewRegistry()

	for _, a := range list {
		if err := assets.ValidateRelPath(a.RelPath); err != nil {
			return nil, err
		}
		if _, dup := seen[a.RelPath]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, a.RequestPath())
		}
		seen[a.RelPath] = struct{}{}

		if !ident.IsValid(a.Symbol) {
			return nil, fmt.Errorf("%w: %q is not a valid identifier for %s", ErrInvalidRelPath, a.Symbol, a.RelPath)
		}
		if err := symbols.Claim(a.Symbol, a.RelPath); err != nil {
			return nil, err
		}
	}

	return &Table{assets: append([]Asset(nil), list...)}, nil
}

// Len returns the number of assets.
func (t *Table) Len() int {
	return len(t.assets)
}

// Assets returns a copy of the asset list in table order.
func (t *Table) Assets() []Asset {
	return append([]Asset(nil), t.assets...)
}

// TotalBytes returns the sum of all asset sizes.
func (t *Table) TotalBytes() int {
	total := 0
	for _, a := range t.assets {
		total += len(a.Data)
	}
	return total
}

// Get looks up path and fills out on a hit.
// "" and "/" are served as IndexPath. Returns false when out is nil or
// nothing matches; out is left untouched on a miss.
func (t *Table) Get(path string, out *View) bool {
	if out == nil {
		return false
	}
	if path == "" || path == "/" {
		path = IndexPath
	}
	for _, a := range t.assets {
		if a.RequestPath() == path {
			*out = a.View()
			return true
		}
	}
	return false
}

// Lookup is Get returning the view by value.
func (t *Table) Lookup(path string) (View, bool) {
	var v View
	ok := t.Get(path, &v)
	return v, ok
}
