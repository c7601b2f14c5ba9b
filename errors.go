package webembed

import (
	"errors"

	"github.com/alnah/go-webembed/internal/assets"
	"github.com/alnah/go-webembed/internal/emit"
	"github.com/alnah/go-webembed/internal/fileutil"
	"github.com/alnah/go-webembed/internal/ident"
)

// Sentinel errors for library operations.
var (
	// ErrMissingPath indicates Input lacks one of its three paths.
	ErrMissingPath = errors.New("missing required path")

	// ErrDuplicatePath indicates two assets share a request path.
	ErrDuplicatePath = errors.New("duplicate request path")

	// Collection errors.
	ErrInputDir       = assets.ErrInputDir
	ErrAssetRead      = assets.ErrAssetRead
	ErrInvalidRelPath = assets.ErrInvalidRelPath

	// Symbol errors.
	ErrSymbolCollision = ident.ErrSymbolCollision

	// Rendering errors.
	ErrInvalidNamespace = emit.ErrInvalidNamespace
	ErrInvalidInclude   = emit.ErrInvalidInclude
	ErrRender           = emit.ErrRender

	// Output errors.
	ErrCreateDir   = fileutil.ErrCreateDir
	ErrWriteFile   = fileutil.ErrWriteFile
	ErrOutputIsDir = fileutil.ErrOutputIsDir
)
