package emit

import "errors"

// Sentinel errors for artifact rendering.
var (
	// ErrInvalidNamespace indicates a namespace that is not a C++ qualified identifier.
	ErrInvalidNamespace = errors.New("invalid namespace")

	// ErrInvalidInclude indicates a header name that cannot appear in #include "...".
	ErrInvalidInclude = errors.New("invalid include name")

	// ErrRender indicates a template execution failure.
	ErrRender = errors.New("failed to render artifact")
)
