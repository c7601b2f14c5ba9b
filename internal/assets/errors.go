package assets

import "errors"

// Sentinel errors for asset collection.
var (
	// ErrInputDir indicates the input root is empty, missing, or not a directory.
	ErrInputDir = errors.New("invalid input directory")

	// ErrAssetRead indicates an I/O error while scanning the tree or reading a file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrInvalidRelPath indicates a relative path that cannot be used as a request key.
	ErrInvalidRelPath = errors.New("invalid relative path")
)
