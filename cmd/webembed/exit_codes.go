package main

import (
	"errors"
	"os"

	webembed "github.com/alnah/go-webembed"
	"github.com/alnah/go-webembed/internal/config"
)

// Exit codes for webembed CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Outputs written
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, input directory or namespace
	ExitIO        = 3 // Asset unreadable, output directory or file not writable
	ExitCollision = 4 // Two assets map to the same C++ symbol
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Symbol collisions (exit 4)
	if errors.Is(err, webembed.ErrSymbolCollision) {
		return ExitCollision
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrMissingPaths) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, webembed.ErrMissingPath) ||
		errors.Is(err, webembed.ErrInputDir) ||
		errors.Is(err, webembed.ErrInvalidNamespace) ||
		errors.Is(err, webembed.ErrInvalidInclude) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, webembed.ErrAssetRead) ||
		errors.Is(err, webembed.ErrCreateDir) ||
		errors.Is(err, webembed.ErrWriteFile) ||
		errors.Is(err, webembed.ErrOutputIsDir) {
		return ExitIO
	}

	return ExitGeneral
}
