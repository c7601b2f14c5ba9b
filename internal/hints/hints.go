// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForInputDir returns hints for a missing or invalid input directory.
func ForInputDir() string {
	return format("check --input-dir (or input.dir in the config) points at an existing directory")
}

// ForMissingPaths returns hints naming the flags that were not provided.
func ForMissingPaths(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	flags := make([]string, len(missing))
	for i, m := range missing {
		flags[i] = "--" + m
	}
	return format("provide " + strings.Join(flags, ", ") + " or set them in a config file")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and creating a config in ~/.config/webembed/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/webembed") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForSymbolCollision returns hints for two assets mapping to one C++ symbol.
func ForSymbolCollision() string {
	return format("rename one of the files; non-alphanumeric characters all map to '_'")
}

// ForNamespace returns hints for an invalid --namespace value.
func ForNamespace() string {
	return format("use a C++ identifier such as my_app_web or my_app::web")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
