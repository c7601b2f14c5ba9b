package webembed

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates files under a fresh temp dir and returns its path.
// Keys are slash-separated relative paths.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	return root
}

// outputPaths returns header and source paths inside a nested temp dir that
// does not exist yet.
func outputPaths(t *testing.T) (string, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "build", "gen")
	return filepath.Join(dir, "web_assets_embedded.h"), filepath.Join(dir, "web_assets_embedded.cpp")
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}
