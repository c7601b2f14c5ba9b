// Package mimetype maps file extensions to the Content-Type strings
// embedded next to each asset.
package mimetype

import (
	"path"
	"strings"
)

// Fallback is returned for unknown or missing extensions.
const Fallback = "application/octet-stream"

type mapping struct {
	ext  string
	mime string
}

// table is ordered; lookups are exact on the lowercased extension.
var table = []mapping{
	{".html", "text/html; charset=utf-8"},
	{".js", "application/javascript; charset=utf-8"},
	{".css", "text/css; charset=utf-8"},
	{".svg", "image/svg+xml"},
	{".png", "image/png"},
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
	{".gif", "image/gif"},
	{".ico", "image/x-icon"},
	{".json", "application/json; charset=utf-8"},
	{".txt", "text/plain; charset=utf-8"},
}

// Resolve returns the MIME type for ext, which includes the leading dot.
// Matching is case-insensitive. Unknown extensions resolve to Fallback.
func Resolve(ext string) string {
	ext = strings.ToLower(ext)
	for _, m := range table {
		if m.ext == ext {
			return m.mime
		}
	}
	return Fallback
}

// ForFile resolves the MIME type of a slash-separated file path.
func ForFile(name string) string {
	return Resolve(Ext(name))
}

// Ext returns the extension of the final element of a slash-separated path,
// including the dot. A name whose only dot is the leading one (".env") has
// no extension, nor does a name ending in a dot.
func Ext(name string) string {
	base := path.Base(name)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	return base[i:]
}

// Known returns the recognized extensions in table order.
func Known() []string {
	exts := make([]string, len(table))
	for i, m := range table {
		exts[i] = m.ext
	}
	return exts
}
