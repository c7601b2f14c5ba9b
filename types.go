package webembed

import (
	"fmt"
	"strings"
)

// IndexPath is the request path served for "" and "/".
const IndexPath = "/index.html"

// Asset is one embedded file. Assets are created during collection and never
// modified afterwards; Data must be treated as read-only.
type Asset struct {
	RelPath    string // root-relative, forward slashes, no leading slash
	SourcePath string // absolute path the bytes were read from
	Data       []byte
	MIME       string
	Symbol     string // C++ name of the static byte array
}

// RequestPath returns the lookup key: RelPath with a leading slash.
func (a Asset) RequestPath() string {
	return "/" + a.RelPath
}

// View returns the lookup result for a.
func (a Asset) View() View {
	return View{Data: a.Data, Size: len(a.Data), MIME: a.MIME}
}

// View mirrors the generated AssetView struct.
type View struct {
	Data []byte
	Size int
	MIME string
}

// Input names the asset directory and the two generated files.
type Input struct {
	InputDir   string // directory of assets to embed
	HeaderPath string // declaration artifact (.h)
	SourcePath string // definition artifact (.cpp)
}

// Validate checks that all three paths are present.
func (in Input) Validate() error {
	var missing []string
	if in.InputDir == "" {
		missing = append(missing, "input directory")
	}
	if in.HeaderPath == "" {
		missing = append(missing, "header path")
	}
	if in.SourcePath == "" {
		missing = append(missing, "source path")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingPath, strings.Join(missing, ", "))
	}
	return nil
}

// Result holds the outcome of a generation run.
type Result struct {
	Table      *Table
	Header     []byte // rendered declaration artifact
	Source     []byte // rendered definition artifact
	HeaderPath string // where Header was written (empty for Render)
	SourcePath string // where Source was written (empty for Render)
}
