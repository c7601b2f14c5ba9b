package webembed

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-webembed/internal/assets"
	"github.com/alnah/go-webembed/internal/bytelit"
	"github.com/alnah/go-webembed/internal/emit"
	"github.com/alnah/go-webembed/internal/fileutil"
	"github.com/alnah/go-webembed/internal/ident"
	"github.com/alnah/go-webembed/internal/mimetype"
)

// symbolPrefix is prepended to the relative path before sanitizing.
const symbolPrefix = "asset_"

// Option configures a Generator.
type Option func(*Generator)

// WithNamespace sets the C++ namespace ("a" or "a::b").
// An empty namespace keeps the default.
func WithNamespace(ns string) Option {
	return func(g *Generator) {
		if ns != "" {
			g.namespace = ns
		}
	}
}

// WithInclude sets the header name the source includes.
// By default the base name of the header path is used.
func WithInclude(name string) Option {
	return func(g *Generator) {
		g.include = name
	}
}

// WithBytesPerLine sets how many byte values go on each initializer line.
// Panics if n < 1 (programmer error, similar to time.NewTicker).
func WithBytesPerLine(n int) Option {
	if n < 1 {
		panic("webembed: WithBytesPerLine count must be positive")
	}
	return func(g *Generator) {
		g.bytesPerLine = n
	}
}

// WithLogger sets the logger used for progress messages.
// A nil logger keeps the silent default.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// Generator turns an asset directory into embedded C++ sources.
// A Generator holds only configuration and is safe to reuse.
type Generator struct {
	namespace    string
	include      string
	bytesPerLine int
	logger       *log.Logger
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		namespace:    emit.DefaultNamespace,
		bytesPerLine: bytelit.DefaultPerLine,
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build collects every regular file under inputDir and returns the asset
// table in sorted order.
// Returns ErrInputDir, ErrAssetRead or ErrSymbolCollision.
func (g *Generator) Build(inputDir string) (*Table, error) {
	collector, err := assets.NewCollector(inputDir)
	if err != nil {
		return nil, err
	}

	files, err := collector.Collect()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("collected assets", "root", collector.Root(), "count", len(files))

	list := make([]Asset, 0, len(files))
	for _, f := range files {
		data, err := assets.ReadFile(f)
		if err != nil {
			return nil, err
		}
		a := Asset{
			RelPath:    f.RelPath,
			SourcePath: f.Path,
			Data:       data,
			MIME:       mimetype.ForFile(f.RelPath),
			Symbol:     ident.Sanitize(symbolPrefix + f.RelPath),
		}
		g.logger.Debug("asset", "path", a.RequestPath(), "size", len(a.Data), "mime", a.MIME, "symbol", a.Symbol)
		list = append(list, a)
	}

	return NewTable(list)
}

// Render produces both artifacts in memory. headerPath only determines the
// default include name; nothing is written.
func (g *Generator) Render(t *Table, headerPath string) (*Result, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrRender)
	}

	include := g.include
	if include == "" {
		include = filepath.Base(headerPath)
	}

	e, err := emit.New(emit.Options{
		Namespace:    g.namespace,
		Include:      include,
		BytesPerLine: g.bytesPerLine,
	})
	if err != nil {
		return nil, err
	}

	header, err := e.Header()
	if err != nil {
		return nil, err
	}

	entries := make([]emit.Entry, 0, t.Len())
	for _, a := range t.assets {
		entries = append(entries, emit.Entry{
			Path:   a.RequestPath(),
			Symbol: a.Symbol,
			MIME:   a.MIME,
			Data:   a.Data,
		})
	}
	source, err := e.Source(entries)
	if err != nil {
		return nil, err
	}

	return &Result{Table: t, Header: header, Source: source}, nil
}

// Generate builds, renders and writes both artifacts.
// Outputs are only touched once every asset has been read and both files have
// been rendered, so a failed run leaves previous outputs in place.
func (g *Generator) Generate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	t, err := g.Build(in.InputDir)
	if err != nil {
		return nil, err
	}

	res, err := g.Render(t, in.HeaderPath)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFile(in.HeaderPath, res.Header); err != nil {
		return nil, err
	}
	if err := fileutil.WriteFile(in.SourcePath, res.Source); err != nil {
		return nil, err
	}
	res.HeaderPath = in.HeaderPath
	res.SourcePath = in.SourcePath

	g.logger.Info("generated",
		"assets", t.Len(),
		"bytes", t.TotalBytes(),
		"header", in.HeaderPath,
		"source", in.SourcePath,
	)
	return res, nil
}
