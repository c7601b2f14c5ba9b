package emit

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/alnah/go-webembed/internal/bytelit"
	"github.com/alnah/go-webembed/internal/ident"
)

//go:embed templates/*.tmpl
var templates embed.FS

// DefaultNamespace is used when Options.Namespace is empty.
const DefaultNamespace = "web_assets"

// Entry is one asset as it appears in the generated source.
type Entry struct {
	Path   string // request path, including the leading slash
	Symbol string // name of the static byte array
	MIME   string
	Data   []byte
}

// Size returns the byte count written into the AssetView initializer.
func (e Entry) Size() int {
	return len(e.Data)
}

// Options configures an Emitter.
type Options struct {
	Namespace    string // C++ namespace, "a" or "a::b" (default: DefaultNamespace)
	Include      string // header name used by the source's #include (required)
	BytesPerLine int    // values per initializer line (default: bytelit.DefaultPerLine)
}

// Emitter renders header and source artifacts.
type Emitter struct {
	namespace string
	include   string
	header    *template.Template
	source    *template.Template
}

// New validates opts and parses the embedded templates.
func New(opts Options) (*Emitter, error) {
	ns := opts.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	if err := ValidateNamespace(ns); err != nil {
		return nil, err
	}
	if err := ValidateInclude(opts.Include); err != nil {
		return nil, err
	}

	perLine := opts.BytesPerLine
	if perLine < 1 {
		perLine = bytelit.DefaultPerLine
	}

	funcs := template.FuncMap{
		"cstring": CString,
		"bytes": func(data []byte) string {
			return bytelit.EncodeWidth(data, perLine)
		},
	}

	header, err := parse("header.h.tmpl", funcs)
	if err != nil {
		return nil, err
	}
	source, err := parse("source.cpp.tmpl", funcs)
	if err != nil {
		return nil, err
	}

	return &Emitter{
		namespace: ns,
		include:   opts.Include,
		header:    header,
		source:    source,
	}, nil
}

func parse(name string, funcs template.FuncMap) (*template.Template, error) {
	tmpl, err := template.New(name).
		Delims("[[", "]]").
		Funcs(funcs).
		Option("missingkey=error").
		ParseFS(templates, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrRender, name, err)
	}
	return tmpl, nil
}

// Namespace returns the resolved namespace.
func (e *Emitter) Namespace() string {
	return e.namespace
}

type templateData struct {
	Namespace string
	Include   string
	Entries   []Entry
}

// Header renders the declaration artifact.
func (e *Emitter) Header() ([]byte, error) {
	return e.execute(e.header, nil)
}

// Source renders the definition artifact for entries, in the given order.
func (e *Emitter) Source(entries []Entry) ([]byte, error) {
	return e.execute(e.source, entries)
}

func (e *Emitter) execute(tmpl *template.Template, entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	data := templateData{
		Namespace: e.namespace,
		Include:   e.include,
		Entries:   entries,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// ValidateNamespace checks that ns is a plain or "::"-qualified C++
// identifier and that no component is a keyword.
func ValidateNamespace(ns string) error {
	if ns == "" {
		return fmt.Errorf("%w: empty", ErrInvalidNamespace)
	}
	for _, part := range strings.Split(ns, "::") {
		if !ident.IsValid(part) {
			return fmt.Errorf("%w: %q", ErrInvalidNamespace, ns)
		}
		if cppKeywords[part] {
			return fmt.Errorf("%w: %q is a C++ keyword", ErrInvalidNamespace, part)
		}
	}
	return nil
}

// ValidateInclude checks that name can sit between the quotes of an
// #include directive.
func ValidateInclude(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidInclude)
	}
	if strings.ContainsAny(name, "\"\n\r\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidInclude, name)
	}
	return nil
}

var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "asm": true, "auto": true,
	"bool": true, "break": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "constexpr": true, "continue": true,
	"decltype": true, "default": true, "delete": true, "do": true, "double": true,
	"else": true, "enum": true, "explicit": true, "export": true, "extern": true,
	"false": true, "float": true, "for": true, "friend": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "mutable": true,
	"namespace": true, "new": true, "noexcept": true, "not": true, "nullptr": true,
	"operator": true, "or": true, "private": true, "protected": true, "public": true,
	"register": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "template": true, "this": true,
	"throw": true, "true": true, "try": true, "typedef": true, "typename": true,
	"union": true, "unsigned": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true, "xor": true,
}
