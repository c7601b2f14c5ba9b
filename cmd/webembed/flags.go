package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds the input directory and the two artifact paths.
type pathFlags struct {
	inputDir string
	header   string
	source   string
}

// formatFlags holds flags shaping the generated C++.
type formatFlags struct {
	namespace    string
	include      string
	bytesPerLine int
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common commonFlags
	paths  pathFlags
	format formatFlags
}

// listFlags holds all flags for the list command.
type listFlags struct {
	common   commonFlags
	inputDir string
	types    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every embedded asset")
}

// addPathFlags adds input and output path flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.inputDir, "input-dir", "i", "", "directory of static assets")
	fs.StringVar(&f.header, "out-h", "", "generated header path")
	fs.StringVar(&f.source, "out-cpp", "", "generated source path")
}

// addFormatFlags adds code generation flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.StringVarP(&f.namespace, "namespace", "n", "", "C++ namespace (default: web_assets)")
	fs.StringVar(&f.include, "include", "", "header name used by #include (default: base name of --out-h)")
	fs.IntVar(&f.bytesPerLine, "bytes-per-line", 0, "byte values per initializer line (default: 16)")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &generateFlags{}

	addPathFlags(fs, &f.paths)
	addFormatFlags(fs, &f.format)
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printGenerateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

// parseListFlags parses list command flags and returns positional args.
func parseListFlags(args []string, stderr io.Writer) (*listFlags, []string, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &listFlags{}

	fs.StringVarP(&f.inputDir, "input-dir", "i", "", "directory of static assets")
	fs.BoolVar(&f.types, "types", false, "print the extension to MIME table and exit")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printListUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return f, fs.Args(), nil
}
