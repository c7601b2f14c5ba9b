package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	webembed "github.com/alnah/go-webembed"
	"github.com/alnah/go-webembed/internal/config"
	"github.com/alnah/go-webembed/internal/hints"
)

// ErrMissingPaths indicates required paths are absent after merging flags
// and config.
var ErrMissingPaths = errors.New("missing required paths")

// ErrUnexpectedArgs indicates positional arguments were given.
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// runGenerate embeds the input directory into header and source files.
func runGenerate(args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// CLI wins over config.
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := requirePaths(cfg); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	gen := webembed.NewGenerator(generatorOptions(cfg, logger)...)

	_, err = gen.Generate(webembed.Input{
		InputDir:   cfg.Input.Dir,
		HeaderPath: cfg.Output.Header,
		SourcePath: cfg.Output.Source,
	})
	return err
}

// loadConfig returns defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags over config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.paths.inputDir != "" {
		cfg.Input.Dir = flags.paths.inputDir
	}
	if flags.paths.header != "" {
		cfg.Output.Header = flags.paths.header
	}
	if flags.paths.source != "" {
		cfg.Output.Source = flags.paths.source
	}
	if flags.format.namespace != "" {
		cfg.Namespace = flags.format.namespace
	}
	if flags.format.include != "" {
		cfg.Include = flags.format.include
	}
	if flags.format.bytesPerLine != 0 {
		cfg.BytesPerLine = flags.format.bytesPerLine
	}
}

// requirePaths checks that input, header and source are all set.
// The error names the flags so the hint can repeat them.
func requirePaths(cfg *config.Config) error {
	var missing []string
	if cfg.Input.Dir == "" {
		missing = append(missing, "input-dir")
	}
	if cfg.Output.Header == "" {
		missing = append(missing, "out-h")
	}
	if cfg.Output.Source == "" {
		missing = append(missing, "out-cpp")
	}
	if len(missing) == 0 {
		return nil
	}
	return &missingPathsError{missing: missing}
}

type missingPathsError struct {
	missing []string
}

func (e *missingPathsError) Error() string {
	return fmt.Sprintf("%v: --%s", ErrMissingPaths, strings.Join(e.missing, ", --"))
}

func (e *missingPathsError) Unwrap() error {
	return ErrMissingPaths
}

// generatorOptions converts config into library options.
func generatorOptions(cfg *config.Config, logger *log.Logger) []webembed.Option {
	opts := []webembed.Option{
		webembed.WithNamespace(cfg.Namespace),
		webembed.WithLogger(logger),
	}
	if cfg.Include != "" {
		opts = append(opts, webembed.WithInclude(cfg.Include))
	}
	if cfg.BytesPerLine > 0 {
		opts = append(opts, webembed.WithBytesPerLine(cfg.BytesPerLine))
	}
	return opts
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var mp *missingPathsError
	switch {
	case errors.As(err, &mp):
		return hints.ForMissingPaths(mp.missing)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, webembed.ErrInputDir):
		return hints.ForInputDir()
	case errors.Is(err, webembed.ErrSymbolCollision):
		return hints.ForSymbolCollision()
	case errors.Is(err, webembed.ErrInvalidNamespace):
		return hints.ForNamespace()
	case errors.Is(err, webembed.ErrCreateDir), errors.Is(err, webembed.ErrWriteFile):
		return hints.ForOutputDirectory()
	}
	return ""
}
