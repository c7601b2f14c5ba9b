package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	webembed "github.com/alnah/go-webembed"
	"github.com/alnah/go-webembed/internal/mimetype"
)

// runList prints what generate would embed without writing anything.
func runList(args []string, env *Environment) error {
	flags, positional, err := parseListFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	if flags.types {
		return printTypes(env.Stdout)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if flags.inputDir != "" {
		cfg.Input.Dir = flags.inputDir
	}
	if cfg.Input.Dir == "" {
		return &missingPathsError{missing: []string{"input-dir"}}
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	tbl, err := webembed.NewGenerator(webembed.WithLogger(logger)).Build(cfg.Input.Dir)
	if err != nil {
		return err
	}

	if err := printTable(env.Stdout, tbl); err != nil {
		return err
	}
	logger.Info("listed", "assets", tbl.Len(), "bytes", tbl.TotalBytes())
	return nil
}

// printTable writes one aligned row per asset: request path, size, MIME, symbol.
func printTable(w io.Writer, tbl *webembed.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tSIZE\tMIME\tSYMBOL")
	for _, a := range tbl.Assets() {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", a.RequestPath(), len(a.Data), a.MIME, a.Symbol)
	}
	return tw.Flush()
}

// printTypes writes the extension to MIME table in lookup order.
func printTypes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EXT\tMIME")
	for _, ext := range mimetype.Known() {
		fmt.Fprintf(tw, "%s\t%s\n", ext, mimetype.Resolve(ext))
	}
	fmt.Fprintf(tw, "*\t%s\n", mimetype.Fallback)
	return tw.Flush()
}

