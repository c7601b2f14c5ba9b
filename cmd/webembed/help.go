package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webembed <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Embed a directory of web assets into C++ sources")
	fmt.Fprintln(w, "  list       Show what would be embedded")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags without a command run generate:")
	fmt.Fprintln(w, "  webembed --input-dir src/web --out-h gen/assets.h --out-cpp gen/assets.cpp")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'webembed help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webembed generate --input-dir <dir> --out-h <file> --out-cpp <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Embed every regular file under a directory into a C++ header and source.")
	fmt.Fprintln(w, "Existing outputs are replaced; nothing is written if any asset fails.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input-dir <dir>     Directory of static assets")
	fmt.Fprintln(w, "      --out-h <file>        Generated header path")
	fmt.Fprintln(w, "      --out-cpp <file>      Generated source path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code:")
	fmt.Fprintln(w, "  -n, --namespace <ns>      C++ namespace, e.g. my_app::web (default: web_assets)")
	fmt.Fprintln(w, "      --include <name>      Header name in #include (default: base name of --out-h)")
	fmt.Fprintln(w, "      --bytes-per-line <n>  Byte values per line, 1-4096 (default: 16)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every embedded asset")
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webembed list --input-dir <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the request path, size, MIME type and symbol of every asset.")
	fmt.Fprintln(w, "Nothing is written.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input-dir <dir>     Directory of static assets")
	fmt.Fprintln(w, "      --types               Print the extension to MIME table")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every asset")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: webembed version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: webembed help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
