package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand indicates the first argument is not a known command.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	verbose := hasVerboseFlag(os.Args[1:])
	setMaxProcs(newLogger(os.Stderr, false, verbose), verbose)

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// setMaxProcs configures GOMAXPROCS from the container quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(logger *log.Logger, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(logger.Debugf))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag reports whether args request verbose output before flags
// are parsed for real.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" || a == "--verbose=true" {
			return true
		}
	}
	return false
}

// runMain dispatches to a command and returns the process exit code.
// A leading flag instead of a command runs generate.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if strings.HasPrefix(cmd, "-") && cmd != "-h" && cmd != "--help" {
		cmd, rest = "generate", args[1:]
	}

	var err error
	switch cmd {
	case "generate":
		err = runGenerate(rest, env)
	case "list":
		err = runList(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "webembed %s\n", Version)
	case "help", "-h", "--help":
		if cmd == "help" {
			return runHelp(rest, env)
		}
		printUsage(env.Stdout)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintf(env.Stderr, "%v\n\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}
