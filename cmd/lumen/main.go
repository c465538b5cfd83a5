// Package main implements the lumen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"lumen/internal/version"
)

// errHasDiagnostics makes a command exit 1 after its diagnostics were printed.
var errHasDiagnostics = errors.New("errors were reported")

var rootCmd = &cobra.Command{
	Use:           "lumen",
	Short:         "Lumen front end: scanner and parser tools",
	Long:          `Lumen tokenizes and parses .lm source files and reports syntax diagnostics`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	registerRootFlags(rootCmd.PersistentFlags())
}

// registerRootFlags defines the flags shared by every command.
func registerRootFlags(flags *pflag.FlagSet) {
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics per file (0=unlimited)")
	flags.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	flags.String("ui", "auto", "progress display for directories (auto|on|off)")

	flags.String("trace", "", "write trace events to a file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	flags.String("trace-format", "auto", "trace output format (auto|text|ndjson)")

	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime execution trace to file")
}

// main registers the command tree and exits 1 when the command fails.
func main() {
	rootCmd.Version = version.Current()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errHasDiagnostics) {
			fmt.Fprintf(os.Stderr, "lumen: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
