package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.lm|directory>",
	Short: "Parse a lumen source file or directory and print the program",
	Long: `Parse reads a lumen source file, or every *.lm file in a directory, and prints
the parsed program. Diagnostics go to stderr; the exit status is 1 when any
error was reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	registerParseFlags(parseCmd.Flags())
}

func registerParseFlags(flags *pflag.FlagSet) {
	flags.String("format", "pretty", "output format (pretty|tree)")
	flags.String("diagnostics", "pretty", "diagnostics format (pretty|short)")
	flags.Bool("strict", false, "warn about tokens that cannot start a statement")
}

type programFormat string

const (
	programPretty programFormat = "pretty"
	programTree   programFormat = "tree"
)

func readProgramFormat(value string) (programFormat, error) {
	switch programFormat(value) {
	case programPretty, programTree:
		return programFormat(value), nil
	default:
		return "", fmt.Errorf("unknown format: %s (expected pretty|tree)", value)
	}
}

type parseOutput struct {
	program programFormat
	diags   diagnosticsFormat
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	formatValue, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	diagValue, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	var out parseOutput
	if out.program, err = readProgramFormat(formatValue); err != nil {
		return err
	}
	if out.diags, err = readDiagnosticsFormat(diagValue); err != nil {
		return err
	}

	dir, err := isDir(target)
	if err != nil {
		return err
	}
	sess, err := startSession(cmd, target)
	if err != nil {
		return err
	}
	if dir {
		return sess.finish(parseDir(cmd.Context(), sess, target, out))
	}
	return sess.finish(parseOne(cmd.Context(), sess, target, out))
}

func parseOne(ctx context.Context, sess *session, path string, out parseOutput) error {
	result, err := driver.Parse(ctx, path, sess.driverOptions())
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if err := sess.report(result.Bag, result.FileSet, out.diags); err != nil {
		return err
	}
	if err := writeProgram(sess.stdout, out.program, result.Program, result.File, result.FileSet); err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errHasDiagnostics
	}
	return nil
}

type parseDirOutput struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
}

func parseDir(ctx context.Context, sess *session, dir string, out parseOutput) error {
	run := func(ctx context.Context, sink driver.ProgressSink) (parseDirOutput, error) {
		opts := sess.driverOptions()
		opts.Sink = sink
		fs, results, err := driver.ParseDir(ctx, dir, opts)
		return parseDirOutput{fs: fs, results: results}, err
	}

	var (
		res parseDirOutput
		err error
	)
	if sess.useUI {
		res, err = runWithUI(ctx, "lumen parse", dirFiles(dir), run)
	} else {
		res, err = run(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	// diagnostics first, in file order, so they are not interleaved with output
	failed := false
	merged := diag.NewBag(0)
	for _, r := range res.results {
		if r.Bag.HasErrors() {
			failed = true
		}
		if out.diags == diagnosticsShort {
			merged.Merge(r.Bag)
			continue
		}
		if err := sess.report(r.Bag, res.fs, out.diags); err != nil {
			return err
		}
	}
	if err := sess.report(merged, res.fs, out.diags); err != nil {
		return err
	}

	for idx, r := range res.results {
		if r.Program == nil {
			continue
		}
		if !sess.quiet && out.program == programPretty {
			if _, err := fmt.Fprintf(sess.stdout, "== %s ==\n", r.Path); err != nil {
				return err
			}
		}
		if err := writeProgram(sess.stdout, out.program, r.Program, res.fs.Get(r.FileID), res.fs); err != nil {
			return err
		}
		if !sess.quiet && idx < len(res.results)-1 {
			if _, err := fmt.Fprintln(sess.stdout); err != nil {
				return err
			}
		}
	}

	if failed {
		return errHasDiagnostics
	}
	return nil
}

func writeProgram(w io.Writer, format programFormat, program *ast.Program, file *source.File, fs *source.FileSet) error {
	switch format {
	case programTree:
		return diagfmt.FormatProgramTree(w, program, file, fs)
	default:
		return diagfmt.FormatProgramSource(w, program)
	}
}
