package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.lm|directory>",
	Short: "Tokenize a lumen source file or directory",
	Long:  `Tokenize prints the tokens of a lumen source file, or of every *.lm file in a directory, one per line`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]
	dir, err := isDir(target)
	if err != nil {
		return err
	}

	sess, err := startSession(cmd, target)
	if err != nil {
		return err
	}
	if dir {
		return sess.finish(tokenizeDir(cmd.Context(), sess, target))
	}
	return sess.finish(tokenizeOne(cmd.Context(), sess, target))
}

func tokenizeOne(ctx context.Context, sess *session, path string) error {
	result, err := driver.Tokenize(ctx, path, sess.driverOptions())
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return diagfmt.FormatTokensPretty(sess.stdout, result.Tokens, result.FileSet)
}

type tokenizeDirOutput struct {
	fs      *source.FileSet
	results []driver.TokenizeDirResult
}

func tokenizeDir(ctx context.Context, sess *session, dir string) error {
	run := func(ctx context.Context, sink driver.ProgressSink) (tokenizeDirOutput, error) {
		opts := sess.driverOptions()
		opts.Sink = sink
		fs, results, err := driver.TokenizeDir(ctx, dir, opts)
		return tokenizeDirOutput{fs: fs, results: results}, err
	}

	var (
		out tokenizeDirOutput
		err error
	)
	if sess.useUI {
		out, err = runWithUI(ctx, "lumen tokenize", dirFiles(dir), run)
	} else {
		out, err = run(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	failed := false
	for idx, r := range out.results {
		if r.Bag.HasErrors() {
			failed = true
		}
		if err := sess.report(r.Bag, out.fs, diagnosticsPretty); err != nil {
			return err
		}
		if r.Tokens == nil {
			continue
		}
		if !sess.quiet {
			if _, err := fmt.Fprintf(sess.stdout, "== %s ==\n", r.Path); err != nil {
				return err
			}
		}
		if err := diagfmt.FormatTokensPretty(sess.stdout, r.Tokens, out.fs); err != nil {
			return err
		}
		if !sess.quiet && idx < len(out.results)-1 {
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
