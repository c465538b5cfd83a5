package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/diag"
	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/observ"
	"lumen/internal/source"
)

// session carries what a tokenize or parse run needs besides its input.
type session struct {
	settings
	timer    *observ.Timer
	cleanup  func(failed bool)
	stopProf func() error
	stdout   io.Writer
	stderr   io.Writer
}

func startSession(cmd *cobra.Command, target string) (*session, error) {
	s, err := loadSettings(cmd, target)
	if err != nil {
		return nil, err
	}
	stopProf, err := setupProfiling(cmd.Flags())
	if err != nil {
		return nil, err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		_ = stopProf()
		return nil, err
	}
	sess := &session{
		settings: s,
		cleanup:  cleanup,
		stopProf: stopProf,
		stdout:   cmd.OutOrStdout(),
		stderr:   cmd.ErrOrStderr(),
	}
	if s.timings {
		sess.timer = observ.NewTimer()
	}
	return sess, nil
}

// finish prints timings, shuts the tracer down and stops the profilers. It
// returns err, or the profiler error when err is nil.
func (s *session) finish(err error) error {
	if s.timer != nil {
		fmt.Fprint(s.stderr, s.timer.Summary())
	}
	if s.cleanup != nil {
		s.cleanup(err != nil)
	}
	if s.stopProf != nil {
		if profErr := s.stopProf(); profErr != nil && err == nil {
			err = profErr
		}
	}
	return err
}

func (s *session) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           s.jobs,
		Strict:         s.strict,
		Timer:          s.timer,
	}
}

type diagnosticsFormat string

const (
	diagnosticsPretty diagnosticsFormat = "pretty"
	diagnosticsShort  diagnosticsFormat = "short"
)

func readDiagnosticsFormat(value string) (diagnosticsFormat, error) {
	switch diagnosticsFormat(value) {
	case diagnosticsPretty, diagnosticsShort:
		return diagnosticsFormat(value), nil
	default:
		return "", fmt.Errorf("unknown diagnostics format: %s (expected pretty|short)", value)
	}
}

// report writes the bag's diagnostics to stderr in the chosen format.
func (s *session) report(bag *diag.Bag, fs *source.FileSet, format diagnosticsFormat) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	bag.Dedup()

	var err error
	if format == diagnosticsShort {
		_, err = fmt.Fprintln(s.stderr, diag.FormatShort(bag.Items(), fs, true))
	} else {
		err = diagfmt.Pretty(s.stderr, bag.Items(), fs, diagfmt.PrettyOpts{
			Color:     s.color,
			Context:   2,
			ShowNotes: true,
		})
	}
	if err != nil {
		return err
	}
	if n := bag.Dropped(); n > 0 && !s.quiet {
		_, err = fmt.Fprintf(s.stderr, "... %d more diagnostics not shown (--max-diagnostics=%d)\n", n, bag.Cap())
	}
	return err
}

// dirFiles lists the display names a directory run will report, for the
// progress view.
func dirFiles(dir string) []string {
	paths, err := driver.ListFiles(dir)
	if err != nil {
		return nil
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = driver.DisplayPath(dir, p)
	}
	return names
}

func isDir(path string) (bool, error) {
	st, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat path: %w", err)
	}
	return st.IsDir(), nil
}
