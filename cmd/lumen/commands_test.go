package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"lumen/internal/observ"
)

func newTestSession(s settings) (*session, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &session{
		settings: s,
		cleanup:  func(bool) {},
		stdout:   &stdout,
		stderr:   &stderr,
	}, &stdout, &stderr
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseOnePrintsProgram(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.lm", "let x = 5;\nreturn x;\n")
	sess, stdout, stderr := newTestSession(settings{})

	if err := parseOne(context.Background(), sess, path, parseOutput{program: programPretty, diags: diagnosticsPretty}); err != nil {
		t.Fatalf("parseOne: %v", err)
	}
	if got, want := stdout.String(), "let x = <expr>;\nreturn <expr>;\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", stderr.String())
	}
}

func TestParseOneReportsErrors(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.lm", "let 3242;\nlet y = 1;\n")
	sess, stdout, stderr := newTestSession(settings{})

	err := parseOne(context.Background(), sess, path, parseOutput{program: programPretty, diags: diagnosticsShort})
	if !errors.Is(err, errHasDiagnostics) {
		t.Fatalf("parseOne error = %v, want errHasDiagnostics", err)
	}
	if !strings.Contains(stderr.String(), "SYN2001") {
		t.Errorf("stderr should carry the diagnostic code:\n%s", stderr.String())
	}
	if got := stdout.String(); got != "let y = <expr>;\n" {
		t.Errorf("later statements should still print, got %q", got)
	}
}

func TestParseOneNotesDroppedDiagnostics(t *testing.T) {
	path := writeSource(t, t.TempDir(), "many.lm", "let 1; let 2; let 3; let 4;")
	sess, _, stderr := newTestSession(settings{maxDiagnostics: 2})

	err := parseOne(context.Background(), sess, path, parseOutput{program: programPretty, diags: diagnosticsShort})
	if !errors.Is(err, errHasDiagnostics) {
		t.Fatalf("parseOne error = %v, want errHasDiagnostics", err)
	}
	if got := strings.Count(stderr.String(), "SYN2001"); got != 2 {
		t.Errorf("printed %d diagnostics, want 2:\n%s", got, stderr.String())
	}
	if !strings.Contains(stderr.String(), "... 2 more diagnostics not shown (--max-diagnostics=2)") {
		t.Errorf("missing dropped note:\n%s", stderr.String())
	}
}

func TestParseOneStrictWarns(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.lm", "5 + 5;\nreturn 1;\n")
	sess, stdout, stderr := newTestSession(settings{strict: true})

	if err := parseOne(context.Background(), sess, path, parseOutput{program: programPretty, diags: diagnosticsShort}); err != nil {
		t.Fatalf("warnings alone must not fail the run: %v", err)
	}
	if !strings.Contains(stderr.String(), "SYN2002") {
		t.Errorf("expected a strict-mode warning:\n%s", stderr.String())
	}
	if stdout.String() != "return <expr>;\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestParseDirOrdersOutput(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.lm", "return b;\n")
	writeSource(t, dir, "a.lm", "let a = 1;\n")
	writeSource(t, dir, "notes.txt", "ignored")

	sess, stdout, _ := newTestSession(settings{jobs: 4})
	if err := parseDir(context.Background(), sess, dir, parseOutput{program: programPretty, diags: diagnosticsPretty}); err != nil {
		t.Fatalf("parseDir: %v", err)
	}
	want := "== a.lm ==\nlet a = <expr>;\n\n== b.lm ==\nreturn <expr>;\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestParseDirTree(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.lm", "let a = 1;\n")

	sess, stdout, _ := newTestSession(settings{quiet: true})
	if err := parseDir(context.Background(), sess, dir, parseOutput{program: programTree, diags: diagnosticsPretty}); err != nil {
		t.Fatalf("parseDir: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"Program", "(1 statements)", "Let", "Name: a"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
}

func TestTokenizeOne(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.lm", "let x")
	sess, stdout, _ := newTestSession(settings{})

	if err := tokenizeOne(context.Background(), sess, path); err != nil {
		t.Fatalf("tokenizeOne: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 token lines, got %d:\n%s", len(lines), stdout.String())
	}
	if !strings.Contains(lines[0], `"let"`) || !strings.Contains(lines[1], `"x"`) || !strings.Contains(lines[2], "EOF") {
		t.Errorf("unexpected token lines:\n%s", stdout.String())
	}
}

func TestTokenizeDirHeaders(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "one.lm", "1")
	writeSource(t, dir, "sub/two.lm", "2")

	sess, stdout, _ := newTestSession(settings{})
	if err := tokenizeDir(context.Background(), sess, dir); err != nil {
		t.Fatalf("tokenizeDir: %v", err)
	}
	out := stdout.String()
	first, second := strings.Index(out, "== one.lm =="), strings.Index(out, "== sub/two.lm ==")
	if first < 0 || second < first {
		t.Errorf("headers missing or out of order:\n%s", out)
	}
}

func TestReadFormats(t *testing.T) {
	if _, err := readProgramFormat("json"); err == nil {
		t.Error("readProgramFormat(json) should fail")
	}
	if _, err := readDiagnosticsFormat("sarif"); err == nil {
		t.Error("readDiagnosticsFormat(sarif) should fail")
	}
}

func TestSessionFinishPrintsTimings(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.lm", "let x = 5;\n")
	sess, _, stderr := newTestSession(settings{timings: true})
	sess.timer = observ.NewTimer()

	failed := false
	sess.cleanup = func(f bool) { failed = f }

	err := sess.finish(parseOne(context.Background(), sess, path, parseOutput{program: programPretty, diags: diagnosticsPretty}))
	if err != nil {
		t.Fatal(err)
	}
	if failed {
		t.Error("cleanup reported failure for a clean run")
	}
	if !strings.Contains(stderr.String(), "timings:") || !strings.Contains(stderr.String(), "parse") {
		t.Errorf("timings missing:\n%s", stderr.String())
	}
}

func TestSetupTracingRingDumpOnFailure(t *testing.T) {
	cmd := &cobra.Command{Use: "parse"}
	registerRootFlags(cmd.Flags())
	if err := cmd.Flags().Parse([]string{"--trace-level=phase", "--trace-mode=ring"}); err != nil {
		t.Fatal(err)
	}
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	cmd.SetContext(context.Background())

	cleanup, err := setupTracing(cmd)
	if err != nil {
		t.Fatalf("setupTracing: %v", err)
	}
	cleanup(true)

	out := errOut.String()
	if !strings.Contains(out, "trace: last 2 events") || !strings.Contains(out, "lumen parse") {
		t.Errorf("ring dump missing:\n%s", out)
	}
}

func TestSetupTracingOff(t *testing.T) {
	cmd := &cobra.Command{Use: "parse"}
	registerRootFlags(cmd.Flags())
	cmd.SetContext(context.Background())

	cleanup, err := setupTracing(cmd)
	if err != nil {
		t.Fatalf("setupTracing: %v", err)
	}
	cleanup(true)
}
