package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lumen/internal/diag"
	"lumen/internal/source"
)

func prettyFixture(t *testing.T, content string, sp func(source.FileID) source.Span, msg string) ([]diag.Diagnostic, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")
	id := fs.AddVirtual("/home/user/project/src/test.lm", []byte(content))
	return []diag.Diagnostic{diag.NewError(diag.SynExpectNextToken, sp(id), msg)}, fs
}

func render(t *testing.T, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Pretty(&buf, diags, fs, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	return buf.String()
}

func TestPrettyLayout(t *testing.T) {
	diags, fs := prettyFixture(t, "let x = 1;\nlet 3242;\n",
		func(id source.FileID) source.Span { return source.Span{File: id, Start: 15, End: 19} },
		"expected next token to be Ident, got Int instead")

	want := "src/test.lm:2:5: ERROR [SYN2001] expected next token to be Ident, got Int instead\n" +
		" 2 | let 3242;\n" +
		"   |     ^~~~\n"
	if got := render(t, diags, fs, PrettyOpts{PathMode: PathModeRelative}); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\ngot:\n%s", want, got)
	}

	withContext := render(t, diags, fs, PrettyOpts{PathMode: PathModeRelative, Context: 1})
	if !strings.Contains(withContext, " 1 | let x = 1;\n 2 | let 3242;\n") {
		t.Fatalf("context line missing:\n%s", withContext)
	}
}

func TestPrettyPathModes(t *testing.T) {
	diags, fs := prettyFixture(t, "let 1;",
		func(id source.FileID) source.Span { return source.Span{File: id, Start: 4, End: 5} }, "m")

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/test.lm:1:5:"},
		{PathModeRelative, "src/test.lm:1:5:"},
		{PathModeBasename, "test.lm:1:5:"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out := render(t, diags, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.HasPrefix(out, tt.want) {
				t.Fatalf("expected prefix %q, got:\n%s", tt.want, out)
			}
		})
	}
}

func TestPrettyCaretAlignment(t *testing.T) {
	tests := []struct {
		name    string
		content string
		start   uint32
		end     uint32
		caret   string
	}{
		{"wide runes", "日本 @", 7, 8, "   | " + strings.Repeat(" ", 5) + "^"},
		{"tab kept", "\tlet 1;", 5, 6, "   | \t    ^"},
		{"empty span at end", "let x", 5, 5, "   |      ^"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, fs := prettyFixture(t, tt.content,
				func(id source.FileID) source.Span { return source.Span{File: id, Start: tt.start, End: tt.end} }, "m")
			lines := strings.Split(render(t, diags, fs, PrettyOpts{}), "\n")
			if len(lines) < 3 || lines[2] != tt.caret {
				t.Fatalf("caret line = %q, want %q", lines[2], tt.caret)
			}
		})
	}
}

func TestPrettyNotesAndColor(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/p")
	id := fs.AddVirtual("/p/a.lm", []byte("5;\n"))
	d := diag.New(diag.SevWarning, diag.SynUnexpectedStatement, source.Span{File: id, Start: 0, End: 1}, `Int "5" cannot start a statement`).
		WithNote(source.Span{File: id, Start: 1, End: 2}, "skipped up to here")

	plain := render(t, []diag.Diagnostic{d}, fs, PrettyOpts{PathMode: PathModeRelative, ShowNotes: true})
	if !strings.Contains(plain, "WARNING [SYN2002]") || !strings.Contains(plain, "  note: a.lm:1:2: skipped up to here\n") {
		t.Fatalf("unexpected output:\n%s", plain)
	}
	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("colour codes without Color:\n%q", plain)
	}

	hidden := render(t, []diag.Diagnostic{d}, fs, PrettyOpts{})
	if strings.Contains(hidden, "note:") {
		t.Fatalf("notes shown without ShowNotes:\n%s", hidden)
	}

	coloured := render(t, []diag.Diagnostic{d}, fs, PrettyOpts{Color: true})
	if !strings.Contains(coloured, "\x1b[") {
		t.Fatalf("expected colour codes:\n%q", coloured)
	}
}
