package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"lumen/internal/source"
)

type shortLine struct {
	severity string
	code     string
	path     string
	line     uint32
	col      uint32
	msg      string
}

// FormatShort renders one line per diagnostic (and per note when includeNotes):
//
//	error SYN2001 main.lm:1:5 expected next token to be Ident, got Int instead
//
// Lines are sorted by path, position, severity and code, and joined without a
// trailing newline. Paths are relative to the file set's base directory.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	lines := make([]shortLine, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		if l, ok := resolveLine(fs, d.Primary); ok {
			l.severity, l.code, l.msg = d.Severity.Label(), d.Code.ID(), oneLine(d.Message)
			lines = append(lines, l)
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if l, ok := resolveLine(fs, n.Span); ok {
				l.severity, l.code, l.msg = "note", d.Code.ID(), oneLine(n.Msg)
				lines = append(lines, l)
			}
		}
	}

	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			cmp.Compare(a.path, b.path),
			cmp.Compare(a.line, b.line),
			cmp.Compare(a.col, b.col),
			cmp.Compare(a.severity, b.severity),
			cmp.Compare(a.code, b.code),
			cmp.Compare(a.msg, b.msg),
		)
	})

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s %s %s:%d:%d %s", l.severity, l.code, l.path, l.line, l.col, l.msg)
	}
	return sb.String()
}

func resolveLine(fs *source.FileSet, sp source.Span) (shortLine, bool) {
	if int(sp.File) >= fs.Len() {
		return shortLine{}, false
	}
	start, _ := fs.Resolve(sp)
	path := fs.Get(sp.File).FormatPath("relative", fs.BaseDir())
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	return shortLine{path: path, line: start.Line, col: start.Col}, true
}

func oneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	return strings.TrimSpace(strings.ReplaceAll(msg, "\n", " "))
}
