package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lumen/internal/diag"
	"lumen/internal/source"
)

type palette struct {
	sev      map[diag.Severity]*color.Color
	location *color.Color
	gutter   *color.Color
	caret    *color.Color
	note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		location: color.New(color.Bold),
		gutter:   color.New(color.FgBlue),
		caret:    color.New(color.FgRed, color.Bold),
		note:     color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.sev[diag.SevError], p.sev[diag.SevWarning], p.sev[diag.SevInfo], p.location, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty renders diagnostics in the order given, each as a header line
//
//	path:line:col: ERROR [SYN2001] message
//
// followed by the source line with a caret under the primary span, and the
// notes when opts.ShowNotes is set.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for i := range diags {
		if err := prettyOne(w, &diags[i], fs, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	sevColor := pal.sev[d.Severity]
	if sevColor == nil {
		sevColor = pal.sev[diag.SevInfo]
	}

	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d", file.FormatPath(opts.PathMode.String(), fs.BaseDir()), start.Line, start.Col)

	if _, err := fmt.Fprintf(w, "%s: %s [%s] %s\n",
		pal.location.Sprint(loc), sevColor.Sprint(d.Severity.String()), d.Code.ID(), d.Message); err != nil {
		return err
	}

	if err := writeSnippet(w, file, start, end, opts.Context, pal); err != nil {
		return err
	}

	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
			pal.note.Sprint("note:"), nf.FormatPath(opts.PathMode.String(), fs.BaseDir()), ns.Line, ns.Col, n.Msg); err != nil {
			return err
		}
	}
	return nil
}

// writeSnippet prints the context lines, the primary line and the caret line.
func writeSnippet(w io.Writer, file *source.File, start, end source.LineCol, context int, pal palette) error {
	first := int64(start.Line) - int64(max(context, 0))
	if first < 1 {
		first = 1
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= int64(start.Line); ln++ {
		lineNo, err := safecast.Conv[uint32](ln)
		if err != nil {
			return fmt.Errorf("line number overflow: %w", err)
		}
		text := file.GetLine(lineNo)
		if _, err := fmt.Fprintf(w, " %s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, lineNo), text); err != nil {
			return err
		}
		if lineNo != start.Line {
			continue
		}

		pad, width := caretGeometry(text, start, end)
		caret := "^" + strings.Repeat("~", width-1)
		if _, err := fmt.Fprintf(w, " %s %s%s\n",
			pal.gutter.Sprintf("%*s |", gutterWidth, ""), pad, pal.caret.Sprint(caret)); err != nil {
			return err
		}
	}
	return nil
}

// caretGeometry returns the padding that lines a caret up under column
// start.Col of text, and the caret width in terminal cells (at least 1).
// Tabs are kept in the padding so the caret follows the terminal's tab stops.
func caretGeometry(text string, start, end source.LineCol) (string, int) {
	textLen, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("line length overflow: %w", err))
	}

	from := min(start.Col-1, textLen)
	to := textLen
	if end.Line == start.Line {
		to = min(max(end.Col-1, from), textLen)
	}

	var pad strings.Builder
	for _, r := range text[:from] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return pad.String(), max(runewidth.StringWidth(text[from:to]), 1)
}
