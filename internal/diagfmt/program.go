package diagfmt

import (
	"fmt"
	"io"

	"lumen/internal/ast"
	"lumen/internal/source"
)

// FormatProgramSource writes the program back as canonical source, one statement per line.
func FormatProgramSource(w io.Writer, program *ast.Program) error {
	_, err := io.WriteString(w, program.String())
	return err
}

// FormatProgramTree writes an indented tree of the program:
//
//	Program main.lm (2 statements)
//	├─ Let (span: 1:1-1:4)
//	│  ├─ Name: x (span: 1:5-1:6)
//	│  └─ Value: <expr> at "5" (span: 1:9-1:10)
//	└─ Return (span: 2:1-2:7)
//	   └─ Value: <expr> at "x" (span: 2:8-2:9)
func FormatProgramTree(w io.Writer, program *ast.Program, file *source.File, fs *source.FileSet) error {
	header := "Program"
	if file != nil && fs != nil {
		header += " " + file.FormatPath("auto", fs.BaseDir())
	}
	if _, err := fmt.Fprintf(w, "%s (%d statements)\n", header, program.Len()); err != nil {
		return err
	}
	return writeChildren(w, program, "", fs)
}

func writeChildren(w io.Writer, node ast.Node, prefix string, fs *source.FileSet) error {
	children := ast.Children(node)
	for i, child := range children {
		branch, indent := "├─ ", "│  "
		if i == len(children)-1 {
			branch, indent = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s (span: %s)\n", prefix, branch, nodeLabel(node, child), formatSpan(child.Pos(), fs)); err != nil {
			return err
		}
		if err := writeChildren(w, child, prefix+indent, fs); err != nil {
			return err
		}
	}
	return nil
}

// nodeLabel names child by its role inside parent.
func nodeLabel(parent, child ast.Node) string {
	switch c := child.(type) {
	case *ast.LetStatement:
		return "Let"
	case *ast.ReturnStatement:
		return "Return"
	case *ast.Identifier:
		if stmt, ok := parent.(ast.Statement); ok {
			if name, err := ast.BoundIdent(stmt); err == nil && name == c {
				return "Name: " + c.Value
			}
		}
		return "Value: " + c.Value
	case *ast.Placeholder:
		return fmt.Sprintf("Value: %s at %q", c.String(), c.TokenLiteral())
	default:
		return fmt.Sprintf("%T", child)
	}
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
