package parser

import (
	"fmt"
	"strings"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/source"
)

func parseSource(t *testing.T, input string, opts Options) (*ast.Program, *Parser) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lm", []byte(input))
	p := New(lexer.New(fs.Get(fileID), lexer.Options{}), opts)
	program := p.ParseProgram()
	if program == nil {
		t.Fatalf("ParseProgram returned nil for %q", input)
	}
	return program, p
}

func diagnosticsSummary(diags []diag.Diagnostic) string {
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func letNames(t *testing.T, program *ast.Program) []string {
	t.Helper()
	var names []string
	for _, s := range program.Statements {
		let, ok := s.(*ast.LetStatement)
		if !ok {
			continue
		}
		names = append(names, let.Name.Value)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
