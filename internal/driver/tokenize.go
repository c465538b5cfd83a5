package driver

import (
	"context"
	"fmt"
	"strconv"

	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/source"
	"lumen/internal/token"
	"lumen/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and scans it to EOF. The bag stays empty: the scanner
// reports problems as Illegal tokens, not diagnostics.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()

	var (
		fileID source.FileID
		err    error
	)
	opts.phase("load", func() string {
		fileID, err = fs.Load(path)
		return path
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	var tokens []token.Token
	opts.phase("tokenize", func() string {
		tokens = tokenizeFile(ctx, file)
		return strconv.Itoa(len(tokens)) + " tokens"
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     opts.newBag(),
	}, nil
}

func tokenizeFile(ctx context.Context, file *source.File) []token.Token {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, "tokenize", trace.ParentSpan(ctx))
	tokens := lexer.Tokenize(file, lexer.Options{Observer: lexer.TraceObserver(tr)})
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).End(file.Path)
	return tokens
}
