package driver

import (
	"context"
	"fmt"
	"strconv"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/parser"
	"lumen/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Bag     *diag.Bag
}

// Parse loads and parses path. Syntax problems land in the bag; the error
// is only for failures to read the file.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
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

	bag := opts.newBag()
	var program *ast.Program
	opts.phase("parse", func() string {
		program, err = parseFile(ctx, file, bag, opts)
		return strconv.Itoa(program.Len()) + " statements"
	})
	if err != nil {
		return nil, err
	}

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Program: program,
		Bag:     bag,
	}, nil
}

func parseFile(ctx context.Context, file *source.File, bag *diag.Bag, opts Options) (*ast.Program, error) {
	popts, err := opts.parserOptions(bag)
	if err != nil {
		return &ast.Program{}, err
	}
	res := parser.ParseFile(ctx, file, popts)
	bag.AddDropped(res.Dropped)
	return res.Program, nil
}
