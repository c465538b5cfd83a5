package driver

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
	"lumen/internal/token"
	"lumen/internal/trace"
)

// TokenizeDirResult is the outcome for one file of a directory run.
type TokenizeDirResult struct {
	Path   string // relative to the directory
	FileID source.FileID
	Tokens []token.Token // nil when the file could not be read
	Bag    *diag.Bag
}

// ParseDirResult is the outcome for one file of a directory run.
type ParseDirResult struct {
	Path    string // relative to the directory
	FileID  source.FileID
	Program *ast.Program // nil when the file could not be read
	Bag     *diag.Bag
}

type dirFile struct {
	path    string
	display string
	id      source.FileID
	loadErr error
}

// loadDir reads every source file under dir into one file set. A file that
// cannot be read is registered empty so its diagnostic has a location.
func loadDir(dir string, opts Options) (*source.FileSet, []dirFile, error) {
	paths, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	files := make([]dirFile, len(paths))
	opts.phase("load", func() string {
		for i, path := range paths {
			f := dirFile{path: path, display: DisplayPath(dir, path)}
			f.id, f.loadErr = fileSet.Load(path)
			if f.loadErr != nil {
				f.id = fileSet.Add(path, nil, source.FileVirtual)
			}
			files[i] = f
		}
		return strconv.Itoa(len(paths)) + " files"
	})
	return fileSet, files, nil
}

func loadErrorBag(f dirFile, opts Options) *diag.Bag {
	bag := opts.newBag()
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: f.id}, "failed to load file: "+f.loadErr.Error()))
	return bag
}

// forEachFile runs work for every file on a bounded pool. Each call owns
// slot i of the caller's result slice, so results need no locking.
func forEachFile(ctx context.Context, files []dirFile, stage Stage, opts Options, work func(ctx context.Context, i int, f dirFile) bool) error {
	for _, f := range files {
		emit(opts.Sink, Event{File: f.display, Stage: stage, Status: StatusQueued})
	}
	emit(opts.Sink, Event{Stage: stage, Status: StatusWorking})

	tr := trace.FromContext(ctx)
	runSpan := trace.Begin(tr, trace.ScopePass, string(stage)+"-dir", trace.ParentSpan(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))

	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fileSpan := trace.Begin(tr, trace.ScopeModule, "file:"+f.display, runSpan.ID())
			fctx := trace.WithParent(gctx, fileSpan)
			started := time.Now()
			emit(opts.Sink, Event{File: f.display, Stage: stage, Status: StatusWorking})

			status := StatusDone
			if !work(fctx, i, f) {
				status = StatusError
			}

			fileSpan.End(string(status))
			emit(opts.Sink, Event{File: f.display, Stage: stage, Status: status, Err: f.loadErr, Elapsed: time.Since(started)})
			return nil
		})
	}

	err := g.Wait()
	runSpan.WithExtra("files", strconv.Itoa(len(files))).End("")
	final := StatusDone
	if err != nil {
		final = StatusError
	}
	emit(opts.Sink, Event{Stage: stage, Status: final, Err: err})
	return err
}

// TokenizeDir scans every source file under dir in parallel. Results follow
// the sorted file order.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	fileSet, files, err := loadDir(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	results := make([]TokenizeDirResult, len(files))
	if len(files) == 0 {
		return fileSet, results, nil
	}

	opts.phase("tokenize", func() string {
		err = forEachFile(ctx, files, StageTokenize, opts, func(ctx context.Context, i int, f dirFile) bool {
			if f.loadErr != nil {
				results[i] = TokenizeDirResult{Path: f.display, FileID: f.id, Bag: loadErrorBag(f, opts)}
				return false
			}
			results[i] = TokenizeDirResult{
				Path:   f.display,
				FileID: f.id,
				Tokens: tokenizeFile(ctx, fileSet.Get(f.id)),
				Bag:    opts.newBag(),
			}
			return true
		})
		return strconv.Itoa(len(files)) + " files"
	})
	return fileSet, results, err
}

// ParseDir parses every source file under dir in parallel. Results follow
// the sorted file order.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	fileSet, files, err := loadDir(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	results := make([]ParseDirResult, len(files))
	if len(files) == 0 {
		return fileSet, results, nil
	}
	if _, err := opts.parserOptions(nil); err != nil {
		return nil, nil, err
	}

	opts.phase("parse", func() string {
		err = forEachFile(ctx, files, StageParse, opts, func(ctx context.Context, i int, f dirFile) bool {
			if f.loadErr != nil {
				results[i] = ParseDirResult{Path: f.display, FileID: f.id, Bag: loadErrorBag(f, opts)}
				return false
			}
			bag := opts.newBag()
			// options were validated above
			program, _ := parseFile(ctx, fileSet.Get(f.id), bag, opts)
			results[i] = ParseDirResult{Path: f.display, FileID: f.id, Program: program, Bag: bag}
			return !bag.HasErrors()
		})
		return strconv.Itoa(len(files)) + " files"
	})
	return fileSet, results, err
}
