package driver

import (
	"fmt"
	"runtime"

	"fortio.org/safecast"

	"lumen/internal/diag"
	"lumen/internal/observ"
	"lumen/internal/parser"
)

// Options are shared by every driver entry point.
type Options struct {
	MaxDiagnostics int // per file; <= 0 means unlimited
	Jobs           int // directory workers; <= 0 means GOMAXPROCS
	Strict         bool
	Sink           ProgressSink  // optional, directory runs only
	Timer          *observ.Timer // optional
}

func (o Options) jobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(min(jobs, files), 1)
}

func (o Options) newBag() *diag.Bag {
	return diag.NewBag(o.MaxDiagnostics)
}

func (o Options) parserOptions(bag *diag.Bag) (parser.Options, error) {
	var maxErrors uint
	if o.MaxDiagnostics > 0 {
		n, err := safecast.Conv[uint](o.MaxDiagnostics)
		if err != nil {
			return parser.Options{}, fmt.Errorf("max diagnostics: %w", err)
		}
		maxErrors = n
	}
	return parser.Options{
		Reporter:         diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		MaxErrors:        maxErrors,
		StrictStatements: o.Strict,
	}, nil
}

// phase times fn when a timer is configured.
func (o Options) phase(name string, fn func() string) {
	if o.Timer == nil {
		fn()
		return
	}
	o.Timer.Track(name, fn)
}
