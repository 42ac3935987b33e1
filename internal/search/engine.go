// Package search is the public entry point: given a validated
// configuration it walks the search paths, fans per-file scan jobs out
// to a worker pool, and aggregates the matching lines.
package search

import (
	"time"

	"github.com/standardbeagle/symdef/internal/config"
	"github.com/standardbeagle/symdef/internal/debug"
	symerrors "github.com/standardbeagle/symdef/internal/errors"
	"github.com/standardbeagle/symdef/internal/filetype"
	"github.com/standardbeagle/symdef/internal/pool"
	"github.com/standardbeagle/symdef/internal/scanner"
	"github.com/standardbeagle/symdef/internal/walker"
)

// Engine performs one search. Build it with NewEngine and call Search
// once; the configuration is immutable and shared read-only with every
// worker.
type Engine struct {
	cfg *config.SearchConfig
}

// NewEngine creates an Engine for a validated configuration.
func NewEngine(cfg *config.SearchConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Search runs the full pipeline and returns the aggregated results.
// Pattern-compilation and traversal failures are fatal; per-file scan
// failures contribute zero results and are tolerated.
func (e *Engine) Search() ([]Result, error) {
	start := time.Now()

	queryRe, err := filetype.QueryPattern(e.cfg.Query, e.cfg.Type)
	if err != nil {
		return nil, symerrors.NewPatternError("compile definition pattern", err)
	}
	extRe, err := filetype.ExtensionPattern(e.cfg.Type)
	if err != nil {
		return nil, symerrors.NewPatternError("compile extension pattern", err)
	}

	sc := scanner.New(queryRe, e.cfg.Query, e.cfg.Method, e.cfg.LineNumber)
	results := &collector{}

	workers := pool.New(e.cfg.Threads)
	// The pool must always drain and join, even when the walk fails
	// partway; ShutdownAndWait is idempotent so the success path may
	// call it again.
	defer workers.ShutdownAndWait()

	debug.LogSearch("starting search for %q (type %s, %d workers, method %s)",
		e.cfg.Query, e.cfg.Type, e.cfg.Threads, e.cfg.Method)

	searched := 0
	w := walker.New(walker.Options{
		Extension:        extRe,
		Excludes:         e.cfg.Excludes,
		RespectGitignore: e.cfg.RespectGitignore,
	})
	err = w.WalkAll(e.cfg.Paths, func(path string) error {
		searched++
		workers.Submit(func() {
			results.add(e.scanFile(sc, path))
		})
		return nil
	})
	if err != nil {
		return nil, symerrors.NewTraversalError("enumerate candidate files", err)
	}

	workers.ShutdownAndWait()

	if debug.Enabled() {
		debug.LogSearch("scanned %d files in %d ms", searched, time.Since(start).Milliseconds())
	}
	return results.drain(), nil
}

// scanFile converts one file's scanner matches into Results.
func (e *Engine) scanFile(sc *scanner.Scanner, path string) []Result {
	matches := sc.ScanFile(path)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Result, len(matches))
	for i, m := range matches {
		out[i] = Result{FilePath: path, LineNumber: m.Line, Text: m.Text}
	}
	return out
}
