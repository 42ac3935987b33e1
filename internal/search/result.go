package search

import "sync"

// Result is one matching definition line. LineNumber is 1-based and
// zero when line numbers were not requested. Results from one
// invocation form a set: ordering across files is not guaranteed under
// concurrency, but a single file's lines stay in ascending order.
type Result struct {
	FilePath   string
	LineNumber int
	Text       string
}

// collector is the thread-safe append-only sink for per-file results.
// Workers append while the search runs; the engine drains it only after
// the pool has shut down, so reads never race with writes.
type collector struct {
	mu      sync.Mutex
	results []Result
}

// add appends all of one file's results in a single critical section,
// keeping that file's lines contiguous and ordered.
func (c *collector) add(results []Result) {
	if len(results) == 0 {
		return
	}
	c.mu.Lock()
	c.results = append(c.results, results...)
	c.mu.Unlock()
}

// drain returns the collected results. Call only after every worker has
// exited.
func (c *collector) drain() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}
