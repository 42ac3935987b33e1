// Package pool provides the fixed-size worker pool that parallelizes
// per-file scanning. Workers drain one shared job queue until it is
// closed; shutdown is idempotent and always joins every worker.
package pool

import (
	"sync"

	"github.com/standardbeagle/symdef/internal/debug"
)

// Pool executes submitted jobs across a fixed number of workers.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

// New spawns the given number of long-lived workers consuming from one
// shared queue. workers must be positive; configuration validation
// enforces that before a pool is ever built.
func New(workers int) *Pool {
	p := &Pool{
		jobs: make(chan func(), workers),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(id, job)
	}
}

// run executes one job, converting a panic into a zero-result outcome
// so a single bad file cannot stop the pool for the remaining jobs.
func (p *Pool) run(id int, job func()) {
	defer func() {
		if r := recover(); r != nil {
			debug.LogScan("worker %d: job panicked: %v", id, r)
		}
	}()
	job()
}

// Submit enqueues one unit of work. It blocks only on the queue's
// backpressure, never on job completion. Submitting after
// ShutdownAndWait panics, matching the send-on-closed-channel contract.
func (p *Pool) Submit(job func()) {
	p.jobs <- job
}

// ShutdownAndWait closes the queue, lets the workers drain every queued
// job, and blocks until all workers have exited. Safe to call more than
// once; later calls wait but do nothing else.
func (p *Pool) ShutdownAndWait() {
	p.once.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}
