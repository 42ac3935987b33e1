package pool

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPool_RunsEverySubmittedJob(t *testing.T) {
	p := New(4)

	var ran atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() {
			ran.Add(1)
		})
	}
	p.ShutdownAndWait()

	assert.Equal(t, int64(100), ran.Load())
}

func TestPool_SingleWorkerRunsJobsSequentially(t *testing.T) {
	p := New(1)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		p.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	p.ShutdownAndWait()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestPool_ShutdownIsIdempotent(t *testing.T) {
	p := New(2)

	var ran atomic.Int64
	p.Submit(func() { ran.Add(1) })

	p.ShutdownAndWait()
	p.ShutdownAndWait()
	p.ShutdownAndWait()

	assert.Equal(t, int64(1), ran.Load())
}

func TestPool_PanickingJobDoesNotStopLaterJobs(t *testing.T) {
	p := New(1)

	var ran atomic.Int64
	p.Submit(func() { ran.Add(1) })
	p.Submit(func() { panic("bad file") })
	p.Submit(func() { ran.Add(1) })
	p.ShutdownAndWait()

	assert.Equal(t, int64(2), ran.Load())
}

func TestPool_ShutdownDrainsQueuedJobs(t *testing.T) {
	// One worker and a queue deeper than the worker can keep up with:
	// shutdown must still run everything that was accepted.
	p := New(1)

	var ran atomic.Int64
	done := make(chan struct{})
	p.Submit(func() {
		<-done
		ran.Add(1)
	})
	p.Submit(func() { ran.Add(1) })
	close(done)
	p.ShutdownAndWait()

	assert.Equal(t, int64(2), ran.Load())
}
