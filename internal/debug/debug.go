// Package debug provides opt-in diagnostic logging for search runs.
//
// Output is disabled unless a writer is configured, so the hot scanning
// paths pay only an atomic load when debugging is off.
package debug

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

var (
	enabled atomic.Bool

	// debugMutex protects access to the debug writer
	debugMutex  sync.Mutex
	debugOutput io.Writer
)

// SetOutput sets the writer for debug output and enables debug logging.
// Pass nil to disable debug output entirely.
func SetOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
	enabled.Store(w != nil)
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	return enabled.Load()
}

// Printf prints debug information only when debug output is configured.
func Printf(format string, args ...interface{}) {
	if !enabled.Load() {
		return
	}
	debugMutex.Lock()
	defer debugMutex.Unlock()
	if debugOutput == nil {
		return
	}
	fmt.Fprintf(debugOutput, "[DEBUG] "+format+"\n", args...)
}

// Log provides debug logging with component names.
func Log(component, format string, args ...interface{}) {
	if !enabled.Load() {
		return
	}
	debugMutex.Lock()
	defer debugMutex.Unlock()
	if debugOutput == nil {
		return
	}
	fmt.Fprintf(debugOutput, "[DEBUG:"+component+"] "+format+"\n", args...)
}

// LogWalk provides debug logging for file-tree traversal.
func LogWalk(format string, args ...interface{}) {
	Log("WALK", format, args...)
}

// LogScan provides debug logging for per-file scanning.
func LogScan(format string, args ...interface{}) {
	Log("SCAN", format, args...)
}

// LogSearch provides debug logging for search orchestration.
func LogSearch(format string, args ...interface{}) {
	Log("SEARCH", format, args...)
}
