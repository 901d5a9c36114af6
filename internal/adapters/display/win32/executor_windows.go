//go:build windows

package win32

import "runtime"

// onThread runs submitted tasks one at a time on a single dedicated OS
// thread. The thread DPI context is process-thread-global state, so
// enumeration holds DPI_AWARENESS_CONTEXT_UNAWARE only on this locked
// thread and the mode never leaks to goroutines scheduled elsewhere.
type onThread struct {
	tasks chan func()
}

// newOnThread starts the executor thread and blocks until setup has run on
// it. The thread stays locked for its whole lifetime and is terminated on
// stop, taking the mode switch with it.
func newOnThread(setup func()) *onThread {
	e := &onThread{tasks: make(chan func())}

	ready := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		setup()
		close(ready)
		for task := range e.tasks {
			task()
		}
	}()
	<-ready

	return e
}

// run executes task on the executor thread and blocks until it returns.
func (e *onThread) run(task func()) {
	done := make(chan struct{})
	e.tasks <- func() {
		task()
		close(done)
	}
	<-done
}

func (e *onThread) stop() {
	close(e.tasks)
}
