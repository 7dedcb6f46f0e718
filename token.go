package taskpool

import (
	"sync"
	"time"
)

// CancellationToken is handed to every task at execution time. A task
// observes cancellation at its own checkpoints; the pool never preempts
// a running goroutine. Delivering an interrupt after the task has already
// returned is harmless: Cancel and Sleep both tolerate being called (or
// not called) any number of times after completion.
type CancellationToken struct {
	mu       sync.Mutex
	canceled bool
	done     chan struct{}
}

func newCancellationToken() *CancellationToken {
	return &CancellationToken{done: make(chan struct{})}
}

// cancel delivers the cooperative interrupt. Safe to call more than once;
// only the first call has an effect.
func (t *CancellationToken) cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.canceled {
		return
	}
	t.canceled = true
	close(t.done)
}

// Canceled reports whether cancellation has been requested. A task should
// check this at any checkpoint where unwinding is safe.
func (t *CancellationToken) Canceled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once cancellation is requested,
// for use in a select alongside the task's own channels.
func (t *CancellationToken) Done() <-chan struct{} {
	return t.done
}

// Sleep waits for d, or until the token is canceled, whichever comes
// first. It reports true if the full duration elapsed and false if it
// was interrupted by cancellation. This is the checkpoint primitive tasks
// are expected to use in place of a bare time.Sleep.
func (t *CancellationToken) Sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-t.done:
		return false
	}
}

// Task is the callable unit of work submitted to a Pool. It is run
// entirely outside the pool's lock and has no return value: tasks are
// fire-and-forget. A task that panics is recovered by its worker, logged,
// and treated as completed; the failure is not reported to the submitter.
type Task func(token *CancellationToken)
