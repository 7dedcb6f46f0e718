package taskpool

import "errors"

// ErrShuttingDown is returned by Submit once the pool has begun shutting
// down. No further tasks are admitted after this point.
var ErrShuttingDown = errors.New("taskpool: pool is shutting down")

// CancelOutcome is the result of a Cancel call. It is a value, not an
// error: cancellation races against completion are expected and both
// NotFound and Terminated are normal, successful outcomes.
type CancelOutcome int

const (
	// NotFound means there is no live record for the given id: it was
	// never issued, already completed, already dropped by shutdown, or
	// already canceled once before.
	NotFound CancelOutcome = iota
	// RemovedFromQueue means the task was still waiting in the
	// submission queue and was marked so a worker will skip it without
	// ever running it.
	RemovedFromQueue
	// Terminated means the task was already assigned to a worker; a
	// cooperative interrupt was delivered to it.
	Terminated
)

func (o CancelOutcome) String() string {
	switch o {
	case NotFound:
		return "NOT_FOUND"
	case RemovedFromQueue:
		return "REMOVED_FROM_QUEUE"
	case Terminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}
