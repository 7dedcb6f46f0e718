package taskpool

import "time"

// Observer receives an advisory trace of pool activity. None of its
// methods are called while the pool's lock is held, but they are called
// from worker goroutines, so implementations must be safe for concurrent
// use and should not block. A nil Observer (the default) does nothing.
//
// This trace is advisory, not contractual: a Pool behaves identically
// with or without an Observer attached, and no method on Observer is
// permitted to influence scheduling decisions.
type Observer interface {
	TaskSubmitted(id TaskID)
	TaskAssigned(id TaskID, worker WorkerID)
	TaskCompleted(id TaskID, elapsed time.Duration)
	TaskCanceled(id TaskID, outcome CancelOutcome)
	WorkerSpawned(id WorkerID, kind string)
	WorkerRetired(id WorkerID, kind string)
}

func (p *Pool) notifySubmitted(id TaskID) {
	if p.observer != nil {
		p.observer.TaskSubmitted(id)
	}
}

func (p *Pool) notifyAssigned(id TaskID, w WorkerID) {
	if p.observer != nil {
		p.observer.TaskAssigned(id, w)
	}
}

func (p *Pool) notifyCompleted(id TaskID, elapsed time.Duration) {
	if p.observer != nil {
		p.observer.TaskCompleted(id, elapsed)
	}
}

func (p *Pool) notifyCanceled(id TaskID, outcome CancelOutcome) {
	if p.observer != nil {
		p.observer.TaskCanceled(id, outcome)
	}
}

func (p *Pool) notifyWorkerSpawned(w *worker) {
	if p.observer != nil {
		p.observer.WorkerSpawned(w.id, w.kind.String())
	}
}

func (p *Pool) notifyWorkerRetired(w *worker) {
	if p.observer != nil {
		p.observer.WorkerRetired(w.id, w.kind.String())
	}
}
