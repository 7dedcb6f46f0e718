package taskpool

import "time"

// runWorker is the assignment protocol from the worker's point of view.
// One goroutine per worker; never shared. A hot worker runs this loop
// until shutdown; an elastic worker runs it until shutdown or until its
// idle timeout expires while it waits for work. A task that panics is
// recovered here, logged, and counted as completed.
func (p *Pool) runWorker(w *worker) {
	defer p.wg.Done()
	firstIdle := true

	for {
		p.mu.Lock()
		p.idleSet[w.id] = struct{}{}
		if firstIdle {
			firstIdle = false
			if w.ready != nil {
				w.ready.Done()
			}
		}

		// The idle deadline, if any, is fixed once per idle period, at
		// the point this worker joins the Idle Set, and never recomputed
		// on a spurious wake or a queued-cancel loop-back: total idle
		// time is measured from entry into idle, not from the time of
		// the last wake.
		var deadline time.Time
		if w.kind == elasticWorker {
			deadline = time.Now().Add(p.idleTimeout)
		}

		var rec *taskRecord
	waitLoop:
		for {
			switch {
			case p.shuttingDown:
				delete(p.idleSet, w.id)
				delete(p.workers, w.id)
				p.mu.Unlock()
				return
			case len(p.queue) > 0:
				rec = p.queue[0]
				p.queue = p.queue[1:]
				if _, skip := p.cancelSet[rec.id]; skip {
					delete(p.cancelSet, rec.id)
					delete(p.records, rec.id)
					// Still idle, same idle period: go back to waiting without
					// releasing Idle membership or resetting the deadline.
					continue waitLoop
				}
				break waitLoop
			case w.kind == elasticWorker && !time.Now().Before(deadline):
				delete(p.idleSet, w.id)
				delete(p.workers, w.id)
				p.mu.Unlock()
				p.notifyWorkerRetired(w)
				return
			}

			if w.kind == elasticWorker {
				p.waitUntilLocked(deadline)
			} else {
				p.cond.Wait()
			}
		}

		rec.assigned = true
		rec.assignee = w.id
		delete(p.idleSet, w.id)
		p.mu.Unlock()

		p.notifyAssigned(rec.id, w.id)
		start := time.Now()
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Warn("task panicked", "task_id", rec.id, "panic", r)
				}
			}()
			rec.task(rec.token)
		}()
		elapsed := time.Since(start)

		p.mu.Lock()
		delete(p.records, rec.id)
		p.mu.Unlock()

		if rec.token.Canceled() {
			p.notifyCanceled(rec.id, Terminated)
		} else {
			p.notifyCompleted(rec.id, elapsed)
		}
	}
}

// waitUntilLocked blocks on the condition variable until either signaled
// or deadline passes, whichever comes first. p.mu must be held on entry;
// sync.Cond.Wait releases it for the duration of the wait and reacquires
// it before returning, so it is still held on return. A condition
// variable alone cannot express a deadline, so a one-shot timer is used
// purely to guarantee a wake-up; the actual decision of what to do next
// is made by the caller re-checking its predicate, same as any other
// spurious wake.
func (p *Pool) waitUntilLocked(deadline time.Time) {
	wait := time.Until(deadline)
	if wait <= 0 {
		return
	}
	timer := time.AfterFunc(wait, func() {
		p.mu.Lock()
		p.cond.Broadcast()
		p.mu.Unlock()
	})
	defer timer.Stop()
	p.cond.Wait()
}
