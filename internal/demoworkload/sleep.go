// Package demoworkload provides a stand-in workload for exercising a Pool
// from the demo CLI driver and from scenario tests. It is not part of
// the library's public surface: it plays the role of "any user task",
// the same role the original thread pool's sleep_task demo played.
package demoworkload

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/wrenhollow/taskpool"
)

var log = slog.Default()

// Sleep builds a task that sleeps for d, observing cancellation at the
// single checkpoint a sleep naturally offers. It logs whether it ran to
// completion or was interrupted, standing in for whatever a real task
// would do with the same token.
func Sleep(name string, d time.Duration) taskpool.Task {
	return func(token *taskpool.CancellationToken) {
		if token.Sleep(d) {
			log.Info("demo task completed", "name", name, "duration", d)
			return
		}
		log.Info("demo task canceled", "name", name, "duration", d)
	}
}

// Counter builds a task that increments n and returns immediately,
// without ever checkpointing. It demonstrates the "basic execution"
// scenario and the fact that a task which never checks its token cannot
// be interrupted while running.
func Counter(n *int64) taskpool.Task {
	return func(token *taskpool.CancellationToken) {
		atomic.AddInt64(n, 1)
	}
}
