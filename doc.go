// Package taskpool implements a task-executing worker pool with cooperative
// cancellation and an autoscaled idle-worker lifecycle.
//
// A Pool keeps a fixed tier of "hot" workers alive for its entire lifetime
// and grows a transient "elastic" tier on demand whenever a task is
// submitted and fewer workers are idle than tasks are queued. Elastic workers retire
// themselves once they have waited longer than the configured idle
// timeout without claiming a task.
//
// Cancellation is cooperative: Cancel never kills a goroutine. It either
// removes a still-queued task before a worker ever sees it, or signals a
// CancellationToken that the running task's own code is expected to
// observe at a checkpoint (CancellationToken.Canceled, Done, or Sleep).
// A task that never checks the token cannot be interrupted while running.
//
// Basic usage:
//
//	p := taskpool.New(taskpool.Config{HotWorkers: 4, IdleTimeout: 30 * time.Second})
//	id, err := p.Submit(func(tok *taskpool.CancellationToken) {
//		tok.Sleep(time.Second)
//	})
//	outcome := p.Cancel(id)
//	p.Shutdown()
package taskpool
