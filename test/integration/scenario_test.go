// Package integration exercises taskpool.Pool the way an external
// consumer would: through the public API only, no access to unexported
// scheduler state. It covers two end-to-end scenarios (shutdown with a
// backlog, and the high-repetition cancel/complete race) plus a
// concurrent submit/cancel stress check.
package integration

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenhollow/taskpool"
)

// TestCancelRacesCompletionTenThousandReps is the literal scenario 6: a
// fast task and an immediate cancel, repeated 10^4 times. The outcome
// must never be REMOVED_FROM_QUEUE, since the task is never still
// queued by the time Cancel has a chance to run.
func TestCancelRacesCompletionTenThousandReps(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping high-repetition race scenario in -short mode")
	}

	const reps = 10000
	var terminated, notFound int64

	for i := 0; i < reps; i++ {
		p := taskpool.New(taskpool.Config{HotWorkers: 1, IdleTimeout: 60 * time.Second})
		id, err := p.Submit(func(tok *taskpool.CancellationToken) {})
		require.NoError(t, err)

		switch p.Cancel(id) {
		case taskpool.Terminated:
			atomic.AddInt64(&terminated, 1)
		case taskpool.NotFound:
			atomic.AddInt64(&notFound, 1)
		case taskpool.RemovedFromQueue:
			t.Fatalf("rep %d: got REMOVED_FROM_QUEUE, which is never a valid outcome for this race", i)
		}
		p.Shutdown()
	}

	assert.Equal(t, int64(reps), terminated+notFound)
}

// TestShutdownWithBacklogDropsQueuedTasks is scenario 5: a single hot
// worker, five long tasks, shutdown called before any complete.
func TestShutdownWithBacklogDropsQueuedTasks(t *testing.T) {
	p := taskpool.New(taskpool.Config{HotWorkers: 1, IdleTimeout: 60 * time.Second})

	var ran int32
	ids := make([]taskpool.TaskID, 5)
	for i := range ids {
		id, err := p.Submit(func(tok *taskpool.CancellationToken) {
			if tok.Sleep(5 * time.Second) {
				atomic.AddInt32(&ran, 1)
			}
		})
		require.NoError(t, err)
		ids[i] = id
	}

	p.Shutdown()

	for _, id := range ids {
		assert.Equal(t, taskpool.NotFound, p.Cancel(id))
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))
}

// TestConcurrentSubmitAndCancelUnderLoad stresses many concurrent
// producers submitting and canceling against a small hot tier, as a
// general property check rather than a literal scenario: every submit
// succeeds, since the pool is not shut down during the run, and no id is
// handed out twice.
func TestConcurrentSubmitAndCancelUnderLoad(t *testing.T) {
	p := taskpool.New(taskpool.Config{HotWorkers: 3, IdleTimeout: time.Second})
	defer p.Shutdown()

	const producers = 20
	const perProducer = 25

	var wg sync.WaitGroup
	seen := make(chan taskpool.TaskID, producers*perProducer)

	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				id, err := p.Submit(func(tok *taskpool.CancellationToken) {
					tok.Sleep(time.Millisecond)
				})
				if err != nil {
					continue
				}
				seen <- id
				if j%5 == 0 {
					p.Cancel(id)
				}
			}
		}()
	}
	wg.Wait()
	close(seen)

	ids := make(map[taskpool.TaskID]bool)
	for id := range seen {
		assert.False(t, ids[id], "duplicate task id observed: %d", id)
		ids[id] = true
	}
	assert.Equal(t, producers*perProducer, len(ids))
}
