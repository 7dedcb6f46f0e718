package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/wrenhollow/taskpool"
)

func freshCollector() *Collector {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	return NewCollector()
}

func TestNewCollector(t *testing.T) {
	c := freshCollector()

	assert.NotNil(t, c.tasksSubmitted)
	assert.NotNil(t, c.tasksCompleted)
	assert.NotNil(t, c.tasksCanceled)
	assert.NotNil(t, c.taskDuration)
	assert.NotNil(t, c.workersHot)
	assert.NotNil(t, c.workersElastic)
}

func TestTaskSubmittedDoesNotPanic(t *testing.T) {
	c := freshCollector()
	assert.NotPanics(t, func() {
		for i := 0; i < 5; i++ {
			c.TaskSubmitted(taskpool.TaskID(i))
		}
	})
}

func TestTaskCompletedRecordsDuration(t *testing.T) {
	c := freshCollector()
	assert.NotPanics(t, func() {
		c.TaskCompleted(taskpool.TaskID(1), 15*time.Millisecond)
	})
}

func TestTaskCanceledLabelsByOutcome(t *testing.T) {
	c := freshCollector()
	assert.NotPanics(t, func() {
		c.TaskCanceled(taskpool.TaskID(1), taskpool.RemovedFromQueue)
		c.TaskCanceled(taskpool.TaskID(2), taskpool.Terminated)
	})
}

func TestWorkerGaugesTrackSpawnAndRetire(t *testing.T) {
	c := freshCollector()
	c.WorkerSpawned(taskpool.WorkerID(1), "hot")
	c.WorkerSpawned(taskpool.WorkerID(2), "elastic")
	c.WorkerRetired(taskpool.WorkerID(2), "elastic")

	assert.Equal(t, float64(1), testGaugeValue(c.workersHot))
	assert.Equal(t, float64(0), testGaugeValue(c.workersElastic))
}

func TestCollectorImplementsObserver(t *testing.T) {
	var _ taskpool.Observer = freshCollector()
}

func testGaugeValue(g prometheus.Gauge) float64 {
	var m dto.Metric
	_ = g.Write(&m)
	return m.GetGauge().GetValue()
}
