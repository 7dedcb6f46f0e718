// ============================================================================
// Taskpool Metrics - Prometheus Monitoring
// ============================================================================
//
// Package: internal/metrics
// File: metrics.go
// Purpose: Collect and expose an advisory Prometheus trace of pool activity
//
// This collector is not part of the pool's contract: it implements
// taskpool.Observer purely by observing events the pool already emits.
// A pool behaves identically whether or not a Collector is attached.
//
// Metric Categories:
//
//   1. Task Counters - Cumulative, monotonically increasing:
//      - taskpool_tasks_submitted_total
//      - taskpool_tasks_completed_total
//      - taskpool_tasks_canceled_total{outcome="REMOVED_FROM_QUEUE|TERMINATED"}
//
//   2. Performance Metrics (Histogram):
//      - taskpool_task_duration_seconds
//
//   3. Status Metrics (Gauge) - Instantaneous values:
//      - taskpool_workers_hot
//      - taskpool_workers_elastic
//
//   Queue depth is not exported as a metric.
//
// Prometheus Query Examples:
//
//   # Tasks completed per minute
//   rate(taskpool_tasks_completed_total[1m])
//
//   # 95th percentile task duration
//   histogram_quantile(0.95, taskpool_task_duration_seconds_bucket)
//
//   # Elastic overflow ratio
//   taskpool_workers_elastic / (taskpool_workers_hot + taskpool_workers_elastic)
//
// HTTP Endpoint:
//   Exposed via /metrics, scraped by Prometheus.
//
// ============================================================================

package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wrenhollow/taskpool"
)

var _ taskpool.Observer = (*Collector)(nil)

// Collector collects an advisory Prometheus trace of taskpool.Pool
// activity. It implements taskpool.Observer structurally; callers pass
// it as Config.Observer.
type Collector struct {
	tasksSubmitted prometheus.Counter
	tasksCompleted prometheus.Counter
	tasksCanceled  *prometheus.CounterVec
	taskDuration   prometheus.Histogram

	workersHot     prometheus.Gauge
	workersElastic prometheus.Gauge
}

// NewCollector creates and registers a new Collector.
func NewCollector() *Collector {
	c := &Collector{
		tasksSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskpool_tasks_submitted_total",
			Help: "Total number of tasks submitted",
		}),
		tasksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskpool_tasks_completed_total",
			Help: "Total number of tasks that ran to completion",
		}),
		tasksCanceled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskpool_tasks_canceled_total",
			Help: "Total number of tasks canceled, labeled by outcome",
		}, []string{"outcome"}),
		taskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskpool_task_duration_seconds",
			Help:    "Task execution duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		workersHot: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "taskpool_workers_hot",
			Help: "Current number of hot workers",
		}),
		workersElastic: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "taskpool_workers_elastic",
			Help: "Current number of elastic workers",
		}),
	}

	prometheus.MustRegister(
		c.tasksSubmitted,
		c.tasksCompleted,
		c.tasksCanceled,
		c.taskDuration,
		c.workersHot,
		c.workersElastic,
	)

	return c
}

// TaskSubmitted implements taskpool.Observer.
func (c *Collector) TaskSubmitted(id taskpool.TaskID) {
	c.tasksSubmitted.Inc()
}

// TaskAssigned implements taskpool.Observer. No metric is recorded on
// assignment alone; completion and cancellation are the terminal events.
func (c *Collector) TaskAssigned(id taskpool.TaskID, worker taskpool.WorkerID) {}

// TaskCompleted implements taskpool.Observer.
func (c *Collector) TaskCompleted(id taskpool.TaskID, elapsed time.Duration) {
	c.tasksCompleted.Inc()
	c.taskDuration.Observe(elapsed.Seconds())
}

// TaskCanceled implements taskpool.Observer.
func (c *Collector) TaskCanceled(id taskpool.TaskID, outcome taskpool.CancelOutcome) {
	c.tasksCanceled.WithLabelValues(outcome.String()).Inc()
}

// WorkerSpawned implements taskpool.Observer.
func (c *Collector) WorkerSpawned(id taskpool.WorkerID, kind string) {
	c.adjustWorkerGauge(kind, 1)
}

// WorkerRetired implements taskpool.Observer.
func (c *Collector) WorkerRetired(id taskpool.WorkerID, kind string) {
	c.adjustWorkerGauge(kind, -1)
}

func (c *Collector) adjustWorkerGauge(kind string, delta float64) {
	if kind == "hot" {
		c.workersHot.Add(delta)
	} else {
		c.workersElastic.Add(delta)
	}
}

// StartServer starts the Prometheus metrics HTTP server.
func StartServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, mux)
}
