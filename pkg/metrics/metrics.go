// Package metrics exposes Prometheus counters for index sync and auth.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the sync and auth code reports to.
type Recorder interface {
	RecordSyncTask(action, result string)
	RecordSyncRetry(action string)
	RecordSyncFailure(action string)
	RecordReconcileEnqueued(action string, count int)
	RecordAuthFailure(reason string)
}

// Sync task results
const (
	ResultSuccess = "success"
	ResultRetry   = "retry"
	ResultFailed  = "failed"
)

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	syncTasks         *prometheus.CounterVec
	syncRetries       *prometheus.CounterVec
	syncFailures      *prometheus.CounterVec
	reconcileEnqueued *prometheus.CounterVec
	authFailures      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		syncTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_sync_tasks_total",
			Help: "Search sync task executions by action and result.",
		}, []string{"action", "result"}),
		syncRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_sync_retries_total",
			Help: "Search sync tasks rescheduled after a transient failure.",
		}, []string{"action"}),
		syncFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_sync_failures_total",
			Help: "Search sync tasks that exhausted their retries.",
		}, []string{"action"}),
		reconcileEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_reconcile_enqueued_total",
			Help: "Sync tasks enqueued by reconciliation.",
		}, []string{"action"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_auth_failures_total",
			Help: "Rejected authentication and authorization attempts by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(
		c.syncTasks,
		c.syncRetries,
		c.syncFailures,
		c.reconcileEnqueued,
		c.authFailures,
	)

	return c
}

func (c *Collector) RecordSyncTask(action, result string) {
	c.syncTasks.WithLabelValues(action, result).Inc()
}

func (c *Collector) RecordSyncRetry(action string) {
	c.syncRetries.WithLabelValues(action).Inc()
}

func (c *Collector) RecordSyncFailure(action string) {
	c.syncFailures.WithLabelValues(action).Inc()
}

func (c *Collector) RecordReconcileEnqueued(action string, count int) {
	c.reconcileEnqueued.WithLabelValues(action).Add(float64(count))
}

func (c *Collector) RecordAuthFailure(reason string) {
	c.authFailures.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordSyncTask(string, string)       {}
func (Nop) RecordSyncRetry(string)              {}
func (Nop) RecordSyncFailure(string)            {}
func (Nop) RecordReconcileEnqueued(string, int) {}
func (Nop) RecordAuthFailure(string)            {}
