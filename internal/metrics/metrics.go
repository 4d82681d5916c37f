package metrics

import (
	"strconv"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Workflow operation labels
const (
	OpApply         = "apply_perms"
	OpApplyTransfer = "apply_transfer_perms"
	OpSaveTarget    = "save_sales_target"
	OpDeleteTarget  = "delete_sales_target"
)

var (
	// HTTP
	RequestsTotal = promauto.NewCounterVec(
		promclient.CounterOpts{
			Name: "almperms_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		promclient.HistogramOpts{
			Name:    "almperms_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: promclient.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Transactional workflows
	WorkflowRunsTotal = promauto.NewCounterVec(
		promclient.CounterOpts{
			Name: "almperms_workflow_runs_total",
			Help: "Total number of transactional workflow runs",
		},
		[]string{"operation", "success"}, // "true" or "false"
	)

	WorkflowDuration = promauto.NewHistogramVec(
		promclient.HistogramOpts{
			Name:    "almperms_workflow_duration_seconds",
			Help:    "Duration of transactional workflow units in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	RowsDeletedTotal = promauto.NewCounterVec(
		promclient.CounterOpts{
			Name: "almperms_rows_deleted_total",
			Help: "Rows removed by committed workflows",
		},
		[]string{"table"},
	)

	RowsCreatedTotal = promauto.NewCounterVec(
		promclient.CounterOpts{
			Name: "almperms_rows_created_total",
			Help: "Rows inserted or upserted by committed workflows",
		},
		[]string{"table"},
	)

	DefaultsDemotedTotal = promauto.NewCounter(
		promclient.CounterOpts{
			Name: "almperms_defaults_demoted_total",
			Help: "Assignments whose default-warehouse flag was cleared",
		},
	)
)

// ObserveWorkflow records one workflow run that started at start
func ObserveWorkflow(operation string, start time.Time, err error) {
	WorkflowRunsTotal.WithLabelValues(operation, strconv.FormatBool(err == nil)).Inc()
	WorkflowDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
