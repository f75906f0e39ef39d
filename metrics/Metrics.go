package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var FilesRemoved = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cinch_purge_files_removed_total",
		Help: "Files removed from disk, by table.",
	},
	[]string{"table"},
)

var RemovalFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cinch_purge_removal_failures_total",
		Help: "Files or directories that could not be removed.",
	},
	[]string{"kind"},
)

var DirectoriesRemoved = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cinch_purge_directories_removed_total",
		Help: "Empty directories removed by the sweep.",
	},
	[]string{},
)

var ListRowsCleared = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cinch_purge_list_rows_cleared_total",
		Help: "Processed list rows deleted, by table.",
	},
	[]string{"table"},
)

var RemindersSent = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cinch_purge_reminders_sent_total",
		Help: "Deletion reminders mailed.",
	},
	[]string{},
)

var RemindersFailed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cinch_purge_reminders_failed_total",
		Help: "Deletion reminders that could not be mailed.",
	},
	[]string{},
)

var LastSuccess = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "cinch_purge_last_success_timestamp_seconds",
		Help: "Unix time of the last successful run, by action.",
	},
	[]string{"action"},
)

var RunDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "cinch_purge_run_duration_seconds",
		Help: "Duration of purge runs, by action and result.",
		Buckets: []float64{
			1,
			5,
			15,
			30,
			60,
			300,
			900,
			1800,
		},
	},
	[]string{"action", "result"},
)

var TotalRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cinch_http_requests_total",
		Help: "Number of http requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "cinch_http_request_duration_seconds_histogram",
		Buckets: []float64{
			0.1, // 100 ms
			0.25,
			0.5,
			1,
			3,
		},
	},
	[]string{"path", "code", "method"},
)

const (
	KindFile      = "file"
	KindDirectory = "directory"
)

func RegisterAllPrometheusApplicationMetrics() {
	prometheus.Register(FilesRemoved)
	prometheus.Register(RemovalFailures)
	prometheus.Register(DirectoriesRemoved)
	prometheus.Register(ListRowsCleared)
	prometheus.Register(RemindersSent)
	prometheus.Register(RemindersFailed)
	prometheus.Register(LastSuccess)
	prometheus.Register(TotalRequests)
}
