package obs

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// DispatchRuns counts dispatch runs by strategy.
	DispatchRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dispatch_runs_total", Help: "Dispatch runs by strategy."},
		[]string{"strategy"},
	)
	// DispatchJobs counts dispatched jobs by outcome.
	DispatchJobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dispatch_jobs_total", Help: "Jobs processed by dispatch outcome."},
		[]string{"outcome"},
	)
	// DispatchDuration records dispatch run durations in seconds.
	DispatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "dispatch_duration_seconds", Help: "Dispatch run duration in seconds.", Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5}},
	)
)

var regOnce sync.Once

// RegisterMetrics registers all collectors on the service registry.
func RegisterMetrics() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(DispatchRuns)
		Registry.MustRegister(DispatchJobs)
		Registry.MustRegister(DispatchDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// RecordDispatch publishes the outcome of one dispatch run.
func RecordDispatch(strategy string, assigned, unassigned int, elapsed time.Duration) {
	DispatchRuns.WithLabelValues(strategy).Inc()
	DispatchJobs.WithLabelValues("assigned").Add(float64(assigned))
	DispatchJobs.WithLabelValues("unassigned").Add(float64(unassigned))
	DispatchDuration.Observe(elapsed.Seconds())
}
