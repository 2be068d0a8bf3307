package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chatwire",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chatwire",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
	linesParsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chatwire",
			Subsystem: "codec",
			Name:      "lines_parsed_total",
			Help:      "Wire lines handed to the parser, by result.",
		},
		[]string{"service", "result"},
	)
	linesComposed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chatwire",
			Subsystem: "codec",
			Name:      "lines_composed_total",
			Help:      "Messages serialized back into wire lines.",
		},
		[]string{"service"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, linesParsed, linesComposed)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordParse counts one parser invocation. Result is "ok" or the short
// name of the parse failure ("empty_input", "missing_command").
func RecordParse(service, result string) {
	RegisterMetrics()
	linesParsed.WithLabelValues(service, result).Inc()
}

func RecordCompose(service string) {
	RegisterMetrics()
	linesComposed.WithLabelValues(service).Inc()
}
