package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	summariesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "wrapped_service",
		Subsystem: "engine",
		Name:      "summaries_total",
		Help:      "Number of export summaries produced.",
	})
	summaryFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wrapped_service",
		Subsystem: "engine",
		Name:      "summary_failures_total",
		Help:      "Number of failed summary attempts by stage.",
	}, []string{"stage"})
	scanFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "wrapped_service",
		Subsystem: "engine",
		Name:      "scan_fallbacks_total",
		Help:      "Number of summaries that needed the raw scan pass.",
	})
	summaryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wrapped_service",
		Subsystem: "engine",
		Name:      "summary_duration_seconds",
		Help:      "Time spent producing one summary.",
		Buckets:   prometheus.DefBuckets,
	})
	announceFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "wrapped_service",
		Subsystem: "events",
		Name:      "announce_failures_total",
		Help:      "Number of summary events that could not be published.",
	})
)

func init() {
	prometheus.MustRegister(summariesTotal, summaryFailures, scanFallbacks, summaryDuration, announceFailures)
}

// RecordSummaryProcessed counts a finished summary and observes its latency.
func RecordSummaryProcessed(elapsed time.Duration) {
	summariesTotal.Inc()
	summaryDuration.Observe(elapsed.Seconds())
}

// RecordSummaryFailure counts a failed summary attempt for the given stage.
func RecordSummaryFailure(stage string) {
	summaryFailures.WithLabelValues(stage).Inc()
}

// RecordScanFallback counts a summary that required the raw scan pass.
func RecordScanFallback() {
	scanFallbacks.Inc()
}

// RecordAnnounceFailure counts a summary event publish failure.
func RecordAnnounceFailure() {
	announceFailures.Inc()
}
