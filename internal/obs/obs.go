package obs

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	fetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_fetch_failures_total",
		Help: "Fetches that exhausted all retries and degraded to an empty result.",
	}, []string{"upstream", "cmd"})

	fetchRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_fetch_retries_total",
		Help: "Individual retry attempts against upstream services.",
	}, []string{"upstream", "cmd"})

	reportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "attribution_report_duration_seconds",
		Help:    "End-to-end attribution report assembly time.",
		Buckets: prometheus.DefBuckets,
	})
)

func CountFetchFailure(upstream, cmd string) {
	fetchFailures.WithLabelValues(upstream, cmd).Inc()
}

func CountFetchRetry(upstream, cmd string) {
	fetchRetries.WithLabelValues(upstream, cmd).Inc()
}

func ObserveReportDuration(d time.Duration) {
	reportDuration.Observe(d.Seconds())
}

func Handler() http.Handler { return promhttp.Handler() }
