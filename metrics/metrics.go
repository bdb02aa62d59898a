package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ai_proxy"

// Recorder tracks proxied requests per upstream.
//
// Metrics:
//   - ai_proxy_relayed_total: upstream responses relayed, by upstream and status code
//   - ai_proxy_failures_total: requests answered by the proxy itself, by upstream and kind
//   - ai_proxy_upstream_duration_seconds: time spent waiting on the upstream
//
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	relayed  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors with registry.
// A fresh registry is created when registry is nil.
func NewRecorder(registry *prometheus.Registry) *Recorder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	r := &Recorder{
		registry: registry,
		relayed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relayed_total",
				Help:      "Upstream responses relayed to the caller",
			},
			[]string{"upstream", "status"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures_total",
				Help:      "Requests answered with a proxy-generated error",
			},
			[]string{"upstream", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_duration_seconds",
				Help:      "Time spent waiting for the upstream response",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"upstream"},
		),
	}

	registry.MustRegister(r.relayed, r.failures, r.duration)
	return r
}

// RecordRelay records an upstream response that was passed through.
func (r *Recorder) RecordRelay(upstream string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.relayed.WithLabelValues(upstream, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(upstream).Observe(elapsed.Seconds())
}

// RecordFailure records a request the proxy rejected or could not complete.
func (r *Recorder) RecordFailure(upstream, kind string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(upstream, kind).Inc()
}

// Handler exposes the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
