// Package metrics records feed resolution metrics with Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"feed-resolver/core/interfaces"
)

const namespace = "feedresolver"

// Recorder implements interfaces.Metrics on its own registry
type Recorder struct {
	registry    *prometheus.Registry
	resolutions *prometheus.CounterVec
	hops        *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

var _ interfaces.Metrics = (*Recorder)(nil)

// NewRecorder creates a Recorder with a fresh registry that also carries
// the Go runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Total number of feed resolutions by outcome",
			},
			[]string{"outcome"},
		),
		hops: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resolution_hops",
				Help:      "Redirects and rediscoveries followed per resolution",
				Buckets:   []float64{0, 1, 2, 3},
			},
			[]string{"outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resolution_duration_seconds",
				Help:      "Duration of feed resolutions in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
}

// RecordResolution counts one finished resolution
func (r *Recorder) RecordResolution(outcome string, hops int, duration time.Duration) {
	r.resolutions.WithLabelValues(outcome).Inc()
	r.hops.WithLabelValues(outcome).Observe(float64(hops))
	r.duration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
