// Package metrics turns coordinator events into Prometheus collectors on a private registry.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/propertypro/ppai/internal/domain"
)

const noModule = "none"

type Recorder struct {
	registry *prometheus.Registry
	events   *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ppai",
				Subsystem: "ai",
				Name:      "events_total",
				Help:      "AI coordinator events by type and module.",
			},
			[]string{"type", "module"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ppai",
				Subsystem: "ai",
				Name:      "request_duration_seconds",
				Help:      "Latency of AI requests that produced a response or an error.",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"outcome", "module"},
		),
	}
	r.registry.MustRegister(r.events, r.latency)
	return r
}

// Observe records one event. It matches the Coordinator.SubscribeMetrics callback.
func (r *Recorder) Observe(event domain.MetricsEvent) {
	module := string(event.Module)
	if module == "" {
		module = noModule
	}
	r.events.WithLabelValues(string(event.Type), module).Inc()
	if event.Type != domain.MetricsRequest {
		r.latency.WithLabelValues(string(event.Type), module).Observe(event.Latency.Seconds())
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every collected family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
