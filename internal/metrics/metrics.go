// Package metrics counts scenario and step outcomes of a run. The registry can
// be written in the Prometheus text format for the node exporter textfile
// collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace   = "kube_bdd"
	statusLabel = "status"
)

type Recorder struct {
	registry     *prometheus.Registry
	scenarios    *prometheus.CounterVec
	steps        *prometheus.CounterVec
	stepDuration prometheus.Histogram
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		scenarios: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenarios_total",
			Help:      "Scenarios run, by outcome.",
		}, []string{statusLabel}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Steps run, by godog step status.",
		}, []string{statusLabel}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Time spent in a step, including cluster calls.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	r.registry.MustRegister(r.scenarios, r.steps, r.stepDuration)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveScenario(failed bool) {
	status := "passed"
	if failed {
		status = "failed"
	}
	r.scenarios.WithLabelValues(status).Inc()
}

func (r *Recorder) ObserveStep(status string, elapsed time.Duration) {
	r.steps.WithLabelValues(status).Inc()
	r.stepDuration.Observe(elapsed.Seconds())
}

// WriteTextfile replaces path with the current values.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
