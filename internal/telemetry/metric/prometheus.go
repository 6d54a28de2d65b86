package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// namespace prefixes every sshblend metric.
const namespace = "sshblend"

// Run outcome label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Trigger label values for watch-mode regenerations.
const (
	TriggerInitial   = "initial"
	TriggerSSID      = "ssid"
	TriggerFragments = "fragments"
)

// Registry holds the sshblend application metrics backed by its own
// Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	// RunsTotal counts generation runs by outcome.
	RunsTotal *prometheus.CounterVec

	// TriggersTotal counts watch-mode regeneration triggers by cause.
	TriggersTotal *prometheus.CounterVec

	// RunDuration observes generation run wall time in seconds.
	RunDuration prometheus.Histogram

	// FragmentsComposed is the fragment count of the last run that
	// contributed to the output.
	FragmentsComposed prometheus.Gauge

	// FragmentsSkipped is the skipped fragment count of the last run.
	FragmentsSkipped prometheus.Gauge

	// OutputBytes is the size of the last composed document.
	OutputBytes prometheus.Gauge

	// LastSuccessTime is the unix time of the last successful run.
	LastSuccessTime prometheus.Gauge
}

// NewRegistry creates a registry with all application metrics
// registered, plus the standard Go runtime collector.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	r := &Registry{
		registry: reg,
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Generation runs by outcome.",
		}, []string{"result"}),
		TriggersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triggers_total",
			Help:      "Watch-mode regeneration triggers by cause.",
		}, []string{"trigger"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Generation run wall time.",
			Buckets:   prometheus.DefBuckets,
		}),
		FragmentsComposed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fragments_composed",
			Help:      "Fragments contributing to the last composed output.",
		}),
		FragmentsSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fragments_skipped",
			Help:      "Fragments skipped in the last run.",
		}),
		OutputBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "output_bytes",
			Help:      "Size of the last composed document.",
		}),
		LastSuccessTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful generation run.",
		}),
	}

	reg.MustRegister(
		r.RunsTotal,
		r.TriggersTotal,
		r.RunDuration,
		r.FragmentsComposed,
		r.FragmentsSkipped,
		r.OutputBytes,
		r.LastSuccessTime,
	)
	return r
}

// Handler returns the HTTP handler serving this registry's metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
