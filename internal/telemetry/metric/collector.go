package metric

import (
	"time"

	"github.com/sshblend/sshblend/internal/core/domain"
)

// ObserveTrigger records what caused a watch-mode regeneration.
func (r *Registry) ObserveTrigger(trigger string) {
	r.TriggersTotal.WithLabelValues(trigger).Inc()
}

// ObserveRun folds one run's outcome into the registry. A nil report
// with a non-nil err records a failed run; gauges keep their previous
// values so the last good run stays visible.
func (r *Registry) ObserveRun(report *domain.RunReport, err error) {
	if err != nil {
		r.RunsTotal.WithLabelValues(ResultError).Inc()
		return
	}

	r.RunsTotal.WithLabelValues(ResultSuccess).Inc()
	r.RunDuration.Observe(report.Duration.Seconds())
	r.FragmentsComposed.Set(float64(report.Composed()))
	r.FragmentsSkipped.Set(float64(report.SkippedCount()))
	r.OutputBytes.Set(float64(report.Bytes))
	r.LastSuccessTime.Set(float64(time.Now().Unix()))
}
