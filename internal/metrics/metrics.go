// Package metrics records collection timings and outcomes on a private
// prometheus registry that the CLI can dump to a node_exporter textfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the collectors for one run. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	reg *prometheus.Registry

	commandDuration *prometheus.HistogramVec
	connectDuration *prometheus.HistogramVec
	helperTotal     *prometheus.CounterVec
	targetsTotal    *prometheus.CounterVec
	sectionsFailed  *prometheus.CounterVec
}

// New creates a Recorder backed by a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		commandDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onefs_survey_command_duration_seconds",
			Help:    "Duration of remote diagnostic commands",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 1800, 3600},
		}, []string{"domain", "outcome"}),
		connectDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onefs_survey_connect_duration_seconds",
			Help:    "Duration of SSH session establishment",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30},
		}, []string{"outcome"}),
		helperTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onefs_survey_helper_checks_total",
			Help: "Helper presence checks by result",
		}, []string{"presence"}),
		targetsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onefs_survey_targets_total",
			Help: "Collected targets by final status",
		}, []string{"status"}),
		sectionsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onefs_survey_sections_failed_total",
			Help: "Failed report sections by domain and stage",
		}, []string{"domain", "stage"}),
	}
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}

func (r *Recorder) ObserveCommand(domain, outcome string, seconds float64) {
	if r == nil {
		return
	}
	r.commandDuration.WithLabelValues(domain, outcome).Observe(seconds)
}

func (r *Recorder) ObserveConnect(outcome string, seconds float64) {
	if r == nil {
		return
	}
	r.connectDuration.WithLabelValues(outcome).Observe(seconds)
}

func (r *Recorder) HelperChecked(presence string) {
	if r == nil {
		return
	}
	r.helperTotal.WithLabelValues(presence).Inc()
}

func (r *Recorder) TargetDone(status string) {
	if r == nil {
		return
	}
	r.targetsTotal.WithLabelValues(status).Inc()
}

func (r *Recorder) SectionFailed(domain, stage string) {
	if r == nil {
		return
	}
	r.sectionsFailed.WithLabelValues(domain, stage).Inc()
}

// WriteTextfile writes the current values in the text exposition format,
// atomically replacing path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry())
}
