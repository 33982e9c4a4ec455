package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

const namespace = "sitenav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	resolveDuration prom.Histogram
	resolveOutcomes *prom.CounterVec
	stageDuration   *prom.HistogramVec
	documents       prom.Gauge
	menuEntries     prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		resolveDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "resolve_duration_seconds",
			Help:      "Duration of navigation resolution",
			Buckets:   prom.DefBuckets,
		}),
		resolveOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "resolve_outcomes_total",
			Help:      "Navigation resolution outcomes",
		}, []string{"outcome"}),
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual generation stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		documents: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "documents",
			Help:      "Documents discovered in the last run",
		}),
		menuEntries: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "menu_entries",
			Help:      "Entries in the last resolved menu",
		}),
	}
	reg.MustRegister(pr.resolveDuration, pr.resolveOutcomes, pr.stageDuration, pr.documents, pr.menuEntries)
	return pr
}

func (p *PrometheusRecorder) ObserveResolveDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.resolveDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncResolveOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.resolveOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetDocuments(n int) {
	if p == nil {
		return
	}
	p.documents.Set(float64(n))
}

func (p *PrometheusRecorder) SetMenuEntries(n int) {
	if p == nil {
		return
	}
	p.menuEntries.Set(float64(n))
}

// OutcomeFor classifies a resolve error.
func OutcomeFor(err error) OutcomeLabel {
	switch {
	case err == nil:
		return OutcomeSuccess
	case ferrors.HasCategory(err, ferrors.CategoryConfig):
		return OutcomeInvalid
	default:
		return OutcomeFailed
	}
}

// WriteTextfile writes every metric in g to path in the text exposition format.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return ferrors.FileSystemError("failed to write metrics file").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	return nil
}
