package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stoploss_quoting/internal/domain/entities"
)

const namespace = "stoploss"

// Recorder exposes business counters on its own registry so tests and
// multiple instances never collide on the global one.
type Recorder struct {
	registry *prometheus.Registry

	quotesGenerated *prometheus.CounterVec
	decisions       *prometheus.CounterVec
	policiesBound   prometheus.Counter
	narratives      *prometheus.CounterVec
	riskScore       prometheus.Histogram
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		quotesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_generated_total",
			Help:      "Quotes priced, by coverage type.",
		}, []string{"coverage_type"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "underwriting_decisions_total",
			Help:      "Underwriting decisions, by decision and source (auto or manual).",
		}, []string{"decision", "source"}),
		policiesBound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policies_bound_total",
			Help:      "Policies created from approved quotes.",
		}),
		narratives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "narratives_generated_total",
			Help:      "Underwriting narratives, by generator.",
		}, []string{"generated_by"}),
		riskScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Overall risk score of generated quotes.",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.55, 0.65, 0.75, 0.9, 1},
		}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.quotesGenerated,
		r.decisions,
		r.policiesBound,
		r.narratives,
		r.riskScore,
	)
	return r
}

func (r *Recorder) QuoteGenerated(coverage entities.CoverageType, riskScore float64) {
	r.quotesGenerated.WithLabelValues(string(coverage)).Inc()
	r.riskScore.Observe(riskScore)
}

func (r *Recorder) UnderwritingDecision(decision entities.UnderwritingDecision, source string) {
	r.decisions.WithLabelValues(string(decision), source).Inc()
}

func (r *Recorder) PolicyBound() {
	r.policiesBound.Inc()
}

func (r *Recorder) NarrativeGenerated(source entities.NarrativeSource) {
	r.narratives.WithLabelValues(string(source)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
