package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once           sync.Once
	renderDuration prom.Histogram
	outputSize     prom.Histogram
	nodes          *prom.CounterVec
	renderOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.renderDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docrender",
			Name:      "render_duration_seconds",
			Help:      "Duration of individual document renders",
			Buckets:   prom.DefBuckets,
		})
		pr.outputSize = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docrender",
			Name:      "output_bytes",
			Help:      "Size of rendered HTML fragments",
			Buckets:   prom.ExponentialBuckets(256, 4, 8),
		})
		pr.nodes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docrender",
			Name:      "nodes_total",
			Help:      "Document nodes processed by kind",
		}, []string{"kind"})
		pr.renderOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docrender",
			Name:      "render_outcomes_total",
			Help:      "Render outcomes by final status",
		}, []string{"outcome"})
		reg.MustRegister(pr.renderDuration, pr.outputSize, pr.nodes, pr.renderOutcome)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveRenderDuration(d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveOutputSize(bytes int) {
	if p == nil || p.outputSize == nil {
		return
	}
	p.outputSize.Observe(float64(bytes))
}

func (p *PrometheusRecorder) IncNode(kind string) {
	if p == nil || p.nodes == nil {
		return
	}
	p.nodes.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) IncRenderOutcome(outcome OutcomeLabel) {
	if p == nil || p.renderOutcome == nil {
		return
	}
	p.renderOutcome.WithLabelValues(string(outcome)).Inc()
}
