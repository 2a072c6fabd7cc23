package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build isolated instances.
// All methods are safe on a nil receiver.
type Metrics struct {
	Registry *prometheus.Registry

	aiRequests      *prometheus.CounterVec
	aiLatency       *prometheus.HistogramVec
	mutations       *prometheus.CounterVec
	stockRejections *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		aiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agrovision",
			Name:      "ai_requests_total",
			Help:      "Generative model calls by flow and outcome.",
		}, []string{"flow", "outcome"}),
		aiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agrovision",
			Name:      "ai_request_seconds",
			Help:      "Generative model call latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		}, []string{"flow"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agrovision",
			Name:      "store_mutations_total",
			Help:      "Committed state store mutations by event kind.",
		}, []string{"kind"}),
		stockRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agrovision",
			Name:      "stock_rejections_total",
			Help:      "Stock transactions rejected before mutation.",
		}, []string{"reason"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.aiRequests, m.aiLatency, m.mutations, m.stockRejections,
	)
	return m
}

func (m *Metrics) ObserveAI(flow, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.aiRequests.WithLabelValues(flow, outcome).Inc()
	m.aiLatency.WithLabelValues(flow).Observe(d.Seconds())
}

func (m *Metrics) IncMutation(kind string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncStockRejection(reason string) {
	if m == nil {
		return
	}
	m.stockRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
