package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics keeps its own registry so several servers can coexist in one process.
type Metrics struct {
	registry         *prometheus.Registry
	PageRenders      *prometheus.CounterVec
	VisitorsRecorded prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homepage",
			Name:      "page_renders_total",
			Help:      "Number of rendered pages by page and status.",
		}, []string{"page", "status"}),
		VisitorsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "homepage",
			Name:      "visitors_recorded_total",
			Help:      "Number of visits written to the visitor store.",
		}),
	}
	registry.MustRegister(m.PageRenders, m.VisitorsRecorded)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
