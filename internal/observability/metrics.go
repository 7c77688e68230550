// Package observability provides Prometheus instrumentation and structured
// logging setup shared by the engine and its adapters.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the analysis engine.
type Metrics struct {
	AnalysesTotal    prometheus.Counter
	AnalysisDuration prometheus.Histogram
	CellsComputed    prometheus.Counter
	CellsPerAnalysis prometheus.Histogram

	TensorSources      *prometheus.CounterVec // labels: source={procedural,provider}
	RendererDispatches *prometheus.CounterVec // labels: outcome={success,error}

	// Dimension provider metrics.
	ProviderRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	ProviderCache       *prometheus.CounterVec // labels: result={hit,miss}
	ProviderAPIDuration prometheus.Histogram
}

// NewMetrics creates and registers all engine metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contextspace",
			Name:      "analyses_total",
			Help:      "Total completed context-space analyses.",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "contextspace",
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of a full analysis, grid generation through aggregation.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CellsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contextspace",
			Name:      "cells_computed_total",
			Help:      "Total hex cells resolved across all analyses.",
		}),
		CellsPerAnalysis: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "contextspace",
			Name:      "cells_per_analysis",
			Help:      "Grid size distribution. Buckets follow the centered hexagon numbers.",
			Buckets:   []float64{7, 19, 37, 61, 91, 127, 169, 217},
		}),
		TensorSources: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contextspace",
			Name:      "tensor_source_total",
			Help:      "Resolved tensors by origin.",
		}, []string{"source"}),
		RendererDispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contextspace",
			Name:      "renderer_dispatch_total",
			Help:      "Render callbacks by outcome.",
		}, []string{"outcome"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contextspace",
			Name:      "provider_requests_total",
			Help:      "Upstream dimension lookups by outcome.",
		}, []string{"outcome"}),
		ProviderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contextspace",
			Name:      "provider_cache_total",
			Help:      "Dimension cache lookups by result.",
		}, []string{"result"}),
		ProviderAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "contextspace",
			Name:      "provider_api_duration_seconds",
			Help:      "Context API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}

	prometheus.MustRegister(
		m.AnalysesTotal,
		m.AnalysisDuration,
		m.CellsComputed,
		m.CellsPerAnalysis,
		m.TensorSources,
		m.RendererDispatches,
		m.ProviderRequests,
		m.ProviderCache,
		m.ProviderAPIDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AnalysesTotal:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "contextspace", Name: "analyses_total"}),
		AnalysisDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "contextspace", Name: "analysis_duration_seconds"}),
		CellsComputed:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "contextspace", Name: "cells_computed_total"}),
		CellsPerAnalysis:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "contextspace", Name: "cells_per_analysis"}),
		TensorSources:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "contextspace", Name: "tensor_source_total"}, []string{"source"}),
		RendererDispatches:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "contextspace", Name: "renderer_dispatch_total"}, []string{"outcome"}),
		ProviderRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "contextspace", Name: "provider_requests_total"}, []string{"outcome"}),
		ProviderCache:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "contextspace", Name: "provider_cache_total"}, []string{"result"}),
		ProviderAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "contextspace", Name: "provider_api_duration_seconds"}),
	}
}
