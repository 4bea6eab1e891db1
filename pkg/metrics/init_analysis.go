package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_analyses_total",
			Help: "Total number of graph analyses executed",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialnet_analysis_duration_seconds",
			Help:    "Duration of each analysis module in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 60.0},
		},
		[]string{"module"},
	)

	r.ParseFailures = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "socialnet_parse_failures_total",
			Help: "Total number of adjacency-list parse failures",
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "socialnet_graph_nodes",
			Help:    "Node count of analyzed graphs",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "socialnet_graph_edges",
			Help:    "Edge count of analyzed graphs",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)
}
