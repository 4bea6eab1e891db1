package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAnalysis records a completed analysis and the size of its graph.
func (r *Registry) RecordAnalysis(status string, nodes, edges int) {
	r.AnalysesTotal.WithLabelValues(status).Inc()
	if status == "success" {
		r.GraphNodes.Observe(float64(nodes))
		r.GraphEdges.Observe(float64(edges))
	}
}

// RecordModuleDuration records how long one analysis module took.
func (r *Registry) RecordModuleDuration(module string, duration time.Duration) {
	r.AnalysisDuration.WithLabelValues(module).Observe(duration.Seconds())
}

// RecordParseFailure counts a rejected adjacency-list upload.
func (r *Registry) RecordParseFailure() {
	r.ParseFailures.Inc()
}

// Handler returns an HTTP handler exposing the registry in Prometheus text
// format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
