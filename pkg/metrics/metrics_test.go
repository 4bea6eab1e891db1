package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

// gatherMetric finds a metric family by name in the registry output.
func gatherMetric(t *testing.T, r *Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest("POST", "/analyze", "200", 42*time.Millisecond)
	r.RecordHTTPRequest("POST", "/analyze", "200", 10*time.Millisecond)

	mf := gatherMetric(t, r, "socialnet_http_requests_total")
	if mf == nil {
		t.Fatal("Expected socialnet_http_requests_total to be registered")
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 2 {
		t.Errorf("Expected counter 2, got %f", got)
	}
}

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("success", 100, 250)
	r.RecordAnalysis("error", 0, 0)

	mf := gatherMetric(t, r, "socialnet_analyses_total")
	if mf == nil {
		t.Fatal("Expected socialnet_analyses_total to be registered")
	}
	if len(mf.GetMetric()) != 2 {
		t.Errorf("Expected 2 label combinations, got %d", len(mf.GetMetric()))
	}

	nodes := gatherMetric(t, r, "socialnet_graph_nodes")
	if nodes.GetMetric()[0].GetHistogram().GetSampleCount() != 1 {
		t.Errorf("Expected 1 node-count sample (errors excluded)")
	}
}

func TestRecordModuleDuration(t *testing.T) {
	r := NewRegistry()

	r.RecordModuleDuration("community", 15*time.Millisecond)
	r.RecordModuleDuration("centrality", 120*time.Millisecond)

	mf := gatherMetric(t, r, "socialnet_analysis_duration_seconds")
	if mf == nil {
		t.Fatal("Expected socialnet_analysis_duration_seconds to be registered")
	}
	if len(mf.GetMetric()) != 2 {
		t.Errorf("Expected 2 module labels, got %d", len(mf.GetMetric()))
	}
}

func TestRecordParseFailure(t *testing.T) {
	r := NewRegistry()

	r.RecordParseFailure()

	mf := gatherMetric(t, r, "socialnet_parse_failures_total")
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Errorf("Expected 1 parse failure, got %f", got)
	}
}

func TestDefaultRegistrySingleton(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry should return the same instance")
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	if r.Handler() == nil {
		t.Error("Expected non-nil metrics handler")
	}
}
