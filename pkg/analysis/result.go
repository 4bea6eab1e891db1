package analysis

import (
	"time"

	"github.com/Kanagaraj46/socialnet/pkg/algorithms"
)

// Result is the full outcome of one analysis run, keyed by the original node
// labels. Index translation happens inside the engine; callers never see
// dense indices. Each Result is owned by whoever requested the analysis and
// carries no references into other runs.
type Result struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Nodes     []string `json:"nodes"`
	NodeCount int      `json:"node_count"`
	EdgeCount int      `json:"edge_count"`
	Density   float64  `json:"density"`

	// AvgPathLength is meaningful only when Connected is true.
	AvgPathLength float64 `json:"avg_path_length"`
	Connected     bool    `json:"connected"`

	Communities []CommunitySummary `json:"communities"`
	Partition   map[string]int     `json:"partition"`
	Modularity  float64            `json:"modularity"`

	Degree      map[string]float64 `json:"degree_centrality"`
	Closeness   map[string]float64 `json:"closeness_centrality"`
	Betweenness map[string]float64 `json:"betweenness_centrality"`

	TopByDegree      []RankedLabel `json:"top_by_degree"`
	TopByCloseness   []RankedLabel `json:"top_by_closeness"`
	TopByBetweenness []RankedLabel `json:"top_by_betweenness"`

	Recommendations map[string][]Suggestion `json:"recommendations"`

	Clustering    map[string]float64 `json:"clustering_coefficients"`
	AvgClustering float64            `json:"avg_clustering"`
	TriangleCount int                `json:"triangle_count"`
	Suspicious    []RankedLabel      `json:"suspicious_accounts"`
}

// CommunitySummary describes one detected community.
type CommunitySummary struct {
	ID      int      `json:"id"`
	Size    int      `json:"size"`
	Density float64  `json:"density"`
	Members []string `json:"members"`
}

// RankedLabel pairs a node label with a score for ranked listings.
type RankedLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Suggestion is a recommended connection for a node.
type Suggestion struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func rankedLabels(nodes []algorithms.RankedNode) []RankedLabel {
	out := make([]RankedLabel, len(nodes))
	for i, n := range nodes {
		out[i] = RankedLabel{Label: n.Label, Score: n.Score}
	}
	return out
}

func labelScores(labels []string, scores []float64) map[string]float64 {
	out := make(map[string]float64, len(labels))
	for i, label := range labels {
		out[label] = scores[i]
	}
	return out
}
