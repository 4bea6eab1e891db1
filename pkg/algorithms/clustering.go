package algorithms

import (
	"github.com/Kanagaraj46/socialnet/pkg/graph"
)

// ClusteringResult holds per-node clustering coefficients and the derived
// anomaly signal. Coefficients are raw values in [0,1]; turning them into a
// boolean verdict is policy, configured by the caller via SuspiciousRatio.
type ClusteringResult struct {
	Coefficients  []float64    `json:"coefficients"`
	Average       float64      `json:"average"`
	TriangleCount int          `json:"triangle_count"`
	Suspicious    []RankedNode `json:"suspicious"` // coefficient ascending
}

// ClusteringOptions configures the anomaly signal derived from clustering
// coefficients.
type ClusteringOptions struct {
	// SuspiciousRatio flags nodes whose coefficient is below
	// ratio × average coefficient. 0 disables flagging.
	SuspiciousRatio float64
	// MaxSuspicious caps the flagged listing, <=0 means default.
	MaxSuspicious int
}

// DefaultClusteringOptions returns sensible defaults.
func DefaultClusteringOptions() ClusteringOptions {
	return ClusteringOptions{SuspiciousRatio: 0.1, MaxSuspicious: 10}
}

// ClusteringCoefficients computes the local clustering coefficient of every
// node: 2 × links among neighbors / (k × (k−1)), with 0 for degree < 2.
func ClusteringCoefficients(g *graph.Graph) []float64 {
	n := g.NodeCount()
	coefficients := make([]float64, n)

	for u := 0; u < n; u++ {
		neighbors := g.NeighborsByIndex(u)
		k := len(neighbors)
		if k < 2 {
			continue
		}

		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdge(neighbors[i], neighbors[j]) {
					links++
				}
			}
		}
		coefficients[u] = 2.0 * float64(links) / float64(k*(k-1))
	}
	return coefficients
}

// AverageClusteringCoefficient returns the mean coefficient, 0 for an empty
// graph.
func AverageClusteringCoefficient(coefficients []float64) float64 {
	if len(coefficients) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, c := range coefficients {
		sum += c
	}
	return sum / float64(len(coefficients))
}

// CountTriangles counts unique triangles in the graph. Each triangle has
// exactly one vertex with the two smaller-indexed neighbors, so iterating
// ordered pairs of each node's neighbor list counts it once.
func CountTriangles(g *graph.Graph) int {
	total := 0
	for u := 0; u < g.NodeCount(); u++ {
		neighbors := g.NeighborsByIndex(u)
		for i := 0; i < len(neighbors); i++ {
			if neighbors[i] < u {
				continue
			}
			for j := i + 1; j < len(neighbors); j++ {
				if g.HasEdge(neighbors[i], neighbors[j]) {
					total++
				}
			}
		}
	}
	return total
}

// ComputeClustering computes coefficients, the average, the triangle count
// and the suspicious-account candidates: nodes whose coefficient falls below
// SuspiciousRatio × average, listed coefficient ascending. No node is
// flagged when the average is 0.
func ComputeClustering(g *graph.Graph, opts ClusteringOptions) *ClusteringResult {
	coefficients := ClusteringCoefficients(g)
	average := AverageClusteringCoefficient(coefficients)

	maxSuspicious := opts.MaxSuspicious
	if maxSuspicious <= 0 {
		maxSuspicious = DefaultClusteringOptions().MaxSuspicious
	}

	var suspicious []RankedNode
	if opts.SuspiciousRatio > 0 && average > 0 {
		threshold := opts.SuspiciousRatio * average
		labels := g.Labels()
		for idx, c := range coefficients {
			if c < threshold {
				suspicious = append(suspicious, RankedNode{Index: idx, Label: labels[idx], Score: c})
			}
		}
		// Already index ascending; order by coefficient ascending, keeping
		// index order for ties.
		sortRankedAscending(suspicious)
		if len(suspicious) > maxSuspicious {
			suspicious = suspicious[:maxSuspicious]
		}
	}

	return &ClusteringResult{
		Coefficients:  coefficients,
		Average:       average,
		TriangleCount: CountTriangles(g),
		Suspicious:    suspicious,
	}
}
