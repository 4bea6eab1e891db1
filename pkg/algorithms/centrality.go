package algorithms

import (
	"container/list"
	"context"
	"errors"
	"fmt"

	"github.com/Kanagaraj46/socialnet/pkg/graph"
)

// ErrGraphTooLarge is returned when betweenness centrality is requested on a
// graph exceeding the configured node cap.
var ErrGraphTooLarge = errors.New("graph exceeds betweenness node limit")

// CentralityOptions configures centrality computation.
type CentralityOptions struct {
	// MaxBetweennessNodes bounds the O(N·M) betweenness computation.
	// 0 disables the cap.
	MaxBetweennessNodes int
	// TopK controls the length of the ranked listings.
	TopK int
}

// DefaultCentralityOptions returns sensible defaults.
func DefaultCentralityOptions() CentralityOptions {
	return CentralityOptions{MaxBetweennessNodes: 0, TopK: 5}
}

// CentralityResult contains all centrality measures, indexed by node.
type CentralityResult struct {
	Degree      []float64
	Closeness   []float64
	Betweenness []float64

	TopByDegree      []RankedNode
	TopByCloseness   []RankedNode
	TopByBetweenness []RankedNode
}

// DegreeCentrality computes degree centrality for all nodes, normalized by
// (N-1). Graphs with fewer than two nodes score all zeros.
func DegreeCentrality(g *graph.Graph) []float64 {
	n := g.NodeCount()
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}
	for i := 0; i < n; i++ {
		scores[i] = float64(g.DegreeByIndex(i)) / float64(n-1)
	}
	return scores
}

// ClosenessCentrality computes closeness centrality for all nodes via BFS:
// (reachable count) / Σ distances, with unreachable nodes excluded from the
// sum so disconnected graphs do not inflate scores. Isolated nodes score 0.
func ClosenessCentrality(g *graph.Graph) []float64 {
	n := g.NodeCount()
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}

	distance := make([]int, n)
	for source := 0; source < n; source++ {
		for i := range distance {
			distance[i] = -1
		}
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		totalDistance := 0
		reachable := 0
		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(int)
			for _, w := range g.NeighborsByIndex(v) {
				if distance[w] < 0 {
					distance[w] = distance[v] + 1
					totalDistance += distance[w]
					reachable++
					queue.PushBack(w)
				}
			}
		}

		if totalDistance > 0 {
			scores[source] = float64(reachable) / float64(totalDistance)
		}
	}
	return scores
}

// BetweennessCentrality computes betweenness centrality for all nodes using
// Brandes' algorithm: one BFS with path counting per source, fractional
// credit split across equal-length shortest paths, then back-propagation.
// Scores are normalized by (N−1)(N−2) for N ≥ 3; smaller graphs score all
// zeros. The context is checked between sources so long runs are abortable.
func BetweennessCentrality(ctx context.Context, g *graph.Graph, opts CentralityOptions) ([]float64, error) {
	n := g.NodeCount()
	scores := make([]float64, n)
	if n < 3 {
		return scores, nil
	}
	if opts.MaxBetweennessNodes > 0 && n > opts.MaxBetweennessNodes {
		return nil, fmt.Errorf("%w: %d nodes, limit %d", ErrGraphTooLarge, n, opts.MaxBetweennessNodes)
	}

	stack := make([]int, 0, n)
	predecessors := make([][]int, n)
	sigma := make([]float64, n)
	distance := make([]int, n)
	delta := make([]float64, n)

	for source := 0; source < n; source++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stack = stack[:0]
		for i := 0; i < n; i++ {
			predecessors[i] = predecessors[i][:0]
			sigma[i] = 0.0
			distance[i] = -1
			delta[i] = 0.0
		}
		sigma[source] = 1.0
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(int)
			stack = append(stack, v)

			for _, w := range g.NeighborsByIndex(v) {
				if distance[w] < 0 {
					distance[w] = distance[v] + 1
					queue.PushBack(w)
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of dependencies.
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, pred := range predecessors[w] {
				delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				scores[w] += delta[w]
			}
		}
	}

	normFactor := 1.0 / float64((n-1)*(n-2))
	for i := range scores {
		scores[i] *= normFactor
	}
	return scores, nil
}

// ComputeAllCentrality computes every centrality measure plus the ranked
// top-K listings per kind.
func ComputeAllCentrality(ctx context.Context, g *graph.Graph, opts CentralityOptions) (*CentralityResult, error) {
	betweenness, err := BetweennessCentrality(ctx, g, opts)
	if err != nil {
		return nil, err
	}

	degree := DegreeCentrality(g)
	closeness := ClosenessCentrality(g)

	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultCentralityOptions().TopK
	}

	return &CentralityResult{
		Degree:           degree,
		Closeness:        closeness,
		Betweenness:      betweenness,
		TopByDegree:      TopNodes(g, degree, topK),
		TopByCloseness:   TopNodes(g, closeness, topK),
		TopByBetweenness: TopNodes(g, betweenness, topK),
	}, nil
}
