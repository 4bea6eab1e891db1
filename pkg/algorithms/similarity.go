package algorithms

import (
	"math"
	"sort"

	"github.com/Kanagaraj46/socialnet/pkg/graph"
)

// SimilarityMetric selects which set-similarity formula to use.
type SimilarityMetric int

const (
	SimilarityJaccard SimilarityMetric = iota // |A∩B| / |A∪B|
	SimilarityOverlap                         // |A∩B| / min(|A|,|B|)
	SimilarityCosine                          // |A∩B| / sqrt(|A|×|B|)
)

// SimilarityOptions configures similarity and recommendation computation.
type SimilarityOptions struct {
	Metric SimilarityMetric
	TopK   int // max recommendations per node, <=0 means default
}

// DefaultSimilarityOptions returns sensible defaults. Jaccard is the metric
// the recommendation pipeline is specified against.
func DefaultSimilarityOptions() SimilarityOptions {
	return SimilarityOptions{Metric: SimilarityJaccard, TopK: 5}
}

// SimilarityScore holds a similarity score between two nodes, NodeA < NodeB.
type SimilarityScore struct {
	NodeA int     `json:"node_a"`
	NodeB int     `json:"node_b"`
	Score float64 `json:"score"`
}

// Recommendation is a suggested connection for a node.
type Recommendation struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// intersectionSize counts common elements of two sorted int slices.
func intersectionSize(a, b []int) int {
	count, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}

// setSimilarity computes the chosen similarity over two sorted neighbor
// lists. Two empty sets score 0 by definition.
func setSimilarity(a, b []int, metric SimilarityMetric) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	intersection := intersectionSize(a, b)
	if intersection == 0 {
		return 0.0
	}

	switch metric {
	case SimilarityJaccard:
		union := len(a) + len(b) - intersection
		return float64(intersection) / float64(union)
	case SimilarityOverlap:
		minSize := len(a)
		if len(b) < minSize {
			minSize = len(b)
		}
		return float64(intersection) / float64(minSize)
	case SimilarityCosine:
		return float64(intersection) / math.Sqrt(float64(len(a))*float64(len(b)))
	default:
		return 0.0
	}
}

// Similarity computes the similarity between two node indices.
func Similarity(g *graph.Graph, a, b int, metric SimilarityMetric) float64 {
	return setSimilarity(g.NeighborsByIndex(a), g.NeighborsByIndex(b), metric)
}

// SimilarityPairs computes the similarity of every unordered node pair,
// excluding zero scores. Pairs are ordered NodeA < NodeB.
func SimilarityPairs(g *graph.Graph, metric SimilarityMetric) []SimilarityScore {
	n := g.NodeCount()
	var pairs []SimilarityScore
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if score := Similarity(g, a, b, metric); score > 0 {
				pairs = append(pairs, SimilarityScore{NodeA: a, NodeB: b, Score: score})
			}
		}
	}
	return pairs
}

// RecommendationsFor produces the top-K most similar non-adjacent nodes for
// one node: existing neighbors and the node itself are excluded, ties broken
// by ascending index, zero scores dropped.
func RecommendationsFor(g *graph.Graph, source int, opts SimilarityOptions) []Recommendation {
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultSimilarityOptions().TopK
	}

	labels := g.Labels()
	sourceNeighbors := g.NeighborsByIndex(source)

	var candidates []Recommendation
	for other := 0; other < g.NodeCount(); other++ {
		if other == source || g.HasEdge(source, other) {
			continue
		}
		score := setSimilarity(sourceNeighbors, g.NeighborsByIndex(other), opts.Metric)
		if score > 0 {
			candidates = append(candidates, Recommendation{
				Index: other,
				Label: labels[other],
				Score: score,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Index < candidates[j].Index
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates
}

// AllRecommendations produces recommendations for every node, indexed by
// node.
func AllRecommendations(g *graph.Graph, opts SimilarityOptions) [][]Recommendation {
	results := make([][]Recommendation, g.NodeCount())
	for source := range results {
		results[source] = RecommendationsFor(g, source, opts)
	}
	return results
}
