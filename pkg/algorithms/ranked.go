package algorithms

import (
	"container/heap"
	"sort"

	"github.com/Kanagaraj46/socialnet/pkg/graph"
)

// RankedNode holds a node with its score for top-K listings.
type RankedNode struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// rankedNodeHeap implements a min-heap for RankedNode by score, breaking ties
// by higher index so that lower indices survive eviction.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Index > h[j].Index
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopNodes returns the top n nodes by score using a min-heap. The result is
// ordered score descending, then index ascending for determinism.
func TopNodes(g *graph.Graph, scores []float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	labels := g.Labels()
	for idx, score := range scores {
		rn := RankedNode{Index: idx, Label: labels[idx], Score: score}

		if h.Len() < n {
			heap.Push(&h, rn)
		} else if rn.Score > h[0].Score || (rn.Score == h[0].Score && rn.Index < h[0].Index) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Index < result[j].Index
	})

	return result
}

// sortRankedAscending orders ranked nodes by score ascending, then index
// ascending.
func sortRankedAscending(nodes []RankedNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Score != nodes[j].Score {
			return nodes[i].Score < nodes[j].Score
		}
		return nodes[i].Index < nodes[j].Index
	})
}

// BottomNodes returns the n lowest-scoring nodes, ordered score ascending
// then index ascending.
func BottomNodes(g *graph.Graph, scores []float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	labels := g.Labels()
	all := make([]RankedNode, 0, len(scores))
	for idx, score := range scores {
		all = append(all, RankedNode{Index: idx, Label: labels[idx], Score: score})
	}

	sortRankedAscending(all)

	if len(all) > n {
		all = all[:n]
	}
	return all
}
