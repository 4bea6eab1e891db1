package graph

import (
	"container/list"
	"errors"
)

// ErrDisconnected is returned by AveragePathLength when at least one node
// pair is unreachable.
var ErrDisconnected = errors.New("graph is not connected")

// Density returns the ratio of existing edges to possible edges: 2m/(n(n-1)).
// Graphs with fewer than two nodes have density 0.
func (g *Graph) Density() float64 {
	n := len(g.labels)
	if n < 2 {
		return 0.0
	}
	return 2.0 * float64(g.edges) / float64(n*(n-1))
}

// AveragePathLength returns the mean shortest-path distance over all ordered
// node pairs. It fails with ErrDisconnected if any pair is unreachable, and
// returns 0 for graphs with fewer than two nodes.
func (g *Graph) AveragePathLength() (float64, error) {
	n := len(g.labels)
	if n < 2 {
		return 0.0, nil
	}

	total := 0
	for source := 0; source < n; source++ {
		distance := make([]int, n)
		for i := range distance {
			distance[i] = -1
		}
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		reached := 1
		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(int)
			for _, w := range g.adj[v] {
				if distance[w] < 0 {
					distance[w] = distance[v] + 1
					total += distance[w]
					reached++
					queue.PushBack(w)
				}
			}
		}

		if reached < n {
			return 0.0, ErrDisconnected
		}
	}

	return float64(total) / float64(n*(n-1)), nil
}
