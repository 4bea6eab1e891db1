package algorithms

import (
	"github.com/Kanagaraj46/socialnet/pkg/graph"
)

// DefaultLouvainMaxPasses bounds the number of aggregation rounds. Louvain
// converges in far fewer rounds in practice; the cap guards degenerate inputs.
const DefaultLouvainMaxPasses = 100

// Community represents a detected community.
type Community struct {
	ID      int      `json:"id"`
	Nodes   []int    `json:"nodes"`
	Labels  []string `json:"labels"`
	Size    int      `json:"size"`
	Density float64  `json:"density"` // edge density within the community
}

// CommunityResult contains the detected partition.
type CommunityResult struct {
	Communities   []*Community `json:"communities"`
	Modularity    float64      `json:"modularity"`
	NodeCommunity []int        `json:"node_community"` // node index -> community id
}

// LouvainOptions configures community detection.
type LouvainOptions struct {
	MaxPasses int // aggregation round cap, <=0 means DefaultLouvainMaxPasses
}

// DefaultLouvainOptions returns sensible defaults.
func DefaultLouvainOptions() LouvainOptions {
	return LouvainOptions{MaxPasses: DefaultLouvainMaxPasses}
}

// workEdge is a weighted half-edge in the coarsened working graph.
type workEdge struct {
	to     int
	weight float64
}

// workGraph is the weighted graph the local-moving phase operates on. After
// each aggregation round its nodes are the communities of the previous round.
// Self-loop weights track collapsed intra-community edges; they contribute to
// weighted degrees but never to inter-community gains.
type workGraph struct {
	n    int
	adj  [][]workEdge // no self entries; each undirected edge appears twice
	self []float64
}

func newWorkGraph(g *graph.Graph) *workGraph {
	n := g.NodeCount()
	wg := &workGraph{
		n:    n,
		adj:  make([][]workEdge, n),
		self: make([]float64, n),
	}
	for u := 0; u < n; u++ {
		neighbors := g.NeighborsByIndex(u)
		edges := make([]workEdge, 0, len(neighbors))
		for _, v := range neighbors {
			edges = append(edges, workEdge{to: v, weight: 1.0})
		}
		wg.adj[u] = edges
	}
	return wg
}

// weightedDegree returns k_i: adjacent edge weights plus twice the self-loop.
func (wg *workGraph) weightedDegree(i int) float64 {
	k := 2.0 * wg.self[i]
	for _, e := range wg.adj[i] {
		k += e.weight
	}
	return k
}

// totalWeight returns 2m, the sum of all weighted degrees.
func (wg *workGraph) totalWeight() float64 {
	total := 0.0
	for i := 0; i < wg.n; i++ {
		total += wg.weightedDegree(i)
	}
	return total
}

// localMoving runs modularity-optimizing sweeps until a full sweep produces
// no moves. Nodes are visited in ascending index order; a node moves only for
// a strictly positive gain, ties resolved toward the lowest community id.
// Returns the node -> community assignment (not yet dense).
func (wg *workGraph) localMoving() []int {
	community := make([]int, wg.n)
	degree := make([]float64, wg.n)
	communityTotal := make([]float64, wg.n) // sum of member degrees per community

	for i := 0; i < wg.n; i++ {
		community[i] = i
		degree[i] = wg.weightedDegree(i)
		communityTotal[i] = degree[i]
	}

	m2 := wg.totalWeight()
	if m2 == 0 {
		return community // no edges: everyone stays singleton
	}

	neighborWeight := make(map[int]float64)

	for {
		moves := 0
		for i := 0; i < wg.n; i++ {
			current := community[i]

			// Weight of edges from i into each neighboring community.
			clear(neighborWeight)
			for _, e := range wg.adj[i] {
				neighborWeight[community[e.to]] += e.weight
			}

			// Remove i from its community before evaluating gains.
			communityTotal[current] -= degree[i]

			// Gain of joining community c, up to the constant factor 1/m:
			// k_i,in(c) - tot(c)*k_i/2m. Staying put is the baseline.
			baseline := neighborWeight[current] - communityTotal[current]*degree[i]/m2

			best := current
			bestGain := baseline
			for c, w := range neighborWeight {
				if c == current {
					continue
				}
				gain := w - communityTotal[c]*degree[i]/m2
				if gain > bestGain || (gain == bestGain && best != current && c < best) {
					best = c
					bestGain = gain
				}
			}

			communityTotal[best] += degree[i]
			if best != current {
				community[i] = best
				moves++
			}
		}
		if moves == 0 {
			break
		}
	}

	return community
}

// renumber maps arbitrary community ids to dense ids ordered by first
// appearance in ascending node index, so community ids are deterministic.
func renumber(community []int) ([]int, int) {
	next := 0
	remap := make(map[int]int, len(community))
	dense := make([]int, len(community))
	for i, c := range community {
		id, ok := remap[c]
		if !ok {
			id = next
			remap[c] = id
			next++
		}
		dense[i] = id
	}
	return dense, next
}

// aggregate builds the coarser graph whose nodes are communities. Inter-
// community weights are summed; intra-community edges collapse into
// self-loops.
func (wg *workGraph) aggregate(community []int, count int) *workGraph {
	agg := &workGraph{
		n:    count,
		adj:  make([][]workEdge, count),
		self: make([]float64, count),
	}

	interWeight := make([]map[int]float64, count)
	for c := range interWeight {
		interWeight[c] = make(map[int]float64)
	}

	for i := 0; i < wg.n; i++ {
		ci := community[i]
		agg.self[ci] += wg.self[i]
		for _, e := range wg.adj[i] {
			cj := community[e.to]
			if ci == cj {
				// Each undirected intra edge is visited twice; half each time.
				agg.self[ci] += e.weight / 2.0
			} else {
				interWeight[ci][cj] += e.weight
			}
		}
	}

	for c := 0; c < count; c++ {
		edges := make([]workEdge, 0, len(interWeight[c]))
		for to, w := range interWeight[c] {
			edges = append(edges, workEdge{to: to, weight: w})
		}
		agg.adj[c] = edges
	}
	return agg
}

// Louvain partitions the graph into communities by modularity optimization.
// The result is deterministic for a given graph: sweeps visit nodes in
// ascending index order and ties prefer the lowest community id. Isolated
// nodes remain singleton communities. An empty graph yields an empty
// partition.
func Louvain(g *graph.Graph, opts LouvainOptions) []int {
	n := g.NodeCount()
	if n == 0 {
		return []int{}
	}

	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultLouvainMaxPasses
	}

	// mapping[i] is node i's community in the current working graph.
	mapping := make([]int, n)
	for i := range mapping {
		mapping[i] = i
	}

	wg := newWorkGraph(g)
	for pass := 0; pass < maxPasses; pass++ {
		local, count := renumber(wg.localMoving())

		for i := range mapping {
			mapping[i] = local[mapping[i]]
		}

		if count == wg.n {
			break // no merge happened; the partition is stable
		}
		wg = wg.aggregate(local, count)
	}

	dense, _ := renumber(mapping)
	return dense
}

// Modularity computes Q for a partition of the original unweighted graph:
// Q = Σ_c [ e_c/m − (d_c/2m)² ] with e_c intra-community edges and d_c the
// degree sum of community c. Returns 0 for graphs without edges.
func Modularity(g *graph.Graph, partition []int) float64 {
	m := float64(g.EdgeCount())
	if m == 0 {
		return 0.0
	}

	intra := make(map[int]float64)
	degreeSum := make(map[int]float64)

	for u := 0; u < g.NodeCount(); u++ {
		cu := partition[u]
		degreeSum[cu] += float64(g.DegreeByIndex(u))
		for _, v := range g.NeighborsByIndex(u) {
			if u < v && partition[v] == cu {
				intra[cu]++
			}
		}
	}

	q := 0.0
	for c, d := range degreeSum {
		frac := d / (2.0 * m)
		q += intra[c]/m - frac*frac
	}
	return q
}

// DetectCommunities runs Louvain and assembles the full result, including
// per-community membership and internal edge density.
func DetectCommunities(g *graph.Graph, opts LouvainOptions) *CommunityResult {
	partition := Louvain(g, opts)

	count := 0
	for _, c := range partition {
		if c+1 > count {
			count = c + 1
		}
	}

	communities := make([]*Community, count)
	for c := 0; c < count; c++ {
		communities[c] = &Community{ID: c}
	}

	labels := g.Labels()
	for i, c := range partition {
		communities[c].Nodes = append(communities[c].Nodes, i)
		communities[c].Labels = append(communities[c].Labels, labels[i])
	}

	for _, com := range communities {
		com.Size = len(com.Nodes)
		com.Density = communityDensity(g, com.Nodes, partition, com.ID)
	}

	return &CommunityResult{
		Communities:   communities,
		Modularity:    Modularity(g, partition),
		NodeCommunity: partition,
	}
}

// communityDensity returns 2e/(s(s−1)) over the community's internal edges.
func communityDensity(g *graph.Graph, members []int, partition []int, id int) float64 {
	s := len(members)
	if s < 2 {
		return 0.0
	}
	internal := 0
	for _, u := range members {
		for _, v := range g.NeighborsByIndex(u) {
			if u < v && partition[v] == id {
				internal++
			}
		}
	}
	return 2.0 * float64(internal) / float64(s*(s-1))
}
