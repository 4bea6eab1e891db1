package graph

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Graph is an undirected graph over interned node labels. Labels are mapped
// to dense indices 0..N-1 so adjacency can be array-backed. A Graph is
// immutable once built; all analytics treat it as read-only, which makes
// concurrent reads safe without coordination.
type Graph struct {
	labels []string       // index -> label
	index  map[string]int // label -> index
	adj    [][]int        // index -> sorted neighbor indices
	edges  int
}

// builder accumulates adjacency during construction and freezes it into a
// Graph. Neighbor sets de-duplicate edges declared from either direction.
type builder struct {
	labels []string
	index  map[string]int
	adj    []map[int]struct{}
}

func newBuilder() *builder {
	return &builder{index: make(map[string]int)}
}

func (b *builder) intern(label string) int {
	if idx, ok := b.index[label]; ok {
		return idx
	}
	idx := len(b.labels)
	b.labels = append(b.labels, label)
	b.index[label] = idx
	b.adj = append(b.adj, make(map[int]struct{}))
	return idx
}

func (b *builder) addEdge(u, v int) {
	if u == v {
		return // self-references contribute no edge
	}
	b.adj[u][v] = struct{}{}
	b.adj[v][u] = struct{}{}
}

func (b *builder) freeze() *Graph {
	g := &Graph{
		labels: b.labels,
		index:  b.index,
		adj:    make([][]int, len(b.labels)),
	}
	for i, set := range b.adj {
		neighbors := make([]int, 0, len(set))
		for n := range set {
			neighbors = append(neighbors, n)
		}
		sort.Ints(neighbors)
		g.adj[i] = neighbors
		g.edges += len(neighbors)
	}
	g.edges /= 2 // each undirected edge counted from both endpoints
	return g
}

// BuildGraph constructs a Graph from whitespace-tokenized adjacency lines.
// The first token on each line is the source node; the remaining tokens are
// its neighbors. An edge declared from either endpoint yields one logical
// undirected edge. A line with no tokens is malformed and fails with a parse
// error wrapping ErrParse.
func BuildGraph(lines []string) (*Graph, error) {
	b := newBuilder()
	for i, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			return nil, parseError(i+1, fmt.Errorf("%w: empty line", ErrParse))
		}
		source := b.intern(tokens[0])
		for _, friend := range tokens[1:] {
			b.addEdge(source, b.intern(friend))
		}
	}
	return b.freeze(), nil
}

// ParseAdjacencyList reads adjacency-list text from r and builds a Graph.
// Each line follows the BuildGraph format.
func ParseAdjacencyList(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, NewError("parse").Cause(err).Err()
	}
	return BuildGraph(lines)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.labels)
}

// EdgeCount returns the number of unique undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Labels returns all node labels ordered by index. The returned slice must
// not be modified.
func (g *Graph) Labels() []string {
	return g.labels
}

// Label returns the label for a node index.
func (g *Graph) Label(index int) (string, error) {
	if index < 0 || index >= len(g.labels) {
		return "", NewError("label").Cause(fmt.Errorf("%w: index %d", ErrNodeNotFound, index)).Err()
	}
	return g.labels[index], nil
}

// Index returns the dense index for a node label.
func (g *Graph) Index(label string) (int, error) {
	idx, ok := g.index[label]
	if !ok {
		return 0, notFoundError("index", label)
	}
	return idx, nil
}

// Neighbors returns the neighbor indices of the node with the given label,
// sorted ascending. The returned slice must not be modified.
func (g *Graph) Neighbors(label string) ([]int, error) {
	idx, ok := g.index[label]
	if !ok {
		return nil, notFoundError("neighbors", label)
	}
	return g.adj[idx], nil
}

// NeighborsByIndex returns the neighbor indices of a node, sorted ascending.
// The returned slice must not be modified.
func (g *Graph) NeighborsByIndex(index int) []int {
	return g.adj[index]
}

// Degree returns the degree of the node with the given label.
func (g *Graph) Degree(label string) (int, error) {
	idx, ok := g.index[label]
	if !ok {
		return 0, notFoundError("degree", label)
	}
	return len(g.adj[idx]), nil
}

// DegreeByIndex returns the degree of a node.
func (g *Graph) DegreeByIndex(index int) int {
	return len(g.adj[index])
}

// HasEdge reports whether an undirected edge exists between two node indices.
// Neighbor lists are sorted, so this is a binary search.
func (g *Graph) HasEdge(u, v int) bool {
	neighbors := g.adj[u]
	i := sort.SearchInts(neighbors, v)
	return i < len(neighbors) && neighbors[i] == v
}

// Validate returns ErrEmptyGraph if the graph has no nodes.
func (g *Graph) Validate() error {
	if len(g.labels) == 0 {
		return ErrEmptyGraph
	}
	return nil
}
