package algorithms

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestDegreeCentrality(t *testing.T) {
	g := mustBuild(t, "A B C", "B A D", "C A", "D B")

	scores := DegreeCentrality(g)

	a, _ := g.Index("A")
	c, _ := g.Index("C")
	if math.Abs(scores[a]-2.0/3.0) > 1e-9 {
		t.Errorf("Expected degree centrality 2/3 for A, got %f", scores[a])
	}
	if math.Abs(scores[c]-1.0/3.0) > 1e-9 {
		t.Errorf("Expected degree centrality 1/3 for C, got %f", scores[c])
	}
}

func TestDegreeCentrality_TinyGraph(t *testing.T) {
	g := mustBuild(t, "A")

	scores := DegreeCentrality(g)
	if scores[0] != 0.0 {
		t.Errorf("Expected all zeros for single-node graph, got %v", scores)
	}
}

func TestClosenessCentrality_StarCenter(t *testing.T) {
	// Center of a star reaches all leaves at distance 1: closeness 1.0.
	g := mustBuild(t, "hub a b c d e")

	scores := ClosenessCentrality(g)
	hub, _ := g.Index("hub")
	if math.Abs(scores[hub]-1.0) > 1e-9 {
		t.Errorf("Expected closeness 1.0 for star center, got %f", scores[hub])
	}

	// Leaves reach the hub at 1 and the other 4 leaves at 2: 5/9.
	leaf, _ := g.Index("a")
	if math.Abs(scores[leaf]-5.0/9.0) > 1e-9 {
		t.Errorf("Expected closeness 5/9 for leaf, got %f", scores[leaf])
	}
}

func TestClosenessCentrality_IsolatedNode(t *testing.T) {
	g := mustBuild(t, "A B", "Z")

	scores := ClosenessCentrality(g)
	z, _ := g.Index("Z")
	if scores[z] != 0.0 {
		t.Errorf("Expected closeness 0 for isolated node, got %f", scores[z])
	}
}

func TestClosenessCentrality_DisconnectedComponents(t *testing.T) {
	// Closeness only counts reachable nodes, so two separate edges give
	// every node closeness 1.0 rather than inflated or failing values.
	g := mustBuild(t, "A B", "C D")

	scores := ClosenessCentrality(g)
	for i, s := range scores {
		if math.Abs(s-1.0) > 1e-9 {
			t.Errorf("Expected closeness 1.0 for node %d, got %f", i, s)
		}
	}
}

func TestBetweennessCentrality_PathGraph(t *testing.T) {
	// A-B-C-D: B and C lie on shortest paths, endpoints do not.
	g := mustBuild(t, "A B", "B C", "C D")

	scores, err := BetweennessCentrality(context.Background(), g, DefaultCentralityOptions())
	if err != nil {
		t.Fatalf("BetweennessCentrality failed: %v", err)
	}

	a, _ := g.Index("A")
	b, _ := g.Index("B")
	c, _ := g.Index("C")
	d, _ := g.Index("D")

	if scores[a] != 0.0 || scores[d] != 0.0 {
		t.Errorf("Expected 0 betweenness for endpoints, got %f and %f", scores[a], scores[d])
	}
	if scores[b] <= scores[a] || scores[c] <= scores[d] {
		t.Errorf("Expected inner nodes to dominate endpoints: %v", scores)
	}
	if math.Abs(scores[b]-scores[c]) > 1e-9 {
		t.Errorf("Expected symmetric betweenness for B and C, got %f and %f", scores[b], scores[c])
	}

	// B sits on shortest paths for pairs (A,C) and (A,D): raw credit 2 per
	// direction, normalized by (N-1)(N-2)=6 → 4/6.
	if math.Abs(scores[b]-4.0/6.0) > 1e-9 {
		t.Errorf("Expected betweenness 4/6 for B, got %f", scores[b])
	}
}

func TestBetweennessCentrality_FractionalCredit(t *testing.T) {
	// Square A-B-D-C-A: two equal shortest paths between opposite corners,
	// each intermediate gets half credit.
	g := mustBuild(t, "A B C", "D B C")

	scores, err := BetweennessCentrality(context.Background(), g, DefaultCentralityOptions())
	if err != nil {
		t.Fatalf("BetweennessCentrality failed: %v", err)
	}

	b, _ := g.Index("B")
	// B carries half of the single (A,D) pair, both directions: 1/(3·2).
	if math.Abs(scores[b]-1.0/6.0) > 1e-9 {
		t.Errorf("Expected betweenness 1/6 for B, got %f", scores[b])
	}
}

func TestBetweennessCentrality_TinyGraph(t *testing.T) {
	g := mustBuild(t, "A B")

	scores, err := BetweennessCentrality(context.Background(), g, DefaultCentralityOptions())
	if err != nil {
		t.Fatalf("BetweennessCentrality failed: %v", err)
	}
	for _, s := range scores {
		if s != 0.0 {
			t.Errorf("Expected all-zero betweenness for 2-node graph, got %v", scores)
		}
	}
}

func TestBetweennessCentrality_NodeCap(t *testing.T) {
	g := mustBuild(t, "A B", "B C", "C D")

	_, err := BetweennessCentrality(context.Background(), g, CentralityOptions{MaxBetweennessNodes: 3})
	if !errors.Is(err, ErrGraphTooLarge) {
		t.Fatalf("Expected ErrGraphTooLarge, got %v", err)
	}
}

func TestBetweennessCentrality_Cancelled(t *testing.T) {
	g := mustBuild(t, "A B", "B C", "C D")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BetweennessCentrality(ctx, g, DefaultCentralityOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestComputeAllCentrality(t *testing.T) {
	g := mustBuild(t, "A B C", "B A D", "C A", "D B")

	result, err := ComputeAllCentrality(context.Background(), g, CentralityOptions{TopK: 2})
	if err != nil {
		t.Fatalf("ComputeAllCentrality failed: %v", err)
	}

	if len(result.TopByDegree) != 2 {
		t.Errorf("Expected 2 top nodes, got %d", len(result.TopByDegree))
	}

	// A and B share the top degree; the tie resolves to the lower index.
	a, _ := g.Index("A")
	if result.TopByDegree[0].Index != a {
		t.Errorf("Expected A first in degree ranking, got %s", result.TopByDegree[0].Label)
	}
}
