package algorithms

import (
	"testing"
)

func TestTopNodes(t *testing.T) {
	g := mustBuild(t, "A B", "C D", "E F")
	scores := []float64{0.5, 0.9, 0.1, 0.9, 0.3, 0.7}

	top := TopNodes(g, scores, 3)

	if len(top) != 3 {
		t.Fatalf("Expected 3 nodes, got %d", len(top))
	}
	// 0.9 tie resolves to the lower index first.
	if top[0].Score != 0.9 || top[1].Score != 0.9 || top[0].Index > top[1].Index {
		t.Errorf("Unexpected ordering: %v", top)
	}
	if top[2].Score != 0.7 {
		t.Errorf("Expected 0.7 third, got %v", top[2])
	}
}

func TestTopNodes_KLargerThanN(t *testing.T) {
	g := mustBuild(t, "A B")
	top := TopNodes(g, []float64{0.2, 0.4}, 10)
	if len(top) != 2 {
		t.Errorf("Expected all nodes when k > n, got %d", len(top))
	}
}

func TestTopNodes_ZeroK(t *testing.T) {
	g := mustBuild(t, "A B")
	if top := TopNodes(g, []float64{0.2, 0.4}, 0); top != nil {
		t.Errorf("Expected nil for k=0, got %v", top)
	}
}

func TestBottomNodes(t *testing.T) {
	g := mustBuild(t, "A B", "C D")
	scores := []float64{0.5, 0.1, 0.1, 0.9}

	bottom := BottomNodes(g, scores, 2)

	if len(bottom) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(bottom))
	}
	if bottom[0].Score != 0.1 || bottom[1].Score != 0.1 || bottom[0].Index > bottom[1].Index {
		t.Errorf("Unexpected ordering: %v", bottom)
	}
}
