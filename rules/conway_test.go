package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := MinNeighbors; n <= MaxNeighbors; n++ {
		wantAlive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantAlive {
			t.Errorf("Expected alive cell with %d neighbors to live=%v, got %v", n, wantAlive, got)
		}

		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Errorf("Expected dead cell with %d neighbors to live=%v, got %v", n, wantBorn, got)
		}
	}
}
