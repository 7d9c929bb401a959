package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	b := NewBoard(4, 4)
	b.AddBlock(1, 1)
	h := NewHistory()

	if h.Observe(b.GetBoardHash()) {
		t.Error("Expected first observation to be new")
	}
	b.Step()
	if !h.Observe(b.GetBoardHash()) {
		t.Error("Expected still life to repeat")
	}
}

func TestHistoryDetectsBlinker(t *testing.T) {
	b := NewBoard(5, 5)
	b.AddOscillator(1, 2)
	h := NewHistory()

	h.Observe(b.GetBoardHash())
	b.Step()
	if h.Observe(b.GetBoardHash()) {
		t.Error("Expected vertical phase to be new")
	}
	b.Step()
	if !h.Observe(b.GetBoardHash()) {
		t.Error("Expected period-2 oscillator to repeat")
	}
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory()
	for i := range historySize + 3 {
		h.Observe(string(rune('a' + i)))
	}
	if h.Len() != historySize {
		t.Errorf("Expected %d entries, got %d", historySize, h.Len())
	}
	if h.Observe("a") {
		t.Error("Expected evicted hash to be forgotten")
	}
}
