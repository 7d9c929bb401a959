package model

// historySize is how many recent generations are kept for cycle detection
const historySize = 5

// History keeps the hashes of the most recent generations so the driver can
// tell a settled board (still life or short oscillator) from an active one.
// It is display-only and never feeds back into the simulation.
type History struct {
	hashes []string
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{hashes: make([]string, 0, historySize)}
}

// Observe records hash and reports whether it matches one of the previously
// recorded generations
func (h *History) Observe(hash string) bool {
	repeated := false
	for _, prev := range h.hashes {
		if prev == hash {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last historySize states
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}
