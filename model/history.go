package model

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// History keeps the hashes of the most recent generations
type History struct {
	hashes []string
}

// Record adds a grid hash to the history, dropping the oldest beyond historySize
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded hashes
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether hash matches one of the last three recorded
// states, i.e. the grid is a still life or cycles with period 3 or less.
// At least three states must be recorded before anything counts as stagnant.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == hash {
			return true
		}
	}
	return false
}
