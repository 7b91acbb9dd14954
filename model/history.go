package model

// DefaultHistorySize is how many recent generations are remembered
const DefaultHistorySize = 5

// History remembers recent generation hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history holding at most size hashes
func NewHistory(size int) *History {
	if size < 1 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Update adds the lattice's current state and drops the oldest beyond capacity
func (h *History) Update(l *Lattice) {
	h.hashes = append(h.hashes, l.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether l repeats one of the last three recorded
// generations, i.e. it is static or cycling with period at most 3
func (h *History) IsStagnant(l *Lattice) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := l.Hash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
