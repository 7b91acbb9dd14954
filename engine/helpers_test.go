package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol3d/model"
)

func newLattice(t *testing.T, x, y, z int, alive ...model.Coord) *model.Lattice {
	t.Helper()
	l, err := model.NewLattice(x, y, z)
	require.NoError(t, err)
	for _, c := range alive {
		require.NoError(t, l.Set(c.X, c.Y, c.Z, true))
	}
	return l
}

// sequenceSource replays fixed values, cycling when exhausted
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// bruteForceNeighbors counts by probing every offset through the public API
func bruteForceNeighbors(l *model.Lattice, x, y, z int) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				if l.Alive(x+dx, y+dy, z+dz) {
					count++
				}
			}
		}
	}
	return count
}
