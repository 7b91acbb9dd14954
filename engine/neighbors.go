package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/model"
)

// CountLiveNeighbors counts the live cells among the 26 cells surrounding
// (x, y, z). Cells beyond the lattice edge are walls and never count; the
// center cell is never read.
func CountLiveNeighbors(l *model.Lattice, x, y, z int) (int, error) {
	if !l.Dimensions().Contains(model.Coord{X: x, Y: y, Z: z}) {
		return 0, errors.Wrapf(model.ErrOutOfBounds, "[CountLiveNeighbors] %v outside %v",
			model.Coord{X: x, Y: y, Z: z}, l.Dimensions())
	}
	return countNeighbors(l, x, y, z), nil
}

// countNeighbors assumes (x, y, z) is in range
func countNeighbors(l *model.Lattice, x, y, z int) int {
	var (
		dims  = l.Dimensions()
		cells = l.Cells()
		count = 0
	)

	// Clip the 3x3x3 cube to the lattice once instead of per candidate
	minX, maxX := max(0, x-1), min(dims.X-1, x+1)
	minY, maxY := max(0, y-1), min(dims.Y-1, y+1)
	minZ, maxZ := max(0, z-1), min(dims.Z-1, z+1)

	for nx := minX; nx <= maxX; nx++ {
		for ny := minY; ny <= maxY; ny++ {
			row := l.Index(nx, ny, 0)
			for nz := minZ; nz <= maxZ; nz++ {
				if nx == x && ny == y && nz == z {
					continue
				}
				if cells[row+nz] {
					count++
				}
			}
		}
	}

	return count
}
