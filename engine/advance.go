package engine

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/rules"
)

// Strategy selects how a generation is computed. Every strategy yields the
// same next generation.
type Strategy int

const (
	// Sequential visits every cell on the calling goroutine
	Sequential Strategy = iota
	// Parallel splits the lattice into x-slabs counted concurrently
	Parallel
	// Bounded only visits the live bounding box plus a one-cell margin
	Bounded
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	case Bounded:
		return "bounded"
	}
	return "unknown"
}

// nextBuffer returns a dead lattice matching cur, from the pool when it fits
func nextBuffer(cur *model.Lattice, pool *model.LatticePool) (*model.Lattice, error) {
	if pool != nil && pool.Dimensions() == cur.Dimensions() {
		return pool.Get()
	}
	return model.NewLatticeFromDimensions(cur.Dimensions())
}

// computeRegion writes the next state of every cell in b into next, reading only cur
func computeRegion(cur, next *model.Lattice, b model.Bounds) {
	var (
		src = cur.Cells()
		dst = next.Cells()
	)
	for x := b.Min.X; x <= b.Max.X; x++ {
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			for z := b.Min.Z; z <= b.Max.Z; z++ {
				i := cur.Index(x, y, z)
				dst[i] = rules.NextState(countNeighbors(cur, x, y, z), src[i])
			}
		}
	}
}

func fullBounds(dims model.Dimensions) model.Bounds {
	return model.Bounds{Max: model.Coord{X: dims.X - 1, Y: dims.Y - 1, Z: dims.Z - 1}}
}

// Advance computes the next generation into a fresh buffer. cur is never
// modified, so on error the caller still holds an intact generation.
func Advance(cur *model.Lattice, pool *model.LatticePool) (*model.Lattice, error) {
	next, err := nextBuffer(cur, pool)
	if err != nil {
		return nil, errors.Wrap(err, "[Advance] failed to allocate next generation")
	}

	computeRegion(cur, next, fullBounds(cur.Dimensions()))
	return next, nil
}

// AdvanceParallel computes the next generation with workers goroutines, each
// owning a disjoint x-slab of the next buffer. The buffer is only returned
// after every slab is done.
func AdvanceParallel(cur *model.Lattice, pool *model.LatticePool, workers int) (*model.Lattice, error) {
	next, err := nextBuffer(cur, pool)
	if err != nil {
		return nil, errors.Wrap(err, "[AdvanceParallel] failed to allocate next generation")
	}

	dims := cur.Dimensions()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg             errgroup.Group
		slabsPerWorker = (dims.X + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startX = i * slabsPerWorker
			endX   = min(startX+slabsPerWorker, dims.X)
		)
		if startX >= dims.X {
			break
		}

		eg.Go(func() error {
			b := fullBounds(dims)
			b.Min.X, b.Max.X = startX, endX-1
			computeRegion(cur, next, b)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		model.LatticeToPool(next, pool)
		return nil, errors.Wrap(err, "[AdvanceParallel] failed to compute next generation")
	}

	return next, nil
}

// AdvanceBounded computes the next generation by visiting only the live
// region plus a one-cell margin. Every other cell has no live neighbors and
// stays dead.
func AdvanceBounded(cur *model.Lattice, pool *model.LatticePool) (*model.Lattice, error) {
	next, err := nextBuffer(cur, pool)
	if err != nil {
		return nil, errors.Wrap(err, "[AdvanceBounded] failed to allocate next generation")
	}

	active, ok := cur.ActiveBounds()
	if !ok {
		// If no active cells, return empty lattice
		return next, nil
	}

	computeRegion(cur, next, active.Expand(1, cur.Dimensions()))
	return next, nil
}

// AdvanceWith dispatches to the advance function for strategy
func AdvanceWith(strategy Strategy, cur *model.Lattice, pool *model.LatticePool, workers int) (*model.Lattice, error) {
	switch strategy {
	case Parallel:
		return AdvanceParallel(cur, pool, workers)
	case Bounded:
		return AdvanceBounded(cur, pool)
	case Sequential:
		return Advance(cur, pool)
	}
	return nil, errors.Wrapf(model.ErrInvalidArgument, "[AdvanceWith] unknown strategy %d", strategy)
}
