package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/model"
)

// Options tune how a Simulation computes each generation
type Options struct {
	Strategy Strategy
	// Workers bounds the goroutines used by Parallel; 0 means one per CPU
	Workers int
	// Pool recycles generation buffers when non-nil
	Pool *model.LatticePool
}

// Simulation owns the current generation of one run and its tick index.
// It is not safe for concurrent use.
type Simulation struct {
	current    *model.Lattice
	generation int
	opts       Options
}

// NewSimulation starts a run at generation 0 from initial. The simulation
// takes ownership of initial.
func NewSimulation(initial *model.Lattice, opts Options) (*Simulation, error) {
	if initial == nil {
		return nil, errors.Wrap(model.ErrInvalidArgument, "[NewSimulation] initial generation is required")
	}
	if opts.Pool != nil && opts.Pool.Dimensions() != initial.Dimensions() {
		return nil, errors.Wrapf(model.ErrInvalidDimension,
			"[NewSimulation] pool %v does not fit lattice %v", opts.Pool.Dimensions(), initial.Dimensions())
	}
	return &Simulation{current: initial, opts: opts}, nil
}

// Current returns the current generation. Callers must treat it as read-only;
// with a pool it is recycled by the next Step.
func (s *Simulation) Current() *model.Lattice {
	return s.current
}

// Generation returns the tick index of the current generation
func (s *Simulation) Generation() int {
	return s.generation
}

// Dimensions returns the size of the lattice
func (s *Simulation) Dimensions() model.Dimensions {
	return s.current.Dimensions()
}

// AliveCoordinates returns the live cells of the current generation
func (s *Simulation) AliveCoordinates() []model.Coord {
	return s.current.AliveCoordinates()
}

// Step computes the next generation and makes it current. The previous
// buffer is released only after the new one is complete; on error the
// current generation is unchanged.
func (s *Simulation) Step() error {
	next, err := AdvanceWith(s.opts.Strategy, s.current, s.opts.Pool, s.opts.Workers)
	if err != nil {
		return errors.Wrapf(err, "[Step] generation %d", s.generation+1)
	}

	prev := s.current
	s.current = next
	s.generation++
	model.LatticeToPool(prev, s.opts.Pool)
	return nil
}

// Publish hands the current generation to a presentation sink
func (s *Simulation) Publish(sink model.Sink) {
	sink.Render(s.generation, s.current.Dimensions(), s.current.AliveCoordinates())
}

// Restart begins a new run at generation 0 from initial
func (s *Simulation) Restart(initial *model.Lattice) error {
	if initial == nil {
		return errors.Wrap(model.ErrInvalidArgument, "[Restart] initial generation is required")
	}
	if initial.Dimensions() != s.current.Dimensions() {
		return errors.Wrapf(model.ErrInvalidDimension,
			"[Restart] lattice %v does not match %v", initial.Dimensions(), s.current.Dimensions())
	}
	if initial != s.current {
		model.LatticeToPool(s.current, s.opts.Pool)
	}
	s.current = initial
	s.generation = 0
	return nil
}
