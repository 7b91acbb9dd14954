package engine

import (
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/model"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource creates a deterministic PCG source for the given seed
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// ProbabilisticSeed draws one value per cell; the cell is alive iff the value
// is at least 1 - liveProbability.
func ProbabilisticSeed(dims model.Dimensions, liveProbability float64, src RandomSource) (*model.Lattice, error) {
	if math.IsNaN(liveProbability) || liveProbability < 0 || liveProbability > 1 {
		return nil, errors.Wrapf(model.ErrInvalidArgument,
			"[ProbabilisticSeed] live probability must be in [0,1], got %v", liveProbability)
	}
	if src == nil {
		return nil, errors.Wrap(model.ErrInvalidArgument, "[ProbabilisticSeed] random source is required")
	}

	l, err := model.NewLatticeFromDimensions(dims)
	if err != nil {
		return nil, errors.Wrap(err, "[ProbabilisticSeed] failed to create lattice")
	}

	threshold := 1 - liveProbability
	cells := l.Cells()
	for i := range cells {
		cells[i] = src.Float64() >= threshold
	}
	return l, nil
}

// AllAlive creates a lattice with every cell alive
func AllAlive(dims model.Dimensions) (*model.Lattice, error) {
	l, err := model.NewLatticeFromDimensions(dims)
	if err != nil {
		return nil, errors.Wrap(err, "[AllAlive] failed to create lattice")
	}
	l.Fill(true)
	return l, nil
}

// Pattern is a fixed set of live cells
type Pattern struct {
	Name  string
	Cells []model.Coord
}

var (
	// StableSquare is a 2x2 block on the z=0 plane. Under the 3D rule each
	// of its cells has three neighbors and no outside cell reaches three, so
	// it is a still life.
	StableSquare = Pattern{
		Name: "stable-square",
		Cells: []model.Coord{
			{X: 5, Y: 5, Z: 0},
			{X: 6, Y: 5, Z: 0},
			{X: 5, Y: 6, Z: 0},
			{X: 6, Y: 6, Z: 0},
		},
	}

	// Bar is three cells in a row along x. Unlike the 2D blinker it does not
	// oscillate: the ends die and a ring of eight cells is born around the
	// middle in the x=5 plane.
	Bar = Pattern{
		Name: "bar",
		Cells: []model.Coord{
			{X: 4, Y: 5, Z: 5},
			{X: 5, Y: 5, Z: 5},
			{X: 6, Y: 5, Z: 5},
		},
	}
)

var patterns = map[string]Pattern{
	StableSquare.Name: StableSquare,
	Bar.Name:          Bar,
}

// PatternNames lists the built-in patterns in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Lattice creates a lattice holding only the pattern
func (p Pattern) Lattice(dims model.Dimensions) (*model.Lattice, error) {
	l, err := model.NewLatticeFromDimensions(dims)
	if err != nil {
		return nil, errors.Wrapf(err, "[Pattern.Lattice] failed to create lattice for %s", p.Name)
	}
	if err = p.Place(l, model.Coord{}); err != nil {
		return nil, err
	}
	return l, nil
}

// Place sets the pattern's cells alive, shifted by offset. Nothing is written
// unless every cell fits.
func (p Pattern) Place(l *model.Lattice, offset model.Coord) error {
	dims := l.Dimensions()
	for _, c := range p.Cells {
		at := model.Coord{X: c.X + offset.X, Y: c.Y + offset.Y, Z: c.Z + offset.Z}
		if !dims.Contains(at) {
			return errors.Wrapf(model.ErrOutOfBounds, "[Pattern.Place] %s cell %v outside %v", p.Name, at, dims)
		}
	}
	for _, c := range p.Cells {
		if err := l.Set(c.X+offset.X, c.Y+offset.Y, c.Z+offset.Z, true); err != nil {
			return err
		}
	}
	return nil
}

// SeedKind tags which generator builds generation 0
type SeedKind int

const (
	// SeedProbabilistic seeds each cell independently with LiveProbability
	SeedProbabilistic SeedKind = iota
	// SeedAllAlive seeds every cell alive
	SeedAllAlive
	// SeedPattern seeds a named fixed pattern
	SeedPattern
)

const (
	seedNameRandom = "random"
	seedNameAll    = "all"
)

// Seed describes how to build generation 0 of a run
type Seed struct {
	Kind            SeedKind
	LiveProbability float64
	Pattern         string
}

// ParseSeed maps a config name ("random", "all" or a pattern name) to a Seed
func ParseSeed(name string, liveProbability float64) (Seed, error) {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "", seedNameRandom:
		return Seed{Kind: SeedProbabilistic, LiveProbability: liveProbability}, nil
	case seedNameAll:
		return Seed{Kind: SeedAllAlive}, nil
	}
	if _, ok := patterns[name]; ok {
		return Seed{Kind: SeedPattern, Pattern: name}, nil
	}
	return Seed{}, errors.Wrapf(model.ErrInvalidArgument,
		"[ParseSeed] unknown seed %q, want %s, %s or one of %v", name, seedNameRandom, seedNameAll, PatternNames())
}

// Generate builds generation 0. src is only consulted by SeedProbabilistic.
func (s Seed) Generate(dims model.Dimensions, src RandomSource) (*model.Lattice, error) {
	switch s.Kind {
	case SeedProbabilistic:
		return ProbabilisticSeed(dims, s.LiveProbability, src)
	case SeedAllAlive:
		return AllAlive(dims)
	case SeedPattern:
		p, ok := patterns[s.Pattern]
		if !ok {
			return nil, errors.Wrapf(model.ErrInvalidArgument, "[Seed.Generate] unknown pattern %q", s.Pattern)
		}
		return p.Lattice(dims)
	}
	return nil, errors.Wrapf(model.ErrInvalidArgument, "[Seed.Generate] unknown seed kind %d", s.Kind)
}

// InjectRandomLife sets count randomly chosen cells alive
func InjectRandomLife(l *model.Lattice, count int, src RandomSource) {
	cells := l.Cells()
	for range count {
		cells[int(src.Float64()*float64(len(cells)))] = true
	}
}
