package model

import (
	"crypto/md5"
	"encoding/hex"
	"math"

	"github.com/pkg/errors"
)

// MaxCells caps the number of cells a single generation buffer may hold
const MaxCells = 1 << 30

// Lattice is a fixed-size 3D grid of alive/dead cells with closed boundaries.
// Cells are stored flat in lexicographic (x, y, z) order.
type Lattice struct {
	dims  Dimensions
	cells []bool
}

// NewLattice creates a lattice with every cell dead
func NewLattice(sizeX, sizeY, sizeZ int) (*Lattice, error) {
	return NewLatticeFromDimensions(Dimensions{X: sizeX, Y: sizeY, Z: sizeZ})
}

// NewLatticeFromDimensions creates a dead lattice of the given dimensions
func NewLatticeFromDimensions(dims Dimensions) (*Lattice, error) {
	if err := dims.Validate(); err != nil {
		return nil, errors.Wrapf(err, "[NewLattice] dimensions must be positive, got %v", dims)
	}
	n, err := cellCount(dims)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewLattice] cannot allocate %v", dims)
	}
	return &Lattice{dims: dims, cells: make([]bool, n)}, nil
}

func cellCount(d Dimensions) (int, error) {
	if d.X > math.MaxInt/d.Y {
		return 0, ErrAllocationFailure
	}
	xy := d.X * d.Y
	if xy > math.MaxInt/d.Z {
		return 0, ErrAllocationFailure
	}
	n := xy * d.Z
	if n > MaxCells {
		return 0, ErrAllocationFailure
	}
	return n, nil
}

// Dimensions returns the size of the lattice
func (l *Lattice) Dimensions() Dimensions {
	return l.dims
}

// Len returns the total number of cells
func (l *Lattice) Len() int {
	return len(l.cells)
}

// Index returns the flat storage index of an in-range coordinate
func (l *Lattice) Index(x, y, z int) int {
	return (x*l.dims.Y+y)*l.dims.Z + z
}

// Coord is the inverse of Index
func (l *Lattice) Coord(i int) Coord {
	z := i % l.dims.Z
	i /= l.dims.Z
	return Coord{X: i / l.dims.Y, Y: i % l.dims.Y, Z: z}
}

// Cells exposes the backing slice so the engine can read/write in bulk.
// Its order matches Index.
func (l *Lattice) Cells() []bool {
	return l.cells
}

func (l *Lattice) inBounds(x, y, z int) bool {
	return x >= 0 && x < l.dims.X &&
		y >= 0 && y < l.dims.Y &&
		z >= 0 && z < l.dims.Z
}

// Get returns the state of a cell
func (l *Lattice) Get(x, y, z int) (bool, error) {
	if !l.inBounds(x, y, z) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Get] %v outside %v", Coord{x, y, z}, l.dims)
	}
	return l.cells[l.Index(x, y, z)], nil
}

// Set sets a cell to alive (true) or dead (false)
func (l *Lattice) Set(x, y, z int, alive bool) error {
	if !l.inBounds(x, y, z) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] %v outside %v", Coord{x, y, z}, l.dims)
	}
	l.cells[l.Index(x, y, z)] = alive
	return nil
}

// Alive reports whether a cell is alive. Coordinates outside the lattice are
// walls and always dead.
func (l *Lattice) Alive(x, y, z int) bool {
	if !l.inBounds(x, y, z) {
		return false
	}
	return l.cells[l.Index(x, y, z)]
}

// AliveCoordinates returns every live cell in lexicographic (x, y, z) order
func (l *Lattice) AliveCoordinates() []Coord {
	alive := make([]Coord, 0, l.CountLiving())
	for i, c := range l.cells {
		if c {
			alive = append(alive, l.Coord(i))
		}
	}
	return alive
}

// CountLiving returns the total number of living cells
func (l *Lattice) CountLiving() (count int) {
	for _, c := range l.cells {
		if c {
			count++
		}
	}
	return
}

// Fill sets every cell to the same state
func (l *Lattice) Fill(alive bool) {
	for i := range l.cells {
		l.cells[i] = alive
	}
}

// Clear kills every cell
func (l *Lattice) Clear() {
	l.Fill(false)
}

// Clone returns an independent copy of the lattice
func (l *Lattice) Clone() *Lattice {
	return &Lattice{dims: l.dims, cells: append([]bool(nil), l.cells...)}
}

// Equal reports whether both lattices have the same dimensions and cells
func (l *Lattice) Equal(o *Lattice) bool {
	if l.dims != o.dims {
		return false
	}
	for i := range l.cells {
		if l.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// ActiveBounds returns the bounding box of living cells; ok is false when
// the lattice is empty
func (l *Lattice) ActiveBounds() (b Bounds, ok bool) {
	for i, c := range l.cells {
		if !c {
			continue
		}
		p := l.Coord(i)
		if !ok {
			b = Bounds{Min: p, Max: p}
			ok = true
			continue
		}
		b.Min.X, b.Max.X = min(b.Min.X, p.X), max(b.Max.X, p.X)
		b.Min.Y, b.Max.Y = min(b.Min.Y, p.Y), max(b.Max.Y, p.Y)
		b.Min.Z, b.Max.Z = min(b.Min.Z, p.Z), max(b.Max.Z, p.Z)
	}
	return b, ok
}

// BoundingBoxVolume returns the size of the active region
func (l *Lattice) BoundingBoxVolume() int {
	b, ok := l.ActiveBounds()
	if !ok {
		return 0
	}
	return b.Volume()
}

// Hash returns an MD5 digest of the cell states
func (l *Lattice) Hash() string {
	h := md5.New()
	buf := make([]byte, len(l.cells))
	for i, c := range l.cells {
		if c {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil))
}
