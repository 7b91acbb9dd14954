package model

import (
	"sync"

	"github.com/pkg/errors"
)

// LatticeToPool returns a lattice to the pool for reuse
func LatticeToPool(l *Lattice, pool *LatticePool) {
	if pool == nil || l == nil {
		return
	}

	// a mismatched lattice is simply left for the GC
	_ = pool.Put(l)
}

// LatticePool recycles generation buffers of one fixed size
type LatticePool struct {
	dims Dimensions
	pool sync.Pool
}

// NewLatticePool creates a pool handing out dead lattices of the given dimensions
func NewLatticePool(dims Dimensions) (*LatticePool, error) {
	if _, err := NewLatticeFromDimensions(dims); err != nil {
		return nil, errors.Wrap(err, "[NewLatticePool] invalid pool dimensions")
	}
	return &LatticePool{dims: dims}, nil
}

// Dimensions returns the size of every lattice the pool hands out
func (p *LatticePool) Dimensions() Dimensions {
	return p.dims
}

// Get retrieves a dead lattice from the pool, allocating when it is empty
func (p *LatticePool) Get() (*Lattice, error) {
	if l, ok := p.pool.Get().(*Lattice); ok {
		return l, nil
	}
	return NewLatticeFromDimensions(p.dims)
}

// Put clears a lattice and returns it to the pool
func (p *LatticePool) Put(l *Lattice) error {
	if l.dims != p.dims {
		return errors.Wrapf(ErrInvalidDimension, "[Put] lattice %v does not fit pool %v", l.dims, p.dims)
	}
	l.Clear()
	p.pool.Put(l)
	return nil
}
