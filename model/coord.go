package model

import "fmt"

// Coord addresses a single cell of a lattice
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Dimensions holds the fixed size of a lattice along each axis
type Dimensions struct {
	X, Y, Z int
}

// Validate reports ErrInvalidDimension if any axis is not positive
func (d Dimensions) Validate() error {
	if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
		return ErrInvalidDimension
	}
	return nil
}

// Contains reports whether c lies inside the lattice
func (d Dimensions) Contains(c Coord) bool {
	return c.X >= 0 && c.X < d.X &&
		c.Y >= 0 && c.Y < d.Y &&
		c.Z >= 0 && c.Z < d.Z
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.X, d.Y, d.Z)
}

// Bounds is an inclusive axis-aligned box of cells
type Bounds struct {
	Min, Max Coord
}

// Volume returns the number of cells inside the box
func (b Bounds) Volume() int {
	return (b.Max.X - b.Min.X + 1) *
		(b.Max.Y - b.Min.Y + 1) *
		(b.Max.Z - b.Min.Z + 1)
}

// Expand grows the box by margin cells on every side, clipped to dims
func (b Bounds) Expand(margin int, dims Dimensions) Bounds {
	return Bounds{
		Min: Coord{
			X: max(0, b.Min.X-margin),
			Y: max(0, b.Min.Y-margin),
			Z: max(0, b.Min.Z-margin),
		},
		Max: Coord{
			X: min(dims.X-1, b.Max.X+margin),
			Y: min(dims.Y-1, b.Max.Y+margin),
			Z: min(dims.Z-1, b.Max.Z+margin),
		},
	}
}
