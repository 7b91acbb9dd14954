package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a lattice dimension is not positive
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfBounds is returned when a coordinate falls outside the lattice
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidArgument is returned for out-of-range scalar parameters
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAllocationFailure is returned when a generation buffer cannot be materialized
	ErrAllocationFailure = errors.New("allocation failure")
)
