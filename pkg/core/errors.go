package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a board is constructed with a
	// non-positive or oversized dimension.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is matched by every BoundsError.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrUnsupported marks operations a simulation refuses to perform.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrUnknownSim is returned by Lookup for unregistered names.
	ErrUnknownSim = errors.New("unknown simulation")
)

// BoundsError reports a caller-supplied coordinate outside [0, Size).
type BoundsError struct {
	Row, Col int
	Size     int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d board", e.Row, e.Col, e.Size, e.Size)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// CheckBounds returns a *BoundsError when (row, col) is not on s.
func (s Square) CheckBounds(row, col int) error {
	if s.Contains(col, row) {
		return nil
	}
	return &BoundsError{Row: row, Col: col, Size: s.N}
}
