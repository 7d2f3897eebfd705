package core

import (
	"fmt"
	"sort"
)

// Cell addresses a board position by row and column.
type Cell struct {
	Row int
	Col int
}

// View is a read-only window over a row-major 0/1 state buffer. It aliases
// the simulation's storage, so it is only valid until the next mutation.
type View struct {
	sq  Square
	buf []uint8
}

// NewView wraps buf, which must hold n*n cells.
func NewView(n int, buf []uint8) View {
	return View{sq: Square{N: n}, buf: buf}
}

// Size returns the board dimension.
func (v View) Size() int { return v.sq.N }

// Len returns the number of cells.
func (v View) Len() int { return len(v.buf) }

// At returns the state at flat index i.
func (v View) At(i int) uint8 { return v.buf[i] }

// AliveAt reports whether column x, row y is alive. Coordinates must be on the
// board.
func (v View) AliveAt(x, y int) bool { return v.buf[v.sq.Index(x, y)] != 0 }

// CopyTo copies the states into dst and returns the number copied.
func (v View) CopyTo(dst []uint8) int { return copy(dst, v.buf) }

// Sim is the contract the viewers drive. Only the Conway kernel implements it
// today; the interface keeps the harnesses independent of its package.
type Sim interface {
	Name() string
	Size() int
	Generation() int
	Population() int
	Reset()
	Clear()
	Tick()
	ToggleCell(row, col int) error
	Cells() []Cell
	Flipped() []Cell
	State() View
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup builds the named simulation.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSim, name)
	}
	return f(cfg)
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
