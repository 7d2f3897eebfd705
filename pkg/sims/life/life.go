// Package life implements Conway's Game of Life on a square toroidal board and
// tracks which cells a renderer has to redraw after every mutation.
package life

import (
	"fmt"

	"torus-life/pkg/core"
)

var _ core.Sim = (*Universe)(nil)

// Universe is a size×size toroidal Life board.
//
// Two coordinate lists are maintained. Cells returns the list a renderer that
// paints live cells over a dead background needs: after Tick every alive
// cell, after a toggle to alive only that cell, and nothing new after a
// toggle to dead. Flipped returns the strict diff against the previous state.
type Universe struct {
	sq  core.Square
	cur []uint8
	nxt []uint8

	changed []core.Cell
	flipped []core.Cell

	generation int
	trace      func(bool)
}

// New returns a seeded Universe with the provided dimension.
func New(size int) (*Universe, error) {
	return NewWithConfig(Config{Size: size})
}

// NewWithConfig returns a seeded Universe built from cfg.
func NewWithConfig(cfg Config) (*Universe, error) {
	if cfg.Size <= 0 || cfg.Size > core.MaxSize {
		return nil, fmt.Errorf("life: size %d: %w", cfg.Size, core.ErrInvalidSize)
	}
	sq := core.Square{N: cfg.Size}
	u := &Universe{
		sq:    sq,
		cur:   make([]uint8, sq.Len()),
		nxt:   make([]uint8, sq.Len()),
		trace: cfg.Trace,
	}
	u.Reset()
	return u, nil
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the board dimension.
func (u *Universe) Size() int { return u.sq.N }

// Generation returns the number of ticks since construction or the last Reset.
func (u *Universe) Generation() int { return u.generation }

// SetSize always fails: the board dimension is fixed at construction.
func (u *Universe) SetSize(size int) error {
	return fmt.Errorf("life: resize %d -> %d: %w", u.sq.N, size, core.ErrUnsupported)
}

// Reset reseeds the board with the fixed pattern and reports every cell as
// changed.
func (u *Universe) Reset() {
	for i := range u.cur {
		u.cur[i] = seed(i)
	}
	u.generation = 0
	u.changed = u.allCells(u.changed[:0])
	u.flipped = u.allCells(u.flipped[:0])
}

// seed is the deterministic initial pattern.
func seed(i int) uint8 {
	if i%3 == 0 || i%7 == 0 {
		return 1
	}
	return 0
}

func (u *Universe) allCells(dst []core.Cell) []core.Cell {
	for row := 0; row < u.sq.N; row++ {
		for col := 0; col < u.sq.N; col++ {
			dst = append(dst, core.Cell{Row: row, Col: col})
		}
	}
	return dst
}

// Clear kills every cell.
func (u *Universe) Clear() {
	u.flipped = u.flipped[:0]
	for row := 0; row < u.sq.N; row++ {
		for col := 0; col < u.sq.N; col++ {
			idx := u.index(col, row)
			if u.cur[idx] == 1 {
				u.flipped = append(u.flipped, core.Cell{Row: row, Col: col})
			}
			u.cur[idx] = 0
		}
	}
	u.changed = u.changed[:0]
}

func (u *Universe) index(x, y int) int { return u.sq.Index(x, y) }

// liveNeighbors counts live cells among the eight wrapped neighbors of column
// x, row y in the current generation.
func (u *Universe) liveNeighbors(x, y int) int {
	count := 0
	for _, idx := range u.sq.Moore(x, y) {
		count += int(u.cur[idx])
	}
	return count
}

// LiveNeighbors returns the live neighbor count of (row, col).
func (u *Universe) LiveNeighbors(row, col int) (int, error) {
	if err := u.sq.CheckBounds(row, col); err != nil {
		return 0, fmt.Errorf("life: neighbors: %w", err)
	}
	return u.liveNeighbors(col, row), nil
}

// Alive reports whether (row, col) is alive.
func (u *Universe) Alive(row, col int) (bool, error) {
	if err := u.sq.CheckBounds(row, col); err != nil {
		return false, fmt.Errorf("life: alive: %w", err)
	}
	return u.cur[u.index(col, row)] == 1, nil
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		n += int(c)
	}
	return n
}

// next applies the Conway transition.
func next(alive bool, neighbors int) uint8 {
	if neighbors == 3 || (alive && neighbors == 2) {
		return 1
	}
	return 0
}

// Tick advances the board by one generation.
func (u *Universe) Tick() {
	n := u.sq.N
	u.changed = u.changed[:0]
	u.flipped = u.flipped[:0]
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := u.index(x, y)
			state := next(u.cur[idx] == 1, u.liveNeighbors(x, y))
			u.nxt[idx] = state
			if state == 1 {
				u.changed = append(u.changed, core.Cell{Row: y, Col: x})
			}
			if state != u.cur[idx] {
				u.flipped = append(u.flipped, core.Cell{Row: y, Col: x})
			}
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
	if u.trace != nil {
		u.trace(len(u.flipped) > 0)
	}
}

// ToggleCell flips (row, col) between alive and dead. A toggle to alive
// replaces Cells with that single cell; a toggle to dead leaves Cells as it
// was. Flipped always becomes the single toggled cell.
func (u *Universe) ToggleCell(row, col int) error {
	if err := u.sq.CheckBounds(row, col); err != nil {
		return fmt.Errorf("life: toggle: %w", err)
	}
	idx := u.index(col, row)
	u.cur[idx] ^= 1

	cell := core.Cell{Row: row, Col: col}
	alive := u.cur[idx] == 1
	if alive {
		u.changed = append(u.changed[:0], cell)
	}
	u.flipped = append(u.flipped[:0], cell)
	if u.trace != nil {
		u.trace(alive)
	}
	return nil
}

// Cells returns the cells to paint alive since the last mutation.
func (u *Universe) Cells() []core.Cell {
	return append([]core.Cell(nil), u.changed...)
}

// Flipped returns every cell whose state differs from before the last
// mutation.
func (u *Universe) Flipped() []core.Cell {
	return append([]core.Cell(nil), u.flipped...)
}

// State exposes the current generation without copying.
func (u *Universe) State() core.View { return core.NewView(u.sq.N, u.cur) }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		u, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return u, nil
	})
}
