package core

// MaxSize bounds the board dimension so that N*N always fits in an int32.
const MaxSize = 1 << 15

// Square describes an N×N toroidal board stored in row-major order.
type Square struct {
	N int
}

// Index returns the linear slice index for column x and row y.
func (s Square) Index(x, y int) int { return x + y*s.N }

// Len returns the number of cells on the board.
func (s Square) Len() int { return s.N * s.N }

// Contains reports whether (x, y) lies on the board without wrapping.
func (s Square) Contains(x, y int) bool {
	return x >= 0 && x < s.N && y >= 0 && y < s.N
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Square) Wrap(x, y int) (int, int) {
	x = (x%s.N + s.N) % s.N
	y = (y%s.N + s.N) % s.N
	return x, y
}

// Moore returns the indices of the eight wrapped neighbors of (x, y), which
// must already be on the board. Order: NW, N, NE, W, E, SW, S, SE. On boards
// smaller than 3×3 some indices repeat.
func (s Square) Moore(x, y int) [8]int {
	last := s.N - 1

	north := y - 1
	if y == 0 {
		north = last
	}
	south := y + 1
	if y == last {
		south = 0
	}
	west := x - 1
	if x == 0 {
		west = last
	}
	east := x + 1
	if x == last {
		east = 0
	}

	return [8]int{
		s.Index(west, north), s.Index(x, north), s.Index(east, north),
		s.Index(west, y), s.Index(east, y),
		s.Index(west, south), s.Index(x, south), s.Index(east, south),
	}
}
