package core

import (
	"errors"
	"slices"
	"testing"
)

func TestIndexBijective(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		sq := Square{N: n}
		seen := make([]bool, sq.Len())
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				idx := sq.Index(x, y)
				if idx < 0 || idx >= sq.Len() {
					t.Fatalf("n=%d index(%d,%d)=%d out of range", n, x, y, idx)
				}
				if seen[idx] {
					t.Fatalf("n=%d index %d produced twice", n, idx)
				}
				seen[idx] = true
			}
		}
	}
}

func TestMooreWrapsCorners(t *testing.T) {
	sq := Square{N: 4}
	cases := []struct {
		x, y int
		want [8]int
	}{
		// top-left: north is row 3, west is column 3
		{0, 0, [8]int{15, 12, 13, 3, 1, 7, 4, 5}},
		// top-right
		{3, 0, [8]int{14, 15, 12, 2, 0, 6, 7, 4}},
		// bottom-left
		{0, 3, [8]int{11, 8, 9, 15, 13, 3, 0, 1}},
		// bottom-right
		{3, 3, [8]int{10, 11, 8, 14, 12, 2, 3, 0}},
		// interior
		{1, 1, [8]int{0, 1, 2, 4, 6, 8, 9, 10}},
	}
	for _, tc := range cases {
		got := sq.Moore(tc.x, tc.y)
		if got != tc.want {
			t.Fatalf("Moore(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMooreMatchesWrap(t *testing.T) {
	sq := Square{N: 5}
	for y := 0; y < sq.N; y++ {
		for x := 0; x < sq.N; x++ {
			var want []int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					wx, wy := sq.Wrap(x+dx, y+dy)
					want = append(want, sq.Index(wx, wy))
				}
			}
			got := sq.Moore(x, y)
			if !slices.Equal(got[:], want) {
				t.Fatalf("Moore(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestMooreSingleCellBoard(t *testing.T) {
	got := Square{N: 1}.Moore(0, 0)
	if got != [8]int{} {
		t.Fatalf("1x1 neighbors should all alias index 0, got %v", got)
	}
}

func TestCheckBounds(t *testing.T) {
	sq := Square{N: 3}
	if err := sq.CheckBounds(2, 2); err != nil {
		t.Fatalf("(2,2) should be on a 3x3 board: %v", err)
	}
	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		err := sq.CheckBounds(c.Row, c.Col)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("CheckBounds(%d,%d) = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		var be *BoundsError
		if !errors.As(err, &be) || be.Row != c.Row || be.Col != c.Col || be.Size != 3 {
			t.Fatalf("CheckBounds(%d,%d) returned %#v", c.Row, c.Col, err)
		}
	}
}
