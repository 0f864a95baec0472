package overlay

import "testing"

func TestColumnSpanTiles(t *testing.T) {
	for width := 1; width <= 120; width++ {
		for n := 1; n <= width; n++ {
			x0 := 7
			prev := x0
			for i := 0; i < n; i++ {
				s0, s1 := ColumnSpan(x0, width, i, n)
				if s0 != prev {
					t.Fatalf("width=%d n=%d col=%d: expected start %d, got %d", width, n, i, prev, s0)
				}
				if s1 <= s0 {
					t.Fatalf("width=%d n=%d col=%d: empty span [%d,%d)", width, n, i, s0, s1)
				}
				prev = s1
			}
			if prev != x0+width {
				t.Fatalf("width=%d n=%d: expected last edge %d, got %d", width, n, x0+width, prev)
			}
		}
	}
}

func TestColumnSpanDegenerateFloor(t *testing.T) {
	// More columns than pixels: every span is still 1 pixel wide.
	for i := 0; i < 10; i++ {
		s0, s1 := ColumnSpan(0, 3, i, 10)
		if s1-s0 != 1 {
			t.Errorf("col %d: expected width 1, got %d", i, s1-s0)
		}
		if s0 < 0 || s1 > 3 {
			t.Errorf("col %d: span [%d,%d) escapes [0,3)", i, s0, s1)
		}
	}
}

func TestColumnSpanNoColumns(t *testing.T) {
	s0, s1 := ColumnSpan(5, 100, 0, 0)
	if s0 != 5 || s1 != 6 {
		t.Errorf("expected [5,6), got [%d,%d)", s0, s1)
	}
}

func TestRowSpanMatchesColumnSpan(t *testing.T) {
	for i := 0; i < 9; i++ {
		a0, a1 := ColumnSpan(3, 50, i, 9)
		b0, b1 := RowSpan(3, 50, i, 9)
		if a0 != b0 || a1 != b1 {
			t.Errorf("row %d: expected [%d,%d), got [%d,%d)", i, a0, a1, b0, b1)
		}
	}
}

func TestBandStaysInside(t *testing.T) {
	tests := []struct {
		pos, thick, lo, hi int
		wantStart, wantSize int
	}{
		{50, 3, 0, 100, 49, 3},
		{0, 4, 0, 100, 0, 4},
		{99, 4, 0, 100, 96, 4},
		{5, 0, 0, 10, 5, 1},
		{1, 8, 0, 2, 0, 2},
	}
	for _, tt := range tests {
		start, size := band(tt.pos, tt.thick, tt.lo, tt.hi)
		if start != tt.wantStart || size != tt.wantSize {
			t.Errorf("band(%d,%d,%d,%d): expected (%d,%d), got (%d,%d)",
				tt.pos, tt.thick, tt.lo, tt.hi, tt.wantStart, tt.wantSize, start, size)
		}
	}
}
