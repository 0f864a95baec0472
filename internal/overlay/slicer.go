package overlay

// ColumnSpan returns the pixel span [s0, s1) of column i when the width
// starting at x0 is divided into n columns. Boundaries are proportional, so
// adjacent spans share an edge and the remainder spreads across the row
// instead of piling up at one end. A span never collapses below 1 pixel.
func ColumnSpan(x0, width, i, n int) (int, int) {
	if n <= 0 {
		return x0, x0 + 1
	}
	s0 := x0 + (width*i)/n
	s1 := x0 + (width*(i+1))/n
	if s1 <= s0 {
		s1 = s0 + 1
	}
	return s0, s1
}

// RowSpan is ColumnSpan for the vertical axis.
func RowSpan(y0, height, i, n int) (int, int) {
	return ColumnSpan(y0, height, i, n)
}

// pixelBounds snaps r to whole pixels, keeping at least 1 pixel on each
// axis.
func pixelBounds(r Rect) (x0, y0, x1, y1 int) {
	x0 = int(r.X)
	x1 = int(r.X + r.W)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y0 = int(r.Y)
	y1 = int(r.Y + r.H)
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// band places a stripe of the given thickness centred on pos, inside
// [lo, hi). The thickness is floored at 1 and capped at the available room.
func band(pos, thick, lo, hi int) (start, size int) {
	if thick < 1 {
		thick = 1
	}
	if room := hi - lo; thick > room {
		thick = room
		if thick < 1 {
			thick = 1
		}
	}
	start = pos - thick/2
	if start < lo {
		start = lo
	}
	if start+thick > hi {
		start = hi - thick
	}
	return start, thick
}
