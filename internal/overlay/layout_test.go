package overlay

import (
	"math"
	"testing"
)

func TestComputeLayoutDefaults(t *testing.T) {
	lay := ComputeLayout(Size{W: 1000, H: 500}, DefaultFractions())

	tests := []struct {
		name string
		got  Rect
		want Rect
	}{
		{"left bar", lay.LeftBar, Rect{X: 0, Y: 0, W: 400, H: 35}},
		{"right bar", lay.RightBar, Rect{X: 600, Y: 0, W: 400, H: 35}},
		{"main", lay.Main, Rect{X: 400, Y: 49, W: 200, H: 70}},
	}
	for _, tt := range tests {
		if !rectNear(tt.got, tt.want) {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, tt.got)
		}
	}
}

func rectNear(a, b Rect) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}

func TestComputeLayoutScaleInvariant(t *testing.T) {
	f := DefaultFractions()
	sizes := []Size{{1920, 1080}, {1280, 720}, {333, 97}, {80, 48}}
	for _, s := range sizes {
		a := ComputeLayout(s, f)
		b := ComputeLayout(Size{W: s.W * 2, H: s.H * 2}, f)
		pairs := [][2]Rect{{a.LeftBar, b.LeftBar}, {a.RightBar, b.RightBar}, {a.Main, b.Main}}
		for i, p := range pairs {
			want := Rect{X: p[0].X * 2, Y: p[0].Y * 2, W: p[0].W * 2, H: p[0].H * 2}
			if p[1] != want {
				t.Errorf("size %v rect %d: expected %+v, got %+v", s, i, want, p[1])
			}
		}
	}
}

func TestComputeLayoutZeroScreen(t *testing.T) {
	lay := ComputeLayout(Size{}, DefaultFractions())
	if !lay.Main.Empty() || !lay.LeftBar.Empty() {
		t.Error("zero screen should yield empty rectangles")
	}
}
