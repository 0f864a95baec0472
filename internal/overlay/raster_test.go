package overlay

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRasterFillComposites(t *testing.T) {
	r := NewRaster(4, 4)
	r.Clear(ColorWhite)
	r.Draw(Command{Kind: FillRect, Rect: Rect{X: 0, Y: 0, W: 2, H: 2}, Color: RGBA(0, 0, 0, 128)})

	got := r.Image().RGBAAt(0, 0)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("expected half-grey opaque pixel, got %+v", got)
	}
	if untouched := r.Image().RGBAAt(3, 3); untouched.R != 255 {
		t.Errorf("expected untouched white pixel, got %+v", untouched)
	}
}

func TestRasterStrokeOutline(t *testing.T) {
	r := NewRaster(5, 5)
	r.Draw(Command{Kind: StrokeRect, Rect: Rect{W: 5, H: 5}, Color: ColorWhite})

	if r.Image().RGBAAt(0, 2).A != 255 || r.Image().RGBAAt(4, 2).A != 255 {
		t.Error("expected left and right edges drawn")
	}
	if r.Image().RGBAAt(2, 0).A != 255 || r.Image().RGBAAt(2, 4).A != 255 {
		t.Error("expected top and bottom edges drawn")
	}
	if r.Image().RGBAAt(2, 2).A != 0 {
		t.Error("expected interior left transparent")
	}
}

func TestRasterClipsToBounds(t *testing.T) {
	r := NewRaster(3, 3)
	r.Draw(Command{Kind: FillRect, Rect: Rect{X: -10, Y: -10, W: 100, H: 100}, Color: ColorBlue})
	if r.Image().RGBAAt(2, 2).B != 255 {
		t.Error("expected fill clipped to the raster")
	}
}

func TestRasterText(t *testing.T) {
	r := NewRaster(120, 20)
	r.Draw(Command{Kind: Text, Rect: Rect{X: 60, Y: 2}, Color: ColorWhite, Text: "replay", Align: AlignCenter})

	var lit int
	b := r.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r.Image().RGBAAt(x, y).A > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected text to light some pixels")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(32, 16)
	Replay(r, Compose(Scene{
		Screen:   r.Size(),
		Series:   constSeries(100, 0.3),
		Playhead: Playhead{Frame: 50},
		Config:   DefaultDisplayConfig(),
		Status:   Status{InReplay: true},
	}))

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("expected 32x16 image, got %v", img.Bounds())
	}
}

func TestRecorderReset(t *testing.T) {
	var rec Recorder
	Replay(&rec, []Command{{Kind: FillRect}, {Kind: Line}})
	if len(rec.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(rec.Commands))
	}
	rec.Reset()
	if len(rec.Commands) != 0 {
		t.Errorf("expected empty recording after reset, got %d", len(rec.Commands))
	}
}
