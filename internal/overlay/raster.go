package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is a Surface backed by an in-memory RGBA image. Commands are alpha
// composited over what is already there.
type Raster struct {
	img  *image.RGBA
	face font.Face
}

// NewRaster returns a transparent w×h raster.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1))),
		face: basicfont.Face7x13,
	}
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Size returns the raster dimensions.
func (r *Raster) Size() Size {
	b := r.img.Bounds()
	return Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Clear replaces every pixel with c.
func (r *Raster) Clear(c Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
}

// Draw implements Surface.
func (r *Raster) Draw(cmd Command) {
	switch cmd.Kind {
	case FillRect, Line:
		r.fill(toImageRect(cmd.Rect), cmd.Color)
	case StrokeRect:
		b := toImageRect(cmd.Rect)
		if b.Empty() {
			return
		}
		r.fill(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1), cmd.Color)
		if b.Dy() > 1 {
			r.fill(image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y), cmd.Color)
		}
		if b.Dy() > 2 {
			r.fill(image.Rect(b.Min.X, b.Min.Y+1, b.Min.X+1, b.Max.Y-1), cmd.Color)
			if b.Dx() > 1 {
				r.fill(image.Rect(b.Max.X-1, b.Min.Y+1, b.Max.X, b.Max.Y-1), cmd.Color)
			}
		}
	case Text:
		r.text(cmd)
	}
}

func (r *Raster) fill(b image.Rectangle, c Color) {
	b = b.Intersect(r.img.Bounds())
	if b.Empty() || c.A == 0 {
		return
	}
	draw.Draw(r.img, b, image.NewUniform(toNRGBA(c)), image.Point{}, draw.Over)
}

func (r *Raster) text(cmd Command) {
	if cmd.Text == "" {
		return
	}
	x := int(cmd.Rect.X)
	if cmd.Align == AlignCenter {
		x -= font.MeasureString(r.face, cmd.Text).Ceil() / 2
	}
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(toNRGBA(cmd.Color)),
		Face: r.face,
		Dot:  fixed.P(x, int(cmd.Rect.Y)+r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(cmd.Text)
}

// EncodePNG writes the raster as a PNG image.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

func toNRGBA(c Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// toImageRect snaps a float rectangle to whole pixels. Any rectangle with a
// positive area covers at least one pixel.
func toImageRect(r Rect) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Floor(r.X + r.W))
	y1 := int(math.Floor(r.Y + r.H))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1)
}
