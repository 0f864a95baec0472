package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/internal/overlay"
)

const halfBlock = "▀"

type pixel struct{ r, g, b uint8 }

type glyph struct {
	ch rune
	fg pixel
}

// Canvas is an overlay.Surface backed by terminal cells. Each cell holds two
// vertical pixels drawn as an upper half block: foreground is the top pixel,
// background the bottom one. Text is placed on whole cells over the pixels.
type Canvas struct {
	cols, rows int
	bg         pixel
	px         []pixel
	text       map[int]glyph
}

// NewCanvas returns a cols×rows cell canvas cleared to bg.
func NewCanvas(cols, rows int, bg lipgloss.Color) *Canvas {
	c := &Canvas{cols: max(cols, 1), rows: max(rows, 1)}
	c.bg = parsePixel(bg)
	c.px = make([]pixel, c.cols*c.rows*2)
	c.Clear()
	return c
}

// Size is the pixel size the overlay lays out against.
func (c *Canvas) Size() overlay.Size {
	return overlay.Size{W: float64(c.cols), H: float64(c.rows * 2)}
}

// Clear resets every pixel to the background and drops all text.
func (c *Canvas) Clear() {
	for i := range c.px {
		c.px[i] = c.bg
	}
	c.text = make(map[int]glyph)
}

// Draw implements overlay.Surface.
func (c *Canvas) Draw(cmd overlay.Command) {
	switch cmd.Kind {
	case overlay.FillRect, overlay.Line:
		c.fill(cmd.Rect, cmd.Color)
	case overlay.StrokeRect:
		r := cmd.Rect
		c.fill(overlay.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, cmd.Color)
		c.fill(overlay.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, cmd.Color)
		c.fill(overlay.Rect{X: r.X, Y: r.Y + 1, W: 1, H: r.H - 2}, cmd.Color)
		c.fill(overlay.Rect{X: r.X + r.W - 1, Y: r.Y + 1, W: 1, H: r.H - 2}, cmd.Color)
	case overlay.Text:
		c.putText(cmd)
	}
}

func (c *Canvas) fill(r overlay.Rect, col overlay.Color) {
	if r.Empty() || col.A == 0 {
		return
	}
	x0 := max(int(math.Floor(r.X)), 0)
	y0 := max(int(math.Floor(r.Y)), 0)
	x1 := min(int(math.Ceil(r.X+r.W)), c.cols)
	y1 := min(int(math.Ceil(r.Y+r.H)), c.rows*2)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := y*c.cols + x
			c.px[i] = blend(c.px[i], col)
		}
	}
}

func (c *Canvas) putText(cmd overlay.Command) {
	runes := []rune(cmd.Text)
	x := int(cmd.Rect.X)
	if cmd.Align == overlay.AlignCenter {
		x -= len(runes) / 2
	}
	row := int(cmd.Rect.Y) / 2
	if row < 0 || row >= c.rows {
		return
	}
	fg := pixel{cmd.Color.R, cmd.Color.G, cmd.Color.B}
	for i, ch := range runes {
		col := x + i
		if col < 0 || col >= c.cols {
			continue
		}
		c.text[row*c.cols+col] = glyph{ch: ch, fg: fg}
	}
}

// Pixel returns the composited color at pixel (x, y).
func (c *Canvas) Pixel(x, y int) (r, g, b uint8) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows*2 {
		return 0, 0, 0
	}
	p := c.px[y*c.cols+x]
	return p.r, p.g, p.b
}

// Render returns the canvas as rows of styled half blocks. Runs of equal
// cells share one style so the output stays small.
func (c *Canvas) Render() string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var sb strings.Builder
		var run strings.Builder
		var runStyle lipgloss.Style
		var runKey string
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < c.cols; col++ {
			top := c.px[(row*2)*c.cols+col]
			bottom := c.px[(row*2+1)*c.cols+col]
			ch, fg, bg := halfBlock, top, bottom
			if g, ok := c.text[row*c.cols+col]; ok {
				ch, fg, bg = string(g.ch), g.fg, mix(top, bottom)
			}
			k := fg.hex() + bg.hex()
			if k != runKey {
				flush()
				runKey = k
				runStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color(fg.hex())).
					Background(lipgloss.Color(bg.hex()))
			}
			run.WriteString(ch)
		}
		flush()
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (p pixel) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", p.r, p.g, p.b)
}

func parsePixel(c lipgloss.Color) pixel {
	s := strings.TrimPrefix(string(c), "#")
	var p pixel
	if len(s) == 6 {
		fmt.Sscanf(s, "%02x%02x%02x", &p.r, &p.g, &p.b)
	}
	return p
}

// blend composites src over dst with src's alpha.
func blend(dst pixel, src overlay.Color) pixel {
	a := float64(src.A) / 255
	ch := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return pixel{ch(dst.r, src.R), ch(dst.g, src.G), ch(dst.b, src.B)}
}

func mix(a, b pixel) pixel {
	return pixel{
		uint8((int(a.r) + int(b.r)) / 2),
		uint8((int(a.g) + int(b.g)) / 2),
		uint8((int(a.b) + int(b.b)) / 2),
	}
}
