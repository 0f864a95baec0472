package overlay

// Color is a non-premultiplied RGBA color, each channel 0-255.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a Color from int channels, clamping each into 0-255.
func RGBA(r, g, b, a int) Color {
	return Color{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(a)}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a int) Color {
	c.A = clampByte(a)
	return c
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Palette colors shared by the renderers.
var (
	ColorBlue       = RGBA(0, 0, 255, 255)
	ColorOrange     = RGBA(255, 165, 0, 255)
	ColorNoData     = RGBA(200, 200, 200, 255)
	ColorWhite      = RGBA(255, 255, 255, 255)
	ColorBlack      = RGBA(0, 0, 0, 255)
	ColorBarBlue    = RGBA(0, 128, 255, 230)
	ColorBarOrange  = RGBA(255, 165, 0, 230)
	ColorOutline    = RGBA(150, 150, 150, 220)
	ColorGrid       = RGBA(150, 150, 150, 120)
	ColorDebugMinor = RGBA(160, 160, 160, 50)
	ColorDebugMajor = RGBA(160, 160, 160, 110)
)

// Size is a screen or surface size in pixels.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in absolute pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// CommandKind identifies a draw primitive.
type CommandKind uint8

const (
	// FillRect fills Rect with Color.
	FillRect CommandKind = iota
	// StrokeRect draws a 1 pixel outline just inside Rect.
	StrokeRect
	// Line fills an axis-aligned span; gridlines and markers use it.
	Line
	// Text draws Text anchored at (Rect.X, Rect.Y).
	Text
)

func (k CommandKind) String() string {
	switch k {
	case FillRect:
		return "fill"
	case StrokeRect:
		return "stroke"
	case Line:
		return "line"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// TextAlign controls how a Text command is anchored horizontally.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// Command is a single draw primitive emitted by the renderers.
type Command struct {
	Kind  CommandKind
	Rect  Rect
	Color Color
	Text  string
	Align TextAlign
}

// Surface is a draw sink. It is the only side-effecting collaborator of the
// renderers.
type Surface interface {
	Draw(cmd Command)
}

// Replay sends every command to the surface in order.
func Replay(s Surface, cmds []Command) {
	for _, c := range cmds {
		s.Draw(c)
	}
}

// Recorder is a Surface that keeps every command it receives.
type Recorder struct {
	Commands []Command
}

// Draw appends cmd to the recording.
func (r *Recorder) Draw(cmd Command) {
	r.Commands = append(r.Commands, cmd)
}

// Reset discards the recording while keeping its storage.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

func fill(x, y, w, h int, c Color) Command {
	return Command{Kind: FillRect, Rect: Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}, Color: c}
}

func line(x, y, w, h int, c Color) Command {
	return Command{Kind: Line, Rect: Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}, Color: c}
}
