package session

import (
	"time"

	"github.com/tonhe/replaylens/internal/overlay"
)

// DefaultFPS is the replay frame rate.
const DefaultFPS = 30

// Clock is the replay playhead. It advances by wall time while playing and
// stops on the last frame.
type Clock struct {
	frame   int
	total   int
	fps     int
	playing bool
	carry   time.Duration
}

// NewClock returns a paused clock at frame 0. A total of zero means the
// replay length is unknown and the clock never stops on its own.
func NewClock(total, fps int) *Clock {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Clock{total: max(total, 0), fps: fps}
}

// Advance moves the playhead by the frames elapsed in dt. Fractional frames
// carry over to the next call.
func (c *Clock) Advance(dt time.Duration) {
	if !c.playing || dt <= 0 {
		return
	}
	perFrame := time.Second / time.Duration(c.fps)
	c.carry += dt
	n := int(c.carry / perFrame)
	c.carry -= time.Duration(n) * perFrame
	c.Seek(c.frame + n)
	if c.total > 0 && c.frame >= c.total-1 {
		c.playing = false
	}
}

// Seek moves to frame, clamped into the replay.
func (c *Clock) Seek(frame int) {
	if frame < 0 {
		frame = 0
	}
	if c.total > 0 && frame > c.total-1 {
		frame = c.total - 1
	}
	c.frame = frame
}

// Step moves by delta frames.
func (c *Clock) Step(delta int) {
	c.Seek(c.frame + delta)
}

// Toggle flips between playing and paused. Playing from the last frame
// restarts at the beginning.
func (c *Clock) Toggle() {
	if !c.playing && c.total > 0 && c.frame >= c.total-1 {
		c.frame = 0
	}
	c.playing = !c.playing
	c.carry = 0
}

// SetTotal updates the replay length, re-clamping the playhead.
func (c *Clock) SetTotal(total int) {
	c.total = max(total, 0)
	c.Seek(c.frame)
}

func (c *Clock) Frame() int    { return c.frame }
func (c *Clock) Total() int    { return c.total }
func (c *Clock) FPS() int      { return c.fps }
func (c *Clock) Playing() bool { return c.playing }

// Elapsed is the replay time at the playhead.
func (c *Clock) Elapsed() time.Duration {
	return time.Duration(c.frame) * time.Second / time.Duration(c.fps)
}

// Playhead returns the overlay's view of the clock.
func (c *Clock) Playhead() overlay.Playhead {
	return overlay.Playhead{Frame: c.frame, Total: c.total}
}
