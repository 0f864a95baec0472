package components

import (
	"fmt"
	"strings"
	"time"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline draws the newest width values scaled into [lo, hi]. Values
// outside the range are clamped; negative samples (no data) draw as gaps.
func Sparkline(data []float64, width int, lo, hi float64) string {
	if len(data) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	var sb strings.Builder
	for i := 0; i < width-len(data); i++ {
		sb.WriteRune(' ')
	}
	spread := hi - lo
	for _, v := range data {
		if v < 0 {
			sb.WriteRune(' ')
			continue
		}
		if spread <= 0 {
			sb.WriteRune(blocks[3])
			continue
		}
		idx := int((v - lo) / spread * float64(len(blocks)-1))
		idx = max(0, min(idx, len(blocks)-1))
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}

// FormatPercent renders a probability as a percentage, or "--" for no data.
func FormatPercent(p float64) string {
	if p < 0 {
		return "--"
	}
	return fmt.Sprintf("%.1f%%", p*100)
}

// FormatClock renders replay time as m:ss.t.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d / time.Minute)
	s := d - time.Duration(m)*time.Minute
	return fmt.Sprintf("%d:%04.1f", m, s.Seconds())
}

// FormatBytes renders a file size.
func FormatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fM", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fK", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
