package overlay

import "gonum.org/v1/gonum/floats"

// Series is a per-frame sequence of samples, nominally in [0,1]. Index 0 is
// the first replay frame.
type Series []float64

const (
	// Neutral is the value reported for an empty series.
	Neutral = 0.5
	// NoData marks a frame that lies outside the series.
	NoData = -1.0
)

// Playhead is the current frame and the replay's total frame count. Total
// may be zero when the host does not know it.
type Playhead struct {
	Frame int
	Total int
}

// Sample returns the value of series at frame, averaged over a symmetric
// window of 2*(smoothingWindow/2)+1 frames when smoothingWindow > 0. The
// frame and the averaging interval are clamped to the series bounds and the
// result is clamped to [0,1].
func Sample(series Series, frame, smoothingWindow int) float64 {
	n := len(series)
	if n == 0 {
		return Neutral
	}
	frame = clampInt(frame, 0, n-1)

	if smoothingWindow <= 0 {
		return clamp01(series[frame])
	}

	half := smoothingWindow / 2
	lo := clampInt(frame-half, 0, n-1)
	hi := clampInt(frame+half, 0, n-1)

	count := hi - lo + 1
	if count <= 0 {
		return clamp01(series[frame])
	}
	return clamp01(floats.Sum(series[lo:hi+1]) / float64(count))
}

// InRange reports whether frame has data: it must index the series and,
// when the replay length is known, fall inside the replay.
func InRange(series Series, ph Playhead, frame int) bool {
	if frame < 0 || frame >= len(series) {
		return false
	}
	if ph.Total > 0 && frame >= ph.Total {
		return false
	}
	return true
}

// SampleAt is Sample for frames that may be out of range: it returns NoData
// instead of repeating an edge value.
func SampleAt(series Series, ph Playhead, frame, smoothingWindow int) float64 {
	if !InRange(series, ph, frame) {
		return NoData
	}
	return Sample(series, frame, smoothingWindow)
}

func clamp01(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
