package core

import (
	"math"
	"time"
)

// DefaultFPS is used whenever a non-positive or NaN rate is supplied.
const DefaultFPS = 100

// FramePeriod converts a generations-per-second rate into the per-frame wait,
// rounded to whole milliseconds. The result is never shorter than 1ms.
func FramePeriod(fps float64) time.Duration {
	if fps <= 0 || math.IsNaN(fps) {
		fps = DefaultFPS
	}
	ms := math.Round(1000 / fps)
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// TicksPerSecond returns the integer tick rate matching a frame period.
func TicksPerSecond(period time.Duration) int {
	if period <= 0 {
		return DefaultFPS
	}
	tps := int(math.Round(float64(time.Second) / float64(period)))
	if tps < 1 {
		tps = 1
	}
	return tps
}
