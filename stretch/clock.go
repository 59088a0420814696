// Package stretch implements the realtime time-stretcher and pitch
// shifter used for DJ-style pause/resume effects: an interleaved
// multi-channel resampler whose tempo eases smoothly between values
// over wall-clock time.
package stretch

import "time"

// Clock reports monotonic milliseconds since some fixed epoch. The
// stretcher's transition timing depends entirely on this interface
// rather than calling time.Now directly, so transitions can be driven
// deterministically in tests (spec.md §5, §9).
type Clock interface {
	NowMillis() float64
}

// SystemClock is a Clock backed by the process's monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a SystemClock whose epoch is the moment of
// construction, matching the reference's `start_time = Date.now()`
// captured when the stretcher itself is created.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMillis() float64 {
	return float64(time.Since(c.start).Microseconds()) / 1000.0
}
