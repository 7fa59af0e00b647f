package frame

import (
	"math"
	"time"
)

// Flicks is a duration in flicks: 1/705,600,000 of a second. The unit
// divides evenly into common frame rates. Zero means a still image or an
// infinite duration.
type Flicks int64

const (
	// FlicksPerSecond is the number of flicks in one second.
	FlicksPerSecond Flicks = 705_600_000

	// FlicksPerMillisecond is the number of flicks in one millisecond.
	FlicksPerMillisecond Flicks = 705_600
)

// FlicksFromDuration converts d to flicks, truncating toward zero.
func FlicksFromDuration(d time.Duration) Flicks {
	secs := Flicks(d / time.Second)
	rem := Flicks(d % time.Second)
	return secs*FlicksPerSecond + rem*FlicksPerSecond/Flicks(time.Second)
}

// Duration converts f to a time.Duration, truncating toward zero and
// saturating at the limits of time.Duration.
func (f Flicks) Duration() time.Duration {
	secs := int64(f / FlicksPerSecond)
	rem := int64(f % FlicksPerSecond)
	const maxSecs = math.MaxInt64 / int64(time.Second)
	switch {
	case secs > maxSecs:
		return math.MaxInt64
	case secs < -maxSecs:
		return math.MinInt64
	}
	d := time.Duration(secs) * time.Second
	r := time.Duration(rem * int64(time.Second) / int64(FlicksPerSecond))
	if r > 0 && d > math.MaxInt64-r {
		return math.MaxInt64
	}
	if r < 0 && d < math.MinInt64-r {
		return math.MinInt64
	}
	return d + r
}

// Milliseconds returns f in whole milliseconds, truncating toward zero.
func (f Flicks) Milliseconds() int64 {
	return int64(f / FlicksPerMillisecond)
}
