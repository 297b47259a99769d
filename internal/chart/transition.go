package chart

import "time"

// DefaultTransitionDuration is how long the line morphs between two
// data sets.
const DefaultTransitionDuration = 300 * time.Millisecond

// EaseOutCubic maps a linear progress fraction in [0,1] to an eased one:
// fast at first, decelerating to a stop.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Transition interpolates between two scaled series over a fixed
// duration. Both series are resampled to a common length up front so
// points can be paired off. The zero duration snaps immediately.
type Transition struct {
	from, to []Point
	start    time.Time
	duration time.Duration
}

func NewTransition(from, to []Point, start time.Time, duration time.Duration) *Transition {
	n := len(to)
	if len(from) > n {
		n = len(from)
	}
	if len(from) == 0 {
		// nothing to morph from, snap to the new shape
		from = to
	}
	return &Transition{
		from:     Resample(from, n),
		to:       Resample(to, n),
		start:    start,
		duration: duration,
	}
}

// At returns the interpolated series for the given instant, clamped to
// the final shape once the duration has elapsed.
func (t *Transition) At(now time.Time) []Point {
	f := t.progress(now)
	if f >= 1 {
		return t.to
	}
	e := EaseOutCubic(f)
	out := make([]Point, len(t.to))
	for i := range out {
		a, b := t.from[i], t.to[i]
		out[i] = Point{
			X: a.X + (b.X-a.X)*e,
			Y: a.Y + (b.Y-a.Y)*e,
		}
	}
	return out
}

// Done reports whether the transition has finished at the given instant.
func (t *Transition) Done(now time.Time) bool {
	return t.progress(now) >= 1
}

// Target returns the final series the transition settles on.
func (t *Transition) Target() []Point {
	return t.to
}

func (t *Transition) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	f := float64(now.Sub(t.start)) / float64(t.duration)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Resample stretches or shrinks the polyline to exactly n points by
// linear interpolation along the index parameter, keeping endpoints.
func Resample(points []Point, n int) []Point {
	if n <= 0 || len(points) == 0 {
		return nil
	}
	if len(points) == n {
		return points
	}
	if n == 1 {
		return []Point{points[len(points)-1]}
	}
	out := make([]Point, n)
	if len(points) == 1 {
		for i := range out {
			out[i] = points[0]
		}
		return out
	}

	step := float64(len(points)-1) / float64(n-1)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= len(points)-1 {
			out[i] = points[len(points)-1]
			continue
		}
		frac := pos - float64(j)
		a, b := points[j], points[j+1]
		out[i] = Point{
			X: a.X + (b.X-a.X)*frac,
			Y: a.Y + (b.Y-a.Y)*frac,
		}
	}
	return out
}
