package chart

import (
	"time"

	"cryptoview/internal/market"
)

// Point is a price sample mapped into pixel space.
type Point struct {
	X, Y float64
}

// Insets is the padding between the drawing area's edge and the plotted
// line.
type Insets struct {
	Top, Bottom, Left, Right float64
}

// placeholder stands in for series too short to span a time axis, so the
// axis mappings never see a zero-width domain from missing data.
var placeholder = market.ValueHistory{
	{Price: 1, Time: time.Unix(0, 0)},
	{Price: 1, Time: time.Unix(1, 0)},
}

// Scale maps the series into pixel coordinates inside a width x height
// area. Price maps to y inverted (larger price is higher on screen, i.e.
// a smaller y), time maps to x left to right. Input with fewer than two
// points is replaced by a flat two-point placeholder. Output is always
// finite: a collapsed domain (all prices equal, or all times equal) maps
// every value to the midpoint of the output range.
func Scale(points market.ValueHistory, width, height float64, in Insets) []Point {
	if len(points) < 2 {
		points = placeholder
	}

	minPrice, maxPrice := points[0].Price, points[0].Price
	minTime, maxTime := points[0].Time, points[0].Time
	for _, p := range points[1:] {
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
		if p.Time.Before(minTime) {
			minTime = p.Time
		}
		if p.Time.After(maxTime) {
			maxTime = p.Time
		}
	}

	scaleY := linearMap(minPrice, maxPrice, height-in.Bottom, in.Top)
	scaleX := linearMap(float64(minTime.UnixNano()), float64(maxTime.UnixNano()), in.Left, width-in.Right)

	scaled := make([]Point, len(points))
	for i, p := range points {
		scaled[i] = Point{
			X: scaleX(float64(p.Time.UnixNano())),
			Y: scaleY(p.Price),
		}
	}
	return scaled
}

// linearMap builds an affine mapping from [d0, d1] onto [r0, r1]. A
// zero-width domain collapses to the midpoint of the range instead of
// dividing by zero.
func linearMap(d0, d1, r0, r1 float64) func(float64) float64 {
	if d0 == d1 {
		mid := (r0 + r1) / 2
		return func(float64) float64 { return mid }
	}
	k := (r1 - r0) / (d1 - d0)
	return func(v float64) float64 { return r0 + (v-d0)*k }
}

// NearestIndex returns the index of the scaled point closest to x along
// the horizontal axis, for hover readouts. Returns -1 for an empty slice.
func NearestIndex(points []Point, x float64) int {
	best := -1
	bestDist := 0.0
	for i, p := range points {
		d := p.X - x
		if d < 0 {
			d = -d
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
