package chart

import (
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BuildPath connects the points into a polyline in array order. The
// caller guarantees time-ascending order.
func BuildPath(points []Point) *vector.Path {
	path := &vector.Path{}
	if len(points) == 0 {
		return path
	}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	return path
}
