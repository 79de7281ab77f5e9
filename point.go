package molsketch

import "math"

// Angle constants used by the skeletal layout, in radians.
const (
	ang120 = math.Pi * 2 / 3
	ang90  = math.Pi / 2
	ang60  = ang120 / 2
	ang30  = ang60 / 2
)

// Point represents a position on the drawing surface.
// Y increases downward, matching screen coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// Approx reports whether p and q are within epsilon on both axes.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

// Advance returns the point reached by moving length units from origin in
// the direction angle (radians, 0 pointing right, positive turning toward +Y).
//
// Every anchor in a layout is derived through Advance so that chained
// geometry stays consistent.
func Advance(origin Point, angle, length float64) Point {
	return Point{
		X: origin.X + math.Cos(angle)*length,
		Y: origin.Y + math.Sin(angle)*length,
	}
}

// Degrees converts an angle in degrees to radians.
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}
