package rotary

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PlaceOnCircle returns the position of item index out of count items spaced
// evenly around a circle. Index 0 sits straight above center and indices
// increase clockwise (screen coordinates, Y down). A non-positive count has
// no placement and returns center.
func PlaceOnCircle(center Point, radius float64, count, index int) Point {
	if count <= 0 {
		return center
	}
	angle := 2 * math.Pi * float64(index) / float64(count)
	return Point{
		X: center.X + radius*math.Sin(angle),
		Y: center.Y - radius*math.Cos(angle),
	}
}

// AngleOf returns the clockwise angle of p around center, measured from
// straight up, in [0, 2π).
func AngleOf(center, p Point) float64 {
	a := math.Atan2(p.X-center.X, center.Y-p.Y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
