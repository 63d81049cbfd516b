package core

// Point is a grid cell coordinate, compared by value
type Point struct {
	X, Y int
}

// Add returns the point offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether the point lies in a size x size square grid anchored at the origin
func (p Point) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Contains reports whether p is one of the given points
func Contains(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

// ClonePoints returns an independent copy, nil stays nil
func ClonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, len(points))
	copy(out, points)
	return out
}
