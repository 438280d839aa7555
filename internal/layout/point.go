package layout

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}
