// Package geometry contains the integer grid primitives used throughout tad.
//
// Shapes are anchored at a position with a signed size: negative width or
// height means the shape grows toward negative x or y. Normalization (done by
// the diagram package) folds the sign back into the position, so everything
// here is plain exact integer arithmetic.
package geometry

// Point is a 2D grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a signed 2D extent.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Add returns the point shifted by a size.
func (p Point) Add(s Size) Point {
	return Point{p.X + s.W, p.Y + s.H}
}

// Sub returns the point shifted back by a size.
func (p Point) Sub(s Size) Point {
	return Point{p.X - s.W, p.Y - s.H}
}

// Diff returns the vector from q to p, so that q.Add(p.Diff(q)) == p.
func (p Point) Diff(q Point) Size {
	return Size{p.X - q.X, p.Y - q.Y}
}

// IsWithin reports whether p lies inside the rectangle spanned by a and b,
// bounds inclusive. The corners may be given in any order on either axis.
func (p Point) IsWithin(a, b Point) bool {
	x1, x2 := a.X, b.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := a.Y, b.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return x1 <= p.X && p.X <= x2 && y1 <= p.Y && p.Y <= y2
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{s.W + o.W, s.H + o.H}
}

// Neg returns the component-wise negation.
func (s Size) Neg() Size {
	return Size{-s.W, -s.H}
}

// Abs returns the size with both components made non-negative.
func (s Size) Abs() Size {
	return Size{Abs(s.W), Abs(s.H)}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
