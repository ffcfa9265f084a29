package pathdata

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used to decide that a subpath returns to its starting point.
const Epsilon = 1e-10

// Tolerance is the default maximum difference between absolute coordinates of equivalent paths.
const Tolerance = 1e-2

// equal returns true if a and b are equal with tolerance epsilon, inclusive.
func equal(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance epsilon.
func (p Point) Equals(q Point, epsilon float64) bool {
	return equal(p.X, q.X, epsilon) && equal(p.Y, q.Y, epsilon)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Reflect returns the reflection of Q through P.
func (p Point) Reflect(q Point) Point {
	return Point{2.0*p.X - q.X, 2.0*p.Y - q.Y}
}

// String returns the string representation of a point, such as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
