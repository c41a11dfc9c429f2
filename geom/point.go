// Package geom supplies a default, opt-in float64 geometry context for the
// bentleyottmann sweep: Point, Segment, and a Context implementation built
// the way the teacher's Point/Equal/Epsilon trio works. Callers wanting
// exact rational semantics supply their own bentleyottmann.Context instead.
package geom

import (
	"fmt"
	"math"

	bo "github.com/tdewolff/bentleyottmann"
)

// Epsilon is the tolerance below which two coordinates are considered
// equal, mirroring the teacher's Epsilon constant.
const Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// snap rounds x to the nearest multiple of Epsilon so that values that
// differ only by floating-point noise compare exactly equal under ==,
// which the engine's fusion and map-keying rely on.
func snap(x float64) float64 {
	return math.Round(x/Epsilon) * Epsilon
}

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Segment is an unordered pair of distinct Points, addressed by the index
// the caller assigns it.
type Segment = bo.Segment[Point]

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Equals returns true if p and q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// PerpDot returns the perp dot product between OP and OQ: zero if aligned,
// positive if Q is counter-clockwise from P, negative if clockwise.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) snap() Point {
	return Point{snap(p.X), snap(p.Y)}
}
