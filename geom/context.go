package geom

import bo "github.com/tdewolff/bentleyottmann"

// Context implements bentleyottmann.Context[Point] over float64
// coordinates, using the teacher's PerpDot cross-product idiom for
// orientation and an Epsilon-tolerant equality for collinearity and
// endpoint tests. Fusion and fine collinearity detection are therefore
// best-effort near Epsilon: a caller requiring exact semantics should
// supply its own Context, e.g. one backed by math/big.Rat.
type Context struct{}

var _ bo.Context[Point] = Context{}

// Less is a strict lexicographic order: lesser X first, ties broken by
// lesser Y, both compared with Epsilon tolerance.
func (Context) Less(a, b Point) bool {
	if !Equal(a.X, b.X) {
		return a.X < b.X
	}
	return !Equal(a.Y, b.Y) && a.Y < b.Y
}

// Orientation returns the turn direction of the path a, b, c using the
// sign of the cross product (b-a) x (c-a).
func (Context) Orientation(a, b, c Point) bo.Orientation {
	ab := b.Sub(a)
	ac := c.Sub(a)
	cross := ab.PerpDot(ac)
	switch {
	case Equal(cross, 0):
		return bo.Collinear
	case 0 < cross:
		return bo.CounterClockwise
	default:
		return bo.Clockwise
	}
}

// PointInSegment reports whether p lies on the closed segment s.
func (ctx Context) PointInSegment(p Point, s Segment) bool {
	if ctx.Orientation(s.A, s.B, p) != bo.Collinear {
		return false
	}
	minX, maxX := s.A.X, s.B.X
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	minY, maxY := s.A.Y, s.B.Y
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	return minX-Epsilon <= p.X && p.X <= maxX+Epsilon &&
		minY-Epsilon <= p.Y && p.Y <= maxY+Epsilon
}

// SegmentsRelation classifies how the closed segments s and t meet.
func (ctx Context) SegmentsRelation(s, t Segment) bo.Relation {
	o1 := ctx.Orientation(s.A, s.B, t.A)
	o2 := ctx.Orientation(s.A, s.B, t.B)
	o3 := ctx.Orientation(t.A, t.B, s.A)
	o4 := ctx.Orientation(t.A, t.B, s.B)

	if o1 == bo.Collinear && o2 == bo.Collinear && o3 == bo.Collinear {
		return ctx.collinearRelation(s, t)
	}
	if o1 != o2 && o3 != o4 {
		if o1 == bo.Collinear || o2 == bo.Collinear || o3 == bo.Collinear || o4 == bo.Collinear {
			return bo.Touch
		}
		return bo.Cross
	}
	if o1 == bo.Collinear && ctx.PointInSegment(t.A, s) {
		return bo.Touch
	}
	if o2 == bo.Collinear && ctx.PointInSegment(t.B, s) {
		return bo.Touch
	}
	if o3 == bo.Collinear && ctx.PointInSegment(s.A, t) {
		return bo.Touch
	}
	if o4 == bo.Collinear && ctx.PointInSegment(s.B, t) {
		return bo.Touch
	}
	return bo.Disjoint
}

// collinearRelation handles the case where s and t lie on the same line,
// ordering each segment's endpoints along that line with Less (valid
// because Less agrees with some traversal direction of any line its
// arguments lie on) and comparing the two resulting intervals.
func (ctx Context) collinearRelation(s, t Segment) bo.Relation {
	sA, sB := ctx.orderEndpoints(s.A, s.B)
	tA, tB := ctx.orderEndpoints(t.A, t.B)

	if ctx.Less(sB, tA) || ctx.Less(tB, sA) {
		return bo.Disjoint
	}
	if sB == tA || tB == sA {
		return bo.Touch
	}
	return bo.Overlap
}

func (ctx Context) orderEndpoints(a, b Point) (Point, Point) {
	if ctx.Less(b, a) {
		return b, a
	}
	return a, b
}

// SegmentsIntersection returns the single point at which s and t meet. It
// is only meaningful after SegmentsRelation returned Cross or a
// single-point Touch.
func (ctx Context) SegmentsIntersection(s, t Segment) (Point, bool) {
	if ctx.PointInSegment(s.A, t) {
		return s.A, true
	}
	if ctx.PointInSegment(s.B, t) {
		return s.B, true
	}
	if ctx.PointInSegment(t.A, s) {
		return t.A, true
	}
	if ctx.PointInSegment(t.B, s) {
		return t.B, true
	}

	x1, y1, x2, y2 := s.A.X, s.A.Y, s.B.X, s.B.Y
	x3, y3, x4, y4 := t.A.X, t.A.Y, t.B.X, t.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if Equal(denom, 0) {
		return Point{}, false
	}
	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4
	px := (a*(x3-x4) - (x1-x2)*b) / denom
	py := (a*(y3-y4) - (y1-y2)*b) / denom
	return Point{px, py}.snap(), true
}
