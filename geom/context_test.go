package geom_test

import (
	"testing"

	bo "github.com/tdewolff/bentleyottmann"
	"github.com/tdewolff/bentleyottmann/geom"
	"github.com/tdewolff/test"
)

func TestContextOrientation(t *testing.T) {
	ctx := geom.Context{}
	var tts = []struct {
		a, b, c geom.Point
		want    bo.Orientation
	}{
		{geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{2, 0}, bo.Collinear},
		{geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{1, 1}, bo.CounterClockwise},
		{geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{1, -1}, bo.Clockwise},
	}
	for _, tt := range tts {
		got := ctx.Orientation(tt.a, tt.b, tt.c)
		test.T(t, got, tt.want)
	}
}

func TestContextSegmentsRelation(t *testing.T) {
	ctx := geom.Context{}
	var tts = []struct {
		s, t geom.Segment
		want bo.Relation
	}{
		{
			geom.Segment{A: geom.Point{0, 0}, B: geom.Point{1, 0}},
			geom.Segment{A: geom.Point{2, 0}, B: geom.Point{3, 0}},
			bo.Disjoint,
		},
		{
			geom.Segment{A: geom.Point{0, 0}, B: geom.Point{2, 2}},
			geom.Segment{A: geom.Point{0, 2}, B: geom.Point{2, 0}},
			bo.Cross,
		},
		{
			geom.Segment{A: geom.Point{0, 0}, B: geom.Point{1, 0}},
			geom.Segment{A: geom.Point{1, 0}, B: geom.Point{1, 1}},
			bo.Touch,
		},
		{
			geom.Segment{A: geom.Point{0, 0}, B: geom.Point{2, 0}},
			geom.Segment{A: geom.Point{1, 0}, B: geom.Point{3, 0}},
			bo.Overlap,
		},
	}
	for _, tt := range tts {
		got := ctx.SegmentsRelation(tt.s, tt.t)
		test.T(t, got, tt.want)
	}
}

func TestContextSegmentsIntersection(t *testing.T) {
	ctx := geom.Context{}
	s := geom.Segment{A: geom.Point{0, 0}, B: geom.Point{2, 2}}
	tt := geom.Segment{A: geom.Point{0, 2}, B: geom.Point{2, 0}}
	p, ok := ctx.SegmentsIntersection(s, tt)
	test.That(t, ok)
	test.T(t, p, geom.Point{1, 1})
}

func TestContextPointInSegment(t *testing.T) {
	ctx := geom.Context{}
	s := geom.Segment{A: geom.Point{0, 0}, B: geom.Point{2, 0}}
	test.That(t, ctx.PointInSegment(geom.Point{1, 0}, s))
	test.That(t, !ctx.PointInSegment(geom.Point{1, 1}, s))
	test.That(t, !ctx.PointInSegment(geom.Point{3, 0}, s))
}

func TestContextLess(t *testing.T) {
	ctx := geom.Context{}
	test.That(t, ctx.Less(geom.Point{0, 0}, geom.Point{1, 0}))
	test.That(t, ctx.Less(geom.Point{0, 0}, geom.Point{0, 1}))
	test.That(t, !ctx.Less(geom.Point{1, 0}, geom.Point{0, 0}))
}
