package bentleyottmann

func buildQueue[P comparable](ctx Context[P], segments []Segment[P]) *eventQueue[P] {
	q := newEventQueue[P](ctx, 2*len(segments))
	for i, s := range segments {
		left, right := newSegmentPair(ctx, s, i)
		q.push(left)
		q.push(right)
	}
	return q
}

func validateSegments[P comparable](segments []Segment[P], minCount int) error {
	if len(segments) < minCount {
		return &InvalidInputError{Kind: KindTooFewSegments, Index: -1}
	}
	for i, s := range segments {
		if s.A == s.B {
			return &InvalidInputError{Kind: KindDegenerateSegment, Index: i}
		}
	}
	return nil
}

// AnyIntersection reports whether any two distinct segments in segments
// meet at any point, stopping the sweep as soon as it knows the answer.
func AnyIntersection[P comparable](segments []Segment[P], ctx Context[P]) (bool, error) {
	if err := validateSegments(segments, 2); err != nil {
		return false, err
	}
	d := newDriver(ctx, buildQueue(ctx, segments), true)
	d.run()
	return 0 < len(d.result.toPairs()), nil
}

// AllIntersections runs the sweep to completion and reports, for every
// point where two or more input segments meet, the set of index pairs of
// the segments that do so there.
func AllIntersections[P comparable](segments []Segment[P], ctx Context[P]) (map[P][]Pair, error) {
	if err := validateSegments(segments, 2); err != nil {
		return nil, err
	}
	d := newDriver(ctx, buildQueue(ctx, segments), false)
	d.run()
	return d.result.toPairs(), nil
}

// ContourSelfIntersects reports whether the closed polygonal contour
// described by vertices (edges are consecutive pairs, cyclically) crosses,
// touches away from a shared endpoint, or collinearly overlaps itself.
// Sharing an endpoint between cyclically-adjacent edges is not itself a
// self-intersection; degenerate edges and three consecutive collinear
// vertices always are.
func ContourSelfIntersects[P comparable](vertices []P, ctx Context[P]) (bool, error) {
	n := len(vertices)
	if n < 3 {
		return false, &InvalidInputError{Kind: KindTooFewSegments, Index: -1}
	}

	segments := make([]Segment[P], n)
	for i, a := range vertices {
		b := vertices[(i+1)%n]
		segments[i] = Segment[P]{A: a, B: b}
		if a == b {
			return true, nil
		}
	}
	for i := range vertices {
		a, b, c := vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]
		if ctx.Orientation(a, b, c) == Collinear {
			return true, nil
		}
	}

	d := newDriver(ctx, buildQueue(ctx, segments), true)
	d.skipTouch = func(p P, lower, upper *Event[P]) bool {
		li, ui := lower.Indices(), upper.Indices()
		if len(li) != 1 || len(ui) != 1 {
			return false
		}
		i, j := li[0], ui[0]
		if j != (i+1)%n && i != (j+1)%n {
			return false
		}
		s, t := lower.Segment(), upper.Segment()
		return (p == s.A || p == s.B) && (p == t.A || p == t.B)
	}
	d.run()
	return 0 < len(d.result.toPairs()), nil
}
