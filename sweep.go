package bentleyottmann

// resultSet accumulates, for each point the sweep has visited, the indices
// of every original input segment witnessed to pass through it. It only
// ever grows: detectIntersection calls add, never remove.
type resultSet[P comparable] struct {
	points map[P]*indexSet
}

func newResultSet[P comparable]() *resultSet[P] {
	return &resultSet[P]{points: make(map[P]*indexSet)}
}

// add unions indices into the set recorded at p, returning true the first
// time that set reaches two or more distinct entries.
func (r *resultSet[P]) add(p P, indices []int) bool {
	set, ok := r.points[p]
	if !ok {
		set = &indexSet{}
		r.points[p] = set
	}
	before := len(set.idx)
	for _, i := range indices {
		set.add(i)
	}
	return before < 2 && 2 <= len(set.idx)
}

// toPairs expands every point with two or more witnessed indices into the
// unordered pairs AllIntersections reports.
func (r *resultSet[P]) toPairs() map[P][]Pair {
	out := make(map[P][]Pair, len(r.points))
	for p, set := range r.points {
		if len(set.idx) < 2 {
			continue
		}
		pairs := make([]Pair, 0, len(set.idx)*(len(set.idx)-1)/2)
		for i := 0; i < len(set.idx); i++ {
			for j := i + 1; j < len(set.idx); j++ {
				pairs = append(pairs, Pair{I: set.idx[i], J: set.idx[j]})
			}
		}
		out[p] = pairs
	}
	return out
}

// driver runs the sweep: it owns the queue, the status, and the result
// sink, and is discarded once its one call to run completes. A fresh driver
// is created per public-operation call, so concurrent calls never share
// mutable state.
type driver[P comparable] struct {
	ctx    Context[P]
	queue  *eventQueue[P]
	status *sweepStatus[P]
	result *resultSet[P]

	earlyExit bool
	cancel    bool

	// skipTouch, when set, suppresses recording (and any splitting) for a
	// Touch relation the caller considers benign, e.g. ContourSelfIntersects
	// ignoring the shared vertex between cyclically-adjacent edges.
	skipTouch func(p P, lower, upper *Event[P]) bool
}

func newDriver[P comparable](ctx Context[P], queue *eventQueue[P], earlyExit bool) *driver[P] {
	return &driver[P]{
		ctx:       ctx,
		queue:     queue,
		status:    newSweepStatus(ctx),
		result:    newResultSet[P](),
		earlyExit: earlyExit,
	}
}

func (d *driver[P]) run() {
	// atPoint holds the events popped so far at the current sweep point. Any
	// two of them belong to sub-segments meeting there, including a right
	// and a left endpoint that are never in the status at the same time.
	var atPoint []*Event[P]
	for 0 < d.queue.len() {
		if d.cancel {
			return
		}
		e := d.queue.pop()
		if 0 < len(atPoint) && atPoint[0].Start != e.Start {
			atPoint = atPoint[:0]
		}
		for _, other := range atPoint {
			if d.skipTouch == nil || !d.skipTouch(e.Start, other, e) {
				d.witnessPair(e.Start, other, e)
			}
		}
		atPoint = append(atPoint, e)
		if d.cancel {
			return
		}
		if e.IsLeft {
			d.status.insert(e)
			above := d.status.above(e)
			below := d.status.below(e)
			if above != nil {
				d.detectIntersection(e, above)
			}
			if d.cancel {
				return
			}
			if below != nil {
				d.detectIntersection(below, e)
			}
		} else {
			left := e.Opposite
			above := d.status.above(left)
			below := d.status.below(left)
			d.status.remove(left)
			if above != nil && below != nil {
				d.detectIntersection(below, above)
			}
			// A left event fused with another at queue-push (queue.go's
			// fuseIndex) never gets a status neighbour of its own to trigger
			// detectIntersection against; witness it directly here.
			if 1 < len(left.Indices()) {
				d.witness(left.Start, left)
				d.witness(left.End(), left)
			}
		}
	}
}

// witness records e's current indices at p, cancelling the sweep early if
// that newly makes p a genuine intersection and the driver is running in
// early-exit mode.
func (d *driver[P]) witness(p P, e *Event[P]) {
	if d.result.add(p, e.Indices()) && d.earlyExit {
		d.cancel = true
	}
}

func (d *driver[P]) witnessPair(p P, lower, upper *Event[P]) {
	becameIntersection := d.result.add(p, lower.Indices())
	becameIntersection = d.result.add(p, upper.Indices()) || becameIntersection
	if becameIntersection && d.earlyExit {
		d.cancel = true
	}
}

// splitInterior divides e at p if p is strictly interior to e's current
// body, pushing both halves' new events; it leaves e's own identity
// representing the shortened-to-p prefix, so no status update is needed.
func (d *driver[P]) splitInterior(e *Event[P], p P) {
	if p == e.Start || p == e.End() {
		return
	}
	newRight, newLeft := divide(e, p)
	d.queue.push(newRight)
	d.queue.push(newLeft)
}

// trimSuffix shortens e in place to [e.Start, q], pushing the discarded
// [q, e.End()] continuation onto the queue.
func (d *driver[P]) trimSuffix(e *Event[P], q P) {
	newRight, newLeft := divide(e, q)
	d.queue.push(newRight)
	d.queue.push(newLeft)
}

// trimPrefix shortens e's own identity to the discarded [e.Start, p]
// prefix and returns the continuation starting at p (possibly an event
// already pending in the queue, if fusion applied).
func (d *driver[P]) trimPrefix(e *Event[P], p P) *Event[P] {
	newRight, newLeft := divide(e, p)
	d.queue.push(newRight)
	return d.queue.push(newLeft)
}

// detectIntersection tests the current bodies of lower and upper, two left
// events adjacent in the status with lower below upper, and reacts
// according to their geometric relation.
func (d *driver[P]) detectIntersection(lower, upper *Event[P]) {
	if d.cancel {
		return
	}
	s, t := lower.Segment(), upper.Segment()
	switch d.ctx.SegmentsRelation(s, t) {
	case Disjoint:
		return
	case Cross:
		p, ok := d.ctx.SegmentsIntersection(s, t)
		if !ok {
			return
		}
		d.splitInterior(lower, p)
		d.splitInterior(upper, p)
		d.witnessPair(p, lower, upper)
	case Touch:
		p, ok := d.ctx.SegmentsIntersection(s, t)
		if !ok {
			return
		}
		if d.skipTouch != nil && d.skipTouch(p, lower, upper) {
			return
		}
		if p != s.A && p != s.B {
			d.splitInterior(lower, p)
		}
		if p != t.A && p != t.B {
			d.splitInterior(upper, p)
		}
		d.witnessPair(p, lower, upper)
	case Overlap:
		d.handleOverlap(lower, upper)
	}
}

// handleOverlap trims lower and upper down to their common collinear
// sub-segment [p, q], fuses their events there so the overlap is carried
// by a single pair of events, and records the witness at both p and q.
func (d *driver[P]) handleOverlap(lower, upper *Event[P]) {
	switch {
	case d.ctx.Less(lower.End(), upper.End()):
		d.trimSuffix(upper, lower.End())
	case d.ctx.Less(upper.End(), lower.End()):
		d.trimSuffix(lower, upper.End())
	}

	var mid *Event[P]
	switch {
	case lower.Start == upper.Start:
		fuse(lower, upper)
		mid = lower
	case d.ctx.Less(lower.Start, upper.Start):
		mid = d.trimPrefix(lower, upper.Start)
		fuse(mid, upper)
	default:
		mid = d.trimPrefix(upper, lower.Start)
		fuse(mid, lower)
	}
	d.witness(mid.Start, mid)
	d.witness(mid.End(), mid)
}
