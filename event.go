package bentleyottmann

import "sort"

// indexSet is a small ordered set of input-segment indices. An event and
// its current Opposite always point at the same indexSet: both ends of one
// current sub-segment must agree on which original inputs it represents.
// divide and fuse are the only places that ever reassign which indexSet an
// event points at.
type indexSet struct {
	idx []int
}

func newIndexSet(i int) *indexSet {
	return &indexSet{idx: []int{i}}
}

func (s *indexSet) clone() *indexSet {
	idx := make([]int, len(s.idx))
	copy(idx, s.idx)
	return &indexSet{idx: idx}
}

func (s *indexSet) add(i int) {
	pos := sort.SearchInts(s.idx, i)
	if pos < len(s.idx) && s.idx[pos] == i {
		return
	}
	s.idx = append(s.idx, 0)
	copy(s.idx[pos+1:], s.idx[pos:])
	s.idx[pos] = i
}

func (s *indexSet) addAll(other *indexSet) {
	for _, i := range other.idx {
		s.add(i)
	}
}

func (s *indexSet) min() int {
	m := s.idx[0]
	for _, i := range s.idx[1:] {
		if i < m {
			m = i
		}
	}
	return m
}

// Event is one endpoint of one current sub-segment during the sweep. Left
// events are the ones carried in the sweep status; every event, left or
// right, carries a pointer to its Opposite and to the indexSet describing
// which original input segments its sub-segment currently stands in for.
type Event[P comparable] struct {
	Start  P
	IsLeft bool

	Opposite *Event[P]
	segs     *indexSet

	node *statusNode[P] // non-nil while a left event sits in the sweep status
}

// End returns the other endpoint of the sub-segment e currently represents.
func (e *Event[P]) End() P {
	return e.Opposite.Start
}

// Indices returns, in ascending order, the indices of the original input
// segments e currently stands in for. Its length is 1 unless a prior
// Overlap fused two or more segments' events together.
func (e *Event[P]) Indices() []int {
	return e.segs.idx
}

// Segment returns the sub-segment e currently represents, oriented from its
// left endpoint to its right one.
func (e *Event[P]) Segment() Segment[P] {
	if e.IsLeft {
		return Segment[P]{A: e.Start, B: e.End()}
	}
	return Segment[P]{A: e.End(), B: e.Start}
}

// newSegmentPair builds the paired left/right events for one input
// segment, assigning its endpoints to left/right using ctx.Less.
func newSegmentPair[P comparable](ctx Context[P], s Segment[P], index int) (left, right *Event[P]) {
	a, b := s.A, s.B
	if !ctx.Less(a, b) {
		a, b = b, a
	}
	segs := newIndexSet(index)
	left = &Event[P]{Start: a, IsLeft: true, segs: segs}
	right = &Event[P]{Start: b, IsLeft: false, segs: segs}
	left.Opposite = right
	right.Opposite = left
	return left, right
}

// divide splits e's current sub-segment at point, which must lie strictly
// between e.Start and e.End(). After divide, e itself (already active in
// the status, if it is there at all) keeps representing [e.Start, point]
// unchanged in identity; the returned left event represents [point,
// original e.End()]. The caller is responsible for pushing both returned
// events into the event queue; e and its original Opposite need no
// re-insertion anywhere, since neither one's identity changed.
func divide[P comparable](e *Event[P], point P) (newRight, newLeft *Event[P]) {
	oldRight := e.Opposite

	newRight = &Event[P]{Start: point, IsLeft: false, segs: e.segs}
	newLeft = &Event[P]{Start: point, IsLeft: true, segs: e.segs.clone()}

	newRight.Opposite = e
	e.Opposite = newRight

	newLeft.Opposite = oldRight
	oldRight.Opposite = newLeft
	oldRight.segs = newLeft.segs

	return newRight, newLeft
}

// fuse merges v's sub-segment into u's. u and v must already share the same
// Start and the same End(); afterwards u, v and their two current Opposite
// events all reference one merged indexSet.
func fuse[P comparable](u, v *Event[P]) {
	if u.segs == v.segs {
		return
	}
	merged := u.segs
	merged.addAll(v.segs)
	u.Opposite.segs = merged
	v.segs = merged
	v.Opposite.segs = merged
}
