package planar

import (
	"fmt"
)

// Segment is a maximal curve run between two topological nodes: accepted
// crossing points or common sub-curve endpoints.
type Segment struct {
	Curves []Curve
}

func (s Segment) Start() Point {
	return s.Curves[0].Start()
}

func (s Segment) End() Point {
	return s.Curves[len(s.Curves)-1].End()
}

// Mid returns a point in the middle of the run, used to classify the whole
// segment as inside or outside the other loop. A segment never crosses the
// other loop, so one sample decides for the run.
func (s Segment) Mid() Point {
	return s.Curves[len(s.Curves)/2].Pos(0.5)
}

// Reverse returns the segment traversed in the opposite direction.
func (s Segment) Reverse() Segment {
	cs := make([]Curve, len(s.Curves))
	for i, c := range s.Curves {
		cs[len(s.Curves)-1-i] = c.Reverse()
	}
	return Segment{cs}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v--%v (%d curves)", s.Start(), s.End(), len(s.Curves))
}

// SegmentPair pairs the segment of either loop that runs between the same two
// nodes. Same marks a pair whose segments lie exactly on both boundaries.
type SegmentPair struct {
	First, Second Segment
	Same          bool
}

////////////////////////////////////////////////////////////////

// segmentIntersections computes and pairs the topological segments between
// two closed loops. It returns nil when the loops have no real crossing and no
// common boundary, in which case the caller must resolve the configuration
// with a containment probe. When the loops are identical every returned pair
// is tagged Same.
func segmentIntersections(first, second *Loop, ops CurveOps) []SegmentPair {
	points := []Point{}
	commons := []CommonSegment{}
	onFirst := make([][]Point, len(first.Curves))
	onSecond := make([][]Point, len(second.Curves))

	addPoint := func(p Point) Point {
		for _, q := range points {
			if q.Same(p) {
				return q
			}
		}
		points = append(points, p)
		return p
	}

	for i, ca := range first.Curves {
		for j, cb := range second.Curves {
			zs := ops.IntersectCurves(ca, cb, PointEpsilon)
			for _, z := range zs.Points {
				p := addPoint(z.Pos)
				onFirst[i] = append(onFirst[i], p)
				onSecond[j] = append(onSecond[j], p)
			}
			for _, c := range zs.Common {
				p0 := addPoint(c.P0)
				p1 := addPoint(c.P1)
				onFirst[i] = append(onFirst[i], p0, p1)
				onSecond[j] = append(onSecond[j], p0, p1)
				dup := false
				for _, c2 := range commons {
					if c2.Matches(p0, p1) {
						dup = true
						break
					}
				}
				if !dup {
					commons = append(commons, CommonSegment{p0, p1})
				}
			}
		}
	}
	if len(points) < 2 && len(commons) == 0 {
		return nil
	}

	// split both loops at the points known to lie on their curves
	frags1 := splitLoopCurves(first, onFirst, ops)
	frags2 := splitLoopCurves(second, onSecond, ops)

	// discard tangential touches: a point is no crossing if every fragment of
	// first that touches it has its midpoint on the same side of second
	isCommonEnd := func(p Point) bool {
		for _, c := range commons {
			if c.P0.Same(p) || c.P1.Same(p) {
				return true
			}
		}
		return false
	}
	crossings := []Point{}
	for _, p := range points {
		if isCommonEnd(p) {
			crossings = append(crossings, p)
			continue
		}
		count, inside, outside := 0, 0, 0
		for _, f := range frags1 {
			touches := f.Start().Same(p) || f.End().Same(p)
			if !touches {
				continue
			}
			count++
			if ops.Inside(second, curveMid(f)) {
				inside++
			} else {
				outside++
			}
		}
		if count%2 != 0 {
			panic(fmt.Sprintf("bug: odd fragment count %d at intersection point %v", count, p))
		}
		if 0 < inside && 0 < outside {
			crossings = append(crossings, p)
		}
	}
	if len(commons) == 0 && len(crossings) < 2 {
		return nil
	}

	// canonicalize the start position of both fragment lists
	if 0 < len(commons) {
		frags1 = rotateToCommon(frags1, commons[0])
		frags2 = rotateToCommon(frags2, commons[0])
	} else {
		frags1 = rotateToPoint(frags1, crossings[0])
		frags2 = rotateToPoint(frags2, crossings[0])
	}

	// group fragments into maximal runs between nodes
	isNode := func(p Point) bool {
		for _, q := range crossings {
			if q.Same(p) {
				return true
			}
		}
		return isCommonEnd(p)
	}
	segs1 := groupSegments(frags1, isNode)
	segs2 := groupSegments(frags2, isNode)
	if len(segs1) != len(segs2) {
		panic(fmt.Sprintf("bug: segment count mismatch %d != %d", len(segs1), len(segs2)))
	}

	// align the traversal direction of the second sequence with the first
	if !segs1[0].End().Same(segs2[0].End()) || !segs1[0].Start().Same(segs2[0].Start()) {
		n := len(segs2)
		rev := make([]Segment, n)
		if 0 < len(commons) {
			// anchored at the same segment: index 0 keeps its place
			for i := range segs2 {
				rev[i] = segs2[(n-i)%n].Reverse()
			}
		} else {
			// anchored at the same start node
			for i, s := range segs2 {
				rev[n-1-i] = s.Reverse()
			}
		}
		segs2 = rev
	}

	// a pair is Same when it lies on both boundaries; endpoints alone cannot
	// decide since a real segment may span the same two nodes as a common run
	onBoundary := func(l *Loop, p Point) bool {
		for _, c := range l.Curves {
			if ops.DistanceToPoint(c, p) < PointEpsilon {
				return true
			}
		}
		return false
	}
	pairs := make([]SegmentPair, len(segs1))
	for i := range segs1 {
		same := false
		if 0 < len(commons) {
			same = onBoundary(second, segs1[i].Mid()) && onBoundary(first, segs2[i].Mid())
		}
		pairs[i] = SegmentPair{segs1[i], segs2[i], same}
	}
	return pairs
}

// splitLoopCurves splits every curve of the loop at the points on it and
// returns the flat fragment list in loop order.
func splitLoopCurves(l *Loop, points [][]Point, ops CurveOps) []Curve {
	frags := []Curve{}
	for i, c := range l.Curves {
		frags = append(frags, ops.SplitAtPoints(c, points[i], PointEpsilon)...)
	}
	return frags
}

// rotateToCommon rotates the fragment list to begin at the fragment matching
// the common sub-curve, in either direction.
func rotateToCommon(frags []Curve, common CommonSegment) []Curve {
	for i, f := range frags {
		if common.Matches(f.Start(), f.End()) {
			return append(append([]Curve{}, frags[i:]...), frags[:i]...)
		}
	}
	panic(fmt.Sprintf("bug: no fragment matches common segment %v--%v", common.P0, common.P1))
}

// rotateToPoint rotates the fragment list to begin at the fragment starting
// at the given node.
func rotateToPoint(frags []Curve, p Point) []Curve {
	for i, f := range frags {
		if f.Start().Same(p) {
			return append(append([]Curve{}, frags[i:]...), frags[:i]...)
		}
	}
	panic(fmt.Sprintf("bug: no fragment starts at crossing point %v", p))
}

// groupSegments accumulates fragments into runs that end at nodes. The list
// must begin at a node.
func groupSegments(frags []Curve, isNode func(Point) bool) []Segment {
	segs := []Segment{}
	cur := []Curve{}
	for _, f := range frags {
		cur = append(cur, f)
		if isNode(f.End()) {
			segs = append(segs, Segment{cur})
			cur = []Curve{}
		}
	}
	if 0 < len(cur) {
		panic("bug: fragment run does not end at a node")
	}
	return segs
}

// allSame returns true when every pair is tagged Same, ie. the loops are
// identical.
func allSame(pairs []SegmentPair) bool {
	for _, pair := range pairs {
		if !pair.Same {
			return false
		}
	}
	return 0 < len(pairs)
}
