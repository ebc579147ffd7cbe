package planar

// Inclusion selects whether the parts of one loop lying inside the other are
// kept or removed from the Boolean result.
type Inclusion int

const (
	Keep Inclusion = iota
	Remove
)

// BoolConfig configures segment selection for a Boolean operation: what to do
// with segments of the first loop inside the second, and with segments of the
// second loop inside the first.
type BoolConfig struct {
	FirstInside, SecondInside Inclusion
}

// Containment describes two operand loops that have no real intersection: they
// are identical, one lies inside the other, or they are disjoint. The facade
// interprets it per operation.
type Containment struct {
	Identical     bool
	FirstInSecond bool
	SecondInFirst bool
}

// segmentsUnknown is the accumulator state when the number of selected
// segments at the last node cannot classify a following boundary-coincident
// run.
const segmentsUnknown = -1

// assembleState is the accumulator threaded through the fold over paired
// segments. segmentsIn is the number of segments selected at the previous
// decision (0, 1, 2 or unknown); lastWasSame buffers boundary-coincident runs
// whose ownership is still ambiguous.
type assembleState struct {
	segmentsIn   int
	lastWasSame  []Curve
	out          []Curve
	firstRealOut int // selected count of the first non-Same pair, for the circular wrap
	sawReal      bool
}

// booleanAssemble selects and merges segments of both loops into an output
// shape. When the loops do not intersect it returns a nil shape and the
// containment configuration instead.
func booleanAssemble(first, second *Loop, cfg BoolConfig, ops CurveOps) (Shape, *Containment) {
	pairs := segmentIntersections(first, second, ops)
	if pairs == nil {
		// no real crossing: probe the midpoint of each loop's first curve
		// against the other loop
		return nil, &Containment{
			FirstInSecond: ops.Inside(second, curveMid(first.Curves[0])),
			SecondInFirst: ops.Inside(first, curveMid(second.Curves[0])),
		}
	}
	if allSame(pairs) {
		return nil, &Containment{Identical: true}
	}

	st := assembleState{segmentsIn: segmentsUnknown}
	for _, pair := range pairs {
		st = assembleStep(st, pair, first, second, cfg, ops)
	}

	// a trailing deferred run resolves against the first decision of the walk,
	// since the pair sequence is circular
	if 0 < len(st.lastWasSame) && st.sawReal && st.firstRealOut == 1 {
		st.out = append(st.out, st.lastWasSame...)
	}

	loops := []*Loop{}
	for _, run := range SplitPaths(st.out) {
		if len(run) == 0 {
			continue
		}
		l := NewLoop(run)
		if !l.Closed() {
			panic("bug: boolean assembly produced an open run")
		}
		loops = append(loops, l)
	}
	if len(loops) == 0 {
		return nil, nil
	}
	return organizeLoops(loops), nil
}

// assembleStep advances the accumulator by one segment pair.
//
// A segment lying exactly on both boundaries cannot be classified by a local
// inside/outside test; its ownership is inferred transitively from the nearest
// unambiguous neighboring decision. One selected segment at the adjacent node
// means the shared run continues the result boundary; zero or two mean the
// boundary does not pass (or passes on both sides and the run is an interior
// seam), so the run is dropped.
func assembleStep(st assembleState, pair SegmentPair, first, second *Loop, cfg BoolConfig, ops CurveOps) assembleState {
	if pair.Same {
		switch st.segmentsIn {
		case 1:
			st.out = append(st.out, pair.First.Curves...)
		case 0, 2:
			st.segmentsIn = segmentsUnknown
		default:
			st.lastWasSame = append(st.lastWasSame, pair.First.Curves...)
		}
		return st
	}

	firstSelected := selectSegment(ops.Inside(second, pair.First.Mid()), cfg.FirstInside)
	secondSelected := selectSegment(ops.Inside(first, pair.Second.Mid()), cfg.SecondInside)
	segmentsOut := 0
	if firstSelected {
		segmentsOut++
	}
	if secondSelected {
		segmentsOut++
	}
	if !st.sawReal {
		st.sawReal = true
		st.firstRealOut = segmentsOut
	}

	// a single selected segment resolves a deferred ambiguous overlap
	if segmentsOut == 1 && st.segmentsIn == segmentsUnknown && 0 < len(st.lastWasSame) {
		st.out = append(st.out, st.lastWasSame...)
	}
	if firstSelected {
		st.out = append(st.out, pair.First.Curves...)
	}
	if secondSelected {
		if firstSelected {
			// both span the same nodes: reverse the second so the partial
			// paths concatenate into a closed run
			st.out = append(st.out, pair.Second.Reverse().Curves...)
		} else {
			st.out = append(st.out, pair.Second.Curves...)
		}
	}

	st.lastWasSame = nil
	st.segmentsIn = segmentsOut
	return st
}

func selectSegment(inside bool, rule Inclusion) bool {
	if rule == Keep {
		return inside
	}
	return !inside
}
