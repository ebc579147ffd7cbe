package planar

import (
	"math"
)

// Offset returns the loop displaced by distance along its outward normal,
// with self-intersections of the raw offset detected and pruned. It returns
// nil when the offset degenerates, a loop or a collection of disjoint loops
// otherwise.
func Offset(loop *Loop, distance float64, opts OffsetOptions) Shape {
	raw := RawOffsets(loop, distance, opts)
	return resolveOffsets(raw, loop, distance, Ops())
}

// resolveOffsets cleans up the raw offset curve stream: broad-phase candidate
// pairing over a bounding-box index, exact narrow-phase intersection, split at
// the recorded points, pruning of fragments that ended up closer to the source
// boundary than the requested distance, and stitching of the survivors.
func resolveOffsets(raw []Curve, original *Loop, distance float64, ops CurveOps) Shape {
	if len(raw) == 0 {
		return nil
	}

	index := ops.NewSpatialIndex()
	for i, c := range raw {
		index.Insert(i, ops.BoundingBox(c))
	}

	pointsOn := make([][]Point, len(raw))
	found := false
	for i, c := range raw {
		for _, j := range index.QueryOverlapping(ops.BoundingBox(c)) {
			if j <= i {
				continue
			}
			zs := ops.IntersectCurves(c, raw[j], 10.0*Epsilon)
			for _, z := range zs.Points {
				atEndA := z.Pos.Same(c.Start()) || z.Pos.Same(c.End())
				atEndB := z.Pos.Same(raw[j].Start()) || z.Pos.Same(raw[j].End())
				if atEndA && atEndB {
					continue // an already-joined shared endpoint
				}
				found = true
				pointsOn[i] = append(pointsOn[i], z.Pos)
				pointsOn[j] = append(pointsOn[j], z.Pos)
			}
		}
	}

	if !found {
		l := NewLoop(raw)
		if !l.Closed() {
			return nil
		}
		if loopsIntersect(l, original, ops) {
			return nil // inverted offset folded back onto the source
		}
		return l
	}

	// split the implicated curves at a looser tolerance than detection
	frags := []Curve{}
	for i, c := range raw {
		if len(pointsOn[i]) == 0 {
			frags = append(frags, c)
			continue
		}
		frags = append(frags, ops.SplitAtPoints(c, pointsOn[i], PointEpsilon)...)
	}

	// prune self-intersection artifacts: fragments closer to the source
	// boundary than the requested distance
	limit := math.Abs(distance) - PruneEpsilon
	kept := []Curve{}
	for _, f := range frags {
		if loopDistance(original, curveMid(f), ops) < limit {
			continue
		}
		kept = append(kept, f)
	}

	loops := []*Loop{}
	for _, run := range SplitPaths(kept) {
		if len(run) < 2 {
			continue
		}
		l := NewLoop(run)
		if !l.Closed() {
			continue
		}
		loops = append(loops, l)
	}
	if len(loops) == 0 {
		return nil
	}
	if len(loops) == 1 {
		return loops[0]
	}
	shapes := make([]Shape, len(loops))
	for i, l := range loops {
		shapes[i] = l
	}
	return &LoopCollection{shapes}
}

// loopDistance returns the distance from p to the loop's boundary.
func loopDistance(l *Loop, p Point, ops CurveOps) float64 {
	d := math.Inf(1.0)
	for _, c := range l.Curves {
		d = math.Min(d, ops.DistanceToPoint(c, p))
	}
	return d
}

// loopsIntersect returns true when the boundaries of both loops meet.
func loopsIntersect(a, b *Loop, ops CurveOps) bool {
	for _, ca := range a.Curves {
		for _, cb := range b.Curves {
			if ops.IntersectCurves(ca, cb, PointEpsilon).Has() {
				return true
			}
		}
	}
	return false
}
