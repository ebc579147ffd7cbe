package planar

import (
	"math"
)

// LineJoin selects the geometry bridging the gap between adjacent offset
// curves.
type LineJoin int

const (
	RoundJoin LineJoin = iota
	BevelJoin
	MiterJoin
)

// OffsetOptions configures offsetting.
type OffsetOptions struct {
	LineJoin LineJoin
}

// OffsetCurvePair is one curve's offset result: either a proper offset curve
// or a collapsed marker that carries only its two endpoints.
type OffsetCurvePair struct {
	Offset    Curve
	Collapsed bool
	P0, P1    Point
	Original  Curve
}

// RawOffsets offsets every curve of the loop by distance along its outward
// normal and joins consecutive results, returning the ordered curve list
// before self-intersection cleanup. Positive distance always grows the shape:
// the sign is corrected for clockwise loops so outward is
// orientation-independent to the caller.
func RawOffsets(loop *Loop, distance float64, opts OffsetOptions) []Curve {
	if len(loop.Curves) == 0 || Equal(distance, 0.0) {
		return append([]Curve{}, loop.Curves...)
	}
	ops := Ops()
	d := distance
	if !loop.CCW() {
		d = -d
	}

	type item struct {
		c    Curve
		orig Curve
	}
	items := []item{}
	for _, c := range loop.Curves {
		pair := offsetCurve(c, d)
		if pair.Collapsed {
			// a collapsed offset contributes a connecting segment only when
			// its endpoints differ
			if !pair.P0.Same(pair.P1) {
				items = append(items, item{Line{pair.P0, pair.P1}, c})
			}
			continue
		}
		items = append(items, item{pair.Offset, c})
	}
	if len(items) == 0 {
		return nil
	}

	res := make([]Curve, len(items))
	for i := range items {
		res[i] = items[i].c
	}
	bridges := make([][]Curve, len(items))
	for i := range items {
		j := (i + 1) % len(items)
		cur, next := res[i], res[j]
		if cur.End().Sub(next.Start()).Length() < JoinEpsilon {
			continue // already touching
		}
		vertex := items[i].orig.End() // shared original vertex

		if zs := ops.IntersectCurves(cur, next, PointEpsilon); 0 < len(zs.Points) {
			// genuine intersection: trim both, choosing the candidate closest
			// to the original curve's endpoint
			best := zs.Points[0]
			for _, z := range zs.Points[1:] {
				if z.Pos.Sub(vertex).Length() < best.Pos.Sub(vertex).Length() {
					best = z
				}
			}
			head, _ := cur.SplitAt(best.TA)
			_, tail := next.SplitAt(best.TB)
			res[i], res[j] = head, tail
			continue
		}
		bridges[i] = joinOffsets(cur, next, vertex, d, opts.LineJoin)
	}

	out := []Curve{}
	for i := range res {
		out = append(out, res[i])
		out = append(out, bridges[i]...)
	}
	return out
}

// offsetCurve offsets a single curve by d along the normal right of its
// direction of travel (outward for a CCW loop). Lines and circular arcs are
// exact; elliptical arcs adjust both radii; Beziers displace the control
// polygon (Tiller-Hanson). An arc whose radius vanishes collapses to a marker.
func offsetCurve(c Curve, d float64) OffsetCurvePair {
	switch t := c.(type) {
	case Line:
		n := t.P1.Sub(t.P0).Rot90CW().Norm(d)
		return OffsetCurvePair{Offset: Line{t.P0.Add(n), t.P1.Add(n)}, Original: c}
	case Arc:
		// the outward normal of a CCW sweep points away from the center
		s := 1.0
		if !t.CCW() {
			s = -1.0
		}
		rx, ry := t.Rx+s*d, t.Ry+s*d
		if rx < PointEpsilon || ry < PointEpsilon {
			return OffsetCurvePair{Collapsed: true, P0: t.Center, P1: t.Center, Original: c}
		}
		return OffsetCurvePair{Offset: Arc{t.Center, rx, ry, t.Phi, t.Theta0, t.Theta1}, Original: c}
	case QuadBezier:
		ps := tillerHanson([]Point{t.P0, t.P1, t.P2}, d)
		return OffsetCurvePair{Offset: QuadBezier{ps[0], ps[1], ps[2]}, Original: c}
	case CubicBezier:
		ps := tillerHanson([]Point{t.P0, t.P1, t.P2, t.P3}, d)
		return OffsetCurvePair{Offset: CubicBezier{ps[0], ps[1], ps[2], ps[3]}, Original: c}
	}

	// unknown curve kind: displace the endpoints along the end normals
	n0 := c.Deriv(0.0).Rot90CW().Norm(d)
	n1 := c.Deriv(1.0).Rot90CW().Norm(d)
	return OffsetCurvePair{Offset: Line{c.Start().Add(n0), c.End().Add(n1)}, Original: c}
}

// tillerHanson displaces every control polygon leg by d along its normal and
// intersects consecutive legs for the interior control points.
func tillerHanson(ps []Point, d float64) []Point {
	type leg struct {
		p0, p1 Point
	}
	legs := []leg{}
	for i := 1; i < len(ps); i++ {
		if ps[i].Equals(ps[i-1]) {
			continue // zero-length leg carries no direction
		}
		n := ps[i].Sub(ps[i-1]).Rot90CW().Norm(d)
		legs = append(legs, leg{ps[i-1].Add(n), ps[i].Add(n)})
	}
	if len(legs) == 0 {
		return ps
	}

	out := make([]Point, len(ps))
	out[0] = legs[0].p0
	out[len(ps)-1] = legs[len(legs)-1].p1
	for i := 1; i < len(ps)-1; i++ {
		k := i
		if len(legs) <= k {
			k = len(legs) - 1
		}
		prev, cur := legs[k-1], legs[k]
		if m, ok := intersectRays(prev.p0, prev.p1.Sub(prev.p0), cur.p0, cur.p1.Sub(cur.p0)); ok {
			out[i] = m
		} else {
			out[i] = prev.p1
		}
	}
	return out
}

// intersectRays intersects the infinite lines p+s*dp and q+u*dq.
func intersectRays(p, dp, q, dq Point) (Point, bool) {
	div := dp.PerpDot(dq)
	if math.Abs(div) < Epsilon*math.Max(dp.Length()*dq.Length(), 1.0) {
		return Point{}, false
	}
	s := q.Sub(p).PerpDot(dq) / div
	return p.Add(dp.Mul(s)), true
}

// joinOffsets bridges the gap between two consecutive offset curves around the
// shared original vertex.
func joinOffsets(cur, next Curve, vertex Point, d float64, join LineJoin) []Curve {
	p0, p1 := cur.End(), next.Start()
	switch join {
	case RoundJoin:
		n0, n1 := p0.Sub(vertex), p1.Sub(vertex)
		theta0 := n0.Angle()
		theta1 := theta0 + n0.AngleBetween(n1)
		r := math.Abs(d)
		return []Curve{Arc{vertex, r, r, 0.0, theta0, theta1}}
	case MiterJoin:
		t0 := cur.Deriv(1.0)
		t1 := next.Deriv(0.0)
		if m, ok := intersectRays(p0, t0, p1, t1); ok {
			return []Curve{Line{p0, m}, Line{m, p1}}
		}
		// parallel tangents fall back to bevel
		return []Curve{Line{p0, p1}}
	default: // BevelJoin
		return []Curve{Line{p0, p1}}
	}
}
