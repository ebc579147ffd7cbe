package planar

import (
	"fmt"
	"math"
)

// Intersection is a point intersection between two curves, with the position
// and the parameters on either curve.
type Intersection struct {
	Pos    Point
	TA, TB float64
}

func (z Intersection) String() string {
	return fmt.Sprintf("pos=%v ta=%g tb=%g", z.Pos, z.TA, z.TB)
}

// CommonSegment is a sub-curve run shared exactly by both curves, given by
// its two endpoints.
type CommonSegment struct {
	P0, P1 Point
}

// Matches returns true if the segment runs between a and b in either
// direction.
func (c CommonSegment) Matches(a, b Point) bool {
	return c.P0.Same(a) && c.P1.Same(b) || c.P0.Same(b) && c.P1.Same(a)
}

// CurveIntersections aggregates the point intersections and fully-overlapping
// common sub-curves between two curves.
type CurveIntersections struct {
	Points []Intersection
	Common []CommonSegment
}

func (zs CurveIntersections) Has() bool {
	return 0 < len(zs.Points) || 0 < len(zs.Common)
}

func (zs *CurveIntersections) add(pos Point, ta, tb float64) {
	for _, z := range zs.Points {
		if z.Pos.Same(pos) {
			return
		}
	}
	zs.Points = append(zs.Points, Intersection{pos, ta, tb})
}

func (zs *CurveIntersections) addCommon(p0, p1 Point) {
	if p0.Same(p1) {
		return
	}
	for _, c := range zs.Common {
		if c.Matches(p0, p1) {
			return
		}
	}
	zs.Common = append(zs.Common, CommonSegment{p0, p1})
}

// IntersectCurves intersects curves a and b at tolerance tol and returns the
// point intersections and any common sub-curves. Analytic routines cover
// line-line (including collinear overlaps), line-Bezier, line-arc and
// circle-circle pairs; identical-trace pairs report a common segment; all
// remaining pairs go through polyline subdivision with parameters refined on
// the exact curves.
func IntersectCurves(a, b Curve, tol float64) CurveIntersections {
	var zs CurveIntersections
	switch ca := a.(type) {
	case Line:
		switch cb := b.(type) {
		case Line:
			intersectLineLine(&zs, ca, cb, tol)
		case QuadBezier:
			intersectLineQuad(&zs, ca, cb)
		case CubicBezier:
			intersectLineCube(&zs, ca, cb)
		case Arc:
			intersectLineArc(&zs, ca, cb)
		default:
			intersectGeneric(&zs, a, b, tol)
		}
	case Arc:
		switch cb := b.(type) {
		case Line:
			swapped := IntersectCurves(b, a, tol)
			return swapAB(swapped)
		case Arc:
			intersectArcArc(&zs, ca, cb, tol)
		default:
			intersectGeneric(&zs, a, b, tol)
		}
	case QuadBezier:
		if cb, ok := b.(Line); ok {
			swapped := IntersectCurves(cb, a, tol)
			return swapAB(swapped)
		}
		if cb, ok := b.(QuadBezier); ok && sameQuad(ca, cb, tol) {
			zs.addCommon(ca.P0, ca.P2)
			return zs
		}
		intersectGeneric(&zs, a, b, tol)
	case CubicBezier:
		if cb, ok := b.(Line); ok {
			swapped := IntersectCurves(cb, a, tol)
			return swapAB(swapped)
		}
		if cb, ok := b.(CubicBezier); ok && sameCube(ca, cb, tol) {
			zs.addCommon(ca.P0, ca.P3)
			return zs
		}
		intersectGeneric(&zs, a, b, tol)
	default:
		intersectGeneric(&zs, a, b, tol)
	}
	return zs
}

func swapAB(zs CurveIntersections) CurveIntersections {
	for i := range zs.Points {
		zs.Points[i].TA, zs.Points[i].TB = zs.Points[i].TB, zs.Points[i].TA
	}
	return zs
}

func sameQuad(a, b QuadBezier, tol float64) bool {
	fwd := a.P0.Same(b.P0) && a.P1.Same(b.P1) && a.P2.Same(b.P2)
	rev := a.P0.Same(b.P2) && a.P1.Same(b.P1) && a.P2.Same(b.P0)
	return fwd || rev
}

func sameCube(a, b CubicBezier, tol float64) bool {
	fwd := a.P0.Same(b.P0) && a.P1.Same(b.P1) && a.P2.Same(b.P2) && a.P3.Same(b.P3)
	rev := a.P0.Same(b.P3) && a.P1.Same(b.P2) && a.P2.Same(b.P1) && a.P3.Same(b.P0)
	return fwd || rev
}

////////////////////////////////////////////////////////////////

func intersectLineLine(zs *CurveIntersections, a, b Line, tol float64) {
	da := a.P1.Sub(a.P0)
	db := b.P1.Sub(b.P0)
	div := da.PerpDot(db)
	if math.Abs(div) < Epsilon*math.Max(da.Length()*db.Length(), 1.0) {
		// parallel
		if tol < math.Abs(da.Norm(1.0).PerpDot(b.P0.Sub(a.P0))) {
			return
		}
		// collinear, project onto the direction of a
		dir := da.Norm(1.0)
		pa0, pa1 := 0.0, da.Length()
		pb0 := b.P0.Sub(a.P0).Dot(dir)
		pb1 := b.P1.Sub(a.P0).Dot(dir)
		lo := math.Max(math.Min(pa0, pa1), math.Min(pb0, pb1))
		hi := math.Min(math.Max(pa0, pa1), math.Max(pb0, pb1))
		if hi-lo > tol {
			zs.addCommon(a.P0.Add(dir.Mul(lo)), a.P0.Add(dir.Mul(hi)))
		} else if hi-lo > -tol {
			mid := (lo + hi) / 2.0
			pos := a.P0.Add(dir.Mul(mid))
			ta, _ := nearestParam(a, pos)
			tb, _ := nearestParam(b, pos)
			zs.add(pos, ta, tb)
		}
		return
	}

	ta := db.PerpDot(a.P0.Sub(b.P0)) / div
	tb := da.PerpDot(a.P0.Sub(b.P0)) / div
	if Interval(ta, 0.0, 1.0) && Interval(tb, 0.0, 1.0) {
		zs.add(a.P0.Interpolate(a.P1, ta), ta, tb)
	}
}

// see https://www.particleincell.com/2013/cubic-line-intersection/
func intersectLineQuad(zs *CurveIntersections, l Line, q QuadBezier) {
	// write line as A.X = bias
	A := Point{l.P1.Y - l.P0.Y, l.P0.X - l.P1.X}
	bias := l.P0.Dot(A)

	a := A.Dot(q.P0.Sub(q.P1.Mul(2.0)).Add(q.P2))
	b := A.Dot(q.P1.Sub(q.P0).Mul(2.0))
	c := A.Dot(q.P0) - bias

	r0, r1 := solveQuadraticFormula(a, b, c)
	horizontal := math.Abs(l.P1.Y-l.P0.Y) <= math.Abs(l.P1.X-l.P0.X)
	for _, root := range []float64{r0, r1} {
		if math.IsNaN(root) || !Interval(root, 0.0, 1.0) {
			continue
		}
		pos := q.Pos(root)
		var s float64
		if horizontal {
			s = (pos.X - l.P0.X) / (l.P1.X - l.P0.X)
		} else {
			s = (pos.Y - l.P0.Y) / (l.P1.Y - l.P0.Y)
		}
		if Interval(s, 0.0, 1.0) {
			zs.add(pos, s, root)
		}
	}
}

// see https://www.particleincell.com/2013/cubic-line-intersection/
func intersectLineCube(zs *CurveIntersections, l Line, q CubicBezier) {
	A := Point{l.P1.Y - l.P0.Y, l.P0.X - l.P1.X}
	bias := l.P0.Dot(A)

	a := A.Dot(q.P3.Sub(q.P0).Add(q.P1.Mul(3.0)).Sub(q.P2.Mul(3.0)))
	b := A.Dot(q.P0.Mul(3.0).Sub(q.P1.Mul(6.0)).Add(q.P2.Mul(3.0)))
	c := A.Dot(q.P1.Mul(3.0).Sub(q.P0.Mul(3.0)))
	d := A.Dot(q.P0) - bias

	r0, r1, r2 := solveCubicFormula(a, b, c, d)
	horizontal := math.Abs(l.P1.Y-l.P0.Y) <= math.Abs(l.P1.X-l.P0.X)
	for _, root := range []float64{r0, r1, r2} {
		if math.IsNaN(root) || !Interval(root, 0.0, 1.0) {
			continue
		}
		pos := q.Pos(root)
		var s float64
		if horizontal {
			s = (pos.X - l.P0.X) / (l.P1.X - l.P0.X)
		} else {
			s = (pos.Y - l.P0.Y) / (l.P1.Y - l.P0.Y)
		}
		if Interval(s, 0.0, 1.0) {
			zs.add(pos, s, root)
		}
	}
}

// arcParamAt returns the parameter of the angle theta on the arc, or false
// when theta lies outside the sweep.
func arcParamAt(c Arc, theta float64) (float64, bool) {
	const angEpsilon = 1e-9
	sweep := c.Theta1 - c.Theta0
	if Equal(sweep, 0.0) {
		if Equal(angleNorm(theta-c.Theta0), 0.0) {
			return 0.0, true
		}
		return 0.0, false
	}
	var dt float64
	if 0.0 < sweep {
		dt = angleNorm(theta - c.Theta0)
	} else {
		dt = angleNorm(c.Theta0 - theta)
		sweep = -sweep
	}
	if dt <= sweep+angEpsilon {
		return math.Min(dt/sweep, 1.0), true
	}
	if 2.0*math.Pi-dt < angEpsilon {
		return 0.0, true
	}
	return 0.0, false
}

func intersectLineArc(zs *CurveIntersections, l Line, c Arc) {
	// map to the unit circle frame of the ellipse
	toFrame := func(p Point) Point {
		q := p.Sub(c.Center).Rot(-c.Phi, Point{})
		return Point{q.X / c.Rx, q.Y / c.Ry}
	}
	l0, l1 := toFrame(l.P0), toFrame(l.P1)
	d := l1.Sub(l0)
	qa := d.Dot(d)
	qb := 2.0 * l0.Dot(d)
	qc := l0.Dot(l0) - 1.0
	s0, s1 := solveQuadraticFormula(qa, qb, qc)
	for _, s := range []float64{s0, s1} {
		if math.IsNaN(s) || !Interval(s, 0.0, 1.0) {
			continue
		}
		u := l0.Interpolate(l1, s)
		theta := math.Atan2(u.Y, u.X)
		if t, ok := arcParamAt(c, theta); ok {
			zs.add(c.Pos(t), math.Max(0.0, math.Min(1.0, s)), t)
		}
	}
}

func intersectArcArc(zs *CurveIntersections, a, b Arc, tol float64) {
	circleA := Equal(a.Rx, a.Ry)
	circleB := Equal(b.Rx, b.Ry)
	sameEllipse := a.Center.Same(b.Center) && Equal(a.Rx, b.Rx) && Equal(a.Ry, b.Ry) &&
		(Equal(angleNorm(a.Phi), angleNorm(b.Phi)) || Equal(a.Rx, a.Ry))
	if sameEllipse {
		intersectCoincidentArcs(zs, a, b)
		return
	}
	if circleA && circleB {
		p0, p1, ok := intersectionCircleCircle(a.Center, a.Rx, b.Center, b.Rx)
		if !ok {
			return
		}
		for _, pos := range []Point{p0, p1} {
			thetaA := pos.Sub(a.Center).Angle()
			thetaB := pos.Sub(b.Center).Angle()
			ta, okA := arcParamAt(a, thetaA)
			tb, okB := arcParamAt(b, thetaB)
			if okA && okB {
				zs.add(pos, ta, tb)
			}
		}
		return
	}
	intersectGeneric(zs, a, b, tol)
}

// intersectCoincidentArcs reports the overlap of two arcs on the same ellipse
// as common segments, or as a point where they only touch.
func intersectCoincidentArcs(zs *CurveIntersections, a, b Arc) {
	const angEpsilon = 1e-9
	// CCW intervals [start,start+sweep]
	sa, wa := math.Min(a.Theta0, a.Theta1), math.Abs(a.Theta1-a.Theta0)
	sb, wb := math.Min(b.Theta0, b.Theta1), math.Abs(b.Theta1-b.Theta0)
	if 2.0*math.Pi-angEpsilon <= wa && 2.0*math.Pi-angEpsilon <= wb {
		// both arcs close, the traces are identical. A closed overlap has no
		// endpoints to report, so split the circle in three to give every
		// common segment a distinct endpoint pair.
		third := 2.0 * math.Pi / 3.0
		for k := 0; k < 3; k++ {
			p0 := arcPointAt(a, sa+float64(k)*third)
			p1 := arcPointAt(a, sa+float64(k+1)*third)
			zs.addCommon(p0, p1)
		}
		return
	}
	sa = angleNorm(sa)
	sb = angleNorm(sb)
	for _, shift := range []float64{-2.0 * math.Pi, 0.0, 2.0 * math.Pi} {
		lo := math.Max(sa, sb+shift)
		hi := math.Min(sa+wa, sb+shift+wb)
		if hi-lo > angEpsilon {
			p0 := arcPointAt(a, lo)
			p1 := arcPointAt(a, hi)
			zs.addCommon(p0, p1)
		} else if hi-lo > -angEpsilon {
			pos := arcPointAt(a, (lo+hi)/2.0)
			ta, _ := arcParamAt(a, (lo+hi)/2.0)
			tb, _ := arcParamAt(b, (lo+hi)/2.0)
			zs.add(pos, ta, tb)
		}
	}
}

func arcPointAt(c Arc, theta float64) Point {
	p := Point{c.Rx * math.Cos(theta), c.Ry * math.Sin(theta)}
	return p.Rot(c.Phi, Point{}).Add(c.Center)
}

func intersectionCircleCircle(c0 Point, r0 float64, c1 Point, r1 float64) (Point, Point, bool) {
	// https://mathworld.wolfram.com/Circle-CircleIntersection.html
	dp := c1.Sub(c0)
	d := dp.Length()
	if r0+r1 < d-Epsilon || d+Epsilon < math.Abs(r0-r1) || Equal(d, 0.0) {
		return Point{}, Point{}, false
	}

	a := (r0*r0 - r1*r1 + d*d) / (2.0 * d)
	h2 := r0*r0 - a*a
	mid := c0.Add(dp.Mul(a / d))
	if h2 < Epsilon {
		return mid, mid, true
	}
	h := math.Sqrt(h2)
	off := dp.Rot90CCW().Mul(h / d)
	return mid.Add(off), mid.Sub(off), true
}

////////////////////////////////////////////////////////////////

// intersectGeneric intersects the flattened polylines of both curves and
// refines each hit on the exact curves. Only point intersections are found;
// coincident traces of mixed-kind pairs go unreported.
func intersectGeneric(zs *CurveIntersections, a, b Curve, tol float64) {
	flatness := math.Max(tol, Flatness)
	pa := a.Flatten(flatness)
	pb := b.Flatten(flatness)
	for i := 1; i < len(pa); i++ {
		la := Line{pa[i-1], pa[i]}
		for j := 1; j < len(pb); j++ {
			lb := Line{pb[j-1], pb[j]}
			var sub CurveIntersections
			intersectLineLine(&sub, la, lb, tol)
			for _, z := range sub.Points {
				ta, _ := nearestParam(a, z.Pos)
				tb, _ := nearestParam(b, z.Pos)
				ta, tb = refineIntersection(a, b, ta, tb)
				if a.Pos(ta).Sub(b.Pos(tb)).Length() < math.Max(tol, Epsilon) {
					zs.add(a.Pos(ta), ta, tb)
				}
			}
		}
	}
}
