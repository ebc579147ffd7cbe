package planar

import (
	"fmt"
	"math"
)

// Curve is one parametric curve span. Parameters run over [0,1] from Start to
// End. All implementations are immutable value types: operations that modify
// a curve return a new one.
type Curve interface {
	Start() Point
	End() Point
	Pos(t float64) Point
	Deriv(t float64) Point
	Reverse() Curve
	SplitAt(t float64) (Curve, Curve)
	Bounds() Rect
	Flatten(flatness float64) []Point
	Length() float64
	String() string
}

////////////////////////////////////////////////////////////////

// Line is a straight curve between two points.
type Line struct {
	P0, P1 Point
}

func (c Line) Start() Point {
	return c.P0
}

func (c Line) End() Point {
	return c.P1
}

func (c Line) Pos(t float64) Point {
	return c.P0.Interpolate(c.P1, t)
}

func (c Line) Deriv(t float64) Point {
	return c.P1.Sub(c.P0)
}

func (c Line) Reverse() Curve {
	return Line{c.P1, c.P0}
}

func (c Line) SplitAt(t float64) (Curve, Curve) {
	mid := c.Pos(t)
	return Line{c.P0, mid}, Line{mid, c.P1}
}

func (c Line) Bounds() Rect {
	return rectFromPoints(c.P0, c.P1)
}

func (c Line) Flatten(flatness float64) []Point {
	return []Point{c.P0, c.P1}
}

func (c Line) Length() float64 {
	return c.P1.Sub(c.P0).Length()
}

func (c Line) String() string {
	return fmt.Sprintf("L%v--%v", c.P0, c.P1)
}

////////////////////////////////////////////////////////////////

// Arc is an elliptical arc with center, radii rx and ry, the CCW rotation phi
// of the major axis in radians, and the start and end angles theta0 and
// theta1 (before phi is applied). The arc runs CCW when theta0 < theta1.
// Circular arcs have rx == ry.
type Arc struct {
	Center         Point
	Rx, Ry         float64
	Phi            float64
	Theta0, Theta1 float64
}

func (c Arc) angle(t float64) float64 {
	return c.Theta0 + t*(c.Theta1-c.Theta0)
}

func (c Arc) Start() Point {
	return c.Pos(0.0)
}

func (c Arc) End() Point {
	return c.Pos(1.0)
}

func (c Arc) Pos(t float64) Point {
	theta := c.angle(t)
	p := Point{c.Rx * math.Cos(theta), c.Ry * math.Sin(theta)}
	return p.Rot(c.Phi, Point{}).Add(c.Center)
}

func (c Arc) Deriv(t float64) Point {
	theta := c.angle(t)
	dtheta := c.Theta1 - c.Theta0
	p := Point{-c.Rx * math.Sin(theta) * dtheta, c.Ry * math.Cos(theta) * dtheta}
	return p.Rot(c.Phi, Point{})
}

func (c Arc) Reverse() Curve {
	return Arc{c.Center, c.Rx, c.Ry, c.Phi, c.Theta1, c.Theta0}
}

func (c Arc) SplitAt(t float64) (Curve, Curve) {
	theta := c.angle(t)
	return Arc{c.Center, c.Rx, c.Ry, c.Phi, c.Theta0, theta},
		Arc{c.Center, c.Rx, c.Ry, c.Phi, theta, c.Theta1}
}

// Bounds returns the bounding box of the full ellipse, which is a cheap
// conservative superset of the arc's box. Broad-phase candidate pairing only
// needs the superset property.
func (c Arc) Bounds() Rect {
	sinphi, cosphi := math.Sincos(c.Phi)
	dx := math.Sqrt(c.Rx*c.Rx*cosphi*cosphi + c.Ry*c.Ry*sinphi*sinphi)
	dy := math.Sqrt(c.Rx*c.Rx*sinphi*sinphi + c.Ry*c.Ry*cosphi*cosphi)
	return Rect{c.Center.X - dx, c.Center.Y - dy, 2.0 * dx, 2.0 * dy}
}

func (c Arc) Flatten(flatness float64) []Point {
	rmax := math.Max(c.Rx, c.Ry)
	dtheta := math.Abs(c.Theta1 - c.Theta0)
	n := 1
	if flatness < rmax {
		// segment count so that the sagitta stays below flatness
		step := 2.0 * math.Acos(1.0-flatness/rmax)
		n = int(math.Ceil(dtheta / step))
		if n < 1 {
			n = 1
		}
	}
	ps := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		ps[i] = c.Pos(float64(i) / float64(n))
	}
	return ps
}

func (c Arc) Length() float64 {
	if Equal(c.Rx, c.Ry) {
		return c.Rx * math.Abs(c.Theta1-c.Theta0)
	}
	return polylineLength(c.Flatten(Flatness / 10.0))
}

func (c Arc) String() string {
	return fmt.Sprintf("A%v r=(%g,%g) phi=%g %g--%g", c.Center, c.Rx, c.Ry, c.Phi, c.Theta0, c.Theta1)
}

// CCW returns true when the arc sweeps counter clockwise.
func (c Arc) CCW() bool {
	return c.Theta0 < c.Theta1
}

////////////////////////////////////////////////////////////////

// QuadBezier is a quadratic Bezier curve.
type QuadBezier struct {
	P0, P1, P2 Point
}

func (c QuadBezier) Start() Point {
	return c.P0
}

func (c QuadBezier) End() Point {
	return c.P2
}

func (c QuadBezier) Pos(t float64) Point {
	p0 := c.P0.Mul((1.0 - t) * (1.0 - t))
	p1 := c.P1.Mul(2.0 * t * (1.0 - t))
	p2 := c.P2.Mul(t * t)
	return p0.Add(p1).Add(p2)
}

func (c QuadBezier) Deriv(t float64) Point {
	p0 := c.P1.Sub(c.P0).Mul(2.0 * (1.0 - t))
	p1 := c.P2.Sub(c.P1).Mul(2.0 * t)
	return p0.Add(p1)
}

func (c QuadBezier) Reverse() Curve {
	return QuadBezier{c.P2, c.P1, c.P0}
}

func (c QuadBezier) SplitAt(t float64) (Curve, Curve) {
	q0 := c.P0.Interpolate(c.P1, t)
	q1 := c.P1.Interpolate(c.P2, t)
	mid := q0.Interpolate(q1, t)
	return QuadBezier{c.P0, q0, mid}, QuadBezier{mid, q1, c.P2}
}

// Bounds returns the control point hull box, a conservative superset.
func (c QuadBezier) Bounds() Rect {
	return rectFromPoints(c.P0, c.P1, c.P2)
}

func (c QuadBezier) Flatten(flatness float64) []Point {
	return flattenBezier(c, flatness)
}

func (c QuadBezier) Length() float64 {
	return polylineLength(c.Flatten(Flatness / 10.0))
}

func (c QuadBezier) String() string {
	return fmt.Sprintf("Q%v--%v--%v", c.P0, c.P1, c.P2)
}

////////////////////////////////////////////////////////////////

// CubicBezier is a cubic Bezier curve.
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

func (c CubicBezier) Start() Point {
	return c.P0
}

func (c CubicBezier) End() Point {
	return c.P3
}

func (c CubicBezier) Pos(t float64) Point {
	p0 := c.P0.Mul((1.0 - t) * (1.0 - t) * (1.0 - t))
	p1 := c.P1.Mul(3.0 * t * (1.0 - t) * (1.0 - t))
	p2 := c.P2.Mul(3.0 * t * t * (1.0 - t))
	p3 := c.P3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func (c CubicBezier) Deriv(t float64) Point {
	p0 := c.P1.Sub(c.P0).Mul(3.0 * (1.0 - t) * (1.0 - t))
	p1 := c.P2.Sub(c.P1).Mul(6.0 * t * (1.0 - t))
	p2 := c.P3.Sub(c.P2).Mul(3.0 * t * t)
	return p0.Add(p1).Add(p2)
}

func (c CubicBezier) Reverse() Curve {
	return CubicBezier{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBezier) SplitAt(t float64) (Curve, Curve) {
	q0 := c.P0.Interpolate(c.P1, t)
	q1 := c.P1.Interpolate(c.P2, t)
	q2 := c.P2.Interpolate(c.P3, t)
	r0 := q0.Interpolate(q1, t)
	r1 := q1.Interpolate(q2, t)
	mid := r0.Interpolate(r1, t)
	return CubicBezier{c.P0, q0, r0, mid}, CubicBezier{mid, r1, q2, c.P3}
}

// Bounds returns the control point hull box, a conservative superset.
func (c CubicBezier) Bounds() Rect {
	return rectFromPoints(c.P0, c.P1, c.P2, c.P3)
}

func (c CubicBezier) Flatten(flatness float64) []Point {
	return flattenBezier(c, flatness)
}

func (c CubicBezier) Length() float64 {
	return polylineLength(c.Flatten(Flatness / 10.0))
}

func (c CubicBezier) String() string {
	return fmt.Sprintf("C%v--%v--%v--%v", c.P0, c.P1, c.P2, c.P3)
}

////////////////////////////////////////////////////////////////

// bezierFlat reports whether the control points deviate less than flatness
// from the chord, in which case the chord is an adequate linearization.
func bezierFlat(c Curve, flatness float64) bool {
	var ctrl []Point
	switch b := c.(type) {
	case QuadBezier:
		ctrl = []Point{b.P1}
	case CubicBezier:
		ctrl = []Point{b.P1, b.P2}
	default:
		return true
	}
	p0, p1 := c.Start(), c.End()
	d := p1.Sub(p0)
	length := d.Length()
	if Equal(length, 0.0) {
		for _, p := range ctrl {
			if flatness < p.Sub(p0).Length() {
				return false
			}
		}
		return true
	}
	for _, p := range ctrl {
		if flatness*length < math.Abs(d.PerpDot(p.Sub(p0))) {
			return false
		}
	}
	return true
}

func flattenBezier(c Curve, flatness float64) []Point {
	if bezierFlat(c, flatness) {
		return []Point{c.Start(), c.End()}
	}
	a, b := c.SplitAt(0.5)
	ps := flattenBezier(a, flatness)
	qs := flattenBezier(b, flatness)
	return append(ps, qs[1:]...) // shared midpoint
}

func polylineLength(ps []Point) float64 {
	d := 0.0
	for i := 1; i < len(ps); i++ {
		d += ps[i].Sub(ps[i-1]).Length()
	}
	return d
}

////////////////////////////////////////////////////////////////

// curveMid returns the curve's midpoint, used to classify a fragment as
// inside or outside another loop.
func curveMid(c Curve) Point {
	return c.Pos(0.5)
}

// nearestParam returns the parameter on c whose position is closest to p,
// along with the distance. It samples the curve and refines the best sample
// by ternary search.
func nearestParam(c Curve, p Point) (float64, float64) {
	if l, ok := c.(Line); ok {
		d := l.P1.Sub(l.P0)
		len2 := d.Dot(d)
		t := 0.0
		if !Equal(len2, 0.0) {
			t = math.Max(0.0, math.Min(1.0, p.Sub(l.P0).Dot(d)/len2))
		}
		return t, p.Sub(l.Pos(t)).Length()
	}

	const n = 64
	best, bestDist := 0.0, math.Inf(1.0)
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		if d := p.Sub(c.Pos(t)).Length(); d < bestDist {
			best, bestDist = t, d
		}
	}
	lo := math.Max(0.0, best-1.0/n)
	hi := math.Min(1.0, best+1.0/n)
	for i := 0; i < 60; i++ {
		t0 := lo + (hi-lo)/3.0
		t1 := hi - (hi-lo)/3.0
		if p.Sub(c.Pos(t0)).Length() < p.Sub(c.Pos(t1)).Length() {
			hi = t1
		} else {
			lo = t0
		}
	}
	t := (lo + hi) / 2.0
	return t, p.Sub(c.Pos(t)).Length()
}

// refineIntersection sharpens a transversal crossing found on the flattened
// polylines by repeatedly intersecting the local tangents and stepping both
// parameters towards the tangent crossing. Near-tangential configurations stop
// early and keep the polyline estimate.
func refineIntersection(a, b Curve, ta, tb float64) (float64, float64) {
	for k := 0; k < 12; k++ {
		pa, pb := a.Pos(ta), b.Pos(tb)
		if pa.Sub(pb).Length() < Epsilon {
			break
		}
		da, db := a.Deriv(ta), b.Deriv(tb)
		m, ok := intersectRays(pa, da, pb, db)
		if !ok {
			break
		}
		ta = math.Max(0.0, math.Min(1.0, ta+m.Sub(pa).Dot(da)/da.Dot(da)))
		tb = math.Max(0.0, math.Min(1.0, tb+m.Sub(pb).Dot(db)/db.Dot(db)))
	}
	return ta, tb
}
