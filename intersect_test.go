package planar

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestIntersectLineLine(t *testing.T) {
	tests := []struct {
		a, b    Line
		points  []Point
		commons []CommonSegment
	}{
		// crossing
		{Line{Point{0.0, 0.0}, Point{2.0, 2.0}}, Line{Point{0.0, 2.0}, Point{2.0, 0.0}},
			[]Point{{1.0, 1.0}}, nil},
		// parallel
		{Line{Point{0.0, 0.0}, Point{2.0, 0.0}}, Line{Point{0.0, 1.0}, Point{2.0, 1.0}},
			nil, nil},
		// touching at an endpoint
		{Line{Point{0.0, 0.0}, Point{1.0, 0.0}}, Line{Point{1.0, 0.0}, Point{2.0, 5.0}},
			[]Point{{1.0, 0.0}}, nil},
		// collinear overlap
		{Line{Point{0.0, 0.0}, Point{2.0, 0.0}}, Line{Point{1.0, 0.0}, Point{3.0, 0.0}},
			nil, []CommonSegment{{Point{1.0, 0.0}, Point{2.0, 0.0}}}},
		// collinear overlap against a reversed line
		{Line{Point{0.0, 0.0}, Point{2.0, 0.0}}, Line{Point{3.0, 0.0}, Point{1.0, 0.0}},
			nil, []CommonSegment{{Point{1.0, 0.0}, Point{2.0, 0.0}}}},
		// collinear touch
		{Line{Point{0.0, 0.0}, Point{1.0, 0.0}}, Line{Point{1.0, 0.0}, Point{2.0, 0.0}},
			[]Point{{1.0, 0.0}}, nil},
		// collinear disjoint
		{Line{Point{0.0, 0.0}, Point{1.0, 0.0}}, Line{Point{2.0, 0.0}, Point{3.0, 0.0}},
			nil, nil},
		// crossing outside both spans
		{Line{Point{0.0, 0.0}, Point{1.0, 0.0}}, Line{Point{3.0, -1.0}, Point{3.0, 1.0}},
			nil, nil},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			zs := IntersectCurves(tt.a, tt.b, PointEpsilon)
			test.T(t, len(zs.Points), len(tt.points))
			for j, want := range tt.points {
				if j < len(zs.Points) {
					approxPoint(t, zs.Points[j].Pos, want)
				}
			}
			test.T(t, len(zs.Common), len(tt.commons))
			for j, want := range tt.commons {
				if j < len(zs.Common) {
					test.That(t, zs.Common[j].Matches(want.P0, want.P1))
				}
			}
		})
	}
}

func TestIntersectLineLineParams(t *testing.T) {
	a := Line{Point{0.0, 0.0}, Point{2.0, 2.0}}
	b := Line{Point{0.0, 2.0}, Point{2.0, 0.0}}
	zs := IntersectCurves(a, b, PointEpsilon)
	test.T(t, len(zs.Points), 1)
	approx(t, zs.Points[0].TA, 0.5)
	approx(t, zs.Points[0].TB, 0.5)
	approxPoint(t, a.Pos(zs.Points[0].TA), zs.Points[0].Pos)
	approxPoint(t, b.Pos(zs.Points[0].TB), zs.Points[0].Pos)
}

func TestIntersectLineQuad(t *testing.T) {
	q := QuadBezier{Point{0.0, 0.0}, Point{1.0, 2.0}, Point{2.0, 0.0}}

	// tangent to the apex
	zs := IntersectCurves(Line{Point{0.0, 1.0}, Point{2.0, 1.0}}, q, PointEpsilon)
	test.T(t, len(zs.Points), 1)
	approxPoint(t, zs.Points[0].Pos, Point{1.0, 1.0})

	// two crossings
	zs = IntersectCurves(Line{Point{0.0, 0.75}, Point{2.0, 0.75}}, q, PointEpsilon)
	test.T(t, len(zs.Points), 2)
	for _, z := range zs.Points {
		approx(t, z.Pos.Y, 0.75)
		approxPoint(t, q.Pos(z.TB), z.Pos)
	}

	// swapped operand order mirrors the parameters
	zs = IntersectCurves(q, Line{Point{0.0, 0.75}, Point{2.0, 0.75}}, PointEpsilon)
	test.T(t, len(zs.Points), 2)
	for _, z := range zs.Points {
		approxPoint(t, q.Pos(z.TA), z.Pos)
	}

	// no crossing
	zs = IntersectCurves(Line{Point{0.0, 2.0}, Point{2.0, 2.0}}, q, PointEpsilon)
	test.T(t, len(zs.Points), 0)
}

func TestIntersectLineCube(t *testing.T) {
	c := CubicBezier{Point{0.0, -1.0}, Point{1.0, -1.0}, Point{1.0, 1.0}, Point{2.0, 1.0}}
	zs := IntersectCurves(Line{Point{0.0, 0.0}, Point{2.0, 0.0}}, c, PointEpsilon)
	test.T(t, len(zs.Points), 1)
	approxPoint(t, zs.Points[0].Pos, Point{1.0, 0.0})
	approx(t, zs.Points[0].TA, 0.5)
	approx(t, zs.Points[0].TB, 0.5)
}

func TestIntersectLineArc(t *testing.T) {
	upper := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 0.0, math.Pi}

	zs := IntersectCurves(Line{Point{-2.0, 0.0}, Point{2.0, 0.0}}, upper, PointEpsilon)
	test.T(t, len(zs.Points), 2)

	// only the upper crossing lies on the sweep
	zs = IntersectCurves(Line{Point{0.0, -2.0}, Point{0.0, 2.0}}, upper, PointEpsilon)
	test.T(t, len(zs.Points), 1)
	approxPoint(t, zs.Points[0].Pos, Point{0.0, 1.0})
	approx(t, zs.Points[0].TB, 0.5)

	// miss
	zs = IntersectCurves(Line{Point{-2.0, 2.0}, Point{2.0, 2.0}}, upper, PointEpsilon)
	test.T(t, len(zs.Points), 0)

	// ellipse
	e := Arc{Point{0.0, 0.0}, 2.0, 1.0, 0.0, 0.0, math.Pi}
	zs = IntersectCurves(Line{Point{0.0, -2.0}, Point{0.0, 2.0}}, e, PointEpsilon)
	test.T(t, len(zs.Points), 1)
	approxPoint(t, zs.Points[0].Pos, Point{0.0, 1.0})
}

func TestIntersectArcArc(t *testing.T) {
	full := func(center Point, r float64) Arc {
		return Arc{center, r, r, 0.0, 0.0, 2.0 * math.Pi}
	}

	zs := IntersectCurves(full(Point{0.0, 0.0}, 1.0), full(Point{1.0, 0.0}, 1.0), PointEpsilon)
	test.T(t, len(zs.Points), 2)
	for _, z := range zs.Points {
		approx(t, z.Pos.X, 0.5)
		approx(t, math.Abs(z.Pos.Y), math.Sqrt(3.0)/2.0)
	}

	// externally tangent
	zs = IntersectCurves(full(Point{0.0, 0.0}, 1.0), full(Point{2.0, 0.0}, 1.0), PointEpsilon)
	test.T(t, len(zs.Points), 1)
	approxPoint(t, zs.Points[0].Pos, Point{1.0, 0.0})

	// disjoint
	zs = IntersectCurves(full(Point{0.0, 0.0}, 1.0), full(Point{3.0, 0.0}, 1.0), PointEpsilon)
	test.That(t, !zs.Has())

	// one inside the other
	zs = IntersectCurves(full(Point{0.0, 0.0}, 2.0), full(Point{0.5, 0.0}, 1.0), PointEpsilon)
	test.That(t, !zs.Has())

	// crossing restricted by the sweeps: only the upper point lies on both
	a := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 0.0, math.Pi}
	b := Arc{Point{1.0, 0.0}, 1.0, 1.0, 0.0, 0.0, math.Pi}
	zs = IntersectCurves(a, b, PointEpsilon)
	test.T(t, len(zs.Points), 1)
	approxPoint(t, zs.Points[0].Pos, Point{0.5, math.Sqrt(3.0) / 2.0})
}

func TestIntersectCoincidentArcs(t *testing.T) {
	a := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 0.0, math.Pi}
	b := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, math.Pi / 2.0, 3.0 * math.Pi / 2.0}
	zs := IntersectCurves(a, b, PointEpsilon)
	test.T(t, len(zs.Common), 1)
	test.That(t, zs.Common[0].Matches(Point{0.0, 1.0}, Point{-1.0, 0.0}))

	// touching sweeps meet in a point
	c := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 0.0, math.Pi / 2.0}
	d := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, math.Pi / 2.0, math.Pi}
	zs = IntersectCurves(c, d, PointEpsilon)
	test.T(t, len(zs.Common), 0)
	test.T(t, len(zs.Points), 1)
	approxPoint(t, zs.Points[0].Pos, Point{0.0, 1.0})

	// a CW arc overlaps a CCW arc all the same
	e := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 3.0 * math.Pi / 2.0, math.Pi / 2.0}
	zs = IntersectCurves(a, e, PointEpsilon)
	test.T(t, len(zs.Common), 1)
	test.That(t, zs.Common[0].Matches(Point{0.0, 1.0}, Point{-1.0, 0.0}))
}

// a closed overlap has no endpoints, the shared circle is reported split in
// three so every common segment keeps a distinct endpoint pair
func TestIntersectCoincidentFullCircles(t *testing.T) {
	a := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 0.0, 2.0 * math.Pi}
	zs := IntersectCurves(a, a, PointEpsilon)
	test.T(t, len(zs.Points), 0)
	test.T(t, len(zs.Common), 3)
	for _, c := range zs.Common {
		test.That(t, !c.P0.Same(c.P1))
	}

	// opposite orientation
	cw := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 2.0 * math.Pi, 0.0}
	zs = IntersectCurves(a, cw, PointEpsilon)
	test.T(t, len(zs.Common), 3)

	// a full circle against a partial arc is the partial overlap
	half := Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 0.0, math.Pi}
	zs = IntersectCurves(a, half, PointEpsilon)
	test.That(t, 0 < len(zs.Common))
	test.That(t, zs.Common[0].Matches(Point{1.0, 0.0}, Point{-1.0, 0.0}))
}

func TestIntersectSameBezier(t *testing.T) {
	q := QuadBezier{Point{0.0, 0.0}, Point{1.0, 2.0}, Point{2.0, 0.0}}
	zs := IntersectCurves(q, q, PointEpsilon)
	test.T(t, len(zs.Common), 1)
	test.That(t, zs.Common[0].Matches(Point{0.0, 0.0}, Point{2.0, 0.0}))

	rev := q.Reverse().(QuadBezier)
	zs = IntersectCurves(q, rev, PointEpsilon)
	test.T(t, len(zs.Common), 1)

	c := CubicBezier{Point{0.0, 0.0}, Point{0.0, 1.0}, Point{2.0, 1.0}, Point{2.0, 0.0}}
	zs = IntersectCurves(c, c, PointEpsilon)
	test.T(t, len(zs.Common), 1)
	test.That(t, zs.Common[0].Matches(Point{0.0, 0.0}, Point{2.0, 0.0}))
}

func TestIntersectGeneric(t *testing.T) {
	// two quads crossing twice; handled by polyline subdivision with refinement
	q1 := QuadBezier{Point{0.0, 0.0}, Point{1.0, 2.0}, Point{2.0, 0.0}}
	q2 := QuadBezier{Point{0.0, 1.0}, Point{1.0, -1.0}, Point{2.0, 1.0}}
	zs := IntersectCurves(q1, q2, PointEpsilon)
	test.T(t, len(zs.Points), 2)
	for _, z := range zs.Points {
		approx(t, z.Pos.Y, 0.5)
		approxPoint(t, q1.Pos(z.TA), z.Pos)
		approxPoint(t, q2.Pos(z.TB), z.Pos)
	}

	// quad against cubic
	c := CubicBezier{Point{0.0, 0.5}, Point{0.7, 0.5}, Point{1.3, 0.5}, Point{2.0, 0.5}}
	zs = IntersectCurves(q1, c, PointEpsilon)
	test.T(t, len(zs.Points), 2)
	for _, z := range zs.Points {
		approx(t, z.Pos.Y, 0.5)
	}
}
