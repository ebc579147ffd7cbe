package planar

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestOffsetCurveLine(t *testing.T) {
	pair := offsetCurve(Line{Point{0.0, 0.0}, Point{2.0, 0.0}}, 0.5)
	test.That(t, !pair.Collapsed)
	test.T(t, pair.Offset, Line{Point{0.0, -0.5}, Point{2.0, -0.5}})
}

func TestOffsetCurveArc(t *testing.T) {
	// CCW arc grows outward
	pair := offsetCurve(Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, 0.0, math.Pi}, 0.5)
	test.That(t, !pair.Collapsed)
	arc := pair.Offset.(Arc)
	test.Float(t, arc.Rx, 1.5)
	test.Float(t, arc.Ry, 1.5)

	// CW arc is concave from the left side, the radius shrinks
	pair = offsetCurve(Arc{Point{0.0, 0.0}, 1.0, 1.0, 0.0, math.Pi, 0.0}, 0.5)
	arc = pair.Offset.(Arc)
	test.Float(t, arc.Rx, 0.5)

	// vanishing radius collapses to a marker
	pair = offsetCurve(Arc{Point{3.0, 4.0}, 1.0, 1.0, 0.0, math.Pi, 0.0}, 1.0)
	test.That(t, pair.Collapsed)
	test.T(t, pair.P0, Point{3.0, 4.0})
}

func TestOffsetCurveBezier(t *testing.T) {
	q := QuadBezier{Point{0.0, 0.0}, Point{1.0, 1.0}, Point{2.0, 0.0}}
	pair := offsetCurve(q, 0.5)
	test.That(t, !pair.Collapsed)
	off := pair.Offset.(QuadBezier)

	// endpoints shift along the end normals
	approxPoint(t, off.P0, Point{0.0, 0.0}.Add(Point{1.0, 1.0}.Rot90CW().Norm(0.5)))
	approxPoint(t, off.P2, Point{2.0, 0.0}.Add(Point{1.0, -1.0}.Rot90CW().Norm(0.5)))
}

func TestIntersectRays(t *testing.T) {
	m, ok := intersectRays(Point{0.0, 0.0}, Point{1.0, 0.0}, Point{2.0, -1.0}, Point{0.0, 1.0})
	test.That(t, ok)
	approxPoint(t, m, Point{2.0, 0.0})

	_, ok = intersectRays(Point{0.0, 0.0}, Point{1.0, 0.0}, Point{0.0, 1.0}, Point{2.0, 0.0})
	test.That(t, !ok) // parallel
}

func TestRawOffsetsSquare(t *testing.T) {
	square := Rectangle(0.0, 0.0, 2.0, 2.0)

	round := RawOffsets(square, 0.5, OffsetOptions{LineJoin: RoundJoin})
	test.T(t, len(round), 8) // four edges, four corner arcs
	test.That(t, NewLoop(round).Closed())

	bevel := RawOffsets(square, 0.5, OffsetOptions{LineJoin: BevelJoin})
	test.T(t, len(bevel), 8)

	miter := RawOffsets(square, 0.5, OffsetOptions{LineJoin: MiterJoin})
	test.T(t, len(miter), 12) // two lines per corner
}

func TestOffsetSquareJoins(t *testing.T) {
	square := Rectangle(0.0, 0.0, 2.0, 2.0)

	// rounded corners lose (4-pi) r^2 against the miter square
	round := Offset(square, 0.5, OffsetOptions{LineJoin: RoundJoin})
	approxArea(t, round, 9.0-(4.0-math.Pi)*0.25)

	miter := Offset(square, 0.5, OffsetOptions{LineJoin: MiterJoin})
	approxArea(t, miter, 9.0)

	// bevel chamfers cut half of the corner squares
	bevel := Offset(square, 0.5, OffsetOptions{LineJoin: BevelJoin})
	approxArea(t, bevel, 9.0-4.0*0.125)
}

func TestOffsetCircle(t *testing.T) {
	circle := Circle(0.0, 0.0, 1.0)

	grown := Offset(circle, 0.5, OffsetOptions{})
	approxArea(t, grown, math.Pi*2.25)

	shrunk := Offset(circle, -0.5, OffsetOptions{})
	approxArea(t, shrunk, math.Pi*0.25)

	// the inward offset at the radius collapses entirely
	test.That(t, Offset(circle, -1.0, OffsetOptions{}) == nil)
}

func TestOffsetSquareInward(t *testing.T) {
	square := Rectangle(0.0, 0.0, 2.0, 2.0)
	inner := Offset(square, -0.5, OffsetOptions{LineJoin: RoundJoin})
	approxArea(t, inner, 1.0)
	l := inner.(*Loop)
	test.That(t, l.Contains(Point{1.0, 1.0}))
	test.That(t, !l.Contains(Point{0.25, 0.25}))
}

// offsetting is orientation independent: positive always grows
func TestOffsetOrientation(t *testing.T) {
	square := Rectangle(0.0, 0.0, 2.0, 2.0)
	cw := square.Reverse()
	grown := Offset(cw, 0.5, OffsetOptions{LineJoin: MiterJoin})
	approxArea(t, grown, 9.0)
}

// an inward offset past the half-width vanishes
func TestOffsetInwardVanish(t *testing.T) {
	narrow := Rectangle(0.0, 0.0, 4.0, 1.0)
	test.That(t, Offset(narrow, -0.6, OffsetOptions{LineJoin: RoundJoin}) == nil)
}

// growing and shrinking by the same distance with round joins restores the
// original square
func TestOffsetRoundTrip(t *testing.T) {
	square := Rectangle(0.0, 0.0, 2.0, 2.0)
	grown := Offset(square, 0.5, OffsetOptions{LineJoin: RoundJoin})
	back := Offset(grown.(*Loop), -0.5, OffsetOptions{LineJoin: RoundJoin})
	approxArea(t, back, 4.0)

	bounds := back.Bounds()
	approx(t, bounds.X, 0.0)
	approx(t, bounds.Y, 0.0)
	approx(t, bounds.W, 2.0)
	approx(t, bounds.H, 2.0)
}

func TestOffsetRoundedRectangle(t *testing.T) {
	rr := RoundedRectangle(0.0, 0.0, 4.0, 2.0, 0.5)
	approxArea(t, rr, 8.0-(4.0-math.Pi)*0.25)

	grown := Offset(rr, 0.5, OffsetOptions{LineJoin: RoundJoin})
	approxArea(t, grown, 15.0-(4.0-math.Pi)*1.0)
}
