package planar

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestLoopBasics(t *testing.T) {
	square := Rectangle(0.0, 0.0, 2.0, 2.0)
	test.That(t, square.Closed())
	test.That(t, square.CCW())
	approxArea(t, square, 4.0)
	test.T(t, square.Bounds(), Rect{0.0, 0.0, 2.0, 2.0})
	approx(t, square.Length(), 8.0)

	rev := square.Reverse()
	test.That(t, rev.Closed())
	test.That(t, !rev.CCW())
	approxArea(t, rev, 4.0)

	open := NewLoop([]Curve{Line{Point{0.0, 0.0}, Point{1.0, 0.0}}})
	test.That(t, !open.Closed())
	test.That(t, !(&Loop{}).Closed())
}

func TestLoopContains(t *testing.T) {
	square := Rectangle(0.0, 0.0, 2.0, 2.0)
	test.That(t, square.Contains(Point{1.0, 1.0}))
	test.That(t, !square.Contains(Point{3.0, 1.0}))
	test.That(t, !square.Contains(Point{-1.0, -1.0}))

	circle := Circle(0.0, 0.0, 1.0)
	test.That(t, circle.Contains(Point{0.5, 0.5}))
	test.That(t, !circle.Contains(Point{0.9, 0.9}))
}

func TestCircleArea(t *testing.T) {
	circle := Circle(0.0, 0.0, 1.0)
	test.That(t, math.Abs(circle.Area()-math.Pi) < 1e-3)
	test.That(t, circle.CCW())

	ellipse := Ellipse(1.0, 1.0, 2.0, 1.0)
	test.That(t, math.Abs(ellipse.Area()-2.0*math.Pi) < 1e-3)
}

func TestPolygon(t *testing.T) {
	tri := Polygon(Point{0.0, 0.0}, Point{2.0, 0.0}, Point{0.0, 2.0})
	test.That(t, tri.Closed())
	approxArea(t, tri, 2.0)

	// repeated points are dropped
	quad := Polygon(Point{0.0, 0.0}, Point{2.0, 0.0}, Point{2.0, 0.0}, Point{0.0, 2.0})
	test.T(t, len(quad.Curves), 3)

	test.T(t, len(Polygon(Point{0.0, 0.0}, Point{1.0, 1.0}).Curves), 0)
}

func TestCompoundLoop(t *testing.T) {
	outer := Rectangle(0.0, 0.0, 4.0, 4.0)
	hole := Rectangle(1.0, 1.0, 1.0, 1.0).Reverse()
	c := &CompoundLoop{outer, []*Loop{hole}}
	approxArea(t, c, 15.0)
	test.T(t, c.Bounds(), Rect{0.0, 0.0, 4.0, 4.0})
	test.That(t, c.Contains(Point{3.0, 3.0}))
	test.That(t, !c.Contains(Point{1.5, 1.5}))
	test.That(t, !c.Contains(Point{5.0, 5.0}))
}

func TestLoopCollection(t *testing.T) {
	c := &LoopCollection{[]Shape{
		Rectangle(0.0, 0.0, 1.0, 1.0),
		Rectangle(3.0, 0.0, 2.0, 1.0),
	}}
	approxArea(t, c, 3.0)
	test.T(t, c.Bounds(), Rect{0.0, 0.0, 5.0, 1.0})
}

func TestOrganizeLoops(t *testing.T) {
	outer := Rectangle(0.0, 0.0, 8.0, 8.0)
	hole := Rectangle(1.0, 1.0, 4.0, 4.0)
	island := Rectangle(2.0, 2.0, 1.0, 1.0)

	s := organizeLoops([]*Loop{outer})
	test.T(t, s, Shape(outer))

	s = organizeLoops([]*Loop{outer, hole})
	compound := s.(*CompoundLoop)
	test.T(t, len(compound.Holes), 1)
	test.That(t, compound.Outer.CCW() != compound.Holes[0].CCW())
	approxArea(t, compound, 64.0-16.0)

	// a loop nested two deep is an island again
	s = organizeLoops([]*Loop{outer, hole, island})
	collection := s.(*LoopCollection)
	test.T(t, len(collection.Shapes), 2)
	approxArea(t, collection, 64.0-16.0+1.0)

	// two disjoint loops stay separate
	s = organizeLoops([]*Loop{Rectangle(0.0, 0.0, 1.0, 1.0), Rectangle(5.0, 0.0, 1.0, 1.0)})
	collection = s.(*LoopCollection)
	test.T(t, len(collection.Shapes), 2)

	test.That(t, organizeLoops(nil) == nil)
}
