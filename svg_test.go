package planar

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLoopPathData(t *testing.T) {
	square := Rectangle(0.0, 0.0, 2.0, 2.0)
	test.T(t, square.PathData(), "M0 0L2 0L2 2L0 2L0 0z")

	q := &Loop{[]Curve{
		QuadBezier{Point{0.0, 0.0}, Point{1.0, 2.0}, Point{2.0, 0.0}},
		Line{Point{2.0, 0.0}, Point{0.0, 0.0}},
	}}
	test.T(t, q.PathData(), "M0 0Q1 2 2 0L0 0z")

	test.T(t, (&Loop{}).PathData(), "")
}

func TestShapePathData(t *testing.T) {
	outer := Rectangle(0.0, 0.0, 4.0, 4.0)
	hole := Rectangle(1.0, 1.0, 1.0, 1.0).Reverse()
	compound := &CompoundLoop{outer, []*Loop{hole}}
	d := PathData(compound)
	test.T(t, strings.Count(d, "M"), 2)
	test.T(t, strings.Count(d, "z"), 2)

	collection := &LoopCollection{[]Shape{outer, Rectangle(9.0, 0.0, 1.0, 1.0)}}
	test.T(t, strings.Count(PathData(collection), "M"), 2)

	test.T(t, PathData(nil), "")
}

func TestWriteSVG(t *testing.T) {
	sb := strings.Builder{}
	WriteSVG(&sb, Rectangle(0.0, 0.0, 2.0, 2.0), nil, Circle(5.0, 0.0, 1.0))
	out := sb.String()
	test.That(t, strings.Contains(out, "<svg"))
	test.That(t, strings.Contains(out, "</svg>"))
	test.T(t, strings.Count(out, "<path"), 2)
	test.That(t, strings.Contains(out, "viewBox"))
}
