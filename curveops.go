package planar

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// CurveOps is the curve-level primitive surface consumed by the segmenter,
// assembler and offset code. The topological algorithms only reach curves
// through this interface so a different curve provider can be substituted.
type CurveOps interface {
	IntersectCurves(a, b Curve, tol float64) CurveIntersections
	SplitAtPoints(c Curve, ps []Point, tol float64) []Curve
	DistanceToPoint(c Curve, p Point) float64
	DistanceToCurve(a, b Curve) float64
	BoundingBox(c Curve) Rect
	Inside(loop *Loop, p Point) bool
	NewSpatialIndex() SpatialIndex
}

// Ops returns the default in-package curve provider.
func Ops() CurveOps {
	return defaultOps{}
}

type defaultOps struct{}

func (defaultOps) IntersectCurves(a, b Curve, tol float64) CurveIntersections {
	return IntersectCurves(a, b, tol)
}

// SplitAtPoints splits c at every given point that lies on it within tol,
// excluding its extremities. The fragments are returned in curve order.
func (defaultOps) SplitAtPoints(c Curve, ps []Point, tol float64) []Curve {
	ts := []float64{}
	for _, p := range ps {
		t, d := nearestParam(c, p)
		if tol < d {
			continue
		}
		if c.Start().Same(p) || c.End().Same(p) {
			continue
		}
		dup := false
		for _, t2 := range ts {
			if Equal(t, t2) {
				dup = true
				break
			}
		}
		if !dup {
			ts = append(ts, t)
		}
	}
	if len(ts) == 0 {
		return []Curve{c}
	}
	sort.Float64s(ts)

	cs := []Curve{}
	tprev := 0.0
	rest := c
	for _, t := range ts {
		// t on the original curve, rescale to the remainder
		tt := (t - tprev) / (1.0 - tprev)
		var head Curve
		head, rest = rest.SplitAt(tt)
		cs = append(cs, head)
		tprev = t
	}
	return append(cs, rest)
}

func (defaultOps) DistanceToPoint(c Curve, p Point) float64 {
	_, d := nearestParam(c, p)
	return d
}

func (ops defaultOps) DistanceToCurve(a, b Curve) float64 {
	if IntersectCurves(a, b, Epsilon).Has() {
		return 0.0
	}
	d := math.Inf(1.0)
	for _, p := range a.Flatten(Flatness) {
		d = math.Min(d, ops.DistanceToPoint(b, p))
	}
	for _, p := range b.Flatten(Flatness) {
		d = math.Min(d, ops.DistanceToPoint(a, p))
	}
	return d
}

func (defaultOps) BoundingBox(c Curve) Rect {
	return c.Bounds()
}

func (defaultOps) Inside(loop *Loop, p Point) bool {
	return loop.Contains(p)
}

func (defaultOps) NewSpatialIndex() SpatialIndex {
	return newRTreeIndex()
}

////////////////////////////////////////////////////////////////

// SpatialIndex is a broad-phase index over axis-aligned bounds. Candidate
// sets returned by QueryOverlapping must be a superset of the truly
// overlapping entries; false positives are filtered by the narrow phase.
type SpatialIndex interface {
	Insert(id int, bounds Rect)
	QueryOverlapping(bounds Rect) []int
}

type rtreeEntry struct {
	id   int
	rect rtreego.Rect
}

func (e *rtreeEntry) Bounds() rtreego.Rect {
	return e.rect
}

type rtreeIndex struct {
	tree *rtreego.Rtree
}

func newRTreeIndex() *rtreeIndex {
	return &rtreeIndex{rtreego.NewTree(2, 2, 16)}
}

// toRect pads degenerate bounds, rtreego requires positive extents.
func toRect(b Rect) rtreego.Rect {
	w := math.Max(b.W, PointEpsilon)
	h := math.Max(b.H, PointEpsilon)
	r, err := rtreego.NewRect(rtreego.Point{b.X, b.Y}, []float64{w, h})
	if err != nil {
		panic("bug: invalid bounds for spatial index: " + err.Error())
	}
	return r
}

func (x *rtreeIndex) Insert(id int, bounds Rect) {
	x.tree.Insert(&rtreeEntry{id, toRect(bounds)})
}

func (x *rtreeIndex) QueryOverlapping(bounds Rect) []int {
	hits := x.tree.SearchIntersect(toRect(bounds.Expand(PointEpsilon)))
	ids := make([]int, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.(*rtreeEntry).id)
	}
	sort.Ints(ids)
	return ids
}
