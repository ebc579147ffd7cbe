package planar

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Shape is a closed tagged variant over the result kinds of the Boolean and
// offset operations: a single loop, a loop with holes, or a collection of
// disjoint shapes. Entry points dispatch exhaustively over these three kinds.
type Shape interface {
	Area() float64
	Bounds() Rect
	shape()
}

// Loop is a closed boundary of consecutive curves. The first curve's start
// point equals the last curve's end point within PointEpsilon when the loop is
// used as a Boolean operand.
type Loop struct {
	Curves []Curve
}

// CompoundLoop is an outer boundary with island holes.
type CompoundLoop struct {
	Outer *Loop
	Holes []*Loop
}

// LoopCollection is a set of disjoint shapes.
type LoopCollection struct {
	Shapes []Shape
}

func (l *Loop) shape()           {}
func (l *CompoundLoop) shape()   {}
func (l *LoopCollection) shape() {}

// NewLoop wraps the curves as a loop. The curves are copied so later caller
// mutations cannot corrupt results derived from the loop.
func NewLoop(curves []Curve) *Loop {
	cs := make([]Curve, len(curves))
	copy(cs, curves)
	return &Loop{cs}
}

// Closed returns true if the last curve ends where the first curve starts.
func (l *Loop) Closed() bool {
	if len(l.Curves) == 0 {
		return false
	}
	return l.Curves[len(l.Curves)-1].End().Same(l.Curves[0].Start())
}

// Reverse returns the loop traversed in the opposite direction.
func (l *Loop) Reverse() *Loop {
	cs := make([]Curve, len(l.Curves))
	for i, c := range l.Curves {
		cs[len(l.Curves)-1-i] = c.Reverse()
	}
	return &Loop{cs}
}

// Bounds returns the bounding box of the loop.
func (l *Loop) Bounds() Rect {
	if len(l.Curves) == 0 {
		return Rect{}
	}
	r := l.Curves[0].Bounds()
	for _, c := range l.Curves[1:] {
		r = r.Add(c.Bounds())
	}
	return r
}

// Length returns the total boundary length.
func (l *Loop) Length() float64 {
	d := 0.0
	for _, c := range l.Curves {
		d += c.Length()
	}
	return d
}

// Ring returns the loop flattened to a closed ring at the given flatness.
func (l *Loop) Ring(flatness float64) orb.Ring {
	ring := orb.Ring{}
	for _, c := range l.Curves {
		ps := c.Flatten(flatness)
		for _, p := range ps[:len(ps)-1] {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
	}
	if 0 < len(ring) {
		ring = append(ring, ring[0])
	}
	return ring
}

// Area returns the unsigned enclosed area.
func (l *Loop) Area() float64 {
	return math.Abs(planar.Area(l.Ring(Flatness)))
}

// CCW returns true when the loop is traversed counter clockwise.
func (l *Loop) CCW() bool {
	return l.Ring(Flatness).Orientation() == orb.CCW
}

// Contains returns true when p lies inside the loop. Points on the boundary
// are not reliably classified; callers probe with points off the boundary.
func (l *Loop) Contains(p Point) bool {
	return planar.RingContains(l.Ring(Flatness), orb.Point{p.X, p.Y})
}

// interiorPoint returns a point just inside the boundary, next to the first
// curve's midpoint.
func (l *Loop) interiorPoint() Point {
	c := l.Curves[0]
	mid := c.Pos(0.5)
	bounds := l.Bounds()
	delta := 1e-6 * math.Max(1.0, math.Max(bounds.W, bounds.H))
	n := c.Deriv(0.5).Rot90CCW().Norm(delta) // interior is left of a CCW loop
	if !l.CCW() {
		n = n.Neg()
	}
	return mid.Add(n)
}

func (l *Loop) String() string {
	sb := strings.Builder{}
	sb.WriteString("Loop{")
	for i, c := range l.Curves {
		if 0 < i {
			sb.WriteString(" ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("}")
	return sb.String()
}

////////////////////////////////////////////////////////////////

// Area returns the outer area minus the hole areas.
func (l *CompoundLoop) Area() float64 {
	area := l.Outer.Area()
	for _, hole := range l.Holes {
		area -= hole.Area()
	}
	return area
}

// Bounds returns the outer boundary's bounding box.
func (l *CompoundLoop) Bounds() Rect {
	return l.Outer.Bounds()
}

// Contains returns true when p lies inside the outer loop and outside every
// hole.
func (l *CompoundLoop) Contains(p Point) bool {
	if !l.Outer.Contains(p) {
		return false
	}
	for _, hole := range l.Holes {
		if hole.Contains(p) {
			return false
		}
	}
	return true
}

// Area returns the summed area of the collection.
func (l *LoopCollection) Area() float64 {
	area := 0.0
	for _, s := range l.Shapes {
		area += s.Area()
	}
	return area
}

// Bounds returns the bounding box over the collection.
func (l *LoopCollection) Bounds() Rect {
	if len(l.Shapes) == 0 {
		return Rect{}
	}
	r := l.Shapes[0].Bounds()
	for _, s := range l.Shapes[1:] {
		r = r.Add(s.Bounds())
	}
	return r
}

////////////////////////////////////////////////////////////////

// organizeLoops nests loops into islands and holes by containment depth and
// returns the resulting shape: a bare loop, a compound loop, or a collection.
// Holes are reversed so their orientation opposes their outer boundary.
func organizeLoops(loops []*Loop) Shape {
	if len(loops) == 0 {
		return nil
	}
	if len(loops) == 1 {
		return loops[0]
	}

	depth := make([]int, len(loops))
	parent := make([]int, len(loops))
	for i := range loops {
		parent[i] = -1
	}
	for i, inner := range loops {
		p := inner.interiorPoint()
		for j, outer := range loops {
			if i == j {
				continue
			}
			if outer.Contains(p) {
				depth[i]++
				if parent[i] == -1 || loops[parent[i]].Contains(outer.interiorPoint()) {
					parent[i] = j
				}
			}
		}
	}

	shapes := []Shape{}
	for i, outer := range loops {
		if depth[i]%2 != 0 {
			continue // hole
		}
		holes := []*Loop{}
		for j, inner := range loops {
			if depth[j] == depth[i]+1 && parent[j] == i {
				hole := inner
				if hole.CCW() == outer.CCW() {
					hole = hole.Reverse()
				}
				holes = append(holes, hole)
			}
		}
		if len(holes) == 0 {
			shapes = append(shapes, outer)
		} else {
			shapes = append(shapes, &CompoundLoop{outer, holes})
		}
	}
	if len(shapes) == 1 {
		return shapes[0]
	}
	return &LoopCollection{shapes}
}
