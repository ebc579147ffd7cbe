package planar

// BooleanResult is the outcome of the low-level Boolean assembly. Either
// Shape holds the assembled boundary (nil when the result is empty), or
// Containment describes a no-intersection configuration for the caller to
// interpret.
type BooleanResult struct {
	Shape       Shape
	Containment *Containment
}

// BooleanOperation runs the configured Boolean assembly on two closed loops.
// Open loops are not supported as operands and self-intersecting inputs are
// undefined behavior.
func BooleanOperation(first, second *Loop, cfg BoolConfig) BooleanResult {
	shape, containment := booleanAssemble(first, second, cfg, Ops())
	return BooleanResult{shape, containment}
}

// Fuse returns the union of both loops: a single loop, a compound loop, or a
// collection of disjoint loops.
func Fuse(first, second *Loop) Shape {
	res := BooleanOperation(first, second, BoolConfig{Remove, Remove})
	if res.Containment == nil {
		return res.Shape
	}
	c := res.Containment
	switch {
	case c.Identical:
		return first
	case c.FirstInSecond:
		return second
	case c.SecondInFirst:
		return first
	default:
		return &LoopCollection{[]Shape{first, second}}
	}
}

// Cut returns the difference first minus second: nil when first vanishes,
// first with second as a hole when second lies strictly inside, or the
// assembled boundary.
func Cut(first, second *Loop) Shape {
	res := BooleanOperation(first, second, BoolConfig{Remove, Keep})
	if res.Containment == nil {
		return res.Shape
	}
	c := res.Containment
	switch {
	case c.Identical:
		return nil
	case c.FirstInSecond:
		return nil
	case c.SecondInFirst:
		hole := second
		if hole.CCW() == first.CCW() {
			hole = hole.Reverse()
		}
		return &CompoundLoop{first, []*Loop{hole}}
	default:
		return first
	}
}

// Intersect returns the overlap of both loops, or nil when they are disjoint.
func Intersect(first, second *Loop) Shape {
	res := BooleanOperation(first, second, BoolConfig{Keep, Keep})
	if res.Containment == nil {
		return res.Shape
	}
	c := res.Containment
	switch {
	case c.Identical:
		return first
	case c.FirstInSecond:
		return first
	case c.SecondInFirst:
		return second
	default:
		return nil
	}
}
