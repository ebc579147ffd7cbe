package planar

// SplitPaths splits a flat, possibly multi-loop, ordered curve list into
// maximal continuous runs. The list is treated as circular: the first curve is
// compared against the last, and the run crossing the list end is rejoined.
func SplitPaths(curves []Curve) [][]Curve {
	if len(curves) == 0 {
		return nil
	}

	discontinuities := []int{}
	for i, c := range curves {
		prev := curves[(i+len(curves)-1)%len(curves)]
		if !prev.End().Same(c.Start()) {
			discontinuities = append(discontinuities, i)
		}
	}
	if len(discontinuities) == 0 {
		run := make([]Curve, len(curves))
		copy(run, curves)
		return [][]Curve{run}
	}

	runs := [][]Curve{}
	for k := 0; k+1 < len(discontinuities); k++ {
		run := make([]Curve, discontinuities[k+1]-discontinuities[k])
		copy(run, curves[discontinuities[k]:discontinuities[k+1]])
		runs = append(runs, run)
	}

	// wrap-around run from the tail after the last discontinuity to the head
	// before the first
	last := discontinuities[len(discontinuities)-1]
	run := make([]Curve, 0, len(curves)-last+discontinuities[0])
	run = append(run, curves[last:]...)
	run = append(run, curves[:discontinuities[0]]...)
	return append(runs, run)
}
