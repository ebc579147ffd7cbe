package planar

import (
	"math"
)

// Rectangle returns a CCW rectangle loop with lower-left corner (x,y), width w
// and height h.
func Rectangle(x, y, w, h float64) *Loop {
	return Polygon(
		Point{x, y},
		Point{x + w, y},
		Point{x + w, y + h},
		Point{x, y + h},
	)
}

// Polygon returns the closed polygon loop through the given corner points.
func Polygon(ps ...Point) *Loop {
	if len(ps) < 3 {
		return &Loop{}
	}
	cs := make([]Curve, 0, len(ps))
	for i, p := range ps {
		q := ps[(i+1)%len(ps)]
		if !p.Same(q) {
			cs = append(cs, Line{p, q})
		}
	}
	return &Loop{cs}
}

// Circle returns a CCW circle loop with center (x,y) and radius r, as a
// single full arc.
func Circle(x, y, r float64) *Loop {
	return Ellipse(x, y, r, r)
}

// Ellipse returns a CCW ellipse loop with center (x,y) and radii rx and ry.
func Ellipse(x, y, rx, ry float64) *Loop {
	return &Loop{[]Curve{
		Arc{Point{x, y}, rx, ry, 0.0, 0.0, 2.0 * math.Pi},
	}}
}

// RoundedRectangle returns a CCW rectangle loop with the corners rounded by
// radius r. The radius is clamped to half the smaller side.
func RoundedRectangle(x, y, w, h, r float64) *Loop {
	r = math.Min(r, math.Min(w, h)/2.0)
	if r < PointEpsilon {
		return Rectangle(x, y, w, h)
	}
	halfPi := math.Pi / 2.0
	cs := []Curve{
		Line{Point{x + r, y}, Point{x + w - r, y}},
		Arc{Point{x + w - r, y + r}, r, r, 0.0, -halfPi, 0.0},
		Line{Point{x + w, y + r}, Point{x + w, y + h - r}},
		Arc{Point{x + w - r, y + h - r}, r, r, 0.0, 0.0, halfPi},
		Line{Point{x + w - r, y + h}, Point{x + r, y + h}},
		Arc{Point{x + r, y + h - r}, r, r, 0.0, halfPi, math.Pi},
		Line{Point{x, y + h - r}, Point{x, y + r}},
		Arc{Point{x + r, y + r}, r, r, 0.0, math.Pi, 3.0 * halfPi},
	}
	return &Loop{cs}
}
