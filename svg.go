package planar

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

func ftos(f float64) string {
	return fmt.Sprintf("%g", f)
}

// PathData serializes the loop as SVG path data.
func (l *Loop) PathData() string {
	if len(l.Curves) == 0 {
		return ""
	}
	sb := strings.Builder{}
	start := l.Curves[0].Start()
	sb.WriteString("M" + ftos(start.X) + " " + ftos(start.Y))
	for _, c := range l.Curves {
		switch t := c.(type) {
		case Line:
			sb.WriteString("L" + ftos(t.P1.X) + " " + ftos(t.P1.Y))
		case QuadBezier:
			sb.WriteString("Q" + ftos(t.P1.X) + " " + ftos(t.P1.Y))
			sb.WriteString(" " + ftos(t.P2.X) + " " + ftos(t.P2.Y))
		case CubicBezier:
			sb.WriteString("C" + ftos(t.P1.X) + " " + ftos(t.P1.Y))
			sb.WriteString(" " + ftos(t.P2.X) + " " + ftos(t.P2.Y))
			sb.WriteString(" " + ftos(t.P3.X) + " " + ftos(t.P3.Y))
		case Arc:
			delta := t.Theta1 - t.Theta0
			large, sweep := "0", "0"
			if math.Pi < math.Abs(delta) {
				large = "1"
			}
			if 0.0 < delta {
				sweep = "1"
			}
			end := t.End()
			if t.Start().Same(end) {
				// a full sweep needs two arc commands in SVG
				mid := t.Pos(0.5)
				sb.WriteString("A" + ftos(t.Rx) + " " + ftos(t.Ry) + " " + ftos(t.Phi*180.0/math.Pi))
				sb.WriteString(" 0 " + sweep + " " + ftos(mid.X) + " " + ftos(mid.Y))
				sb.WriteString("A" + ftos(t.Rx) + " " + ftos(t.Ry) + " " + ftos(t.Phi*180.0/math.Pi))
				sb.WriteString(" 0 " + sweep + " " + ftos(end.X) + " " + ftos(end.Y))
			} else {
				sb.WriteString("A" + ftos(t.Rx) + " " + ftos(t.Ry) + " " + ftos(t.Phi*180.0/math.Pi))
				sb.WriteString(" " + large + " " + sweep + " " + ftos(end.X) + " " + ftos(end.Y))
			}
		default:
			for _, p := range c.Flatten(Flatness)[1:] {
				sb.WriteString("L" + ftos(p.X) + " " + ftos(p.Y))
			}
		}
	}
	sb.WriteString("z")
	return sb.String()
}

// holes become separate subpaths relying on even-odd filling
func pathData(s Shape) string {
	switch t := s.(type) {
	case *Loop:
		return t.PathData()
	case *CompoundLoop:
		ds := []string{t.Outer.PathData()}
		for _, hole := range t.Holes {
			ds = append(ds, hole.PathData())
		}
		return strings.Join(ds, "")
	case *LoopCollection:
		ds := []string{}
		for _, sub := range t.Shapes {
			ds = append(ds, pathData(sub))
		}
		return strings.Join(ds, "")
	}
	panic("bug: unknown shape kind")
}

// PathData serializes any shape as SVG path data.
func PathData(s Shape) string {
	if s == nil {
		return ""
	}
	return pathData(s)
}

// WriteSVG writes the shapes to w as a standalone SVG image for inspection.
// The viewport is fitted to the shapes with a margin.
func WriteSVG(w io.Writer, shapes ...Shape) {
	bounds := Rect{}
	first := true
	for _, s := range shapes {
		if s == nil {
			continue
		}
		if first {
			bounds = s.Bounds()
			first = false
		} else {
			bounds = bounds.Add(s.Bounds())
		}
	}
	bounds = bounds.Expand(math.Max(bounds.W, bounds.H)*0.05 + 1.0)

	canvas := svg.New(w)
	canvas.Start(800, 800, fmt.Sprintf(`viewBox="%g %g %g %g"`, bounds.X, bounds.Y, bounds.W, bounds.H))
	styles := []string{
		"fill:none;stroke:black;stroke-width:0.5%;fill-rule:evenodd",
		"fill:none;stroke:red;stroke-width:0.5%;fill-rule:evenodd",
		"fill:none;stroke:blue;stroke-width:0.5%;fill-rule:evenodd",
	}
	for i, s := range shapes {
		if s == nil {
			continue
		}
		canvas.Path(PathData(s), styles[i%len(styles)])
	}
	canvas.End()
}
