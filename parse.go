package planar

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int, error) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0, fmt.Errorf("expected number at position %d", i)
	}
	return f, i + n, nil
}

// ParseSVGPath parses SVG path data into flat curve lists, one per subpath.
// It supports the M, L, H, V, C, S, Q, T, A and Z commands, absolute and
// relative. Malformed path data is a recoverable error.
func ParseSVGPath(sPath string) ([][]Curve, error) {
	path := []byte(sPath)
	subpaths := [][]Curve{}
	cs := []Curve{}

	flush := func() {
		if 0 < len(cs) {
			subpaths = append(subpaths, cs)
			cs = []Curve{}
		}
	}

	var prevCmd byte
	var start, pos, cp Point
	nums := make([]float64, 7)
	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			// Z takes no coordinates, a repeat would not advance
			return nil, fmt.Errorf("expected command at position %d", i)
		}

		n := 0
		switch cmd {
		case 'M', 'm', 'L', 'l', 'T', 't':
			n = 2
		case 'H', 'h', 'V', 'v':
			n = 1
		case 'C', 'c':
			n = 6
		case 'S', 's', 'Q', 'q':
			n = 4
		case 'A', 'a':
			n = 7
		case 'Z', 'z':
			n = 0
		default:
			return nil, fmt.Errorf("unknown command '%c' at position %d", cmd, i)
		}
		for k := 0; k < n; k++ {
			if (cmd == 'A' || cmd == 'a') && (k == 3 || k == 4) {
				// the flags are single characters, "011" is two flags and a
				// coordinate
				i += skipCommaWhitespace(path[i:])
				if len(path) <= i || path[i] != '0' && path[i] != '1' {
					return nil, fmt.Errorf("expected arc flag at position %d", i)
				}
				nums[k] = float64(path[i] - '0')
				i++
				continue
			}
			f, di, err := parseNum(path[i:])
			if err != nil {
				return nil, err
			}
			nums[k] = f
			i += di
		}

		switch cmd {
		case 'M', 'm':
			flush()
			p := Point{nums[0], nums[1]}
			if cmd == 'm' {
				p = pos.Add(p)
			}
			start, pos = p, p
			// further coordinates are implicit LineTos
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z', 'z':
			if !pos.Same(start) {
				cs = append(cs, Line{pos, start})
			}
			pos = start
			flush()
		case 'L', 'l':
			p := Point{nums[0], nums[1]}
			if cmd == 'l' {
				p = pos.Add(p)
			}
			cs = append(cs, Line{pos, p})
			pos = p
		case 'H', 'h':
			x := nums[0]
			if cmd == 'h' {
				x += pos.X
			}
			p := Point{x, pos.Y}
			cs = append(cs, Line{pos, p})
			pos = p
		case 'V', 'v':
			y := nums[0]
			if cmd == 'v' {
				y += pos.Y
			}
			p := Point{pos.X, y}
			cs = append(cs, Line{pos, p})
			pos = p
		case 'C', 'c':
			p1 := Point{nums[0], nums[1]}
			p2 := Point{nums[2], nums[3]}
			p := Point{nums[4], nums[5]}
			if cmd == 'c' {
				p1, p2, p = pos.Add(p1), pos.Add(p2), pos.Add(p)
			}
			cs = append(cs, CubicBezier{pos, p1, p2, p})
			cp, pos = p2, p
		case 'S', 's':
			p2 := Point{nums[0], nums[1]}
			p := Point{nums[2], nums[3]}
			if cmd == 's' {
				p2, p = pos.Add(p2), pos.Add(p)
			}
			p1 := pos
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				p1 = pos.Mul(2.0).Sub(cp)
			}
			cs = append(cs, CubicBezier{pos, p1, p2, p})
			cp, pos = p2, p
		case 'Q', 'q':
			p1 := Point{nums[0], nums[1]}
			p := Point{nums[2], nums[3]}
			if cmd == 'q' {
				p1, p = pos.Add(p1), pos.Add(p)
			}
			cs = append(cs, QuadBezier{pos, p1, p})
			cp, pos = p1, p
		case 'T', 't':
			p := Point{nums[0], nums[1]}
			if cmd == 't' {
				p = pos.Add(p)
			}
			p1 := pos
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				p1 = pos.Mul(2.0).Sub(cp)
			}
			cs = append(cs, QuadBezier{pos, p1, p})
			cp, pos = p1, p
		case 'A', 'a':
			rx, ry, rot := nums[0], nums[1], nums[2]
			large := math.Abs(nums[3]-1.0) < Epsilon
			sweep := math.Abs(nums[4]-1.0) < Epsilon
			p := Point{nums[5], nums[6]}
			if cmd == 'a' {
				p = pos.Add(p)
			}
			arc, ok := arcFromEndpoints(pos, rx, ry, rot*math.Pi/180.0, large, sweep, p)
			if ok {
				cs = append(cs, arc)
			} else if !pos.Same(p) {
				cs = append(cs, Line{pos, p})
			}
			pos = p
		}
		prevCmd = cmd
	}
	flush()
	return subpaths, nil
}

// ParseLoop parses SVG path data holding exactly one closed subpath.
func ParseLoop(sPath string) (*Loop, error) {
	subpaths, err := ParseSVGPath(sPath)
	if err != nil {
		return nil, err
	}
	if len(subpaths) != 1 {
		return nil, fmt.Errorf("expected one subpath, got %d", len(subpaths))
	}
	l := &Loop{subpaths[0]}
	if !l.Closed() {
		return nil, fmt.Errorf("subpath is not closed")
	}
	return l, nil
}

// ParseLoops parses SVG path data into one loop per closed subpath.
func ParseLoops(sPath string) ([]*Loop, error) {
	subpaths, err := ParseSVGPath(sPath)
	if err != nil {
		return nil, err
	}
	loops := make([]*Loop, len(subpaths))
	for i, cs := range subpaths {
		loops[i] = &Loop{cs}
		if !loops[i].Closed() {
			return nil, fmt.Errorf("subpath %d is not closed", i)
		}
	}
	return loops, nil
}

// arcFromEndpoints converts an SVG endpoint arc to center parameterization.
// see https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
func arcFromEndpoints(p0 Point, rx, ry, phi float64, large, sweep bool, p1 Point) (Arc, bool) {
	if p0.Same(p1) || Equal(rx, 0.0) || Equal(ry, 0.0) {
		return Arc{}, false
	}
	rx, ry = math.Abs(rx), math.Abs(ry)

	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(p0.X-p1.X)/2.0 + sinphi*(p0.Y-p1.Y)/2.0
	y1p := -sinphi*(p0.X-p1.X)/2.0 + cosphi*(p0.Y-p1.Y)/2.0

	// scale up radii that cannot span the endpoints
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if 1.0 < radiiCheck {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (p0.X+p1.X)/2.0
	cy := sinphi*cxp + cosphi*cyp + (p0.Y+p1.Y)/2.0

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}
	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && 0.0 < delta {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return Arc{Point{cx, cy}, rx, ry, phi, theta, theta + delta}, true
}
