package planar

import (
	"fmt"
	"math"
)

// Epsilon is the base tolerance under which coordinates and parameters are
// considered equal. The scaled tolerances below serve call sites that run at a
// different precision regime; they are passed explicitly where a routine must
// be reusable at several regimes.
const Epsilon = 1e-10

// PointEpsilon is the tolerance under which two points are the same
// topological node. It is coarser than Epsilon since node positions accumulate
// error from intersecting and splitting.
const PointEpsilon = 100.0 * Epsilon

// JoinEpsilon is the gap under which two consecutive offset curves count as
// already joined.
const JoinEpsilon = 1000.0 * Epsilon

// PruneEpsilon is the slack on the offset distance when pruning
// self-intersection artifacts: a fragment closer than |d|-PruneEpsilon to the
// source boundary is an artifact.
const PruneEpsilon = 1e-7

// Flatness is the maximum deviation of a flattened polyline from its curve.
const Flatness = 1e-4

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Interval returns true if f is in closed interval [lower,upper], where lower
// and upper are extended by Epsilon.
func Interval(f, lower, upper float64) bool {
	return lower-Epsilon <= f && f <= upper+Epsilon
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

// angleBetween is true when theta is in range (lower,upper) excluding the end
// points. Angles can be outside the [0,2PI) range.
func angleBetween(theta, lower, upper float64) bool {
	sweep := lower <= upper // true for CCW, ie along a positive angle
	theta = angleNorm(theta - lower)
	upper = angleNorm(upper - lower)
	if theta != 0.0 && (sweep && theta < upper || !sweep && theta > upper) {
		return true
	}
	return false
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through
// the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Same returns true if P and Q are the same topological node, ie. equal with
// tolerance PointEpsilon.
func (p Point) Same(q Point) bool {
	return math.Abs(p.X-q.X) < PointEpsilon && math.Abs(p.Y-q.Y) < PointEpsilon
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Rot90CW rotates the line OP by 90 degrees CW.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Rot rotates the line OP by phi radians CCW around point p0.
func (p Point) Rot(phi float64, p0 Point) Point {
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		p0.X + cosphi*(p.X-p0.X) - sinphi*(p.Y-p0.Y),
		p0.Y + sinphi*(p.X-p0.X) + cosphi*(p.Y-p0.Y),
	}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and
// |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned
// and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle in radians [0,2PI) between the x-axis and OP.
func (p Point) Angle() float64 {
	return angleNorm(math.Atan2(p.Y, p.X))
}

// AngleBetween returns the angle between OP and OQ.
func (p Point) AngleBetween(q Point) float64 {
	return math.Atan2(p.PerpDot(q), p.Dot(q))
}

// Norm normalizes OP to be of given length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if Equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t in
// [0,1], ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1.0-t)*p.X + t*q.X, (1.0-t)*p.Y + t*q.Y}
}

// String returns the string representation of a point, such as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle in 2D defined by its lower-left position
// and its width and height.
type Rect struct {
	X, Y, W, H float64
}

func rectFromPoints(ps ...Point) Rect {
	xmin, ymin := math.Inf(1.0), math.Inf(1.0)
	xmax, ymax := math.Inf(-1.0), math.Inf(-1.0)
	for _, p := range ps {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// Add returns a rect that encompasses both the current rect and the given rect.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Expand returns the rect grown by e on every side.
func (r Rect) Expand(e float64) Rect {
	return Rect{r.X - e, r.Y - e, r.W + 2.0*e, r.H + 2.0*e}
}

// Overlaps returns true if both rectangles overlap.
func (r Rect) Overlaps(q Rect) bool {
	if q.X+q.W < r.X || r.X+r.W < q.X {
		return false
	}
	if q.Y+q.H < r.Y || r.Y+r.H < q.Y {
		return false
	}
	return true
}

// String returns the string representation as "(xmin,ymin)-(xmax,ymax)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

////////////////////////////////////////////////////////////////

// see https://www.geometrictools.com/Documentation/LowDegreePolynomialRoots.pdf
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if Equal(a, 0.0) {
		if Equal(b, 0.0) {
			if Equal(c, 0.0) {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// linear term disappears, no solutions
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if Equal(c, 0.0) {
		// no constant term, one solution at zero and one from solving linearly
		if Equal(b, 0.0) {
			return 0.0, math.NaN()
		}
		return 0.0, -b / a
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if Equal(discriminant, 0.0) {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation when sqrt(discriminant) is close to b by
	// using the mathematically equivalent expression x = 2c/(-b -/+ sqrt(D)),
	// which is stable in that case.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// see https://www.geometrictools.com/GTE/Mathematics/RootsPolynomial.h
func solveCubicFormula(a, b, c, d float64) (float64, float64, float64) {
	x1, x2, x3 := math.NaN(), math.NaN(), math.NaN()
	if Equal(a, 0.0) {
		x1, x2 = solveQuadraticFormula(b, c, d)
	} else {
		// obtain monic polynomial: x^3 + b.x^2 + c.x + d = 0
		b /= a
		c /= a
		d /= a

		// obtain depressed polynomial: x^3 + p.x + q = 0
		bthird := b / 3.0
		p := c - 3.0*bthird*bthird
		q := d - bthird*(c-2.0*bthird*bthird)
		if Equal(p, 0.0) {
			x1 = math.Cbrt(-q) - bthird
		} else if Equal(q, 0.0) {
			x1 = -bthird
			if -p > 0.0 {
				tmp := math.Sqrt(-p)
				x2 = -tmp - bthird
				x3 = tmp - bthird
			}
		} else {
			discriminant := -(4.0*p*p*p + 27.0*q*q)
			if discriminant < 0.0 {
				tmp := math.Sqrt(-discriminant / 108.0)
				delta := math.Cbrt(-q/2.0+tmp) + math.Cbrt(-q/2.0-tmp)
				x1 = delta - bthird
			} else if discriminant == 0.0 {
				tmp := 3.0 * q / p
				x1 = tmp - bthird
				x2 = -tmp/2.0 - bthird
			} else {
				tmp := 2.0 * math.Sqrt(-p/3.0)
				theta := math.Acos(3.0*q/p/tmp) / 3.0
				x1 = tmp*math.Cos(theta) - bthird
				x2 = tmp*math.Cos(theta-2.0*math.Pi/3.0) - bthird
				x3 = tmp*math.Cos(theta-4.0*math.Pi/3.0) - bthird
			}
		}
	}

	// sort, NaNs last
	if x3 < x2 || math.IsNaN(x2) && !math.IsNaN(x3) {
		x2, x3 = x3, x2
	}
	if x2 < x1 || math.IsNaN(x1) && !math.IsNaN(x2) {
		x1, x2 = x2, x1
	}
	if x3 < x2 || math.IsNaN(x2) && !math.IsNaN(x3) {
		x2, x3 = x3, x2
	}
	return x1, x2, x3
}
