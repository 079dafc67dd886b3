package paramak

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi        = math.Pi
	tau       = 2 * pi
	tolerance = 1e-9
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Rotate rotates p about pivot by angle radians. Positive angles rotate
// counter-clockwise.
func Rotate(pivot, p r2.Vec, angle float64) r2.Vec {
	if math.Abs(math.Remainder(angle, tau)) < tolerance*tolerance {
		return p
	}
	return r2.Rotate(p, angle, pivot)
}

// Extend returns the point on the ray from `from` through `through` that lies
// at distance from `from`. Negative distances walk the ray backwards.
func Extend(from, through r2.Vec, distance float64) (r2.Vec, error) {
	dir := r2.Sub(through, from)
	n := r2.Norm(dir)
	if n < tolerance {
		return r2.Vec{}, fmt.Errorf("extend from %v through %v: %w", from, through, ErrDegenerateGeometry)
	}
	return r2.Add(from, r2.Scale(distance/n, dir)), nil
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b r2.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// EqualWithin reports whether a and b are equal within an absolute or
// relative tolerance tol.
func EqualWithin(a, b, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}
