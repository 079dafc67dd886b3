package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Mid returns the midpoint of a and b.
func Mid(a, b r2.Vec) r2.Vec {
	return r2.Scale(0.5, r2.Add(a, b))
}

type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the smallest box containing every vector of the set.
func (a Set) Bounds() r2.Box {
	if len(a) == 0 {
		return r2.Box{}
	}
	return r2.Box{Min: a.Min(), Max: a.Max()}
}

// Length returns the length of the open polyline through the set.
func (a Set) Length() (l float64) {
	for i := 1; i < len(a); i++ {
		l += r2.Norm(r2.Sub(a[i], a[i-1]))
	}
	return l
}

// Overlap returns true if 1D line segments a and b overlap.
func Overlap(a, b r2.Vec) bool {
	return a.Y >= b.X && b.Y >= a.X
}
