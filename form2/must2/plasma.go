package must2

import (
	"math"

	"github.com/soypat/paramak"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultPlasmaPoints is the number of points on the plasma boundary when
// Plasma.NumPoints is zero.
const DefaultPlasmaPoints = 50

// Plasma is a plasma cross-section described by its shaping parameters.
// The boundary is
//
//	x(θ) = R + a·cos(θ + δ·sin θ)
//	z(θ) = κ·a·sin θ + dz
//
// with major radius R, minor radius a, elongation κ, triangularity δ and
// vertical displacement dz.
type Plasma struct {
	MajorRadius          float64
	MinorRadius          float64
	Elongation           float64
	Triangularity        float64
	VerticalDisplacement float64
	NumPoints            int
}

func (p Plasma) Validate() error {
	const shape = "plasma"
	if err := firstErr(positive(shape, "minor_radius", p.MinorRadius), positive(shape, "major_radius", p.MajorRadius),
		positive(shape, "elongation", p.Elongation), finite(shape, "triangularity", p.Triangularity),
		finite(shape, "vertical_displacement", p.VerticalDisplacement)); err != nil {
		return err
	}
	if p.MinorRadius >= p.MajorRadius {
		return paramak.Paramf(shape, "minor_radius", "%g must be smaller than major radius %g", p.MinorRadius, p.MajorRadius)
	}
	if math.Abs(p.Triangularity) > 1 {
		return paramak.Paramf(shape, "triangularity", "%g outside [-1, 1]", p.Triangularity)
	}
	if p.NumPoints < 0 || (p.NumPoints > 0 && p.NumPoints < 8) {
		return paramak.Paramf(shape, "num_points", "need at least 8 points, got %d", p.NumPoints)
	}
	return nil
}

// At returns the boundary point at poloidal angle theta (radians).
func (p Plasma) At(theta float64) r2.Vec {
	return r2.Vec{
		X: p.MajorRadius + p.MinorRadius*math.Cos(theta+p.Triangularity*math.Sin(theta)),
		Y: p.Elongation*p.MinorRadius*math.Sin(theta) + p.VerticalDisplacement,
	}
}

// Normal returns the outward unit normal of the boundary at theta (radians).
func (p Plasma) Normal(theta float64) r2.Vec {
	dx := -p.MinorRadius * math.Sin(theta+p.Triangularity*math.Sin(theta)) * (1 + p.Triangularity*math.Cos(theta))
	dz := p.Elongation * p.MinorRadius * math.Cos(theta)
	return r2.Unit(r2.Vec{X: dz, Y: -dx})
}

// HighPoint returns the top of the plasma.
func (p Plasma) HighPoint() r2.Vec { return p.At(math.Pi / 2) }

// LowPoint returns the bottom of the plasma.
func (p Plasma) LowPoint() r2.Vec { return p.At(-math.Pi / 2) }

// InnerEquatorialPoint returns the innermost point of the plasma midplane.
func (p Plasma) InnerEquatorialPoint() r2.Vec {
	return r2.Vec{X: p.MajorRadius - p.MinorRadius, Y: p.VerticalDisplacement}
}

// OuterEquatorialPoint returns the outermost point of the plasma midplane.
func (p Plasma) OuterEquatorialPoint() r2.Vec {
	return r2.Vec{X: p.MajorRadius + p.MinorRadius, Y: p.VerticalDisplacement}
}

// Profile returns the plasma boundary as one closed spline.
func (p Plasma) Profile() paramak.Profile {
	mustValidate(p)
	n := p.NumPoints
	if n == 0 {
		n = DefaultPlasmaPoints
	}
	prof := NewProfile()
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		prof.AddV2(p.At(theta)).Spline()
	}
	return prof.Profile()
}
