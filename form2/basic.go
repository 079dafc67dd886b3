// Package form2 returns the cross-section profiles of reactor components,
// reporting invalid parameters as errors instead of panicking.
package form2

import (
	"runtime/debug"

	"github.com/soypat/paramak"
	"github.com/soypat/paramak/form2/must2"
)

// Profile validates the shape parameters and returns its cross-section.
// Errors wrap paramak.ErrInvalidParameter or paramak.ErrDegenerateGeometry.
func Profile(s must2.Shape) (p paramak.Profile, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.Profile(), err
}

// CenterColumnCylinder returns the profile of a rectangular center column shield.
func CenterColumnCylinder(innerRadius, outerRadius, height float64) (paramak.Profile, error) {
	return Profile(must2.CenterColumnCylinder{InnerRadius: innerRadius, OuterRadius: outerRadius, Height: height})
}

// CenterColumnHyperbola returns the profile of a hyperbolic center column shield.
func CenterColumnHyperbola(innerRadius, midRadius, outerRadius, height float64) (paramak.Profile, error) {
	return Profile(must2.CenterColumnHyperbola{InnerRadius: innerRadius, MidRadius: midRadius, OuterRadius: outerRadius, Height: height})
}

// CenterColumnCircular returns the profile of a center column shield with a
// circular outer face.
func CenterColumnCircular(innerRadius, midRadius, outerRadius, height float64) (paramak.Profile, error) {
	return Profile(must2.CenterColumnCircular{InnerRadius: innerRadius, MidRadius: midRadius, OuterRadius: outerRadius, Height: height})
}

// PoloidalFieldCoil returns the rectangular profile of a coil.
func PoloidalFieldCoil(coil must2.PoloidalFieldCoil) (paramak.Profile, error) {
	return Profile(coil)
}

// ITERDivertor returns the profile of an ITER-like divertor.
func ITERDivertor(d must2.ITERDivertor) (paramak.Profile, error) {
	return Profile(d)
}

// InboardFirstwall returns the profile of a first wall around a center
// column shield.
func InboardFirstwall(shield must2.Shield, thickness float64) (paramak.Profile, error) {
	return Profile(must2.InboardFirstwall{Shield: shield, Thickness: thickness})
}
