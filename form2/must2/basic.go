// Package must2 generates the connection tagged cross-section profiles of
// reactor components. Generators panic on invalid parameters; package form2
// wraps them into error returning calls.
package must2

import (
	"math"

	"github.com/soypat/paramak"
	"gonum.org/v1/gonum/spatial/r2"
)

// Shape is a parametric cross-section.
type Shape interface {
	// Validate checks the shape parameters.
	Validate() error
	// Profile validates the parameters and returns the cross-section.
	// It panics with the validation error on invalid parameters.
	Profile() paramak.Profile
}

func mustValidate(s Shape) {
	if err := s.Validate(); err != nil {
		panic(err)
	}
}

func mustExtend(from, through r2.Vec, distance float64) r2.Vec {
	p, err := paramak.Extend(from, through, distance)
	if err != nil {
		panic(err)
	}
	return p
}

func finite(shape, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return paramak.Paramf(shape, param, "must be finite, got %g", v)
	}
	return nil
}

func positive(shape, param string, v float64) error {
	if err := finite(shape, param, v); err != nil {
		return err
	}
	if v <= 0 {
		return paramak.Paramf(shape, param, "must be positive, got %g", v)
	}
	return nil
}

func nonNegative(shape, param string, v float64) error {
	if err := finite(shape, param, v); err != nil {
		return err
	}
	if v < 0 {
		return paramak.Paramf(shape, param, "must not be negative, got %g", v)
	}
	return nil
}

// firstErr returns the first non nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// 2D Rectangle

// Rectangle is an axis aligned rectangle spanning X and Z.
type Rectangle struct {
	X [2]float64 // radial start and end
	Z [2]float64 // vertical start and end
}

func (r Rectangle) Validate() error {
	const shape = "rectangle"
	for i := 0; i < 2; i++ {
		if err := firstErr(nonNegative(shape, "x", r.X[i]), finite(shape, "z", r.Z[i])); err != nil {
			return err
		}
	}
	if r.X[0] == r.X[1] {
		return paramak.Paramf(shape, "x", "zero width at x=%g", r.X[0])
	}
	if r.Z[0] == r.Z[1] {
		return paramak.Paramf(shape, "z", "zero height at z=%g", r.Z[0])
	}
	return nil
}

// Profile returns the rectangle corners, counter-clockwise from (X[0], Z[0]).
func (r Rectangle) Profile() paramak.Profile {
	mustValidate(r)
	p := NewProfile()
	p.Add(r.X[0], r.Z[0])
	p.Add(r.X[1], r.Z[0])
	p.Add(r.X[1], r.Z[1])
	p.Add(r.X[0], r.Z[1])
	return p.Profile()
}

// Poloidal field coil

// PoloidalFieldCoil is the rectangular cross-section of a poloidal field coil.
type PoloidalFieldCoil struct {
	Center r2.Vec
	Width  float64 // radial
	Height float64 // vertical
}

func (c PoloidalFieldCoil) Validate() error {
	const shape = "poloidal field coil"
	if err := firstErr(positive(shape, "width", c.Width), positive(shape, "height", c.Height),
		finite(shape, "center", c.Center.X), finite(shape, "center", c.Center.Y)); err != nil {
		return err
	}
	if c.Center.X-c.Width/2 < 0 {
		return paramak.Paramf(shape, "center", "coil crosses the axis: center x %g < width/2 %g", c.Center.X, c.Width/2)
	}
	return nil
}

// Profile returns the coil corners in the order upper-right, lower-right,
// lower-left, upper-left.
func (c PoloidalFieldCoil) Profile() paramak.Profile {
	mustValidate(c)
	hw, hh := c.Width/2, c.Height/2
	p := NewProfile()
	p.Add(c.Center.X+hw, c.Center.Y+hh)
	p.Add(c.Center.X+hw, c.Center.Y-hh)
	p.Add(c.Center.X-hw, c.Center.Y-hh)
	p.Add(c.Center.X-hw, c.Center.Y+hh)
	return p.Profile()
}

// PoloidalFieldCoilCase is the outline of the case wrapped around a coil.
// The returned profile is solid; cut the coil from it to get the case shell.
type PoloidalFieldCoilCase struct {
	Coil      PoloidalFieldCoil
	Thickness float64
}

func (c PoloidalFieldCoilCase) Validate() error {
	if err := c.Coil.Validate(); err != nil {
		return err
	}
	if err := positive("poloidal field coil case", "thickness", c.Thickness); err != nil {
		return err
	}
	outer := c.outer()
	if outer.Center.X-outer.Width/2 < 0 {
		return paramak.Paramf("poloidal field coil case", "thickness", "case crosses the axis")
	}
	return nil
}

func (c PoloidalFieldCoilCase) outer() PoloidalFieldCoil {
	return PoloidalFieldCoil{
		Center: c.Coil.Center,
		Width:  c.Coil.Width + 2*c.Thickness,
		Height: c.Coil.Height + 2*c.Thickness,
	}
}

// Profile returns the outer outline of the case with the coil corner order.
func (c PoloidalFieldCoilCase) Profile() paramak.Profile {
	mustValidate(c)
	return c.outer().Profile()
}
