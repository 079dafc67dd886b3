package must2

import (
	"github.com/soypat/paramak"
	"gonum.org/v1/gonum/spatial/r2"
)

// ToroidalFieldCoilCoatHanger is the outboard part of a coat hanger shaped
// toroidal field coil: a horizontal run from HorizontalStart, a diagonal down
// to a vertical leg centred on VerticalMid and the mirrored run below the
// midplane. The profile is extruded by the coil's toroidal thickness.
type ToroidalFieldCoilCoatHanger struct {
	HorizontalStart  r2.Vec
	HorizontalLength float64
	VerticalMid      r2.Vec
	VerticalLength   float64
	Thickness        float64
}

func (c ToroidalFieldCoilCoatHanger) Validate() error {
	const shape = "toroidal field coil coat hanger"
	if err := firstErr(positive(shape, "horizontal_length", c.HorizontalLength), positive(shape, "vertical_length", c.VerticalLength),
		positive(shape, "thickness", c.Thickness), nonNegative(shape, "horizontal_start_point", c.HorizontalStart.X),
		positive(shape, "horizontal_start_point", c.HorizontalStart.Y), finite(shape, "vertical_mid_point", c.VerticalMid.Y)); err != nil {
		return err
	}
	if c.VerticalMid.X <= c.HorizontalStart.X+c.HorizontalLength {
		return paramak.Paramf(shape, "vertical_mid_point", "x %g must lie beyond the horizontal run end %g",
			c.VerticalMid.X, c.HorizontalStart.X+c.HorizontalLength)
	}
	if c.VerticalMid.Y+c.VerticalLength/2 > c.HorizontalStart.Y || c.VerticalMid.Y-c.VerticalLength/2 < -c.HorizontalStart.Y {
		return paramak.Paramf(shape, "vertical_length", "%g reaches past the horizontal runs at z=±%g", c.VerticalLength, c.HorizontalStart.Y)
	}
	return nil
}

// Profile returns the twelve point outline, open toward the inboard side.
func (c ToroidalFieldCoilCoatHanger) Profile() paramak.Profile {
	mustValidate(c)
	hx, hz := c.HorizontalStart.X, c.HorizontalStart.Y
	ex := hx + c.HorizontalLength
	vx, vt, vb := c.VerticalMid.X, c.VerticalMid.Y+c.VerticalLength/2, c.VerticalMid.Y-c.VerticalLength/2
	t := c.Thickness
	p := NewProfile()
	p.Add(hx, hz)
	p.Add(ex, hz)
	p.Add(vx, vt)
	p.Add(vx, vb)
	p.Add(ex, -hz)
	p.Add(hx, -hz)
	p.Add(hx, -hz-t)
	p.Add(ex, -hz-t)
	p.Add(vx+t, vb)
	p.Add(vx+t, vt)
	p.Add(ex, hz+t)
	p.Add(hx, hz+t)
	return p.Profile()
}
