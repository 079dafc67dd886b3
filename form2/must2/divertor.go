package must2

import (
	"math"

	"github.com/soypat/paramak"
	"gonum.org/v1/gonum/spatial/r2"
)

// ITERDivertor is an ITER-like divertor made of an inner and an outer vertical
// target, an optional dome between them and a casing below. Index 0 of each
// pair refers to the inner target and index 1 to the outer target.
type ITERDivertor struct {
	// Anchors are the top points of the vertical targets.
	Anchors [2]r2.Vec
	// Coverages are the anticlockwise angular coverages of the circular
	// parts of the targets in degrees.
	Coverages [2]float64
	// Radii of the circular parts of the targets.
	Radii [2]float64
	// Lengths of the straight target legs.
	Lengths [2]float64
	// Tilts are the anticlockwise tilts of the targets in degrees.
	Tilts [2]float64

	Dome          bool
	DomeHeight    float64
	DomeLength    float64
	DomeThickness float64
	// DomePos is the fractional position of the dome between the ends of
	// the two target legs.
	DomePos float64
}

// DefaultITERDivertor returns the reference ITER-like divertor.
func DefaultITERDivertor() ITERDivertor {
	return ITERDivertor{
		Anchors:       [2]r2.Vec{{X: 450, Y: -300}, {X: 561, Y: -367}},
		Coverages:     [2]float64{90, 180},
		Radii:         [2]float64{50, 25},
		Lengths:       [2]float64{78, 87},
		Tilts:         [2]float64{-27, 0},
		Dome:          true,
		DomeHeight:    43,
		DomeLength:    66,
		DomeThickness: 10,
		DomePos:       0.5,
	}
}

func (d ITERDivertor) Validate() error {
	const shape = "ITER divertor"
	for i := 0; i < 2; i++ {
		err := firstErr(
			finite(shape, "anchors", d.Anchors[i].X), finite(shape, "anchors", d.Anchors[i].Y),
			positive(shape, "coverages", d.Coverages[i]), positive(shape, "radii", d.Radii[i]),
			positive(shape, "lengths", d.Lengths[i]), finite(shape, "tilts", d.Tilts[i]),
		)
		if err != nil {
			return err
		}
		if d.Coverages[i] >= 360 {
			return paramak.Paramf(shape, "coverages", "%g must be below 360 degrees", d.Coverages[i])
		}
	}
	if paramak.Distance(d.Anchors[0], d.Anchors[1]) < 1e-9 {
		return paramak.Paramf(shape, "anchors", "inner and outer anchors coincide at %v", d.Anchors[0])
	}
	if !d.Dome {
		return nil
	}
	if err := firstErr(positive(shape, "dome_height", d.DomeHeight), positive(shape, "dome_length", d.DomeLength),
		positive(shape, "dome_thickness", d.DomeThickness)); err != nil {
		return err
	}
	if d.DomePos <= 0 || d.DomePos >= 1 {
		return paramak.Paramf(shape, "dome_pos", "%g outside (0, 1)", d.DomePos)
	}
	return nil
}

// verticalTarget returns the arc end, arc mid point, anchor and leg end of a
// vertical target. Angles are in radians.
func verticalTarget(anchor r2.Vec, coverage, tilt, radius, length float64) [4]r2.Vec {
	base := r2.Vec{X: anchor.X + radius, Y: anchor.Y}
	a := paramak.Rotate(base, anchor, coverage)
	aMid := paramak.Rotate(base, anchor, coverage/2)
	c := r2.Vec{X: anchor.X, Y: anchor.Y - length}
	return [4]r2.Vec{
		paramak.Rotate(anchor, a, tilt),
		paramak.Rotate(anchor, aMid, tilt),
		anchor,
		paramak.Rotate(anchor, c, tilt),
	}
}

// InnerTarget returns the inner vertical target points.
func (d ITERDivertor) InnerTarget() paramak.Profile {
	v := verticalTarget(d.Anchors[0], paramak.DtoR(d.Coverages[0]), paramak.DtoR(d.Tilts[0]), -d.Radii[0], d.Lengths[0])
	return paramak.Profile{
		{Vec: v[0], Conn: paramak.Circle},
		{Vec: v[1], Conn: paramak.Circle},
		{Vec: v[2], Conn: paramak.Straight},
		{Vec: v[3], Conn: paramak.Straight},
	}
}

// OuterTarget returns the outer vertical target points in reverse order so
// that they wind like the rest of the divertor.
func (d ITERDivertor) OuterTarget() paramak.Profile {
	v := verticalTarget(d.Anchors[1], -paramak.DtoR(d.Coverages[1]), paramak.DtoR(d.Tilts[1]), d.Radii[1], d.Lengths[1])
	p := NewProfile()
	p.Reverse()
	p.AddV2(v[0])
	p.AddV2(v[1]).Circle()
	p.AddV2(v[2]).Circle()
	p.AddV2(v[3])
	return p.Profile()
}

// DomePoints returns the dome between the inner leg end c and the outer leg
// end f: two circle points and a straight point.
func (d ITERDivertor) DomePoints(c, f r2.Vec) paramak.Profile {
	base := mustExtend(c, f, d.DomePos*paramak.Distance(f, c))
	lower := mustExtend(base, paramak.Rotate(base, c, -math.Pi/2), d.DomeHeight)
	top := mustExtend(base, lower, d.DomeHeight+d.DomeThickness)
	left := mustExtend(lower, paramak.Rotate(lower, top, math.Pi/2), d.DomeLength/2)
	right := mustExtend(lower, paramak.Rotate(lower, top, -math.Pi/2), d.DomeLength/2)
	return paramak.Profile{
		{Vec: left, Conn: paramak.Circle},
		{Vec: top, Conn: paramak.Circle},
		{Vec: right, Conn: paramak.Straight},
	}
}

// CasingPoints returns the four casing points below the targets given the
// inner leg end c and the outer leg end f.
func (d ITERDivertor) CasingPoints(c, f r2.Vec) paramak.Profile {
	span := paramak.Distance(f, c)
	return paramak.Profile{
		{Vec: mustExtend(c, f, span*1.1)},
		{Vec: mustExtend(d.Anchors[1], f, d.Lengths[1]*1.2)},
		{Vec: mustExtend(d.Anchors[0], c, d.Lengths[0]*1.2)},
		{Vec: mustExtend(f, c, span*1.1)},
	}
}

// Profile returns the inner target, dome, reversed outer target and casing
// points concatenated in that order.
func (d ITERDivertor) Profile() paramak.Profile {
	mustValidate(d)
	inner := d.InnerTarget()
	outer := d.OuterTarget()
	c := inner[len(inner)-1].Vec
	f := outer[0].Vec
	p := NewProfile()
	p.AddPoints(inner...)
	if d.Dome {
		p.AddPoints(d.DomePoints(c, f)...)
	}
	p.AddPoints(outer...)
	p.AddPoints(d.CasingPoints(c, f)...)
	return p.Profile()
}
