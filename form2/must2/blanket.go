package must2

import (
	"math"

	"github.com/soypat/paramak"
	"gonum.org/v1/gonum/spatial/r2"
)

// BlanketArcH is a blanket of constant radial thickness whose inner face is
// the circular arc through three points.
type BlanketArcH struct {
	InnerLower r2.Vec
	InnerMid   r2.Vec
	InnerUpper r2.Vec
	Thickness  float64
}

func (b BlanketArcH) Validate() error {
	const shape = "blanket constant thickness arc h"
	if err := positive(shape, "thickness", b.Thickness); err != nil {
		return err
	}
	for _, v := range []r2.Vec{b.InnerLower, b.InnerMid, b.InnerUpper} {
		if err := firstErr(nonNegative(shape, "inner points", v.X), finite(shape, "inner points", v.Y)); err != nil {
			return err
		}
	}
	if b.InnerLower.Y >= b.InnerUpper.Y {
		return paramak.Paramf(shape, "inner_lower_point", "z %g must be below inner upper point z %g", b.InnerLower.Y, b.InnerUpper.Y)
	}
	return nil
}

func (b BlanketArcH) Profile() paramak.Profile {
	mustValidate(b)
	p := NewProfile()
	p.AddV2(b.InnerUpper).Circle()
	p.AddV2(b.InnerMid).Circle()
	p.AddV2(b.InnerLower)
	p.Add(b.InnerLower.X+b.Thickness, b.InnerLower.Y).Circle()
	p.Add(b.InnerMid.X+b.Thickness, b.InnerMid.Y).Circle()
	p.Add(b.InnerUpper.X+b.Thickness, b.InnerUpper.Y)
	return p.Profile()
}

// DefaultBlanketPoints is the number of points along each face of a BlanketFP
// when NumPoints is zero.
const DefaultBlanketPoints = 50

// BlanketFP is a blanket following a plasma at a constant offset. The blanket
// spans the plasma poloidal angles from StartAngle to StopAngle (degrees),
// starts Offset away from the plasma boundary and is Thickness thick.
type BlanketFP struct {
	Plasma     Plasma
	Offset     float64
	Thickness  float64
	StartAngle float64
	StopAngle  float64
	NumPoints  int
}

func (b BlanketFP) Validate() error {
	const shape = "blanket fp"
	if err := b.Plasma.Validate(); err != nil {
		return err
	}
	if err := firstErr(nonNegative(shape, "offset_from_plasma", b.Offset), positive(shape, "thickness", b.Thickness),
		finite(shape, "start_angle", b.StartAngle), finite(shape, "stop_angle", b.StopAngle)); err != nil {
		return err
	}
	if b.StartAngle == b.StopAngle {
		return paramak.Paramf(shape, "stop_angle", "equal to start angle %g", b.StartAngle)
	}
	if math.Abs(b.StopAngle-b.StartAngle) > 360 {
		return paramak.Paramf(shape, "stop_angle", "blanket spans more than 360 degrees")
	}
	if b.NumPoints < 0 || (b.NumPoints > 0 && b.NumPoints < 3) {
		return paramak.Paramf(shape, "num_points", "need at least 3 points, got %d", b.NumPoints)
	}
	return nil
}

// face returns the points offset from the plasma by distance.
func (b BlanketFP) face(distance float64) []r2.Vec {
	n := b.NumPoints
	if n == 0 {
		n = DefaultBlanketPoints
	}
	start, stop := paramak.DtoR(b.StartAngle), paramak.DtoR(b.StopAngle)
	pts := make([]r2.Vec, n)
	for i := range pts {
		theta := start + (stop-start)*float64(i)/float64(n-1)
		pts[i] = r2.Add(b.Plasma.At(theta), r2.Scale(distance, b.Plasma.Normal(theta)))
	}
	return pts
}

// Profile returns the inner face as a spline from StartAngle to StopAngle and
// the outer face as a spline back, joined by straight edges.
func (b BlanketFP) Profile() paramak.Profile {
	mustValidate(b)
	inner := b.face(b.Offset)
	outer := b.face(b.Offset + b.Thickness)
	p := NewProfile()
	for i, v := range inner {
		vtx := p.AddV2(v)
		if i < len(inner)-1 {
			vtx.Spline()
		}
	}
	for i := len(outer) - 1; i >= 0; i-- {
		vtx := p.AddV2(outer[i])
		if i > 0 {
			vtx.Spline()
		}
	}
	return p.Profile()
}
