package must2

import (
	"github.com/soypat/paramak"
)

// Shield is a center column shield cross-section. The set of shields is
// closed: CenterColumnCylinder, CenterColumnHyperbola,
// CenterColumnFlatTopHyperbola, CenterColumnPlasmaHyperbola,
// CenterColumnCircular and CenterColumnFlatTopCircular.
type Shield interface {
	Shape
	isShield()
}

func (CenterColumnCylinder) isShield()         {}
func (CenterColumnHyperbola) isShield()        {}
func (CenterColumnFlatTopHyperbola) isShield() {}
func (CenterColumnPlasmaHyperbola) isShield()  {}
func (CenterColumnCircular) isShield()         {}
func (CenterColumnFlatTopCircular) isShield()  {}

// checkRadii checks inner < outer and, when mid is not nil, inner <= mid <= outer.
func checkRadii(shape string, inner, outer float64, mid *float64) error {
	if err := firstErr(nonNegative(shape, "inner_radius", inner), positive(shape, "outer_radius", outer)); err != nil {
		return err
	}
	if inner >= outer {
		return paramak.Paramf(shape, "inner_radius", "%g must be smaller than outer radius %g", inner, outer)
	}
	if mid == nil {
		return nil
	}
	if err := finite(shape, "mid_radius", *mid); err != nil {
		return err
	}
	if *mid < inner || *mid > outer {
		return paramak.Paramf(shape, "mid_radius", "%g outside [inner_radius %g, outer_radius %g]", *mid, inner, outer)
	}
	return nil
}

func checkArcHeight(shape string, arcHeight, height float64) error {
	if err := positive(shape, "arc_height", arcHeight); err != nil {
		return err
	}
	if arcHeight >= height {
		return paramak.Paramf(shape, "arc_height", "%g must be smaller than height %g", arcHeight, height)
	}
	return nil
}

// CenterColumnCylinder is a rectangular center column shield.
type CenterColumnCylinder struct {
	InnerRadius float64
	OuterRadius float64
	Height      float64
}

func (s CenterColumnCylinder) Validate() error {
	const shape = "center column cylinder"
	return firstErr(positive(shape, "height", s.Height), checkRadii(shape, s.InnerRadius, s.OuterRadius, nil))
}

func (s CenterColumnCylinder) Profile() paramak.Profile {
	mustValidate(s)
	h := s.Height / 2
	p := NewProfile()
	p.Add(s.InnerRadius, 0)
	p.Add(s.InnerRadius, h)
	p.Add(s.OuterRadius, h)
	p.Add(s.OuterRadius, -h)
	p.Add(s.InnerRadius, -h)
	return p.Profile()
}

// CenterColumnHyperbola is a center column shield whose outer face is a spline
// narrowing to MidRadius at the midplane.
type CenterColumnHyperbola struct {
	InnerRadius float64
	MidRadius   float64
	OuterRadius float64
	Height      float64
}

func (s CenterColumnHyperbola) Validate() error {
	const shape = "center column hyperbola"
	return firstErr(positive(shape, "height", s.Height), checkRadii(shape, s.InnerRadius, s.OuterRadius, &s.MidRadius))
}

func (s CenterColumnHyperbola) Profile() paramak.Profile {
	mustValidate(s)
	h := s.Height / 2
	p := NewProfile()
	p.Add(s.InnerRadius, 0)
	p.Add(s.InnerRadius, h)
	p.Add(s.OuterRadius, h).Spline()
	p.Add(s.MidRadius, 0).Spline()
	p.Add(s.OuterRadius, -h)
	p.Add(s.InnerRadius, -h)
	return p.Profile()
}

// CenterColumnFlatTopHyperbola is a hyperbola shield whose spline face spans
// ArcHeight and is capped by straight outer faces up to Height.
type CenterColumnFlatTopHyperbola struct {
	InnerRadius float64
	MidRadius   float64
	OuterRadius float64
	Height      float64
	ArcHeight   float64
}

func (s CenterColumnFlatTopHyperbola) Validate() error {
	const shape = "center column flat top hyperbola"
	return firstErr(positive(shape, "height", s.Height), checkArcHeight(shape, s.ArcHeight, s.Height),
		checkRadii(shape, s.InnerRadius, s.OuterRadius, &s.MidRadius))
}

func (s CenterColumnFlatTopHyperbola) Profile() paramak.Profile {
	mustValidate(s)
	h, ah := s.Height/2, s.ArcHeight/2
	p := NewProfile()
	p.Add(s.InnerRadius, 0)
	p.Add(s.InnerRadius, h)
	p.Add(s.OuterRadius, h)
	p.Add(s.OuterRadius, ah).Spline()
	p.Add(s.MidRadius, 0).Spline()
	p.Add(s.OuterRadius, -ah)
	p.Add(s.OuterRadius, -h)
	p.Add(s.InnerRadius, -h)
	return p.Profile()
}

// CenterColumnCircular is a center column shield whose outer face is a
// circular arc through MidRadius at the midplane.
type CenterColumnCircular struct {
	InnerRadius float64
	MidRadius   float64
	OuterRadius float64
	Height      float64
}

func (s CenterColumnCircular) Validate() error {
	const shape = "center column circular"
	return firstErr(positive(shape, "height", s.Height), checkRadii(shape, s.InnerRadius, s.OuterRadius, &s.MidRadius))
}

func (s CenterColumnCircular) Profile() paramak.Profile {
	mustValidate(s)
	h := s.Height / 2
	p := NewProfile()
	p.Add(s.InnerRadius, 0)
	p.Add(s.InnerRadius, h)
	p.Add(s.OuterRadius, h).Circle()
	p.Add(s.MidRadius, 0).Circle()
	p.Add(s.OuterRadius, -h)
	p.Add(s.InnerRadius, -h)
	return p.Profile()
}

// CenterColumnFlatTopCircular is a circular shield whose arc spans ArcHeight
// and is capped by straight outer faces up to Height.
type CenterColumnFlatTopCircular struct {
	InnerRadius float64
	MidRadius   float64
	OuterRadius float64
	Height      float64
	ArcHeight   float64
}

func (s CenterColumnFlatTopCircular) Validate() error {
	const shape = "center column flat top circular"
	return firstErr(positive(shape, "height", s.Height), checkArcHeight(shape, s.ArcHeight, s.Height),
		checkRadii(shape, s.InnerRadius, s.OuterRadius, &s.MidRadius))
}

func (s CenterColumnFlatTopCircular) Profile() paramak.Profile {
	mustValidate(s)
	h, ah := s.Height/2, s.ArcHeight/2
	p := NewProfile()
	p.Add(s.InnerRadius, 0)
	p.Add(s.InnerRadius, h)
	p.Add(s.OuterRadius, h)
	p.Add(s.OuterRadius, ah).Circle()
	p.Add(s.MidRadius, 0).Circle()
	p.Add(s.OuterRadius, -ah)
	p.Add(s.OuterRadius, -h)
	p.Add(s.InnerRadius, -h)
	return p.Profile()
}

// CenterColumnPlasmaHyperbola is a center column shield whose spline face
// follows the inboard side of a plasma at MidOffset from the inner equatorial
// point and EdgeOffset from the plasma high and low points.
type CenterColumnPlasmaHyperbola struct {
	InnerRadius float64
	Height      float64
	MidOffset   float64
	EdgeOffset  float64
	Plasma      Plasma
}

func (s CenterColumnPlasmaHyperbola) Validate() error {
	const shape = "center column plasma hyperbola"
	if err := firstErr(positive(shape, "height", s.Height), nonNegative(shape, "inner_radius", s.InnerRadius),
		finite(shape, "mid_offset", s.MidOffset), finite(shape, "edge_offset", s.EdgeOffset)); err != nil {
		return err
	}
	if err := s.Plasma.Validate(); err != nil {
		return err
	}
	hi := s.Plasma.HighPoint()
	lo := s.Plasma.LowPoint()
	if s.Height/2 <= hi.Y || -s.Height/2 >= lo.Y {
		return paramak.Paramf(shape, "height", "%g does not clear the plasma (high point %g)", s.Height, hi.Y)
	}
	mid := s.Plasma.InnerEquatorialPoint().X - s.MidOffset
	if mid <= s.InnerRadius {
		return paramak.Paramf(shape, "mid_offset", "mid radius %g not outside inner radius %g", mid, s.InnerRadius)
	}
	if hi.X-s.EdgeOffset <= s.InnerRadius || lo.X-s.EdgeOffset <= s.InnerRadius {
		return paramak.Paramf(shape, "edge_offset", "edge radius not outside inner radius %g", s.InnerRadius)
	}
	return nil
}

func (s CenterColumnPlasmaHyperbola) Profile() paramak.Profile {
	mustValidate(s)
	h := s.Height / 2
	hi := s.Plasma.HighPoint()
	lo := s.Plasma.LowPoint()
	eq := s.Plasma.InnerEquatorialPoint()
	p := NewProfile()
	p.Add(s.InnerRadius, 0)
	p.Add(s.InnerRadius, h)
	p.Add(hi.X-s.EdgeOffset, h)
	p.Add(hi.X-s.EdgeOffset, hi.Y).Spline()
	p.Add(eq.X-s.MidOffset, eq.Y).Spline()
	p.Add(lo.X-s.EdgeOffset, lo.Y)
	p.Add(lo.X-s.EdgeOffset, -h)
	p.Add(s.InnerRadius, -h)
	return p.Profile()
}
