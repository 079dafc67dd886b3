package must2

import (
	"fmt"

	"github.com/soypat/paramak"
)

// InboardFirstwall is a first wall wrapped around a center column shield.
// Its profile is the shield grown by Thickness toward the plasma; cut the
// shield from the revolved profile to get the wall itself.
type InboardFirstwall struct {
	Shield    Shield
	Thickness float64
}

func (f InboardFirstwall) Validate() error {
	if f.Shield == nil {
		return paramak.Paramf("inboard firstwall", "shield", "missing center column shield")
	}
	if err := positive("inboard firstwall", "thickness", f.Thickness); err != nil {
		return err
	}
	if err := f.Shield.Validate(); err != nil {
		return fmt.Errorf("inboard firstwall shield: %w", err)
	}
	return f.grown().Validate()
}

// grown returns the shield of the same family offset by the wall thickness.
func (f InboardFirstwall) grown() Shield {
	t := f.Thickness
	switch s := f.Shield.(type) {
	case CenterColumnCylinder:
		s.OuterRadius += t
		return s
	case CenterColumnHyperbola:
		s.MidRadius += t
		s.OuterRadius += t
		return s
	case CenterColumnFlatTopHyperbola:
		s.MidRadius += t
		s.OuterRadius += t
		return s
	case CenterColumnPlasmaHyperbola:
		s.MidOffset -= t
		s.EdgeOffset -= t
		return s
	case CenterColumnCircular:
		s.MidRadius += t
		s.OuterRadius += t
		return s
	case CenterColumnFlatTopCircular:
		s.MidRadius += t
		s.OuterRadius += t
		return s
	}
	panic(fmt.Sprintf("unknown shield %T", f.Shield))
}

// Profile returns the cross-section of the shield grown by the wall thickness.
func (f InboardFirstwall) Profile() paramak.Profile {
	mustValidate(f)
	return f.grown().Profile()
}
