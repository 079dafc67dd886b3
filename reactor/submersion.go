package reactor

import (
	"fmt"

	"github.com/soypat/paramak"
	"github.com/soypat/paramak/assembly"
	"github.com/soypat/paramak/build"
	"github.com/soypat/paramak/form2"
	"github.com/soypat/paramak/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SubmersionTokamak is a spherical tokamak whose outboard blanket wraps the
// plasma all the way round to the center column.
//
// The radial build runs from the axis through the inner bore, the inboard TF
// leg, the center column shield, the inboard blanket and first wall, the
// plasma and its gaps, then the outboard first wall, blanket and rear wall.
// The vertical build runs from the midplane through the upper half of the
// plasma to its high point, then outwards. The divertor and the
// blanket supports are bands centred on the radius of the plasma high point.
type SubmersionTokamak struct {
	InnerBoreRadialThickness          float64 `mapstructure:"inner_bore_radial_thickness" toml:"inner_bore_radial_thickness" yaml:"inner_bore_radial_thickness"`
	InboardTFLegRadialThickness       float64 `mapstructure:"inboard_tf_leg_radial_thickness" toml:"inboard_tf_leg_radial_thickness" yaml:"inboard_tf_leg_radial_thickness"`
	CenterColumnShieldRadialThickness float64 `mapstructure:"center_column_shield_radial_thickness" toml:"center_column_shield_radial_thickness" yaml:"center_column_shield_radial_thickness"`
	InboardBlanketRadialThickness     float64 `mapstructure:"inboard_blanket_radial_thickness" toml:"inboard_blanket_radial_thickness" yaml:"inboard_blanket_radial_thickness"`
	FirstwallRadialThickness          float64 `mapstructure:"firstwall_radial_thickness" toml:"firstwall_radial_thickness" yaml:"firstwall_radial_thickness"`
	InnerPlasmaGapRadialThickness     float64 `mapstructure:"inner_plasma_gap_radial_thickness" toml:"inner_plasma_gap_radial_thickness" yaml:"inner_plasma_gap_radial_thickness"`
	PlasmaRadialThickness             float64 `mapstructure:"plasma_radial_thickness" toml:"plasma_radial_thickness" yaml:"plasma_radial_thickness"`
	OuterPlasmaGapRadialThickness     float64 `mapstructure:"outer_plasma_gap_radial_thickness" toml:"outer_plasma_gap_radial_thickness" yaml:"outer_plasma_gap_radial_thickness"`
	OutboardBlanketRadialThickness    float64 `mapstructure:"outboard_blanket_radial_thickness" toml:"outboard_blanket_radial_thickness" yaml:"outboard_blanket_radial_thickness"`
	BlanketRearWallRadialThickness    float64 `mapstructure:"blanket_rear_wall_radial_thickness" toml:"blanket_rear_wall_radial_thickness" yaml:"blanket_rear_wall_radial_thickness"`
	DivertorRadialThickness           float64 `mapstructure:"divertor_radial_thickness" toml:"divertor_radial_thickness" yaml:"divertor_radial_thickness"`
	SupportRadialThickness            float64 `mapstructure:"support_radial_thickness" toml:"support_radial_thickness" yaml:"support_radial_thickness"`

	Elongation    float64 `mapstructure:"elongation" toml:"elongation" yaml:"elongation"`
	Triangularity float64 `mapstructure:"triangularity" toml:"triangularity" yaml:"triangularity"`

	DivertorPosition Position `mapstructure:"divertor_position" toml:"divertor_position" yaml:"divertor_position"`
	SupportPosition  Position `mapstructure:"support_position" toml:"support_position" yaml:"support_position"`

	// Outboard TF coils. All zero means no outboard coils.
	OutboardTFCoilRadialThickness   float64 `mapstructure:"outboard_tf_coil_radial_thickness" toml:"outboard_tf_coil_radial_thickness" yaml:"outboard_tf_coil_radial_thickness"`
	OutboardTFCoilPoloidalThickness float64 `mapstructure:"outboard_tf_coil_poloidal_thickness" toml:"outboard_tf_coil_poloidal_thickness" yaml:"outboard_tf_coil_poloidal_thickness"`
	RearBlanketToTFGap              float64 `mapstructure:"rear_blanket_to_tf_gap" toml:"rear_blanket_to_tf_gap" yaml:"rear_blanket_to_tf_gap"`
	NumberOfTFCoils                 int     `mapstructure:"number_of_tf_coils" toml:"number_of_tf_coils" yaml:"number_of_tf_coils"`

	// PF coils, one entry per coil. Empty slices mean no PF coils.
	PFCoilRadialPositions     []float64 `mapstructure:"pf_coil_radial_positions" toml:"pf_coil_radial_positions" yaml:"pf_coil_radial_positions"`
	PFCoilVerticalPositions   []float64 `mapstructure:"pf_coil_vertical_positions" toml:"pf_coil_vertical_positions" yaml:"pf_coil_vertical_positions"`
	PFCoilRadialThicknesses   []float64 `mapstructure:"pf_coil_radial_thicknesses" toml:"pf_coil_radial_thicknesses" yaml:"pf_coil_radial_thicknesses"`
	PFCoilVerticalThicknesses []float64 `mapstructure:"pf_coil_vertical_thicknesses" toml:"pf_coil_vertical_thicknesses" yaml:"pf_coil_vertical_thicknesses"`
	// PFCoilCaseThickness of zero means uncased coils.
	PFCoilCaseThickness float64 `mapstructure:"pf_coil_case_thickness" toml:"pf_coil_case_thickness" yaml:"pf_coil_case_thickness"`

	RotationAngle float64 `mapstructure:"rotation_angle" toml:"rotation_angle" yaml:"rotation_angle"`
}

// DefaultSubmersionTokamak returns the reference submersion tokamak with
// sixteen outboard TF coils and four cased PF coils.
func DefaultSubmersionTokamak() SubmersionTokamak {
	return SubmersionTokamak{
		InnerBoreRadialThickness:          10,
		InboardTFLegRadialThickness:       30,
		CenterColumnShieldRadialThickness: 60,
		InboardBlanketRadialThickness:     20,
		FirstwallRadialThickness:          30,
		InnerPlasmaGapRadialThickness:     30,
		PlasmaRadialThickness:             300,
		OuterPlasmaGapRadialThickness:     30,
		OutboardBlanketRadialThickness:    20,
		BlanketRearWallRadialThickness:    30,
		DivertorRadialThickness:           50,
		SupportRadialThickness:            20,
		Elongation:                        2.3,
		Triangularity:                     0.45,
		DivertorPosition:                  Both,
		SupportPosition:                   Both,
		OutboardTFCoilRadialThickness:     30,
		OutboardTFCoilPoloidalThickness:   30,
		RearBlanketToTFGap:                20,
		NumberOfTFCoils:                   16,
		PFCoilRadialPositions:             []float64{500, 550, 550, 500},
		PFCoilVerticalPositions:           []float64{270, 100, -100, -270},
		PFCoilRadialThicknesses:           []float64{40, 40, 40, 40},
		PFCoilVerticalThicknesses:         []float64{40, 40, 40, 40},
		PFCoilCaseThickness:               10,
		RotationAngle:                     359,
	}
}

// HasTFCoils reports whether the reactor has outboard TF coils.
func (s SubmersionTokamak) HasTFCoils() bool {
	return s.OutboardTFCoilRadialThickness != 0 || s.OutboardTFCoilPoloidalThickness != 0 ||
		s.RearBlanketToTFGap != 0 || s.NumberOfTFCoils != 0
}

// NumberOfPFCoils returns the number of PF coils.
func (s SubmersionTokamak) NumberOfPFCoils() int { return len(s.PFCoilRadialPositions) }

func (s SubmersionTokamak) Validate() error {
	const shape = "submersion tokamak"
	err := firstErr(
		nonNegative(shape, "inner_bore_radial_thickness", s.InnerBoreRadialThickness),
		positive(shape, "inboard_tf_leg_radial_thickness", s.InboardTFLegRadialThickness),
		positive(shape, "center_column_shield_radial_thickness", s.CenterColumnShieldRadialThickness),
		positive(shape, "inboard_blanket_radial_thickness", s.InboardBlanketRadialThickness),
		positive(shape, "firstwall_radial_thickness", s.FirstwallRadialThickness),
		positive(shape, "inner_plasma_gap_radial_thickness", s.InnerPlasmaGapRadialThickness),
		positive(shape, "plasma_radial_thickness", s.PlasmaRadialThickness),
		positive(shape, "outer_plasma_gap_radial_thickness", s.OuterPlasmaGapRadialThickness),
		positive(shape, "outboard_blanket_radial_thickness", s.OutboardBlanketRadialThickness),
		positive(shape, "blanket_rear_wall_radial_thickness", s.BlanketRearWallRadialThickness),
		positive(shape, "divertor_radial_thickness", s.DivertorRadialThickness),
		positive(shape, "support_radial_thickness", s.SupportRadialThickness),
		positive(shape, "elongation", s.Elongation),
		s.DivertorPosition.Validate(),
		s.SupportPosition.Validate(),
		checkAngle(shape, s.RotationAngle),
	)
	if err != nil {
		return err
	}
	if s.Triangularity < -1 || s.Triangularity > 1 {
		return paramak.Paramf(shape, "triangularity", "%g outside [-1, 1]", s.Triangularity)
	}
	if s.HasTFCoils() {
		err := firstErr(
			positive(shape, "outboard_tf_coil_radial_thickness", s.OutboardTFCoilRadialThickness),
			positive(shape, "outboard_tf_coil_poloidal_thickness", s.OutboardTFCoilPoloidalThickness),
			nonNegative(shape, "rear_blanket_to_tf_gap", s.RearBlanketToTFGap),
		)
		if err != nil {
			return err
		}
		if s.NumberOfTFCoils < 1 {
			return paramak.Paramf(shape, "number_of_tf_coils", "need at least one coil, got %d", s.NumberOfTFCoils)
		}
	}
	n := s.NumberOfPFCoils()
	if len(s.PFCoilVerticalPositions) != n || len(s.PFCoilRadialThicknesses) != n || len(s.PFCoilVerticalThicknesses) != n {
		return paramak.Paramf(shape, "pf_coil_radial_positions", "PF coil lists differ in length: %d positions, %d vertical positions, %d radial and %d vertical thicknesses",
			n, len(s.PFCoilVerticalPositions), len(s.PFCoilRadialThicknesses), len(s.PFCoilVerticalThicknesses))
	}
	if n > 0 {
		if err := nonNegative(shape, "pf_coil_case_thickness", s.PFCoilCaseThickness); err != nil {
			return err
		}
	}
	for i := range s.PFCoilRadialPositions {
		if err := s.pfCase(i).Validate(); err != nil {
			return fmt.Errorf("pf coil %d: %w", i, err)
		}
	}
	return nil
}

// pfCoil returns the cross-section of the i'th PF coil.
func (s SubmersionTokamak) pfCoil(i int) must2.PoloidalFieldCoil {
	return must2.PoloidalFieldCoil{
		Center: r2.Vec{X: s.PFCoilRadialPositions[i], Y: s.PFCoilVerticalPositions[i]},
		Width:  s.PFCoilRadialThicknesses[i],
		Height: s.PFCoilVerticalThicknesses[i],
	}
}

func (s SubmersionTokamak) pfCase(i int) must2.Shape {
	if s.PFCoilCaseThickness == 0 {
		return s.pfCoil(i)
	}
	return must2.PoloidalFieldCoilCase{Coil: s.pfCoil(i), Thickness: s.PFCoilCaseThickness}
}

// Plasma returns the plasma sitting between the inner and outer plasma gaps.
func (s SubmersionTokamak) Plasma() must2.Plasma {
	inner := s.InnerBoreRadialThickness + s.InboardTFLegRadialThickness + s.CenterColumnShieldRadialThickness +
		s.InboardBlanketRadialThickness + s.FirstwallRadialThickness + s.InnerPlasmaGapRadialThickness
	outer := inner + s.PlasmaRadialThickness
	major := (inner + outer) / 2
	return must2.Plasma{
		MajorRadius:   major,
		MinorRadius:   major - inner,
		Elongation:    s.Elongation,
		Triangularity: s.Triangularity,
	}
}

// Builds returns the radial build, including the divertor and support
// bands, and the vertical build from the midplane.
func (s SubmersionTokamak) Builds() (radial, vertical *build.Build, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	entries := []build.Entry{
		build.Space("inner_bore", s.InnerBoreRadialThickness),
		build.Layer("inboard_tf_coils", s.InboardTFLegRadialThickness),
		build.Layer("center_column_shield", s.CenterColumnShieldRadialThickness),
		build.Layer("inboard_blanket", s.InboardBlanketRadialThickness),
		build.Layer("inboard_firstwall", s.FirstwallRadialThickness),
		build.Space("inner_plasma_gap", s.InnerPlasmaGapRadialThickness),
		build.Layer("plasma", s.PlasmaRadialThickness),
		build.Space("outer_plasma_gap", s.OuterPlasmaGapRadialThickness),
		build.Layer("outboard_firstwall", s.FirstwallRadialThickness),
		build.Layer("outboard_blanket", s.OutboardBlanketRadialThickness),
		build.Layer("outboard_rear_blanket_wall", s.BlanketRearWallRadialThickness),
	}
	if s.HasTFCoils() {
		entries = append(entries,
			build.Space("rear_blanket_to_tf_gap", s.RearBlanketToTFGap),
			build.Layer("outboard_tf_coil", s.OutboardTFCoilRadialThickness),
		)
	}
	if radial, err = build.Sequence(0, entries...); err != nil {
		return nil, nil, err
	}
	high := s.Plasma().HighPoint()
	if _, err = radial.Band("divertor", high.X, s.DivertorRadialThickness); err != nil {
		return nil, nil, err
	}
	if _, err = radial.Band("supports", high.X, s.SupportRadialThickness); err != nil {
		return nil, nil, err
	}
	vertical, err = build.Sequence(0,
		build.Layer("plasma", high.Y),
		build.Space("plasma_to_divertor_gap", s.OuterPlasmaGapRadialThickness),
		build.Layer("firstwall", s.FirstwallRadialThickness),
		build.Layer("blanket", s.OutboardBlanketRadialThickness),
		build.Layer("rear_wall", s.BlanketRearWallRadialThickness),
	)
	if err != nil {
		return nil, nil, err
	}
	return radial, vertical, nil
}

// Plan returns the reactor parts in construction order. Every part is cut
// by the PF coils and their cases.
func (s SubmersionTokamak) Plan() (*assembly.Plan, error) {
	radial, vertical, err := s.Builds()
	if err != nil {
		return nil, err
	}
	plan, err := assembly.NewPlan(s.RotationAngle)
	if err != nil {
		return nil, err
	}
	plasma := s.Plasma()
	gap := s.OuterPlasmaGapRadialThickness
	fw := s.FirstwallRadialThickness
	blanket := s.OutboardBlanketRadialThickness
	blanketFP := func(offset, thickness, start, stop float64) func() (paramak.Profile, error) {
		return shape(must2.BlanketFP{Plasma: plasma, Offset: offset, Thickness: thickness, StartAngle: start, StopAngle: stop})
	}
	rearEnd := vertical.End("rear_wall")
	var pfCuts []string

	// PF coils first: every other part is cut by them.
	if n := s.NumberOfPFCoils(); n > 0 {
		coils := make([]string, n)
		for i := range coils {
			coils[i] = fmt.Sprintf("pf_coil_%d", i)
			plan.MustAdd(assembly.Component{Name: coils[i], Profile: shape(s.pfCoil(i)), Hidden: true})
		}
		plan.MustAdd(assembly.Component{Name: "pf_coil", Profile: shape(s.pfCoil(0)), Steps: assembly.Union(coils[1:]...)})
		pfCuts = append(pfCuts, "pf_coil")
		if s.PFCoilCaseThickness > 0 {
			cases := make([]string, n)
			for i := range cases {
				cases[i] = fmt.Sprintf("pf_coil_case_%d", i)
				plan.MustAdd(assembly.Component{Name: cases[i], Profile: shape(s.pfCase(i)), Hidden: true})
			}
			plan.MustAdd(assembly.Component{
				Name:    "pf_coil_case",
				Profile: shape(s.pfCase(0)),
				Steps:   append(assembly.Union(cases[1:]...), assembly.Cut("pf_coil")...),
			})
			pfCuts = append(pfCuts, "pf_coil_case")
		}
	}
	cutPF := func(steps ...assembly.Step) []assembly.Step {
		return append(steps, assembly.Cut(pfCuts...)...)
	}

	plan.MustAdd(assembly.Component{Name: "plasma", Profile: shape(plasma), Steps: cutPF()})
	plan.MustAdd(assembly.Component{
		Name:    "center_column_shield",
		Profile: shape(must2.CenterColumnCylinder{InnerRadius: radial.Start("center_column_shield"), OuterRadius: radial.End("center_column_shield"), Height: 2 * rearEnd}),
		Steps:   cutPF(),
	})

	// The divertor is the part of the first wall inside its band.
	plan.MustAdd(assembly.Component{Name: "inboard_firstwall_envelope", Profile: blanketFP(s.InnerPlasmaGapRadialThickness, fw, 90, 270), Hidden: true})
	plan.MustAdd(assembly.Component{
		Name:    "firstwall_envelope",
		Profile: blanketFP(gap, fw, 90, -90),
		Steps:   assembly.Union("inboard_firstwall_envelope"),
		Hidden:  true,
	})
	div, _ := radial.Get("divertor")
	bottom, top := s.DivertorPosition.span(rearEnd)
	plan.MustAdd(assembly.Component{
		Name:    "divertor",
		Profile: rectangle(div.Start, div.End, bottom, top),
		Steps:   cutPF(assembly.Intersect("firstwall_envelope")...),
	})
	plan.MustAdd(assembly.Component{
		Name:    "inboard_firstwall",
		Profile: blanketFP(s.InnerPlasmaGapRadialThickness, fw, 90, 270),
		Steps:   assembly.Cut("divertor"),
		Hidden:  true,
	})
	plan.MustAdd(assembly.Component{
		Name:    "firstwall",
		Profile: blanketFP(gap, fw, 90, -90),
		Steps:   cutPF(append(assembly.Union("inboard_firstwall"), assembly.Cut("divertor")...)...),
	})

	// The inboard blanket fills the center column side up to the first
	// wall; the plasma envelope removes the slab enclosed by the wall.
	inboardFW, err := form2.Profile(must2.BlanketFP{Plasma: plasma, Offset: s.InnerPlasmaGapRadialThickness, Thickness: fw, StartAngle: 90, StopAngle: 270})
	if err != nil {
		return nil, err
	}
	blanketEnd := vertical.End("blanket")
	plan.MustAdd(assembly.Component{
		Name:    "inboard_plasma_envelope",
		Profile: blanketFP(0, s.InnerPlasmaGapRadialThickness, 90, 270),
		Steps:   assembly.Union("plasma"),
		Hidden:  true,
	})
	plan.MustAdd(assembly.Component{
		Name:    "inboard_blanket",
		Profile: shape(must2.CenterColumnCylinder{InnerRadius: radial.Start("inboard_blanket"), OuterRadius: inboardFW.MaxX(), Height: 2 * blanketEnd}),
		Steps:   assembly.Cut("inboard_firstwall", "divertor", "inboard_plasma_envelope"),
		Hidden:  true,
	})

	// The supports are the part of the blanket inside their band.
	plan.MustAdd(assembly.Component{
		Name:    "blanket_envelope",
		Profile: blanketFP(gap+fw, blanket, 90, -90),
		Steps:   assembly.Union("inboard_blanket"),
		Hidden:  true,
	})
	sup, _ := radial.Get("supports")
	bottom, top = s.SupportPosition.span(rearEnd)
	plan.MustAdd(assembly.Component{
		Name:    "supports",
		Profile: rectangle(sup.Start, sup.End, bottom, top),
		Steps:   cutPF(assembly.Intersect("blanket_envelope")...),
	})
	plan.MustAdd(assembly.Component{
		Name:    "blanket",
		Profile: blanketFP(gap+fw, blanket, 90, -90),
		Steps:   cutPF(append(assembly.Union("inboard_blanket"), assembly.Cut("supports")...)...),
	})

	// Rear wall caps close the blanket over the inboard side.
	rearStart := vertical.Start("rear_wall")
	ccsEnd := radial.End("center_column_shield")
	plan.MustAdd(assembly.Component{
		Name:    "outboard_rear_blanket_wall_upper",
		Profile: rectangle(ccsEnd, inboardFW.MaxX(), rearStart, rearEnd),
		Hidden:  true,
	})
	plan.MustAdd(assembly.Component{
		Name:    "outboard_rear_blanket_wall_lower",
		Profile: rectangle(ccsEnd, inboardFW.MaxX(), -rearEnd, -rearStart),
		Hidden:  true,
	})
	plan.MustAdd(assembly.Component{
		Name:    "outboard_rear_blanket_wall",
		Profile: blanketFP(gap+fw+blanket, s.BlanketRearWallRadialThickness, 90, -90),
		Steps:   cutPF(assembly.Union("outboard_rear_blanket_wall_upper", "outboard_rear_blanket_wall_lower")...),
	})

	plan.MustAdd(assembly.Component{
		Name:    "inboard_tf_coils",
		Profile: shape(must2.CenterColumnCylinder{InnerRadius: radial.Start("inboard_tf_coils"), OuterRadius: radial.End("inboard_tf_coils"), Height: 2 * rearEnd}),
		Steps:   cutPF(),
	})
	if s.HasTFCoils() {
		hanger := must2.ToroidalFieldCoilCoatHanger{
			HorizontalStart:  r2.Vec{X: radial.Start("inboard_tf_coils"), Y: rearEnd},
			HorizontalLength: 0.75 * radial.End("outboard_rear_blanket_wall"),
			VerticalMid:      r2.Vec{X: radial.Start("outboard_tf_coil")},
			VerticalLength:   1.5 * rearEnd,
			Thickness:        s.OutboardTFCoilRadialThickness,
		}
		plan.MustAdd(assembly.Component{
			Name:     "outboard_tf_coil",
			Profile:  shape(hanger),
			Method:   assembly.Extrude,
			Distance: s.OutboardTFCoilPoloidalThickness,
			Copies:   s.NumberOfTFCoils,
			Steps:    cutPF(),
		})
	}
	return plan, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
