package reactor

import (
	"github.com/soypat/paramak/assembly"
	"github.com/soypat/paramak/build"
)

// CylinderReactor is a cylindrical blanket inside a vacuum vessel, closed
// above and below by blanket and vessel slabs. Heights are measured from
// the midplane.
type CylinderReactor struct {
	InnerBlanketRadius    float64 `mapstructure:"inner_blanket_radius" toml:"inner_blanket_radius" yaml:"inner_blanket_radius"`
	BlanketThickness      float64 `mapstructure:"blanket_thickness" toml:"blanket_thickness" yaml:"blanket_thickness"`
	BlanketHeight         float64 `mapstructure:"blanket_height" toml:"blanket_height" yaml:"blanket_height"`
	LowerBlanketThickness float64 `mapstructure:"lower_blanket_thickness" toml:"lower_blanket_thickness" yaml:"lower_blanket_thickness"`
	UpperBlanketThickness float64 `mapstructure:"upper_blanket_thickness" toml:"upper_blanket_thickness" yaml:"upper_blanket_thickness"`
	BlanketVVGap          float64 `mapstructure:"blanket_vv_gap" toml:"blanket_vv_gap" yaml:"blanket_vv_gap"`
	UpperVVThickness      float64 `mapstructure:"upper_vv_thickness" toml:"upper_vv_thickness" yaml:"upper_vv_thickness"`
	VVThickness           float64 `mapstructure:"vv_thickness" toml:"vv_thickness" yaml:"vv_thickness"`
	LowerVVThickness      float64 `mapstructure:"lower_vv_thickness" toml:"lower_vv_thickness" yaml:"lower_vv_thickness"`
	RotationAngle         float64 `mapstructure:"rotation_angle" toml:"rotation_angle" yaml:"rotation_angle"`
}

// DefaultCylinderReactor returns the reference cylindrical reactor.
func DefaultCylinderReactor() CylinderReactor {
	return CylinderReactor{
		InnerBlanketRadius:    100,
		BlanketThickness:      60,
		BlanketHeight:         500,
		LowerBlanketThickness: 50,
		UpperBlanketThickness: 40,
		BlanketVVGap:          20,
		UpperVVThickness:      10,
		VVThickness:           10,
		LowerVVThickness:      10,
		RotationAngle:         360,
	}
}

func (c CylinderReactor) Validate() error {
	const shape = "cylinder reactor"
	return firstErr(
		positive(shape, "inner_blanket_radius", c.InnerBlanketRadius),
		positive(shape, "blanket_thickness", c.BlanketThickness),
		positive(shape, "blanket_height", c.BlanketHeight),
		positive(shape, "lower_blanket_thickness", c.LowerBlanketThickness),
		positive(shape, "upper_blanket_thickness", c.UpperBlanketThickness),
		nonNegative(shape, "blanket_vv_gap", c.BlanketVVGap),
		positive(shape, "upper_vv_thickness", c.UpperVVThickness),
		positive(shape, "vv_thickness", c.VVThickness),
		positive(shape, "lower_vv_thickness", c.LowerVVThickness),
		checkAngle(shape, c.RotationAngle),
	)
}

// Builds returns the radial build from the axis outward and the vertical
// build from the bottom of the lower vessel slab upward.
func (c CylinderReactor) Builds() (radial, vertical *build.Build, err error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	radial, err = build.Sequence(0,
		build.Space("inner_bore", c.InnerBlanketRadius),
		build.Layer("blanket", c.BlanketThickness),
		build.Space("blanket_vv_gap", c.BlanketVVGap),
		build.Layer("vac_ves", c.VVThickness),
	)
	if err != nil {
		return nil, nil, err
	}
	h := c.BlanketHeight / 2
	vertical, err = build.Sequence(-h-c.LowerBlanketThickness-c.LowerVVThickness,
		build.Layer("lower_vv", c.LowerVVThickness),
		build.Layer("lower_blanket", c.LowerBlanketThickness),
		build.Layer("blanket", c.BlanketHeight),
		build.Layer("upper_vv", c.UpperVVThickness),
		build.Layer("upper_blanket", c.UpperBlanketThickness),
	)
	if err != nil {
		return nil, nil, err
	}
	return radial, vertical, nil
}

// Plan returns the six reactor parts. The slabs span from the axis to the
// inner face of the vessel.
func (c CylinderReactor) Plan() (*assembly.Plan, error) {
	radial, vertical, err := c.Builds()
	if err != nil {
		return nil, err
	}
	plan, err := assembly.NewPlan(c.RotationAngle)
	if err != nil {
		return nil, err
	}
	wall := radial.Start("vac_ves")
	slab := func(name string) assembly.Component {
		return assembly.Component{Name: name, Profile: rectangle(0, wall, vertical.Start(name), vertical.End(name))}
	}
	plan.MustAdd(slab("lower_vv"))
	plan.MustAdd(slab("lower_blanket"))
	plan.MustAdd(assembly.Component{
		Name:    "blanket",
		Profile: rectangle(radial.Start("blanket"), radial.End("blanket"), vertical.Start("blanket"), vertical.End("blanket")),
		Steps:   assembly.Cut("lower_blanket"),
	})
	plan.MustAdd(slab("upper_vv"))
	plan.MustAdd(slab("upper_blanket"))
	plan.MustAdd(assembly.Component{
		Name:    "vac_ves",
		Profile: rectangle(wall, radial.End("vac_ves"), vertical.Origin(), vertical.Cursor()),
	})
	return plan, nil
}
