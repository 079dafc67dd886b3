// Package reactor holds parametric reactors: named parameter sets that
// derive radial and vertical builds and an assembly plan wiring component
// profiles together with boolean steps.
package reactor

import (
	"strings"

	"github.com/soypat/paramak"
	"github.com/soypat/paramak/assembly"
	"github.com/soypat/paramak/build"
	"github.com/soypat/paramak/form2"
	"github.com/soypat/paramak/form2/must2"
	"github.com/soypat/paramak/kernel"
	"go.uber.org/zap"
)

// Reactor is a parametric reactor.
type Reactor interface {
	// Validate checks the reactor parameters.
	Validate() error
	// Builds returns the radial and vertical builds derived from the
	// parameters.
	Builds() (radial, vertical *build.Build, err error)
	// Plan returns the construction plan of the reactor parts.
	Plan() (*assembly.Plan, error)
}

// Position selects which side of the midplane a component occupies.
type Position string

const (
	Upper Position = "upper"
	Lower Position = "lower"
	Both  Position = "both"
)

// ParsePosition parses "upper", "lower" or "both", ignoring case.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate reports an error wrapping paramak.ErrInvalidParameter for
// unknown positions.
func (p Position) Validate() error {
	switch p {
	case Upper, Lower, Both:
		return nil
	}
	return paramak.Paramf("", "position", "%q must be upper, lower or both", string(p))
}

// span returns the vertical extent of a band of half height h at p.
func (p Position) span(h float64) (bottom, top float64) {
	switch p {
	case Upper:
		return 0, h
	case Lower:
		return -h, 0
	}
	return -h, h
}

// Assemble builds the reactor plan on k.
func Assemble(k kernel.Kernel, r Reactor, logger *zap.Logger) (*assembly.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	radial, vertical, err := r.Builds()
	if err != nil {
		return nil, err
	}
	logger.Debug("radial build", zap.Stringers("intervals", radial.Intervals()))
	logger.Debug("vertical build", zap.Stringers("intervals", vertical.Intervals()))
	plan, err := r.Plan()
	if err != nil {
		return nil, err
	}
	return assembly.Assemble(k, plan, logger)
}

// shape returns a profile function that validates and builds s.
func shape(s must2.Shape) func() (paramak.Profile, error) {
	return func() (paramak.Profile, error) { return form2.Profile(s) }
}

// rectangle is shape for a rectangle spanning x0..x1 and z0..z1.
func rectangle(x0, x1, z0, z1 float64) func() (paramak.Profile, error) {
	return shape(must2.Rectangle{X: [2]float64{x0, x1}, Z: [2]float64{z0, z1}})
}

func positive(shape, param string, v float64) error {
	if !(v > 0) {
		return paramak.Paramf(shape, param, "must be positive, got %g", v)
	}
	return nil
}

func nonNegative(shape, param string, v float64) error {
	if !(v >= 0) {
		return paramak.Paramf(shape, param, "must not be negative, got %g", v)
	}
	return nil
}

func checkAngle(shape string, angle float64) error {
	if !(angle > 0 && angle <= 360) {
		return paramak.Paramf(shape, "rotation_angle", "%g outside (0, 360]", angle)
	}
	return nil
}
