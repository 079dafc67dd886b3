// Package assembly composes reactor parts from component profiles.
//
// A Plan lists components in construction order. Each component names the
// method used to turn its profile into a solid and the boolean steps applied
// against siblings declared before it. Assemble executes a plan against a
// kernel.Kernel in one synchronous pass.
package assembly

import (
	"fmt"
	"math"

	"github.com/soypat/paramak"
	"github.com/soypat/paramak/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Method is how a profile becomes a solid.
type Method int

const (
	Revolve Method = iota
	Extrude
	Sweep
)

func (m Method) String() string {
	switch m {
	case Revolve:
		return "revolve"
	case Extrude:
		return "extrude"
	case Sweep:
		return "sweep"
	}
	return "Method(?)"
}

// Step is a boolean operation of the component solid against a sibling.
type Step struct {
	Op      kernel.Op
	Sibling string
}

func (s Step) String() string { return s.Op.String() + " " + s.Sibling }

// Cut returns cut steps against each sibling.
func Cut(siblings ...string) []Step { return steps(kernel.Cut, siblings) }

// Union returns union steps with each sibling.
func Union(siblings ...string) []Step { return steps(kernel.Union, siblings) }

// Intersect returns intersect steps with each sibling.
func Intersect(siblings ...string) []Step { return steps(kernel.Intersect, siblings) }

func steps(op kernel.Op, siblings []string) []Step {
	s := make([]Step, len(siblings))
	for i, name := range siblings {
		s[i] = Step{Op: op, Sibling: name}
	}
	return s
}

// Component describes one solid of the assembly.
type Component struct {
	Name string
	// Profile rebuilds the cross-section from the current parameters. It is
	// called once per assembly.
	Profile func() (paramak.Profile, error)
	Method  Method
	// Distance is the extrusion distance of Extrude components.
	Distance float64
	// Path is the sweep path of Sweep components.
	Path []r3.Vec
	// Copies is the number of copies of an extruded or swept solid spread
	// evenly about the Z axis. Zero and one mean a single solid.
	Copies int
	// Steps are applied in order after the solid is built.
	Steps []Step
	// Hidden components are construction aids and are not reactor parts.
	Hidden bool
}

// Plan is an ordered list of components built with one rotation angle.
type Plan struct {
	angle      float64
	components []Component
	index      map[string]int
}

// NewPlan returns an empty plan whose revolved components span angle
// degrees in (0, 360].
func NewPlan(angle float64) (*Plan, error) {
	if math.IsNaN(angle) || angle <= 0 || angle > 360 {
		return nil, paramak.Paramf("assembly", "rotation_angle", "%g outside (0, 360]", angle)
	}
	return &Plan{angle: angle, index: make(map[string]int)}, nil
}

// Angle returns the rotation angle of the plan in degrees.
func (p *Plan) Angle() float64 { return p.angle }

// Add appends c to the plan. Every sibling named by the steps of c must
// already be in the plan, which keeps the construction order acyclic.
func (p *Plan) Add(c Component) error {
	if c.Name == "" {
		return paramak.Paramf("assembly", "name", "component without a name")
	}
	if _, dup := p.index[c.Name]; dup {
		return paramak.Paramf("assembly", c.Name, "component declared twice")
	}
	if c.Profile == nil {
		return paramak.Paramf("assembly", c.Name, "component without a profile")
	}
	switch c.Method {
	case Revolve:
	case Extrude:
		if !(c.Distance > 0) {
			return paramak.Paramf("assembly", c.Name, "extrusion distance must be positive, got %g", c.Distance)
		}
	case Sweep:
		if len(c.Path) < 2 {
			return paramak.Paramf("assembly", c.Name, "sweep path needs at least 2 points, got %d", len(c.Path))
		}
	default:
		return paramak.Paramf("assembly", c.Name, "unknown construction method %v", c.Method)
	}
	if c.Copies < 0 {
		return paramak.Paramf("assembly", c.Name, "negative number of copies %d", c.Copies)
	}
	for _, s := range c.Steps {
		if s.Sibling == c.Name {
			return paramak.Paramf("assembly", c.Name, "step %v refers to the component itself", s)
		}
		if _, ok := p.index[s.Sibling]; !ok {
			return paramak.Paramf("assembly", c.Name, "step %v refers to %q which is not declared earlier", s, s.Sibling)
		}
	}
	p.index[c.Name] = len(p.components)
	p.components = append(p.components, c)
	return nil
}

// MustAdd is like Add but panics on error.
func (p *Plan) MustAdd(c Component) {
	if err := p.Add(c); err != nil {
		panic(err)
	}
}

// Components returns the components in construction order.
func (p *Plan) Components() []Component {
	return append([]Component(nil), p.components...)
}

// Component returns the component called name.
func (p *Plan) Component(name string) (Component, bool) {
	i, ok := p.index[name]
	if !ok {
		return Component{}, false
	}
	return p.components[i], true
}

// Parts returns the names of the visible components in construction order.
func (p *Plan) Parts() []string {
	var names []string
	for _, c := range p.components {
		if !c.Hidden {
			names = append(names, c.Name)
		}
	}
	return names
}

// Dependencies returns the siblings name needs, directly or through its
// siblings, in construction order.
func (p *Plan) Dependencies(name string) ([]string, error) {
	i, ok := p.index[name]
	if !ok {
		return nil, paramak.Paramf("assembly", name, "no such component")
	}
	need := make(map[string]bool)
	var mark func(c Component)
	mark = func(c Component) {
		for _, s := range c.Steps {
			if !need[s.Sibling] {
				need[s.Sibling] = true
				mark(p.components[p.index[s.Sibling]])
			}
		}
	}
	mark(p.components[i])
	var deps []string
	for _, c := range p.components[:i] {
		if need[c.Name] {
			deps = append(deps, c.Name)
		}
	}
	return deps, nil
}

func (c Component) String() string {
	s := fmt.Sprintf("%s (%v)", c.Name, c.Method)
	if c.Hidden {
		s += " hidden"
	}
	for _, st := range c.Steps {
		s += ", " + st.String()
	}
	return s
}
