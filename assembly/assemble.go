package assembly

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/soypat/paramak"
	"github.com/soypat/paramak/form2/must2"
	"github.com/soypat/paramak/kernel"
	"go.uber.org/zap"
)

// Part is a built visible component.
type Part struct {
	Name  string
	Solid kernel.Solid
}

// Result holds the solids of one assembly run.
type Result struct {
	// RunID identifies the run in log output.
	RunID  string
	Parts  []Part
	solids map[string]kernel.Solid
}

// Solid returns the solid of any component, hidden ones included.
func (r *Result) Solid(name string) (kernel.Solid, bool) {
	s, ok := r.solids[name]
	return s, ok
}

// Assemble builds every component of plan in order: the profile is rebuilt,
// turned into a solid and the boolean steps are applied against the already
// built siblings. The first failure stops the run and is returned with the
// component name attached. A nil logger disables logging.
func Assemble(k kernel.Kernel, plan *Plan, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	res := &Result{
		RunID:  uuid.New().String(),
		solids: make(map[string]kernel.Solid, len(plan.components)),
	}
	log := logger.With(zap.String("run", res.RunID))
	if plan.angle == 360 {
		log.Warn("360 degree rotation builds closed seam faces that some kernels fail to construct; consider 359 degrees")
	}
	log.Debug("assembling", zap.Int("components", len(plan.components)), zap.Float64("rotation_angle", plan.angle))
	for _, c := range plan.components {
		s, err := construct(k, plan.angle, c, res.solids, log)
		if err != nil {
			return nil, componentErr(c.Name, err)
		}
		res.solids[c.Name] = s
		if !c.Hidden {
			res.Parts = append(res.Parts, Part{Name: c.Name, Solid: s})
		}
	}
	log.Debug("assembled", zap.Int("parts", len(res.Parts)))
	return res, nil
}

func construct(k kernel.Kernel, angle float64, c Component, built map[string]kernel.Solid, log *zap.Logger) (kernel.Solid, error) {
	log = log.With(zap.String("component", c.Name))
	profile, err := c.Profile()
	if err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	log.Debug("profile", zap.Int("points", len(profile)), zap.Stringer("method", c.Method))
	var s kernel.Solid
	switch c.Method {
	case Revolve:
		s, err = k.Revolve(profile, angle)
	case Extrude:
		s, err = k.Extrude(profile, c.Distance)
	case Sweep:
		s, err = k.Sweep(profile, c.Path)
	}
	if err != nil {
		return nil, err
	}
	if c.Method != Revolve {
		if s, err = copies(k, s, c.Copies); err != nil {
			return nil, err
		}
		if angle < 360 {
			if s, err = sector(k, s, angle); err != nil {
				return nil, err
			}
		}
	}
	for _, st := range c.Steps {
		sib, ok := built[st.Sibling]
		if !ok {
			return nil, paramak.Paramf("assembly", c.Name, "sibling %q not built", st.Sibling)
		}
		log.Debug("boolean", zap.Stringer("op", st.Op), zap.String("sibling", st.Sibling))
		if s, err = k.Boolean(st.Op, s, sib); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// copies unions n copies of s spread evenly about the Z axis.
func copies(k kernel.Kernel, s kernel.Solid, n int) (kernel.Solid, error) {
	all := s
	for i := 1; i < n; i++ {
		r, err := k.RotateZ(s, 360*float64(i)/float64(n))
		if err != nil {
			return nil, err
		}
		if all, err = k.Boolean(kernel.Union, all, r); err != nil {
			return nil, err
		}
	}
	return all, nil
}

// sector trims s to the wedge swept by the plan rotation angle so that
// extruded parts match their revolved neighbours.
func sector(k kernel.Kernel, s kernel.Solid, angle float64) (kernel.Solid, error) {
	bb := s.Bounds()
	r := 0.0
	for _, x := range []float64{bb.Min.X, bb.Max.X} {
		for _, y := range []float64{bb.Min.Y, bb.Max.Y} {
			r = math.Max(r, math.Hypot(x, y))
		}
	}
	margin := 1 + 0.1*math.Max(r, bb.Max.Z-bb.Min.Z)
	wedge := must2.Rectangle{
		X: [2]float64{0, r + margin},
		Z: [2]float64{bb.Min.Z - margin, bb.Max.Z + margin},
	}
	ws, err := k.Revolve(wedge.Profile(), angle)
	if err != nil {
		return nil, err
	}
	return k.Boolean(kernel.Intersect, s, ws)
}

// componentErr attaches the component name to kernel errors and prefixes
// every other error with it.
func componentErr(name string, err error) error {
	var kerr *paramak.KernelError
	if errors.As(err, &kerr) {
		if kerr.Component == "" {
			c := *kerr
			c.Component = name
			return &c
		}
		return err
	}
	return fmt.Errorf("component %q: %w", name, err)
}

// Volumes returns the volume of every part.
func Volumes(k kernel.Kernel, parts []Part) (map[string]float64, error) {
	vols := make(map[string]float64, len(parts))
	for _, p := range parts {
		v, err := k.Volume(p.Solid)
		if err != nil {
			return nil, componentErr(p.Name, err)
		}
		vols[p.Name] = v
	}
	return vols, nil
}
