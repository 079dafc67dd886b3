package assembly_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/soypat/paramak"
	"github.com/soypat/paramak/assembly"
	"github.com/soypat/paramak/form2/must2"
	"github.com/soypat/paramak/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/spatial/r3"
)

// recorder is a kernel that records every call and labels the solids it
// returns s1, s2 and so on.
type recorder struct {
	calls  []string
	n      int
	failOp string
}

type label struct {
	name string
	box  r3.Box
}

func (l *label) Bounds() r3.Box { return l.box }

func (k *recorder) solid(format string, args ...any) *label {
	k.n++
	l := &label{name: fmt.Sprintf("s%d", k.n), box: r3.Box{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}}
	k.calls = append(k.calls, l.name+" = "+fmt.Sprintf(format, args...))
	return l
}

func (k *recorder) fail(op string) error {
	if op == k.failOp {
		return &paramak.KernelError{Op: op, Err: errors.New("construction failed")}
	}
	return nil
}

func (k *recorder) Revolve(p paramak.Profile, angle float64) (kernel.Solid, error) {
	if err := k.fail("revolve"); err != nil {
		return nil, err
	}
	return k.solid("revolve %g", angle), nil
}

func (k *recorder) Extrude(p paramak.Profile, distance float64) (kernel.Solid, error) {
	return k.solid("extrude %g", distance), nil
}

func (k *recorder) Sweep(p paramak.Profile, path []r3.Vec) (kernel.Solid, error) {
	return k.solid("sweep %d", len(path)), nil
}

func (k *recorder) Boolean(op kernel.Op, a, b kernel.Solid) (kernel.Solid, error) {
	if err := k.fail(op.String()); err != nil {
		return nil, err
	}
	return k.solid("%v %s %s", op, a.(*label).name, b.(*label).name), nil
}

func (k *recorder) RotateZ(s kernel.Solid, angle float64) (kernel.Solid, error) {
	return k.solid("rotate %s %g", s.(*label).name, angle), nil
}

func (k *recorder) Volume(s kernel.Solid) (float64, error) { return 1, nil }

func (k *recorder) SurfaceAreas(s kernel.Solid) ([]float64, error) { return nil, nil }

func rect(x0, x1 float64) func() (paramak.Profile, error) {
	return func() (paramak.Profile, error) {
		return must2.Rectangle{X: [2]float64{x0, x1}, Z: [2]float64{-10, 10}}.Profile(), nil
	}
}

func TestPlanAdd(t *testing.T) {
	plan, err := assembly.NewPlan(180)
	require.NoError(t, err)
	require.NoError(t, plan.Add(assembly.Component{Name: "a", Profile: rect(0, 1)}))

	for _, c := range []assembly.Component{
		{Name: "b", Profile: rect(1, 2), Steps: assembly.Cut("later")},
		{Name: "a", Profile: rect(1, 2)},
		{Name: "c", Profile: rect(1, 2), Steps: assembly.Cut("c")},
		{Name: "d"},
		{Name: "e", Profile: rect(1, 2), Method: assembly.Extrude},
		{Name: "f", Profile: rect(1, 2), Method: assembly.Sweep, Path: []r3.Vec{{}}},
	} {
		err := plan.Add(c)
		assert.ErrorIs(t, err, paramak.ErrInvalidParameter, "component %v", c)
	}
	assert.Equal(t, []string{"a"}, plan.Parts())

	for _, angle := range []float64{0, -90, 361} {
		_, err := assembly.NewPlan(angle)
		assert.ErrorIs(t, err, paramak.ErrInvalidParameter)
	}
}

func TestDependencies(t *testing.T) {
	plan, err := assembly.NewPlan(90)
	require.NoError(t, err)
	plan.MustAdd(assembly.Component{Name: "a", Profile: rect(0, 1)})
	plan.MustAdd(assembly.Component{Name: "b", Profile: rect(1, 2)})
	plan.MustAdd(assembly.Component{Name: "c", Profile: rect(2, 3), Steps: assembly.Cut("a")})
	plan.MustAdd(assembly.Component{Name: "d", Profile: rect(3, 4), Steps: assembly.Union("c")})
	deps, err := plan.Dependencies("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, deps)
	_, err = plan.Dependencies("z")
	assert.ErrorIs(t, err, paramak.ErrInvalidParameter)
}

func TestAssembleOrder(t *testing.T) {
	plan, err := assembly.NewPlan(180)
	require.NoError(t, err)
	plan.MustAdd(assembly.Component{Name: "a", Profile: rect(0, 1)})
	plan.MustAdd(assembly.Component{Name: "b", Profile: rect(1, 2), Steps: assembly.Cut("a")})
	plan.MustAdd(assembly.Component{Name: "c", Profile: rect(2, 3), Hidden: true})
	plan.MustAdd(assembly.Component{Name: "d", Profile: rect(3, 4), Steps: append(assembly.Union("c"), assembly.Cut("a")...)})

	k := &recorder{}
	res, err := assembly.Assemble(k, plan, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"s1 = revolve 180",
		"s2 = revolve 180",
		"s3 = cut s2 s1",
		"s4 = revolve 180",
		"s5 = revolve 180",
		"s6 = union s5 s4",
		"s7 = cut s6 s1",
	}, k.calls)

	var names, solids []string
	for _, p := range res.Parts {
		names = append(names, p.Name)
		solids = append(solids, p.Solid.(*label).name)
	}
	assert.Equal(t, []string{"a", "b", "d"}, names)
	assert.Equal(t, []string{"s1", "s3", "s7"}, solids)
	hidden, ok := res.Solid("c")
	require.True(t, ok)
	assert.Equal(t, "s4", hidden.(*label).name)
	assert.NotEmpty(t, res.RunID)
}

func TestAssembleExtrudedCopies(t *testing.T) {
	plan, err := assembly.NewPlan(180)
	require.NoError(t, err)
	plan.MustAdd(assembly.Component{Name: "tf", Profile: rect(5, 6), Method: assembly.Extrude, Distance: 2, Copies: 3})
	k := &recorder{}
	_, err = assembly.Assemble(k, plan, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"s1 = extrude 2",
		"s2 = rotate s1 120",
		"s3 = union s1 s2",
		"s4 = rotate s1 240",
		"s5 = union s3 s4",
		"s6 = revolve 180",
		"s7 = intersect s5 s6",
	}, k.calls)
}

func TestAssembleFullRotation(t *testing.T) {
	plan, err := assembly.NewPlan(360)
	require.NoError(t, err)
	plan.MustAdd(assembly.Component{Name: "tf", Profile: rect(5, 6), Method: assembly.Extrude, Distance: 2})
	core, logs := observer.New(zapcore.WarnLevel)
	k := &recorder{}
	_, err = assembly.Assemble(k, plan, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, []string{"s1 = extrude 2"}, k.calls, "no sector cut at 360 degrees")
	assert.Equal(t, 1, logs.FilterMessageSnippet("360 degree").Len())
}

func TestAssembleErrors(t *testing.T) {
	plan, err := assembly.NewPlan(90)
	require.NoError(t, err)
	plan.MustAdd(assembly.Component{Name: "a", Profile: rect(0, 1)})
	plan.MustAdd(assembly.Component{Name: "b", Profile: rect(1, 2), Steps: assembly.Cut("a")})
	plan.MustAdd(assembly.Component{Name: "bad", Profile: func() (paramak.Profile, error) {
		return nil, paramak.Paramf("shield", "mid_radius", "out of range")
	}})

	k := &recorder{failOp: "cut"}
	_, err = assembly.Assemble(k, plan, nil)
	require.ErrorIs(t, err, paramak.ErrKernel)
	var kerr *paramak.KernelError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "b", kerr.Component)

	k = &recorder{}
	_, err = assembly.Assemble(k, plan, nil)
	assert.ErrorIs(t, err, paramak.ErrInvalidParameter)
	assert.Contains(t, err.Error(), `"bad"`)
	assert.Len(t, k.calls, 3, "no kernel call after the failing profile")
}

func TestAssembleMalformedProfile(t *testing.T) {
	plan, err := assembly.NewPlan(90)
	require.NoError(t, err)
	plan.MustAdd(assembly.Component{Name: "bowtie", Profile: func() (paramak.Profile, error) {
		b := must2.NewProfile()
		b.Add(10, 0)
		b.Add(20, 10)
		b.Add(20, 0)
		b.Add(10, 10)
		return b.Profile(), nil
	}})

	k := &recorder{}
	_, err = assembly.Assemble(k, plan, nil)
	assert.ErrorIs(t, err, paramak.ErrDegenerateGeometry)
	assert.Contains(t, err.Error(), `"bowtie"`)
	assert.Empty(t, k.calls, "self intersecting outline reached the kernel")
}
