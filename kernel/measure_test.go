package kernel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/paramak"
	"github.com/soypat/paramak/form2/must2"
	"github.com/soypat/paramak/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestParseOp(t *testing.T) {
	for _, op := range []kernel.Op{kernel.Union, kernel.Cut, kernel.Intersect} {
		got, err := kernel.ParseOp(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err := kernel.ParseOp("xor")
	assert.ErrorIs(t, err, paramak.ErrInvalidParameter)
}

func TestMeasureRevolveCylinder(t *testing.T) {
	p := must2.CenterColumnCylinder{InnerRadius: 100, OuterRadius: 150, Height: 400}.Profile()
	m, err := kernel.MeasureRevolve(p, 360, paramak.DefaultFacets)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*(150*150-100*100)*400, m.Volume, 1e-6)
	// inner face split at the midplane, two annuli and the outer face.
	require.Len(t, m.Areas, 5)
	assert.InDelta(t, 2*math.Pi*150*400, m.Areas[2], 1e-6)
	assert.InDelta(t, 2*math.Pi*100*400+2*math.Pi*150*400+2*math.Pi*(150*150-100*100), m.Area(), 1e-6)

	half, err := kernel.MeasureRevolve(p, 180, paramak.DefaultFacets)
	require.NoError(t, err)
	assert.InDelta(t, m.Volume/2, half.Volume, 1e-6)
	assert.Len(t, half.Areas, 7, "partial revolution adds two caps")
}

func TestMeasureRevolveAxisFace(t *testing.T) {
	// solid cylinder touching the axis has no inner face.
	p := must2.Rectangle{X: [2]float64{0, 10}, Z: [2]float64{0, 20}}.Profile()
	m, err := kernel.MeasureRevolve(p, 360, paramak.DefaultFacets)
	require.NoError(t, err)
	assert.Len(t, m.Areas, 3)
	assert.InDelta(t, math.Pi*100*20, m.Volume, 1e-9)
}

func TestMeasureRevolveArcBlanket(t *testing.T) {
	b := must2.BlanketArcH{
		InnerLower: r2.Vec{X: 300, Y: -200},
		InnerMid:   r2.Vec{X: 500, Y: 0},
		InnerUpper: r2.Vec{X: 300, Y: 200},
		Thickness:  20,
	}
	full, err := kernel.MeasureRevolve(b.Profile(), 360, paramak.DefaultFacets)
	require.NoError(t, err)
	assert.Len(t, full.Areas, 4)
	half, err := kernel.MeasureRevolve(b.Profile(), 180, paramak.DefaultFacets)
	require.NoError(t, err)
	assert.Len(t, half.Areas, 6)
	assert.InEpsilon(t, full.Volume/2, half.Volume, 1e-12)
}

func TestMeasureRevolveErrors(t *testing.T) {
	p := paramak.Profile{
		paramak.Pt(-5, 0, paramak.Straight),
		paramak.Pt(10, 0, paramak.Straight),
		paramak.Pt(10, 20, paramak.Straight),
		paramak.Pt(-5, 20, paramak.Straight),
	}
	_, err := kernel.MeasureRevolve(p, 360, paramak.DefaultFacets)
	assert.True(t, errors.Is(err, paramak.ErrDegenerateGeometry), "got %v", err)
	_, err = kernel.MeasureRevolve(p, 0, paramak.DefaultFacets)
	assert.ErrorIs(t, err, paramak.ErrInvalidParameter)
}

func TestMeasureExtrude(t *testing.T) {
	p := must2.Rectangle{X: [2]float64{10, 20}, Z: [2]float64{-5, 5}}.Profile()
	m, err := kernel.MeasureExtrude(p, 3, paramak.DefaultFacets)
	require.NoError(t, err)
	assert.InDelta(t, 300, m.Volume, 1e-9)
	require.Len(t, m.Areas, 6)
	assert.InDelta(t, 4*10*3+2*100, m.Area(), 1e-9)
}
