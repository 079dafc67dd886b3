package kernel

import (
	"fmt"
	"math"

	"github.com/soypat/paramak"
	"github.com/soypat/paramak/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// areaTol is the face area below which a revolved face is considered to lie
// on the axis and is dropped.
const areaTol = 1e-9

// Measure is the volume and per face area of a solid built directly from a
// profile. One face is generated per profile edge plus the end caps.
type Measure struct {
	Volume float64
	Areas  []float64
}

// Area returns the total surface area.
func (m Measure) Area() (a float64) {
	for _, f := range m.Areas {
		a += f
	}
	return a
}

// edgePolylines returns every edge of p discretized with its end point.
func edgePolylines(p paramak.Profile, facets int) ([][]r2.Vec, error) {
	edges, err := p.Edges()
	if err != nil {
		return nil, err
	}
	lines := make([][]r2.Vec, len(edges))
	for i, e := range edges {
		seg, err := e.Discretize(facets)
		if err != nil {
			return nil, err
		}
		lines[i] = append(seg, e.Points[len(e.Points)-1])
	}
	return lines, nil
}

// MeasureRevolve returns the volume and face areas of p revolved about the
// Z axis by angle degrees using the theorems of Pappus. Faces of edges lying
// on the axis have no area and are omitted. Two planar caps are appended for
// partial revolutions.
func MeasureRevolve(p paramak.Profile, angle float64, facets int) (Measure, error) {
	if angle <= 0 || angle > 360 {
		return Measure{}, paramak.Paramf("", "rotation_angle", "%g outside (0, 360]", angle)
	}
	if p.MinX() < 0 {
		return Measure{}, fmt.Errorf("profile crosses the revolve axis at x=%g: %w", p.MinX(), paramak.ErrDegenerateGeometry)
	}
	lines, err := edgePolylines(p, facets)
	if err != nil {
		return Measure{}, err
	}
	theta := paramak.DtoR(angle)
	var m Measure
	for _, l := range lines {
		var a float64
		for i := 1; i < len(l); i++ {
			a += paramak.Distance(l[i-1], l[i]) * (l[i-1].X + l[i].X) / 2
		}
		a *= theta
		if a > areaTol {
			m.Areas = append(m.Areas, a)
		}
	}
	poly, err := p.Polyline(facets)
	if err != nil {
		return Measure{}, err
	}
	area := math.Abs(d2.SignedArea(poly))
	m.Volume = theta * area * d2.Centroid(poly).X
	if angle < 360 {
		m.Areas = append(m.Areas, area, area)
	}
	return m, nil
}

// MeasureExtrude returns the volume and face areas of p extruded by distance.
// The two caps are the last two areas.
func MeasureExtrude(p paramak.Profile, distance float64, facets int) (Measure, error) {
	if distance <= 0 {
		return Measure{}, paramak.Paramf("", "distance", "must be positive, got %g", distance)
	}
	lines, err := edgePolylines(p, facets)
	if err != nil {
		return Measure{}, err
	}
	var m Measure
	for _, l := range lines {
		m.Areas = append(m.Areas, d2.Set(l).Length()*distance)
	}
	poly, err := p.Polyline(facets)
	if err != nil {
		return Measure{}, err
	}
	area := math.Abs(d2.SignedArea(poly))
	m.Volume = area * distance
	m.Areas = append(m.Areas, area, area)
	return m, nil
}
