// Package sdfx implements kernel.Kernel with the signed distance function
// library github.com/deadsy/sdfx.
//
// Solids built directly from a profile carry their exact volume and face
// areas (see kernel.MeasureRevolve). Boolean results are measured by sampling
// the distance field on a cylindrical grid and meshing with marching cubes.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/paramak"
	"github.com/soypat/paramak/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ kernel.Kernel = (*Kernel)(nil)

const (
	// DefaultResolution is the number of sampling cells along the radius and
	// the height of a solid when measuring its volume.
	DefaultResolution = 64
	defaultMeshCells  = 200
)

// Kernel builds solids as sdfx distance fields.
type Kernel struct {
	facets    int
	cells     int
	meshCells int
}

// Option configures a Kernel.
type Option func(*Kernel)

// WithResolution sets the number of volume sampling cells along the radius
// and the height. The angular direction uses four times as many.
func WithResolution(cells int) Option {
	return func(k *Kernel) {
		if cells > 0 {
			k.cells = cells
		}
	}
}

// WithFacets sets the number of segments each arc and spline edge is
// discretized into.
func WithFacets(facets int) Option {
	return func(k *Kernel) {
		if facets > 0 {
			k.facets = facets
		}
	}
}

// WithMeshCells sets the marching cubes resolution used for surface areas of
// boolean results.
func WithMeshCells(cells int) Option {
	return func(k *Kernel) {
		if cells > 0 {
			k.meshCells = cells
		}
	}
}

// New returns a Kernel with the default resolution.
func New(opts ...Option) *Kernel {
	k := &Kernel{
		facets:    paramak.DefaultFacets,
		cells:     DefaultResolution,
		meshCells: defaultMeshCells,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// solid wraps an sdf.SDF3. measure is nil when the exact volume is unknown.
type solid struct {
	s       sdf.SDF3
	measure *kernel.Measure
}

func (s *solid) Bounds() r3.Box {
	bb := s.s.BoundingBox()
	return r3.Box{
		Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}
}

func unwrap(s kernel.Solid) (*solid, error) {
	sd, ok := s.(*solid)
	if !ok || sd == nil {
		return nil, fmt.Errorf("solid %T not built by the sdfx kernel", s)
	}
	return sd, nil
}

// polygon returns the discretized profile as an sdfx polygon.
func (k *Kernel) polygon(p paramak.Profile) (sdf.SDF2, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	poly, err := p.Polyline(k.facets)
	if err != nil {
		return nil, err
	}
	verts := make([]v2.Vec, len(poly))
	for i, v := range poly {
		verts[i] = v2.Vec{X: v.X, Y: v.Y}
	}
	s2, err := sdf.Polygon2D(verts)
	if err != nil {
		return nil, &paramak.KernelError{Op: "polygon", Err: err}
	}
	return s2, nil
}

func (k *Kernel) Revolve(p paramak.Profile, angle float64) (kernel.Solid, error) {
	s2, err := k.polygon(p)
	if err != nil {
		return nil, err
	}
	m, err := kernel.MeasureRevolve(p, angle, k.facets)
	if err != nil {
		return nil, err
	}
	var s3 sdf.SDF3
	if angle >= 360 {
		s3, err = sdf.Revolve3D(s2)
	} else {
		s3, err = sdf.RevolveTheta3D(s2, paramak.DtoR(angle))
	}
	if err != nil {
		return nil, &paramak.KernelError{Op: "revolve", Err: err}
	}
	return &solid{s: s3, measure: &m}, nil
}

func (k *Kernel) Extrude(p paramak.Profile, distance float64) (kernel.Solid, error) {
	s2, err := k.polygon(p)
	if err != nil {
		return nil, err
	}
	m, err := kernel.MeasureExtrude(p, distance, k.facets)
	if err != nil {
		return nil, err
	}
	// sdfx extrudes the XY plane along Z. Turn the profile up into XZ.
	s3 := sdf.Transform3D(sdf.Extrude3D(s2, distance), sdf.RotateX(math.Pi/2))
	return &solid{s: s3, measure: &m}, nil
}

// Sweep extrudes the profile along every path segment and unions the pieces.
// Profile coordinates are offsets from the path in the plane perpendicular
// to each segment. Joints between segments are not blended.
func (k *Kernel) Sweep(p paramak.Profile, path []r3.Vec) (kernel.Solid, error) {
	if len(path) < 2 {
		return nil, paramak.Paramf("", "path", "sweep needs at least 2 path points, got %d", len(path))
	}
	s2, err := k.polygon(p)
	if err != nil {
		return nil, err
	}
	pieces := make([]sdf.SDF3, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		d := r3.Sub(b, a)
		l := r3.Norm(d)
		if l < 1e-9 {
			return nil, fmt.Errorf("coincident sweep path points at %v: %w", b, paramak.ErrDegenerateGeometry)
		}
		d = r3.Scale(1/l, d)
		polar := math.Acos(math.Max(-1, math.Min(1, d.Z)))
		azimuth := math.Atan2(d.Y, d.X)
		mid := r3.Scale(0.5, r3.Add(a, b))
		m := sdf.Translate3d(v3.Vec{X: mid.X, Y: mid.Y, Z: mid.Z}).Mul(sdf.RotateZ(azimuth)).Mul(sdf.RotateY(polar))
		pieces = append(pieces, sdf.Transform3D(sdf.Extrude3D(s2, l), m))
	}
	sol := &solid{s: sdf.Union3D(pieces...)}
	if len(path) == 2 {
		m, err := kernel.MeasureExtrude(p, r3.Norm(r3.Sub(path[1], path[0])), k.facets)
		if err != nil {
			return nil, err
		}
		sol.measure = &m
	}
	return sol, nil
}

func (k *Kernel) Boolean(op kernel.Op, a, b kernel.Solid) (kernel.Solid, error) {
	sa, err := unwrap(a)
	if err != nil {
		return nil, &paramak.KernelError{Op: op.String(), Err: err}
	}
	sb, err := unwrap(b)
	if err != nil {
		return nil, &paramak.KernelError{Op: op.String(), Err: err}
	}
	var s3 sdf.SDF3
	switch op {
	case kernel.Union:
		s3 = sdf.Union3D(sa.s, sb.s)
	case kernel.Cut:
		s3 = sdf.Difference3D(sa.s, sb.s)
	case kernel.Intersect:
		s3 = sdf.Intersect3D(sa.s, sb.s)
	default:
		return nil, paramak.Paramf("", "boolean", "unknown operation %v", op)
	}
	return &solid{s: s3}, nil
}

func (k *Kernel) RotateZ(s kernel.Solid, angle float64) (kernel.Solid, error) {
	sd, err := unwrap(s)
	if err != nil {
		return nil, &paramak.KernelError{Op: "rotate", Err: err}
	}
	return &solid{
		s:       sdf.Transform3D(sd.s, sdf.RotateZ(paramak.DtoR(angle))),
		measure: sd.measure,
	}, nil
}

func (k *Kernel) Volume(s kernel.Solid) (float64, error) {
	sd, err := unwrap(s)
	if err != nil {
		return 0, &paramak.KernelError{Op: "volume", Err: err}
	}
	if sd.measure != nil {
		return sd.measure.Volume, nil
	}
	return sampleVolume(sd.s, k.cells), nil
}

func (k *Kernel) SurfaceAreas(s kernel.Solid) ([]float64, error) {
	sd, err := unwrap(s)
	if err != nil {
		return nil, &paramak.KernelError{Op: "surface areas", Err: err}
	}
	if sd.measure != nil {
		return append([]float64(nil), sd.measure.Areas...), nil
	}
	tris, err := k.mesh(sd)
	if err != nil {
		return nil, err
	}
	var area float64
	for _, t := range tris {
		area += r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))) / 2
	}
	return []float64{area}, nil
}

// mesh tessellates s with uniform marching cubes.
func (k *Kernel) mesh(sd *solid) ([]r3.Triangle, error) {
	tris := render.ToTriangles(sd.s, render.NewMarchingCubesUniform(k.meshCells))
	if len(tris) == 0 {
		return nil, &paramak.KernelError{Op: "mesh", Err: fmt.Errorf("empty mesh")}
	}
	out := make([]r3.Triangle, 0, len(tris))
	for _, tri := range tris {
		var t r3.Triangle
		for j := range t {
			t[j] = r3.Vec{X: tri[j].X, Y: tri[j].Y, Z: tri[j].Z}
		}
		// marching cubes emits zero area slivers where the surface crosses
		// a grid vertex.
		if r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))) > 0 {
			out = append(out, t)
		}
	}
	return out, nil
}

// sampleVolume integrates the inside of s over a cylindrical grid about the
// Z axis covering its bounding box. Solids of revolution are sampled
// exactly in the angular direction.
func sampleVolume(s sdf.SDF3, cells int) float64 {
	bb := s.BoundingBox()
	rmax := 0.0
	for _, x := range []float64{bb.Min.X, bb.Max.X} {
		for _, y := range []float64{bb.Min.Y, bb.Max.Y} {
			rmax = math.Max(rmax, math.Hypot(x, y))
		}
	}
	nr, nz, nphi := cells, cells, 4*cells
	dr := rmax / float64(nr)
	dz := (bb.Max.Z - bb.Min.Z) / float64(nz)
	dphi := 2 * math.Pi / float64(nphi)
	if dr == 0 || dz == 0 {
		return 0
	}
	var v float64
	for i := 0; i < nr; i++ {
		r := (float64(i) + 0.5) * dr
		for j := 0; j < nphi; j++ {
			phi := (float64(j) + 0.5) * dphi
			x, y := r*math.Cos(phi), r*math.Sin(phi)
			for l := 0; l < nz; l++ {
				z := bb.Min.Z + (float64(l)+0.5)*dz
				if s.Evaluate(v3.Vec{X: x, Y: y, Z: z}) <= 0 {
					v += r
				}
			}
		}
	}
	return v * dr * dphi * dz
}
