package paramak

import (
	"fmt"

	"github.com/soypat/paramak/internal/d2"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultFacets is the number of line segments used to discretize one arc or
// one spline edge.
const DefaultFacets = 32

// Edge is one face-generating edge of a profile outline. Points includes both
// end points: two for straight edges, three for arcs and the whole run plus
// the closing point for splines.
type Edge struct {
	Conn   Connection
	Points []r2.Vec
}

// Edges splits the closed profile into edges by grouping runs of equally
// tagged points. Each straight point yields a segment, each pair of circle
// points yields a three point arc and each spline run yields one spline.
func (p Profile) Edges() ([]Edge, error) {
	n := len(p)
	if n < 3 {
		return nil, fmt.Errorf("profile with %d points: %w", n, ErrDegenerateGeometry)
	}
	// Start at a point that begins a run so that no run wraps past index 0.
	start := -1
	for i := 0; i < n; i++ {
		if p[i].Conn != p[(i+n-1)%n].Conn || p[i].Conn == Straight {
			start = i
			break
		}
	}
	if start < 0 {
		// Every point carries the same curved tag.
		if p[0].Conn == Spline {
			pts := append(p.Vertices(), p[0].Vec)
			return []Edge{{Conn: Spline, Points: pts}}, nil
		}
		start = 0
	}
	at := func(i int) Point { return p[(start+i)%n] }
	var edges []Edge
	for i := 0; i < n; {
		pt := at(i)
		run := 1
		for pt.Conn != Straight && i+run < n && at(i+run).Conn == pt.Conn {
			run++
		}
		switch pt.Conn {
		case Straight:
			edges = append(edges, Edge{Conn: Straight, Points: []r2.Vec{pt.Vec, at(i + 1).Vec}})
		case Circle:
			if run%2 != 0 {
				return nil, fmt.Errorf("circle run of %d points starting at %v must hold an even number of points: %w", run, pt.Vec, ErrDegenerateGeometry)
			}
			for k := 0; k < run; k += 2 {
				edges = append(edges, Edge{Conn: Circle, Points: []r2.Vec{at(i + k).Vec, at(i + k + 1).Vec, at(i + k + 2).Vec}})
			}
		case Spline:
			pts := make([]r2.Vec, 0, run+1)
			for k := 0; k <= run; k++ {
				pts = append(pts, at(i+k).Vec)
			}
			edges = append(edges, Edge{Conn: Spline, Points: pts})
		default:
			return nil, Paramf("", "connection", "unknown connection %v at %v", pt.Conn, pt.Vec)
		}
		i += run
	}
	return edges, nil
}

// Discretize returns the edge as a polyline of facets segments, excluding the
// final point.
func (e Edge) Discretize(facets int) ([]r2.Vec, error) {
	switch e.Conn {
	case Straight:
		return e.Points[:1], nil
	case Circle:
		arc, ok := d2.Arc(e.Points[0], e.Points[1], e.Points[2], facets)
		if !ok {
			return nil, fmt.Errorf("arc through %v, %v, %v is collinear: %w", e.Points[0], e.Points[1], e.Points[2], ErrDegenerateGeometry)
		}
		return arc, nil
	case Spline:
		return discretizeSpline(e.Points, facets)
	}
	return nil, Paramf("", "connection", "unknown connection %v", e.Conn)
}

// discretizeSpline interpolates x and z over the cumulative chord length of
// pts with Akima splines.
func discretizeSpline(pts []r2.Vec, facets int) ([]r2.Vec, error) {
	if len(pts) < 3 {
		return pts[:1], nil
	}
	ts := make([]float64, len(pts))
	xs := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, v := range pts {
		if i > 0 {
			d := Distance(pts[i-1], v)
			if d < tolerance {
				return nil, fmt.Errorf("coincident spline points at %v: %w", v, ErrDegenerateGeometry)
			}
			ts[i] = ts[i-1] + d
		}
		xs[i], zs[i] = v.X, v.Y
	}
	var sx, sz interp.AkimaSpline
	if err := sx.Fit(ts, xs); err != nil {
		return nil, err
	}
	if err := sz.Fit(ts, zs); err != nil {
		return nil, err
	}
	segs := facets * (len(pts) - 1)
	out := make([]r2.Vec, segs)
	total := ts[len(ts)-1]
	out[0] = pts[0]
	for i := 1; i < segs; i++ {
		t := total * float64(i) / float64(segs)
		out[i] = r2.Vec{X: sx.Predict(t), Y: sz.Predict(t)}
	}
	return out, nil
}

// Polyline returns the closed outline of the profile with every arc and spline
// replaced by facets line segments. The first point is not repeated at the end.
func (p Profile) Polyline(facets int) ([]r2.Vec, error) {
	edges, err := p.Edges()
	if err != nil {
		return nil, err
	}
	var out []r2.Vec
	for _, e := range edges {
		seg, err := e.Discretize(facets)
		if err != nil {
			return nil, err
		}
		out = append(out, seg...)
	}
	return out, nil
}

// Validate checks that the profile closes into a simple polygon once its
// connection edges are applied.
func (p Profile) Validate() error {
	if len(p) < 3 {
		return fmt.Errorf("profile needs at least 3 points, got %d: %w", len(p), ErrDegenerateGeometry)
	}
	for i := range p {
		j := (i + 1) % len(p)
		if d2.EqualWithin(p[i].Vec, p[j].Vec, tolerance) {
			return fmt.Errorf("coincident profile points %d and %d at %v: %w", i, j, p[i].Vec, ErrDegenerateGeometry)
		}
	}
	poly, err := p.Polyline(DefaultFacets)
	if err != nil {
		return err
	}
	if i, j, ok := d2.SelfIntersection(poly); ok {
		return fmt.Errorf("profile outline intersects itself near %v and %v: %w", poly[i], poly[j], ErrDegenerateGeometry)
	}
	return nil
}

// Area returns the unsigned area enclosed by the discretized profile.
func (p Profile) Area(facets int) (float64, error) {
	poly, err := p.Polyline(facets)
	if err != nil {
		return 0, err
	}
	a := d2.SignedArea(poly)
	if a < 0 {
		a = -a
	}
	return a, nil
}
