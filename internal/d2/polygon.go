package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const epsilon = 1e-12

// Orient returns twice the signed area of the triangle abc. It is positive
// when a, b, c turn counter-clockwise.
func Orient(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// Circumcenter returns the centre of the circle through a, b and c.
// ok is false when the points are collinear.
func Circumcenter(a, b, c r2.Vec) (center r2.Vec, ok bool) {
	d := 2 * Orient(a, b, c)
	scale := math.Max(r2.Norm2(r2.Sub(b, a)), r2.Norm2(r2.Sub(c, a)))
	if math.Abs(d) <= epsilon*scale || scale == 0 {
		return r2.Vec{}, false
	}
	ab := r2.Sub(b, a)
	ac := r2.Sub(c, a)
	nb := r2.Norm2(ab)
	nc := r2.Norm2(ac)
	ux := (ac.Y*nb - ab.Y*nc) / d
	uy := (ab.X*nc - ac.X*nb) / d
	return r2.Vec{X: a.X + ux, Y: a.Y + uy}, true
}

// Arc returns facets points on the circular arc starting at a, passing
// through m and ending at b. The end point b is not included.
func Arc(a, m, b r2.Vec, facets int) (Set, bool) {
	c, ok := Circumcenter(a, m, b)
	if !ok {
		return nil, false
	}
	if facets < 2 {
		facets = 2
	}
	angle := func(p r2.Vec) float64 { return math.Atan2(p.Y-c.Y, p.X-c.X) }
	t0 := angle(a)
	sweep := angle(b) - t0
	if Orient(a, m, b) > 0 {
		// counter-clockwise
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
	} else {
		for sweep >= 0 {
			sweep -= 2 * math.Pi
		}
	}
	rv := r2.Sub(a, c)
	arc := make(Set, facets)
	for i := range arc {
		arc[i] = r2.Rotate(rv, sweep*float64(i)/float64(facets), r2.Vec{})
		arc[i] = r2.Add(arc[i], c)
	}
	arc[0] = a
	return arc, true
}

// SignedArea returns the area enclosed by the closed polygon v. It is
// positive for counter-clockwise winding.
func SignedArea(v Set) float64 {
	var a float64
	n := len(v)
	for i := range v {
		j := (i + 1) % n
		a += r2.Cross(v[i], v[j])
	}
	return a / 2
}

// Centroid returns the area centroid of the closed polygon v.
func Centroid(v Set) r2.Vec {
	var cx, cy, a float64
	n := len(v)
	for i := range v {
		j := (i + 1) % n
		cr := r2.Cross(v[i], v[j])
		a += cr
		cx += (v[i].X + v[j].X) * cr
		cy += (v[i].Y + v[j].Y) * cr
	}
	if a == 0 {
		return Mid(v.Min(), v.Max())
	}
	return r2.Vec{X: cx / (3 * a), Y: cy / (3 * a)}
}

// SegmentsIntersect reports whether the closed segments ab and cd share a point.
func SegmentsIntersect(a, b, c, d r2.Vec) bool {
	if !Overlap(r2.Vec{X: math.Min(a.X, b.X), Y: math.Max(a.X, b.X)}, r2.Vec{X: math.Min(c.X, d.X), Y: math.Max(c.X, d.X)}) ||
		!Overlap(r2.Vec{X: math.Min(a.Y, b.Y), Y: math.Max(a.Y, b.Y)}, r2.Vec{X: math.Min(c.Y, d.Y), Y: math.Max(c.Y, d.Y)}) {
		return false
	}
	scale := math.Max(r2.Norm(r2.Sub(b, a)), r2.Norm(r2.Sub(d, c)))
	tol := epsilon * scale * scale
	d1 := Orient(c, d, a)
	d2 := Orient(c, d, b)
	d3 := Orient(a, b, c)
	d4 := Orient(a, b, d)
	if ((d1 > tol && d2 < -tol) || (d1 < -tol && d2 > tol)) &&
		((d3 > tol && d4 < -tol) || (d3 < -tol && d4 > tol)) {
		return true
	}
	onSeg := func(p, q, r r2.Vec) bool {
		return math.Min(p.X, q.X)-epsilon <= r.X && r.X <= math.Max(p.X, q.X)+epsilon &&
			math.Min(p.Y, q.Y)-epsilon <= r.Y && r.Y <= math.Max(p.Y, q.Y)+epsilon
	}
	switch {
	case math.Abs(d1) <= tol && onSeg(c, d, a):
		return true
	case math.Abs(d2) <= tol && onSeg(c, d, b):
		return true
	case math.Abs(d3) <= tol && onSeg(a, b, c):
		return true
	case math.Abs(d4) <= tol && onSeg(a, b, d):
		return true
	}
	return false
}

// SelfIntersection returns the indices of the first pair of non-adjacent
// edges of the closed polygon v that intersect. ok is false if v is simple.
func SelfIntersection(v Set) (i, j int, ok bool) {
	n := len(v)
	for i = 0; i < n; i++ {
		a, b := v[i], v[(i+1)%n]
		for j = i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			if SegmentsIntersect(a, b, v[j], v[(j+1)%n]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
