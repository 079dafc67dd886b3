// Package paramak holds the geometric primitives and the connection-tagged
// profile type shared by the parametric reactor shape generators.
//
// Coordinates live in the poloidal (x, z) plane of the reactor. A profile
// stores z in the Y field of gonum's r2.Vec so that profiles can be handed to
// any r2 based geometry code unchanged.
package paramak

import (
	"fmt"
	"strings"

	"github.com/soypat/paramak/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Connection describes how a profile point joins the next point.
type Connection uint8

const (
	// Straight joins the point to the next one with a line segment.
	Straight Connection = iota
	// Circle marks a point of a three point arc. Circle points come in pairs:
	// the pair plus the point that follows defines one arc.
	Circle
	// Spline marks a run of points interpolated by a smooth curve ending at
	// the first point that follows the run.
	Spline
)

func (c Connection) String() string {
	switch c {
	case Straight:
		return "straight"
	case Circle:
		return "circle"
	case Spline:
		return "spline"
	}
	return fmt.Sprintf("Connection(%d)", uint8(c))
}

// ParseConnection parses the lower case name of a connection.
func ParseConnection(s string) (Connection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight":
		return Straight, nil
	case "circle":
		return Circle, nil
	case "spline":
		return Spline, nil
	}
	return 0, Paramf("", "connection", "unknown connection %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Connection) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Connection) UnmarshalText(b []byte) (err error) {
	*c, err = ParseConnection(string(b))
	return err
}

// Point is a profile vertex with the connection to its successor.
type Point struct {
	r2.Vec
	Conn Connection
}

// Pt is shorthand for a Point at (x, z).
func Pt(x, z float64, conn Connection) Point {
	return Point{Vec: r2.Vec{X: x, Y: z}, Conn: conn}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %s)", p.X, p.Y, p.Conn)
}

// Profile is the closed, ordered cross-section of a component. The last point
// connects back to the first.
type Profile []Point

// Vertices returns the profile points without connection information.
func (p Profile) Vertices() []r2.Vec {
	v := make([]r2.Vec, len(p))
	for i := range p {
		v[i] = p[i].Vec
	}
	return v
}

// Bounds returns the bounding box of the profile vertices. Arc bulges are
// not taken into account, see Polyline for that.
func (p Profile) Bounds() r2.Box {
	return d2.Set(p.Vertices()).Bounds()
}

// MaxX returns the largest x coordinate of the profile vertices.
func (p Profile) MaxX() float64 {
	return p.Bounds().Max.X
}

// MinX returns the smallest x coordinate of the profile vertices.
func (p Profile) MinX() float64 {
	return p.Bounds().Min.X
}

// Clone returns a copy of the profile.
func (p Profile) Clone() Profile {
	return append(Profile(nil), p...)
}

// Translate returns p shifted by v.
func (p Profile) Translate(v r2.Vec) Profile {
	t := p.Clone()
	for i := range t {
		t[i].Vec = r2.Add(t[i].Vec, v)
	}
	return t
}
