// Package kernel defines the geometry kernel contract used to turn component
// profiles into solids. Backends (see kernel/sdfx) provide revolve, extrude
// and sweep construction, boolean operations and volume queries behind the
// Kernel interface so that the assembly composer never depends on a
// particular solid modelling library.
package kernel

import (
	"strings"

	"github.com/soypat/paramak"
	"gonum.org/v1/gonum/spatial/r3"
)

// Op is a boolean operation between two solids.
type Op int

const (
	Union Op = iota
	Cut
	Intersect
)

func (op Op) String() string {
	switch op {
	case Union:
		return "union"
	case Cut:
		return "cut"
	case Intersect:
		return "intersect"
	}
	return "Op(?)"
}

// ParseOp parses "union", "cut" or "intersect".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(s) {
	case "union":
		return Union, nil
	case "cut":
		return Cut, nil
	case "intersect":
		return Intersect, nil
	}
	return 0, paramak.Paramf("", "boolean", "unknown operation %q", s)
}

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// Bounds returns the axis aligned bounding box of the solid.
	Bounds() r3.Box
}

// Kernel builds and queries solids. Profiles live in the XZ plane with the
// profile x coordinate as the radius and y as the vertical z coordinate.
// Angles are in degrees. Calls are synchronous and failures are returned
// unchanged to the caller.
type Kernel interface {
	// Revolve sweeps the profile about the Z axis by angle degrees starting
	// at the XZ half plane and turning counter-clockwise.
	Revolve(profile paramak.Profile, angle float64) (Solid, error)
	// Extrude extrudes the profile along Y by distance, centred on the XZ plane.
	Extrude(profile paramak.Profile, distance float64) (Solid, error)
	// Sweep moves the profile along the path. Profile coordinates are
	// offsets from the path in the plane perpendicular to each segment.
	Sweep(profile paramak.Profile, path []r3.Vec) (Solid, error)
	// Boolean returns a op b.
	Boolean(op Op, a, b Solid) (Solid, error)
	// RotateZ returns a copy of s rotated about the Z axis by angle degrees.
	RotateZ(s Solid, angle float64) (Solid, error)
	// Volume returns the volume enclosed by s.
	Volume(s Solid) (float64, error)
	// SurfaceAreas returns the area of every face of s. Backends that cannot
	// separate faces return a single total area.
	SurfaceAreas(s Solid) ([]float64, error)
}
