package must2

import (
	"github.com/soypat/paramak"
	"gonum.org/v1/gonum/spatial/r2"
)

// Profile building code.

// ProfileBuilder stores a list of connection tagged profile vertices.
type ProfileBuilder struct {
	reverse bool            // return the vertices in reverse order
	vlist   []profileVertex // list of profile vertices
}

// profileVertex is a profile vertex.
type profileVertex struct {
	relative bool // vertex position is relative to previous vertex
	conn     paramak.Connection
	vertex   r2.Vec
}

// Operations on Profile Vertices

// Rel positions the profile vertex relative to the prior vertex.
func (v *profileVertex) Rel() *profileVertex {
	v.relative = true
	return v
}

// Circle marks the vertex as part of a three point arc.
func (v *profileVertex) Circle() *profileVertex {
	v.conn = paramak.Circle
	return v
}

// Spline marks the vertex as part of a spline run.
func (v *profileVertex) Spline() *profileVertex {
	v.conn = paramak.Spline
	return v
}

// Conn sets the connection of the vertex to the next one.
func (v *profileVertex) Conn(c paramak.Connection) *profileVertex {
	v.conn = c
	return v
}

// prevVertex returns the previous vertex in the profile.
func (p *ProfileBuilder) prevVertex(i int) *profileVertex {
	if i == 0 {
		return &p.vlist[len(p.vlist)-1]
	}
	return &p.vlist[i-1]
}

// relToAbs converts relative vertices to absolute vertices.
func (p *ProfileBuilder) relToAbs() {
	for i := range p.vlist {
		v := &p.vlist[i]
		if v.relative {
			pv := p.prevVertex(i)
			if pv.relative {
				panic("relative vertex needs an absolute reference")
			}
			v.vertex = r2.Add(v.vertex, pv.vertex)
			v.relative = false
		}
	}
}

// Public API for profiles

// NewProfile returns an empty profile builder.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{}
}

// Reverse reverses the order the vertices are returned.
func (p *ProfileBuilder) Reverse() {
	p.reverse = true
}

// AddV2 adds a straight connected vertex to the profile.
func (p *ProfileBuilder) AddV2(x r2.Vec) *profileVertex {
	p.vlist = append(p.vlist, profileVertex{vertex: x, conn: paramak.Straight})
	return &p.vlist[len(p.vlist)-1]
}

// AddPoints appends already tagged points to the profile.
func (p *ProfileBuilder) AddPoints(pts ...paramak.Point) {
	for _, pt := range pts {
		p.AddV2(pt.Vec).Conn(pt.Conn)
	}
}

// Add an x,z vertex to a profile.
func (p *ProfileBuilder) Add(x, z float64) *profileVertex {
	return p.AddV2(r2.Vec{X: x, Y: z})
}

// Len returns the number of vertices added so far.
func (p *ProfileBuilder) Len() int { return len(p.vlist) }

// Profile returns the connection tagged vertices of the profile.
func (p *ProfileBuilder) Profile() paramak.Profile {
	if p.vlist == nil {
		panic("nil vertex list. was ProfileBuilder initialized?")
	}
	p.relToAbs()
	n := len(p.vlist)
	prof := make(paramak.Profile, n)
	for i, pv := range p.vlist {
		j := i
		if p.reverse {
			j = n - 1 - i
		}
		prof[j] = paramak.Point{Vec: pv.vertex, Conn: pv.conn}
	}
	return prof
}
