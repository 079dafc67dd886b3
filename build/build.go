// Package build computes radial and vertical builds: the ordered spans that
// reactor components occupy along one axis.
//
// A build is produced by walking an ordered list of entries with a cursor
// (Sequence). Components that are not stacked, such as a divertor centred on
// the plasma high point, are then added as fixed width bands centred on an
// already computed coordinate (Build.Band). Every interval can be queried by
// name before any solid exists.
package build

import (
	"fmt"
	"math"

	"github.com/soypat/paramak"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

// Entry is one step of a build sequence.
type Entry struct {
	Name      string
	Thickness float64
	// Gap marks empty space between components, such as the plasma gaps.
	Gap bool
}

// Layer returns a component entry.
func Layer(name string, thickness float64) Entry {
	return Entry{Name: name, Thickness: thickness}
}

// Space returns a gap entry.
func Space(name string, thickness float64) Entry {
	return Entry{Name: name, Thickness: thickness, Gap: true}
}

// Interval is the span [Start, End] of a named entry along the build axis.
type Interval struct {
	Name  string
	Start float64
	End   float64
	Gap   bool
	// Band is set for intervals placed with Build.Band instead of the cursor.
	Band bool
}

// Width returns End - Start.
func (iv Interval) Width() float64 { return iv.End - iv.Start }

// Mid returns the centre of the interval.
func (iv Interval) Mid() float64 { return (iv.Start + iv.End) / 2 }

func (iv Interval) String() string {
	return fmt.Sprintf("%s:[%g,%g]", iv.Name, iv.Start, iv.End)
}

// Build holds named intervals in the order they were computed.
type Build struct {
	origin    float64
	intervals []Interval
	index     map[string]int
}

// Sequence walks entries from origin, recording start = cursor and
// end = cursor + thickness for each entry before advancing the cursor.
// Zero thickness entries are allowed; negative or non finite ones fail
// with paramak.ErrInvalidParameter.
func Sequence(origin float64, entries ...Entry) (*Build, error) {
	if math.IsNaN(origin) || math.IsInf(origin, 0) {
		return nil, paramak.Paramf("build", "origin", "must be finite, got %g", origin)
	}
	b := &Build{origin: origin, index: make(map[string]int, len(entries))}
	cursor := origin
	for _, e := range entries {
		if math.IsNaN(e.Thickness) || math.IsInf(e.Thickness, 0) || e.Thickness < 0 {
			return nil, paramak.Paramf("build", e.Name, "thickness must be a non negative number, got %g", e.Thickness)
		}
		iv := Interval{Name: e.Name, Start: cursor, End: cursor + e.Thickness, Gap: e.Gap}
		if err := b.add(iv); err != nil {
			return nil, err
		}
		cursor = iv.End
	}
	return b, nil
}

// FromIntervals returns a build holding ivs as given. Use Validate to check
// the abutment invariants of intervals that did not come from Sequence.
func FromIntervals(origin float64, ivs ...Interval) (*Build, error) {
	b := &Build{origin: origin, index: make(map[string]int, len(ivs))}
	for _, iv := range ivs {
		if err := b.add(iv); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Build) add(iv Interval) error {
	if iv.Name == "" {
		return paramak.Paramf("build", "name", "empty interval name")
	}
	if _, dup := b.index[iv.Name]; dup {
		return paramak.Paramf("build", iv.Name, "duplicate interval name")
	}
	b.index[iv.Name] = len(b.intervals)
	b.intervals = append(b.intervals, iv)
	return nil
}

// Band adds an interval of the given width centred on center.
func (b *Build) Band(name string, center, width float64) (Interval, error) {
	if math.IsNaN(center) || math.IsInf(center, 0) {
		return Interval{}, paramak.Paramf("build", name, "band centre must be finite, got %g", center)
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return Interval{}, paramak.Paramf("build", name, "band width must be positive, got %g", width)
	}
	iv := Interval{Name: name, Start: center - width/2, End: center + width/2, Band: true}
	if err := b.add(iv); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Get returns the interval called name.
func (b *Build) Get(name string) (Interval, bool) {
	i, ok := b.index[name]
	if !ok {
		return Interval{}, false
	}
	return b.intervals[i], true
}

// Start returns the start of the named interval. It panics if the build has
// no such interval.
func (b *Build) Start(name string) float64 { return b.must(name).Start }

// End returns the end of the named interval. It panics if the build has no
// such interval.
func (b *Build) End(name string) float64 { return b.must(name).End }

func (b *Build) must(name string) Interval {
	iv, ok := b.Get(name)
	if !ok {
		panic("build: no interval " + name)
	}
	return iv
}

// Origin returns the cursor start of the sequence.
func (b *Build) Origin() float64 { return b.origin }

// Cursor returns the end of the last sequenced interval.
func (b *Build) Cursor() float64 {
	c := b.origin
	for _, iv := range b.intervals {
		if !iv.Band {
			c = iv.End
		}
	}
	return c
}

// Intervals returns a copy of all intervals in build order.
func (b *Build) Intervals() []Interval {
	return append([]Interval(nil), b.intervals...)
}

// Validate checks that consecutive sequenced intervals abut, that no interval
// is inverted and that no two non gap sequenced intervals overlap. Bands may
// overlap other intervals.
func (b *Build) Validate() error {
	var seq []Interval
	for _, iv := range b.intervals {
		if iv.End < iv.Start-tol {
			return paramak.Paramf("build", iv.Name, "interval ends at %g before it starts at %g", iv.End, iv.Start)
		}
		if !iv.Band {
			seq = append(seq, iv)
		}
	}
	if len(seq) > 0 && !scalar.EqualWithinAbsOrRel(seq[0].Start, b.origin, tol, tol) {
		return paramak.Paramf("build", seq[0].Name, "starts at %g, not at the origin %g", seq[0].Start, b.origin)
	}
	for i := 1; i < len(seq); i++ {
		prev, cur := seq[i-1], seq[i]
		if !scalar.EqualWithinAbsOrRel(prev.End, cur.Start, tol, tol) {
			return paramak.Paramf("build", cur.Name, "starts at %g but %s ends at %g", cur.Start, prev.Name, prev.End)
		}
	}
	for i := range seq {
		for j := i + 1; j < len(seq); j++ {
			a, c := seq[i], seq[j]
			if a.Gap || c.Gap || a.Width() <= tol || c.Width() <= tol {
				continue
			}
			if math.Min(a.End, c.End)-math.Max(a.Start, c.Start) > tol {
				return paramak.Paramf("build", c.Name, "overlaps %s", a.Name)
			}
		}
	}
	return nil
}
