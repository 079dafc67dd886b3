package must2_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/soypat/paramak"
	"github.com/soypat/paramak/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCenterColumnCylinder(t *testing.T) {
	got := must2.CenterColumnCylinder{InnerRadius: 100, OuterRadius: 150, Height: 400}.Profile()
	want := paramak.Profile{
		paramak.Pt(100, 0, paramak.Straight),
		paramak.Pt(100, 200, paramak.Straight),
		paramak.Pt(150, 200, paramak.Straight),
		paramak.Pt(150, -200, paramak.Straight),
		paramak.Pt(100, -200, paramak.Straight),
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("cylinder profile mismatch (-want +got):\n%s", diff)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("cylinder profile does not close into a simple polygon: %v", err)
	}
}

func TestShieldRadiusOrdering(t *testing.T) {
	for _, s := range []must2.Shield{
		must2.CenterColumnHyperbola{InnerRadius: 50, MidRadius: 30, OuterRadius: 100, Height: 400},
		must2.CenterColumnCircular{InnerRadius: 50, MidRadius: 30, OuterRadius: 100, Height: 400},
		must2.CenterColumnFlatTopHyperbola{InnerRadius: 50, MidRadius: 30, OuterRadius: 100, Height: 400, ArcHeight: 200},
		must2.CenterColumnFlatTopCircular{InnerRadius: 50, MidRadius: 30, OuterRadius: 100, Height: 400, ArcHeight: 200},
		must2.CenterColumnHyperbola{InnerRadius: 50, MidRadius: 120, OuterRadius: 100, Height: 400},
		must2.CenterColumnCylinder{InnerRadius: 150, OuterRadius: 100, Height: 400},
		must2.CenterColumnCylinder{InnerRadius: 100, OuterRadius: 100, Height: 400},
		must2.CenterColumnFlatTopHyperbola{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400, ArcHeight: 500},
	} {
		err := s.Validate()
		if !errors.Is(err, paramak.ErrInvalidParameter) {
			t.Errorf("%T %+v: want ErrInvalidParameter, got %v", s, s, err)
		}
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%T: Profile did not panic on invalid parameters", s)
				}
			}()
			s.Profile()
		}()
	}
}

func TestShieldProfiles(t *testing.T) {
	plasma := must2.Plasma{MajorRadius: 450, MinorRadius: 150, Elongation: 2, Triangularity: 0.55}
	for _, test := range []struct {
		shield must2.Shield
		npts   int
		conns  string
	}{
		{must2.CenterColumnCylinder{InnerRadius: 50, OuterRadius: 100, Height: 400}, 5, "sssss"},
		{must2.CenterColumnHyperbola{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400}, 6, "ssccss"},
		{must2.CenterColumnFlatTopHyperbola{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400, ArcHeight: 200}, 8, "sssccsss"},
		{must2.CenterColumnCircular{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400}, 6, "ssCCss"},
		{must2.CenterColumnFlatTopCircular{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400, ArcHeight: 200}, 8, "sssCCsss"},
		{must2.CenterColumnPlasmaHyperbola{InnerRadius: 50, Height: 800, MidOffset: 40, EdgeOffset: 30, Plasma: plasma}, 8, "sssccsss"},
	} {
		p := test.shield.Profile()
		if len(p) != test.npts {
			t.Errorf("%T: got %d points. want %d", test.shield, len(p), test.npts)
			continue
		}
		if got := connString(p); got != test.conns {
			t.Errorf("%T: got connections %q. want %q", test.shield, got, test.conns)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%T: %v", test.shield, err)
		}
	}
}

// connString encodes straight as s, spline as c and circle as C.
func connString(p paramak.Profile) string {
	b := make([]byte, len(p))
	for i, pt := range p {
		switch pt.Conn {
		case paramak.Straight:
			b[i] = 's'
		case paramak.Spline:
			b[i] = 'c'
		case paramak.Circle:
			b[i] = 'C'
		}
	}
	return string(b)
}

func TestPoloidalFieldCoil(t *testing.T) {
	got := must2.PoloidalFieldCoil{Center: r2.Vec{X: 500, Y: 100}, Width: 20, Height: 40}.Profile()
	want := paramak.Profile{
		paramak.Pt(510, 120, paramak.Straight), // upper right
		paramak.Pt(510, 80, paramak.Straight),  // lower right
		paramak.Pt(490, 80, paramak.Straight),  // lower left
		paramak.Pt(490, 120, paramak.Straight), // upper left
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("coil profile mismatch (-want +got):\n%s", diff)
	}
	caseProfile := must2.PoloidalFieldCoilCase{Coil: must2.PoloidalFieldCoil{Center: r2.Vec{X: 500, Y: 100}, Width: 20, Height: 40}, Thickness: 5}.Profile()
	if b := caseProfile.Bounds(); b.Min.X != 485 || b.Max.Y != 125 {
		t.Errorf("coil case bounds: got %+v", b)
	}
}

func TestBlanketArcH(t *testing.T) {
	b := must2.BlanketArcH{
		InnerLower: r2.Vec{X: 300, Y: -200},
		InnerMid:   r2.Vec{X: 500, Y: 0},
		InnerUpper: r2.Vec{X: 300, Y: 200},
		Thickness:  20,
	}
	want := paramak.Profile{
		paramak.Pt(300, 200, paramak.Circle),
		paramak.Pt(500, 0, paramak.Circle),
		paramak.Pt(300, -200, paramak.Straight),
		paramak.Pt(320, -200, paramak.Circle),
		paramak.Pt(520, 0, paramak.Circle),
		paramak.Pt(320, 200, paramak.Straight),
	}
	if diff := cmp.Diff(want, b.Profile(), approx); diff != "" {
		t.Errorf("blanket profile mismatch (-want +got):\n%s", diff)
	}
}

func TestITERDivertor(t *testing.T) {
	d := must2.DefaultITERDivertor()
	p := d.Profile()
	if len(p) != 15 {
		t.Fatalf("got %d points. want 4 inner + 3 dome + 4 outer + 4 casing", len(p))
	}
	if got, want := connString(p), "CCss"+"CCs"+"sCCs"+"ssss"; got != want {
		t.Errorf("connections: got %q. want %q", got, want)
	}
	inner := d.InnerTarget()
	outer := d.OuterTarget()
	c, f := inner[3].Vec, outer[0].Vec
	var want paramak.Profile
	want = append(want, inner...)
	want = append(want, d.DomePoints(c, f)...)
	want = append(want, outer...)
	want = append(want, d.CasingPoints(c, f)...)
	if diff := cmp.Diff(want, p, approx); diff != "" {
		t.Errorf("concatenation order mismatch (-want +got):\n%s", diff)
	}

	anchor0, anchor1 := d.Anchors[0], d.Anchors[1]
	if p[2].Vec != anchor0 || p[8].Vec != anchor1 {
		t.Errorf("anchors not at positions 2 and 8: %v %v", p[2], p[8])
	}
	if got := paramak.Distance(p[0].Vec, anchor0); math.Abs(got-50*math.Sqrt2) > 1e-9 {
		t.Errorf("inner arc end distance to anchor: got %g. want %g", got, 50*math.Sqrt2)
	}
	if got := paramak.Distance(p[3].Vec, anchor0); math.Abs(got-78) > 1e-9 {
		t.Errorf("inner leg length: got %g. want 78", got)
	}
	// untilted outer leg hangs straight down.
	if diff := cmp.Diff(r2.Vec{X: 561, Y: -454}, p[7].Vec, approx); diff != "" {
		t.Errorf("outer leg end mismatch:\n%s", diff)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("divertor outline: %v", err)
	}

	d.Dome = false
	p = d.Profile()
	if len(inner) != 4 || len(outer) != 4 || len(d.CasingPoints(c, f)) != 4 {
		t.Errorf("sub-profile sizes: inner %d, outer %d, casing %d. want 4 each", len(inner), len(outer), len(d.CasingPoints(c, f)))
	}
	if len(p) != 12 {
		t.Fatalf("without dome: got %d points. want 4 inner + 4 outer + 4 casing", len(p))
	}
	want = append(append(append(paramak.Profile{}, inner...), outer...), d.CasingPoints(c, f)...)
	if diff := cmp.Diff(want, p, approx); diff != "" {
		t.Errorf("no dome concatenation mismatch (-want +got):\n%s", diff)
	}
}

func TestITERDivertorValidate(t *testing.T) {
	for _, mutate := range []func(d *must2.ITERDivertor){
		func(d *must2.ITERDivertor) { d.Radii[0] = 0 },
		func(d *must2.ITERDivertor) { d.Lengths[1] = -1 },
		func(d *must2.ITERDivertor) { d.Coverages[0] = 360 },
		func(d *must2.ITERDivertor) { d.DomePos = 1.5 },
		func(d *must2.ITERDivertor) { d.Anchors[1] = d.Anchors[0] },
		func(d *must2.ITERDivertor) { d.DomeThickness = math.NaN() },
	} {
		d := must2.DefaultITERDivertor()
		mutate(&d)
		if err := d.Validate(); !errors.Is(err, paramak.ErrInvalidParameter) {
			t.Errorf("%+v: want ErrInvalidParameter, got %v", d, err)
		}
	}
}

func TestPlasma(t *testing.T) {
	p := must2.Plasma{MajorRadius: 450, MinorRadius: 150, Elongation: 2, Triangularity: 0.55}
	if diff := cmp.Diff(r2.Vec{X: 300, Y: 0}, p.InnerEquatorialPoint(), approx); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(r2.Vec{X: 600, Y: 0}, p.At(0), approx); diff != "" {
		t.Errorf("outer equatorial point mismatch: %s", diff)
	}
	hi := p.HighPoint()
	if math.Abs(hi.Y-300) > 1e-9 || hi.X >= 450 {
		t.Errorf("high point: got %v", hi)
	}
	n := p.Normal(0)
	if diff := cmp.Diff(r2.Vec{X: 1}, n, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("normal at outer equator: %s", diff)
	}
	prof := p.Profile()
	if len(prof) != must2.DefaultPlasmaPoints {
		t.Errorf("got %d plasma points. want %d", len(prof), must2.DefaultPlasmaPoints)
	}
	if err := prof.Validate(); err != nil {
		t.Error(err)
	}
	if err := (must2.Plasma{MajorRadius: 100, MinorRadius: 150, Elongation: 2}).Validate(); !errors.Is(err, paramak.ErrInvalidParameter) {
		t.Errorf("minor radius above major radius: got %v", err)
	}
}

func TestBlanketFP(t *testing.T) {
	plasma := must2.Plasma{MajorRadius: 330, MinorRadius: 150, Elongation: 2.3, Triangularity: 0.45}
	for _, angles := range [][2]float64{{90, -90}, {90, 270}} {
		b := must2.BlanketFP{Plasma: plasma, Offset: 30, Thickness: 30, StartAngle: angles[0], StopAngle: angles[1], NumPoints: 20}
		p := b.Profile()
		if len(p) != 40 {
			t.Fatalf("got %d points. want 40", len(p))
		}
		edges, err := p.Edges()
		if err != nil {
			t.Fatal(err)
		}
		if len(edges) != 4 {
			t.Errorf("%v: got %d edges. want inner spline, join, outer spline, join", angles, len(edges))
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%v: %v", angles, err)
		}
		// first point sits at the offset above the plasma top.
		top := plasma.HighPoint()
		if got := paramak.Distance(p[0].Vec, top); math.Abs(got-30) > 1e-9 {
			t.Errorf("inner face offset at start: got %g. want 30", got)
		}
	}
	bad := must2.BlanketFP{Plasma: plasma, Offset: 30, Thickness: 0, StartAngle: 90, StopAngle: -90}
	if err := bad.Validate(); !errors.Is(err, paramak.ErrInvalidParameter) {
		t.Errorf("zero thickness: got %v", err)
	}
}

func TestInboardFirstwall(t *testing.T) {
	plasma := must2.Plasma{MajorRadius: 450, MinorRadius: 150, Elongation: 2, Triangularity: 0.55}
	for _, shield := range []must2.Shield{
		must2.CenterColumnCylinder{InnerRadius: 50, OuterRadius: 100, Height: 400},
		must2.CenterColumnHyperbola{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400},
		must2.CenterColumnFlatTopHyperbola{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400, ArcHeight: 200},
		must2.CenterColumnCircular{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400},
		must2.CenterColumnFlatTopCircular{InnerRadius: 50, MidRadius: 80, OuterRadius: 100, Height: 400, ArcHeight: 200},
		must2.CenterColumnPlasmaHyperbola{InnerRadius: 50, Height: 800, MidOffset: 40, EdgeOffset: 30, Plasma: plasma},
	} {
		fw := must2.InboardFirstwall{Shield: shield, Thickness: 10}
		got := fw.Profile()
		src := shield.Profile()
		if len(got) != len(src) {
			t.Fatalf("%T: firstwall has %d points, shield %d", shield, len(got), len(src))
		}
		if got.MinX() != src.MinX() {
			t.Errorf("%T: inner radius changed from %g to %g", shield, src.MinX(), got.MinX())
		}
		if diff := got.MaxX() - src.MaxX(); math.Abs(diff-10) > 1e-9 {
			t.Errorf("%T: outer radius grew by %g. want 10", shield, diff)
		}
		for i := range got {
			if got[i].Conn != src[i].Conn {
				t.Errorf("%T: connection %d changed", shield, i)
			}
		}
	}
	_, err := fwProfile(must2.InboardFirstwall{Thickness: 10})
	if !errors.Is(err, paramak.ErrInvalidParameter) {
		t.Errorf("missing shield: got %v", err)
	}
}

func fwProfile(f must2.InboardFirstwall) (p paramak.Profile, err error) {
	if err = f.Validate(); err != nil {
		return nil, err
	}
	return f.Profile(), nil
}

func TestToroidalFieldCoilCoatHanger(t *testing.T) {
	c := must2.ToroidalFieldCoilCoatHanger{
		HorizontalStart:  r2.Vec{X: 10, Y: 455},
		HorizontalLength: 442,
		VerticalMid:      r2.Vec{X: 610, Y: 0},
		VerticalLength:   682,
		Thickness:        30,
	}
	p := c.Profile()
	if len(p) != 12 {
		t.Errorf("got %d points. want 12", len(p))
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}
	c.VerticalMid.X = 100
	if err := c.Validate(); !errors.Is(err, paramak.ErrInvalidParameter) {
		t.Errorf("vertical leg inside horizontal run: got %v", err)
	}
}

func TestProfileBuilderRel(t *testing.T) {
	b := must2.NewProfile()
	b.Add(10, 0)
	b.Add(5, 0).Rel()
	b.Add(0, 5).Rel().Circle()
	b.Add(-5, 5).Rel().Circle()
	b.Add(10, 20)
	got := b.Profile()
	want := paramak.Profile{
		paramak.Pt(10, 0, paramak.Straight),
		paramak.Pt(15, 0, paramak.Straight),
		paramak.Pt(15, 5, paramak.Circle),
		paramak.Pt(10, 10, paramak.Circle),
		paramak.Pt(10, 20, paramak.Straight),
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("relative builder mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileBuilderReverse(t *testing.T) {
	b := must2.NewProfile()
	b.Reverse()
	b.Add(0, 0)
	b.Add(5, 0).Rel().Circle()
	b.Add(10, 5).Circle()
	b.Add(0, 10)
	want := paramak.Profile{
		paramak.Pt(0, 10, paramak.Straight),
		paramak.Pt(10, 5, paramak.Circle),
		paramak.Pt(5, 0, paramak.Circle),
		paramak.Pt(0, 0, paramak.Straight),
	}
	if diff := cmp.Diff(want, b.Profile(), approx); diff != "" {
		t.Errorf("reversed builder mismatch (-want +got):\n%s", diff)
	}
}
