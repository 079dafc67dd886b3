package paramak_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/paramak"
)

// arcBlanket is the arc shaped blanket cross-section used throughout the
// kernel tests: two arcs joined by two short straight edges.
var arcBlanket = paramak.Profile{
	paramak.Pt(300, 200, paramak.Circle),
	paramak.Pt(500, 0, paramak.Circle),
	paramak.Pt(300, -200, paramak.Straight),
	paramak.Pt(320, -200, paramak.Circle),
	paramak.Pt(520, 0, paramak.Circle),
	paramak.Pt(320, 200, paramak.Straight),
}

func TestEdges(t *testing.T) {
	edges, err := arcBlanket.Edges()
	if err != nil {
		t.Fatal(err)
	}
	want := []paramak.Connection{paramak.Circle, paramak.Straight, paramak.Circle, paramak.Straight}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges. want %d", len(edges), len(want))
	}
	for i, e := range edges {
		if e.Conn != want[i] {
			t.Errorf("edge %d: got %v. want %v", i, e.Conn, want[i])
		}
	}
	// closing straight edge returns to the first point.
	last := edges[len(edges)-1]
	if last.Points[1] != arcBlanket[0].Vec {
		t.Errorf("profile not closed: last edge ends at %v", last.Points[1])
	}
}

func TestEdgesSplineRun(t *testing.T) {
	hyperbola := paramak.Profile{
		paramak.Pt(50, 0, paramak.Straight),
		paramak.Pt(50, 200, paramak.Straight),
		paramak.Pt(100, 200, paramak.Spline),
		paramak.Pt(80, 0, paramak.Spline),
		paramak.Pt(100, -200, paramak.Straight),
		paramak.Pt(50, -200, paramak.Straight),
	}
	edges, err := hyperbola.Edges()
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 5 {
		t.Fatalf("got %d edges. want 5", len(edges))
	}
	if edges[2].Conn != paramak.Spline || len(edges[2].Points) != 3 {
		t.Errorf("spline edge: got %v with %d points", edges[2].Conn, len(edges[2].Points))
	}
	if err := hyperbola.Validate(); err != nil {
		t.Error(err)
	}
}

func TestEdgesClosedSpline(t *testing.T) {
	var p paramak.Profile
	for i := 0; i < 12; i++ {
		a := 2 * math.Pi * float64(i) / 12
		p = append(p, paramak.Pt(500+100*math.Cos(a), 150*math.Sin(a), paramak.Spline))
	}
	edges, err := p.Edges()
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 || len(edges[0].Points) != 13 {
		t.Fatalf("want a single closed spline edge, got %d edges", len(edges))
	}
	area, err := p.Area(paramak.DefaultFacets)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pi * 100 * 150
	if math.Abs(area-want)/want > 0.02 {
		t.Errorf("closed spline area: got %g. want %g", area, want)
	}
}

func TestOddCircleRun(t *testing.T) {
	p := paramak.Profile{
		paramak.Pt(0, 0, paramak.Straight),
		paramak.Pt(10, 0, paramak.Circle),
		paramak.Pt(10, 10, paramak.Straight),
	}
	_, err := p.Edges()
	if !errors.Is(err, paramak.ErrDegenerateGeometry) {
		t.Errorf("want ErrDegenerateGeometry for odd circle run, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name    string
		profile paramak.Profile
		ok      bool
	}{
		{name: "arc blanket", profile: arcBlanket, ok: true},
		{name: "too few", profile: arcBlanket[:2]},
		{
			name: "bowtie",
			profile: paramak.Profile{
				paramak.Pt(0, 0, paramak.Straight),
				paramak.Pt(10, 10, paramak.Straight),
				paramak.Pt(10, 0, paramak.Straight),
				paramak.Pt(0, 10, paramak.Straight),
			},
		},
		{
			name: "coincident",
			profile: paramak.Profile{
				paramak.Pt(0, 0, paramak.Straight),
				paramak.Pt(10, 0, paramak.Straight),
				paramak.Pt(10, 0, paramak.Straight),
				paramak.Pt(0, 10, paramak.Straight),
			},
		},
		{
			name: "collinear arc",
			profile: paramak.Profile{
				paramak.Pt(0, 0, paramak.Circle),
				paramak.Pt(5, 0, paramak.Circle),
				paramak.Pt(10, 0, paramak.Straight),
				paramak.Pt(5, 10, paramak.Straight),
			},
		},
	} {
		err := test.profile.Validate()
		if test.ok && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
		if !test.ok && !errors.Is(err, paramak.ErrDegenerateGeometry) {
			t.Errorf("%s: want ErrDegenerateGeometry, got %v", test.name, err)
		}
	}
}

func TestPolylineArc(t *testing.T) {
	// half disc of radius 10 centred on the origin.
	p := paramak.Profile{
		paramak.Pt(0, 10, paramak.Circle),
		paramak.Pt(10, 0, paramak.Circle),
		paramak.Pt(0, -10, paramak.Straight),
	}
	poly, err := p.Polyline(64)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range poly[:64] {
		if r := math.Hypot(v.X, v.Y); math.Abs(r-10) > 1e-9 {
			t.Fatalf("arc point %v off circle, radius %g", v, r)
		}
	}
	area, _ := p.Area(256)
	if want := math.Pi * 100 / 2; math.Abs(area-want)/want > 1e-3 {
		t.Errorf("half disc area: got %g. want %g", area, want)
	}
}

func TestConnectionText(t *testing.T) {
	for _, c := range []paramak.Connection{paramak.Straight, paramak.Circle, paramak.Spline} {
		b, _ := c.MarshalText()
		var got paramak.Connection
		if err := got.UnmarshalText(b); err != nil || got != c {
			t.Errorf("connection %v text round trip: got %v, %v", c, got, err)
		}
	}
	if _, err := paramak.ParseConnection("bezier"); !errors.Is(err, paramak.ErrInvalidParameter) {
		t.Errorf("want ErrInvalidParameter, got %v", err)
	}
}
