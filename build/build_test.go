package build_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soypat/paramak"
	"github.com/soypat/paramak/build"
)

func TestSequence(t *testing.T) {
	b, err := build.Sequence(0, build.Layer("A", 10), build.Layer("B", 20), build.Layer("C", 5))
	if err != nil {
		t.Fatal(err)
	}
	want := []build.Interval{
		{Name: "A", Start: 0, End: 10},
		{Name: "B", Start: 10, End: 30},
		{Name: "C", Start: 30, End: 35},
	}
	if diff := cmp.Diff(want, b.Intervals()); diff != "" {
		t.Errorf("intervals mismatch (-want +got):\n%s", diff)
	}
	if err := b.Validate(); err != nil {
		t.Error(err)
	}
	if b.Cursor() != 35 {
		t.Errorf("cursor = %g, want 35", b.Cursor())
	}
}

func TestSequenceOrigin(t *testing.T) {
	b, err := build.Sequence(345, build.Space("outer_plasma_gap", 30), build.Layer("firstwall", 30), build.Layer("blanket", 20))
	if err != nil {
		t.Fatal(err)
	}
	iv, ok := b.Get("firstwall")
	if !ok || iv.Start != 375 || iv.End != 405 {
		t.Errorf("firstwall interval %v", iv)
	}
	if gap, _ := b.Get("outer_plasma_gap"); !gap.Gap {
		t.Error("gap entry not flagged")
	}
	if b.End("blanket") != 425 {
		t.Errorf("blanket end = %g, want 425", b.End("blanket"))
	}
}

func TestSequenceErrors(t *testing.T) {
	for name, entries := range map[string][]build.Entry{
		"negative":  {build.Layer("A", 10), build.Layer("B", -1)},
		"duplicate": {build.Layer("A", 10), build.Layer("A", 1)},
		"unnamed":   {build.Layer("", 10)},
	} {
		_, err := build.Sequence(0, entries...)
		if !errors.Is(err, paramak.ErrInvalidParameter) {
			t.Errorf("%s: want ErrInvalidParameter, got %v", name, err)
		}
	}
}

func TestBand(t *testing.T) {
	b, err := build.Sequence(0, build.Layer("blanket", 100))
	if err != nil {
		t.Fatal(err)
	}
	div, err := b.Band("divertor", 50, 20)
	if err != nil {
		t.Fatal(err)
	}
	if div.Start != 40 || div.End != 60 || !div.Band {
		t.Errorf("band = %+v", div)
	}
	// bands overlap stacked layers without breaking the invariants.
	if err := b.Validate(); err != nil {
		t.Error(err)
	}
	if b.Cursor() != 100 {
		t.Errorf("band moved the cursor to %g", b.Cursor())
	}
	if _, err := b.Band("support", 50, 0); !errors.Is(err, paramak.ErrInvalidParameter) {
		t.Errorf("zero width band: got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		ivs  []build.Interval
		ok   bool
	}{
		{"abutting", []build.Interval{{Name: "A", End: 10}, {Name: "B", Start: 10, End: 20}}, true},
		{"hole", []build.Interval{{Name: "A", End: 10}, {Name: "B", Start: 12, End: 20}}, false},
		{"overlap", []build.Interval{{Name: "A", End: 10}, {Name: "B", Start: 8, End: 20}}, false},
		{"inverted", []build.Interval{{Name: "A", End: 10}, {Name: "B", Start: 10, End: 5}}, false},
		{"offset origin", []build.Interval{{Name: "A", Start: 1, End: 10}}, false},
	}
	for _, test := range tests {
		b, err := build.FromIntervals(0, test.ivs...)
		if err != nil {
			t.Fatal(err)
		}
		err = b.Validate()
		if (err == nil) != test.ok {
			t.Errorf("%s: Validate() = %v", test.name, err)
		}
	}
}
