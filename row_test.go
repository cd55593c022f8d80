package stepseq_test

import (
	"testing"

	"github.com/vsariola/stepseq"
	"github.com/vsariola/stepseq/types"
)

func TestRowFields(t *testing.T) {
	n := stepseq.NewNote(stepseq.G, 3)
	r := stepseq.NewRow(types.Some[uint8](2), types.Some(n), types.None[uint8](), []stepseq.Effect{{}, {}})
	if c, ok := r.Channel(); !ok || c != 2 {
		t.Errorf("Channel: got (%v, %v), expected (2, true)", c, ok)
	}
	if got, ok := r.Note(); !ok || got != n {
		t.Errorf("Note: got (%v, %v), expected (%v, true)", got, ok, n)
	}
	if _, ok := r.Velocity(); ok {
		t.Errorf("Velocity should be absent")
	}
	if len(r.Effects()) != 2 {
		t.Errorf("Effects: got %d, expected 2", len(r.Effects()))
	}
	if r.IsEmpty() {
		t.Errorf("row with a note should not be empty")
	}
}

func TestRowAcceptsAnyChannelAndVelocity(t *testing.T) {
	r := stepseq.NewRow(types.Some[uint8](255), types.None[stepseq.Note](), types.Some[uint8](0), nil)
	if c, _ := r.Channel(); c != 255 {
		t.Fatalf("Channel: got %d, expected 255", c)
	}
	if v, ok := r.Velocity(); !ok || v != 0 {
		t.Fatalf("Velocity: got (%d, %v), expected (0, true)", v, ok)
	}
}

func TestEmptyRow(t *testing.T) {
	var zero stepseq.Row
	built := stepseq.NewRow(types.None[uint8](), types.None[stepseq.Note](), types.None[uint8](), []stepseq.Effect{})
	for _, r := range []stepseq.Row{zero, built} {
		if !r.IsEmpty() {
			t.Errorf("row %v should be empty", r)
		}
	}
	if !zero.Equal(built) {
		t.Errorf("zero row and built empty row should be equal")
	}
}

func TestRowOwnsEffects(t *testing.T) {
	effects := make([]stepseq.Effect, 3, 8)
	r := stepseq.NewRow(types.None[uint8](), types.None[stepseq.Note](), types.None[uint8](), effects)
	if got := r.Effects(); len(got) != 3 || cap(got) != 3 {
		t.Fatalf("Effects: got len %d cap %d, expected a copy of length 3", len(got), cap(got))
	}
	if !r.Equal(r.Copy()) {
		t.Fatalf("Copy should equal the original")
	}
}

func TestRowEqual(t *testing.T) {
	a := stepseq.NewRow(types.Some[uint8](1), types.Some(stepseq.NewNote(stepseq.C, 4)), types.Some[uint8](100), nil)
	b := stepseq.NewRow(types.Some[uint8](1), types.Some(stepseq.NewNote(stepseq.C, 4)), types.Some[uint8](100), nil)
	c := stepseq.NewRow(types.Some[uint8](1), types.Some(stepseq.NewNote(stepseq.C, 4)), types.None[uint8](), nil)
	d := stepseq.NewRow(types.Some[uint8](1), types.Some(stepseq.NewNote(stepseq.C, 4)), types.Some[uint8](100), []stepseq.Effect{{}})
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal", a, b)
	}
	if a.Equal(c) {
		t.Errorf("%v and %v should differ by velocity", a, c)
	}
	if a.Equal(d) {
		t.Errorf("%v and %v should differ by effects", a, d)
	}
}

func TestRowString(t *testing.T) {
	r := stepseq.NewRow(types.None[uint8](), types.Some(stepseq.NewNote(stepseq.ASharp, 2)), types.Some[uint8](64), nil)
	expected := "ch:- note:A#2 vel:64 fx:0"
	if r.String() != expected {
		t.Fatalf("String: got %q, expected %q", r.String(), expected)
	}
}
