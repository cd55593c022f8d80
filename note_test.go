package stepseq_test

import (
	"testing"

	"github.com/vsariola/stepseq"
	"gopkg.in/yaml.v3"
)

func TestNoteMIDI(t *testing.T) {
	cases := []struct {
		name   stepseq.PitchName
		octave uint8
		midi   int
	}{
		{stepseq.C, 0, 0},
		{stepseq.B, 0, 11},
		{stepseq.C, 1, 12},
		{stepseq.CSharp, 4, 49},
		{stepseq.A, 4, 57},
		{stepseq.G, 10, 127},
		{stepseq.B, 255, 3071},
	}
	for _, c := range cases {
		n := stepseq.NewNote(c.name, c.octave)
		if n.MIDI() != c.midi {
			t.Errorf("NewNote(%v, %d).MIDI(): got %d, expected %d", c.name, c.octave, n.MIDI(), c.midi)
		}
		if n.Name() != c.name || n.Octave() != c.octave {
			t.Errorf("NewNote(%v, %d): got name %v octave %d", c.name, c.octave, n.Name(), n.Octave())
		}
	}
}

func TestNoteEquality(t *testing.T) {
	a := stepseq.NewNote(stepseq.FSharp, 3)
	b := stepseq.NewNote(stepseq.FSharp, 3)
	if a != b || a.MIDI() != b.MIDI() {
		t.Fatalf("notes built from the same input should be equal: %v %v", a, b)
	}
	if a == stepseq.NewNote(stepseq.FSharp, 4) {
		t.Fatalf("notes in different octaves should differ")
	}
}

func TestNoteMIDIOrdersByPitch(t *testing.T) {
	prev := -1
	for octave := uint8(0); octave < 11; octave++ {
		for _, p := range stepseq.PitchNames {
			m := stepseq.NewNote(p, octave).MIDI()
			if m != prev+1 {
				t.Fatalf("%v%d: got %d, expected %d", p, octave, m, prev+1)
			}
			prev = m
		}
	}
}

func TestNoteString(t *testing.T) {
	for _, c := range []struct {
		note stepseq.Note
		str  string
	}{
		{stepseq.NewNote(stepseq.C, 0), "C0"},
		{stepseq.NewNote(stepseq.CSharp, 4), "C#4"},
		{stepseq.NewNote(stepseq.B, 255), "B255"},
	} {
		if c.note.String() != c.str {
			t.Errorf("String: got %q, expected %q", c.note.String(), c.str)
		}
		parsed, ok := stepseq.ParseNote(c.str)
		if !ok || parsed != c.note {
			t.Errorf("ParseNote(%q): got (%v, %v), expected (%v, true)", c.str, parsed, ok, c.note)
		}
	}
}

func TestParseNoteRejects(t *testing.T) {
	for _, s := range []string{"", "C", "C#", "c4", "Db4", "C-4", "C 4", "C04", "C+4", "C256", "C#x", "4", "C4 "} {
		if n, ok := stepseq.ParseNote(s); ok {
			t.Errorf("ParseNote(%q): got %v, expected no match", s, n)
		}
	}
}

func TestNoteYAML(t *testing.T) {
	n := stepseq.NewNote(stepseq.DSharp, 5)
	out, err := yaml.Marshal(n)
	if err != nil {
		t.Fatalf("could not marshal note: %v", err)
	}
	var back stepseq.Note
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("could not unmarshal %q: %v", out, err)
	}
	if back != n {
		t.Fatalf("got %v, expected %v", back, n)
	}
	if err := yaml.Unmarshal([]byte("H2"), &back); err == nil {
		t.Fatalf("unmarshaling H2 should fail")
	}
}
