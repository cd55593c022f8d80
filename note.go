package stepseq

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Note is a pitch name at a given octave. Its MIDI value is name + 12*octave,
// so C0 is 0, B0 is 11 and C1 is 12. The value is computed once by NewNote;
// Notes have no mutators, so it never goes stale. Octaves are not range
// checked: every uint8 octave maps to a value, even beyond the 0-127 range of
// MIDI proper.
type Note struct {
	name   PitchName
	octave uint8
	midi   int
}

// NewNote returns the note name at octave, computing its MIDI value. It never
// fails; NewNote(CSharp, 4).MIDI() is 49.
func NewNote(name PitchName, octave uint8) Note {
	return Note{
		name:   name,
		octave: octave,
		midi:   int(name) + PitchClasses*int(octave),
	}
}

// ParseNote is the inverse of Note.String: a canonical pitch name immediately
// followed by a decimal octave 0-255, e.g. "C#4". Signs, spaces and leading
// zeros are not accepted.
func ParseNote(s string) (Note, bool) {
	nameLen := 1
	if len(s) > 1 && s[1] == '#' {
		nameLen = 2
	}
	if len(s) <= nameLen {
		return Note{}, false
	}
	name, ok := ParsePitchName(s[:nameLen])
	if !ok {
		return Note{}, false
	}
	digits := s[nameLen:]
	if len(digits) > 1 && strings.HasPrefix(digits, "0") {
		return Note{}, false
	}
	octave, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return Note{}, false
	}
	return NewNote(name, uint8(octave)), true
}

func (n Note) Name() PitchName { return n.name }
func (n Note) Octave() uint8   { return n.octave }
func (n Note) MIDI() int       { return n.midi }

func (n Note) String() string {
	return fmt.Sprintf("%v%d", n.name, n.octave)
}

func (n Note) MarshalYAML() (interface{}, error) {
	if !n.name.Valid() {
		return nil, fmt.Errorf("cannot marshal note with invalid pitch name %d", int(n.name))
	}
	return n.String(), nil
}

func (n *Note) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	note, ok := ParseNote(s)
	if !ok {
		return fmt.Errorf("line %d: invalid note %q, expected e.g. C#4", value.Line, s)
	}
	*n = note
	return nil
}
