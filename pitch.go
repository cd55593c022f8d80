package stepseq

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PitchName is one of the twelve chromatic pitch classes, C being 0 and B
// being 11. The values form a cycle: Next of B is C and Prev of C is B.
type PitchName int

const (
	C PitchName = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// PitchClasses is the number of pitch classes in an octave.
const PitchClasses = 12

// PitchNames lists all pitch names in chromatic order.
var PitchNames = [PitchClasses]PitchName{C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B}

var pitchNameStrings = [PitchClasses]string{
	"C",
	"C#",
	"D",
	"D#",
	"E",
	"F",
	"F#",
	"G",
	"G#",
	"A",
	"A#",
	"B",
}

// ParsePitchName returns the pitch name whose canonical string is exactly s.
// Only sharp notation is recognized and matching is case sensitive, so "Db",
// "c" and "" all return false.
func ParsePitchName(s string) (PitchName, bool) {
	for i, str := range pitchNameStrings {
		if str == s {
			return PitchName(i), true
		}
	}
	return C, false
}

// Valid reports whether p is one of the twelve named pitch classes.
func (p PitchName) Valid() bool {
	return p >= C && p <= B
}

func (p PitchName) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchName(%d)", int(p))
	}
	return pitchNameStrings[p]
}

// Next returns the pitch name a semitone up, wrapping B to C.
func (p PitchName) Next() PitchName {
	return PitchName(mod(int(p)+1, PitchClasses))
}

// Prev returns the pitch name a semitone down, wrapping C to B.
func (p PitchName) Prev() PitchName {
	return PitchName(mod(int(p)-1, PitchClasses))
}

func (p PitchName) MarshalYAML() (interface{}, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid pitch name %d", int(p))
	}
	return p.String(), nil
}

func (p *PitchName) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	name, ok := ParsePitchName(s)
	if !ok {
		return fmt.Errorf("line %d: unknown pitch name %q", value.Line, s)
	}
	*p = name
	return nil
}

func mod(a, b int) int {
	return (a%b + b) % b
}
