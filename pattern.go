package stepseq

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vsariola/stepseq/types"
	"gopkg.in/yaml.v3"
)

// ErrIndexOutOfRange is returned when a Pattern slot outside [0, Len()) is
// modified.
var ErrIndexOutOfRange = errors.New("index out of range")

// MaxPatternLength is the longest pattern UnmarshalYAML accepts.
const MaxPatternLength = 1 << 16

type (
	// Pattern is a fixed number of steps, each of which either holds a Row or
	// is empty. The length is set by NewPattern and never changes; rows are
	// added and removed by step index. AddRow stores a copy of the row and Row
	// returns a copy. Assigning a Pattern shares its steps with the original;
	// use Copy to get an independent one.
	Pattern struct {
		slots []slot
	}

	slot struct {
		row      Row
		occupied bool
	}

	// Event is what a player gets out of a Pattern: the note of an occupied
	// step together with the rest of the row.
	Event struct {
		Step     int
		Channel  types.Optional[uint8]
		MIDI     int
		Velocity types.Optional[uint8]
		Effects  []Effect
	}

	patternYAML struct {
		Length int
		Rows   []*Row `yaml:",flow"`
	}
)

// NewPattern returns a pattern of length empty steps. Negative lengths give
// an empty pattern.
func NewPattern(length int) Pattern {
	if length < 0 {
		length = 0
	}
	return Pattern{slots: make([]slot, length)}
}

// Len returns the number of steps, occupied or not.
func (p Pattern) Len() int {
	return len(p.slots)
}

// AddRow puts row at step index, replacing whatever was there. If index is out
// of range the pattern is left untouched and an error wrapping
// ErrIndexOutOfRange is returned.
func (p *Pattern) AddRow(index int, row Row) error {
	if err := p.checkIndex(index); err != nil {
		return fmt.Errorf("cannot add row: %w", err)
	}
	p.slots[index] = slot{row: row.Copy(), occupied: true}
	return nil
}

// RemoveRow empties step index. Removing from an already empty step is not an
// error, but an out of range index is.
func (p *Pattern) RemoveRow(index int) error {
	if err := p.checkIndex(index); err != nil {
		return fmt.Errorf("cannot remove row: %w", err)
	}
	p.slots[index] = slot{}
	return nil
}

// Row returns the row at step index; out of range steps read as empty.
func (p Pattern) Row(index int) (Row, bool) {
	if index < 0 || index >= len(p.slots) || !p.slots[index].occupied {
		return Row{}, false
	}
	return p.slots[index].row.Copy(), true
}

// Occupied reports whether step index holds a row. Out of range steps are
// never occupied.
func (p Pattern) Occupied(index int) bool {
	return index >= 0 && index < len(p.slots) && p.slots[index].occupied
}

// Rows iterates over the occupied steps in step order.
func (p Pattern) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, s := range p.slots {
			if !s.occupied {
				continue
			}
			if !yield(i, s.row.Copy()) {
				return
			}
		}
	}
}

// Events iterates over the occupied steps that have a note, in step order.
// Rows without a note trigger nothing and are skipped.
func (p Pattern) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for i, r := range p.Rows() {
			n, ok := r.Note()
			if !ok {
				continue
			}
			e := Event{
				Step:     i,
				Channel:  r.channel,
				MIDI:     n.MIDI(),
				Velocity: r.velocity,
				Effects:  r.effects,
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Copy makes a deep copy of a Pattern.
func (p Pattern) Copy() Pattern {
	slots := make([]slot, len(p.slots))
	for i, s := range p.slots {
		slots[i] = slot{row: s.row.Copy(), occupied: s.occupied}
	}
	return Pattern{slots: slots}
}

func (p Pattern) checkIndex(index int) error {
	if index < 0 || index >= len(p.slots) {
		return fmt.Errorf("step %d, pattern length %d: %w", index, len(p.slots), ErrIndexOutOfRange)
	}
	return nil
}

func (p Pattern) MarshalYAML() (interface{}, error) {
	ret := patternYAML{Length: len(p.slots), Rows: make([]*Row, len(p.slots))}
	for i, s := range p.slots {
		if s.occupied {
			r := s.row
			ret.Rows[i] = &r
		}
	}
	return ret, nil
}

// UnmarshalYAML decodes a mapping with the pattern length and its rows, null
// rows being empty steps. Rows missing from the end are empty. Lengths above
// MaxPatternLength and unknown keys are errors.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	if err := checkKeys(value, "length", "rows"); err != nil {
		return err
	}
	var py patternYAML
	if err := value.Decode(&py); err != nil {
		return fmt.Errorf("could not decode pattern: %w", err)
	}
	if py.Length < 0 {
		return fmt.Errorf("line %d: pattern length should be >= 0, got %d", value.Line, py.Length)
	}
	if py.Length > MaxPatternLength {
		return fmt.Errorf("line %d: pattern length should be <= %d, got %d", value.Line, MaxPatternLength, py.Length)
	}
	if len(py.Rows) > py.Length {
		return fmt.Errorf("line %d: pattern has %d rows but length %d", value.Line, len(py.Rows), py.Length)
	}
	ret := NewPattern(py.Length)
	for i, r := range py.Rows {
		if r != nil {
			ret.slots[i] = slot{row: *r, occupied: true}
		}
	}
	*p = ret
	return nil
}
