package stepseq

import (
	"fmt"
	"slices"

	"github.com/vsariola/stepseq/types"
	"gopkg.in/yaml.v3"
)

type (
	// Row is the event data of one step of a Pattern: the channel it plays
	// on, the note to trigger, its velocity and the effects applied on that
	// step. Each of channel, note and velocity is independently optional; an
	// absent note means the row is not a note-on. A Row with nothing set is an
	// empty step, which is still different from a Pattern slot holding no Row
	// at all. Rows are values and are changed only by constructing a new one.
	Row struct {
		channel  types.Optional[uint8]
		note     types.Optional[Note]
		velocity types.Optional[uint8]
		effects  []Effect
	}

	rowYAML struct {
		Channel  *uint8   `yaml:",omitempty"`
		Note     *Note    `yaml:",omitempty"`
		Velocity *uint8   `yaml:",omitempty"`
		Effects  []Effect `yaml:",omitempty,flow"`
	}
)

// NewRow stores the given fields as is; channel and velocity are not range
// checked. The effects are copied, so the caller may reuse the slice.
func NewRow(channel types.Optional[uint8], note types.Optional[Note], velocity types.Optional[uint8], effects []Effect) Row {
	return Row{
		channel:  channel,
		note:     note,
		velocity: velocity,
		effects:  copyEffects(effects),
	}
}

func (r Row) Channel() (uint8, bool)  { return r.channel.Unpack() }
func (r Row) Note() (Note, bool)      { return r.note.Unpack() }
func (r Row) Velocity() (uint8, bool) { return r.velocity.Unpack() }

// Effects returns a copy of the effects of the row, in application order.
func (r Row) Effects() []Effect {
	return copyEffects(r.effects)
}

// IsEmpty reports whether the row sets nothing at all.
func (r Row) IsEmpty() bool {
	return r.channel.Empty() && r.note.Empty() && r.velocity.Empty() && len(r.effects) == 0
}

// Copy makes a deep copy of a Row.
func (r Row) Copy() Row {
	return Row{
		channel:  r.channel,
		note:     r.note,
		velocity: r.velocity,
		effects:  copyEffects(r.effects),
	}
}

// Equal reports whether both rows set the same fields to the same values and
// have equal effects in the same order.
func (r Row) Equal(other Row) bool {
	if r.channel != other.channel || r.note != other.note || r.velocity != other.velocity {
		return false
	}
	if len(r.effects) != len(other.effects) {
		return false
	}
	for i := range r.effects {
		if r.effects[i] != other.effects[i] {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	unset := func(s string, ok bool) string {
		if !ok {
			return "-"
		}
		return s
	}
	c, cok := r.channel.Unpack()
	n, nok := r.note.Unpack()
	v, vok := r.velocity.Unpack()
	return fmt.Sprintf("ch:%s note:%s vel:%s fx:%d",
		unset(fmt.Sprint(c), cok),
		unset(n.String(), nok),
		unset(fmt.Sprint(v), vok),
		len(r.effects))
}

func (r Row) MarshalYAML() (interface{}, error) {
	var ret rowYAML
	if c, ok := r.channel.Unpack(); ok {
		ret.Channel = &c
	}
	if n, ok := r.note.Unpack(); ok {
		ret.Note = &n
	}
	if v, ok := r.velocity.Unpack(); ok {
		ret.Velocity = &v
	}
	ret.Effects = r.effects
	return ret, nil
}

func (r *Row) UnmarshalYAML(value *yaml.Node) error {
	if err := checkKeys(value, "channel", "note", "velocity", "effects"); err != nil {
		return err
	}
	var ry rowYAML
	if err := value.Decode(&ry); err != nil {
		return fmt.Errorf("could not decode row: %w", err)
	}
	var channel, velocity types.Optional[uint8]
	var note types.Optional[Note]
	if ry.Channel != nil {
		channel = types.Some(*ry.Channel)
	}
	if ry.Note != nil {
		note = types.Some(*ry.Note)
	}
	if ry.Velocity != nil {
		velocity = types.Some(*ry.Velocity)
	}
	*r = NewRow(channel, note, velocity, ry.Effects)
	return nil
}

func copyEffects(effects []Effect) []Effect {
	if len(effects) == 0 {
		return nil
	}
	ret := make([]Effect, len(effects))
	copy(ret, effects)
	return ret
}

// checkKeys fails if value is a mapping with a key not in keys, so that a
// misspelled field is not silently dropped.
func checkKeys(value *yaml.Node, keys ...string) error {
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k := value.Content[i]
		if !slices.Contains(keys, k.Value) {
			return fmt.Errorf("line %d: unknown key %q, expected one of %v", k.Line, k.Value, keys)
		}
	}
	return nil
}
