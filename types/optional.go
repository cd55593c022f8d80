package types

type (
	// Optional is a value that may or may not exist. The zero Optional is
	// empty, so struct fields of this type default to "unset".
	Optional[T comparable] struct {
		value  T
		exists bool
	}
)

func NewOptional[T comparable](value T, exists bool) Optional[T] {
	if !exists {
		return Optional[T]{}
	}
	return Optional[T]{value, true}
}

func Some[T comparable](value T) Optional[T] {
	return Optional[T]{
		value:  value,
		exists: true,
	}
}

func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Unpack() (T, bool) {
	return o.value, o.exists
}

// Value returns the contained value and panics if o is empty; use Unpack when
// the caller cannot be sure.
func (o Optional[T]) Value() T {
	if !o.exists {
		panic("types: Value of empty Optional")
	}
	return o.value
}

// ValueOr returns the contained value or fallback if o is empty.
func (o Optional[T]) ValueOr(fallback T) T {
	if !o.exists {
		return fallback
	}
	return o.value
}

func (o Optional[T]) Empty() bool {
	return !o.exists
}

func (o Optional[T]) Equals(value T) bool {
	return o.exists && o.value == value
}
