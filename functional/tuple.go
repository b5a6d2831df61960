package functional

import "github.com/BlurringShadow/stdsharp/shared/helper"

// Tuple is a fixed-size positional aggregate of results.
type Tuple struct {
	values []any
}

// NewTuple returns a Tuple holding values.
func NewTuple(values ...any) Tuple {
	return Tuple{values: append([]any(nil), values...)}
}

// Len is the number of slots.
func (t Tuple) Len() int {
	return len(t.values)
}

// At returns slot i. It panics when i is out of range.
func (t Tuple) At(i int) any {
	return t.values[i]
}

// Values returns a copy of every slot.
func (t Tuple) Values() []any {
	return append([]any(nil), t.values...)
}

// TupleAt returns slot i as T.
func TupleAt[T any](t Tuple, i int) (T, error) {
	return helper.TypedValueOf[T](func() (any, error) {
		if i < 0 || i >= len(t.values) {
			return nil, NewConstraintError("tuple", ErrIndexOutOfRange, "slot %d of %d", i, len(t.values))
		}
		return t.values[i], nil
	})
}
