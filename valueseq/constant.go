package valueseq

import (
	"fmt"

	"github.com/BlurringShadow/stdsharp/functional"
	"github.com/BlurringShadow/stdsharp/shared/helper"
)

// Constant is a single fixed value. Two constants are equal when both their
// dynamic types and their values are equal.
type Constant struct {
	value any
}

// C makes a Constant from a value of a comparable type. When T is an
// interface type, the dynamic value must be comparable too; C panics
// otherwise. Use NewConstant to get an error instead.
func C[T comparable](v T) Constant {
	c, err := NewConstant(v)
	if err != nil {
		panic(err)
	}
	return c
}

// NewConstant makes a Constant from v, rejecting values that are not comparable.
// A Constant passed in is returned as is.
func NewConstant(v any) (Constant, error) {
	if c, ok := v.(Constant); ok {
		return c, nil
	}
	if !helper.IsComparable(v) {
		return Constant{}, functional.NewConstraintError("constant", ErrNotComparable, "value of type %T", v)
	}
	return Constant{value: v}, nil
}

// Value returns the underlying value.
func (c Constant) Value() any {
	return c.value
}

// Equal reports whether c and o have the same type and value.
func (c Constant) Equal(o Constant) bool {
	return c.value == o.value
}

func (c Constant) String() string {
	return fmt.Sprint(c.value)
}

// As returns the value of c as T.
func As[T any](c Constant) (T, bool) {
	v, ok := c.value.(T)
	return v, ok
}
