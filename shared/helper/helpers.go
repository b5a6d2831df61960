package helper

import (
	"errors"
	"fmt"
)

var ErrUnexpectedType = errors.New("unexpected type")

// TypedValueOf asserts the result of a getter function to the expected type T.
// Getter errors are returned unchanged; a failed assertion wraps ErrUnexpectedType.
func TypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, err
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T is not %T", ErrUnexpectedType, res, zero)
	}

	return val, nil
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
func MustTypedValue[T any](getFn func() (any, error)) T {
	res, err := TypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// IsComparable reports whether v can be used with == without panicking.
func IsComparable(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = v == v
	return true
}
