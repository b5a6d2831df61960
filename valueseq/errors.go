package valueseq

import "errors"

var (
	ErrNotComparable = errors.New("value is not comparable")
	ErrNotPredicate  = errors.New("callable result is not a bool")
	ErrArityMismatch = errors.New("number of callables does not match the sequence size")
	ErrNotIndex      = errors.New("constant is not an int index")
	ErrVoidTransform = errors.New("transform yields no value")
)
