package valueseq

import "golang.org/x/exp/constraints"

// Make returns the sequence from, from+1, ..., from+size-1.
func Make[T constraints.Integer](from T, size int) Sequence {
	return MakeFunc(from, size, func(v T, i int) T {
		return v + T(i)
	})
}

// MakeFunc returns the sequence step(from, 0), step(from, 1), ..., step(from, size-1).
func MakeFunc[T comparable](from T, size int, step func(from T, i int) T) Sequence {
	if size < 0 {
		size = 0
	}
	res := make([]Constant, size)
	for i := range res {
		res[i] = C(step(from, i))
	}
	return Sequence{values: res}
}
