package valueseq

import (
	"fmt"
	"slices"

	"github.com/BlurringShadow/stdsharp/functional"
	"github.com/BlurringShadow/stdsharp/shared/indexset"
	"github.com/BlurringShadow/stdsharp/shared/memo"
)

func outOfRange(op string, format string, args ...any) error {
	return functional.NewConstraintError(op, functional.ErrIndexOutOfRange, format, args...)
}

// IndexedBy returns the values at the given indices, in the given order.
// Indices may repeat.
func (s Sequence) IndexedBy(indices ...int) (Sequence, error) {
	res := make([]Constant, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(s.values) {
			return Sequence{}, outOfRange("indexed", "index %d of size %d", idx, len(s.values))
		}
		res[i] = s.values[idx]
	}
	return Sequence{values: res}, nil
}

// IndexedBySeq is IndexedBy with the indices given as a sequence of ints.
func (s Sequence) IndexedBySeq(indices Sequence) (Sequence, error) {
	idx, err := indices.ints("indexed_by_seq")
	if err != nil {
		return Sequence{}, err
	}
	return s.IndexedBy(idx...)
}

func (s Sequence) ints(op string) ([]int, error) {
	res := make([]int, len(s.values))
	for i, c := range s.values {
		v, ok := c.value.(int)
		if !ok {
			return nil, functional.NewConstraintError(op, ErrNotIndex, "slot %d of type %T", i, c.value)
		}
		res[i] = v
	}
	return res, nil
}

// SelectRange returns the size values starting at from.
func (s Sequence) SelectRange(from, size int) (Sequence, error) {
	if from < 0 || size < 0 || from+size > len(s.values) {
		return Sequence{}, outOfRange("select_range", "[%d, %d) of size %d", from, from+size, len(s.values))
	}
	return Of(s.values[from : from+size]...), nil
}

// Front returns the first size values.
func (s Sequence) Front(size int) (Sequence, error) {
	return s.SelectRange(0, size)
}

// Back returns the last size values.
func (s Sequence) Back(size int) (Sequence, error) {
	return s.SelectRange(len(s.values)-size, size)
}

// Append returns s followed by others.
func (s Sequence) Append(others ...Constant) Sequence {
	res := make([]Constant, 0, len(s.values)+len(others))
	res = append(res, s.values...)
	return Sequence{values: append(res, others...)}
}

// AppendSeq returns s followed by o.
func (s Sequence) AppendSeq(o Sequence) Sequence {
	return s.Append(o.values...)
}

// AppendFront returns others followed by s.
func (s Sequence) AppendFront(others ...Constant) Sequence {
	return Of(others...).AppendSeq(s)
}

// AppendFrontSeq returns o followed by s.
func (s Sequence) AppendFrontSeq(o Sequence) Sequence {
	return o.AppendSeq(s)
}

// Insert splices others in immediately before index. index may equal Size().
func (s Sequence) Insert(index int, others ...Constant) (Sequence, error) {
	if index < 0 || index > len(s.values) {
		return Sequence{}, outOfRange("insert", "index %d of size %d", index, len(s.values))
	}
	front, err := s.Front(index)
	if err != nil {
		return Sequence{}, err
	}
	back, err := s.Back(len(s.values) - index)
	if err != nil {
		return Sequence{}, err
	}
	return front.Append(others...).AppendSeq(back), nil
}

// InsertSeq is Insert with the inserted values given as a sequence.
func (s Sequence) InsertSeq(index int, o Sequence) (Sequence, error) {
	return s.Insert(index, o.values...)
}

// Replace returns s with the value at index replaced by other.
func (s Sequence) Replace(index int, other Constant) (Sequence, error) {
	if index < 0 || index >= len(s.values) {
		return Sequence{}, outOfRange("replace", "index %d of size %d", index, len(s.values))
	}
	front, err := s.Front(index)
	if err != nil {
		return Sequence{}, err
	}
	back, err := s.Back(len(s.values) - index - 1)
	if err != nil {
		return Sequence{}, err
	}
	return front.Append(other).AppendSeq(back), nil
}

// RemoveAt returns s without the values at the given indices. Duplicate
// indices remove once; surviving values keep their order.
func (s Sequence) RemoveAt(indices ...int) (Sequence, error) {
	selected, err := indexset.Of(len(s.values), indices...)
	if err != nil {
		return Sequence{}, functional.NewConstraintError("remove_at", functional.ErrIndexOutOfRange, "%v", err)
	}
	plan := plans.LoadOrCompute(
		[]memo.Key{"remove_at", len(s.values), fmt.Sprint(selected.Indices())},
		selected.Complement,
	)
	return s.IndexedBy(plan...)
}

// RemoveAtSeq is RemoveAt with the indices given as a sequence of ints.
func (s Sequence) RemoveAtSeq(indices Sequence) (Sequence, error) {
	idx, err := indices.ints("remove_at_seq")
	if err != nil {
		return Sequence{}, err
	}
	return s.RemoveAt(idx...)
}

// Reverse returns the values in inverted index order.
func (s Sequence) Reverse() Sequence {
	n := len(s.values)
	plan := plans.LoadOrCompute([]memo.Key{"reverse", n}, func() []int {
		return reversedIndices(n)
	})
	res, _ := s.IndexedBy(plan...)
	return res
}

func reversedIndices(n int) []int {
	indices, _ := MakeFunc(n-1, n, func(from, i int) int {
		return from - i
	}).ints("reverse")
	return indices
}

// Unique keeps the first occurrence of every distinct value, in order of first appearance.
func (s Sequence) Unique() Sequence {
	plan := s.planByValues("unique", s.firstOccurrences)
	res, _ := s.IndexedBy(plan...)
	return res
}

// firstOccurrences maps every value to the index of its first equal value,
// then sorts and collapses the indices.
func (s Sequence) firstOccurrences() []int {
	first := make([]int, len(s.values))
	for i := range s.values {
		first[i] = s.firstIndexOf(i)
	}
	slices.Sort(first)
	return slices.Compact(first)
}

// firstIndexOf returns i itself for values equal to nothing before them, NaN included.
func (s Sequence) firstIndexOf(i int) int {
	for j := 0; j < i; j++ {
		if s.values[j].Equal(s.values[i]) {
			return j
		}
	}
	return i
}
