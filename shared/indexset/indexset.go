package indexset

import (
	"errors"
	"fmt"
	"sort"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Set is an ascending, duplicate-free selection of indices bounded by a length.
type Set struct {
	data  []int
	bound int
}

// New returns an empty Set accepting indices in [0, bound).
func New(bound int) *Set {
	return &Set{
		data:  make([]int, 0, bound),
		bound: bound,
	}
}

// Of builds a Set from indices, rejecting the first index outside [0, bound).
func Of(bound int, indices ...int) (*Set, error) {
	s := New(bound)
	for _, i := range indices {
		if err := s.Insert(i); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Insert places i at its sorted position. Inserting a present index is a no-op.
func (s *Set) Insert(i int) error {
	if i < 0 || i >= s.bound {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, s.bound)
	}

	idx := sort.SearchInts(s.data, i)
	if idx < len(s.data) && s.data[idx] == i {
		return nil
	}

	s.data = append(s.data, i)
	copy(s.data[idx+1:], s.data[idx:])
	s.data[idx] = i
	return nil
}

// Contains reports whether i was selected.
func (s *Set) Contains(i int) bool {
	idx := sort.SearchInts(s.data, i)
	return idx < len(s.data) && s.data[idx] == i
}

// Len is the number of distinct selected indices.
func (s *Set) Len() int {
	return len(s.data)
}

// Indices returns the selected indices in ascending order.
func (s *Set) Indices() []int {
	return append([]int(nil), s.data...)
}

// Complement returns, in ascending order, every index of [0, bound) not in the Set.
func (s *Set) Complement() []int {
	res := make([]int, 0, s.bound-len(s.data))
	for i := 0; i < s.bound; i++ {
		if !s.Contains(i) {
			res = append(res, i)
		}
	}
	return res
}
