package valueseq

import (
	"fmt"

	"github.com/BlurringShadow/stdsharp/config"
	"github.com/BlurringShadow/stdsharp/functional"
	"github.com/BlurringShadow/stdsharp/shared/helper"
	"github.com/BlurringShadow/stdsharp/shared/memo"
	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
)

// Sequence is an immutable, ordered list of constants.
// Every operation producing a sequence returns a new one.
type Sequence struct {
	values []Constant
}

// plans memoizes index plans that depend only on sizes and indices
// (reverse, remove_at) so each is computed once per distinct input.
var plans = memo.NewTable[[]int](config.Get().MemoSize)

// valuePlan is an index plan computed from the values of a sequence.
// It keeps those values so a fingerprint collision is detected on load.
type valuePlan struct {
	values  []Constant
	indices []int
}

// valuePlans memoizes plans that depend on the values (unique), keyed by fingerprint.
var valuePlans = memo.NewTable[valuePlan](config.Get().MemoSize)

func init() {
	config.OnChange(func(cfg config.Config) {
		plans.Reset(cfg.MemoSize)
		valuePlans.Reset(cfg.MemoSize)
	})
}

// Of returns a sequence of the given constants.
func Of(constants ...Constant) Sequence {
	return Sequence{values: append([]Constant(nil), constants...)}
}

// Values returns a sequence of values of one comparable type. Like C, it
// panics on a dynamic value that is not comparable.
func Values[T comparable](vs ...T) Sequence {
	res := make([]Constant, len(vs))
	for i, v := range vs {
		res[i] = C(v)
	}
	return Sequence{values: res}
}

// FromAny returns a sequence of values of arbitrary types. Every value must be comparable.
func FromAny(vs ...any) (Sequence, error) {
	var err error
	res := make([]Constant, len(vs))
	for i, v := range vs {
		c, cerr := NewConstant(v)
		err = multierr.Append(err, cerr)
		res[i] = c
	}
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{values: res}, nil
}

// Size is the number of constants.
func (s Sequence) Size() int {
	return len(s.values)
}

// Get returns the constant at i.
func (s Sequence) Get(i int) (Constant, error) {
	if i < 0 || i >= len(s.values) {
		return Constant{}, functional.NewConstraintError("get", functional.ErrIndexOutOfRange,
			"index %d of size %d", i, len(s.values))
	}
	return s.values[i], nil
}

// MustGet is the panic-on-failure variant of Get.
func (s Sequence) MustGet(i int) Constant {
	c, err := s.Get(i)
	if err != nil {
		panic(err)
	}
	return c
}

// GetAs returns the value at i as T.
func GetAs[T any](s Sequence, i int) (T, error) {
	return helper.TypedValueOf[T](func() (any, error) {
		c, err := s.Get(i)
		return c.value, err
	})
}

// Constants returns a copy of the constants in order.
func (s Sequence) Constants() []Constant {
	return append([]Constant(nil), s.values...)
}

// Raw returns the underlying values in order.
func (s Sequence) Raw() []any {
	res := make([]any, len(s.values))
	for i, c := range s.values {
		res[i] = c.value
	}
	return res
}

// Equal reports whether both sequences hold equal constants in the same order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s.values) != len(o.values) {
		return false
	}
	for i := range s.values {
		if !s.values[i].Equal(o.values[i]) {
			return false
		}
	}
	return true
}

// Hash fingerprints the sequence over the type and value of every slot.
func (s Sequence) Hash() uint64 {
	d := xxhash.New()
	for _, c := range s.values {
		_, _ = fmt.Fprintf(d, "%T\x00%v\x01", c.value, c.value)
	}
	return d.Sum64()
}

func (s Sequence) String() string {
	return fmt.Sprint(s.Raw())
}

// planByValues returns the plan of op for the values of s, computing it once per
// fingerprint. A cached plan for different values is recomputed, not used.
func (s Sequence) planByValues(op string, compute func() []int) []int {
	p := valuePlans.LoadOrCompute([]memo.Key{op, s.Hash(), len(s.values)}, func() valuePlan {
		return valuePlan{values: s.values, indices: compute()}
	})
	if !s.Equal(Sequence{values: p.values}) {
		return compute()
	}
	return p.indices
}
