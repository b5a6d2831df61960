package valueseq_test

import (
	"errors"
	"testing"

	"github.com/BlurringShadow/stdsharp/functional"
	"github.com/BlurringShadow/stdsharp/valueseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var (
	timesTwo  = functional.Func1(func(v int) int { return v * 2 })
	positive  = functional.Func1(func(v int) bool { return v > 0 })
	aboveFour = functional.Func1(func(v int) bool { return v > 4 })
)

func sample() valueseq.Sequence {
	return valueseq.Values(3, 1, 4, 1, 5)
}

func TestScenario_Queries(t *testing.T) {
	seq := sample()

	i, err := seq.Find(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	n, err := seq.Count(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ok, err := seq.Contains(9, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	i, err = seq.AdjacentFind(nil)
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	ok, err = seq.AllOf(positive)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = seq.AnyOf(aboveFour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = seq.NoneOf(aboveFour)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptySequence_FindFamilyReturnsZeroWithoutInvoking(t *testing.T) {
	calls := 0
	pred := functional.Func1(func(v int) bool { calls++; return true })
	comp := functional.Func2(func(a, b int) bool { calls++; return true })
	empty := valueseq.Values[int]()

	for name, run := range map[string]func() (int, error){
		"find_if":      func() (int, error) { return empty.FindIf(pred) },
		"find_if_not":  func() (int, error) { return empty.FindIfNot(pred) },
		"find":         func() (int, error) { return empty.Find(1, comp) },
		"count_if":     func() (int, error) { return empty.CountIf(pred) },
		"count_if_not": func() (int, error) { return empty.CountIfNot(pred) },
		"count":        func() (int, error) { return empty.Count(1, comp) },
	} {
		got, err := run()
		assert.NoError(t, err, name)
		assert.Equal(t, 0, got, name)
	}
	assert.Equal(t, 0, calls)

	ok, _ := empty.AllOf(pred)
	assert.True(t, ok)
	ok, _ = empty.AnyOf(pred)
	assert.False(t, ok)
	ok, _ = empty.NoneOf(pred)
	assert.True(t, ok)
}

func TestFindIf_WithProjection(t *testing.T) {
	isEight := functional.Func1(func(v int) bool { return v == 8 })

	i, err := sample().FindIf(isEight, timesTwo)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = sample().FindIfNot(positive)
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	n, err := sample().CountIf(aboveFour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = sample().CountIfNot(aboveFour)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestFindIf_StopsAtFirstMatch(t *testing.T) {
	var seen []int
	pred := functional.Func1(func(v int) bool {
		seen = append(seen, v)
		return v == 4
	})

	i, err := sample().FindIf(pred)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, []int{3, 1, 4}, seen)
}

func TestFindIf_NonBoolResultIsRejected(t *testing.T) {
	_, err := sample().FindIf(timesTwo)
	assert.ErrorIs(t, err, valueseq.ErrNotPredicate)
}

func TestFindIf_PredicateRejectingSlotIsAConstraintError(t *testing.T) {
	seq, err := valueseq.FromAny(1, "a")
	require.NoError(t, err)

	_, err = seq.FindIf(positive)
	assert.ErrorIs(t, err, functional.ErrNotInvocable)
}

func TestFind_HeterogeneousSequenceIsSearchedSafely(t *testing.T) {
	seq, err := valueseq.FromAny(1, "a", 2.5, "b", 1)
	require.NoError(t, err)

	sameString := functional.Func2(func(a, b string) bool { return a == b })
	i, err := seq.Find("b", sameString)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	sameInt := functional.Func2(func(a, b int) bool { return a == b })
	n, err := seq.Count(1, sameInt)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// default comparison distinguishes dynamic types
	ok, err := seq.Contains(int64(1), nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// a Constant operand is unwrapped
	i, err = seq.Find(valueseq.C(2.5), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestFind_ComparatorOperandOrder(t *testing.T) {
	var got [][2]int
	comp := functional.Func2(func(candidate, value int) bool {
		got = append(got, [2]int{candidate, value})
		return false
	})

	_, err := valueseq.Values(7, 8).Find(9, comp)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{7, 9}, {8, 9}}, got)
}

func TestAdjacentFind(t *testing.T) {
	i, err := valueseq.Values(1, 2, 2, 3).AdjacentFind(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	greater := functional.Func2(func(a, b int) bool { return a > b })
	i, err = sample().AdjacentFind(greater)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	// projected: parity equality
	parity := functional.Func1(func(v int) int { return v % 2 })
	i, err = sample().AdjacentFind(nil, parity)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}

func TestAdjacentFind_ShortSequenceInvokesNothing(t *testing.T) {
	calls := 0
	comp := functional.Func2(func(a, b int) bool { calls++; return true })
	proj := functional.Func1(func(v int) int { calls++; return v })

	i, err := valueseq.Values(1).AdjacentFind(comp, proj)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = valueseq.Values[int]().AdjacentFind(comp, proj)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, calls)
}

func TestAdjacentFind_UnacceptedPairsDoNotMatch(t *testing.T) {
	seq, err := valueseq.FromAny(1, "a", "a", 2, 2)
	require.NoError(t, err)

	sameInt := functional.Func2(func(a, b int) bool { return a == b })
	i, err := seq.AdjacentFind(sameInt)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	i, err = seq.AdjacentFind(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestForEach_VisitsInOrderAndReturnsCallable(t *testing.T) {
	var got []int
	collect := functional.Action1(func(v int) { got = append(got, v) })

	fn, err := sample().ForEach(collect, timesTwo)
	require.NoError(t, err)
	assert.NotNil(t, fn)
	assert.Equal(t, []int{6, 2, 8, 2, 10}, got)
}

func TestForEach_RejectsBeforeInvoking(t *testing.T) {
	seq, err := valueseq.FromAny(1, "a", 2.5)
	require.NoError(t, err)

	calls := 0
	fn := functional.Action1(func(any) { calls++ })

	_, err = seq.ForEach(fn, timesTwo)
	assert.ErrorIs(t, err, functional.ErrNotInvocable)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, 0, calls)

	var ce *functional.ConstraintError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, "for_each", ce.Op)
}

func TestIdentityProjection_RejectsBeforeAnyCallableRuns(t *testing.T) {
	seq, err := valueseq.FromAny(1, "a")
	require.NoError(t, err)

	calls := 0
	onlyInts := functional.Action1(func(int) { calls++ })
	isOne := functional.Func1(func(v int) bool { calls++; return v == 1 })

	_, err = seq.ForEach(onlyInts)
	assert.ErrorIs(t, err, functional.ErrNotInvocable)

	_, err = valueseq.ForEachN(seq, 2, onlyInts)
	assert.ErrorIs(t, err, functional.ErrNotInvocable)

	n, err := seq.CountIf(isOne)
	assert.ErrorIs(t, err, functional.ErrNotInvocable)
	assert.Equal(t, 0, n)

	i, err := seq.FindIfNot(isOne)
	assert.ErrorIs(t, err, functional.ErrNotInvocable)
	assert.Equal(t, seq.Size(), i)

	assert.Equal(t, 0, calls)
}

func TestCountIf_CallableErrorLeavesNoPartialCount(t *testing.T) {
	boom := errors.New("boom")
	failing := functional.FuncE1(func(v int) (bool, error) {
		if v == 4 {
			return false, boom
		}
		return true, nil
	})

	n, err := sample().CountIf(failing)
	assert.Same(t, boom, err)
	assert.Equal(t, 0, n)
}

func TestForEach_CallableErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := functional.FuncE1(func(v int) (int, error) {
		calls++
		if v == 4 {
			return 0, boom
		}
		return v, nil
	})

	_, err := sample().ForEach(failing)
	assert.Same(t, boom, err)
	assert.Equal(t, 3, calls)
}

func TestForEach_MoreThanOneProjectionPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = sample().ForEach(positive, timesTwo, timesTwo)
	})
}

func TestForEachN(t *testing.T) {
	var got []int
	collect := functional.Action1(func(v int) { got = append(got, v) })

	_, err := valueseq.ForEachN(sample(), 2, collect)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, got)

	got = nil
	_, err = valueseq.ForEachN(sample(), 0, collect)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = valueseq.ForEachN(sample(), -3, collect)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = valueseq.ForEachN(sample(), uint8(10), collect, timesTwo)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 2, 8, 2, 10}, got)
}

func TestInvoke_CollectsResults(t *testing.T) {
	res, err := sample().Invoke(timesTwo)
	require.NoError(t, err)
	assert.Equal(t, []any{6, 2, 8, 2, 10}, res)

	mixed, _ := valueseq.FromAny(1, "a")
	_, err = mixed.Invoke(timesTwo)
	assert.ErrorIs(t, err, functional.ErrNotInvocable)
}

func TestTransform(t *testing.T) {
	doubled, err := sample().Transform(timesTwo)
	require.NoError(t, err)
	assert.True(t, doubled.Equal(valueseq.Values(6, 2, 8, 2, 10)))

	toString := functional.Func1(func(v int) string { return "x" })
	perSlot, err := valueseq.Values(1, 2).Transform(timesTwo, toString)
	require.NoError(t, err)
	assert.Equal(t, []any{2, "x"}, perSlot.Raw())

	_, err = sample().Transform(timesTwo, timesTwo)
	assert.ErrorIs(t, err, valueseq.ErrArityMismatch)

	_, err = sample().Transform()
	assert.ErrorIs(t, err, valueseq.ErrArityMismatch)
}

func TestTransform_Constraints(t *testing.T) {
	calls := 0
	counting := functional.Func1(func(v int) int { calls++; return v })
	mixed, _ := valueseq.FromAny(1, "a")

	_, err := mixed.Transform(counting)
	assert.ErrorIs(t, err, functional.ErrNotInvocable)
	assert.Equal(t, 0, calls)

	_, err = sample().Transform(functional.Action1(func(int) {}))
	assert.ErrorIs(t, err, valueseq.ErrVoidTransform)

	_, err = sample().Transform(functional.Func1(func(v int) []int { return []int{v} }))
	assert.ErrorIs(t, err, valueseq.ErrNotComparable)
}

type tagged struct{ id int }

var taggedCalls int

func (tagged) TagInvoke(op functional.Operation) (functional.Invocable, bool) {
	if op != functional.ProjectedInvokeOp {
		return nil, false
	}
	return functional.Variadic(nil, func(args ...any) (any, error) {
		taggedCalls++
		return true, nil
	}), true
}

func TestAlgorithms_HonourProjectedInvokeCustomization(t *testing.T) {
	taggedCalls = 0
	seq := valueseq.Of(valueseq.C(2), valueseq.C(tagged{id: 1}))

	var got []int
	collect := functional.Action1(func(v int) { got = append(got, v) })

	_, err := seq.ForEach(collect, timesTwo)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got)
	assert.Equal(t, 1, taggedCalls)

	isZero := functional.Func1(func(v int) bool { return v == 0 })
	i, err := seq.FindIf(isZero, timesTwo)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}
