package valueseq

import (
	"github.com/BlurringShadow/stdsharp/functional"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// normalizeProjection flattens the optional projection argument.
//
// Accepts either 0 or 1 projections. Panics if more than one is passed.
func normalizeProjection(proj []functional.Invocable) functional.Invocable {
	switch len(proj) {
	case 1:
		if proj[0] == nil {
			return functional.Identity
		}
		return proj[0]
	case 0:
		return functional.Identity
	default:
		panic("valueseq: only one or zero projections allowed")
	}
}

// checkProjection rejects the call when proj cannot take some slot and no
// customization of projected invocation covers it. Every rejected slot is reported.
func (s Sequence) checkProjection(op string, fn, proj functional.Invocable) error {
	var err error
	for i, c := range s.values {
		if proj.Accepts(c.value) ||
			functional.CPOInvocable(functional.ProjectedInvokeOp, fn, proj, c.value) {
			continue
		}
		err = multierr.Append(err, functional.NewConstraintError(op, functional.ErrNotInvocable,
			"projection rejects slot %d of type %T", i, c.value))
	}
	return err
}

// checkInvocable extends checkProjection to the unary callable fn: every
// projected slot must be accepted by fn. The projection runs during the check.
func (s Sequence) checkInvocable(op string, fn, proj functional.Invocable) error {
	if err := s.checkProjection(op, fn, proj); err != nil {
		return err
	}
	var err error
	for i, c := range s.values {
		if !functional.ProjectedInvocable(fn, proj, c.value) {
			err = multierr.Append(err, functional.NewConstraintError(op, functional.ErrNotInvocable,
				"callable rejects projected slot %d of type %T", i, c.value))
		}
	}
	return err
}

func truthy(op string, res any) (bool, error) {
	b, ok := res.(bool)
	if !ok {
		return false, functional.NewConstraintError(op, ErrNotPredicate, "result of type %T", res)
	}
	return b, nil
}

// negated inverts the truth value of a predicate.
type negated struct {
	fn functional.Invocable
}

func (n negated) Accepts(args ...any) bool {
	return n.fn.Accepts(args...)
}

func (n negated) Invoke(args ...any) (any, error) {
	res, err := n.fn.Invoke(args...)
	if err != nil {
		return nil, err
	}
	b, err := truthy("predicate", res)
	if err != nil {
		return nil, err
	}
	return !b, nil
}

// comparer turns comp into a unary predicate against a fixed right operand.
// Candidates comp cannot take, or for which it does not yield a bool, do not match.
type comparer struct {
	value any
	comp  functional.Invocable
}

func (c comparer) Accepts(args ...any) bool {
	return len(args) == 1
}

func (c comparer) Invoke(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, functional.NewConstraintError("comparer", functional.ErrNotInvocable, "%d arguments", len(args))
	}
	return softCompare(c.comp, args[0], c.value)
}

// pairComparer is the binary form of comparer used for adjacent pairs.
type pairComparer struct {
	comp functional.Invocable
}

func (c pairComparer) Accepts(args ...any) bool {
	return len(args) == 2
}

func (c pairComparer) Invoke(args ...any) (any, error) {
	if len(args) != 2 {
		return nil, functional.NewConstraintError("comparer", functional.ErrNotInvocable, "%d arguments", len(args))
	}
	return softCompare(c.comp, args[0], args[1])
}

func softCompare(comp functional.Invocable, left, right any) (bool, error) {
	if !comp.Accepts(left, right) {
		return false, nil
	}
	res, err := comp.Invoke(left, right)
	if err != nil {
		return false, err
	}
	b, _ := res.(bool)
	return b, nil
}

func normalizeComparer(comp functional.Invocable) functional.Invocable {
	if comp == nil {
		return functional.EqualTo
	}
	return comp
}

func unwrap(v any) any {
	if c, ok := v.(Constant); ok {
		return c.value
	}
	return v
}

// ForEach invokes fn with every projected value in order and returns fn.
func (s Sequence) ForEach(fn functional.Invocable, proj ...functional.Invocable) (functional.Invocable, error) {
	p := normalizeProjection(proj)
	if err := s.checkInvocable("for_each", fn, p); err != nil {
		return fn, err
	}
	for _, c := range s.values {
		if _, err := functional.ProjectedInvoke(fn, p, c.value); err != nil {
			return fn, err
		}
	}
	return fn, nil
}

// ForEachN is ForEach stopping after count invocations. A count of zero or
// less invokes nothing.
func ForEachN[N constraints.Integer](s Sequence, count N, fn functional.Invocable, proj ...functional.Invocable) (functional.Invocable, error) {
	p := normalizeProjection(proj)
	if err := s.checkInvocable("for_each_n", fn, p); err != nil {
		return fn, err
	}
	for _, c := range s.values {
		if count <= 0 {
			break
		}
		if _, err := functional.ProjectedInvoke(fn, p, c.value); err != nil {
			return fn, err
		}
		count--
	}
	return fn, nil
}

// FindIf returns the index of the first value whose projection satisfies fn,
// or Size() when none does.
func (s Sequence) FindIf(fn functional.Invocable, proj ...functional.Invocable) (int, error) {
	return s.findIf("find_if", fn, normalizeProjection(proj))
}

func (s Sequence) findIf(op string, fn, proj functional.Invocable) (int, error) {
	if len(s.values) == 0 {
		return 0, nil
	}
	if err := s.checkInvocable(op, fn, proj); err != nil {
		return len(s.values), err
	}
	for i, c := range s.values {
		res, err := functional.ProjectedInvoke(fn, proj, c.value)
		if err != nil {
			return len(s.values), err
		}
		b, err := truthy(op, res)
		if err != nil {
			return len(s.values), err
		}
		if b {
			return i, nil
		}
	}
	return len(s.values), nil
}

// FindIfNot returns the index of the first value whose projection does not satisfy fn.
func (s Sequence) FindIfNot(fn functional.Invocable, proj ...functional.Invocable) (int, error) {
	return s.findIf("find_if_not", negated{fn: fn}, normalizeProjection(proj))
}

// Find returns the index of the first value v with comp(proj(v), value).
// A nil comp compares with ==. Values comp cannot take do not match.
func (s Sequence) Find(value any, comp functional.Invocable, proj ...functional.Invocable) (int, error) {
	return s.findIf("find", comparer{value: unwrap(value), comp: normalizeComparer(comp)}, normalizeProjection(proj))
}

// CountIf returns the number of values whose projection satisfies fn.
func (s Sequence) CountIf(fn functional.Invocable, proj ...functional.Invocable) (int, error) {
	return s.countIf("count_if", fn, normalizeProjection(proj))
}

func (s Sequence) countIf(op string, fn, proj functional.Invocable) (int, error) {
	if len(s.values) == 0 {
		return 0, nil
	}
	if err := s.checkInvocable(op, fn, proj); err != nil {
		return 0, err
	}
	count := 0
	for _, c := range s.values {
		res, err := functional.ProjectedInvoke(fn, proj, c.value)
		if err != nil {
			return 0, err
		}
		b, err := truthy(op, res)
		if err != nil {
			return 0, err
		}
		if b {
			count++
		}
	}
	return count, nil
}

// CountIfNot returns the number of values whose projection does not satisfy fn.
func (s Sequence) CountIfNot(fn functional.Invocable, proj ...functional.Invocable) (int, error) {
	return s.countIf("count_if_not", negated{fn: fn}, normalizeProjection(proj))
}

// Count returns the number of values v with comp(proj(v), value).
func (s Sequence) Count(value any, comp functional.Invocable, proj ...functional.Invocable) (int, error) {
	return s.countIf("count", comparer{value: unwrap(value), comp: normalizeComparer(comp)}, normalizeProjection(proj))
}

// AllOf reports whether no value is a counterexample to fn.
func (s Sequence) AllOf(fn functional.Invocable, proj ...functional.Invocable) (bool, error) {
	i, err := s.FindIfNot(fn, proj...)
	return err == nil && i == s.Size(), err
}

// AnyOf reports whether some value satisfies fn.
func (s Sequence) AnyOf(fn functional.Invocable, proj ...functional.Invocable) (bool, error) {
	i, err := s.FindIf(fn, proj...)
	return err == nil && i != s.Size(), err
}

// NoneOf reports whether no value satisfies fn.
func (s Sequence) NoneOf(fn functional.Invocable, proj ...functional.Invocable) (bool, error) {
	i, err := s.FindIf(fn, proj...)
	return err == nil && i == s.Size(), err
}

// Contains reports whether Find locates value.
func (s Sequence) Contains(value any, comp functional.Invocable, proj ...functional.Invocable) (bool, error) {
	i, err := s.Find(value, comp, proj...)
	return err == nil && i != s.Size(), err
}

// AdjacentFind scans the adjacent pairs left to right and returns the number
// of pairs that did not satisfy comp(proj(left), proj(right)) before the first
// one that did, which is that pair's left index. It returns Size() when no
// pair matches or the sequence has fewer than two values; in the latter case
// nothing is invoked. Pairs comp cannot take do not match.
func (s Sequence) AdjacentFind(comp functional.Invocable, proj ...functional.Invocable) (int, error) {
	p := normalizeProjection(proj)
	n := len(s.values)
	if n < 2 {
		return n, nil
	}

	pc := pairComparer{comp: normalizeComparer(comp)}
	if err := s.checkProjection("adjacent_find", pc, p); err != nil {
		return n, err
	}

	res := 0
	for i := 0; i+1 < n; i++ {
		matched, err := functional.ProjectedInvoke(pc, p, s.values[i].value, s.values[i+1].value)
		if err != nil {
			return n, err
		}
		if b, _ := matched.(bool); b {
			return res, nil
		}
		res++
	}
	return n, nil
}

// Invoke calls fn with every value in order and collects the results.
// fn must accept every value; this is checked before fn runs.
func (s Sequence) Invoke(fn functional.Invocable) ([]any, error) {
	var err error
	for i, c := range s.values {
		if !fn.Accepts(c.value) {
			err = multierr.Append(err, functional.NewConstraintError("invoke", functional.ErrNotInvocable,
				"slot %d of type %T", i, c.value))
		}
	}
	if err != nil {
		return nil, err
	}

	res := make([]any, len(s.values))
	for i, c := range s.values {
		v, err := fn.Invoke(c.value)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// Transform returns a sequence of the same size with each value replaced by
// the result of a transform: either one shared by every slot, or one per slot.
// Every transform must accept its slot, checked before any runs, and every
// result must be comparable.
func (s Sequence) Transform(fns ...functional.Invocable) (Sequence, error) {
	n := len(s.values)
	if len(fns) == 0 || (len(fns) != 1 && len(fns) != n) {
		return Sequence{}, functional.NewConstraintError("transform", ErrArityMismatch,
			"%d transforms for size %d", len(fns), n)
	}
	fnAt := func(i int) functional.Invocable {
		if len(fns) == 1 {
			return fns[0]
		}
		return fns[i]
	}

	var err error
	for i, c := range s.values {
		if !functional.ProjectedInvocable(fnAt(i), functional.Identity, c.value) {
			err = multierr.Append(err, functional.NewConstraintError("transform", functional.ErrNotInvocable,
				"transform %d rejects slot of type %T", i, c.value))
		}
	}
	if err != nil {
		return Sequence{}, err
	}

	res := make([]Constant, n)
	for i, c := range s.values {
		v, err := functional.ProjectedInvoke(fnAt(i), functional.Identity, c.value)
		if err != nil {
			return Sequence{}, err
		}
		if functional.IsEmpty(v) {
			return Sequence{}, functional.NewConstraintError("transform", ErrVoidTransform, "slot %d", i)
		}
		if res[i], err = NewConstant(v); err != nil {
			return Sequence{}, err
		}
	}
	return Sequence{values: res}, nil
}
