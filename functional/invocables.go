package functional

import "github.com/BlurringShadow/stdsharp/shared/helper"

// Invocable is a type-erased callable.
//
// Accepts reports whether the callable can be invoked with arguments of the
// given dynamic types; it must not depend on argument values. Invoke returns
// a *ConstraintError wrapping ErrNotInvocable when Accepts is false, and
// otherwise whatever the underlying callable returns.
type Invocable interface {
	Accepts(args ...any) bool
	Invoke(args ...any) (any, error)
}

// Empty is the canonical empty result.
type Empty struct{}

// Void is returned by callables that produce no result.
type Void struct{}

// IsEmpty reports whether v is the Empty or Void marker.
func IsEmpty(v any) bool {
	switch v.(type) {
	case Empty, Void:
		return true
	}
	return false
}

type invocable struct {
	arity   int
	accepts func(args []any) bool
	invoke  func(args []any) (any, error)
}

func (f invocable) Accepts(args ...any) bool {
	if f.arity >= 0 && len(args) != f.arity {
		return false
	}
	return f.accepts(args)
}

func (f invocable) Invoke(args ...any) (any, error) {
	if !f.Accepts(args...) {
		return nil, notInvocable("invoke", args)
	}
	return f.invoke(args)
}

func is[T any](v any) bool {
	if _, ok := v.(T); ok {
		return true
	}
	var zero T
	// untyped nil is a valid argument for interface parameters
	return v == nil && any(zero) == nil
}

func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

func always([]any) bool { return true }

// Func0 lifts a function without parameters.
func Func0[R any](fn func() R) Invocable {
	return invocable{
		arity:   0,
		accepts: always,
		invoke: func([]any) (any, error) {
			return fn(), nil
		},
	}
}

// Func1 lifts a unary function.
func Func1[A, R any](fn func(A) R) Invocable {
	return invocable{
		arity: 1,
		accepts: func(args []any) bool {
			return is[A](args[0])
		},
		invoke: func(args []any) (any, error) {
			return fn(as[A](args[0])), nil
		},
	}
}

// Func2 lifts a binary function.
func Func2[A, B, R any](fn func(A, B) R) Invocable {
	return invocable{
		arity: 2,
		accepts: func(args []any) bool {
			return is[A](args[0]) && is[B](args[1])
		},
		invoke: func(args []any) (any, error) {
			return fn(as[A](args[0]), as[B](args[1])), nil
		},
	}
}

// Func3 lifts a ternary function.
func Func3[A, B, C, R any](fn func(A, B, C) R) Invocable {
	return invocable{
		arity: 3,
		accepts: func(args []any) bool {
			return is[A](args[0]) && is[B](args[1]) && is[C](args[2])
		},
		invoke: func(args []any) (any, error) {
			return fn(as[A](args[0]), as[B](args[1]), as[C](args[2])), nil
		},
	}
}

// FuncE1 lifts a unary function that can fail. Its error is returned unchanged.
func FuncE1[A, R any](fn func(A) (R, error)) Invocable {
	return invocable{
		arity: 1,
		accepts: func(args []any) bool {
			return is[A](args[0])
		},
		invoke: func(args []any) (any, error) {
			return fn(as[A](args[0]))
		},
	}
}

// FuncE2 lifts a binary function that can fail. Its error is returned unchanged.
func FuncE2[A, B, R any](fn func(A, B) (R, error)) Invocable {
	return invocable{
		arity: 2,
		accepts: func(args []any) bool {
			return is[A](args[0]) && is[B](args[1])
		},
		invoke: func(args []any) (any, error) {
			return fn(as[A](args[0]), as[B](args[1]))
		},
	}
}

// Action0 lifts a function without parameters or result. It yields Void.
func Action0(fn func()) Invocable {
	return invocable{
		arity:   0,
		accepts: always,
		invoke: func([]any) (any, error) {
			fn()
			return Void{}, nil
		},
	}
}

// Action1 lifts a unary function without result. It yields Void.
func Action1[A any](fn func(A)) Invocable {
	return invocable{
		arity: 1,
		accepts: func(args []any) bool {
			return is[A](args[0])
		},
		invoke: func(args []any) (any, error) {
			fn(as[A](args[0]))
			return Void{}, nil
		},
	}
}

// Action2 lifts a binary function without result. It yields Void.
func Action2[A, B any](fn func(A, B)) Invocable {
	return invocable{
		arity: 2,
		accepts: func(args []any) bool {
			return is[A](args[0]) && is[B](args[1])
		},
		invoke: func(args []any) (any, error) {
			fn(as[A](args[0]), as[B](args[1]))
			return Void{}, nil
		},
	}
}

// Variadic wraps a callable over raw arguments. A nil accepts admits every argument list.
func Variadic(accepts func(args ...any) bool, fn func(args ...any) (any, error)) Invocable {
	acc := always
	if accepts != nil {
		acc = func(args []any) bool { return accepts(args...) }
	}
	return invocable{
		arity:   -1,
		accepts: acc,
		invoke: func(args []any) (any, error) {
			return fn(args...)
		},
	}
}

// TrivialInvocable marks a callable as a plain stateless function object.
type TrivialInvocable struct {
	Invocable
}

// NodiscardInvocable marks a callable whose result must be used.
type NodiscardInvocable struct {
	Invocable
}

// Trivial tags inv as trivial. Behavior is unchanged.
func Trivial(inv Invocable) TrivialInvocable {
	return TrivialInvocable{Invocable: inv}
}

// Nodiscard tags inv as nodiscard. Behavior is unchanged.
func Nodiscard(inv Invocable) NodiscardInvocable {
	return NodiscardInvocable{Invocable: inv}
}

// IsNodiscard reports whether inv carries the nodiscard tag.
func IsNodiscard(inv Invocable) bool {
	_, ok := inv.(NodiscardInvocable)
	return ok
}

type overloaded []Invocable

// Overloaded combines callables into one overload set. Exactly one member
// must accept a given argument list.
func Overloaded(invs ...Invocable) Invocable {
	return overloaded(append([]Invocable(nil), invs...))
}

func (o overloaded) candidates(args []any) []Invocable {
	var res []Invocable
	for _, inv := range o {
		if inv.Accepts(args...) {
			res = append(res, inv)
		}
	}
	return res
}

func (o overloaded) Accepts(args ...any) bool {
	return len(o.candidates(args)) == 1
}

func (o overloaded) Invoke(args ...any) (any, error) {
	switch c := o.candidates(args); len(c) {
	case 0:
		return nil, notInvocable("overload", args)
	case 1:
		return c[0].Invoke(args...)
	default:
		return nil, NewConstraintError("overload", ErrAmbiguousOverload,
			"%d candidates for %s", len(c), typeList(args))
	}
}

// Identity returns its single argument unchanged.
var Identity Invocable = Trivial(Func1(func(v any) any { return v }))

// EqualTo compares two values with ==. Values of different dynamic types are
// unequal; values that are not comparable are never equal.
var EqualTo Invocable = Trivial(Func2(func(a, b any) bool {
	if !helper.IsComparable(a) {
		return false
	}
	return a == b
}))
