package functional

import (
	"github.com/BlurringShadow/stdsharp/shared/helper"
	"go.uber.org/multierr"
)

// Sequenced tries its candidates in order.
//
// Candidates that do not accept the arguments are skipped. A candidate whose
// result is Void or Empty falls through to the next one. The first non-empty
// result wins; if every accepting candidate was empty the result is Empty.
type Sequenced struct {
	candidates []Invocable
}

// NewSequenced returns a Sequenced over invs.
func NewSequenced(invs ...Invocable) Sequenced {
	return Sequenced{candidates: append([]Invocable(nil), invs...)}
}

func (s Sequenced) Accepts(args ...any) bool {
	for _, c := range s.candidates {
		if c.Accepts(args...) {
			return true
		}
	}
	return false
}

func (s Sequenced) Invoke(args ...any) (any, error) {
	accepted := false
	for _, c := range s.candidates {
		if !c.Accepts(args...) {
			continue
		}
		accepted = true
		res, err := c.Invoke(args...)
		if err != nil {
			return nil, err
		}
		if IsEmpty(res) {
			continue
		}
		return res, nil
	}
	if !accepted {
		return nil, notInvocable("sequenced", args)
	}
	return Empty{}, nil
}

// EmptyInvoke accepts any arguments and returns Empty.
var EmptyInvoke Invocable = Trivial(Variadic(nil, func(...any) (any, error) {
	return Empty{}, nil
}))

// OptionalInvoke invokes fn when it accepts args and falls back to Empty otherwise.
func OptionalInvoke(fn Invocable, args ...any) (any, error) {
	return NewSequenced(fn, EmptyInvoke).Invoke(args...)
}

// True and False are type-level booleans for ConditionalInvoke.
type (
	True  struct{}
	False struct{}
)

// Bool is satisfied by True and False.
type Bool interface {
	True | False
}

// BoolValue converts a type-level boolean to a bool.
func BoolValue[C Bool]() bool {
	var c C
	_, ok := any(c).(True)
	return ok
}

// ConditionalInvoke calls then when C is True and otherwise when C is False.
func ConditionalInvoke[C Bool, R any](then, otherwise func() R) R {
	if BoolValue[C]() {
		return then()
	}
	return otherwise()
}

// Conditional is the runtime counterpart of ConditionalInvoke. Only the
// selected callable has to accept an empty argument list.
func Conditional(cond bool, then, otherwise Invocable) (any, error) {
	selected := otherwise
	if cond {
		selected = then
	}
	if !selected.Accepts() {
		return nil, notInvocable("conditional", nil)
	}
	return selected.Invoke()
}

// ConditionalInvocable reports whether Conditional would accept its callables.
func ConditionalInvocable(cond bool, then, otherwise Invocable) bool {
	if cond {
		return then.Accepts()
	}
	return otherwise.Accepts()
}

// InvokeR invokes fn and converts its result to R. A Void result never converts.
func InvokeR[R any](fn Invocable, args ...any) (R, error) {
	return helper.TypedValueOf[R](func() (any, error) {
		if !fn.Accepts(args...) {
			return nil, notInvocable("invoke_r", args)
		}
		res, err := fn.Invoke(args...)
		if err != nil {
			return nil, err
		}
		if _, ok := res.(Void); ok {
			var zero R
			return nil, NewConstraintError("invoke_r", ErrNotConvertible, "void result is not %T", zero)
		}
		return res, nil
	})
}

// ReturnableInvoke invokes fn and substitutes Empty for a Void result.
func ReturnableInvoke(fn Invocable, args ...any) (any, error) {
	if !fn.Accepts(args...) {
		return nil, notInvocable("returnable_invoke", args)
	}
	res, err := fn.Invoke(args...)
	if err != nil {
		return nil, err
	}
	if _, ok := res.(Void); ok {
		return Empty{}, nil
	}
	return res, nil
}

// Returnable is ReturnableInvoke as an Invocable taking the callable first.
var Returnable Invocable = Nodiscard(Variadic(
	func(args ...any) bool {
		if len(args) == 0 {
			return false
		}
		fn, ok := args[0].(Invocable)
		return ok && fn.Accepts(args[1:]...)
	},
	func(args ...any) (any, error) {
		return ReturnableInvoke(args[0].(Invocable), args[1:]...)
	},
))

// MergeInvoke invokes every callable without arguments, in order, and
// collects the returnable results positionally. All callables are checked
// before any of them runs.
func MergeInvoke(fns ...Invocable) (Tuple, error) {
	var err error
	for i, fn := range fns {
		if !fn.Accepts() {
			err = multierr.Append(err,
				NewConstraintError("merge_invoke", ErrNotInvocable, "candidate %d takes arguments", i))
		}
	}
	if err != nil {
		return Tuple{}, err
	}

	values := make([]any, len(fns))
	for i, fn := range fns {
		v, err := ReturnableInvoke(fn)
		if err != nil {
			return Tuple{}, err
		}
		values[i] = v
	}
	return Tuple{values: values}, nil
}
