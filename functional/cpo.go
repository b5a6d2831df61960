package functional

import (
	"reflect"

	"github.com/BlurringShadow/stdsharp/config"
	"github.com/BlurringShadow/stdsharp/shared/log"
	"github.com/BlurringShadow/stdsharp/shared/memo"
	"go.uber.org/zap"
)

// Operation names a customization point.
type Operation string

// Customizer is implemented by types that override how an operation is
// invoked when a value of the type takes part in the call.
//
// TagInvoke returns the override for op, or false when the type does not
// customize it. The override receives the same arguments as the operation.
type Customizer interface {
	TagInvoke(op Operation) (Invocable, bool)
}

// candidates maps (operation, argument types...) to the positions of the
// arguments whose type provides an override for the operation.
var candidates = memo.NewTable[[]int](config.Get().MemoSize)

func init() {
	config.OnChange(func(cfg config.Config) {
		candidates.Reset(cfg.MemoSize)
	})
}

// ResolveCPO selects the override of op provided by one of args.
//
// Every argument implementing Customizer whose override for op accepts args
// is a candidate; candidates of the same dynamic type count once. No candidate
// yields ErrNoCustomization, more than one yields ErrAmbiguousCustomization.
// Which argument types customize op is computed once per operation and
// argument type list; acceptance is checked on every call.
func ResolveCPO(op Operation, args ...any) (Invocable, error) {
	keys := make([]memo.Key, 0, len(args)+1)
	keys = append(keys, op)
	for _, a := range args {
		keys = append(keys, reflect.TypeOf(a))
	}

	positions := candidates.LoadOrCompute(keys, func() []int {
		return customizers(op, args)
	})
	for _, i := range positions {
		if _, ok := args[i].(Customizer); !ok {
			positions = customizers(op, args)
			break
		}
	}
	return resolve(op, args, positions)
}

func resolve(op Operation, args []any, positions []int) (Invocable, error) {
	var (
		found     Invocable
		foundType reflect.Type
	)
	for _, i := range positions {
		override, ok := args[i].(Customizer).TagInvoke(op)
		if !ok || override == nil || !override.Accepts(args...) {
			continue
		}
		if found != nil && reflect.TypeOf(args[i]) != foundType {
			return nil, NewConstraintError(string(op), ErrAmbiguousCustomization,
				"argument types %s", typeList(args))
		}
		if found == nil {
			found, foundType = override, reflect.TypeOf(args[i])
		}
	}
	if found == nil {
		return nil, &ConstraintError{Op: string(op), Err: ErrNoCustomization}
	}
	return found, nil
}

// customizers returns the positions of the arguments that provide an override for op.
func customizers(op Operation, args []any) []int {
	var positions []int
	for i, a := range args {
		c, ok := a.(Customizer)
		if !ok {
			continue
		}
		if override, ok := c.TagInvoke(op); !ok || override == nil {
			continue
		}
		positions = append(positions, i)
	}

	log.L().Debug("customization point resolved",
		zap.String("op", string(op)),
		zap.String("arguments", typeList(args)),
		zap.Ints("candidates", positions),
	)
	return positions
}

// CPOInvocable reports whether some argument customizes op for args.
func CPOInvocable(op Operation, args ...any) bool {
	_, err := ResolveCPO(op, args...)
	return err == nil
}

// CPO invokes the override of op selected by ResolveCPO.
func CPO(op Operation, args ...any) (any, error) {
	override, err := ResolveCPO(op, args...)
	if err != nil {
		return nil, err
	}
	return override.Invoke(args...)
}
