package functional

import (
	"errors"
	"fmt"

	"github.com/BlurringShadow/stdsharp/shared/helper"
	"github.com/BlurringShadow/stdsharp/shared/indexset"
	"github.com/BlurringShadow/stdsharp/shared/log"
	"go.uber.org/zap"
)

var (
	ErrNotInvocable           = errors.New("not invocable with the given arguments")
	ErrAmbiguousOverload      = errors.New("more than one overload accepts the given arguments")
	ErrNoCustomization        = errors.New("no customization for this operation")
	ErrAmbiguousCustomization = errors.New("more than one argument customizes this operation")
	ErrNotConvertible         = helper.ErrUnexpectedType
	ErrIndexOutOfRange        = indexset.ErrIndexOutOfRange
)

// ConstraintError reports an unmet invocability, arity or range requirement.
// It is returned before the offending callable runs and unwraps to one of the
// sentinel errors of this package or of the package that raised it.
type ConstraintError struct {
	Op     string
	Err    error
	Detail string
}

func (e *ConstraintError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// NewConstraintError builds a ConstraintError and records it at debug level.
func NewConstraintError(op string, sentinel error, format string, args ...any) *ConstraintError {
	err := &ConstraintError{
		Op:     op,
		Err:    sentinel,
		Detail: fmt.Sprintf(format, args...),
	}
	log.L().Debug("constraint unsatisfied",
		zap.String("op", op),
		zap.Error(sentinel),
		zap.String("detail", err.Detail),
	)
	return err
}

func notInvocable(op string, args []any) *ConstraintError {
	return NewConstraintError(op, ErrNotInvocable, "argument types %s", typeList(args))
}

func typeList(args []any) string {
	s := "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%T", a)
	}
	return s + ")"
}
