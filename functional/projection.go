package functional

// ProjectedInvokeOp is the customization point consulted by ProjectedInvoke.
// Overrides receive (fn, proj, args...).
const ProjectedInvokeOp Operation = "stdsharp.functional.projected_invoke"

// ProjectedInvoke applies proj to every argument and invokes fn with the results.
//
// A customization of ProjectedInvokeOp provided by fn, proj or one of args
// takes precedence. Otherwise proj must accept every argument and fn must
// accept the projected values; the projection is checked for all arguments
// before it runs.
func ProjectedInvoke(fn, proj Invocable, args ...any) (any, error) {
	cpoArgs := make([]any, 0, len(args)+2)
	cpoArgs = append(cpoArgs, fn, proj)
	cpoArgs = append(cpoArgs, args...)

	override, err := ResolveCPO(ProjectedInvokeOp, cpoArgs...)
	switch {
	case err == nil:
		return override.Invoke(cpoArgs...)
	case !isNoCustomization(err):
		return nil, err
	}

	for i, a := range args {
		if !proj.Accepts(a) {
			return nil, NewConstraintError("projected_invoke", ErrNotInvocable,
				"projection rejects argument %d of type %T", i, a)
		}
	}

	projected := make([]any, len(args))
	for i, a := range args {
		p, err := proj.Invoke(a)
		if err != nil {
			return nil, err
		}
		projected[i] = p
	}

	if !fn.Accepts(projected...) {
		return nil, NewConstraintError("projected_invoke", ErrNotInvocable,
			"callable rejects projected arguments %s", typeList(projected))
	}
	return fn.Invoke(projected...)
}

// ProjectedInvocable reports whether ProjectedInvoke can call fn.
// The projection is evaluated to learn the projected types, so it must be pure.
func ProjectedInvocable(fn, proj Invocable, args ...any) bool {
	cpoArgs := make([]any, 0, len(args)+2)
	cpoArgs = append(cpoArgs, fn, proj)
	cpoArgs = append(cpoArgs, args...)
	if CPOInvocable(ProjectedInvokeOp, cpoArgs...) {
		return true
	}

	projected := make([]any, len(args))
	for i, a := range args {
		if !proj.Accepts(a) {
			return false
		}
		p, err := proj.Invoke(a)
		if err != nil {
			return false
		}
		projected[i] = p
	}
	return fn.Accepts(projected...)
}

func isNoCustomization(err error) bool {
	ce, ok := err.(*ConstraintError)
	return ok && ce.Err == ErrNoCustomization
}

// Projector owns a projection and applies it to every argument of the
// callables it invokes. It behaves the same by value, through a pointer, or
// as a temporary.
type Projector struct {
	proj Invocable
}

// MakeProjector wraps proj. A nil proj projects with Identity.
func MakeProjector(proj Invocable) Projector {
	if proj == nil {
		proj = Identity
	}
	return Projector{proj: proj}
}

// ProjectorMaker is MakeProjector as an Invocable.
var ProjectorMaker Invocable = Nodiscard(Func1(MakeProjector))

// Projection returns the embedded projection.
func (p Projector) Projection() Invocable {
	if p.proj == nil {
		return Identity
	}
	return p.proj
}

// Call invokes fn with every argument projected.
func (p Projector) Call(fn Invocable, args ...any) (any, error) {
	return ProjectedInvoke(fn, p.Projection(), args...)
}

// Accepts expects the main callable first, followed by its arguments.
func (p Projector) Accepts(args ...any) bool {
	if len(args) == 0 {
		return false
	}
	fn, ok := args[0].(Invocable)
	return ok && ProjectedInvocable(fn, p.Projection(), args[1:]...)
}

// Invoke is Call with the main callable passed as the first argument.
func (p Projector) Invoke(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, notInvocable("projector", args)
	}
	fn, ok := args[0].(Invocable)
	if !ok {
		return nil, notInvocable("projector", args)
	}
	return p.Call(fn, args[1:]...)
}
