// Package functional provides a customizable invocation layer.
//
// Callables are exposed through the Invocable capability, which separates
// "can this be called with arguments of these types" (Accepts) from the call
// itself (Invoke). Typed Go functions are lifted with the arity-suffixed
// helpers Func0..Func3, FuncE1, FuncE2 and Action0..Action2.
//
// On top of that sit the invocation strategies:
//   - Sequenced and OptionalInvoke: try callables in order, falling through on empty results.
//   - ConditionalInvoke and Conditional: pick one of two callables by a boolean.
//   - ProjectedInvoke and Projector: project every argument before the call.
//   - InvokeR, ReturnableInvoke and MergeInvoke: shape results.
//
// A type may override an operation by implementing Customizer. ProjectedInvoke
// consults the ProjectedInvokeOp customization point before its default path:
//
//	type celsius float64
//
//	func (celsius) TagInvoke(op functional.Operation) (functional.Invocable, bool) {
//	    if op != functional.ProjectedInvokeOp {
//	        return nil, false
//	    }
//	    return functional.Variadic(nil, func(args ...any) (any, error) {
//	        return "customized", nil
//	    }), true
//	}
//
// Unsatisfied requirements are reported as *ConstraintError before the
// offending callable runs. Errors returned by user callables pass through unchanged.
package functional
