// Package valueseq provides Sequence, an immutable ordered list of constants
// with a closed set of algorithms.
//
// Constants may have different types per slot. Callbacks receive the raw
// values and are supplied as functional.Invocable, optionally preceded by a
// projection; every callback goes through functional.ProjectedInvoke and so
// honours customizations of projected invocation.
//
// Requirements are checked before callbacks run and reported as
// *functional.ConstraintError. The comparator forms (Find, Count, Contains,
// AdjacentFind) are lenient instead: a value the comparator cannot take simply
// does not match, which makes heterogeneous sequences searchable.
//
//	seq := valueseq.Values(3, 1, 4, 1, 5)
//	i, _ := seq.Find(1, nil)     // 1
//	n, _ := seq.Count(1, nil)    // 2
//	u := seq.Unique()            // [3 1 4 5]
//	r := seq.Reverse()           // [5 1 4 1 3]
//
// Structural operations (Front, Back, Insert, RemoveAt, Replace, ...) never
// modify the receiver. Index plans of Reverse, RemoveAt and Unique are
// memoized, so repeated use with the same input is computed once.
package valueseq
