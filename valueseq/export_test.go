package valueseq

import "github.com/BlurringShadow/stdsharp/shared/memo"

// StoreValuePlan records a plan computed for planned under the fingerprint of s.
func StoreValuePlan(op string, s, planned Sequence, indices []int) {
	valuePlans.LoadOrCompute([]memo.Key{op, s.Hash(), s.Size()}, func() valuePlan {
		return valuePlan{values: planned.values, indices: indices}
	})
}
