package validity

import (
	"github.com/crillab/gopherproof/prop"
)

// Core returns the indices of a minimal subset of premises the verdict depends on.
//
// If the premises are inconsistent, the subset is itself inconsistent.
// If the argument is valid, the conclusion follows from the subset alone.
// Removing any premise from the subset breaks that property.
// If the argument is invalid, Core returns nil.
//
// The subset is found with the deletion method: each premise is removed in turn,
// and put back if the property no longer holds. This costs one SAT call per premise.
// The returned subset is minimal, but not necessarily the smallest one.
func Core(premises []prop.Formula, conclusion prop.Formula) []int {
	e := newEncoder()
	subs := make([]int, len(premises))
	for i, p := range premises {
		subs[i] = e.lit(p)
	}
	negated := -e.lit(conclusion)
	unsat := func(kept []bool, withConclusion bool) bool {
		lits := make([]int, 0, len(subs)+1)
		for i, l := range subs {
			if kept[i] {
				lits = append(lits, l)
			}
		}
		if withConclusion {
			lits = append(lits, negated)
		}
		_, ok := e.solve(lits)
		return !ok
	}
	kept := make([]bool, len(subs))
	for i := range kept {
		kept[i] = true
	}
	var withConclusion bool
	switch {
	case unsat(kept, false):
		withConclusion = false
	case unsat(kept, true):
		withConclusion = true
	default:
		return nil
	}
	for i := range kept {
		kept[i] = false
		if !unsat(kept, withConclusion) {
			kept[i] = true
		}
	}
	res := []int{}
	for i, k := range kept {
		if k {
			res = append(res, i)
		}
	}
	return res
}
