package validity

import (
	"github.com/crillab/gopherproof/prop"
)

// A SATResult is the verdict given by the SAT solver.
type SATResult struct {
	Verdict Verdict
	// Counterexample is a model of the premises that falsifies the conclusion.
	// It is nil unless Verdict is Invalid, and binds every variable of the argument.
	Counterexample map[string]bool
}

// SAT decides the validity of the argument premises ⊢ conclusion with a SAT solver.
// The premises are consistent iff their conjunction is satisfiable, and the argument is then valid iff
// the conjunction of the premises and of the negated conclusion is not.
func SAT(premises []prop.Formula, conclusion prop.Formula) SATResult {
	e := newEncoder()
	lits := make([]int, len(premises), len(premises)+1)
	for i, p := range premises {
		lits[i] = e.lit(p)
	}
	negated := -e.lit(conclusion)
	if len(lits) > 0 {
		if _, ok := e.solve(lits); !ok {
			return SATResult{Verdict: Inconsistent}
		}
	}
	model, ok := e.solve(append(lits, negated))
	if !ok {
		return SATResult{Verdict: Valid}
	}
	vars := prop.Vars(append(append([]prop.Formula{}, premises...), conclusion)...)
	counter := make(map[string]bool, len(vars))
	for _, name := range vars {
		counter[name] = model[name]
	}
	return SATResult{Verdict: Invalid, Counterexample: counter}
}
