package validity

import (
	"github.com/crillab/gophersat/solver"

	"github.com/crillab/gopherproof/prop"
)

// An encoder translates formulas into clauses with the Tseitin transformation:
// each compound subformula gets a fresh variable equivalent to it.
// The defining clauses are satisfiable on their own, so formulas are asserted or
// denied by adding a unit clause on their literal.
type encoder struct {
	vars    map[string]int // Problem variables, by name
	defs    map[string]int // Literals of compound subformulas, by canonical form
	nbVars  int
	clauses [][]int
}

func newEncoder() *encoder {
	return &encoder{vars: make(map[string]int), defs: make(map[string]int)}
}

func (e *encoder) fresh() int {
	e.nbVars++
	return e.nbVars
}

// add appends the clause made of lits. Repeated literals are merged,
// and a clause holding both a literal and its negation is dropped.
func (e *encoder) add(lits ...int) {
	clause := make([]int, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, l2 := range clause {
			if l2 == -l {
				return
			}
			if l2 == l {
				dup = true
			}
		}
		if !dup {
			clause = append(clause, l)
		}
	}
	e.clauses = append(e.clauses, clause)
}

// lit returns a literal equivalent to f, adding the clauses defining it if needed.
func (e *encoder) lit(f prop.Formula) int {
	switch f := f.(type) {
	case prop.Variable:
		v, ok := e.vars[f.Name]
		if !ok {
			v = e.fresh()
			e.vars[f.Name] = v
		}
		return v
	case prop.Negation:
		return -e.lit(f.Operand)
	}
	key := f.String()
	if d, ok := e.defs[key]; ok {
		return d
	}
	var d int
	switch f := f.(type) {
	case prop.Conjunction:
		a, b := e.lit(f.Left), e.lit(f.Right)
		d = e.fresh()
		e.add(-d, a)
		e.add(-d, b)
		e.add(d, -a, -b)
	case prop.Disjunction:
		a, b := e.lit(f.Left), e.lit(f.Right)
		d = e.fresh()
		e.add(-d, a, b)
		e.add(d, -a)
		e.add(d, -b)
	case prop.Implication:
		a, b := e.lit(f.Left), e.lit(f.Right)
		d = e.fresh()
		e.add(-d, -a, b)
		e.add(d, a)
		e.add(d, -b)
	default:
		panic("invalid formula type")
	}
	e.defs[key] = d
	return d
}

// solve looks for a model where all the given literals are true.
// It returns the binding of every problem variable, or false if there is none.
func (e *encoder) solve(lits []int) (model map[string]bool, ok bool) {
	if len(lits) == 0 {
		// Definitions alone are always satisfiable.
		return make(map[string]bool), true
	}
	clauses := make([][]int, 0, len(e.clauses)+len(lits))
	clauses = append(clauses, e.clauses...)
	for _, l := range lits {
		clauses = append(clauses, []int{l})
	}
	s := solver.New(solver.ParseSlice(clauses))
	if s.Solve() != solver.Sat {
		return nil, false
	}
	m := s.Model()
	model = make(map[string]bool, len(e.vars))
	for name, v := range e.vars {
		if v-1 < len(m) {
			model[name] = m[v-1]
		}
	}
	return model, true
}
