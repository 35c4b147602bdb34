package validity

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/crillab/gopherproof/prop"
)

// Verdict is the validity status of an argument.
type Verdict byte

const (
	// Inconsistent means no assignment satisfies all premises: the argument is vacuously valid.
	Inconsistent = Verdict(iota)
	// Valid means every assignment satisfying all premises satisfies the conclusion.
	Valid
	// Invalid means at least one assignment satisfies all premises but not the conclusion.
	Invalid
)

func (v Verdict) String() string {
	switch v {
	case Inconsistent:
		return "inconsistent"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		panic("invalid verdict")
	}
}

// MarshalText makes verdicts appear by name in JSON and YAML outputs.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// MaxVars is the default maximum number of variables of a truth table.
const MaxVars = 16

// MaxTableVars bounds the maxVars argument of TruthTable.
// Larger values are clamped to it.
const MaxTableVars = 30

// ErrTooManyVars is returned when a truth table would have too many rows to be built.
var ErrTooManyVars = stderrors.New("too many variables for a truth table")

// A Row is a line of a truth table.
type Row struct {
	Values     []bool // Value of each variable, in the order of Table.Vars
	Premises   bool   // Are all premises true?
	Conclusion bool   // Is the conclusion true?
}

// A Table is the truth table of an argument.
type Table struct {
	Vars    []string // Variables, in order of first appearance
	Rows    []Row
	Verdict Verdict
}

// TruthTable builds the truth table of the argument premises ⊢ conclusion and decides its validity.
// Rows are enumerated with the first variable as the most significant one, starting from the
// assignment where all variables are true.
// If the argument has more than maxVars variables, ErrTooManyVars is returned.
// If maxVars is 0 or negative, MaxVars is used. If it is above MaxTableVars, MaxTableVars is used.
func TruthTable(premises []prop.Formula, conclusion prop.Formula, maxVars int) (*Table, error) {
	switch {
	case maxVars <= 0:
		maxVars = MaxVars
	case maxVars > MaxTableVars:
		maxVars = MaxTableVars
	}
	vars := prop.Vars(append(append([]prop.Formula{}, premises...), conclusion)...)
	nbVars := len(vars)
	if nbVars > maxVars {
		return nil, errors.Wrapf(ErrTooManyVars, "argument has %d variables, limit is %d", nbVars, maxVars)
	}
	t := &Table{Vars: vars, Rows: make([]Row, 1<<nbVars)}
	model := make(map[string]bool, nbVars)
	consistent := false
	valid := true
	for i := range t.Rows {
		values := make([]bool, nbVars)
		for j, name := range vars {
			values[j] = (i>>(nbVars-1-j))&1 == 0
			model[name] = values[j]
		}
		row := Row{Values: values, Premises: true}
		for _, p := range premises {
			if !p.Eval(model) {
				row.Premises = false
				break
			}
		}
		row.Conclusion = conclusion.Eval(model)
		if row.Premises {
			consistent = true
			if !row.Conclusion {
				valid = false
			}
		}
		t.Rows[i] = row
	}
	switch {
	case !consistent:
		t.Verdict = Inconsistent
	case valid:
		t.Verdict = Valid
	default:
		t.Verdict = Invalid
	}
	return t, nil
}

// Model returns the assignment of the i-th row.
func (t *Table) Model(i int) map[string]bool {
	model := make(map[string]bool, len(t.Vars))
	for j, name := range t.Vars {
		model[name] = t.Rows[i].Values[j]
	}
	return model
}

// Counterexamples returns the indices of the rows where all premises hold but the conclusion does not.
func (t *Table) Counterexamples() []int {
	var res []int
	for i, row := range t.Rows {
		if row.Premises && !row.Conclusion {
			res = append(res, i)
		}
	}
	return res
}

// Counterexample returns the first assignment refuting the argument, if any.
func (t *Table) Counterexample() (model map[string]bool, ok bool) {
	for i, row := range t.Rows {
		if row.Premises && !row.Conclusion {
			return t.Model(i), true
		}
	}
	return nil, false
}
