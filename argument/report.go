package argument

import (
	"encoding/json"

	"github.com/crillab/gopherproof/deduce"
	"github.com/crillab/gopherproof/prop"
	"github.com/crillab/gopherproof/validity"
)

// A Summary is the serializable view of a Report.
type Summary struct {
	ID             string           `json:"id"`
	Name           string           `json:"name,omitempty"`
	Premises       []string         `json:"premises"`
	Conclusion     string           `json:"conclusion"`
	Vars           []string         `json:"vars"`
	Verdict        validity.Verdict `json:"verdict"`
	Vacuous        bool             `json:"vacuous,omitempty"`
	Counterexample map[string]bool  `json:"counterexample,omitempty"`
	Core           []int            `json:"core,omitempty"` // Premise numbers, starting at 1
	Rows           int              `json:"rows,omitempty"` // Size of the truth table, 0 if it was not built
	Derived        bool             `json:"derived"`
	Method         deduce.Method    `json:"method"`
	Message        string           `json:"message,omitempty"`
	Steps          []deduce.Step    `json:"steps,omitempty"`
}

// Summary returns the serializable view of r.
// Formulas appear in canonical form. If trim is true, the proof is trimmed first.
func (r *Report) Summary(trim bool) Summary {
	proof := r.Proof
	if trim {
		proof = proof.Trim()
	}
	s := Summary{
		ID:             r.ID,
		Name:           r.Argument.Name,
		Premises:       make([]string, len(r.Premises)),
		Conclusion:     r.Conclusion.String(),
		Verdict:        r.Verdict,
		Vacuous:        r.Vacuous(),
		Counterexample: r.Counterexample,
		Derived:        proof.Derived,
		Method:         proof.Method,
		Steps:          proof.Steps,
	}
	for i, p := range r.Premises {
		s.Premises[i] = p.String()
	}
	for _, i := range r.Core {
		s.Core = append(s.Core, i+1)
	}
	if r.Table != nil {
		s.Vars = r.Table.Vars
		s.Rows = len(r.Table.Rows)
	} else {
		s.Vars = r.vars()
	}
	if !proof.Derived {
		s.Message = deduce.NotFound
	}
	return s
}

// MarshalJSON encodes the untrimmed summary of r.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Summary(false))
}

func (r *Report) vars() []string {
	return prop.Vars(append(append([]prop.Formula{}, r.Premises...), r.Conclusion)...)
}
