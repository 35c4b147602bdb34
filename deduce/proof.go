package deduce

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/crillab/gopherproof/prop"
)

// Method is the way a proof was obtained.
type Method byte

const (
	// NoProof means no derivation was found.
	NoProof = Method(iota)
	// Direct means the goal was derived from the premises.
	Direct
	// Conditional means the goal A -> B was proved by assuming A and deriving B.
	Conditional
)

func (m Method) String() string {
	switch m {
	case NoProof:
		return "none"
	case Direct:
		return "direct derivation"
	case Conditional:
		return "conditional proof"
	default:
		panic("invalid method")
	}
}

// MarshalText makes methods appear by name in JSON and YAML outputs.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// NotFound is the message describing a failed search.
// A failed search is not a proof of invalidity: the rule set is incomplete.
const NotFound = "no derivation found: this rule set found no proof, the truth table is authoritative"

// A Step is a line of a proof.
type Step struct {
	Seq           int          `json:"seq"`
	Formula       prop.Formula `json:"-"`
	Text          string       `json:"text"`
	Justification string       `json:"justification"`
	Rule          Rule         `json:"rule"`
	Premise       int          `json:"premise,omitempty"` // Index of the premise, starting at 1, for premise steps
	From          []int        `json:"from,omitempty"`    // Sequence numbers of antecedent steps
}

// A Proof is the result of Prove.
type Proof struct {
	Goal    prop.Formula
	Derived bool
	Method  Method
	Steps   []Step // Empty unless Derived is true
	// Runs of the searches that were tried, in order.
	Runs []*Run
}

// Prove looks for a derivation of goal from the premises.
// A direct derivation is tried first. If none is found and the goal is an implication A -> B,
// B is then searched for with A as a temporary assumption. When found, a final step
// derives A -> B by discharging the assumption.
func Prove(premises []prop.Formula, goal prop.Formula, opts Options) *Proof {
	proof := &Proof{Goal: goal}
	run := Chain(premises, nil, goal, opts)
	proof.Runs = append(proof.Runs, run)
	if run.Found {
		proof.Derived = true
		proof.Method = Direct
		proof.Steps = steps(run)
		return proof
	}
	imp, ok := goal.(prop.Implication)
	if !ok {
		return proof
	}
	run = Chain(premises, []prop.Formula{imp.Left}, imp.Right, opts)
	proof.Runs = append(proof.Runs, run)
	if !run.Found {
		return proof
	}
	proof.Derived = true
	proof.Method = Conditional
	proof.Steps = steps(run)
	assumption := run.Facts[imp.Left.String()].Seq
	consequent := run.Facts[imp.Right.String()].Seq
	discharge := Step{
		Seq:     len(proof.Steps) + 1,
		Formula: goal,
		Text:    goal.String(),
		Rule:    ConditionalProof,
		From:    []int{assumption, consequent},
	}
	discharge.Justification = justification(discharge)
	proof.Steps = append(proof.Steps, discharge)
	return proof
}

// steps returns the facts of run, in order, up to its goal.
// Premises and assumptions are always included.
func steps(run *Run) []Step {
	last := run.Facts[run.Goal].Seq
	if last < run.Initial {
		last = run.Initial
	}
	res := make([]Step, 0, last)
	for _, key := range run.Order[:last] {
		fact := run.Facts[key]
		step := Step{
			Seq:     fact.Seq,
			Formula: fact.Formula,
			Text:    key,
			Rule:    fact.Rule,
		}
		if fact.Rule == Premise {
			step.Premise, _ = strconv.Atoi(fact.Ref)
		}
		for _, from := range fact.From {
			step.From = append(step.From, run.Facts[from].Seq)
		}
		step.Justification = justification(step)
		res = append(res, step)
	}
	return res
}

func justification(step Step) string {
	switch step.Rule {
	case Premise:
		return fmt.Sprintf("Premise %d", step.Premise)
	case Assumption:
		return string(Assumption)
	case ConditionalProof:
		return fmt.Sprintf("%s (%d, %d), discharge assumption", ConditionalProof, step.From[0], step.From[1])
	}
	refs := make([]string, len(step.From))
	for i, from := range step.From {
		refs[i] = fmt.Sprintf("%d", from)
	}
	return fmt.Sprintf("%s (%s)", step.Rule, strings.Join(refs, ", "))
}

// Trim returns a copy of the proof keeping only the steps the last one depends on.
// Premises and assumptions nothing depends on are dropped too, and steps are renumbered.
func (p *Proof) Trim() *Proof {
	res := *p
	if len(p.Steps) == 0 {
		return &res
	}
	needed := make(map[int]bool)
	needed[p.Steps[len(p.Steps)-1].Seq] = true
	for i := len(p.Steps) - 1; i >= 0; i-- {
		step := p.Steps[i]
		if !needed[step.Seq] {
			continue
		}
		for _, from := range step.From {
			needed[from] = true
		}
	}
	renum := make(map[int]int)
	res.Steps = nil
	for _, step := range p.Steps {
		if !needed[step.Seq] {
			continue
		}
		renum[step.Seq] = len(res.Steps) + 1
		step.Seq = renum[step.Seq]
		from := make([]int, len(step.From))
		for i, f := range step.From {
			from[i] = renum[f]
		}
		if len(from) == 0 {
			from = nil
		}
		step.From = from
		step.Justification = justification(step)
		res.Steps = append(res.Steps, step)
	}
	return &res
}

// String returns the proof as a numbered list of steps, or NotFound.
func (p *Proof) String() string {
	if !p.Derived {
		return NotFound
	}
	var sb strings.Builder
	for _, step := range p.Steps {
		fmt.Fprintf(&sb, "%d. %s\t%s\n", step.Seq, step.Text, step.Justification)
	}
	return sb.String()
}
