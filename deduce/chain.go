package deduce

import (
	"fmt"
	"strings"

	"github.com/crillab/gopherproof/prop"
)

// Rule is the name of the rule justifying a fact.
type Rule string

const (
	Premise               = Rule("Premise")
	Assumption            = Rule("Assumption")
	Simplification        = Rule("Simplification")
	ModusPonens           = Rule("Modus Ponens")
	ModusTollens          = Rule("Modus Tollens")
	HypotheticalSyllogism = Rule("Hypothetical Syllogism")
	DisjunctiveSyllogism  = Rule("Disjunctive Syllogism")
	Conjunction           = Rule("Conjunction")
	ConditionalProof      = Rule("Conditional Proof")
)

// DefaultMaxPasses is the default bound on the number of passes of a search.
const DefaultMaxPasses = 5000

// Options tune a search.
type Options struct {
	// MaxPasses bounds the number of passes over the facts. If it is 0 or negative, DefaultMaxPasses is used.
	// The search stops, without finding the goal, when the bound is reached.
	MaxPasses int
}

func (o Options) maxPasses() int {
	if o.MaxPasses <= 0 {
		return DefaultMaxPasses
	}
	return o.MaxPasses
}

// A Fact is a formula known to follow from the premises and assumptions of a search.
// Facts are never modified once created.
type Fact struct {
	Formula prop.Formula
	Rule    Rule
	Ref     string   // Free-text reference to the sources: premise index, or sequence numbers of antecedents
	From    []string // Keys of the antecedent facts, in order
	Seq     int      // Insertion order, starting at 1
}

// Key is the canonical form of the fact's formula. It identifies the fact in a Run.
func (f *Fact) Key() string {
	return f.Formula.String()
}

// Justification returns the rule and references justifying the fact, as in "Modus Ponens (1, 2)".
func (f *Fact) Justification() string {
	switch {
	case f.Ref == "":
		return string(f.Rule)
	case f.Rule == Premise:
		return string(f.Rule) + " " + f.Ref
	default:
		return fmt.Sprintf("%s (%s)", f.Rule, f.Ref)
	}
}

// A Run is the outcome of a search.
type Run struct {
	Facts   map[string]*Fact // All facts, by key
	Order   []string         // Keys of facts, in derivation order
	Initial int              // Number of facts made of premises and assumptions, at the start of Order
	Goal    string           // Key of the goal
	Found   bool             // Was the goal derived?
	Passes  int              // Number of passes run
}

// Fact returns the fact associated with the formula f, if any.
func (r *Run) Fact(f prop.Formula) (*Fact, bool) {
	fact, ok := r.Facts[f.String()]
	return fact, ok
}

// A chainer holds the state of a single search.
type chainer struct {
	run  *Run
	goal prop.Formula
	// When the goal is a conjunction, keys of its operands.
	// Only that conjunction can be introduced.
	goalConj     bool
	goalL, goalR string
}

// Chain runs a forward-chaining search for goal from the given premises and assumptions.
//
// Facts are first made of the premises, then of the assumptions. Each pass then applies
// every rule to the facts known when the pass started; facts derived during a pass only become
// subjects of rules in the next one. The search stops as soon as the goal is derived,
// after a pass that added nothing, or when opts.MaxPasses passes were run.
// Identical formulas are only recorded once, with the justification of their first derivation.
func Chain(premises, assumptions []prop.Formula, goal prop.Formula, opts Options) *Run {
	c := chainer{
		run:  &Run{Facts: make(map[string]*Fact), Goal: goal.String()},
		goal: goal,
	}
	if conj, ok := goal.(prop.Conjunction); ok {
		c.goalConj = true
		c.goalL = conj.Left.String()
		c.goalR = conj.Right.String()
	}
	for i, p := range premises {
		c.add(p, Premise, fmt.Sprintf("%d", i+1))
	}
	for _, a := range assumptions {
		c.add(a, Assumption, "")
	}
	c.run.Initial = len(c.run.Order)
	maxPasses := opts.maxPasses()
	for !c.run.Found && c.run.Passes < maxPasses {
		c.run.Passes++
		if !c.pass() {
			break
		}
	}
	return c.run
}

// add records f as a new fact, unless it is already known.
// It returns true iff f was added.
func (c *chainer) add(f prop.Formula, rule Rule, ref string, from ...string) bool {
	key := f.String()
	if _, ok := c.run.Facts[key]; ok {
		return false
	}
	c.run.Order = append(c.run.Order, key)
	c.run.Facts[key] = &Fact{
		Formula: f,
		Rule:    rule,
		Ref:     ref,
		From:    from,
		Seq:     len(c.run.Order),
	}
	if key == c.run.Goal {
		c.run.Found = true
	}
	return true
}

// derive records f as derived by rule from the given antecedent facts.
// Nothing is derived once the goal was found.
func (c *chainer) derive(f prop.Formula, rule Rule, from ...string) bool {
	if c.run.Found {
		return false
	}
	refs := make([]string, len(from))
	for i, key := range from {
		refs[i] = fmt.Sprintf("%d", c.run.Facts[key].Seq)
	}
	return c.add(f, rule, strings.Join(refs, ", "), from...)
}

// pass applies all rules once to the facts known when the pass starts.
// It returns true iff at least one fact was added.
// It returns early once the goal is found.
func (c *chainer) pass() (added bool) {
	snapshot := make([]string, len(c.run.Order))
	copy(snapshot, c.run.Order)
	for _, fk := range snapshot {
		f := c.run.Facts[fk].Formula
		if conj, ok := f.(prop.Conjunction); ok {
			added = c.derive(conj.Left, Simplification, fk) || added
			if c.run.Found {
				return true
			}
			added = c.derive(conj.Right, Simplification, fk) || added
			if c.run.Found {
				return true
			}
		}
		if c.goalConj && c.goalL == fk && c.goalR == fk {
			// Goal is A & A: the only antecedent is the fact itself.
			added = c.derive(c.goal, Conjunction, fk, fk) || added
			if c.run.Found {
				return true
			}
		}
		for _, gk := range snapshot {
			if gk == fk {
				continue
			}
			added = c.combine(fk, f, gk, c.run.Facts[gk].Formula) || added
			if c.run.Found {
				return true
			}
		}
	}
	return added
}

// combine applies the rules having two antecedents, f being the major one and g the minor one.
func (c *chainer) combine(fk string, f prop.Formula, gk string, g prop.Formula) (added bool) {
	switch f := f.(type) {
	case prop.Implication:
		antecedent := f.Left.String()
		if gk == antecedent {
			added = c.derive(f.Right, ModusPonens, fk, gk) || added
		}
		if gk == prop.Not(f.Right).String() {
			added = c.derive(prop.Not(f.Left), ModusTollens, fk, gk) || added
		}
		if g, ok := g.(prop.Implication); ok && g.Left.String() == f.Right.String() {
			added = c.derive(prop.Implies(f.Left, g.Right), HypotheticalSyllogism, fk, gk) || added
		}
	case prop.Disjunction:
		if gk == prop.Not(f.Left).String() {
			added = c.derive(f.Right, DisjunctiveSyllogism, fk, gk) || added
		}
		if gk == prop.Not(f.Right).String() {
			added = c.derive(f.Left, DisjunctiveSyllogism, fk, gk) || added
		}
	}
	if c.goalConj && (fk == c.goalL && gk == c.goalR || fk == c.goalR && gk == c.goalL) {
		// Antecedents are cited in the order of the goal operands.
		added = c.derive(c.goal, Conjunction, c.goalL, c.goalR) || added
	}
	return added
}
