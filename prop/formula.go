package prop

import (
	"strings"
)

// A Formula is a propositional formula: a variable, a negation, a conjunction,
// a disjunction or an implication.
// Formulas are immutable values; subformulas may be shared freely.
type Formula interface {
	// String returns the canonical form of the formula.
	String() string
	// Eval returns the truth value of the formula under the given model.
	// Variables that are not bound by the model are false.
	Eval(model map[string]bool) bool
	vars(seen map[string]bool, res []string) []string
}

// Variable is an atomic proposition.
type Variable struct {
	Name string
}

// Var generates a named boolean variable in a formula.
func Var(name string) Formula {
	return Variable{Name: name}
}

func (v Variable) String() string {
	return v.Name
}

func (v Variable) Eval(model map[string]bool) bool {
	return model[v.Name]
}

func (v Variable) vars(seen map[string]bool, res []string) []string {
	if seen[v.Name] {
		return res
	}
	seen[v.Name] = true
	return append(res, v.Name)
}

// Negation is the negation of its operand.
type Negation struct {
	Operand Formula
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return Negation{Operand: f}
}

// String writes "~x" when the operand is a variable, "~(...)" otherwise.
func (n Negation) String() string {
	if v, ok := n.Operand.(Variable); ok {
		return "~" + v.Name
	}
	return "~(" + n.Operand.String() + ")"
}

func (n Negation) Eval(model map[string]bool) bool {
	return !n.Operand.Eval(model)
}

func (n Negation) vars(seen map[string]bool, res []string) []string {
	return n.Operand.vars(seen, res)
}

// Conjunction is true iff both its subformulas are.
type Conjunction struct {
	Left, Right Formula
}

// And generates the conjunction of two subformulas.
func And(left, right Formula) Formula {
	return Conjunction{Left: left, Right: right}
}

func (a Conjunction) String() string {
	return binary(a.Left, "&", a.Right)
}

func (a Conjunction) Eval(model map[string]bool) bool {
	return a.Left.Eval(model) && a.Right.Eval(model)
}

func (a Conjunction) vars(seen map[string]bool, res []string) []string {
	return a.Right.vars(seen, a.Left.vars(seen, res))
}

// Disjunction is true iff at least one of its subformulas is.
type Disjunction struct {
	Left, Right Formula
}

// Or generates the disjunction of two subformulas.
func Or(left, right Formula) Formula {
	return Disjunction{Left: left, Right: right}
}

func (o Disjunction) String() string {
	return binary(o.Left, "|", o.Right)
}

func (o Disjunction) Eval(model map[string]bool) bool {
	return o.Left.Eval(model) || o.Right.Eval(model)
}

func (o Disjunction) vars(seen map[string]bool, res []string) []string {
	return o.Right.vars(seen, o.Left.vars(seen, res))
}

// Implication is the material implication: it is false only when its
// antecedent is true and its consequent is false.
type Implication struct {
	Left, Right Formula
}

// Implies indicates a subformula implies another one.
func Implies(left, right Formula) Formula {
	return Implication{Left: left, Right: right}
}

func (i Implication) String() string {
	return binary(i.Left, "->", i.Right)
}

func (i Implication) Eval(model map[string]bool) bool {
	return !i.Left.Eval(model) || i.Right.Eval(model)
}

func (i Implication) vars(seen map[string]bool, res []string) []string {
	return i.Right.vars(seen, i.Left.vars(seen, res))
}

func binary(left Formula, op string, right Formula) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(left.String())
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	sb.WriteString(right.String())
	sb.WriteByte(')')
	return sb.String()
}

// Equal is true iff f1 and f2 have the same canonical form.
func Equal(f1, f2 Formula) bool {
	return f1.String() == f2.String()
}

// Vars returns the names of the variables appearing in the given formulas.
// Each name appears once, in the order it was first met, reading formulas left to right.
func Vars(fs ...Formula) []string {
	seen := make(map[string]bool)
	var res []string
	for _, f := range fs {
		res = f.vars(seen, res)
	}
	return res
}

// EvalStrict evaluates f under model, but fails with an *UnboundError
// if one of the variables of f is not bound by the model.
func EvalStrict(f Formula, model map[string]bool) (bool, error) {
	for _, name := range Vars(f) {
		if _, ok := model[name]; !ok {
			return false, &UnboundError{Name: name}
		}
	}
	return f.Eval(model), nil
}

func padding(depth int) string {
	if depth == 0 {
		return ""
	}
	return strings.Repeat("│   ", depth-1) + "└── "
}

// Tree returns a multi-line rendering of the structure of f, one node per line.
func Tree(f Formula) string {
	var sb strings.Builder
	tree(&sb, f, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func tree(sb *strings.Builder, f Formula, depth int) {
	sb.WriteString(padding(depth))
	switch f := f.(type) {
	case Variable:
		sb.WriteString("VAR(" + f.Name + ")\n")
	case Negation:
		sb.WriteString("NOT\n")
		tree(sb, f.Operand, depth+1)
	case Conjunction:
		sb.WriteString("AND\n")
		tree(sb, f.Left, depth+1)
		tree(sb, f.Right, depth+1)
	case Disjunction:
		sb.WriteString("OR\n")
		tree(sb, f.Left, depth+1)
		tree(sb, f.Right, depth+1)
	case Implication:
		sb.WriteString("IMPLIES\n")
		tree(sb, f.Left, depth+1)
		tree(sb, f.Right, depth+1)
	default:
		panic("invalid formula type")
	}
}
