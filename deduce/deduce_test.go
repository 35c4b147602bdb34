package deduce

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gopherproof/prop"
)

func parseAll(exprs ...string) []prop.Formula {
	res := make([]prop.Formula, len(exprs))
	for i, expr := range exprs {
		res[i] = prop.MustParse(expr)
	}
	return res
}

type stepLine struct {
	text, justification string
}

func lines(steps []Step) []stepLine {
	res := make([]stepLine, len(steps))
	for i, step := range steps {
		res[i] = stepLine{step.Text, step.Justification}
	}
	return res
}

func TestChainRules(t *testing.T) {
	tests := []struct {
		name     string
		premises []string
		goal     string
		rule     Rule
		ref      string
	}{
		{"modus ponens", []string{"P -> Q", "P"}, "Q", ModusPonens, "1, 2"},
		{"modus tollens", []string{"P -> Q", "~Q"}, "~P", ModusTollens, "1, 2"},
		{"hypothetical syllogism", []string{"P -> Q", "Q -> R"}, "P -> R", HypotheticalSyllogism, "1, 2"},
		{"disjunctive syllogism left", []string{"P | Q", "~P"}, "Q", DisjunctiveSyllogism, "1, 2"},
		{"disjunctive syllogism right", []string{"~Q", "P | Q"}, "P", DisjunctiveSyllogism, "2, 1"},
		{"simplification", []string{"P & Q"}, "Q", Simplification, "1"},
		{"compound antecedent", []string{"P & Q -> R", "P & Q"}, "R", ModusPonens, "1, 2"},
		{"tollens on compound", []string{"P -> Q | R", "~(Q | R)"}, "~P", ModusTollens, "1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := prop.MustParse(tt.goal)
			run := Chain(parseAll(tt.premises...), nil, goal, Options{})
			require.True(t, run.Found)
			assert.Equal(t, 1, run.Passes)
			fact, ok := run.Fact(goal)
			require.True(t, ok)
			assert.Equal(t, tt.rule, fact.Rule)
			assert.Equal(t, tt.ref, fact.Ref)
			assert.Equal(t, run.Order[len(run.Order)-1], fact.Key(), "search must stop as soon as the goal is derived")
		})
	}
}

func TestChainPremisesAreFacts(t *testing.T) {
	run := Chain(parseAll("P", "Q -> R", "P"), nil, prop.MustParse("P"), Options{})
	assert.True(t, run.Found)
	assert.Equal(t, 0, run.Passes)
	assert.Equal(t, []string{"P", "(Q -> R)"}, run.Order)
	assert.Equal(t, 2, run.Initial)
	fact, _ := run.Fact(prop.MustParse("Q -> R"))
	assert.Equal(t, "Premise 2", fact.Justification())
	assert.Equal(t, 2, fact.Seq)
}

func TestChainAssumption(t *testing.T) {
	run := Chain(parseAll("P -> Q"), parseAll("P"), prop.MustParse("Q"), Options{})
	require.True(t, run.Found)
	fact, _ := run.Fact(prop.Var("P"))
	assert.Equal(t, Assumption, fact.Rule)
	assert.Equal(t, "Assumption", fact.Justification())
	fact, _ = run.Fact(prop.Var("Q"))
	assert.Equal(t, "Modus Ponens (1, 2)", fact.Justification())
	assert.Equal(t, []string{"(P -> Q)", "P"}, fact.From)
}

// Facts derived during a pass are only used as antecedents in the next one.
func TestChainSnapshot(t *testing.T) {
	run := Chain(parseAll("P -> Q", "Q -> R", "P"), nil, prop.MustParse("R"), Options{})
	require.True(t, run.Found)
	assert.Equal(t, 2, run.Passes)
	assert.Equal(t, []string{"(P -> Q)", "(Q -> R)", "P", "(P -> R)", "Q", "R"}, run.Order)
	fact, _ := run.Fact(prop.Var("R"))
	assert.Equal(t, "Modus Ponens (2, 5)", fact.Justification())
}

func TestChainFixedPoint(t *testing.T) {
	run := Chain(parseAll("(P | Q) -> R", "P", "~R"), nil, prop.MustParse("~Q"), Options{})
	assert.False(t, run.Found)
	assert.Equal(t, 2, run.Passes)
	assert.Equal(t, []string{"((P | Q) -> R)", "P", "~R", "~((P | Q))"}, run.Order)
	fact, _ := run.Fact(prop.MustParse("~(P | Q)"))
	assert.Equal(t, "Modus Tollens (1, 3)", fact.Justification())
}

func TestChainMaxPasses(t *testing.T) {
	premises := parseAll("P -> Q", "Q -> R", "P")
	run := Chain(premises, nil, prop.MustParse("R"), Options{MaxPasses: 1})
	assert.False(t, run.Found)
	assert.Equal(t, 1, run.Passes)
}

func TestChainTerminates(t *testing.T) {
	premises := parseAll(
		"A -> B", "B -> C", "C -> A", "A | ~B", "~C -> ~A", "B -> ~~C",
		"(A & B) -> (C | D)", "~D", "D | A", "A & (B | C)",
	)
	run := Chain(premises, nil, prop.MustParse("Z"), Options{})
	assert.False(t, run.Found)
	assert.Less(t, run.Passes, DefaultMaxPasses, "a fixed point must be reached before the safety bound")
}

func TestChainConjunctionOnlyForGoal(t *testing.T) {
	run := Chain(parseAll("P & Q"), nil, prop.MustParse("Q & P"), Options{})
	require.True(t, run.Found)
	assert.Equal(t, []string{"(P & Q)", "P", "Q", "(Q & P)"}, run.Order)
	fact, _ := run.Fact(prop.MustParse("Q & P"))
	assert.Equal(t, "Conjunction (3, 2)", fact.Justification())

	// Without a conjunctive goal, no conjunction is ever introduced.
	run = Chain(parseAll("P", "Q"), nil, prop.MustParse("R"), Options{})
	assert.Equal(t, []string{"P", "Q"}, run.Order)

	run = Chain(parseAll("P"), nil, prop.MustParse("P & P"), Options{})
	require.True(t, run.Found)
	fact, _ = run.Fact(prop.MustParse("P & P"))
	assert.Equal(t, "Conjunction (1, 1)", fact.Justification())

	// The right operand of the goal may be known before the left one.
	run = Chain(parseAll("Q", "R -> S", "R", "P"), nil, prop.MustParse("P & Q"), Options{})
	require.True(t, run.Found)
	assert.Equal(t, 1, run.Passes)
	assert.Equal(t, []string{"Q", "(R -> S)", "R", "P", "(P & Q)"}, run.Order)
	fact, _ = run.Fact(prop.MustParse("P & Q"))
	assert.Equal(t, "Conjunction (4, 1)", fact.Justification())
	_, ok := run.Fact(prop.MustParse("S"))
	assert.False(t, ok)
}

func TestProveDirect(t *testing.T) {
	proof := Prove(parseAll("P -> Q", "~Q"), prop.MustParse("~P"), Options{})
	require.True(t, proof.Derived)
	assert.Equal(t, Direct, proof.Method)
	assert.Len(t, proof.Runs, 1)
	assert.Equal(t, []stepLine{
		{"(P -> Q)", "Premise 1"},
		{"~Q", "Premise 2"},
		{"~P", "Modus Tollens (1, 2)"},
	}, lines(proof.Steps))
}

func TestProveConditional(t *testing.T) {
	proof := Prove(nil, prop.MustParse("P -> P"), Options{})
	require.True(t, proof.Derived)
	assert.Equal(t, Conditional, proof.Method)
	assert.Len(t, proof.Runs, 2)
	assert.Equal(t, []stepLine{
		{"P", "Assumption"},
		{"(P -> P)", "Conditional Proof (1, 1), discharge assumption"},
	}, lines(proof.Steps))

	proof = Prove(parseAll("P -> Q", "Q -> R", "R -> S"), prop.MustParse("P -> S"), Options{})
	require.True(t, proof.Derived)
	assert.Equal(t, Direct, proof.Method, "hypothetical syllogism derives the goal directly")

	proof = Prove(parseAll("Q"), prop.MustParse("P -> Q"), Options{})
	require.True(t, proof.Derived)
	assert.Equal(t, Conditional, proof.Method)
	assert.Equal(t, []stepLine{
		{"Q", "Premise 1"},
		{"P", "Assumption"},
		{"(P -> Q)", "Conditional Proof (2, 1), discharge assumption"},
	}, lines(proof.Steps))

	proof = Prove(parseAll("P & Q -> R"), prop.MustParse("P & Q -> R & P"), Options{})
	require.True(t, proof.Derived)
	assert.Equal(t, Conditional, proof.Method)
	assert.Equal(t, []stepLine{
		{"((P & Q) -> R)", "Premise 1"},
		{"(P & Q)", "Assumption"},
		{"R", "Modus Ponens (1, 2)"},
		{"P", "Simplification (2)"},
		{"Q", "Simplification (2)"},
		{"(R & P)", "Conjunction (3, 4)"},
		{"((P & Q) -> (R & P))", "Conditional Proof (2, 6), discharge assumption"},
	}, lines(proof.Steps))
}

func TestProveNotFound(t *testing.T) {
	// Valid by truth table, but out of reach of the rule set.
	proof := Prove(parseAll("P | Q", "P -> R", "Q -> R"), prop.MustParse("R"), Options{})
	assert.False(t, proof.Derived)
	assert.Equal(t, NoProof, proof.Method)
	assert.Empty(t, proof.Steps)
	assert.Equal(t, NotFound, proof.String())

	// The goal is not an implication: no conditional proof is tried.
	assert.Len(t, proof.Runs, 1)

	proof = Prove(parseAll("(P | Q) -> R", "P", "~R"), prop.MustParse("~Q"), Options{})
	assert.False(t, proof.Derived)
	require.Len(t, proof.Runs, 1)
	assert.Len(t, proof.Runs[0].Facts, 4)
}

func TestTrim(t *testing.T) {
	proof := Prove(parseAll("P -> Q", "Q -> R", "P", "S"), prop.MustParse("R"), Options{})
	require.True(t, proof.Derived)
	require.Len(t, proof.Steps, 7)
	trimmed := proof.Trim()
	assert.Equal(t, []stepLine{
		{"(P -> Q)", "Premise 1"},
		{"(Q -> R)", "Premise 2"},
		{"P", "Premise 3"},
		{"Q", "Modus Ponens (1, 3)"},
		{"R", "Modus Ponens (2, 4)"},
	}, lines(trimmed.Steps))
	for i, step := range trimmed.Steps {
		assert.Equal(t, i+1, step.Seq)
	}
	assert.Len(t, proof.Steps, 7, "trimming must not modify the original proof")

	proof = Prove(parseAll("Q", "T"), prop.MustParse("P -> Q"), Options{})
	assert.Equal(t, []stepLine{
		{"Q", "Premise 1"},
		{"P", "Assumption"},
		{"(P -> Q)", "Conditional Proof (2, 1), discharge assumption"},
	}, lines(proof.Trim().Steps))

	empty := Prove(nil, prop.Var("P"), Options{})
	assert.Empty(t, empty.Trim().Steps)
}

func ExampleProve() {
	premises := []prop.Formula{prop.MustParse("P -> Q"), prop.MustParse("Q -> R"), prop.MustParse("P")}
	proof := Prove(premises, prop.MustParse("R"), Options{})
	fmt.Println(proof.Method)
	for _, step := range proof.Trim().Steps {
		fmt.Printf("%d. %s [%s]\n", step.Seq, step.Text, step.Justification)
	}
	// Output:
	// direct derivation
	// 1. (P -> Q) [Premise 1]
	// 2. (Q -> R) [Premise 2]
	// 3. P [Premise 3]
	// 4. Q [Modus Ponens (1, 3)]
	// 5. R [Modus Ponens (2, 4)]
}

func ExampleProve_conditional() {
	proof := Prove(nil, prop.MustParse("P -> P"), Options{})
	fmt.Println(proof.Method)
	for _, step := range proof.Steps {
		fmt.Printf("%d. %s [%s]\n", step.Seq, step.Text, step.Justification)
	}
	// Output:
	// conditional proof
	// 1. P [Assumption]
	// 2. (P -> P) [Conditional Proof (1, 1), discharge assumption]
}
