package prop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	f := And(Or(Var("a"), Not(Var("b"))), Not(Var("c")))
	const expected = "((a | ~b) & ~c)"
	if f.String() != expected {
		t.Errorf("string representation of formula not as expected: wanted %q, got %q", expected, f.String())
	}
}

func TestEvalImplies(t *testing.T) {
	f := Implies(Var("l"), Var("r"))
	for _, l := range []bool{true, false} {
		for _, r := range []bool{true, false} {
			want := !(l && !r)
			assert.Equal(t, want, f.Eval(map[string]bool{"l": l, "r": r}), "l=%t r=%t", l, r)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		expr  string
		model map[string]bool
		want  bool
	}{
		{"P & Q", map[string]bool{"P": true, "Q": true}, true},
		{"P & Q", map[string]bool{"P": true, "Q": false}, false},
		{"P | Q", map[string]bool{"P": false, "Q": true}, true},
		{"P | Q", map[string]bool{"P": false, "Q": false}, false},
		{"~P", map[string]bool{"P": false}, true},
		{"~~P", map[string]bool{"P": true}, true},
		{"(P | Q) -> R", map[string]bool{"P": true, "Q": false, "R": false}, false},
		{"P -> Q -> P", map[string]bool{"P": true, "Q": false}, true},
		// Unbound variables are false.
		{"P", map[string]bool{}, false},
		{"~P", nil, true},
	}
	for _, tt := range tests {
		f := MustParse(tt.expr)
		assert.Equal(t, tt.want, f.Eval(tt.model), "%s under %v", tt.expr, tt.model)
	}
}

func TestEvalStrict(t *testing.T) {
	f := MustParse("P -> Q")
	res, err := EvalStrict(f, map[string]bool{"P": true, "Q": true})
	require.NoError(t, err)
	assert.True(t, res)

	_, err = EvalStrict(f, map[string]bool{"P": true})
	var uerr *UnboundError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "Q", uerr.Name)
}

func TestVars(t *testing.T) {
	vars := Vars(MustParse("(P | Q) -> R"), MustParse("P"), MustParse("~R & S"), MustParse("Q -> T"))
	assert.Equal(t, []string{"P", "Q", "R", "S", "T"}, vars)
	assert.Empty(t, Vars())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(MustParse("a & b -> c"), MustParse("((a & b)) -> (c)")))
	assert.False(t, Equal(MustParse("a & b"), MustParse("b & a")))
}

func ExampleTree() {
	fmt.Println(Tree(MustParse("~P & Q -> R")))
	// Output:
	// IMPLIES
	// └── AND
	// │   └── NOT
	// │   │   └── VAR(P)
	// │   └── VAR(Q)
	// └── VAR(R)
}
