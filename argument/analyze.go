package argument

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/crillab/gopherproof/deduce"
	"github.com/crillab/gopherproof/prop"
	"github.com/crillab/gopherproof/validity"
)

// Options tune an analysis.
type Options struct {
	// MaxVars is the maximum number of variables of a truth table. See validity.TruthTable.
	MaxVars int
	// MaxPasses bounds the proof search. See deduce.Options.
	MaxPasses int
	// Logger receives debug information about each stage. If nil, nothing is logged.
	Logger *slog.Logger
}

// A Report is the outcome of the analysis of an argument.
type Report struct {
	ID         string
	Argument   Argument
	Premises   []prop.Formula
	Conclusion prop.Formula
	// Table is the truth table of the argument, or nil if it has too many variables.
	Table *validity.Table
	// SAT is the verdict of the SAT solver.
	// When Table is not nil, Verdict comes from the table; a disagreement between the two is logged as an error.
	SAT validity.SATResult
	// Verdict is the validity status of the argument.
	Verdict validity.Verdict
	// Counterexample is an assignment refuting the argument, when it is invalid.
	Counterexample map[string]bool
	// Core holds the indices, starting at 0, of a minimal set of premises the verdict depends on.
	// It is nil when the argument is invalid.
	Core  []int
	Proof *deduce.Proof
}

// Vacuous is true iff the argument is only valid because its premises are inconsistent.
func (r *Report) Vacuous() bool {
	return r.Verdict == validity.Inconsistent
}

// Analyze parses a, decides its validity and searches for a proof.
// The only errors are input errors: see Argument.Parse.
// Failing to find a proof is not an error.
func Analyze(a Argument, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	parsed, err := a.Parse()
	if err != nil {
		return nil, err
	}
	r := &Report{
		ID:         uuid.NewString(),
		Argument:   a,
		Premises:   parsed.Premises,
		Conclusion: parsed.Conclusion,
	}
	logger = logger.With("run_id", r.ID)
	logger.Debug("parsed argument", "premises", len(r.Premises), "conclusion", r.Conclusion.String())

	r.SAT = validity.SAT(r.Premises, r.Conclusion)
	r.Verdict = r.SAT.Verdict
	r.Counterexample = r.SAT.Counterexample
	logger.Debug("sat check", "verdict", r.SAT.Verdict.String())

	tbl, err := validity.TruthTable(r.Premises, r.Conclusion, opts.MaxVars)
	switch {
	case errors.Cause(err) == validity.ErrTooManyVars:
		logger.Debug("truth table skipped", "error", err)
	case err != nil:
		return nil, err
	default:
		r.Table = tbl
		r.Verdict = tbl.Verdict
		r.Counterexample, _ = tbl.Counterexample()
		logger.Debug("truth table", "vars", len(tbl.Vars), "rows", len(tbl.Rows), "verdict", tbl.Verdict.String())
		if tbl.Verdict != r.SAT.Verdict {
			logger.Error("truth table and sat solver disagree", "table", tbl.Verdict.String(), "sat", r.SAT.Verdict.String())
		}
	}

	if r.Verdict != validity.Invalid {
		r.Core = validity.Core(r.Premises, r.Conclusion)
		logger.Debug("core", "premises", len(r.Core))
	}

	r.Proof = deduce.Prove(r.Premises, r.Conclusion, deduce.Options{MaxPasses: opts.MaxPasses})
	for i, run := range r.Proof.Runs {
		logger.Debug("proof search", "attempt", i+1, "passes", run.Passes, "facts", len(run.Order), "found", run.Found)
	}
	logger.Debug("proof", "derived", r.Proof.Derived, "method", r.Proof.Method.String())
	return r, nil
}
