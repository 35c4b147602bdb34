// Package validity decides whether a conclusion follows from a set of premises.
//
// An argument is valid when every model of all its premises is also a model of its conclusion.
// When no model satisfies all premises at once, the premises are inconsistent and the argument is
// only vacuously valid: this is reported as a distinct verdict.
//
// Two deciders are provided. TruthTable enumerates every assignment of the variables, and keeps
// the whole table so it can be displayed. Its cost is exponential in the number of variables: this
// is a stated limit, and tables over more than MaxVars variables are refused with ErrTooManyVars.
// The limit can be raised up to MaxTableVars.
// SAT gives the same verdict, with a counter-model when there is one, by handing a Tseitin
// encoding of the question to the gophersat SAT solver; it does not build a table and scales to
// much larger arguments.
//
// Core tells which premises a verdict actually rests on.
package validity
