// Package deduce searches for natural-deduction proofs of propositional arguments.
//
// The search is forward chaining: starting from the premises, and possibly from temporary
// assumptions, a closed set of inference rules is applied over and over until either the goal is
// derived or a full pass over the known facts produces nothing new. The rules are:
//
// - Simplification: from A & B, derive A and B,
// - Modus Ponens: from A -> B and A, derive B,
// - Modus Tollens: from A -> B and ~B, derive ~A,
// - Hypothetical Syllogism: from A -> B and B -> C, derive A -> C,
// - Disjunctive Syllogism: from A | B and ~A, derive B; from A | B and ~B, derive A,
// - Conjunction: from A and B, derive A & B, only when A & B is the goal itself.
//
// Conjunction is restricted to the goal so the set of facts stays finite and small.
// On top of these, Prove tries one level of conditional proof: to prove A -> B, it assumes A,
// derives B, then discharges the assumption.
//
// The rule set is closed on purpose and is not complete for propositional logic: there is no proof
// by contradiction, for instance. When no derivation is found, nothing can be concluded about the
// validity of the argument; a truth table is the authority on that question.
package deduce
