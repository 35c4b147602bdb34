// Package prop defines propositional formulas and the textual syntax used to write them.
//
// A formula is built from variables with four connectives. From the tightest-binding to
// the loosest-binding, they are written:
//
// - "~" for a negation, a unary prefix operator,
// - "&" for a conjunction,
// - "|" for a disjunction,
// - "->" for an implication, which associates to the right.
//
// Conjunctions and disjunctions associate to the left. Parentheses can be used to group subformulas.
// Any other run of non-blank characters is a variable name.
//
// For example, the following text:
//
// ~P & Q | R -> S -> T
//
// is parsed as the formula built by
//
// f := Implies(Or(And(Not(Var("P")), Var("Q")), Var("R")), Implies(Var("S"), Var("T")))
//
// Every formula has a canonical string form, where each binary connective is fully
// parenthesized:
//
// (((~P & Q) | R) -> (S -> T))
//
// Two formulas are considered the same iff their canonical forms are equal. Parsing the canonical
// form of a formula always yields a formula with the same canonical form.
package prop
