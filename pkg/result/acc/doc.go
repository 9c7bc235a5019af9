// Package acc combines 2 to 9 independent fallible computations, collecting
// every failure instead of stopping at the first one.
//
// Unlike a FlatMap chain, AccumulateN evaluates all N computations
// unconditionally and in argument order. When one or more fail the outcome
// is a single failure holding a non-empty result.Errors list matching
// argument order and the transform never runs; when all succeed the
// transform is applied to the N values. This suits "validate all fields,
// report all errors" flows where short-circuiting would hide findings.
package acc
