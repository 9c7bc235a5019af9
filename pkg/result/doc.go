// Package result provides a generic two-variant Result[T, E]: the outcome of
// a fallible computation as data, either a success holding a value of type T
// or a failure holding an error of type E, with a combinator surface for
// transforming, chaining and recovering without exceptions.
//
// Highlights:
// - Success/Failure: construct a Result
// - Catch/Try/From: capture panics or (T, error) pairs as failures
// - Map/MapError/FlatMap/Fold/Flatten: transform and chain (type-changing)
// - Tap/TapError/Recover/RecoverWith: side effects and failure recovery
// - GetOrElse/Get/GetOrZero/ErrOrElse/MustGet/MustErr: extract payloads
// - Validate/AndValidate/FailIf: validation producing failure on bad input
//
// Success-path operations are no-ops on a failure and vice versa, so chains
// short-circuit at the first failure without branching by the caller.
// Subpackages bind and acc provide linear sequencing and all-errors
// accumulation; subpackage exhaustive is a build-time lint checking that
// switch dispatch over a Result covers both variants.
package result
