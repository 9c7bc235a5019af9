// Package exhaustive implements a static-analysis pass proving that
// conditional dispatch over a result.Result covers both variants.
//
// Go's switch carries no exhaustiveness guarantee, so a dispatch written as
//
//	switch {
//	case r.IsSuccess():
//		...
//	}
//
// silently falls through when r holds a failure. The analyzer walks every
// tagless (or switch true) statement, tracks per distinct Result expression
// whether an IsSuccess and an IsFailure test arm exists, treats a default
// clause or a constant-true arm as a catch-all, and reports the missing
// variant(s) at the switch's position otherwise. It runs ahead of time and
// never affects program behavior.
//
// Run it standalone via cmd/resultcheck or embed Analyzer in a multichecker.
package exhaustive
