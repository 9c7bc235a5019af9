// Package bind provides linear sequencing of dependent fallible steps over
// result.Result, equivalent to nested FlatMap calls but reading as
// straight-line code.
//
// Highlights:
// - Start/FromValue: begin a Binding from a Result or a plain value
// - Then: feed the unwrapped value into the next result-returning step
// - Map: transform the current value (package-level form changes the type)
// - Ensure: run side effects without changing the result
// - Finally: collapse to a concrete value via success/failure handlers
// - Steps: run an ordered list of step closures with early return on failure
//
// Once a failure appears, later step functions never run and the failure is
// carried to the end unchanged.
package bind
