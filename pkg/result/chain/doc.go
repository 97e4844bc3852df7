// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result[T, E] values.
//
// - Start/FromValue: create a Chain
// - Then/To/ThenTry: compose result-returning or error-returning steps
// - Map/MapError: transform the value or the error
// - Ensure: trigger side effects without changing the result
// - Or/And: pick between chains
// - Repeat/While: loop a step while it keeps succeeding
// - Finally: reduce to a concrete value via handlers
//
// Every step on a failed chain is skipped and the failed Result instance is
// carried forward untouched.
package chain
