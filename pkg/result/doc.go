// Package result provides Result[T, E], an immutable value that is either a
// Success holding a T or a Failure holding an E. It replaces panics and
// error returns with a value that can be inspected, transformed and chained.
//
// Highlights:
// - Success/Failure: construct Result[T, E]
// - TryCatch/Try/FromNullish/FromPromise/All: derive a Result from other shapes
// - Value/Err/GetOrThrow/GetOrElse/ToUnion: read the payload
// - IfSuccess/IfFailure/Match: run exactly one branch handler
// - Map/MapError/BiMap/FlatMap/FlatMapAsync/Flatten: transform
// - AssertErrorAs: narrow the error type after a runtime check
//
// Failure short-circuits: combinators skip their function and hand back the
// very same instance, which Same can observe.
package result
