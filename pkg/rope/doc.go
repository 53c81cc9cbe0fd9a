// Package rope implements a Result/Option algebra over a structured Error
// model, with explicit boundaries where panics become values.
//
// Fallible computation is expressed as Result[T] (Ok or Err carrying
// *Error) and optional computation as Option[T] (Some or None). Pure
// combinators — Map, AndThen and their Option counterparts — never recover
// panics raised by caller-supplied functions; only the *_try combinators,
// Attempt and Catch convert panics into Err values, and only for the panic
// classes they are configured to match. There is no silent error
// suppression anywhere: code either sees a value, a propagated panic from
// a non-boundary combinator, or a deliberate Unwrap panic on misuse.
//
// Errors carry a coarse kind, a dot-namespaced code, message, string
// metadata, an op name, a structural path, expected/got diagnostics and a
// stringified cause chain, and round-trip losslessly through
// ToDict/FromDict.
package rope
