// Package flow provides sequential short-circuit composition of
// Result-producing steps.
//
// Run folds an ordered step list left to right on a single goroutine: each
// step fully completes before the next begins, the first Err halts the run
// and becomes the overall result, and no implicit state crosses steps
// beyond the explicitly threaded value. Chain offers the same semantics as
// a fluent wrapper carrying a context.Context.
package flow
