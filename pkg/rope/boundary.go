package rope

import (
	"context"
	"errors"
)

// The exception boundary: the only place where host panics (and plain Go
// error returns) become Err values. Everywhere else a panic propagates.

// Void is the value type of results that carry no payload, such as Ensure.
type Void = struct{}

// PanicMatcher decides whether a recovered panic value belongs to the set
// of failure variants a boundary is configured to convert.
type PanicMatcher func(recovered any) bool

// MatchType matches panics whose value is assignable to T.
func MatchType[T any]() PanicMatcher {
	return func(recovered any) bool {
		_, ok := recovered.(T)
		return ok
	}
}

// MatchError matches panics carrying an error that satisfies
// errors.Is(err, target).
func MatchError(target error) PanicMatcher {
	return func(recovered any) bool {
		err, ok := recovered.(error)
		return ok && errors.Is(err, target)
	}
}

func matchesAny(recovered any, matchers []PanicMatcher) bool {
	if len(matchers) == 0 {
		return true
	}
	for _, m := range matchers {
		if m(recovered) {
			return true
		}
	}
	return false
}

// Attempt invokes f and converts a matched panic into Err via FromPanic.
// With no matchers given, every panic is converted. An unmatched panic is
// re-raised unmodified: Attempt is a selective boundary, not a catch-all
// unless explicitly requested.
func Attempt[T any](f func() T, matchers ...PanicMatcher) (out Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			if !matchesAny(rec, matchers) {
				panic(rec)
			}
			out = Err[T](FromPanic(rec))
		}
	}()
	return Ok(f())
}

// Catch is the decorator-style sibling of Attempt: it wraps f so that
// calling the wrapper converts matched panics into Err instead of letting
// them propagate.
func Catch[T, U any](f func(T) U, matchers ...PanicMatcher) func(T) Result[U] {
	return func(in T) Result[U] {
		return Attempt(func() U { return f(in) }, matchers...)
	}
}

// Try adapts a conventional (value, error) return into a Result, wrapping a
// non-nil error under CodeExternal. The Go-native boundary for calls that
// report failure by error return rather than panic.
func Try[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](Wrap(err, CodeExternal, err.Error()))
	}
	return Ok(value)
}

// Ensure returns Ok on a satisfied condition and Err{code, message}
// otherwise.
func Ensure(condition bool, code Code, message string, opts ...ErrorOption) Result[Void] {
	if condition {
		return Ok(Void{})
	}
	return Err[Void](New(code, message, opts...))
}

// Fail constructs an Err from error parts; the general constructor behind
// Bail.
func Fail[T any](code Code, message string, opts ...ErrorOption) Result[T] {
	return Err[T](New(code, message, opts...))
}

// Bail is Fail under the early-return idiom's name; the two are
// semantically identical.
func Bail[T any](code Code, message string, opts ...ErrorOption) Result[T] {
	return Fail[T](code, message, opts...)
}

// IsCancellation reports whether err stems from context cancellation or
// deadline expiry.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
