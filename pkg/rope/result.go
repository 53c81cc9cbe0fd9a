package rope

// Result represents either success (Ok) carrying a value or failure (Err)
// carrying an *Error. Exactly one variant is populated; values are
// immutable after construction.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err builds a failed Result. A nil error is a programming error and
// panics: no representation may hold neither variant.
func Err[T any](err *Error) Result[T] {
	if err == nil {
		panic("rope: Err requires a non-nil *Error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool { return r.ok }

func (r Result[T]) IsErr() bool { return !r.ok }

// IsOkAnd reports whether the result is Ok and the value satisfies pred.
func (r Result[T]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports whether the result is Err and the error satisfies pred.
func (r Result[T]) IsErrAnd(pred func(*Error) bool) bool {
	return !r.ok && pred(r.err)
}

// Value returns the success value (zero value on Err).
func (r Result[T]) Value() T { return r.value }

// Err returns the error (nil on Ok).
func (r Result[T]) Err() *Error { return r.err }

// Unwrap returns the value or panics on Err. It asserts a programmer
// invariant; use UnwrapOr or UnwrapOrElse for recoverable extraction.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("rope: called Unwrap() on Err: " + r.err.String())
	}
	return r.value
}

// UnwrapErr returns the error or panics on Ok.
func (r Result[T]) UnwrapErr() *Error {
	if r.ok {
		panic("rope: called UnwrapErr() on Ok")
	}
	return r.err
}

// Expect is Unwrap with a caller-supplied panic message.
func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		panic(msg)
	}
	return r.value
}

// ExpectErr is UnwrapErr with a caller-supplied panic message.
func (r Result[T]) ExpectErr(msg string) *Error {
	if r.ok {
		panic(msg)
	}
	return r.err
}

func (r Result[T]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

func (r Result[T]) UnwrapOrElse(f func(*Error) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

// UnwrapOrPanic returns the value on Ok and panics with the supplied value
// on Err, discarding the error payload. It is the sanctioned bridge back to
// panic-based control flow at a boundary.
func (r Result[T]) UnwrapOrPanic(p any) T {
	if !r.ok {
		panic(p)
	}
	return r.value
}

// Ok converts to Option, discarding error information.
func (r Result[T]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// ErrOption converts the failure side to Option, discarding the success
// value.
func (r Result[T]) ErrOption() Option[*Error] {
	if r.ok {
		return None[*Error]()
	}
	return Some(r.err)
}

// Or returns r if it is Ok, otherwise fallback.
func (r Result[T]) Or(fallback Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return fallback
}

// And returns other if r is Ok, otherwise r's error.
func (r Result[T]) And(other Result[T]) Result[T] {
	if r.ok {
		return other
	}
	return r
}

// Inspect calls f with the value on Ok and returns r unchanged.
func (r Result[T]) Inspect(f func(T)) Result[T] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the error on Err and returns r unchanged.
func (r Result[T]) InspectErr(f func(*Error)) Result[T] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// MapErr transforms the error; no-op on Ok. The transform must not return
// nil.
func (r Result[T]) MapErr(f func(*Error) *Error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](f(r.err))
}

// Context wraps the current error under a new one tagged CodeContext (or a
// code supplied via options), recording the prior error as cause and
// merging its metadata, op, path and diagnostics forward. No-op on Ok.
func (r Result[T]) Context(message string, opts ...ErrorOption) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](newContextError(r.err, message, opts...))
}

// WithCode replaces the error code, preserving message and cause. No-op on
// Ok.
func (r Result[T]) WithCode(code Code) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](r.err.WithCode(code))
}

// MapErrCode prefixes the error code with the given namespace. Idempotent:
// an already-namespaced code is left untouched. No-op on Ok.
func (r Result[T]) MapErrCode(namespace string) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](r.err.PrefixCode(namespace))
}
