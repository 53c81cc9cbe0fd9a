package rope

// Type-changing Result combinators. Go methods cannot introduce new type
// parameters, so these live as free functions, mirroring how same-type
// operations stay methods on Result.

// Map transforms the Ok value; Err passes through unchanged. Map never
// recovers panics raised by f: a panic from a pure transform signals a
// programming error and propagates to the caller. Use MapTry at an
// exception boundary.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.IsErr() {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// MapTry is Map with a panic boundary: a panic raised by f is converted
// into an Err carrying code and message, with the recovered value recorded
// as cause.
func MapTry[T, U any](r Result[T], f func(T) U, code Code, message string, opts ...ErrorOption) (out Result[U]) {
	if r.IsErr() {
		return Err[U](r.err)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Err[U](wrapPanic(rec, code, message, opts...))
		}
	}()
	return Ok(f(r.value))
}

// AndThen is the monadic bind: Err short-circuits, Ok feeds f. Panics from
// f propagate; see Map.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.IsErr() {
		return Err[U](r.err)
	}
	return f(r.value)
}

// AndThenTry is AndThen with a panic boundary around f itself. Err values
// returned by f pass through untouched; only panics are converted.
func AndThenTry[T, U any](r Result[T], f func(T) Result[U], code Code, message string, opts ...ErrorOption) (out Result[U]) {
	if r.IsErr() {
		return Err[U](r.err)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Err[U](wrapPanic(rec, code, message, opts...))
		}
	}()
	return f(r.value)
}

// MapOr folds the result to a plain value: f over Ok, fallback on Err.
func MapOr[T, U any](r Result[T], fallback U, f func(T) U) U {
	if r.IsErr() {
		return fallback
	}
	return f(r.value)
}

// MapOrElse folds with a handler per side.
func MapOrElse[T, U any](r Result[T], onErr func(*Error) U, f func(T) U) U {
	if r.IsErr() {
		return onErr(r.err)
	}
	return f(r.value)
}

// Flatten collapses a nested Result.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.IsErr() {
		return Err[T](r.err)
	}
	return r.value
}

// TransposeResult turns a Result of an Option inside out:
// Ok(Some(v)) → Some(Ok(v)), Ok(None) → None, Err(e) → Some(Err(e)).
func TransposeResult[T any](r Result[Option[T]]) Option[Result[T]] {
	if r.IsErr() {
		return Some(Err[T](r.err))
	}
	if r.value.IsNone() {
		return None[Result[T]]()
	}
	return Some(Ok(r.value.Unwrap()))
}
