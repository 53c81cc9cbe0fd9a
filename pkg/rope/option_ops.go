package rope

// Type-changing Option combinators, free functions for the same reason as
// the Result ones.

// Pair carries the two values combined by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MapOption transforms the Some value; None short-circuits. Panics from f
// propagate (no implicit catching).
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return Some(f(o.value))
}

// MapTryOption applies f behind a panic boundary. None maps to Ok(None);
// a panic from f becomes an Err carrying code and message.
func MapTryOption[T, U any](o Option[T], f func(T) U, code Code, message string, opts ...ErrorOption) (out Result[Option[U]]) {
	if o.IsNone() {
		return Ok(None[U]())
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Err[Option[U]](wrapPanic(rec, code, message, opts...))
		}
	}()
	return Ok(Some(f(o.value)))
}

// AndThenOption is the monadic bind; None short-circuits. Panics from f
// propagate.
func AndThenOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return f(o.value)
}

// AndThenTryOption is AndThenOption with a panic boundary around f. None
// maps to Ok(None).
func AndThenTryOption[T, U any](o Option[T], f func(T) Option[U], code Code, message string, opts ...ErrorOption) (out Result[Option[U]]) {
	if o.IsNone() {
		return Ok(None[U]())
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Err[Option[U]](wrapPanic(rec, code, message, opts...))
		}
	}()
	return Ok(f(o.value))
}

// MapOrOption folds to a plain value: f over Some, fallback on None.
func MapOrOption[T, U any](o Option[T], fallback U, f func(T) U) U {
	if o.IsNone() {
		return fallback
	}
	return f(o.value)
}

// MapOrElseOption folds with a lazily computed fallback.
func MapOrElseOption[T, U any](o Option[T], fallback func() U, f func(T) U) U {
	if o.IsNone() {
		return fallback()
	}
	return f(o.value)
}

// Zip is Some iff both options are Some.
func Zip[T, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	if a.IsNone() || b.IsNone() {
		return None[Pair[T, U]]()
	}
	return Some(Pair[T, U]{First: a.value, Second: b.value})
}

// ZipWith applies f to both inner values iff both options are Some.
func ZipWith[T, U, V any](a Option[T], b Option[U], f func(T, U) V) Option[V] {
	if a.IsNone() || b.IsNone() {
		return None[V]()
	}
	return Some(f(a.value, b.value))
}

// FlattenOption collapses a nested Option: Some(Some(x)) → Some(x),
// Some(None) → None, None → None.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if o.IsNone() {
		return None[T]()
	}
	return o.value
}

// Transpose turns an Option of a Result inside out: Some(Ok(v)) →
// Ok(Some(v)), Some(Err(e)) → Err(e), None → Ok(None).
func Transpose[T any](o Option[Result[T]]) Result[Option[T]] {
	if o.IsNone() {
		return Ok(None[T]())
	}
	if o.value.IsErr() {
		return Err[Option[T]](o.value.err)
	}
	return Ok(Some(o.value.value))
}
