package rope

// Option represents presence (Some) or absence (None) of a value.
// Immutable after construction.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.some }

func (o Option[T]) IsNone() bool { return !o.some }

// IsSomeAnd reports whether the option is Some and the value satisfies
// pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// IsNoneOr reports whether the option is None or the value satisfies pred.
func (o Option[T]) IsNoneOr(pred func(T) bool) bool {
	return !o.some || pred(o.value)
}

// Unwrap returns the value or panics on None; reserved for
// programmer-asserted invariants.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("rope: called Unwrap() on None")
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.some {
		return o.value
	}
	return f()
}

// Filter keeps Some values satisfying pred; everything else becomes None.
// Panics from pred propagate, as with every pure combinator.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the first Some of o and fallback.
func (o Option[T]) Or(fallback Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fallback
}

// OrElse is Or with a lazily computed fallback.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// And returns other if o is Some, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.some {
		return other
	}
	return None[T]()
}

// Xor is Some iff exactly one of o and other is Some.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Inspect calls f with the value on Some and returns o unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

// OkOr converts to Result, synthesizing an Error on None.
func (o Option[T]) OkOr(code Code, message string, opts ...ErrorOption) Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](New(code, message, opts...))
}

// OkOrElse is OkOr with a lazily computed message.
func (o Option[T]) OkOrElse(code Code, f func() string, opts ...ErrorOption) Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](New(code, f(), opts...))
}
