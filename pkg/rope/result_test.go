package rope

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}

func TestResult_FunctorIdentity(t *testing.T) {
	r := Map(Ok(42), func(v int) int { return v })

	require.True(t, r.IsOk())
	assert.Equal(t, 42, r.Value())
}

func TestResult_BindAssociativity(t *testing.T) {
	f := func(v int) Result[int] { return Ok(v + 1) }
	g := func(v int) Result[int] { return Ok(v * 2) }

	left := AndThen(AndThen(Ok(10), f), g)
	right := AndThen(Ok(10), func(v int) Result[int] { return AndThen(f(v), g) })

	assert.Equal(t, left.Value(), right.Value())
	assert.Equal(t, left.IsOk(), right.IsOk())
}

func TestResult_ErrShortCircuitsBind(t *testing.T) {
	called := false
	r := AndThen(Fail[int]("nope", "failed"), func(v int) Result[string] {
		called = true
		return Ok("unreachable")
	})

	assert.False(t, called)
	require.True(t, r.IsErr())
	assert.Equal(t, Code("nope"), r.Err().Code())
}

func TestResult_MapDoesNotCatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Map(Ok("abc"), mustAtoi)
	})
}

func TestResult_AndThenDoesNotCatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		AndThen(Ok("abc"), func(s string) Result[int] {
			return Ok(mustAtoi(s))
		})
	})
}

func TestResult_MapTryWrapsPanic(t *testing.T) {
	r := MapTry(Ok("abc"), mustAtoi, "parse_error", "invalid int")

	require.True(t, r.IsErr())
	e := r.Err()
	assert.Equal(t, Code("parse_error"), e.Code())
	assert.Equal(t, "invalid int", e.Message())
	assert.NotEmpty(t, e.Cause())

	exc, ok := e.Meta(MetaCauseException)
	require.True(t, ok)
	assert.Contains(t, exc, "strconv")
	trace, ok := e.Meta(MetaCauseStacktrace)
	require.True(t, ok)
	assert.NotEmpty(t, trace)
}

func TestResult_MapTrySuccess(t *testing.T) {
	r := MapTry(Ok("123"), mustAtoi, "parse_error", "invalid int")

	require.True(t, r.IsOk())
	assert.Equal(t, 123, r.Value())
}

func TestResult_AndThenTryPassesErrValuesThrough(t *testing.T) {
	parseAndValidate := func(s string) Result[int] {
		v := mustAtoi(s)
		if v < 0 {
			return Fail[int]("validation_error", "must be positive")
		}
		return Ok(v)
	}

	ok := AndThenTry(Ok("42"), parseAndValidate, "parse_error", "parse failed")
	require.True(t, ok.IsOk())
	assert.Equal(t, 42, ok.Value())

	// panic from f is wrapped under the boundary's code
	panicked := AndThenTry(Ok("abc"), parseAndValidate, "parse_error", "parse failed")
	require.True(t, panicked.IsErr())
	assert.Equal(t, Code("parse_error"), panicked.Err().Code())

	// Err returned by f keeps its own code
	domain := AndThenTry(Ok("-5"), parseAndValidate, "parse_error", "parse failed")
	require.True(t, domain.IsErr())
	assert.Equal(t, Code("validation_error"), domain.Err().Code())
}

func TestResult_MapErrCodeIdempotent(t *testing.T) {
	r := Fail[int]("custom", "m").MapErrCode("pipeline")
	assert.Equal(t, Code("pipeline.custom"), r.Err().Code())

	again := r.MapErrCode("pipeline")
	assert.Equal(t, Code("pipeline.custom"), again.Err().Code())
}

func TestResult_Context(t *testing.T) {
	r := Fail[int]("db_error", "select failed",
		WithKind(KindUnavailable),
		WithMeta("table", "users"),
	).Context("loading user")

	require.True(t, r.IsErr())
	e := r.Err()
	assert.Equal(t, CodeContext, e.Code())
	assert.Equal(t, "loading user", e.Message())
	assert.Equal(t, KindUnavailable, e.Kind())
	assert.Contains(t, e.Cause(), "db_error")

	table, ok := e.Meta("table")
	require.True(t, ok)
	assert.Equal(t, "users", table)
}

func TestResult_ContextWithCodeOverride(t *testing.T) {
	r := Fail[int]("boom", "failed").Context("division failed", WithCode("division_error"))

	require.True(t, r.IsErr())
	assert.Equal(t, Code("division_error"), r.Err().Code())
}

func TestResult_ContextNoopOnOk(t *testing.T) {
	r := Ok(7).Context("never used")

	require.True(t, r.IsOk())
	assert.Equal(t, 7, r.Value())
}

func TestResult_WithCode(t *testing.T) {
	r := Fail[int]("old", "message").WithCode("new")

	assert.Equal(t, Code("new"), r.Err().Code())
	assert.Equal(t, "message", r.Err().Message())
}

func TestResult_OkAndErrOptionConversions(t *testing.T) {
	assert.True(t, Ok(1).Ok().IsSome())
	assert.True(t, Fail[int]("e", "m").Ok().IsNone())

	assert.True(t, Ok(1).ErrOption().IsNone())
	errOpt := Fail[int]("e", "m").ErrOption()
	require.True(t, errOpt.IsSome())
	assert.Equal(t, Code("e"), errOpt.Unwrap().Code())
}

func TestResult_UnwrapPanicsOnErr(t *testing.T) {
	assert.Panics(t, func() {
		Fail[int]("e", "m").Unwrap()
	})
	assert.Panics(t, func() {
		Ok(1).UnwrapErr()
	})
}

func TestResult_UnwrapOrVariants(t *testing.T) {
	assert.Equal(t, 5, Ok(5).UnwrapOr(0))
	assert.Equal(t, 0, Fail[int]("e", "m").UnwrapOr(0))

	got := Fail[int]("e", "m").UnwrapOrElse(func(e *Error) int { return len(e.Message()) })
	assert.Equal(t, 1, got)
}

func TestResult_UnwrapOrPanic(t *testing.T) {
	assert.Equal(t, 3, Ok(3).UnwrapOrPanic("boom"))

	defer func() {
		rec := recover()
		assert.Equal(t, "boom", rec)
	}()
	Fail[int]("e", "m").UnwrapOrPanic("boom")
	t.Fatal("expected panic")
}

func TestResult_OrFallback(t *testing.T) {
	primary := Fail[int]("e", "first source failed")
	fallback := Ok(42)

	assert.Equal(t, 42, primary.Or(fallback).Value())
	assert.Equal(t, 1, Ok(1).Or(fallback).Value())
}

func TestResult_FlattenAndTranspose(t *testing.T) {
	assert.Equal(t, 9, Flatten(Ok(Ok(9))).Value())
	assert.True(t, Flatten(Fail[Result[int]]("e", "m")).IsErr())

	some := TransposeResult(Ok(Some(1)))
	require.True(t, some.IsSome())
	assert.Equal(t, 1, some.Unwrap().Value())

	assert.True(t, TransposeResult(Ok(None[int]())).IsNone())

	errSide := TransposeResult(Fail[Option[int]]("e", "m"))
	require.True(t, errSide.IsSome())
	assert.True(t, errSide.Unwrap().IsErr())
}

func TestResult_MapOrVariants(t *testing.T) {
	assert.Equal(t, 10, MapOr(Ok(5), 0, func(v int) int { return v * 2 }))
	assert.Equal(t, 0, MapOr(Fail[int]("e", "m"), 0, func(v int) int { return v * 2 }))

	folded := MapOrElse(Fail[int]("e", "msg"),
		func(e *Error) string { return "error: " + e.Message() },
		func(v int) string { return "ok" },
	)
	assert.Equal(t, "error: msg", folded)
}

func TestResult_InspectAndPredicates(t *testing.T) {
	seen := 0
	Ok(4).Inspect(func(v int) { seen = v })
	assert.Equal(t, 4, seen)

	var code Code
	Fail[int]("boom", "m").InspectErr(func(e *Error) { code = e.Code() })
	assert.Equal(t, Code("boom"), code)

	assert.True(t, Ok(4).IsOkAnd(func(v int) bool { return v%2 == 0 }))
	assert.False(t, Fail[int]("e", "m").IsOkAnd(func(int) bool { return true }))
	assert.True(t, Fail[int]("e", "m").IsErrAnd(func(e *Error) bool { return e.Code() == "e" }))
}

func TestResult_ErrPanicsOnNilError(t *testing.T) {
	assert.Panics(t, func() {
		Err[int](nil)
	})
}

func TestResult_ChainedValidationScenario(t *testing.T) {
	validateAge := func(age int) Result[int] {
		if age > 150 {
			return Fail[int]("too_large", "age above 150")
		}
		return Ok(age)
	}

	ok := AndThen(MapTry(Ok("25"), mustAtoi, "parse_error", "invalid age"), validateAge)
	require.True(t, ok.IsOk())
	assert.Equal(t, 25, ok.Value())

	tooLarge := AndThen(MapTry(Ok("200"), mustAtoi, "parse_error", "invalid age"), validateAge)
	require.True(t, tooLarge.IsErr())
	assert.Equal(t, Code("too_large"), tooLarge.Err().Code())
}
