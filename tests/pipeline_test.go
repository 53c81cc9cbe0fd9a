package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/ib-77/rope/pkg/rope"
	"github.com/ib-77/rope/pkg/rope/blueprint"
	"github.com/ib-77/rope/pkg/rope/flow"
	"github.com/ib-77/rope/pkg/rope/mass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmailBatchProcessing runs a batch of raw records through a
// validation flow and a domain-extraction pipeline concurrently.
func TestEmailBatchProcessing(t *testing.T) {
	records := []string{
		"alice@example.com",
		"bob@test.org",
		"  carol@company.io  ",
		"not-an-email",
		"dave@google.com",
	}

	domains := blueprint.New().
		Pipe(blueprint.AssertStr()).
		Pipe(blueprint.Split("@")).
		Pipe(blueprint.Index(1)).
		GuardStr().
		Pipe(blueprint.ToUppercase())

	results := mass.Apply(context.Background(), records,
		func(ctx context.Context, raw string) rope.Result[string] {
			return flow.FromValue(ctx, raw).
				Map(func(_ context.Context, s string) string {
					return strings.TrimSpace(s)
				}).
				Then(func(ctx context.Context, s string) rope.Result[string] {
					r := blueprint.Run(ctx, domains, s)
					return rope.AndThen(r, func(v any) rope.Result[string] {
						out, ok := v.(string)
						if !ok {
							return rope.Fail[string]("type_mismatch", "expected a string output")
						}
						return rope.Ok(out)
					})
				}).
				Result()
		}, 3)

	require.Len(t, results, len(records))

	values, errs := mass.Partition(results)
	assert.Equal(t, []string{"EXAMPLE.COM", "TEST.ORG", "COMPANY.IO", "GOOGLE.COM"}, values)

	require.Len(t, errs, 1)
	assert.Equal(t, rope.Code("blueprint.index_out_of_range"), errs[0].Code())
	assert.Equal(t, rope.KindNotFound, errs[0].Kind())
}

// TestErrorEnrichmentAcrossLayers checks that a failure produced deep
// inside a pipeline keeps its diagnostics as outer layers add context.
func TestErrorEnrichmentAcrossLayers(t *testing.T) {
	ports := blueprint.New().
		Pipe(blueprint.AssertStr()).
		Pipe(blueprint.AsInt())

	r := blueprint.Run(context.Background(), ports, "eighty").
		Context("loading listener config", rope.WithOp("LoadConfig"))

	require.True(t, r.IsErr())
	e := r.Err()
	assert.Equal(t, rope.Code("context"), e.Code())
	assert.Equal(t, "LoadConfig", e.Op())
	assert.Contains(t, e.Cause(), "blueprint.parse_error")

	// serialized form survives a round trip with everything intact
	back, err := rope.FromDict(e.ToDict())
	require.NoError(t, err)
	assert.Equal(t, e.Cause(), back.Cause())
	assert.Equal(t, e.Message(), back.Message())
}

// TestPanicBoundaryInsideFlow verifies that a panicking step caught at
// the boundary surfaces as a regular error result, not a crash.
func TestPanicBoundaryInsideFlow(t *testing.T) {
	divide := func(a, b int) int { return a / b }

	res := flow.FromValue(context.Background(), 0).
		Then(func(_ context.Context, b int) rope.Result[int] {
			return rope.Attempt(func() int { return divide(100, b) })
		}).
		Result()

	require.True(t, res.IsErr())
	assert.Equal(t, rope.CodePanic, res.Err().Code())

	exc, ok := res.Err().Meta(rope.MetaException)
	require.True(t, ok)
	assert.Contains(t, exc, "runtime")
}
