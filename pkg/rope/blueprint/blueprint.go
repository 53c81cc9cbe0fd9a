package blueprint

import (
	"context"

	"github.com/ib-77/rope/pkg/rope"
	"go.uber.org/zap"
)

// Namespace is the prefix applied to every error code leaving Run.
const Namespace = "blueprint"

// Blueprint is an immutable ordered operator list. Pipe returns a new
// Blueprint, so prefixes may be shared and extended independently.
type Blueprint struct {
	ops []Op
}

func New() *Blueprint {
	return &Blueprint{}
}

func (b *Blueprint) Pipe(op Op) *Blueprint {
	ops := make([]Op, len(b.ops), len(b.ops)+1)
	copy(ops, b.ops)
	return &Blueprint{ops: append(ops, op)}
}

// GuardStr appends a string type guard; shorthand for Pipe(AssertStr()).
func (b *Blueprint) GuardStr() *Blueprint {
	return b.Pipe(AssertStr())
}

func (b *Blueprint) Len() int {
	return len(b.ops)
}

type runConfig struct {
	log *zap.Logger
}

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

// WithLogger enables per-operator debug tracing on the given logger.
func WithLogger(log *zap.Logger) RunOption {
	return func(cfg *runConfig) { cfg.log = log }
}

// Run feeds input through the blueprint's operators in order on the
// calling goroutine. The first failing operator short-circuits the run;
// every error code leaves namespaced under "blueprint". Cancellation of
// ctx between operators stops the run with CodeCanceled.
func Run(ctx context.Context, b *Blueprint, input any, opts ...RunOption) rope.Result[any] {
	cfg := runConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	value, err := normalize(input)
	if err != nil {
		return rope.Err[any](err.PrefixCode(Namespace))
	}

	for i, op := range b.ops {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return rope.Err[any](rope.Wrap(ctxErr, rope.CodeCanceled, ctxErr.Error(),
				rope.WithKind(rope.KindTimeout),
				rope.WithOp(op.Name()),
			).PrefixCode(Namespace))
		}
		out, opErr := op.apply(value)
		if opErr != nil {
			cfg.log.Debug("operator failed",
				zap.String("op", op.Name()),
				zap.Int("position", i),
				zap.String("code", string(opErr.Code())),
			)
			return rope.Err[any](opErr.PrefixCode(Namespace))
		}
		cfg.log.Debug("operator applied",
			zap.String("op", op.Name()),
			zap.Int("position", i),
			zap.String("type", TypeName(out)),
		)
		value = out
	}
	return rope.Ok(value)
}
