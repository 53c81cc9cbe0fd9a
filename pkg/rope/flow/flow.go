package flow

import (
	"github.com/ib-77/rope/pkg/rope"
)

// Step is one stage of a sequential computation: it receives the state
// threaded from the previous stage and yields the next state or an error.
type Step[S any] func(S) rope.Result[S]

// Run executes steps strictly in order, single-threaded. Each step must
// complete before the next begins; the first Err terminates the run and
// becomes the overall result. No step is retried and no state is carried
// between steps beyond the explicitly threaded value.
func Run[S any](initial S, steps ...Step[S]) rope.Result[S] {
	current := initial
	for _, step := range steps {
		r := step(current)
		if r.IsErr() {
			return r
		}
		current = r.Value()
	}
	return rope.Ok(current)
}

// RunResult is Run seeded with an existing Result: an Err seed
// short-circuits before any step executes.
func RunResult[S any](seed rope.Result[S], steps ...Step[S]) rope.Result[S] {
	if seed.IsErr() {
		return seed
	}
	return Run(seed.Value(), steps...)
}
