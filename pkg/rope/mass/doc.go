// Package mass applies a Result-producing step over many independent
// inputs with bounded parallelism.
//
// It deliberately stays outside the sequential flow runner: inputs are
// unrelated computations fanned over a worker-limited errgroup, and each
// keeps its own Result. Order of results matches order of inputs.
package mass
