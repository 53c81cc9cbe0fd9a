// Package blueprint composes typed operators over dynamically typed
// pipeline values and executes them through the rope Result channel.
//
// A Blueprint is an immutable operator list; Run feeds an input value
// through it and returns Ok with the final value or the first operator's
// Err, with every error code namespaced under "blueprint". Operator errors
// carry op, path and expected/got diagnostics for precise failure
// location.
package blueprint
