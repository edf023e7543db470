/*
Package explore searches the input domain of a prefix summer for defects.

A symbolic execution engine treats every buffer slot and the requested
length of a summer as unconstrained and generates one test input per
feasible path. Outside of such an engine the same idea maps to exhaustive
and randomized property testing. Generators produce (buffer, length) pairs
and Check runs a summer on each pair against a wide-accumulator oracle. An
Explorer condenses the outcomes into a Report holding one representative
test per distinct path and outcome.

Defects are classified as

  - OutOfRange: the summer read past the end of the buffer (recovered
    run-time panic),
  - Overflow: the result equals the oracle modulo 256, i.e. an 8-bit
    accumulator wrapped,
  - Mismatch: any other wrong result.

Findings are broadcast to subscribers while an exploration runs.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package explore

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'prefixsum'
func tracer() tracing.Trace {
	return tracing.Select("prefixsum")
}

var (
	// ErrInvalidConfig signals an invalid explorer configuration.
	ErrInvalidConfig = errors.New("explore: invalid configuration")
	// ErrExplorerClosed signals use of an explorer after Close.
	ErrExplorerClosed = errors.New("explore: explorer closed")
	// ErrNoSubject signals a nil summer handed to an exploration.
	ErrNoSubject = errors.New("explore: no subject to explore")
)
