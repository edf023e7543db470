/*
Package revisions keeps the fix history of the bounded prefix summer.

Every revision sums a prefix of a prefixsum.Buffer, but only the final one
does it correctly:

  - unclamped: iterates up to the requested length and reads past the end of
    the buffer for lengths beyond its capacity,
  - narrow: clamps correctly, but accumulates into 8 bits and wraps for sums
    larger than 255,
  - branching: checks the length inside the loop and stops early, which
    returns 0 instead of the full sum for lengths ≥ capacity,
  - clamped: clamps first and accumulates into 16 bits (prefixsum.SumPrefix).

The defective revisions serve as regression subjects for package explore.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package revisions

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'prefixsum'
func tracer() tracing.Trace {
	return tracing.Select("prefixsum")
}

// ErrUnknownRevision signals a lookup for a revision name not registered.
var ErrUnknownRevision = errors.New("revisions: unknown revision")
