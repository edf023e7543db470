/*
Package report renders exploration reports for consoles and browsers.

Text writes one line per generated test plus a summary, colouring outcomes
if the output goes to a terminal. HTML writes the same information as a
table.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package report

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
