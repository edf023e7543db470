/*
Package prefixsum sums leading elements of a small fixed-capacity byte buffer.

Bounded Prefix Sums

A Buffer holds exactly Capacity unsigned 8-bit samples. SumPrefix adds up the
first n of them. The requested length n is not constrained: it may exceed the
capacity of the buffer, in which case SumPrefix clamps it and sums the whole
buffer. Reading past the end of the buffer is therefore impossible by
construction, not by a run-time check.

The accumulator is 16 bits wide. The largest possible sum is

	Capacity × 255 = 2040

which fits into an uint16, but not into an uint8 (an 8-bit accumulator
wraps 2040 to 232). The width requirement is checked at compile time by
constant MaxSum.

Sub-package revisions keeps earlier, defective attempts at the summer
around, and sub-package explore runs the exhaustive and randomized
exploration which detects their defects. Package report renders the findings.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package prefixsum

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SumError is an error type for the prefixsum module
type SumError string

func (e SumError) Error() string {
	return string(e)
}

// ErrBufferSize is flagged whenever a buffer is to be constructed from a
// byte slice with a length other than Capacity.
const ErrBufferSize = SumError("buffer size does not match capacity")
