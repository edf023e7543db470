package revisions

import (
	"fmt"

	"github.com/npillmayer/prefixsum"
)

// Summer is the signature shared by all revisions of the prefix summer.
type Summer func(buf prefixsum.Buffer, n uint) uint16

// Revision is a named attempt at implementing the prefix summer.
type Revision struct {
	Name string // short identifier, e.g. "narrow"
	Note string // what is wrong with it, if anything
	Sum  Summer
}

// Names of the registered revisions.
const (
	Unclamped = "unclamped"
	Narrow    = "narrow"
	Branching = "branching"
	Clamped   = "clamped"
)

var history = []Revision{
	{Name: Unclamped, Note: "reads past the end of the buffer", Sum: unclamped},
	{Name: Narrow, Note: "8-bit accumulator wraps", Sum: narrow},
	{Name: Branching, Note: "returns 0 for lengths at or beyond capacity", Sum: branching},
	{Name: Clamped, Sum: prefixsum.SumPrefix},
}

// All returns every revision in historical order, the final one last.
func All() []Revision {
	return append([]Revision(nil), history...)
}

// Final returns the revision considered correct.
func Final() Revision {
	return history[len(history)-1]
}

// Lookup finds a revision by name.
func Lookup(name string) (Revision, error) {
	for _, rev := range history {
		if rev.Name == name {
			return rev, nil
		}
	}
	tracer().Debugf("revisions: no revision named %q", name)
	return Revision{}, fmt.Errorf("%w: %q", ErrUnknownRevision, name)
}

// --- Defective revisions ---------------------------------------------------

func unclamped(buf prefixsum.Buffer, n uint) uint16 {
	var acc uint16
	for i := uint(0); i < n; i++ {
		acc += uint16(buf[i]) // panics for i ≥ capacity
	}
	return acc
}

func narrow(buf prefixsum.Buffer, n uint) uint16 {
	var acc uint8
	for _, v := range buf[:min(n, prefixsum.Capacity)] {
		acc += v
	}
	return uint16(acc)
}

func branching(buf prefixsum.Buffer, n uint) uint16 {
	var acc uint16
	for i := uint(0); i < n; i++ {
		if n < uint(len(buf)) {
			acc += uint16(buf[i])
		} else {
			break
		}
	}
	return acc
}
