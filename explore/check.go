package explore

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/npillmayer/prefixsum"
	"github.com/npillmayer/prefixsum/revisions"
)

// Outcome classifies the result of running a summer on one input.
type Outcome int

// Outcomes of checking a summer on one input.
const (
	Pass Outcome = iota
	OutOfRange
	Overflow
	Mismatch
)

var outcomeNames = [...]string{"pass", "out-of-range", "overflow", "mismatch"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Path identifies the execution path a correct summer takes for a length:
// the number of samples visited, and whether the length had to be clamped.
type Path struct {
	Effective int
	Clamped   bool
}

// PathOf returns the path class of requested length n.
func PathOf(n uint) Path {
	return Path{
		Effective: int(min(n, prefixsum.Capacity)),
		Clamped:   n > prefixsum.Capacity,
	}
}

func (p Path) String() string {
	if p.Clamped {
		return fmt.Sprintf("%d(clamped)", p.Effective)
	}
	return fmt.Sprintf("%d", p.Effective)
}

// Case is a single input together with the observed and the expected result.
type Case struct {
	Buffer   prefixsum.Buffer
	Length   uint
	Result   uint16
	Expected uint64
	Outcome  Outcome
	Path     Path
	Panic    string // run-time error message for OutOfRange
}

func (c Case) String() string {
	if c.Outcome == OutOfRange {
		return fmt.Sprintf("n=%d buf=%v -> panic (%s)", c.Length, c.Buffer, c.Outcome)
	}
	return fmt.Sprintf("n=%d buf=%v -> %d (%s)", c.Length, c.Buffer, c.Result, c.Outcome)
}

// Finding is a non-passing case of an explored subject.
type Finding struct {
	Subject string
	Case    Case
}

// Oracle returns the exact sum of the first min(n, Capacity) samples of buf,
// using an accumulator far too wide to overflow.
func Oracle(buf prefixsum.Buffer, n uint) uint64 {
	var sum uint64
	for i := 0; i < prefixsum.Capacity && uint(i) < n; i++ {
		sum += uint64(buf[i])
	}
	return sum
}

// Check runs s on (buf, n) and classifies the result against the oracle.
//
// An index-out-of-range panic raised by s is recovered and reported as
// OutOfRange. Other panics are not the business of Check and are re-raised.
func Check(s revisions.Summer, buf prefixsum.Buffer, n uint) (c Case) {
	c = Case{
		Buffer:   buf,
		Length:   n,
		Expected: Oracle(buf, n),
		Path:     PathOf(n),
	}
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(runtime.Error)
			if !ok || !strings.Contains(err.Error(), "index out of range") {
				panic(r)
			}
			tracer().Debugf("explore: recovered %v for n=%d", err, n)
			c.Outcome = OutOfRange
			c.Panic = err.Error()
		}
	}()
	c.Result = s(buf, n)
	c.Outcome = classify(c.Result, c.Expected)
	return c
}

func classify(result uint16, expected uint64) Outcome {
	switch {
	case uint64(result) == expected:
		return Pass
	case expected > math.MaxUint8 && uint64(result) == expected&math.MaxUint8:
		return Overflow
	default:
		return Mismatch
	}
}
