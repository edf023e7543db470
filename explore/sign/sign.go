/*
Package sign holds the introductory subject of symbolic-execution tutorials:
a sign function with three paths.

An engine exploring Sign with an unconstrained argument finds exactly three
paths and generates one test per path. Paths lists these, each with a
witness argument, so tests can replay them.
*/
package sign

import (
	"fmt"
	"math"
)

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x int32) int {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}

// Path is one path through Sign, together with an argument taking it.
type Path struct {
	Name    string
	Witness int32
	Result  int
}

func (p Path) String() string {
	return fmt.Sprintf("%s: Sign(%d) = %d", p.Name, p.Witness, p.Result)
}

// Paths returns the paths through Sign, ordered by result.
func Paths() []Path {
	return []Path{
		{Name: "negative", Witness: math.MinInt32, Result: -1},
		{Name: "zero", Witness: 0, Result: 0},
		{Name: "positive", Witness: math.MaxInt32, Result: 1},
	}
}

// Classify returns the path taken for x.
func Classify(x int32) Path {
	p := Paths()[Sign(x)+1]
	p.Witness = x
	return p
}
