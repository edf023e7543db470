package explore

import (
	"cmp"
	"slices"
)

// Report summarizes the exploration of one subject.
//
// Tests holds one representative case per distinct (path, outcome) pair, in
// the spirit of the test inputs a symbolic execution engine generates: one
// per feasible path, plus one per error discovered on that path.
type Report struct {
	Subject string
	Cases   int             // number of inputs checked
	Totals  map[Outcome]int // number of inputs per outcome
	Tests   []Case          // representative cases, ordered by path and outcome
	seen    map[testKey]struct{}
}

type testKey struct {
	path    Path
	outcome Outcome
}

func newReport(subject string) *Report {
	return &Report{
		Subject: subject,
		Totals:  make(map[Outcome]int),
		seen:    make(map[testKey]struct{}),
	}
}

func (r *Report) add(c Case) {
	r.Cases++
	r.Totals[c.Outcome]++
	key := testKey{path: c.Path, outcome: c.Outcome}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	r.Tests = append(r.Tests, c)
}

func (r *Report) finish() {
	slices.SortStableFunc(r.Tests, func(a, b Case) int {
		if c := cmp.Compare(a.Path.Effective, b.Path.Effective); c != 0 {
			return c
		}
		if a.Path.Clamped != b.Path.Clamped {
			if a.Path.Clamped {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Outcome, b.Outcome)
	})
}

// Findings returns the number of inputs which did not pass.
func (r *Report) Findings() int {
	return r.Cases - r.Totals[Pass]
}

// Passed is true if every checked input passed.
func (r *Report) Passed() bool {
	return r.Findings() == 0
}

// Paths returns the distinct paths covered, in order.
func (r *Report) Paths() []Path {
	var paths []Path
	for _, c := range r.Tests {
		if len(paths) == 0 || paths[len(paths)-1] != c.Path {
			paths = append(paths, c.Path)
		}
	}
	return paths
}
