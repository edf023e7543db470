package explore

import (
	"testing"

	"github.com/npillmayer/prefixsum"
	"github.com/npillmayer/prefixsum/revisions"
)

var (
	saturated = prefixsum.Buffer{255, 255, 255, 255, 255, 255, 255, 255}
	ascending = prefixsum.Buffer{1, 2, 3, 4, 5, 6, 7, 8}
)

func mustRevision(t *testing.T, name string) revisions.Revision {
	t.Helper()
	rev, err := revisions.Lookup(name)
	if err != nil {
		t.Fatalf("unexpected Lookup error: %v", err)
	}
	return rev
}

func TestOracle(t *testing.T) {
	if s := Oracle(saturated, 8); s != 2040 {
		t.Errorf("expected 2040, got %d", s)
	}
	if s := Oracle(ascending, 100); s != 36 {
		t.Errorf("expected 36, got %d", s)
	}
	if s := Oracle(ascending, 0); s != 0 {
		t.Errorf("expected 0, got %d", s)
	}
}

func TestPathOf(t *testing.T) {
	tests := []struct {
		n    uint
		path Path
	}{
		{0, Path{0, false}},
		{3, Path{3, false}},
		{8, Path{8, false}},
		{9, Path{8, true}},
		{1000, Path{8, true}},
	}
	for _, test := range tests {
		if p := PathOf(test.n); p != test.path {
			t.Errorf("PathOf(%d) = %v, expected %v", test.n, p, test.path)
		}
	}
}

func TestCheckClassifiesRevisions(t *testing.T) {
	tests := []struct {
		rev     string
		buf     prefixsum.Buffer
		n       uint
		outcome Outcome
	}{
		{revisions.Clamped, saturated, 8, Pass},
		{revisions.Clamped, ascending, 100, Pass},
		{revisions.Unclamped, ascending, 3, Pass},
		{revisions.Unclamped, ascending, 9, OutOfRange},
		{revisions.Narrow, saturated, 8, Overflow},
		{revisions.Narrow, ascending, 8, Pass},
		{revisions.Branching, ascending, 3, Pass},
		{revisions.Branching, ascending, 8, Mismatch},
		{revisions.Branching, prefixsum.Buffer{}, 100, Pass},
	}
	for i, test := range tests {
		rev := mustRevision(t, test.rev)
		c := Check(rev.Sum, test.buf, test.n)
		t.Logf("#%d: %s %v", i, rev.Name, c)
		if c.Outcome != test.outcome {
			t.Errorf("#%d: expected %s for %s, got %s", i, test.outcome, rev.Name, c.Outcome)
		}
	}
}

func TestCheckRecordsWrappedValue(t *testing.T) {
	c := Check(mustRevision(t, revisions.Narrow).Sum, saturated, 8)
	if c.Result != 232 || c.Expected != 2040 {
		t.Errorf("expected 232 instead of 2040, got %d instead of %d", c.Result, c.Expected)
	}
}

func TestCheckRecordsPanic(t *testing.T) {
	c := Check(mustRevision(t, revisions.Unclamped).Sum, ascending, 12)
	if c.Outcome != OutOfRange || c.Panic == "" {
		t.Errorf("expected recorded out-of-range panic, got %+v", c)
	}
	if c.Path != (Path{Effective: 8, Clamped: true}) {
		t.Errorf("unexpected path %v", c.Path)
	}
}

func TestCheckRepanicsForeignPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected foreign panic to propagate, got %v", r)
		}
	}()
	Check(func(prefixsum.Buffer, uint) uint16 { panic("boom") }, ascending, 1)
}

func TestOutcomeString(t *testing.T) {
	if OutOfRange.String() != "out-of-range" || Outcome(17).String() != "Outcome(17)" {
		t.Errorf("unexpected outcome names %q, %q", OutOfRange, Outcome(17))
	}
}
