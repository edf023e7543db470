package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/prefixsum/explore"
	"github.com/npillmayer/prefixsum/revisions"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/net/html"
)

func exploreRevision(t *testing.T, name string) *explore.Report {
	t.Helper()
	ex, err := explore.New(explore.Config{})
	if err != nil {
		t.Fatalf("explore.New failed: %v", err)
	}
	defer ex.Close()
	rev, err := revisions.Lookup(name)
	if err != nil {
		t.Fatalf("unexpected Lookup error: %v", err)
	}
	rep, err := ex.Explore(context.Background(), rev.Name, rev.Sum)
	if err != nil {
		t.Fatalf("Explore failed: %v", err)
	}
	return rep
}

func TestTextOneLinePerTest(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rep := exploreRevision(t, revisions.Unclamped)
	var out bytes.Buffer
	if err := Text(&out, rep, nil); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	t.Logf("\n%s", out.String())
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != len(rep.Tests)+1 {
		t.Fatalf("expected %d lines, got %d", len(rep.Tests)+1, len(lines))
	}
	if !strings.HasPrefix(lines[0], "test000001 n=0 ") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	last := lines[len(lines)-2]
	if !strings.Contains(last, "panic") || !strings.Contains(last, "out-of-range") {
		t.Errorf("expected out-of-range test last, got %q", last)
	}
	if !strings.Contains(last, "buf=[") {
		t.Errorf("expected buffer in wide output, got %q", last)
	}
	if lines[len(lines)-1] != Summary(rep) {
		t.Errorf("expected summary line, got %q", lines[len(lines)-1])
	}
}

func TestTextCompact(t *testing.T) {
	rep := exploreRevision(t, revisions.Narrow)
	var out bytes.Buffer
	if err := Text(&out, rep, &Config{LineWidth: 60, NoColor: true}); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if strings.Contains(out.String(), "buf=") {
		t.Errorf("compact output should omit buffers:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "overflow") {
		t.Errorf("expected overflow in output:\n%s", out.String())
	}
}

func TestSummary(t *testing.T) {
	rep := exploreRevision(t, revisions.Narrow)
	s := Summary(rep)
	if !strings.HasPrefix(s, "narrow: 187 cases, 10 paths") || !strings.Contains(s, "overflow=15") {
		t.Errorf("unexpected summary %q", s)
	}
}

func TestHTMLTable(t *testing.T) {
	rep := exploreRevision(t, revisions.Branching)
	var out bytes.Buffer
	if err := HTML(&out, rep); err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	doc, err := html.Parse(&out)
	if err != nil {
		t.Fatalf("cannot parse rendered HTML: %v", err)
	}
	rows, mismatches := 0, 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows++
			for _, a := range n.Attr {
				if a.Key == "class" && a.Val == explore.Mismatch.String() {
					mismatches++
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if rows != len(rep.Tests)+1 {
		t.Errorf("expected %d table rows, got %d", len(rep.Tests)+1, rows)
	}
	if mismatches == 0 {
		t.Errorf("expected rows classed as mismatch")
	}
}
