package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/prefixsum/explore"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ReportClass is the CSS class of the table written by HTML. Rows carry the
// name of their outcome as class.
const ReportClass = "prefixsum-report"

var columns = []string{"test", "n", "path", "buffer", "result", "expected", "outcome"}

// HTML writes the generated tests of rep as an HTML table to w.
func HTML(w io.Writer, rep *explore.Report) error {
	table := element(atom.Table, "class", ReportClass)
	caption := element(atom.Caption)
	caption.AppendChild(text(Summary(rep)))
	table.AppendChild(caption)
	head := element(atom.Thead)
	tr := element(atom.Tr)
	for _, col := range columns {
		th := element(atom.Th)
		th.AppendChild(text(col))
		tr.AppendChild(th)
	}
	head.AppendChild(tr)
	table.AppendChild(head)
	body := element(atom.Tbody)
	for i, c := range rep.Tests {
		tr := element(atom.Tr, "class", c.Outcome.String())
		cells := []string{
			fmt.Sprintf("test%06d", i+1),
			strconv.FormatUint(uint64(c.Length), 10),
			c.Path.String(),
			c.Buffer.String(),
			result(c),
			strconv.FormatUint(c.Expected, 10),
			c.Outcome.String(),
		}
		for _, cell := range cells {
			td := element(atom.Td)
			td.AppendChild(text(cell))
			tr.AppendChild(td)
		}
		body.AppendChild(tr)
	}
	table.AppendChild(body)
	return html.Render(w, table)
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
