package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestTable(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := segtree.BuildSum([]int64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err.Error())
	}
	var out bytes.Buffer
	if err := Table(tree, &out); err != nil {
		t.Fatal(err.Error())
	}
	t.Logf("%s", out.String())
	doc, err := html.Parse(strings.NewReader(out.String()))
	if err != nil {
		t.Fatal(err.Error())
	}
	counts := map[string]int{}
	var rows int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Td:
				counts[attr(n, "class")]++
			case atom.Tr:
				rows++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if rows != 5 {
		t.Errorf("expected 4 levels + 1 index row, have %d rows", rows)
	}
	if counts["padding"] != 4 || counts["leaf"] != 5 || counts["node"] != 6 {
		t.Errorf("unexpected cell classes: %v", counts)
	}
	if !strings.Contains(out.String(), `<td class="node" id="n0" colspan="8">15</td>`) {
		t.Errorf("expected root cell spanning 8 columns")
	}
}

func TestTableRejectsNil(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var out bytes.Buffer
	if err := Table[int64](nil, &out); err == nil {
		t.Errorf("expected error for nil tree")
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
