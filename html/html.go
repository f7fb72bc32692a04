/*
Package html renders segment trees as HTML tables.

Every level of a tree becomes a table row. A node spans as many columns as it
covers element positions, so the table visually mirrors the tree. Padding
nodes carry CSS class "padding", internal nodes class "node" and leaves
class "leaf".

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Table writes an HTML table for tree to w.
func Table[T any](tree *segtree.Tree[T], w io.Writer) error {
	table, err := TableNode(tree)
	if err != nil {
		return err
	}
	return html.Render(w, table)
}

// TableNode creates the HTML node tree of a table for tree, without rendering
// it. Clients may insert it into a larger document.
func TableNode[T any](tree *segtree.Tree[T]) (*html.Node, error) {
	if tree == nil || tree.Len() == 0 {
		return nil, segtree.ErrIllegalArguments
	}
	table := element(atom.Table, "class", "segtree")
	tbody := element(atom.Tbody)
	table.AppendChild(tbody)
	nodes := tree.Nodes()
	leaves := tree.Leaves()
	first := 0 // first node index of current level
	for width := leaves; width > 0; width /= 2 {
		tr := element(atom.Tr)
		count := leaves / width
		for k := first; k < first+count; k++ {
			class := "node"
			if width == 1 {
				class = "leaf"
			}
			if tree.IsPadding(k) {
				class = "padding"
			}
			td := element(atom.Td, "class", class, "id", "n"+strconv.Itoa(k))
			if width > 1 {
				td.Attr = append(td.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(width)})
			}
			td.AppendChild(text(fmt.Sprint(nodes[k])))
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
		first += count
	}
	tr := element(atom.Tr)
	for i := 0; i < leaves; i++ {
		th := element(atom.Th)
		th.AppendChild(text(strconv.Itoa(i)))
		tr.AppendChild(th)
	}
	tbody.AppendChild(tr)
	tracer().Debugf("html table for %d nodes", len(nodes))
	return table, nil
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
