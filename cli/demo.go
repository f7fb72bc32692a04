package cli

import (
	"io"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/uax11"
)

// Demo builds a tree from line, prints its nodes and elements, sets element 2
// to 42 and prints the elements and all prefix aggregates.
//
// Malformed input is rejected before any tree is built. Output is written
// without colors, wrapped at width (0 means no wrapping). Display widths are
// measured with a context derived from the user environment.
func Demo(w io.Writer, line string, op Op, width int) error {
	elements, err := ParseElements(line)
	if err != nil {
		return err
	}
	tree, err := op.Build(elements)
	if err != nil {
		return err
	}
	p := makeDefaultPalette()
	p.setEnabled(false)
	if width <= 0 {
		width = int(^uint(0) >> 1)
	}
	d := display{w: w, op: op, p: p, width: width, context: uax11.ContextFromEnvironment()}
	d.nodes(tree)
	d.elements(tree)
	if tree.Len() > 2 {
		io.WriteString(w, "elements[2] = 42\n")
		if err = tree.Set(2, 42); err != nil {
			return err
		}
		d.elements(tree)
	}
	return d.prefixes(tree)
}

// display prints trees with a fixed operator, palette and width.
type display struct {
	w       io.Writer
	op      Op
	p       palette
	width   int
	context *uax11.Context
}

func (d display) nodes(tree *segtree.Tree[int64]) {
	nodes := tree.Nodes()
	values := make([]string, len(nodes))
	for k, v := range nodes {
		values[k] = formatValue(d.op, v, tree.IsPadding(k))
	}
	printList(d.w, "nodes", values, tree.IsPadding, d.p, d.width, d.context)
}

func (d display) elements(tree *segtree.Tree[int64]) {
	var values []string
	for _, v := range tree.All() {
		values = append(values, formatValue(d.op, v, false))
	}
	printList(d.w, "elements", values, nil, d.p, d.width, d.context)
}

func (d display) prefixes(tree *segtree.Tree[int64]) error {
	values := make([]string, tree.Len())
	for i := range values {
		agg, err := tree.Prefix(i)
		if err != nil {
			return err
		}
		values[i] = formatValue(d.op, agg, false)
	}
	printList(d.w, "prefix "+opPlurals[d.op], values, nil, d.p, d.width, d.context)
	return nil
}
