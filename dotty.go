package segtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Every slot of the flat buffer becomes a node, labeled with its value and
// the range of elements it covers. Padding leaves are drawn dashed.
func ToDot[T any](tree *Tree[T], w io.Writer) error {
	if tree == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	var nodelist, edgelist strings.Builder
	size := len(tree.nodes)
	for k := 0; k < size; k++ {
		first, last := span(tree.Leaves(), k)
		isleaf := k >= size>>1
		var label string
		if isleaf {
			label = fmt.Sprintf("%v\\n{%d}", tree.nodes[k], first)
		} else {
			label = fmt.Sprintf("%v\\n[%d…%d]", tree.nodes[k], first, last)
		}
		styles := nodeDotStyles(isleaf, tree.IsPadding(k), tree.Height()-levelOf(k))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", k, label, styles)
		if !isleaf {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", k, leftChild(k))
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", k, rightChild(k))
		}
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("segtree DOT: %s", err.Error())
	}
	return err
}

func levelOf(k int) int {
	level := 0
	for k > 0 {
		k = parent(k)
		level++
	}
	return level
}

func nodeDotStyles(isleaf bool, padding bool, height int) string {
	s := ",style=filled"
	if padding {
		s = ",style=dashed"
	}
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if !padding {
		if height >= len(hexcolors) {
			height = len(hexcolors) - 1
		}
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[height])
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
