package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node, one node per line
func Print(w io.Writer, n Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n := n.(type) {

	case *Binary:
		fmt.Fprintf(w, "%v (%v)\n", n.Op, n.Token())
		printLevel(w, n.Left, level+1)
		printLevel(w, n.Right, level+1)

	case *Number:
		fmt.Fprintf(w, "%v (%v)\n", n.Value, n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its infix text representation. Grouping
// parentheses are not restored.
func Encode(n Node) string {
	var b strings.Builder
	encodeNode(&b, n)
	return b.String()
}

func encodeNode(b *strings.Builder, n Node) {
	if n == nil {
		b.WriteString(":nil")
		return
	}
	switch n := n.(type) {
	case *Binary:
		encodeNode(b, n.Left)
		fmt.Fprintf(b, " %v ", n.Op)
		encodeNode(b, n.Right)

	case *Number:
		fmt.Fprintf(b, "%v", n.Value)

	default:
		panic("unknown node type")
	}
}
