package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/arith/ast"
	"github.com/xiam/arith/eval"
	"github.com/xiam/arith/parser"
)

func printTree(node ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	switch node := node.(type) {
	case *ast.Binary:
		fmt.Printf("%s<%s op=%q value=\"%v\">\n", indent, node.Type(), node.Op, eval.Eval(node))
		printIndentedTree(node.Left, indentationLevel+1)
		printIndentedTree(node.Right, indentationLevel+1)
		fmt.Printf("%s</%s>\n", indent, node.Type())
	case *ast.Number:
		fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node.Value, node.Type())
	}
}

func main() {
	input := `(1.5 + 2) * 3 ** 2 - 10 / 4`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
