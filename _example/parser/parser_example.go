package main

import (
	"log"
	"os"

	"github.com/xiam/arith/ast"
	"github.com/xiam/arith/parser"
)

func main() {
	input := `(1.5 + 2) * 3 ** 2 - 10 / 4`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, root)
}
