// Package arith reads an arithmetic expression, renders it back in infix form
// and computes its value.
package arith

import (
	"github.com/xiam/arith/ast"
	"github.com/xiam/arith/eval"
	"github.com/xiam/arith/parser"
)

// Result holds the outcome of evaluating one expression
type Result struct {
	Tree  ast.Node
	Expr  string
	Value float64

	// Diagnostics lists problems that did not stop the parser, such as a
	// missing closing parenthesis.
	Diagnostics []error
}

// Evaluate runs the whole pipeline over the given expression. Errors returned
// by the parser are returned unchanged and no result is produced.
func Evaluate(expr string) (*Result, error) {
	p := parser.New(expr)

	root, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return &Result{
		Tree:        root,
		Expr:        ast.Encode(root),
		Value:       eval.Eval(root),
		Diagnostics: p.Diagnostics(),
	}, nil
}
