package ast

import (
	"fmt"

	"github.com/xiam/arith/lexer"
)

// Node represents an element of the expression tree. The set of nodes is
// closed: a Node is either a *Number or a *Binary.
type Node interface {
	Type() NodeType
	Token() lexer.Token

	node()
}

// Number is a leaf holding a decoded numeric constant
type Number struct {
	Value float64

	tok lexer.Token
}

// Binary is an operation between two sub-expressions. It owns both children.
type Binary struct {
	Op    Operator
	Left  Node
	Right Node

	tok lexer.Token
}

// NewNumber creates a leaf node from the token it was decoded from
func NewNumber(tok lexer.Token, v float64) *Number {
	return &Number{
		Value: v,
		tok:   tok,
	}
}

// NewBinary creates a node that applies op to left and right. Both children
// are required.
func NewBinary(tok lexer.Token, op Operator, left Node, right Node) *Binary {
	if left == nil || right == nil {
		panic("binary node requires two children")
	}
	return &Binary{
		Op:    op,
		Left:  left,
		Right: right,
		tok:   tok,
	}
}

// Type returns the type of the node
func (n *Number) Type() NodeType {
	return NodeTypeNumber
}

// Token returns the token associated to the node
func (n *Number) Token() lexer.Token {
	return n.tok
}

func (n *Number) String() string {
	return fmt.Sprintf("(%v): %v", n.Type(), n.Value)
}

func (n *Number) node() {}

// Type returns the type of the node
func (n *Binary) Type() NodeType {
	return NodeTypeBinary
}

// Token returns the operator token associated to the node
func (n *Binary) Token() lexer.Token {
	return n.tok
}

func (n *Binary) String() string {
	return fmt.Sprintf("(%v): %v", n.Type(), n.Op)
}

func (n *Binary) node() {}

var (
	_ = Node(&Number{})
	_ = Node(&Binary{})
)
