package ast

import (
	"github.com/xiam/arith/lexer"
)

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	NodeTypeNumber NodeType = iota + 1
	NodeTypeBinary
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNumber: "number",
	NodeTypeBinary: "binary",
}

// Operator represents the operation of a binary node
type Operator uint8

// Binary operators
const (
	OpAdd Operator = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
)

var operatorSymbol = map[Operator]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
	OpPower:    "^",
}

var tokenOperator = map[lexer.TokenType]Operator{
	lexer.TokenPlus:     OpAdd,
	lexer.TokenMinus:    OpSubtract,
	lexer.TokenMultiply: OpMultiply,
	lexer.TokenDivide:   OpDivide,
	lexer.TokenPower:    OpPower,
}

// String returns the symbol used to render the operator
func (op Operator) String() string {
	if s, ok := operatorSymbol[op]; ok {
		return s
	}
	return "$"
}

// OperatorOf returns the operator that corresponds to the given token type,
// ok is false if the token type is not an operator.
func OperatorOf(tt lexer.TokenType) (op Operator, ok bool) {
	op, ok = tokenOperator[tt]
	return
}
