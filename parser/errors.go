package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/arith/lexer"
)

var (
	ErrInvalidCharacter = lexer.ErrInvalidCharacter
	ErrMissingOperand   = errors.New("missing operand")
	ErrUnbalancedParen  = errors.New("unbalanced parenthesis")
)

// Error is a parse failure located at a token
type Error struct {
	Err error
	Tok lexer.Token
}

func newError(err error, tok lexer.Token) *Error {
	return &Error{Err: err, Tok: tok}
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrInvalidCharacter) {
		return fmt.Sprintf("%v %q at column %d", e.Err, e.Tok.Text(), e.Tok.Pos())
	}
	return fmt.Sprintf("%v at column %d, got %v", e.Err, e.Tok.Pos(), e.Tok.Type())
}

func (e *Error) Unwrap() error {
	return e.Err
}
