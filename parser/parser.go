package parser

import (
	"errors"
	"strconv"

	"github.com/xiam/arith/ast"
	"github.com/xiam/arith/lexer"
)

// Parser builds an expression tree out of the tokens of a lexer. It holds one
// token of lookahead (curr) and the last consumed token (prev).
type Parser struct {
	lx *lexer.Lexer

	prev lexer.Token
	curr lexer.Token

	diagnostics []error
}

// New creates a parser for the given expression
func New(in string) *Parser {
	return &Parser{
		lx: lexer.New(in),
	}
}

// Parse reads one expression and returns the root of its tree. Tokens
// following a complete expression are ignored.
//
// An invalid character or a missing operand stops the parser and no tree is
// returned. A missing closing parenthesis does not: it is recorded in
// Diagnostics and parsing continues as if it were present.
func (p *Parser) Parse() (ast.Node, error) {
	p.curr = p.lx.Next()
	if p.check(lexer.TokenInvalid) {
		return nil, newError(ErrInvalidCharacter, p.curr)
	}
	return p.parseExpression()
}

// Diagnostics returns the non-fatal problems found by Parse
func (p *Parser) Diagnostics() []error {
	return p.diagnostics
}

func (p *Parser) isAtEnd() bool {
	return p.curr.Is(lexer.TokenEOF)
}

func (p *Parser) check(tt lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.curr.Is(tt)
}

func (p *Parser) advance() error {
	if p.isAtEnd() {
		return nil
	}
	p.prev, p.curr = p.curr, p.lx.Next()
	if p.check(lexer.TokenInvalid) {
		return newError(ErrInvalidCharacter, p.curr)
	}
	return nil
}

func (p *Parser) match(tt ...lexer.TokenType) (bool, error) {
	for i := range tt {
		if p.check(tt[i]) {
			return true, p.advance()
		}
	}
	return false, nil
}

// parseBinary folds operands of one precedence level from left to right
func (p *Parser) parseBinary(operand func() (ast.Node, error), tt ...lexer.TokenType) (ast.Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		ok, err := p.match(tt...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}

		tok := p.prev
		op, _ := ast.OperatorOf(tok.Type())

		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(tok, op, left, right)
	}
}

func (p *Parser) parseExpression() (ast.Node, error) {
	return p.parseBinary(p.parseTerm, lexer.TokenPlus, lexer.TokenMinus)
}

func (p *Parser) parseTerm() (ast.Node, error) {
	return p.parseBinary(p.parsePower, lexer.TokenMultiply, lexer.TokenDivide)
}

// parsePower recurses on its right operand, which makes "**" right
// associative.
func (p *Parser) parsePower() (ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	ok, err := p.match(lexer.TokenPower)
	if err != nil {
		return nil, err
	}
	if !ok {
		return left, nil
	}

	tok := p.prev
	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(tok, ast.OpPower, left, right), nil
}

func (p *Parser) parseFactor() (ast.Node, error) {
	ok, err := p.match(lexer.TokenNumber)
	if err != nil {
		return nil, err
	}
	if ok {
		return expectNumberNode(p.prev)
	}

	ok, err = p.match(lexer.TokenLeftParen)
	if err != nil {
		return nil, err
	}
	if ok {
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		ok, err := p.match(lexer.TokenRightParen)
		if err != nil {
			return nil, err
		}
		if !ok {
			p.diagnostics = append(p.diagnostics, newError(ErrUnbalancedParen, p.curr))
		}
		return node, nil
	}

	return nil, newError(ErrMissingOperand, p.curr)
}

func expectNumberNode(tok lexer.Token) (ast.Node, error) {
	f64, err := strconv.ParseFloat(tok.Text(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, err
	}
	return ast.NewNumber(tok, f64), nil
}

// Parse takes an expression and returns its tree. Diagnostics are discarded,
// use a Parser to inspect them.
func Parse(in []byte) (ast.Node, error) {
	p := New(string(in))

	root, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return root, nil
}
