package lexer

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned by Tokenize when the input contains a
// character that does not belong to any lexical unit.
var ErrInvalidCharacter = errors.New("invalid character")

type lexState func(*Lexer) lexState

var (
	isDigit = isTokenType(TokenNumber)

	isPlus     = isTokenType(TokenPlus)
	isMinus    = isTokenType(TokenMinus)
	isMultiply = isTokenType(TokenMultiply)
	isDivide   = isTokenType(TokenDivide)

	isLeftParen  = isTokenType(TokenLeftParen)
	isRightParen = isTokenType(TokenRightParen)
)

// New initializes a Lexer that scans the given expression
func New(in string) *Lexer {
	return &Lexer{
		in: []rune(in),
	}
}

// Lexer represents a lexical analyzer. Tokens are produced on demand by Next,
// the lexer never scans ahead of the token being requested.
type Lexer struct {
	in []rune

	start  int
	offset int

	tok Token
}

// Next scans and returns the next token. Once the end of input is reached
// every call returns a TokenEOF token.
func (lx *Lexer) Next() Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tok
}

func (lx *Lexer) emit(tt TokenType) {
	lx.emitText(tt, string(lx.in[lx.start:lx.offset]))
}

func (lx *Lexer) emitText(tt TokenType, text string) {
	lx.tok = Token{
		tt:     tt,
		lexeme: text,

		col: lx.start + 1,
	}
	lx.start = lx.offset
}

// eof reports whether the cursor reached the end of the input, a NUL
// character also terminates it.
func (lx *Lexer) eof() bool {
	return lx.offset >= len(lx.in) || lx.in[lx.offset] == 0
}

func (lx *Lexer) peek() rune {
	if lx.eof() {
		return rune(0)
	}
	return lx.in[lx.offset]
}

func (lx *Lexer) next() rune {
	r := lx.peek()
	lx.offset++
	return r
}

func (lx *Lexer) skip() {
	lx.offset++
	lx.start = lx.offset
}

func lexDefaultState(lx *Lexer) lexState {
	for isSpace(lx.peek()) {
		lx.skip()
	}

	if lx.eof() {
		return lexEmitText(TokenEOF, "")
	}

	r := lx.next()

	switch {
	case isDigit(r):
		return lexNumber

	case isPlus(r):
		return lexEmit(TokenPlus)
	case isMinus(r):
		return lexEmit(TokenMinus)
	case isMultiply(r):
		if isMultiply(lx.peek()) {
			lx.next()
			return lexEmitText(TokenPower, "^")
		}
		return lexEmit(TokenMultiply)
	case isDivide(r):
		return lexEmit(TokenDivide)

	case isLeftParen(r):
		return lexEmit(TokenLeftParen)
	case isRightParen(r):
		return lexEmit(TokenRightParen)
	}

	return lexEmit(TokenInvalid)
}

// lexNumber collects digits and at most one decimal point, a second point
// ends the numeral.
func lexNumber(lx *Lexer) lexState {
	seenPoint := false
	for {
		p := lx.peek()
		if isDecimalPoint(p) && !seenPoint {
			seenPoint = true
		} else if !isDigit(p) {
			break
		}
		lx.next()
	}
	return lexEmit(TokenNumber)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return nil
	}
}

func lexEmitText(tt TokenType, text string) lexState {
	return func(lx *Lexer) lexState {
		lx.emitText(tt, text)
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, the
// last one being TokenEOF, or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(string(in))
	for {
		tok := lx.Next()
		if tok.Is(TokenInvalid) {
			return nil, fmt.Errorf("%w %q at column %d", ErrInvalidCharacter, tok.Text(), tok.Pos())
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
