package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenNumber               // Digits with at most one decimal point: "3.14"
	TokenPlus                 // Plus sign: "+"
	TokenMinus                // Minus sign: "-"
	TokenMultiply             // Star: "*"
	TokenDivide               // Slash: "/"
	TokenPower                // Double star: "**"
	TokenLeftParen            // Open parenthesis: "("
	TokenRightParen           // Close parenthesis: ")"
	TokenEOF                  // End of input
)

var tokenValues = map[TokenType][]rune{
	TokenNumber:     []rune("0123456789"),
	TokenPlus:       []rune{'+'},
	TokenMinus:      []rune{'-'},
	TokenMultiply:   []rune{'*'},
	TokenDivide:     []rune{'/'},
	TokenLeftParen:  []rune{'('},
	TokenRightParen: []rune{')'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenNumber:     "number",
	TokenPlus:       "plus",
	TokenMinus:      "minus",
	TokenMultiply:   "multiply",
	TokenDivide:     "divide",
	TokenPower:      "power",
	TokenLeftParen:  "left_paren",
	TokenRightParen: "right_paren",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isSpace(r rune) bool {
	return r == ' '
}

func isDecimalPoint(r rune) bool {
	return r == '.'
}
