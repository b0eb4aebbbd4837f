package main

import (
	"fmt"
	"log"

	"github.com/xiam/arith/lexer"
)

func main() {
	input := `(1.5 + 2) * 3 ** 2 - 10 / 4`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, col: %d)\n\t-> %q\n\n", i, tt, col, lexeme)
	}
}
