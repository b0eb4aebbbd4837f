package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerExhausted(t *testing.T) {
	lx := New(`1 2`)

	assert.Equal(t, "1", lx.Next().Text())
	assert.Equal(t, "2", lx.Next().Text())

	for i := 0; i < 3; i++ {
		tok := lx.Next()
		assert.True(t, tok.Is(TokenEOF))
		assert.Equal(t, "", tok.Text())
	}
}

func TestScannerStopsAtNUL(t *testing.T) {
	tokens, err := Tokenize([]byte("1+2\x00@"))

	assert.NoError(t, err)
	assert.Len(t, tokens, 4)
	assert.True(t, tokens[3].Is(TokenEOF))
}
