package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/arith/lexer"
	"github.com/xiam/arith/parser"
)

func runArgs(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, log.New(&stderr, "", 0))
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`1+2*3`, "expr: 1 + 2 * 3\neval: 7\n"},
		{`(1+2)*3`, "expr: 1 + 2 * 3\neval: 9\n"},
		{`2**3**2`, "expr: 2 ^ 3 ^ 2\neval: 512\n"},
		{`2**-1`, ""},
		{`1/0`, "expr: 1 / 0\neval: +Inf\n"},
		{`10/4`, "expr: 10 / 4\neval: 2.5\n"},
	}

	for _, tc := range testCases {
		stdout, stderr, err := runArgs(tc.In)
		if tc.Out == "" {
			assert.Error(t, err)
			assert.Empty(t, stdout)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.Out, stdout)
		assert.Empty(t, stderr)
	}
}

func TestRunInvalidCharacter(t *testing.T) {
	stdout, _, err := runArgs(`1+@2`)

	assert.ErrorIs(t, err, parser.ErrInvalidCharacter)
	assert.Empty(t, stdout)
}

func TestRunUnbalancedParenthesis(t *testing.T) {
	stdout, stderr, err := runArgs(`(1+2`)

	require.NoError(t, err)
	assert.Equal(t, "expr: 1 + 2\neval: 3\n", stdout)
	assert.Contains(t, stderr, "unbalanced parenthesis")
}

func TestRunArguments(t *testing.T) {
	_, _, err := runArgs()
	assert.Equal(t, errArguments, err)

	_, _, err = runArgs("1", "2")
	assert.Equal(t, errArguments, err)
}

func TestRunTokens(t *testing.T) {
	stdout, _, err := runArgs("-tokens", "2 ** 3")
	require.NoError(t, err)
	assert.Equal(t, "(:number \"2\" [1])\n(:power \"^\" [3])\n(:number \"3\" [6])\n(:EOF \"\" [7])\n", stdout)

	stdout, _, err = runArgs("-tokens", "2 # 3")
	assert.ErrorIs(t, err, lexer.ErrInvalidCharacter)
	assert.Empty(t, stdout)
}

func TestRunDebug(t *testing.T) {
	stdout, _, err := runArgs("-debug", "1+2")
	require.NoError(t, err)

	assert.Contains(t, stdout, "ast.Binary")
	assert.Contains(t, stdout, "expr: 1 + 2\neval: 3\n")
}
