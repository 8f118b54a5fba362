package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeBasic(t *testing.T) {
	keywords := map[string]bool{"if": true, "else": true}
	symbols := []string{"(", ")", "{", "}", "==", "=", "<=", "<"}
	tokens, err := Tokenize("test.src", `if (x <= 10) { y == 2 }`, keywords, symbols)
	require.NoError(t, err)

	var kinds []Kind
	var values []string
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
		values = append(values, tok.Value)
	}
	require.Equal(t, []Kind{KEYWORD, SYMBOL, IDENTIFIER, SYMBOL, INTEGER, SYMBOL, SYMBOL, IDENTIFIER, SYMBOL, INTEGER, SYMBOL, EOF},
		kinds)
	require.Equal(t, "<=", values[3])
	require.True(t, tokens[len(tokens)-1].IsEOF())
}

func TestTokenizeLongestMatchSymbol(t *testing.T) {
	tokens, err := Tokenize("", "a==b", nil, []string{"=", "=="})
	require.NoError(t, err)
	require.Equal(t, "==", tokens[1].Value)
	require.Equal(t, SYMBOL, tokens[1].Kind)
}

func TestTokenizeComments(t *testing.T) {
	tokens, err := Tokenize("", "x // trailing\n/* block */ y", nil, nil)
	require.NoError(t, err)
	require.Len(t, tokens, 3) // x, y, EOF
	require.Equal(t, "x", tokens[0].Value)
	require.Equal(t, "y", tokens[1].Value)
}

func TestTokenizeString(t *testing.T) {
	tokens, err := Tokenize("", `"hello \"world\""`, nil, nil)
	require.NoError(t, err)
	require.Equal(t, STRING, tokens[0].Kind)
	require.Equal(t, `hello "world"`, tokens[0].Value)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize("", `"hello`, nil, nil)
	require.Error(t, err)
}

func TestTokenizeUnknownSymbol(t *testing.T) {
	_, err := Tokenize("", "@", nil, []string{"="})
	require.Error(t, err)
}

func TestCursorMarkReset(t *testing.T) {
	tokens, err := Tokenize("", "a b c", nil, nil)
	require.NoError(t, err)
	c := NewCursor(tokens)

	require.Equal(t, "a", c.Next().Value)
	mark := c.Mark()
	require.Equal(t, "b", c.Next().Value)
	require.Equal(t, "c", c.Next().Value)
	c.Reset(mark)
	require.Equal(t, "b", c.Next().Value)
}

func TestCursorPeekPastEOFStaysAtEOF(t *testing.T) {
	tokens, err := Tokenize("", "a", nil, nil)
	require.NoError(t, err)
	c := NewCursor(tokens)
	require.Equal(t, "a", c.Next().Value)
	require.True(t, c.Peek(0).IsEOF())
	require.True(t, c.Peek(5).IsEOF())
	require.True(t, c.Next().IsEOF())
	require.True(t, c.Next().IsEOF())
}
