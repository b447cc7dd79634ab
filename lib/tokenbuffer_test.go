package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func numberToken(text string) Token {
	return Token{Type: TokenTypeNumber, Text: []byte(text), Location: Location{Line: 1, Col: 1}}
}

func TestNext(t *testing.T) {
	buf := newTokenBuffer([]Token{numberToken("1")})

	tok, done := buf.Next()
	require.False(t, done)
	require.Equal(t, TokenTypeNumber, tok.Type)
	require.Equal(t, "1", string(tok.Text))
}

func TestNextDoneMulti(t *testing.T) {
	buf := newTokenBuffer([]Token{numberToken("1")})

	_, done := buf.Next()
	require.False(t, done)

	for i := 0; i < 3; i++ {
		_, done = buf.Next()
		require.True(t, done)
	}
}

func TestNextEmpty(t *testing.T) {
	buf := newTokenBuffer(nil)
	_, done := buf.Next()
	require.True(t, done)
}

func TestPeek(t *testing.T) {
	buf := newTokenBuffer([]Token{numberToken("1"), numberToken("2")})

	tok, done := buf.Peek()
	require.False(t, done)
	require.Equal(t, "1", string(tok.Text))

	tok, done = buf.Peek()
	require.False(t, done)
	require.Equal(t, "1", string(tok.Text))

	tok, done = buf.Next()
	require.False(t, done)
	require.Equal(t, "1", string(tok.Text))

	tok, done = buf.Next()
	require.False(t, done)
	require.Equal(t, "2", string(tok.Text))

	_, done = buf.Peek()
	require.True(t, done)
}
