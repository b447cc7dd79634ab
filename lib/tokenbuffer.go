package lib

// tokenBuffer hands out an already lexed token sequence one token at a time.
// The parser only ever sees a complete, error free sequence.
type tokenBuffer struct {
	tokens []Token
	cursor int
}

func newTokenBuffer(tokens []Token) *tokenBuffer {
	return &tokenBuffer{
		tokens: tokens,
		cursor: 0,
	}
}

func (tb *tokenBuffer) Next() (tok Token, done bool) {
	tok, done = tb.Peek()
	if !done {
		tb.cursor++
	}
	return tok, done
}

func (tb *tokenBuffer) Peek() (Token, bool) {
	if tb.cursor >= len(tb.tokens) {
		return Token{}, true
	}
	return tb.tokens[tb.cursor], false
}

