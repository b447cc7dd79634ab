package lib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func getTokens(src string) ([]Token, error) {
	return Tokenize("", []byte(src))
}

func requireTok(t *testing.T, actual Token, typ TokenType, value string, line int, col int) {
	require.Equal(t, typ, actual.Type, "token type")
	require.Equal(t, value, string(actual.Text), "token value")
	require.Equal(t, line, actual.Location.Line, "token line")
	require.Equal(t, col, actual.Location.Col, "token col")
}

func requireLexError(t *testing.T, err error) *LexError {
	require.Error(t, err)
	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	return lexErr
}

func TestLexerEmpty(t *testing.T) {
	tokens, err := getTokens("")
	require.NoError(t, err)
	require.Len(t, tokens, 0)
}

func TestLexerWhitespaceOnly(t *testing.T) {
	tokens, err := getTokens(" \t\r\n  ")
	require.NoError(t, err)
	require.Len(t, tokens, 0)
}

func TestLexerNumbers(t *testing.T) {
	for _, literal := range []string{"0", "7", "42", "3.14", "0.5", "100.001", "12345678901234567890"} {
		tokens, err := getTokens(literal)
		require.NoError(t, err, literal)
		require.Len(t, tokens, 1, literal)
		requireTok(t, tokens[0], TokenTypeNumber, literal, 1, 1)
	}
}

func TestLexerOperators(t *testing.T) {
	tokens, err := getTokens("+-*/%^()")
	require.NoError(t, err)
	require.Len(t, tokens, 8)
	requireTok(t, tokens[0], TokenTypePlus, "+", 1, 1)
	requireTok(t, tokens[1], TokenTypeMinus, "-", 1, 2)
	requireTok(t, tokens[2], TokenTypeAsterisk, "*", 1, 3)
	requireTok(t, tokens[3], TokenTypeSlash, "/", 1, 4)
	requireTok(t, tokens[4], TokenTypePercent, "%", 1, 5)
	requireTok(t, tokens[5], TokenTypeCaret, "^", 1, 6)
	requireTok(t, tokens[6], TokenTypeLParen, "(", 1, 7)
	requireTok(t, tokens[7], TokenTypeRParen, ")", 1, 8)
}

func TestLexerExpression(t *testing.T) {
	tokens, err := getTokens("(3 + 4.5) * 2")
	require.NoError(t, err)
	require.Len(t, tokens, 7)
	requireTok(t, tokens[0], TokenTypeLParen, "(", 1, 1)
	requireTok(t, tokens[1], TokenTypeNumber, "3", 1, 2)
	requireTok(t, tokens[2], TokenTypePlus, "+", 1, 4)
	requireTok(t, tokens[3], TokenTypeNumber, "4.5", 1, 6)
	requireTok(t, tokens[4], TokenTypeRParen, ")", 1, 9)
	requireTok(t, tokens[5], TokenTypeAsterisk, "*", 1, 11)
	requireTok(t, tokens[6], TokenTypeNumber, "2", 1, 13)
}

func TestLexerMultiLine(t *testing.T) {
	tokens, err := getTokens(`
1 +
	22
* 3`)
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	requireTok(t, tokens[0], TokenTypeNumber, "1", 2, 1)
	requireTok(t, tokens[1], TokenTypePlus, "+", 2, 3)
	requireTok(t, tokens[2], TokenTypeNumber, "22", 3, 2)
	requireTok(t, tokens[3], TokenTypeAsterisk, "*", 4, 1)
	requireTok(t, tokens[4], TokenTypeNumber, "3", 4, 3)
}

func TestLexerMinusGluedToDigit(t *testing.T) {
	tokens, err := getTokens("3-4")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], TokenTypeNumber, "3", 1, 1)
	requireTok(t, tokens[1], TokenTypeNumber, "-4", 1, 2)
}

func TestLexerMinusSeparated(t *testing.T) {
	tokens, err := getTokens("3 - 4")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	requireTok(t, tokens[0], TokenTypeNumber, "3", 1, 1)
	requireTok(t, tokens[1], TokenTypeMinus, "-", 1, 3)
	requireTok(t, tokens[2], TokenTypeNumber, "4", 1, 5)
}

func TestLexerNegativeFloat(t *testing.T) {
	tokens, err := getTokens("-0.25")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], TokenTypeNumber, "-0.25", 1, 1)
}

func TestLexerTokenTextIsView(t *testing.T) {
	src := []byte("12 + 3")
	tokens, err := Tokenize("", src)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, 3, tokens[1].Location.Offset)

	src[0] = '9'
	require.Equal(t, "92", string(tokens[0].Text))
}

func TestLexerTrailingDot(t *testing.T) {
	_, err := getTokens("1.")
	lexErr := requireLexError(t, err)
	require.Equal(t, 1, lexErr.ErrorCount())

	d := lexErr.Diagnostics[0]
	require.Equal(t, ErrorKindInvalidFloat, d.Kind)
	require.Equal(t, "1.", d.Fragment)
	require.Equal(t, 1, d.Location.Line)
	require.Equal(t, 1, d.Location.Col)
	require.Equal(t, "1:1: error invalid floating number '1.'", d.Error())
}

func TestLexerLeadingDot(t *testing.T) {
	_, err := getTokens(".5")
	lexErr := requireLexError(t, err)
	require.Equal(t, 1, lexErr.ErrorCount())
	require.Equal(t, ErrorKindInvalidFloat, lexErr.Diagnostics[0].Kind)
	require.Equal(t, ".", lexErr.Diagnostics[0].Fragment)
}

func TestLexerUnrecognizedSymbol(t *testing.T) {
	tokens, err := getTokens("1 @ 2")
	require.Nil(t, tokens)
	lexErr := requireLexError(t, err)
	require.Equal(t, 1, lexErr.ErrorCount())

	d := lexErr.Diagnostics[0]
	require.Equal(t, ErrorKindUnrecognizedSymbol, d.Kind)
	require.Equal(t, "@", d.Fragment)
	require.Equal(t, 1, d.Location.Line)
	require.Equal(t, 3, d.Location.Col)
	require.Equal(t, "1:3: error unrecognized symbol '@'", d.Error())
}

func TestLexerAccumulatesErrors(t *testing.T) {
	_, err := Tokenize("calc.txt", []byte("1 $ 2\n& 3."))
	lexErr := requireLexError(t, err)
	require.Equal(t, 3, lexErr.ErrorCount())
	require.Equal(t, "calc.txt:1:3: error unrecognized symbol '$'", lexErr.Diagnostics[0].Error())
	require.Equal(t, "calc.txt:2:1: error unrecognized symbol '&'", lexErr.Diagnostics[1].Error())
	require.Equal(t, "calc.txt:2:3: error invalid floating number '3.'", lexErr.Diagnostics[2].Error())
}

func TestLexerErrorUnwrapsToDiagnostics(t *testing.T) {
	_, err := getTokens("x")
	var d Diagnostic
	require.True(t, errors.As(err, &d))
	require.Equal(t, ErrorKindUnrecognizedSymbol, d.Kind)
}

func TestLexerMultiByteSymbol(t *testing.T) {
	_, err := getTokens("1 × 2")
	lexErr := requireLexError(t, err)
	require.Equal(t, 1, lexErr.ErrorCount())
	require.Equal(t, "×", lexErr.Diagnostics[0].Fragment)
	require.Equal(t, 3, lexErr.Diagnostics[0].Location.Col)
}

func TestLexerReportsAsItGoes(t *testing.T) {
	reported := []Diagnostic{}
	_, err := lex("", []byte("# 1 #"), func(d Diagnostic) {
		reported = append(reported, d)
	})
	require.Error(t, err)
	require.Len(t, reported, 2)
	require.Equal(t, 5, reported[1].Location.Col)
}

func TestTokenString(t *testing.T) {
	tokens, err := getTokens("-1.5 ^")
	require.NoError(t, err)
	require.Equal(t, "<value=[-1.5] kind=[NUMBER]>", tokens[0].String())
	require.Equal(t, "<value=[^] kind=[POW]>", tokens[1].String())
}
