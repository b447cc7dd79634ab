package lib

import (
	"fmt"
	"unicode/utf8"
)

type charInfo struct {
	ch       rune
	location Location
}

// Tokenize splits source into tokens. On any lexical error it returns a
// *LexError holding every diagnostic and no tokens.
func Tokenize(filename string, source []byte) ([]Token, error) {
	return lex(filename, source, nil)
}

func lex(filename string, source []byte, report func(Diagnostic)) ([]Token, error) {
	l := newLexer(filename, source, report)
	l.scan()
	if len(l.diagnostics) > 0 {
		return nil, &LexError{Diagnostics: l.diagnostics}
	}
	return l.tokens, nil
}

type lexer struct {
	filename         string
	source           []byte
	currentCharIndex int
	currentLocation  Location
	tokenStartIndex  int
	tokenLocation    Location
	tokens           []Token
	diagnostics      []Diagnostic
	reportCallback   func(Diagnostic)
}

func newLexer(filename string, source []byte, report func(Diagnostic)) *lexer {
	return &lexer{
		filename:         filename,
		source:           source,
		currentCharIndex: 0,
		currentLocation:  Location{Line: 1, Col: 1},
		tokenStartIndex:  0,
		tokenLocation:    Location{Line: 1, Col: 1},
		tokens:           []Token{},
		reportCallback:   report,
	}
}

func (l *lexer) peek() (charInfo, bool) {
	if l.currentCharIndex >= len(l.source) {
		return charInfo{}, false
	}
	ch, _ := utf8.DecodeRune(l.source[l.currentCharIndex:])
	return charInfo{ch: ch, location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	if l.currentCharIndex >= len(l.source) {
		return charInfo{}, false
	}
	ch, size := utf8.DecodeRune(l.source[l.currentCharIndex:])
	info := charInfo{ch: ch, location: l.currentLocation}
	l.currentCharIndex += size
	l.currentLocation.Offset = l.currentCharIndex
	if ch == '\n' {
		l.currentLocation.Line++
		l.currentLocation.Col = 1
	} else {
		l.currentLocation.Col++
	}
	return info, true
}

func (l *lexer) scan() {
	for {
		l.resetToken()
		chInfo, ok := l.advance()
		if !ok {
			return
		}

		switch ch := chInfo.ch; ch {
		case ' ', '\t', '\r', '\n':
			// skip
		case '+':
			l.emit(TokenTypePlus)
		case '*':
			l.emit(TokenTypeAsterisk)
		case '/':
			l.emit(TokenTypeSlash)
		case '%':
			l.emit(TokenTypePercent)
		case '^':
			l.emit(TokenTypeCaret)
		case '(':
			l.emit(TokenTypeLParen)
		case ')':
			l.emit(TokenTypeRParen)
		case '-':
			// a minus glued to a digit belongs to the number
			if next, ok := l.peek(); ok && isDigit(next.ch) {
				l.scanNumber()
			} else {
				l.emit(TokenTypeMinus)
			}
		case '.':
			l.errorf(ErrorKindInvalidFloat, "invalid floating number '%s'", l.fragment())
		default:
			if isDigit(ch) {
				l.scanNumber()
			} else {
				l.errorf(ErrorKindUnrecognizedSymbol, "unrecognized symbol '%s'", string(ch))
			}
		}
	}
}

// scanNumber runs after the first character of the number (a digit, or a
// minus followed by a digit) has been consumed.
func (l *lexer) scanNumber() {
	l.eatDigits()

	next, ok := l.peek()
	if !ok || next.ch != '.' {
		l.emit(TokenTypeNumber)
		return
	}

	_, _ = l.advance()
	if next, ok := l.peek(); !ok || !isDigit(next.ch) {
		l.errorf(ErrorKindInvalidFloat, "invalid floating number '%s'", l.fragment())
		return
	}

	l.eatDigits()
	l.emit(TokenTypeNumber)
}

func (l *lexer) eatDigits() {
	for {
		next, ok := l.peek()
		if !ok || !isDigit(next.ch) {
			return
		}
		_, _ = l.advance()
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *lexer) fragment() string {
	return string(l.source[l.tokenStartIndex:l.currentCharIndex])
}

func (l *lexer) emit(tokType TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:     tokType,
		Text:     l.source[l.tokenStartIndex:l.currentCharIndex:l.currentCharIndex],
		Location: l.tokenLocation,
	})
}

func (l *lexer) resetToken() {
	l.tokenLocation = l.currentLocation
	l.tokenStartIndex = l.currentCharIndex
}

func (l *lexer) errorf(kind ErrorKind, msg string, args ...interface{}) {
	d := Diagnostic{
		Kind:     kind,
		Filename: l.filename,
		Location: l.tokenLocation,
		Fragment: l.fragment(),
		Message:  fmt.Sprintf(msg, args...),
	}
	l.diagnostics = append(l.diagnostics, d)
	if l.reportCallback != nil {
		l.reportCallback(d)
	}
}
