package lib

import (
	"strconv"
)

// Parse lexes and parses source. A nil Expression with a nil error means the
// source held no tokens.
func Parse(filename string, source []byte) (Expression, error) {
	tokens, err := Tokenize(filename, source)
	if err != nil {
		return nil, err
	}
	return ParseTokens(filename, tokens)
}

// ParseTokens builds an expression tree from a complete token sequence. Every
// token must be consumed; anything left after the top level expression is a
// syntax error.
func ParseTokens(filename string, tokens []Token) (Expression, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	p := parser{
		reader:   newTokenBuffer(tokens),
		filename: filename,
		eof:      tokens[len(tokens)-1].end(),
	}

	expr, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	if tok, done := p.reader.Peek(); !done {
		return nil, p.unexpected(tok)
	}
	return expr, nil
}

type parser struct {
	reader   tokenReader
	filename string
	eof      Location
}

// expression := term ( (PLUS | MINUS) term )*
func (p *parser) scanExpr() (Expression, error) {
	left, err := p.scanTerm()
	if err != nil {
		return nil, err
	}

	for {
		opToken, done := p.reader.Peek()
		if done {
			break
		}

		opType, isOp := getAdditiveOpType(opToken)
		if !isOp {
			break
		}
		p.reader.Next()

		right, err := p.scanTerm()
		if err != nil {
			return nil, err
		}

		left = BinaryExpression{Left: left, Right: right, Op: opType}
	}

	return left, nil
}

// term := primary ( (TIMES | DIVIDE | MOD | POW) primary )*
//
// Power shares the multiplicative tier and groups to the left, so 2^3^2 is
// (2^3)^2.
func (p *parser) scanTerm() (Expression, error) {
	left, err := p.scanPrimary()
	if err != nil {
		return nil, err
	}

	for {
		opToken, done := p.reader.Peek()
		if done {
			break
		}

		opType, isOp := getMultiplicativeOpType(opToken)
		if !isOp {
			break
		}
		p.reader.Next()

		right, err := p.scanPrimary()
		if err != nil {
			return nil, err
		}

		left = BinaryExpression{Left: left, Right: right, Op: opType}
	}

	return left, nil
}

// primary := NUMBER | LPAREN expression RPAREN
func (p *parser) scanPrimary() (Expression, error) {
	tok, done := p.reader.Next()
	if done {
		return nil, newSyntaxError(p.filename, p.eof, "expecting expression but got EOF")
	}

	switch tok.Type {
	case TokenTypeNumber:
		return NumberLiteral{Value: parseNumber(tok)}, nil
	case TokenTypeLParen:
		return p.scanParenthetical(tok)
	default:
		return nil, p.unexpected(tok)
	}
}

func (p *parser) scanParenthetical(open Token) (Expression, error) {
	expr, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	next, done := p.reader.Next()
	if done {
		return nil, newSyntaxError(p.filename, p.eof,
			"expecting ')' to close '(' at %d:%d but got EOF", open.Location.Line, open.Location.Col)
	}
	if next.Type != TokenTypeRParen {
		return nil, newSyntaxError(p.filename, next.Location, "expecting ')' but got %s", next)
	}
	return expr, nil
}

func (p *parser) unexpected(tok Token) error {
	return newSyntaxError(p.filename, tok.Location, "unexpected token %s", tok)
}

// parseNumber converts lexer validated number text. Literals too large for a
// float64 become +/-Inf, as strtod would give.
func parseNumber(tok Token) float64 {
	value, _ := strconv.ParseFloat(string(tok.Text), 64)
	return value
}

func getAdditiveOpType(tok Token) (binaryExprOpType, bool) {
	switch tok.Type {
	case TokenTypePlus:
		return BinaryExprOpAdd, true
	case TokenTypeMinus:
		return BinaryExprOpSubtract, true
	}
	return 0, false
}

func getMultiplicativeOpType(tok Token) (binaryExprOpType, bool) {
	switch tok.Type {
	case TokenTypeAsterisk:
		return BinaryExprOpMultiply, true
	case TokenTypeSlash:
		return BinaryExprOpDivide, true
	case TokenTypePercent:
		return BinaryExprOpMod, true
	case TokenTypeCaret:
		return BinaryExprOpPow, true
	}
	return 0, false
}
