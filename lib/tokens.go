package lib

import "fmt"

type TokenType int

const (
	TokenTypeNumber TokenType = iota
	TokenTypePlus
	TokenTypeMinus
	TokenTypeAsterisk
	TokenTypeSlash
	TokenTypePercent
	TokenTypeCaret
	TokenTypeLParen
	TokenTypeRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeNumber:
		return "NUMBER"
	case TokenTypePlus:
		return "PLUS"
	case TokenTypeMinus:
		return "MINUS"
	case TokenTypeAsterisk:
		return "TIMES"
	case TokenTypeSlash:
		return "DIVIDE"
	case TokenTypePercent:
		return "MOD"
	case TokenTypeCaret:
		return "POW"
	case TokenTypeLParen:
		return "LPAREN"
	case TokenTypeRParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Location is a position in the source buffer. Offset is in bytes, Line and
// Col are 1-based and Col counts characters.
type Location struct {
	Offset int
	Line   int
	Col    int
}

// Token is a lexical unit. Text is a view into the lexed source, so the
// source buffer must not be modified while tokens are in use.
type Token struct {
	Type     TokenType
	Text     []byte
	Location Location
}

func (t Token) String() string {
	return fmt.Sprintf("<value=[%s] kind=[%s]>", t.Text, t.Type)
}

// end is the location just past the token. Tokens never span lines.
func (t Token) end() Location {
	return Location{
		Offset: t.Location.Offset + len(t.Text),
		Line:   t.Location.Line,
		Col:    t.Location.Col + len([]rune(string(t.Text))),
	}
}
