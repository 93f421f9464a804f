package internal

import "fmt"

// TokenType identifies the lexical class of a token
type TokenType int

const (
	EOF TokenType = iota - 1

	// Literals.
	// 12, 12.5, #FF00AA, chartreuse
	NUMBER
	HEX_COLOR
	COLOR_NAME

	// Keywords.
	// px, left, top, w, h, fill, outside, rounded
	PX
	LEFT
	TOP
	WIDTH
	HEIGHT
	FILL
	OUTSIDE
	ROUNDED

	// Shape names.
	// rectangle, circle, line
	RECTANGLE
	CIRCLE
	LINE

	// Punctuation.
	// ',', ';', ':'
	COMMA
	SEMICOLON
	COLON

	INVALID
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case HEX_COLOR:
		return "HEX_COLOR"
	case COLOR_NAME:
		return "COLOR_NAME"
	case PX:
		return "PX"
	case LEFT:
		return "LEFT"
	case TOP:
		return "TOP"
	case WIDTH:
		return "WIDTH"
	case HEIGHT:
		return "HEIGHT"
	case FILL:
		return "FILL"
	case OUTSIDE:
		return "OUTSIDE"
	case ROUNDED:
		return "ROUNDED"
	case RECTANGLE:
		return "RECTANGLE"
	case CIRCLE:
		return "CIRCLE"
	case LINE:
		return "LINE"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case COLON:
		return "COLON"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexeme with its 1-based source position
type Token struct {
	Type   TokenType
	Value  string
	Line   int
	Column int
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case INVALID:
		return fmt.Sprintf("INVALID(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}
