package internal

import (
	"fmt"
	"strings"
)

var keywords = map[string]TokenType{
	"px":        PX,
	"left":      LEFT,
	"top":       TOP,
	"w":         WIDTH,
	"h":         HEIGHT,
	"fill":      FILL,
	"outside":   OUTSIDE,
	"rounded":   ROUNDED,
	"rectangle": RECTANGLE,
	"circle":    CIRCLE,
	"line":      LINE,
}

// Lexer scans SimpleUI source into a stream of tokens. The same scanner
// feeds the grammar engine and the standalone token dump, so both paths
// agree on the token grammar and on error positions.
type Lexer struct {
	source string
	pos    int
	line   int
	column int
}

// NewLexer creates a scanner positioned at line 1, column 1
func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole input and returns all tokens including the
// trailing EOF. It stops at the first lexical error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token, skipping whitespace and comments.
// After the input is exhausted it keeps returning EOF tokens carrying
// the final position.
func (l *Lexer) NextToken() (Token, error) {
	l.skipTrivia()

	line, column := l.line, l.column
	ch := l.currentChar()

	switch {
	case ch == 0:
		return Token{Type: EOF, Line: line, Column: column}, nil
	case isDigit(ch):
		return l.readNumber(), nil
	case ch == '#':
		return l.readHexColor()
	case isLetter(ch):
		return l.readIdentifier(), nil
	case ch == ',':
		l.advance()
		return Token{Type: COMMA, Value: ",", Line: line, Column: column}, nil
	case ch == ';':
		l.advance()
		return Token{Type: SEMICOLON, Value: ";", Line: line, Column: column}, nil
	case ch == ':':
		l.advance()
		return Token{Type: COLON, Value: ":", Line: line, Column: column}, nil
	default:
		l.advance()
		return Token{Type: INVALID, Value: string(ch), Line: line, Column: column}, &LexicalError{
			Msg:    fmt.Sprintf("unexpected character %q", ch),
			Line:   line,
			Column: column,
		}
	}
}

// skipTrivia consumes whitespace and // comments up to and including
// the newline that ends them
func (l *Lexer) skipTrivia() {
	for {
		ch := l.currentChar()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		if ch == '/' && l.peekChar() == '/' {
			for l.currentChar() != 0 && l.currentChar() != '\n' {
				l.advance()
			}
			if l.currentChar() == '\n' {
				l.advance()
			}
			continue
		}
		return
	}
}

// readNumber reads an integer or decimal literal. A trailing dot with
// no digit after it is left unconsumed.
func (l *Lexer) readNumber() Token {
	line, column := l.line, l.column
	start := l.pos

	for isDigit(l.currentChar()) {
		l.advance()
	}
	if l.currentChar() == '.' && isDigit(l.peekChar()) {
		l.advance()
		for isDigit(l.currentChar()) {
			l.advance()
		}
	}

	return Token{Type: NUMBER, Value: l.source[start:l.pos], Line: line, Column: column}
}

// readHexColor reads '#' followed by exactly 6 hex digits
func (l *Lexer) readHexColor() (Token, error) {
	line, column := l.line, l.column
	start := l.pos
	l.advance() // consume '#'

	digits := 0
	for digits < 6 && isHexDigit(l.currentChar()) {
		l.advance()
		digits++
	}

	value := l.source[start:l.pos]
	if digits != 6 {
		return Token{Type: INVALID, Value: value, Line: line, Column: column}, &LexicalError{
			Msg:    fmt.Sprintf("invalid hex color %q, expected 6 hex digits", value),
			Line:   line,
			Column: column,
		}
	}

	return Token{Type: HEX_COLOR, Value: value, Line: line, Column: column}, nil
}

// readIdentifier reads a keyword or color name. Keywords match
// case-insensitively; anything else is a COLOR_NAME resolved later by
// the transformer.
func (l *Lexer) readIdentifier() Token {
	line, column := l.line, l.column
	start := l.pos

	for isLetter(l.currentChar()) || isDigit(l.currentChar()) || l.currentChar() == '_' {
		l.advance()
	}

	value := l.source[start:l.pos]
	if tokenType, ok := keywords[strings.ToLower(value)]; ok {
		return Token{Type: tokenType, Value: value, Line: line, Column: column}
	}
	return Token{Type: COLOR_NAME, Value: value, Line: line, Column: column}
}

func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekChar() byte {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	return l.source[l.pos+1]
}

func (l *Lexer) advance() {
	ch := l.currentChar()
	if ch == 0 {
		return
	}
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
