package internal

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// lexDef exposes the SimpleUI scanner as a participle lexer.Definition
// so the grammar tokenizes through the exact scanner that Tokenize
// offers to external tooling.
type lexDef struct{}

// Symbols builds its map inline: shapeParser's initializer calls it
// through participle, so it must not depend on package variables that
// initialize in file order.
func (lexDef) Symbols() map[string]lexer.TokenType {
	return map[string]lexer.TokenType{
		"EOF":       lexer.EOF,
		"Number":    symbolType(NUMBER),
		"HexColor":  symbolType(HEX_COLOR),
		"ColorName": symbolType(COLOR_NAME),
		"Px":        symbolType(PX),
		"Left":      symbolType(LEFT),
		"Top":       symbolType(TOP),
		"Width":     symbolType(WIDTH),
		"Height":    symbolType(HEIGHT),
		"Fill":      symbolType(FILL),
		"Outside":   symbolType(OUTSIDE),
		"Rounded":   symbolType(ROUNDED),
		"Rectangle": symbolType(RECTANGLE),
		"Circle":    symbolType(CIRCLE),
		"Line":      symbolType(LINE),
		"Comma":     symbolType(COMMA),
		"Semicolon": symbolType(SEMICOLON),
		"Colon":     symbolType(COLON),
	}
}

// symbolType shifts scanner token types out of participle's reserved
// negative range. EOF maps onto participle's own EOF.
func symbolType(t TokenType) lexer.TokenType {
	if t == EOF {
		return lexer.EOF
	}
	return lexer.TokenType(int(t) + 1)
}

func (lexDef) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &tokenStream{lex: NewLexer(string(source)), filename: filename}, nil
}

type tokenStream struct {
	lex      *Lexer
	filename string
}

func (s *tokenStream) Next() (lexer.Token, error) {
	tok, err := s.lex.NextToken()
	if err != nil {
		return lexer.Token{}, err
	}
	return lexer.Token{
		Type:  symbolType(tok.Type),
		Value: tok.Value,
		Pos: lexer.Position{
			Filename: s.filename,
			Line:     tok.Line,
			Column:   tok.Column,
		},
	}, nil
}
