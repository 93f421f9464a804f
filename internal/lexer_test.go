package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := NewLexer(source).Tokenize()
	require.NoError(t, err)
	return tokens
}

func TestTokenizeStatement(t *testing.T) {
	tokens := tokenize(t, "100px left, w:20.5px, fill:#FF00aa, rounded, rectangle;")

	want := []Token{
		{Type: NUMBER, Value: "100", Line: 1, Column: 1},
		{Type: PX, Value: "px", Line: 1, Column: 4},
		{Type: LEFT, Value: "left", Line: 1, Column: 7},
		{Type: COMMA, Value: ",", Line: 1, Column: 11},
		{Type: WIDTH, Value: "w", Line: 1, Column: 13},
		{Type: COLON, Value: ":", Line: 1, Column: 14},
		{Type: NUMBER, Value: "20.5", Line: 1, Column: 15},
		{Type: PX, Value: "px", Line: 1, Column: 19},
		{Type: COMMA, Value: ",", Line: 1, Column: 21},
		{Type: FILL, Value: "fill", Line: 1, Column: 23},
		{Type: COLON, Value: ":", Line: 1, Column: 27},
		{Type: HEX_COLOR, Value: "#FF00aa", Line: 1, Column: 28},
		{Type: COMMA, Value: ",", Line: 1, Column: 35},
		{Type: ROUNDED, Value: "rounded", Line: 1, Column: 37},
		{Type: COMMA, Value: ",", Line: 1, Column: 44},
		{Type: RECTANGLE, Value: "rectangle", Line: 1, Column: 46},
		{Type: SEMICOLON, Value: ";", Line: 1, Column: 55},
		{Type: EOF, Line: 1, Column: 56},
	}
	assert.Equal(t, want, tokens)
}

func TestTokenizePositions(t *testing.T) {
	tokens := tokenize(t, "// header\nw:10px,\n\t h:20px, circle;\n")

	want := []Token{
		{Type: WIDTH, Value: "w", Line: 2, Column: 1},
		{Type: COLON, Value: ":", Line: 2, Column: 2},
		{Type: NUMBER, Value: "10", Line: 2, Column: 3},
		{Type: PX, Value: "px", Line: 2, Column: 5},
		{Type: COMMA, Value: ",", Line: 2, Column: 7},
		{Type: HEIGHT, Value: "h", Line: 3, Column: 3},
		{Type: COLON, Value: ":", Line: 3, Column: 4},
		{Type: NUMBER, Value: "20", Line: 3, Column: 5},
		{Type: PX, Value: "px", Line: 3, Column: 7},
		{Type: COMMA, Value: ",", Line: 3, Column: 9},
		{Type: CIRCLE, Value: "circle", Line: 3, Column: 11},
		{Type: SEMICOLON, Value: ";", Line: 3, Column: 17},
		{Type: EOF, Line: 4, Column: 1},
	}
	assert.Equal(t, want, tokens)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{"0", "0"},
		{"100", "100"},
		{"12.5", "12.5"},
		{"0.25", "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := tokenize(t, tt.input)
			require.Len(t, tokens, 2)
			assert.Equal(t, NUMBER, tokens[0].Type)
			assert.Equal(t, tt.value, tokens[0].Value)
		})
	}

	// a trailing dot is not part of the number
	_, err := NewLexer("12.").Tokenize()
	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Line)
	assert.Equal(t, 3, lexErr.Column)
}

func TestTokenizeHexColors(t *testing.T) {
	tokens := tokenize(t, "#abcdef")
	require.Len(t, tokens, 2)
	assert.Equal(t, HEX_COLOR, tokens[0].Type)
	assert.Equal(t, "#abcdef", tokens[0].Value)

	// only six hex digits belong to the color
	tokens = tokenize(t, "#1234567")
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Type: HEX_COLOR, Value: "#123456", Line: 1, Column: 1}, tokens[0])
	assert.Equal(t, Token{Type: NUMBER, Value: "7", Line: 1, Column: 8}, tokens[1])
}

func TestTokenizeMalformedHex(t *testing.T) {
	tests := []struct {
		name   string
		source string
		line   int
		column int
	}{
		{"too short at end of input", "#12", 1, 1},
		{"too short before boundary", "fill:#12, circle;", 1, 6},
		{"non-hex characters", "#GGGGGG", 1, 1},
		{"bare hash", "#", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.source).Tokenize()
			var lexErr *LexicalError
			require.ErrorAs(t, err, &lexErr)
			assert.Contains(t, lexErr.Msg, "expected 6 hex digits")
			assert.Equal(t, tt.line, lexErr.Line)
			assert.Equal(t, tt.column, lexErr.Column)
		})
	}
}

func TestTokenizeKeywordsCaseInsensitive(t *testing.T) {
	tokens := tokenize(t, "W Rectangle FILL Px")
	require.Len(t, tokens, 5)
	assert.Equal(t, WIDTH, tokens[0].Type)
	assert.Equal(t, RECTANGLE, tokens[1].Type)
	assert.Equal(t, FILL, tokens[2].Type)
	assert.Equal(t, PX, tokens[3].Type)
	// the original spelling is kept in the token value
	assert.Equal(t, "Rectangle", tokens[1].Value)
}

func TestTokenizeColorNames(t *testing.T) {
	tokens := tokenize(t, "chartreuse steel_blue c3")
	require.Len(t, tokens, 4)
	for _, tok := range tokens[:3] {
		assert.Equal(t, COLOR_NAME, tok.Type)
	}
	assert.Equal(t, "steel_blue", tokens[1].Value)
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := NewLexer("w:10px @").Tokenize()
	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Msg, "unexpected character")
	assert.Equal(t, 1, lexErr.Line)
	assert.Equal(t, 8, lexErr.Column)
}

func TestTokenizeEmptyAndTrivia(t *testing.T) {
	tests := []struct {
		name   string
		source string
		line   int
		column int
	}{
		{"empty", "", 1, 1},
		{"whitespace only", "  \t \r\n ", 2, 2},
		{"comment only", "// nothing here", 1, 16},
		{"comment with newline", "// nothing here\n", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenize(t, tt.source)
			require.Len(t, tokens, 1)
			assert.Equal(t, Token{Type: EOF, Line: tt.line, Column: tt.column}, tokens[0])
		})
	}
}

func TestNextTokenStaysAtEOF(t *testing.T) {
	lex := NewLexer(";")
	tok, err := lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, SEMICOLON, tok.Type)

	for i := 0; i < 3; i++ {
		tok, err = lex.NextToken()
		require.NoError(t, err)
		assert.Equal(t, EOF, tok.Type)
	}
}

func TestTokenizeFreshStatePerLexer(t *testing.T) {
	source := "w:10px, h:10px, circle;"
	first := tokenize(t, source)
	second := tokenize(t, source)
	assert.Equal(t, first, second)

	// errors from one lexer do not leak into a new one
	_, err := NewLexer("#12").Tokenize()
	require.Error(t, err)
	_, err = NewLexer(source).Tokenize()
	require.NoError(t, err)
}
