package internal

import "fmt"

// LexicalError reports a character sequence that is not a valid token.
// Line and Column point at the offending character.
type LexicalError struct {
	Msg    string
	Line   int
	Column int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

// SyntaxError reports a token sequence that does not match the grammar.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("syntax error: %s", e.Msg)
	}
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

// SemanticError reports a grammar-valid shape statement missing a
// required property. Line and Column point at the statement start.
type SemanticError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
