package internal

import (
	"errors"

	"github.com/alecthomas/participle/v2"
)

// Parse compiles SimpleUI source into its shape list. On failure it
// returns a *LexicalError, *SyntaxError or *SemanticError and no
// shapes; a failed parse never yields a partial list.
func Parse(source string) (ShapeList, error) {
	prog, err := shapeParser.ParseString("", source)
	if err != nil {
		return nil, classifyParseError(err)
	}
	return reduceProgram(prog)
}

// classifyParseError folds grammar-engine failures into the compiler's
// error taxonomy. Scanner errors pass through untouched.
func classifyParseError(err error) error {
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return lexErr
	}
	var parseErr participle.Error
	if errors.As(err, &parseErr) {
		pos := parseErr.Position()
		return &SyntaxError{
			Msg:    parseErr.Message(),
			Line:   pos.Line,
			Column: pos.Column,
		}
	}
	return &SyntaxError{Msg: err.Error()}
}
