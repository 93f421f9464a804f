package internal

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Parse tree, one node type per grammar rule. The reducer in
// transform.go pattern-matches on these to build the AST.

type programNode struct {
	Shapes []*shapeNode `parser:"@@*"`
}

type shapeNode struct {
	Pos lexer.Position

	Clauses []*clauseNode `parser:"( @@ Comma )*"`
	Name    string        `parser:"@(Rectangle | Circle | Line) Semicolon"`
}

type clauseNode struct {
	Anchor  *anchorNode `parser:"  @@"`
	Width   *float64    `parser:"| Width Colon @Number Px"`
	Height  *float64    `parser:"| Height Colon @Number Px"`
	Fill    *colorNode  `parser:"| Fill Colon @@"`
	Outside *colorNode  `parser:"| Outside Colon @@"`
	Rounded bool        `parser:"| @Rounded"`
}

// anchorNode covers both position clauses: "NUMBER px left" and
// "NUMBER px top"
type anchorNode struct {
	Value float64 `parser:"@Number Px"`
	Dir   string  `parser:"@(Left | Top)"`
}

type colorNode struct {
	Hex  string `parser:"  @HexColor"`
	Name string `parser:"| @ColorName"`
}

// shapeParser is the compiled grammar engine. It is built once at
// package init and shared by every Parse call; scan state lives in the
// per-call lexer, so concurrent and repeated parses are independent.
var shapeParser = participle.MustBuild[programNode](
	participle.Lexer(lexDef{}),
)
