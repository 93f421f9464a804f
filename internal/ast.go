package internal

import "strings"

// ShapeKind selects the drawing primitive of a shape
type ShapeKind int

const (
	Rectangle ShapeKind = iota
	Circle
	Line
)

func (k ShapeKind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Circle:
		return "circle"
	case Line:
		return "line"
	default:
		return "unknown"
	}
}

// Position is the top-left anchor of a shape. Shape space has its
// origin at the top left with y growing downward.
type Position struct {
	X float64
	Y float64
}

// Size holds a shape's dimensions. Both fields are required at parse
// time; values are not range-checked.
type Size struct {
	Width  float64
	Height float64
}

// Color is a canonical #RRGGBB color. Two Colors are equal iff their
// canonical hex strings match.
type Color struct {
	hex string
}

// NewColor builds a Color from a hex string, normalizing it to the
// canonical form: '#' prefix, 6 uppercase hex digits.
func NewColor(hex string) Color {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return Color{hex: strings.ToUpper(hex)}
}

var colorBlack = NewColor("#000000")

// Hex returns the canonical hex representation, e.g. "#FF00AA"
func (c Color) Hex() string {
	return c.hex
}

func (c Color) String() string {
	return c.hex
}

// Shape is one fully resolved drawable. Rounded only affects
// rectangles.
type Shape struct {
	Kind     ShapeKind
	Position Position
	Size     Size
	Fill     Color
	Outside  Color
	Rounded  bool
}

// ShapeList holds shapes in declaration order. Declaration order is
// draw order: later entries render on top of earlier ones.
type ShapeList []Shape
