package internal

import "strings"

var colorNames = map[string]string{
	"black":   "#000000",
	"white":   "#FFFFFF",
	"red":     "#FF0000",
	"green":   "#00FF00",
	"blue":    "#0000FF",
	"yellow":  "#FFFF00",
	"cyan":    "#00FFFF",
	"magenta": "#FF00FF",
	"gray":    "#808080",
	"grey":    "#808080",
}

var shapeKinds = map[string]ShapeKind{
	"rectangle": Rectangle,
	"circle":    Circle,
	"line":      Line,
}

// lookupColorName resolves a color name case-insensitively.
// Unrecognized names resolve to black, never to an error.
func lookupColorName(name string) Color {
	if hex, ok := colorNames[strings.ToLower(name)]; ok {
		return NewColor(hex)
	}
	return colorBlack
}

func (n *colorNode) color() Color {
	if n.Hex != "" {
		return NewColor(n.Hex)
	}
	return lookupColorName(n.Name)
}

// shapeProps accumulates clause values for one statement before the
// Shape is built. Every statement gets a fresh set.
type shapeProps struct {
	left    float64
	top     float64
	width   *float64
	height  *float64
	fill    *Color
	outside *Color
	rounded bool
}

func reduceProgram(prog *programNode) (ShapeList, error) {
	shapes := make(ShapeList, 0, len(prog.Shapes))
	for _, node := range prog.Shapes {
		shape, err := reduceShape(node)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// reduceShape applies a statement's clauses to a fresh default set in
// source order, so a repeated property keeps its last occurrence.
func reduceShape(node *shapeNode) (Shape, error) {
	props := shapeProps{}
	for _, clause := range node.Clauses {
		switch {
		case clause.Anchor != nil:
			if strings.ToLower(clause.Anchor.Dir) == "left" {
				props.left = clause.Anchor.Value
			} else {
				props.top = clause.Anchor.Value
			}
		case clause.Width != nil:
			props.width = clause.Width
		case clause.Height != nil:
			props.height = clause.Height
		case clause.Fill != nil:
			c := clause.Fill.color()
			props.fill = &c
		case clause.Outside != nil:
			c := clause.Outside.color()
			props.outside = &c
		case clause.Rounded:
			props.rounded = true
		}
	}

	if props.width == nil || props.height == nil {
		return Shape{}, &SemanticError{
			Msg:    "width and height are required",
			Line:   node.Pos.Line,
			Column: node.Pos.Column,
		}
	}

	fill, outside := colorBlack, colorBlack
	if props.fill != nil {
		fill = *props.fill
	}
	if props.outside != nil {
		outside = *props.outside
	}

	return Shape{
		Kind:     shapeKinds[strings.ToLower(node.Name)],
		Position: Position{X: props.left, Y: props.top},
		Size:     Size{Width: *props.width, Height: *props.height},
		Fill:     fill,
		Outside:  outside,
		Rounded:  props.rounded,
	}, nil
}
