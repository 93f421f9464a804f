package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Default canvas bounds used when no configuration is supplied.
const (
	DefaultCanvasWidth  = 800.0
	DefaultCanvasHeight = 600.0
)

// Generator lowers a ShapeList into an SVG document. Shape space and
// SVG space share the top-left origin with y growing downward, so
// coordinates pass through unchanged.
type Generator struct {
	width      float64
	height     float64
	background Color
}

// NewGenerator creates a generator for the given canvas. A zero-value
// background leaves the canvas transparent.
func NewGenerator(width, height float64, background Color) *Generator {
	return &Generator{
		width:      width,
		height:     height,
		background: background,
	}
}

// GenerateSVG emits one element per shape in list order, so document
// order matches z-order: later shapes draw on top.
func (g *Generator) GenerateSVG(shapes ShapeList) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		ftoa(g.width), ftoa(g.height), ftoa(g.width), ftoa(g.height))
	if g.background != (Color{}) {
		fmt.Fprintf(&b, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", g.background.Hex())
	}

	for _, shape := range shapes {
		b.WriteString("  ")
		b.WriteString(g.element(shape))
		b.WriteString("\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func (g *Generator) element(s Shape) string {
	switch s.Kind {
	case Rectangle:
		if s.Rounded {
			return roundedRectElement(s)
		}
		return rectElement(s)
	case Circle:
		return circleElement(s)
	case Line:
		return lineElement(s)
	default:
		return ""
	}
}

// rectElement draws a 4-sided closed outline
func rectElement(s Shape) string {
	x, y := s.Position.X, s.Position.Y
	w, h := s.Size.Width, s.Size.Height

	d := fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s Z",
		ftoa(x), ftoa(y),
		ftoa(x+w), ftoa(y),
		ftoa(x+w), ftoa(y+h),
		ftoa(x), ftoa(y+h))
	return fmt.Sprintf("<path d=\"%s\" fill=\"%s\" stroke=\"%s\"/>", d, s.Fill.Hex(), s.Outside.Hex())
}

// roundedRectElement draws the same outline with the four corners
// replaced by quarter-circle arcs of radius min(10, w/10, h/10)
func roundedRectElement(s Shape) string {
	x, y := s.Position.X, s.Position.Y
	w, h := s.Size.Width, s.Size.Height
	r := cornerRadius(w, h)

	d := fmt.Sprintf(
		"M %s %s L %s %s A %s %s 0 0 1 %s %s L %s %s A %s %s 0 0 1 %s %s L %s %s A %s %s 0 0 1 %s %s L %s %s A %s %s 0 0 1 %s %s Z",
		ftoa(x+r), ftoa(y),
		ftoa(x+w-r), ftoa(y),
		ftoa(r), ftoa(r), ftoa(x+w), ftoa(y+r),
		ftoa(x+w), ftoa(y+h-r),
		ftoa(r), ftoa(r), ftoa(x+w-r), ftoa(y+h),
		ftoa(x+r), ftoa(y+h),
		ftoa(r), ftoa(r), ftoa(x), ftoa(y+h-r),
		ftoa(x), ftoa(y+r),
		ftoa(r), ftoa(r), ftoa(x+r), ftoa(y))
	return fmt.Sprintf("<path d=\"%s\" fill=\"%s\" stroke=\"%s\"/>", d, s.Fill.Hex(), s.Outside.Hex())
}

// circleElement draws a circle of radius min(w,h)/2 centered in the
// shape's bounding box
func circleElement(s Shape) string {
	cx := s.Position.X + s.Size.Width/2
	cy := s.Position.Y + s.Size.Height/2
	r := s.Size.Width
	if s.Size.Height < r {
		r = s.Size.Height
	}
	r /= 2
	return fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" stroke=\"%s\"/>",
		ftoa(cx), ftoa(cy), ftoa(r), s.Fill.Hex(), s.Outside.Hex())
}

// lineElement draws an unfilled segment from the position to
// position+(w,h)
func lineElement(s Shape) string {
	x1, y1 := s.Position.X, s.Position.Y
	x2, y2 := x1+s.Size.Width, y1+s.Size.Height
	return fmt.Sprintf("<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\"/>",
		ftoa(x1), ftoa(y1), ftoa(x2), ftoa(y2), s.Outside.Hex())
}

func cornerRadius(w, h float64) float64 {
	r := 10.0
	if w/10 < r {
		r = w / 10
	}
	if h/10 < r {
		r = h / 10
	}
	// negative sizes are accepted by the parser; keep the radius drawable
	if r < 0 {
		r = 0
	}
	return r
}

// ftoa formats coordinates as plain decimals; exponent notation does
// not belong in SVG path data
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
