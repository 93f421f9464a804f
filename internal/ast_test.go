package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorNormalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ff00aa", "#FF00AA"},
		{"#FF00AA", "#FF00AA"},
		{"#ff00aa", "#FF00AA"},
		{"#Ff00aA", "#FF00AA"},
		{"000000", "#000000"},
		{"ABCDEF", "#ABCDEF"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NewColor(tt.input).Hex())
		})
	}
}

func TestColorEquality(t *testing.T) {
	assert.Equal(t, NewColor("#FF00AA"), NewColor("ff00aa"))
	assert.NotEqual(t, NewColor("#FF00AA"), NewColor("#FF00AB"))
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "rectangle", Rectangle.String())
	assert.Equal(t, "circle", Circle.String())
	assert.Equal(t, "line", Line.String())
}
