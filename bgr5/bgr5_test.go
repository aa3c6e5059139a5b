package bgr5

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
		binary  string
	}{
		{"black", 0, 0, 0, 0, "000000000000000"},
		{"white", 0xff, 0xff, 0xff, 0x7fff, "111111111111111"},
		{"red", 0xff, 0, 0, 0x001f, "000000000011111"},
		{"blue", 0, 0, 0xff, 0x7c00, "111110000000000"},
		{"logo", 30, 150, 220, 28227, "110111001000011"},
		{"low bits dropped", 7, 7, 7, 0, "000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.r, tt.g, tt.b)
			assert.Equal(t, tt.want, c)
			assert.Equal(t, tt.binary, c.String())
		})
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := Color(0x7fff).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})

	r, g, b, a = Color(0x001f).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestModel(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", Color(0x1234), Color(0x1234)},
		{"black", color.Black, 0},
		{"white", color.White, 0x7fff},
		{"logo", color.RGBA{30, 150, 220, 0xff}, New(30, 150, 220)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Model.Convert(tt.input))
		})
	}
}
