package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/bodgit/genlogo/bitmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

const scale = 8

func blank() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, bitmap.Width*scale, bitmap.Height*scale))
	for i := 3; i < len(m.Pix); i += 4 {
		m.Pix[i] = 0xff
	}
	return m
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestAnnotateGrid(t *testing.T) {
	m, err := Annotate(blank(), nil)
	require.NoError(t, err)

	// Vertical line at column 10, horizontal line at row 5
	assert.Equal(t, gridColor, rgba(m.At(10*scale, 7*scale+4)))
	assert.Equal(t, gridColor, rgba(m.At(37*scale+4, 5*scale)))
	assert.Equal(t, gridColor, rgba(m.At(0, 0)))

	// Inside a cell
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, rgba(m.At(10*scale+4, 7*scale+4)))
}

func TestAnnotateLabels(t *testing.T) {
	plain, err := Annotate(blank(), &Options{Scale: scale})
	require.NoError(t, err)

	labelled, err := Annotate(blank(), &Options{Scale: scale, Face: basicfont.Face7x13})
	require.NoError(t, err)

	assert.NotEqual(t, plain.Pix, labelled.Pix)

	var found bool
	b := labelled.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := rgba(labelled.At(x, y)); c.R > gridColor.R && c.R == c.G && c.G == c.B {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "no label pixels drawn")
}

func TestAnnotateWrongSize(t *testing.T) {
	_, err := Annotate(image.NewRGBA(image.Rect(0, 0, 72, 14)), &Options{Scale: scale})
	assert.Equal(t, errWrongSize, err)
}

func TestAnnotateOffset(t *testing.T) {
	src := image.NewRGBA(image.Rect(13, 25, 13+bitmap.Width*scale, 25+bitmap.Height*scale))
	src.Set(13+4, 25+4, color.White)

	m, err := Annotate(src, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Point{}, m.Bounds().Min)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgba(m.At(4, 4)))
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		options  *Options
		width    int
		height   int
		paletted bool
	}{
		{"defaults", nil, bitmap.Width * scale, bitmap.Height * scale, false},
		{"labels", &Options{Face: basicfont.Face7x13, Color: color.RGBA{30, 150, 220, 0xff}}, bitmap.Width * scale, bitmap.Height * scale, false},
		{"zoom", &Options{Zoom: 2}, bitmap.Width * scale * 2, bitmap.Height * scale * 2, false},
		{"colors", &Options{Face: basicfont.Face7x13, Colors: 2}, bitmap.Width * scale, bitmap.Height * scale, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := new(bytes.Buffer)
			require.NoError(t, Encode(b, blank(), tt.options))

			m, err := png.Decode(b)
			require.NoError(t, err)
			assert.Equal(t, tt.width, m.Bounds().Dx())
			assert.Equal(t, tt.height, m.Bounds().Dy())

			p, ok := m.(*image.Paletted)
			assert.Equal(t, tt.paletted, ok)
			if ok {
				assert.LessOrEqual(t, len(p.Palette), 2)
			}
		})
	}
}
