package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func litPixels(m image.Image) int {
	var n int
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.GrayModel.Convert(m.At(x, y)).(color.Gray).Y > 0 {
				n++
			}
		}
	}
	return n
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("FreeType")
	require.NoError(t, err)
	assert.Equal(t, FreeType, e)
	assert.Equal(t, "freetype", e.String())

	e, err = ParseEngine("opentype")
	require.NoError(t, err)
	assert.Equal(t, OpenType, e)

	_, err = ParseEngine("pil")
	assert.Error(t, err)

	assert.Equal(t, "Engine(7)", Engine(7).String())
}

func TestLoadFont(t *testing.T) {
	_, err := LoadFont([]byte("not a font"), OpenType)
	assert.Error(t, err)

	_, err = LoadFont(goregular.TTF, Engine(7))
	assert.Error(t, err)

	_, err = LoadFontFile(filepath.Join("testdata", "missing.ttf"), OpenType)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	for _, engine := range []Engine{OpenType, FreeType} {
		t.Run(engine.String(), func(t *testing.T) {
			f, err := LoadFont(goregular.TTF, engine)
			require.NoError(t, err)
			assert.Equal(t, engine, f.Engine())

			face, err := f.Face(15 * DefaultScale)
			require.NoError(t, err)

			m, err := Render(face, "TangCore", nil)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 72*DefaultScale, 14*DefaultScale), m.Bounds())
			assert.NotZero(t, litPixels(m))

			again, err := Render(face, "TangCore", nil)
			require.NoError(t, err)
			assert.Equal(t, m.Pix, again.Pix)
		})
	}
}

func TestRenderOptions(t *testing.T) {
	f, err := LoadFont(goregular.TTF, OpenType)
	require.NoError(t, err)

	face, err := f.Face(30)
	require.NoError(t, err)

	m, err := Render(face, "SMSTang", &Options{Scale: 2, Color: color.White})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 144, 28), m.Bounds())

	empty, err := Render(face, "", &Options{Scale: 2})
	require.NoError(t, err)
	assert.Zero(t, litPixels(empty))

	_, err = Render(face, "x", &Options{Scale: 1, Crop: image.Rect(200, 200, 300, 300)})
	assert.Equal(t, errCrop, err)
}
