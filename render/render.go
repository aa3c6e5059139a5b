/*
Package render draws a line of text onto an oversampled canvas and crops out
the region that becomes the logo bitmap.

The canvas is 256 by 256 cells of S by S pixels each, S being the scale
factor. Fonts can be rasterized with either the golang.org/x/image sfnt
parser or the FreeType port, the latter being closest to the rasterizer used
when the logo was first drawn.
*/
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/ioutil"
	"strings"

	"github.com/bodgit/genlogo/bitmap"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	canvasCells = 256
	originX     = 2
	cropLeft    = 13
	cropTop     = 25

	// DefaultScale is the number of canvas pixels along each side of a
	// bitmap pixel
	DefaultScale = 8
)

// DefaultColor is the color the logo text is drawn in.
var DefaultColor = color.RGBA{30, 150, 220, 0xff}

var errCrop = errors.New("render: crop rectangle is outside the canvas")

// Engine selects the font rasterizer.
type Engine int

const (
	// OpenType uses golang.org/x/image/font/opentype
	OpenType Engine = iota
	// FreeType uses github.com/golang/freetype/truetype
	FreeType
)

var engineNames = [...]string{
	OpenType: "opentype",
	FreeType: "freetype",
}

func (e Engine) String() string {
	if e < 0 || int(e) >= len(engineNames) {
		return fmt.Sprintf("Engine(%d)", int(e))
	}
	return engineNames[e]
}

// ParseEngine returns the Engine with the given name.
func ParseEngine(name string) (Engine, error) {
	for i, n := range engineNames {
		if strings.EqualFold(n, name) {
			return Engine(i), nil
		}
	}
	return 0, fmt.Errorf("render: unknown engine %q", name)
}

// Font is a parsed TrueType or OpenType font.
type Font struct {
	engine Engine
	sfnt   *sfnt.Font
	tt     *truetype.Font
}

// LoadFont parses b using engine.
func LoadFont(b []byte, engine Engine) (*Font, error) {
	f := &Font{engine: engine}

	var err error
	switch engine {
	case OpenType:
		f.sfnt, err = opentype.Parse(b)
	case FreeType:
		f.tt, err = truetype.Parse(b)
	default:
		return nil, fmt.Errorf("render: unknown engine %v", engine)
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// LoadFontFile reads and parses the font file using engine.
func LoadFontFile(file string, engine Engine) (*Font, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	f, err := LoadFont(b, engine)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return f, nil
}

// Engine returns the rasterizer used by f.
func (f *Font) Engine() Engine {
	return f.engine
}

// Face returns a face of f where size is the em size in pixels.
func (f *Font) Face(size float64) (font.Face, error) {
	if f.engine == FreeType {
		return truetype.NewFace(f.tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		}), nil
	}
	return opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Options are the rendering parameters.
type Options struct {
	// Scale is the bitmap pixel size in canvas pixels, DefaultScale if
	// zero
	Scale int
	// Color of the text, DefaultColor if nil
	Color color.Color
	// Crop is the region of the canvas returned, 72 by 14 bitmap pixels
	// at (13, 25) if empty
	Crop image.Rectangle
}

// Crop returns the default crop rectangle for scale.
func Crop(scale int) image.Rectangle {
	return image.Rect(cropLeft, cropTop, cropLeft+bitmap.Width*scale, cropTop+bitmap.Height*scale)
}

// Text draws text top-left aligned at (x, y) so that y is the top of the
// ascender rather than the baseline.
func Text(dst draw.Image, face font.Face, c color.Color, x, y int, text string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
}

// Render draws text with face onto a black canvas and returns the crop
// region as an image with its top-left corner at (0, 0).
func Render(face font.Face, text string, o *Options) (*image.RGBA, error) {
	scale, c, crop := DefaultScale, color.Color(DefaultColor), image.Rectangle{}
	if o != nil {
		if o.Scale > 0 {
			scale = o.Scale
		}
		if o.Color != nil {
			c = o.Color
		}
		crop = o.Crop
	}
	if crop.Empty() {
		crop = Crop(scale)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, canvasCells*scale, canvasCells*scale))
	if !crop.In(canvas.Bounds()) {
		return nil, errCrop
	}
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)

	Text(canvas, face, c, originX*scale, 0, text)

	m := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(m, m.Bounds(), canvas, crop.Min, draw.Src)

	return m, nil
}
