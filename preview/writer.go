package preview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"github.com/bodgit/genlogo/bgr5"
	"github.com/bodgit/genlogo/bitmap"
	"github.com/bodgit/genlogo/render"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

var errWrongSize = errors.New("preview: image is wrong size")

// Options are the preview parameters.
type Options struct {
	// Scale is the bitmap pixel size in image pixels,
	// render.DefaultScale if zero
	Scale int
	// Face draws the labels, which are omitted if nil
	Face font.Face
	// Color is the logo color shown as BGR5, render.DefaultColor if nil
	Color color.Color
	// Zoom enlarges the finished preview by an integer factor
	Zoom int
	// Colors reduces the preview to a paletted image of at most this many
	// colors if greater than zero
	Colors int
}

func (o *Options) scale() int {
	if o == nil || o.Scale <= 0 {
		return render.DefaultScale
	}
	return o.Scale
}

func fill(m *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(m, r.Intersect(m.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// Annotate returns a copy of m with the grid and labels drawn over it.
func Annotate(m image.Image, o *Options) (*image.RGBA, error) {
	s := o.scale()
	b := m.Bounds()
	if b.Dx() != bitmap.Width*s || b.Dy() != bitmap.Height*s {
		return nil, errWrongSize
	}

	dup := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dup, dup.Bounds(), m, b.Min, draw.Src)

	for x := 0; x < bitmap.Width; x++ {
		fill(dup, image.Rect(x*s, 0, x*s+1, bitmap.Height*s), gridColor)
	}
	for y := 0; y < bitmap.Height; y++ {
		fill(dup, image.Rect(0, y*s, bitmap.Width*s, y*s+1), gridColor)
	}

	if o == nil || o.Face == nil {
		return dup, nil
	}

	for x := 0; x < bitmap.Width; x++ {
		render.Text(dup, o.Face, coordColor, x*s+labelInset, 0, strconv.Itoa(x%10))
	}
	for y := 0; y < bitmap.Height; y++ {
		render.Text(dup, o.Face, coordColor, labelInset, y*s, strconv.Itoa(y%10))
	}

	c := color.Color(render.DefaultColor)
	if o.Color != nil {
		c = o.Color
	}
	render.Text(dup, o.Face, coordColor, bitmap.Width*s-colorInset, (bitmap.Height-1)*s, "BGR5: "+bgr5.Model.Convert(c).(bgr5.Color).String())

	return dup, nil
}

func zoom(m *image.RGBA, n int) *image.RGBA {
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst
}

func reduce(m image.Image, n int) *image.Paletted {
	if n > maxColors {
		n = maxColors
	}
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// Encode writes the annotated preview of m to w in PNG format. If o is nil
// then the defaults are used and no labels are drawn.
func Encode(w io.Writer, m image.Image, o *Options) error {
	dup, err := Annotate(m, o)
	if err != nil {
		return err
	}

	if o != nil && o.Zoom > 1 {
		dup = zoom(dup, o.Zoom)
	}

	if o != nil && o.Colors > 0 {
		return png.Encode(w, reduce(dup, o.Colors))
	}

	return png.Encode(w, dup)
}
