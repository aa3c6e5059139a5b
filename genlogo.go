/*
Package genlogo is a library for generating the boot logo shown by the Tang
FPGA cores.

A line of text is rendered in a TrueType or OpenType font, sampled down to a
72 by 14 monochrome bitmap and emitted as the INIT_RAM parameters of the block
RAM holding the logo. A PNG preview with a coordinate grid is written
alongside for checking the result.
*/
package genlogo

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/bodgit/genlogo/bitmap"
	"github.com/bodgit/genlogo/bsram"
	"github.com/bodgit/genlogo/preview"
	"github.com/bodgit/genlogo/render"
)

const (
	// DefaultFont is the font file read from the working directory
	DefaultFont = "RussoOne-Regular.ttf"
	// DefaultPreview is the filename of the preview image
	DefaultPreview = "logo.png"

	// Text is drawn with an em size of 15 bitmap pixels
	fontCells = 15
)

// Options are the parameters for generating a logo.
type Options struct {
	Font      string
	Engine    render.Engine
	Text      string
	Threshold uint8
	Color     color.RGBA
	Scale     int
	Prefix    string
	Preview   string
	Zoom      int
	Colors    int
}

// DefaultOptions returns the options for the default variant.
func DefaultOptions() Options {
	o := Options{
		Font:    DefaultFont,
		Engine:  render.OpenType,
		Color:   render.DefaultColor,
		Scale:   render.DefaultScale,
		Prefix:  bsram.DefaultPrefix,
		Preview: DefaultPreview,
	}
	TangCore.Apply(&o)
	return o
}

// Generator produces the logo outputs for one set of options.
type Generator struct {
	opts   Options
	font   *render.Font
	logger *log.Logger
}

// New returns a Generator after loading the font named in opts.
func New(opts Options, logger *log.Logger) (*Generator, error) {
	if opts.Scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", opts.Scale)
	}

	f, err := render.LoadFontFile(opts.Font, opts.Engine)
	if err != nil {
		return nil, err
	}
	logger.Printf("Loaded \"%s\" using %s\n", opts.Font, opts.Engine)

	return &Generator{
		opts:   opts,
		font:   f,
		logger: logger,
	}, nil
}

// Result holds the bitmap and the block RAM contents it packed into.
type Result struct {
	Bitmap *bitmap.Matrix
	Packed bsram.Packed
}

// Generate renders the logo, writes the bitmap and the INIT_RAM parameters
// to w, and writes the preview image unless the preview filename is empty.
func (g *Generator) Generate(w io.Writer) (*Result, error) {
	s := g.opts.Scale

	face, err := g.font.Face(float64(fontCells * s))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	if y := color.GrayModel.Convert(g.opts.Color).(color.Gray).Y; y <= g.opts.Threshold {
		g.logger.Printf("Logo color luminance %d is not brighter than threshold %d, the bitmap will be empty\n", y, g.opts.Threshold)
	}

	g.logger.Printf("Rendering \"%s\" at scale %d\n", g.opts.Text, s)
	m, err := render.Render(face, g.opts.Text, &render.Options{
		Scale: s,
		Color: g.opts.Color,
	})
	if err != nil {
		return nil, err
	}

	b, err := bitmap.Quantize(m, g.opts.Threshold, s)
	if err != nil {
		return nil, err
	}

	// Check the bitmap packs before anything is written
	p, err := bsram.Pack(b)
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintf(w, "%s\n\n// Block RAM initialization for the %dx%d logo, paste into the logo memory instance:\n", b, bitmap.Width, bitmap.Height); err != nil {
		return nil, err
	}
	if err := bsram.Encode(w, b, &bsram.Options{Prefix: g.opts.Prefix}); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(w, "// Check %s before synthesizing; rerun with another threshold if strokes are missing\n", g.previewName()); err != nil {
		return nil, err
	}

	if g.opts.Preview != "" {
		if err := g.writePreview(m); err != nil {
			return nil, err
		}
	}

	return &Result{
		Bitmap: b,
		Packed: p,
	}, nil
}

func (g *Generator) previewName() string {
	if g.opts.Preview == "" {
		return "the bitmap"
	}
	return g.opts.Preview
}

func (g *Generator) writePreview(m *image.RGBA) error {
	s := g.opts.Scale

	face, err := g.font.Face(float64(s))
	if err != nil {
		return err
	}
	defer face.Close()

	f, err := os.Create(g.opts.Preview)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := preview.Encode(f, m, &preview.Options{
		Scale:  s,
		Face:   face,
		Color:  g.opts.Color,
		Zoom:   g.opts.Zoom,
		Colors: g.opts.Colors,
	}); err != nil {
		return err
	}
	g.logger.Printf("Wrote preview to \"%s\"\n", g.opts.Preview)

	return f.Close()
}
