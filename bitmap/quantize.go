package bitmap

import (
	"errors"
	"image"
	"image/color"
)

var (
	errScale    = errors.New("bitmap: scale must be at least 1")
	errTooSmall = errors.New("bitmap: image is too small")
)

// Quantize samples m into a Matrix. Each bitmap pixel covers a scale by scale
// block of m starting at its top-left corner; the pixel is set when more than
// half of the block is brighter than threshold. Changing threshold only ever
// changes which pixels are set, never the dimensions.
func Quantize(m image.Image, threshold uint8, scale int) (*Matrix, error) {
	if scale < 1 {
		return nil, errScale
	}

	b := m.Bounds()
	if b.Dx() < Width*scale || b.Dy() < Height*scale {
		return nil, errTooSmall
	}

	// Strictly more than half of the block, rounding the half down
	half := scale * scale >> 1

	out := new(Matrix)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			var lit int
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					c := m.At(b.Min.X+x*scale+dx, b.Min.Y+y*scale+dy)
					if color.GrayModel.Convert(c).(color.Gray).Y > threshold {
						lit++
					}
				}
			}
			out[y][x] = lit > half
		}
	}

	return out, nil
}
