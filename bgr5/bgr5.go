/*
Package bgr5 implements the 15-bit color format used by the Tang FPGA cores.

Each channel is reduced to 5 bits by discarding the low 3 bits and the
channels are packed in reverse order as 0BBBBBGGGGGRRRRR.
*/
package bgr5

import (
	"fmt"
	"image/color"
)

// Color is a packed 15-bit BGR color.
type Color uint16

// New packs 8-bit red, green and blue channels.
func New(r, g, b uint8) Color {
	return Color(uint16(b>>3)<<10 | uint16(g>>3)<<5 | uint16(r>>3))
}

// expand scales a 5-bit channel to 16 bits by bit replication.
func expand(v uint16) uint32 {
	v &= 0x1f
	return uint32(v<<11 | v<<6 | v<<1 | v>>4)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return expand(uint16(c)), expand(uint16(c) >> 5), expand(uint16(c) >> 10), 0xffff
}

// String returns the color as 15 binary digits, blue first.
func (c Color) String() string {
	return fmt.Sprintf("%015b", uint16(c)&0x7fff)
}

func toBGR5(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color(b>>11<<10 | g>>11<<5 | r>>11)
}

// Model converts any color.Color to a Color.
var Model = color.ModelFunc(toBGR5)
