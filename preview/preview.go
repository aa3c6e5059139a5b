/*
Package preview implements a PNG encoder for an annotated preview of the logo.

The cropped logo rendering is overlaid with a grid marking each bitmap pixel,
the row and column indices modulo 10 along the top and left edges, and the
15-bit BGR value of the logo color in the bottom right corner.
*/
package preview

import "image/color"

const (
	labelInset = 2
	colorInset = 100
	maxColors  = 256
)

var (
	gridColor  = color.RGBA{50, 50, 50, 0xff}
	coordColor = color.RGBA{130, 130, 130, 0xff}
)
