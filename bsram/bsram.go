/*
Package bsram implements an encoder and decoder for the block RAM
initialization parameters that hold the logo bitmap.

The 72 by 14 bitmap is packed as 9 bytes per row, row after row, with the
leftmost pixel of each 8 pixel group in the least significant bit. The 126
bytes of pixel data are followed by 2 zero bytes making 128 bytes, which are
written as four 256-bit INIT_RAM parameters of 32 bytes each. Within each
parameter the highest addressed byte is written first.
*/
package bsram

import "github.com/bodgit/genlogo/bitmap"

const (
	groupBits   = 8
	rowBytes    = bitmap.Width / groupBits
	dataBytes   = rowBytes * bitmap.Height
	padBytes    = 2
	lineBytes   = 32
	hexDigits   = lineBytes << 1
	literalBits = lineBytes * 8

	// Size is the number of bytes in the packed block RAM contents
	Size = dataBytes + padBytes

	// Lines is the number of INIT_RAM parameters
	Lines = Size / lineBytes

	// DefaultPrefix is the parameter name each line index is appended to
	DefaultPrefix = "INIT_RAM_"
)
