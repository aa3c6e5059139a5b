/*
Package bitmap implements the monochrome logo bitmap.

The bitmap is defined as 72 by 14 pixels exactly. It is normally produced by
sampling an oversampled rendering of the logo where each bitmap pixel covers
an S by S block of source pixels, S being the scale factor.
*/
package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

const (
	// Width is the number of pixels in each row of the bitmap
	Width = 72
	// Height is the number of rows in the bitmap
	Height = 14
)

var (
	errRows   = fmt.Errorf("bitmap: expected %d rows", Height)
	errDigits = errors.New("bitmap: rows may only contain 0 or 1")
)

// Matrix is the logo bitmap, indexed by row then column.
type Matrix [Height][Width]bool

// At reports whether the pixel at column x, row y is set.
func (m *Matrix) At(x, y int) bool {
	return m[y][x]
}

// Set sets or clears the pixel at column x, row y.
func (m *Matrix) Set(x, y int, v bool) {
	m[y][x] = v
}

// Row returns row y as a string of '0' and '1' characters, leftmost pixel
// first.
func (m *Matrix) Row(y int) string {
	var b [Width]byte
	for x, v := range m[y] {
		if v {
			b[x] = '1'
		} else {
			b[x] = '0'
		}
	}
	return string(b[:])
}

// String returns the bitmap as Height lines of Width binary digits, separated
// by newlines.
func (m *Matrix) String() string {
	rows := make([]string, Height)
	for y := range rows {
		rows[y] = m.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Parse builds a Matrix from exactly Height rows of exactly Width binary
// digits.
func Parse(rows []string) (*Matrix, error) {
	if len(rows) != Height {
		return nil, errRows
	}

	m := new(Matrix)
	for y, row := range rows {
		if len(row) != Width {
			return nil, fmt.Errorf("bitmap: row %d has %d columns, expected %d", y, len(row), Width)
		}
		for x := 0; x < Width; x++ {
			switch row[x] {
			case '0':
			case '1':
				m[y][x] = true
			default:
				return nil, errDigits
			}
		}
	}

	return m, nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (m *Matrix) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. A single
// trailing newline is tolerated.
func (m *Matrix) UnmarshalText(b []byte) error {
	b = bytes.TrimSuffix(b, []byte("\n"))
	p, err := Parse(strings.Split(string(b), "\n"))
	if err != nil {
		return err
	}
	*m = *p
	return nil
}
