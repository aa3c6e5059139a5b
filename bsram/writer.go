package bsram

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/genlogo/bitmap"
)

var errPackedLength = fmt.Errorf("bsram: packed bitmap is not %d bytes", dataBytes)

// Packed is the block RAM contents, lowest address first.
type Packed [Size]byte

// Pack converts the bitmap m into block RAM contents.
func Pack(m *bitmap.Matrix) (Packed, error) {
	var p Packed
	if m == nil {
		return p, errors.New("bsram: nil bitmap")
	}

	data := make([]byte, 0, dataBytes)
	for y := range m {
		for x := 0; x+groupBits <= len(m[y]); x += groupBits {
			var b byte
			for k, v := range m[y][x : x+groupBits] {
				if v {
					b |= 1 << uint(k)
				}
			}
			data = append(data, b)
		}
	}

	// Anything other than 9 bytes per row would produce garbage
	if len(data) != dataBytes {
		return p, errPackedLength
	}

	copy(p[:], data)
	return p, nil
}

// Line returns the 64 hex digits of parameter i, highest addressed byte
// first.
func (p *Packed) Line(i int) string {
	var sb strings.Builder
	sb.Grow(hexDigits)
	for j := lineBytes - 1; j >= 0; j-- {
		fmt.Fprintf(&sb, "%02X", p[i*lineBytes+j])
	}
	return sb.String()
}

// Options are the encoding parameters.
type Options struct {
	// Prefix is prepended to the hex index of each parameter name,
	// DefaultPrefix if empty
	Prefix string
	// Start is the index of the first parameter
	Start int
}

type encoder struct {
	w      io.Writer
	prefix string
	start  int
}

func (e *encoder) encode(p *Packed) error {
	for i := 0; i < Lines; i++ {
		if _, err := fmt.Fprintf(e.w, "%s%02X = %d'h%s\n", e.prefix, e.start+i, literalBits, p.Line(i)); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the bitmap m to w as block RAM initialization parameters. If
// o is nil then the default parameters are used.
func Encode(w io.Writer, m *bitmap.Matrix, o *Options) error {
	p, err := Pack(m)
	if err != nil {
		return err
	}

	e := encoder{
		w:      w,
		prefix: DefaultPrefix,
	}
	if o != nil {
		if o.Prefix != "" {
			e.prefix = o.Prefix
		}
		e.start = o.Start
	}

	return e.encode(&p)
}
