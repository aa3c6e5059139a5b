package bsram

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/genlogo/bitmap"
)

var (
	errNotEnough  = errors.New("bsram: not enough parameters")
	errTooMuch    = errors.New("bsram: too many parameters")
	errBadLiteral = errors.New("bsram: invalid 256-bit literal")
	errBadPadding = errors.New("bsram: padding bytes are not zero")
)

var literal = fmt.Sprintf("= %d'h", literalBits)

type decoder struct {
	r io.Reader

	lines int
	p     Packed
}

func (d *decoder) readLine(s string) error {
	i := strings.Index(s, literal)
	if i < 0 {
		return nil
	}

	if d.lines == Lines {
		return errTooMuch
	}

	// Tolerate a trailing semicolon or comment as found in defparam blocks
	v := strings.TrimSpace(s[i+len(literal):])
	if j := strings.IndexAny(v, "; /"); j >= 0 {
		v = v[:j]
	}
	v = strings.Replace(v, "_", "", -1)

	if len(v) != hexDigits {
		return errBadLiteral
	}

	var tmp [lineBytes]byte
	if _, err := hex.Decode(tmp[:], []byte(v)); err != nil {
		return errBadLiteral
	}

	for j := 0; j < lineBytes; j++ {
		d.p[d.lines*lineBytes+j] = tmp[lineBytes-1-j]
	}
	d.lines++

	return nil
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	s := bufio.NewScanner(d.r)
	for s.Scan() {
		if err := d.readLine(s.Text()); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	if d.lines < Lines {
		return errNotEnough
	}

	return nil
}

// Unpack converts block RAM contents back into a bitmap.
func Unpack(p Packed) (*bitmap.Matrix, error) {
	for _, b := range p[dataBytes:] {
		if b != 0 {
			return nil, errBadPadding
		}
	}

	m := new(bitmap.Matrix)
	for i, b := range p[:dataBytes] {
		y := i / rowBytes
		x := i % rowBytes * groupBits
		for k := 0; k < groupBits; k++ {
			m.Set(x+k, y, b>>uint(k)&1 == 1)
		}
	}

	return m, nil
}

// Decode reads block RAM initialization parameters from r and returns the
// bitmap they hold. Lines without a 256-bit literal are ignored.
func Decode(r io.Reader) (*bitmap.Matrix, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return Unpack(d.p)
}
