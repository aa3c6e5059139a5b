package genlogo

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var errColor = errors.New("color must be R,G,B or #RRGGBB")

// ParseColor parses an opaque color written either as three comma separated
// decimal channels or as #RRGGBB.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return color.RGBA{}, errColor
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, errColor
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, errColor
	}

	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("channel %d: %w", i, err)
		}
		rgb[i] = uint8(v)
	}

	return color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}, nil
}
