// Package color converts "#rrggbb" background colours into the
// "H S% L%" triples the theme variables are expressed in.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidFormat is returned for anything that is not '#' plus six hex digits.
var ErrInvalidFormat = errors.New("invalid color format")

// HSL holds an unrounded hue in [0,360) and saturation/lightness in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// String renders the rounded "H S% L%" form.
func (c HSL) String() string {
	h := int(math.Round(c.H))
	if h >= 360 {
		h -= 360
	}
	return fmt.Sprintf("%d %d%% %d%%", h, int(math.Round(c.S*100)), int(math.Round(c.L*100)))
}

// Validate checks the hex format without converting.
func Validate(hex string) error {
	_, _, _, err := channels(hex)
	return err
}

// Parse converts hex to HSL. The branch structure (offsets of 0, 2 and 4
// sixths, +6 when green < blue under a red maximum) must not change: stored
// theme tokens depend on the exact rounding it produces.
func Parse(hex string) (HSL, error) {
	r, g, b, err := channels(hex)
	if err != nil {
		return HSL{}, err
	}

	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	l := (mx + mn) / 2

	if mx == mn {
		return HSL{H: 0, S: 0, L: l}, nil
	}

	d := mx - mn
	var s float64
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}

	var h float64
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s, L: l}, nil
}

// HexToHSL returns the "H S% L%" string for a "#rrggbb" colour.
func HexToHSL(hex string) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

func channels(hex string) (r, g, b float64, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, perr := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
		}
		out[i] = float64(v) / 255
	}
	return out[0], out[1], out[2], nil
}
