package raster

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a console attribute code. The low nibble is the foreground and
// the high nibble the background; the palette uses solid cells, so both
// nibbles always match.
type Color uint8

const (
	Black Color = 0
	White Color = 119
	Red   Color = 68
	Green Color = 34
	Blue  Color = 17
)

// Colors lists every palette entry in declaration order.
var Colors = []Color{Black, White, Red, Green, Blue}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor accepts the lower-case names produced by String.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Colors {
		if c.String() == name {
			return c, nil
		}
	}
	return Black, fmt.Errorf("raster: unknown color %q", s)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// NRGBA returns the classic console palette value for c.
func (c Color) NRGBA() color.NRGBA {
	switch c {
	case White:
		return color.NRGBA{R: 192, G: 192, B: 192, A: 255}
	case Red:
		return color.NRGBA{R: 128, A: 255}
	case Green:
		return color.NRGBA{G: 128, A: 255}
	case Blue:
		return color.NRGBA{B: 128, A: 255}
	}
	return color.NRGBA{A: 255}
}
