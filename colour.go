package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB creates an opaque colour from 8-bit channels.
func RGB(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// RGBA creates a colour from 8-bit channels with straight alpha.
func RGBA(r, g, b, a uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ParseColour parses a hex colour string as used in scene markup: "rrggbb"
// or "rgb", with or without a leading '#'.
func ParseColour(s string) (color.Color, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("scene: empty colour")
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return nil, fmt.Errorf("scene: invalid colour %q: %w", s, err)
	}
	return c, nil
}
