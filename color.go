package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var hexColorPattern = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

// RGBA is a resolved draw color with 8-bit channels and a [0,1] alpha.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// String renders the color in CSS form, e.g. "rgba(0, 255, 0, 1)".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := clampUnit(c.A)
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(float64(c.R)*0x101*alpha + 0.5)
	g = uint32(float64(c.G)*0x101*alpha + 0.5)
	b = uint32(float64(c.B)*0x101*alpha + 0.5)
	return r, g, b, a
}

// parseHexColor converts "#rrggbb" (leading '#' optional, any case) into an
// RGBA with the given opacity. ok is false for anything else; callers must skip
// the draw style instead of drawing with it.
func parseHexColor(hex string, opacity float64) (c RGBA, ok bool) {
	m := hexColorPattern.FindStringSubmatch(hex)
	if m == nil {
		logger().Warn("invalid color, skipping style", "color", hex)
		return RGBA{}, false
	}
	parsed, err := colorful.Hex("#" + m[1] + m[2] + m[3])
	if err != nil {
		logger().Warn("invalid color, skipping style", "color", hex, "error", err)
		return RGBA{}, false
	}
	r, g, b := parsed.RGB255()
	return RGBA{R: r, G: g, B: b, A: opacity}, true
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatAlpha prints an alpha without trailing zeros ("1", "0.5", "0.25").
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
