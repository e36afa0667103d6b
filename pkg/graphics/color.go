package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return RGBA8(r, g, b, uint8(math.Round(clamp01(a)*255)))
}

// RGBA8 constructs a Color from four bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha returns the alpha component in [0, 1].
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / 255
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(math.Round(clamp01(a)*255))<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts to the non-premultiplied image/color form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// Common colors. The hues follow the iOS system palette.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorGray        = Color(0xFF8E8E93)
	ColorRed         = Color(0xFFFF3B30)
	ColorBlue        = Color(0xFF007AFF)
	ColorCyan        = Color(0xFF32ADE6)
	ColorMint        = Color(0xFF00C7BE)
	ColorPink        = Color(0xFFFF2D55)
	ColorYellow      = Color(0xFFFFCC00)
	ColorOrange      = Color(0xFFFF9500)
	ColorPurple      = Color(0xFFAF52DE)
)

var namedColors = map[string]Color{
	"clear":       ColorTransparent,
	"transparent": ColorTransparent,
	"black":       ColorBlack,
	"white":       ColorWhite,
	"gray":        ColorGray,
	"red":         ColorRed,
	"blue":        ColorBlue,
	"cyan":        ColorCyan,
	"mint":        ColorMint,
	"pink":        ColorPink,
	"yellow":      ColorYellow,
	"orange":      ColorOrange,
	"purple":      ColorPurple,
}

// ParseColor accepts a palette name ("cyan", "clear", ...) or a hex string
// in "#RGB", "#RRGGBB" or "#AARRGGBB" form.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		h = "ff" + string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
		h = "ff" + h
	case 8:
	default:
		return 0, fmt.Errorf("graphics: unknown color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("graphics: unknown color %q: %w", s, err)
	}
	return Color(v), nil
}
