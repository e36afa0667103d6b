package graphics

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextStyle configures text layout and painting.
type TextStyle struct {
	Color Color
	// LineSpacing is extra space added between lines.
	LineSpacing float64
}

// TextLayout is text broken into lines and measured.
type TextLayout struct {
	Text       string
	Lines      []string
	Style      TextStyle
	Size       Size
	LineHeight float64
	Ascent     float64
}

// TextFace returns the font face used for layout and rasterization. The
// bundled face is the fixed 7x13 bitmap font from golang.org/x/image.
func TextFace() font.Face {
	return basicfont.Face7x13
}

// MeasureString returns the advance width of s in logical pixels.
func MeasureString(s string) float64 {
	return float64(font.MeasureString(TextFace(), s)) / 64
}

// LayoutText breaks text into lines no wider than maxWidth and measures the
// result. Explicit newlines always break. A maxWidth of zero, negative or
// +Inf disables wrapping. Words wider than maxWidth occupy a line of their own.
func LayoutText(text string, style TextStyle, maxWidth float64) *TextLayout {
	metrics := TextFace().Metrics()
	lineHeight := float64(metrics.Height)/64 + style.LineSpacing
	ascent := float64(metrics.Ascent) / 64

	wrap := maxWidth > 0 && !math.IsInf(maxWidth, 1)
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if !wrap {
			lines = append(lines, paragraph)
			continue
		}
		lines = append(lines, wrapParagraph(paragraph, maxWidth)...)
	}

	width := 0.0
	for _, line := range lines {
		width = math.Max(width, MeasureString(line))
	}
	height := 0.0
	if len(lines) > 0 {
		height = float64(len(lines))*lineHeight - style.LineSpacing
	}
	return &TextLayout{
		Text:       text,
		Lines:      lines,
		Style:      style,
		Size:       Size{Width: width, Height: height},
		LineHeight: lineHeight,
		Ascent:     ascent,
	}
}

func wrapParagraph(paragraph string, maxWidth float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if MeasureString(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
