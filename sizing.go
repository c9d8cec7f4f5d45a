package sia

import "math"

// ResolveDimensions returns the canvas size for rendering lines in font.
//
// A non-zero requested size is returned unchanged, even if the text does
// not fit. Otherwise the height is exactly len(lines) line heights (an
// empty input counts as one line) and the width is the widest measured
// line, rounded up. Blank content gets a width of one line height.
func ResolveDimensions(requested Dimensions, font *FontConfig, lines []string) Dimensions {
	if !requested.IsZero() {
		return requested
	}

	lineHeight := font.LineHeight()
	n := len(lines)
	if n == 0 {
		n = 1
	}

	var widest float64
	for _, line := range lines {
		widest = math.Max(widest, font.MeasureLineWidth(line))
	}
	width := int(math.Ceil(widest))
	if width <= 0 {
		width = lineHeight
	}

	return Dimensions{Width: width, Height: n * lineHeight}
}
