package sia

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultAdvance is the advance, as a fraction of the font size, used for
// characters the font has no glyph for.
const DefaultAdvance = 0.5

// FontConfig is a parsed font at a fixed pixel size. It is immutable and
// safe for concurrent use.
type FontConfig struct {
	name   string
	family string
	data   []byte
	size   float64
	font   *sfnt.Font
}

// NewFontConfig parses font data (TrueType or OpenType) for rendering at
// size pixels per em. The name identifies the font in diagnostics, e.g. a
// file path.
func NewFontConfig(data []byte, name string, size float64) (*FontConfig, error) {
	if len(data) == 0 {
		return nil, configError("load font", "font %q has no data", name)
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, configError("load font", "font size must be positive, got %v", size)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, ConfigError("load font", err)
	}
	if f.UnitsPerEm() <= 0 {
		return nil, configError("load font", "font %q has no units per em", name)
	}
	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil || family == "" {
		family = name
	}
	return &FontConfig{
		name:   name,
		family: family,
		data:   data,
		size:   size,
		font:   f,
	}, nil
}

// Name returns the logical identifier the font was loaded under.
func (c *FontConfig) Name() string { return c.name }

// Family returns the family name from the font's name table, falling back
// to Name when the table has none.
func (c *FontConfig) Family() string { return c.family }

// Size returns the font size in pixels per em.
func (c *FontConfig) Size() float64 { return c.size }

// Data returns the raw font bytes. Callers must not modify them.
func (c *FontConfig) Data() []byte { return c.data }

// Metrics and advances are read in font units (ppem = unitsPerEm, so one
// unit is one 26.6 pixel) and scaled to the configured size in float64.
// Querying sfnt at the target size overflows 26.6 for very large sizes.
func (c *FontConfig) unitsPerEm() fixed.Int26_6 {
	return fixed.I(int(c.font.UnitsPerEm()))
}

func (c *FontConfig) scale(v fixed.Int26_6) float64 {
	return float64(v) / 64 * c.size / float64(c.font.UnitsPerEm())
}

func (c *FontConfig) metrics() font.Metrics {
	m, err := c.font.Metrics(&sfnt.Buffer{}, c.unitsPerEm(), font.HintingNone)
	if err != nil {
		return font.Metrics{}
	}
	return m
}

// LineHeight returns the vertical advance from one line to the next in
// whole pixels: ascent + descent + line gap, rounded up.
func (c *FontConfig) LineHeight() int {
	m := c.metrics()
	h := m.Height
	if h <= 0 {
		h = m.Ascent + m.Descent
	}
	if lh := math.Ceil(c.scale(h)); lh > 0 {
		return int(lh)
	}
	return int(math.Max(1, math.Ceil(c.size)))
}

// Ascent returns the distance from the top of a line to its baseline.
func (c *FontConfig) Ascent() float64 {
	return c.scale(c.metrics().Ascent)
}

// MeasureLineWidth returns the horizontal extent of text as the sum of
// its glyph advances. Characters without a glyph advance by
// DefaultAdvance × size, so measuring never fails.
func (c *FontConfig) MeasureLineWidth(text string) float64 {
	var (
		buf   sfnt.Buffer
		width float64
	)
	upem := c.unitsPerEm()
	fallback := c.size * DefaultAdvance
	for _, r := range text {
		idx, err := c.font.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			width += fallback
			continue
		}
		adv, err := c.font.GlyphAdvance(&buf, idx, upem, font.HintingNone)
		if err != nil {
			width += fallback
			continue
		}
		width += c.scale(adv)
	}
	return width
}

// MissingRunes returns the distinct runes in text the font has no glyph
// for, in order of first appearance. Line breaks are ignored.
func (c *FontConfig) MissingRunes(text string) []rune {
	var (
		buf     sfnt.Buffer
		missing []rune
	)
	seen := make(map[rune]bool)
	for _, r := range text {
		if r == '\n' || r == '\r' || seen[r] {
			continue
		}
		seen[r] = true
		idx, err := c.font.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			missing = append(missing, r)
		}
	}
	return missing
}

// FontSize is a requested font size, either in pixels or relative to the
// canvas width.
type FontSize struct {
	Value    float64 // Pixels, or a fraction of the width when Relative
	Relative bool
}

// ParseFontSize parses "14" (pixels) or "8%" (percent of the canvas width).
func ParseFontSize(text string) (FontSize, error) {
	s := strings.TrimSpace(text)
	rel := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return FontSize{}, parseError("parse font size", "invalid font size %q, expected pixels or a percentage", text)
	}
	if v <= 0 {
		return FontSize{}, configError("parse font size", "font size must be positive, got %q", text)
	}
	if rel {
		return FontSize{Value: v / 100, Relative: true}, nil
	}
	return FontSize{Value: v}, nil
}

// errRelativeSize is returned when a relative size has no width to refer to.
var errRelativeSize = errors.New("a relative font size needs explicit dimensions")

// Pixels resolves the size against the requested canvas dimensions.
func (s FontSize) Pixels(dims Dimensions) (float64, error) {
	if !s.Relative {
		return s.Value, nil
	}
	if dims.IsZero() {
		return 0, ConfigError("resolve font size", errRelativeSize)
	}
	return s.Value * float64(dims.Width), nil
}

// String implements fmt.Stringer.
func (s FontSize) String() string {
	if s.Relative {
		return strconv.FormatFloat(s.Value*100, 'g', -1, 64) + "%"
	}
	return strconv.FormatFloat(s.Value, 'g', -1, 64)
}
