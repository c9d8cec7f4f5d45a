package sia

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGB color. A is the alpha byte embedded in an 8-digit hex
// form and is 255 for colors parsed from 6 digits.
type Color struct {
	R, G, B uint8
	A       uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional
// and hex digits are case-insensitive.
func ParseColor(text string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, parseError("parse color", "invalid color %q, expected #RRGGBB or #RRGGBBAA", text)
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, parseError("parse color", "invalid hex digits %q in color %q", hex[2*i:2*i+2], text)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// Alpha returns the embedded alpha as a fraction.
func (c Color) Alpha() Alpha {
	return Alpha(float64(c.A) / 255)
}

// Compose combines the embedded alpha with an explicitly requested one.
func (c Color) Compose(explicit Alpha) Alpha {
	return c.Alpha().Mul(explicit)
}

// Opaque returns the color with its embedded alpha dropped.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// Hex returns "#RRGGBB", or "#RRGGBBAA" when the color carries alpha.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color in its Hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a color written by MarshalText.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Alpha is an opacity fraction in [0, 1].
type Alpha float64

// Opaque is full opacity.
const Opaque Alpha = 1

// NewAlpha clamps v into [0, 1]. NaN becomes 0.
func NewAlpha(v float64) Alpha {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return Alpha(v)
}

// ParseAlpha parses a decimal opacity. Values outside [0, 1] are clamped
// rather than rejected, so "1.7" reads as 1 and "-0.5" as 0. Hexadecimal
// floats, digit separators and NaN/Inf spellings are rejected.
func ParseAlpha(text string) (Alpha, error) {
	s := strings.TrimSpace(text)
	if !isDecimal(s) {
		return 0, parseError("parse alpha", "invalid alpha %q, expected a decimal fraction", text)
	}
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case err != nil && !isRangeError(err):
		return 0, parseError("parse alpha", "invalid alpha %q, expected a decimal fraction", text)
	case err == nil && (math.IsNaN(v) || math.IsInf(v, 0)):
		return 0, parseError("parse alpha", "invalid alpha %q, expected a finite number", text)
	}
	// Out-of-range literals such as "1e400" parse to ±Inf and clamp.
	return NewAlpha(v), nil
}

// isDecimal reports whether s uses only the characters of a decimal
// floating-point literal.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return false
		}
	}
	return true
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// Mul composes two opacities.
func (a Alpha) Mul(b Alpha) Alpha {
	return NewAlpha(float64(a) * float64(b))
}

// Byte returns the opacity scaled to 0..255.
func (a Alpha) Byte() uint8 {
	return uint8(math.Round(float64(NewAlpha(float64(a))) * 255))
}

// String implements fmt.Stringer.
func (a Alpha) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

// Paint is a color together with the opacity it is drawn at.
type Paint struct {
	Color Color `json:"color"`
	Alpha Alpha `json:"alpha"`
}

// Hex returns the paint as "#RRGGBBAA".
func (p Paint) Hex() string {
	c := p.Color.Opaque()
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, p.Alpha.Byte())
}

// Colors pairs the default foreground and background with their own
// opacities. The two alphas are independent of each other.
type Colors struct {
	Foreground      Color
	Background      Color
	ForegroundAlpha Alpha
	BackgroundAlpha Alpha
}

// NewColors folds each color's embedded alpha into its explicit alpha, so
// the stored colors are opaque and the stored alphas are the composed
// fractions.
func NewColors(fg, bg Color, fgAlpha, bgAlpha Alpha) Colors {
	return Colors{
		Foreground:      fg.Opaque(),
		Background:      bg.Opaque(),
		ForegroundAlpha: fg.Compose(NewAlpha(float64(fgAlpha))),
		BackgroundAlpha: bg.Compose(NewAlpha(float64(bgAlpha))),
	}
}

// BackgroundPaint returns the background fill.
func (c Colors) BackgroundPaint() Paint {
	return Paint{Color: c.Background, Alpha: c.BackgroundAlpha}
}

// ForegroundPaint returns the fill for text drawn in highlight color fg,
// or in the default foreground when fg is nil.
func (c Colors) ForegroundPaint(fg *Color) Paint {
	if fg == nil {
		return Paint{Color: c.Foreground, Alpha: c.ForegroundAlpha}
	}
	return Paint{Color: fg.Opaque(), Alpha: fg.Compose(c.ForegroundAlpha)}
}
