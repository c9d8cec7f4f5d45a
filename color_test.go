package sia_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/fwojciec/sia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	t.Run("recovers channels from six digits", func(t *testing.T) {
		t.Parallel()

		for _, c := range []sia.Color{
			sia.RGB(0, 0, 0),
			sia.RGB(255, 255, 255),
			sia.RGB(0x12, 0xab, 0xcd),
			sia.RGB(0xfe, 0x01, 0x80),
		} {
			text := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
			got, err := sia.ParseColor(text)
			require.NoError(t, err, text)
			assert.Equal(t, c, got, text)
			assert.Equal(t, sia.Opaque, got.Alpha(), "alpha unaffected for %s", text)
		}
	})

	t.Run("leading hash is optional and digits are case-insensitive", func(t *testing.T) {
		t.Parallel()

		upper, err := sia.ParseColor("#AABBCC")
		require.NoError(t, err)
		lower, err := sia.ParseColor("aabbcc")
		require.NoError(t, err)

		assert.Equal(t, upper, lower)
		assert.Equal(t, sia.RGB(0xaa, 0xbb, 0xcc), lower)
	})

	t.Run("eight digits carry an alpha byte", func(t *testing.T) {
		t.Parallel()

		for _, aa := range []uint8{0x00, 0x01, 0x40, 0x80, 0xc0, 0xff} {
			text := fmt.Sprintf("#102030%02X", aa)
			got, err := sia.ParseColor(text)
			require.NoError(t, err, text)

			assert.Equal(t, uint8(0x10), got.R)
			assert.Equal(t, uint8(0x20), got.G)
			assert.Equal(t, uint8(0x30), got.B)
			assert.InDelta(t, float64(aa)/255, float64(got.Compose(sia.Opaque)), 1e-9, text)
		}
	})

	t.Run("embedded and explicit alpha compose", func(t *testing.T) {
		t.Parallel()

		c, err := sia.ParseColor("#00000080")
		require.NoError(t, err)

		assert.InDelta(t, 128.0/255*0.5, float64(c.Compose(0.5)), 1e-9)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{"", "#", "#fff", "#12345", "#1234567", "#123456789", "#gg0000", "#12 456", "##123456"} {
			_, err := sia.ParseColor(text)
			require.Error(t, err, text)
			assert.ErrorIs(t, err, sia.ErrParse, text)
		}
	})

	t.Run("hex round-trips", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{"#0A0B0C", "#0A0B0C80"} {
			c, err := sia.ParseColor(text)
			require.NoError(t, err)
			assert.Equal(t, text, c.Hex())
		}
	})
}

func TestParseAlpha(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  sia.Alpha
	}{
		{"0", 0},
		{"1", 1},
		{"0.25", 0.25},
		{" 0.5 ", 0.5},
		{"-0.5", 0},
		{"1.7", 1},
		{"1e400", 1},
		{"-1e400", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := sia.ParseAlpha(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects non-numbers", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{"", "half", "0.5.1", "NaN", "Inf", "-inf", "0x1p-1", "0X.8p0", "0_5"} {
			_, err := sia.ParseAlpha(text)
			assert.ErrorIs(t, err, sia.ErrParse, text)
		}
	})
}

func TestAlpha(t *testing.T) {
	t.Parallel()

	t.Run("NewAlpha clamps", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sia.Alpha(0), sia.NewAlpha(-3))
		assert.Equal(t, sia.Alpha(1), sia.NewAlpha(3))
		assert.Equal(t, sia.Alpha(0.3), sia.NewAlpha(0.3))
	})

	t.Run("Byte rounds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint8(0), sia.Alpha(0).Byte())
		assert.Equal(t, uint8(128), sia.Alpha(0.5).Byte())
		assert.Equal(t, uint8(255), sia.Alpha(1).Byte())
	})
}

func TestNewColors(t *testing.T) {
	t.Parallel()

	t.Run("folds embedded alpha into explicit alpha", func(t *testing.T) {
		t.Parallel()

		fg, err := sia.ParseColor("#FF000080")
		require.NoError(t, err)
		bg, err := sia.ParseColor("#000000")
		require.NoError(t, err)

		colors := sia.NewColors(fg, bg, 0.5, 0.25)

		assert.Equal(t, sia.RGB(255, 0, 0), colors.Foreground)
		assert.InDelta(t, 128.0/255*0.5, float64(colors.ForegroundAlpha), 1e-9)
		assert.InDelta(t, 0.25, float64(colors.BackgroundAlpha), 1e-9)
	})

	t.Run("background and foreground alphas are independent", func(t *testing.T) {
		t.Parallel()

		colors := sia.NewColors(sia.RGB(1, 2, 3), sia.RGB(4, 5, 6), 1, 0)

		assert.Equal(t, sia.Alpha(1), colors.ForegroundPaint(nil).Alpha)
		assert.Equal(t, sia.Alpha(0), colors.BackgroundPaint().Alpha)
	})

	t.Run("highlight colors compose with foreground alpha", func(t *testing.T) {
		t.Parallel()

		colors := sia.NewColors(sia.RGB(1, 2, 3), sia.RGB(4, 5, 6), 0.5, 1)
		red := sia.RGB(255, 0, 0)

		paint := colors.ForegroundPaint(&red)

		assert.Equal(t, red, paint.Color)
		assert.InDelta(t, 0.5, float64(paint.Alpha), 1e-9)
		assert.Equal(t, "#FF000080", paint.Hex())
	})
}

func TestColor_JSON(t *testing.T) {
	t.Parallel()

	paint := sia.Paint{Color: sia.Color{R: 0xFF, G: 0x80, B: 0x00, A: 0x40}, Alpha: 0.5}

	data, err := json.Marshal(paint)
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"#FF800040","alpha":0.5}`, string(data))

	var got sia.Paint
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, paint, got)
}
