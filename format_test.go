package sia_test

import (
	"testing"

	"github.com/fwojciec/sia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want sia.Format
	}{
		{"out.png", sia.FormatPNG},
		{"out.PNG", sia.FormatPNG},
		{"dir/out.jpg", sia.FormatJPEG},
		{"out.jpeg", sia.FormatJPEG},
		{"out.bmp", sia.FormatBMP},
		{"out.tif", sia.FormatTIFF},
		{"out.svg", sia.FormatSVG},
		{"out.pdf", sia.FormatPDF},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := sia.FormatFromPath(tt.path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown extension is a config error", func(t *testing.T) {
		t.Parallel()

		_, err := sia.FormatFromPath("out.gif")
		assert.ErrorIs(t, err, sia.ErrConfig)

		_, err = sia.FormatFromPath("out")
		assert.ErrorIs(t, err, sia.ErrConfig)
	})

	t.Run("raster formats", func(t *testing.T) {
		t.Parallel()

		assert.True(t, sia.FormatPNG.IsRaster())
		assert.True(t, sia.FormatTIFF.IsRaster())
		assert.False(t, sia.FormatSVG.IsRaster())
		assert.False(t, sia.FormatPDF.IsRaster())
	})
}
