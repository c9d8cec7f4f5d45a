package sia_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/sia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("matches only the sentinel of its kind", func(t *testing.T) {
		t.Parallel()

		err := sia.ConfigError("load font", errors.New("no such file"))

		assert.ErrorIs(t, err, sia.ErrConfig)
		assert.NotErrorIs(t, err, sia.ErrParse)
		assert.NotErrorIs(t, err, sia.ErrRender)
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		t.Parallel()

		_, parseErr := sia.ParseColor("nope")
		wrapped := fmt.Errorf("bg color: %w", parseErr)

		assert.ErrorIs(t, wrapped, sia.ErrParse)
		assert.Equal(t, sia.KindParse, sia.KindOf(wrapped))
		assert.Equal(t, "parse", sia.KindOf(wrapped).String())
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("bad glyph table")
		err := sia.RenderError("load font", cause)

		require.ErrorIs(t, err, cause)
		assert.Equal(t, "load font: bad glyph table", err.Error())
	})

	t.Run("KindOf is zero for foreign errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sia.ErrorKind(0), sia.KindOf(errors.New("boom")))
		assert.Equal(t, "unknown", sia.ErrorKind(0).String())
	})
}
