package main_test

import (
	"flag"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/sia"
	main "github.com/fwojciec/sia/cmd/sia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig(nil, envMap(nil), io.Discard)

		require.NoError(t, err)
		assert.Equal(t, "builtin:gomono", cfg.Font)
		assert.Equal(t, "output.png", cfg.Output)
		assert.True(t, cfg.Dimensions.IsZero())
		assert.Equal(t, sia.FontSize{Value: 16}, cfg.FontSize)
		assert.Nil(t, cfg.Foreground)
		assert.Nil(t, cfg.Background)
		assert.Equal(t, sia.Opaque, cfg.FgAlpha)
		assert.Equal(t, sia.Opaque, cfg.BgAlpha)
		assert.Equal(t, "monokai", cfg.Theme)
		assert.Empty(t, cfg.Language)
		assert.Equal(t, []string{""}, cfg.Inputs, "no input previews the font")
		assert.Equal(t, 4, cfg.TabWidth)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	})

	t.Run("reads flags", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig([]string{
			"-F", "font.ttf",
			"--output", "code.svg",
			"--size", "800x600",
			"--font-size", "5%",
			"--bg-color", "#112233",
			"--fg-color", "ff000080",
			"--bg-alpha", "1.7",
			"--fg-alpha", "-0.5",
			"--theme", "github",
			"--lang", "go",
			"--log-level", "debug",
		}, envMap(nil), io.Discard)

		require.NoError(t, err)
		assert.Equal(t, "font.ttf", cfg.Font)
		assert.Equal(t, "code.svg", cfg.Output)
		assert.Equal(t, sia.Dimensions{Width: 800, Height: 600}, cfg.Dimensions)
		assert.Equal(t, sia.FontSize{Value: 0.05, Relative: true}, cfg.FontSize)
		require.NotNil(t, cfg.Background)
		assert.Equal(t, sia.RGB(0x11, 0x22, 0x33), *cfg.Background)
		require.NotNil(t, cfg.Foreground)
		assert.Equal(t, sia.Color{R: 0xFF, A: 0x80}, *cfg.Foreground)
		assert.Equal(t, sia.Alpha(1), cfg.BgAlpha, "alpha is clamped")
		assert.Equal(t, sia.Alpha(0), cfg.FgAlpha, "alpha is clamped")
		assert.Equal(t, "github", cfg.Theme)
		assert.Equal(t, "go", cfg.Language)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	})

	t.Run("collects repeated and positional inputs", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig([]string{"-I", "a.go", "--input", "b.go", "c.go"}, envMap(nil), io.Discard)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.go", "b.go", "c.go"}, cfg.Inputs)
	})

	t.Run("falls back to the environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig(nil, envMap(map[string]string{
			"SIA_FONT":       "builtin:goregular",
			"SIA_OUT_FILE":   "env.png",
			"SIA_DIMENSIONS": "1024x768",
			"SIA_FONT_SIZE":  "20",
			"SIA_BG_COLOR":   "#000000",
			"SIA_FG_ALPHA":   "0.25",
			"SIA_THEME":      "dracula",
			"SIA_LANGUAGE":   "python",
			"SIA_LOG":        "info",
		}), io.Discard)

		require.NoError(t, err)
		assert.Equal(t, "builtin:goregular", cfg.Font)
		assert.Equal(t, "env.png", cfg.Output)
		assert.Equal(t, "1024x768", cfg.Dimensions.String())
		assert.Equal(t, sia.FontSize{Value: 20}, cfg.FontSize)
		require.NotNil(t, cfg.Background)
		assert.Equal(t, sia.RGB(0, 0, 0), *cfg.Background)
		assert.Equal(t, sia.Alpha(0.25), cfg.FgAlpha)
		assert.Equal(t, "dracula", cfg.Theme)
		assert.Equal(t, "python", cfg.Language)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	})

	t.Run("flags win over the environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig([]string{"--theme", "github", "--size", "10x20"}, envMap(map[string]string{
			"SIA_THEME":      "dracula",
			"SIA_DIMENSIONS": "1024x768",
		}), io.Discard)

		require.NoError(t, err)
		assert.Equal(t, "github", cfg.Theme)
		assert.Equal(t, sia.Dimensions{Width: 10, Height: 20}, cfg.Dimensions)
	})

	t.Run("bad color is a parse error", func(t *testing.T) {
		t.Parallel()

		_, err := main.ParseConfig([]string{"--fg-color", "#12345"}, envMap(nil), io.Discard)

		assert.ErrorIs(t, err, sia.ErrParse)
	})

	t.Run("bad alpha is a parse error", func(t *testing.T) {
		t.Parallel()

		_, err := main.ParseConfig([]string{"--bg-alpha", "opaque"}, envMap(nil), io.Discard)

		assert.ErrorIs(t, err, sia.ErrParse)
	})

	t.Run("bad dimensions in the environment are a parse error", func(t *testing.T) {
		t.Parallel()

		_, err := main.ParseConfig(nil, envMap(map[string]string{"SIA_DIMENSIONS": "0x10"}), io.Discard)

		assert.ErrorIs(t, err, sia.ErrParse)
	})

	t.Run("bad dimensions flag is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := main.ParseConfig([]string{"--size", "big"}, envMap(nil), io.Discard)

		assert.Error(t, err)
	})

	t.Run("help is reported", func(t *testing.T) {
		t.Parallel()

		_, err := main.ParseConfig([]string{"-h"}, envMap(nil), io.Discard)

		assert.ErrorIs(t, err, flag.ErrHelp)
	})

	t.Run("workers are at least one", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig([]string{"--workers", "0"}, envMap(nil), io.Discard)

		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Workers)
	})
}
