// Package mock provides test doubles for sia interfaces.
package mock

import "github.com/fwojciec/sia"

// Compile-time interface verification.
var (
	_ sia.Highlighter = (*Highlighter)(nil)
	_ sia.ThemeSource = (*ThemeSource)(nil)
)

// Highlighter is a mock implementation of sia.Highlighter.
type Highlighter struct {
	HighlightFn func(language, theme, source string) ([]sia.Line, error)
}

func (h *Highlighter) Highlight(language, theme, source string) ([]sia.Line, error) {
	return h.HighlightFn(language, theme, source)
}

// ThemeSource is a mock implementation of sia.ThemeSource.
type ThemeSource struct {
	PaletteFn func(theme string) (sia.Palette, error)
	ThemesFn  func() []string
}

func (s *ThemeSource) Palette(theme string) (sia.Palette, error) {
	return s.PaletteFn(theme)
}

func (s *ThemeSource) Themes() []string {
	return s.ThemesFn()
}
