package lipgloss

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/sia"
	"github.com/muesli/termenv"
)

// ThemeList prints theme names, each drawn in its own foreground on its own
// background so the list doubles as a swatch.
type ThemeList struct {
	out      io.Writer
	themes   sia.ThemeSource
	renderer *lipgloss.Renderer
}

// NewThemeList creates a list writing to w. The color profile is detected
// from w unless set with SetColorProfile.
func NewThemeList(w io.Writer, themes sia.ThemeSource) *ThemeList {
	return &ThemeList{
		out:      w,
		themes:   themes,
		renderer: lipgloss.NewRenderer(w),
	}
}

// SetColorProfile overrides the detected color profile.
func (l *ThemeList) SetColorProfile(p termenv.Profile) {
	l.renderer.SetColorProfile(p)
}

// Print writes one line per theme, in the order the source reports them.
func (l *ThemeList) Print() error {
	names := l.themes.Themes()

	var width int
	for _, name := range names {
		width = max(width, lipgloss.Width(name))
	}

	for _, name := range names {
		palette, err := l.themes.Palette(name)
		if err != nil {
			return fmt.Errorf("theme %s: %w", name, err)
		}
		style := l.renderer.NewStyle().
			Foreground(lipgloss.Color(palette.Foreground.Opaque().Hex())).
			Background(lipgloss.Color(palette.Background.Opaque().Hex())).
			Padding(0, 1).
			Width(width + 2)
		if _, err := fmt.Fprintln(l.out, style.Render(name)); err != nil {
			return err
		}
	}
	return nil
}

