package chroma

import (
	"fmt"
	"sort"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/sia"
)

// Palette returns the default background and foreground of theme. Themes
// that leave either unset get black text on white.
func (h *Highlighter) Palette(theme string) (sia.Palette, error) {
	style, err := lookupStyle(theme)
	if err != nil {
		return sia.Palette{}, err
	}

	palette := sia.Palette{
		Foreground: sia.RGB(0x00, 0x00, 0x00),
		Background: sia.RGB(0xFF, 0xFF, 0xFF),
	}
	entry := style.Get(chromalib.Text)
	if entry.Colour.IsSet() {
		palette.Foreground = colourToColor(entry.Colour)
	}
	if entry.Background.IsSet() {
		palette.Background = colourToColor(entry.Background)
	}
	return palette, nil
}

// Themes returns the names of all registered chroma styles, sorted.
func (h *Highlighter) Themes() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

func lookupStyle(theme string) (*chromalib.Style, error) {
	if style, ok := styles.Registry[strings.ToLower(theme)]; ok {
		return style, nil
	}
	for name, style := range styles.Registry {
		if strings.EqualFold(name, theme) {
			return style, nil
		}
	}
	return nil, sia.ConfigError("load theme", fmt.Errorf("unknown theme %q", theme))
}

func colourToColor(c chromalib.Colour) sia.Color {
	return sia.RGB(c.Red(), c.Green(), c.Blue())
}
