// Package sia provides domain types for rendering text into themed,
// syntax-highlighted images.
package sia

import "io"

// Token represents a syntax-highlighted span of text.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground *Color // Highlight color, or nil for the configured default
}

// Line is the ordered sequence of tokens making up one line of text.
type Line []Token

// Text returns the concatenated text of all tokens in the line.
func (l Line) Text() string {
	var n int
	for _, tok := range l {
		n += len(tok.Text)
	}
	buf := make([]byte, 0, n)
	for _, tok := range l {
		buf = append(buf, tok.Text...)
	}
	return string(buf)
}

// LineTexts returns the text of each line, in order.
func LineTexts(lines []Line) []string {
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text()
	}
	return texts
}

// Palette holds the default colors a theme declares for unhighlighted text.
type Palette struct {
	Foreground Color
	Background Color
}

// Highlighter splits source text into lines of styled tokens.
type Highlighter interface {
	// Highlight tokenizes source with the grammar named by language and
	// colors the tokens using theme. An unknown language falls back to
	// plain text; an unknown theme is an error.
	Highlight(language, theme, source string) ([]Line, error)
}

// ThemeSource provides the palettes of the available themes.
type ThemeSource interface {
	// Palette returns the default foreground and background of theme.
	Palette(theme string) (Palette, error)
	// Themes returns the names of all known themes, sorted.
	Themes() []string
}

// LanguageDetector determines the grammar to highlight input with.
type LanguageDetector interface {
	// Detect returns the language name for the given path and contents,
	// or an empty string if it cannot be determined. Path may be empty
	// for literal input.
	Detect(path, source string) string
}

// Renderer converts an assembled document into an encoded image.
type Renderer interface {
	// Render writes doc to w encoded as format.
	Render(w io.Writer, doc *Document, format Format) error
}

// LayoutWriter persists an assembled document for inspection.
type LayoutWriter interface {
	Write(path string, doc *Document) error
}
