// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"fmt"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/sia"
)

// Compile-time interface verification.
var (
	_ sia.Highlighter = (*Highlighter)(nil)
	_ sia.ThemeSource = (*Highlighter)(nil)
)

// Highlighter tokenizes and colors source text using chroma lexers and styles.
type Highlighter struct{}

// NewHighlighter creates a new chroma-based highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight splits source into lines of tokens colored by theme.
// An empty language, or one chroma does not know, is highlighted as plain
// text. Returns an empty slice for empty source.
func (h *Highlighter) Highlight(language, theme, source string) ([]sia.Line, error) {
	style, err := lookupStyle(theme)
	if err != nil {
		return nil, err
	}
	if source == "" {
		return []sia.Line{}, nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer := chromalib.Coalesce(resolveLexer(language))

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, sia.RenderError("highlight", fmt.Errorf("%s lexer: %w", lexer.Config().Name, err))
	}

	colors := newColorCache(style)

	// Collect all tokens first (with full context)
	var allTokens []sia.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		allTokens = append(allTokens, sia.Token{
			Text:  token.Value,
			Style: sia.Style{Foreground: colors.foreground(token.Type)},
		})
	}

	return splitTokensByLine(allTokens), nil
}

func resolveLexer(language string) chromalib.Lexer {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer
		}
	}
	return lexers.Fallback
}

// colorCache resolves token colors from a style, leaving tokens that only
// inherit the theme's default text color uncolored.
type colorCache struct {
	style    *chromalib.Style
	fallback chromalib.Colour
	cache    map[chromalib.TokenType]*sia.Color
}

func newColorCache(style *chromalib.Style) *colorCache {
	return &colorCache{
		style:    style,
		fallback: style.Get(chromalib.Text).Colour,
		cache:    make(map[chromalib.TokenType]*sia.Color),
	}
}

func (c *colorCache) foreground(tt chromalib.TokenType) *sia.Color {
	if col, ok := c.cache[tt]; ok {
		return col
	}
	var col *sia.Color
	entry := c.style.Get(tt)
	if entry.Colour.IsSet() && entry.Colour != c.fallback {
		v := colourToColor(entry.Colour)
		col = &v
	}
	c.cache[tt] = col
	return col
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Handles tokens that span multiple lines by splitting them at newline boundaries.
// A trailing newline does not start a new line; blank lines in between are kept.
func splitTokensByLine(tokens []sia.Token) []sia.Line {
	if len(tokens) == 0 {
		return []sia.Line{}
	}

	var result []sia.Line
	var currentLine sia.Line

	for _, tok := range tokens {
		// Token without newlines goes directly to current line
		if !strings.Contains(tok.Text, "\n") {
			if tok.Text != "" {
				currentLine = append(currentLine, tok)
			}
			continue
		}

		// Split the token at newline boundaries
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, sia.Token{
					Text:  part,
					Style: tok.Style,
				})
			}
			// If this isn't the last part, we hit a newline - finalize the line
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	// Don't forget the last line if it has content
	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}
