// Package lipgloss provides terminal-aware text helpers built on the
// Lipgloss styling library.
package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ExpandTabs converts tab characters to spaces using tab stops every
// tabWidth display columns. Columns are measured in terminal cells, so wide
// characters count double. The column resets after each newline. A
// non-positive tabWidth leaves s unchanged.
func ExpandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 || !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			nextStop := ((col / tabWidth) + 1) * tabWidth
			sb.WriteString(strings.Repeat(" ", nextStop-col))
			col = nextStop
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
		}
	}
	return sb.String()
}
