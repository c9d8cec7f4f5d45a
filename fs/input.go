// Package fs resolves command-line arguments to files on disk: input text,
// font data and output paths.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/sia"
)

// Input is text to render, with the file it came from if any.
type Input struct {
	Path     string // Empty for literal text
	Contents string
}

// ReadInput resolves s to the text to render. If s names an existing
// regular file, its contents are used; otherwise s itself is the text.
// Invalid UTF-8 is replaced and CRLF line endings become LF. An empty s
// yields the font preview text.
func ReadInput(s string) (Input, error) {
	if s == "" {
		return Input{Contents: sia.PreviewText}, nil
	}

	info, err := os.Stat(s)
	if err != nil || !info.Mode().IsRegular() {
		return Input{Contents: normalize(s)}, nil
	}

	data, err := os.ReadFile(s)
	if err != nil {
		return Input{}, sia.ConfigError("read input", err)
	}
	return Input{Path: s, Contents: normalize(string(data))}, nil
}

func normalize(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// OutputPath returns the output file for the index-th (zero-based) of total
// inputs. A single input writes to base; several inputs get numbered
// siblings, e.g. out-1.png, out-2.png.
func OutputPath(base string, index, total int) string {
	if total <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + "-" + strconv.Itoa(index+1) + ext
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}
