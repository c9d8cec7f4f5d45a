package chroma

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/sia"
)

// Compile-time interface verification.
var _ sia.LanguageDetector = (*Detector)(nil)

// Detector detects programming languages using chroma's lexer registry.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the language name for the given path and contents, or an
// empty string if the language cannot be determined. The file name is
// tried first, then a "#!" interpreter line. Contents are never guessed
// from otherwise; undetected input is highlighted as plain text.
func (d *Detector) Detect(path, source string) string {
	if lang := d.DetectFromPath(path); lang != "" {
		return lang
	}
	return d.DetectFromShebang(source)
}

// DetectFromShebang returns the language named by the interpreter on a
// leading "#!" line, e.g. "#!/usr/bin/env python3", or an empty string.
func (d *Detector) DetectFromShebang(source string) string {
	if !strings.HasPrefix(source, "#!") {
		return ""
	}
	line, _, _ := strings.Cut(source[2:], "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	interpreter := path.Base(fields[0])
	if interpreter == "env" {
		interpreter = ""
		for _, f := range fields[1:] {
			if !strings.HasPrefix(f, "-") && !strings.Contains(f, "=") {
				interpreter = f
				break
			}
		}
		if interpreter == "" {
			return ""
		}
	}

	for _, name := range []string{interpreter, strings.TrimRight(interpreter, "0123456789.")} {
		if name == "" {
			continue
		}
		if lexer := lexers.Get(name); lexer != nil {
			return lexer.Config().Name
		}
	}
	return ""
}

// DetectFromPath returns the language name for the given path,
// or an empty string if the language cannot be determined.
func (d *Detector) DetectFromPath(path string) string {
	if path == "" {
		return ""
	}

	// Get just the filename for extension matching
	filename := filepath.Base(path)

	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}

	return lexer.Config().Name
}
