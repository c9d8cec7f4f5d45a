package mock

import "github.com/fwojciec/sia"

// Compile-time interface verification.
var _ sia.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of sia.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(path, source string) string
}

func (d *LanguageDetector) Detect(path, source string) string {
	return d.DetectFn(path, source)
}
