package mock

import (
	"io"

	"github.com/fwojciec/sia"
)

// Compile-time interface verification.
var (
	_ sia.Renderer     = (*Renderer)(nil)
	_ sia.LayoutWriter = (*LayoutWriter)(nil)
)

// Renderer is a mock implementation of sia.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, doc *sia.Document, format sia.Format) error
}

func (r *Renderer) Render(w io.Writer, doc *sia.Document, format sia.Format) error {
	return r.RenderFn(w, doc, format)
}

// LayoutWriter is a mock implementation of sia.LayoutWriter.
type LayoutWriter struct {
	WriteFn func(path string, doc *sia.Document) error
}

func (l *LayoutWriter) Write(path string, doc *sia.Document) error {
	return l.WriteFn(path, doc)
}
