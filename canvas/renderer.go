// Package canvas renders documents to images using the tdewolff/canvas
// vector library.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	canvaslib "github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/fwojciec/sia"
)

// Compile-time interface verification.
var _ sia.Renderer = (*Renderer)(nil)

// Document pixels are CSS pixels: 96 per inch. Canvas works in millimeters
// and sizes fonts in points.
const (
	pixelsPerInch = 96.0
	mmPerPixel    = 25.4 / pixelsPerInch
	ptPerPixel    = 72.0 / pixelsPerInch
)

// DefaultJPEGQuality is the quality used for JPEG output.
const DefaultJPEGQuality = 95

// Renderer draws documents with tdewolff/canvas.
type Renderer struct {
	jpegQuality int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithJPEGQuality sets the JPEG encoder quality (1-100).
func WithJPEGQuality(q int) Option {
	return func(r *Renderer) { r.jpegQuality = q }
}

// NewRenderer creates a canvas-based renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{jpegQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes doc to w encoded as format. Raster formats are produced at
// one image pixel per document pixel.
func (r *Renderer) Render(w io.Writer, doc *sia.Document, format sia.Format) error {
	c, err := r.draw(doc)
	if err != nil {
		return err
	}

	switch format {
	case sia.FormatSVG:
		out := svg.New(w, c.W, c.H, nil)
		c.RenderTo(out)
		if err := out.Close(); err != nil {
			return sia.RenderError("write svg", err)
		}
		return nil
	case sia.FormatPDF:
		out := pdf.New(w, c.W, c.H, nil)
		c.RenderTo(out)
		if err := out.Close(); err != nil {
			return sia.RenderError("write pdf", err)
		}
		return nil
	}

	img := rasterize(c)
	if err := r.encode(w, img, format); err != nil {
		return sia.RenderError("encode "+string(format), err)
	}
	return nil
}

// Rasterize draws doc into a new image of doc.Width by doc.Height pixels.
func (r *Renderer) Rasterize(doc *sia.Document) (*image.RGBA, error) {
	c, err := r.draw(doc)
	if err != nil {
		return nil, err
	}
	return rasterize(c), nil
}

func rasterize(c *canvaslib.Canvas) *image.RGBA {
	return rasterizer.Draw(c, canvaslib.DPI(pixelsPerInch), canvaslib.DefaultColorSpace)
}

func (r *Renderer) encode(w io.Writer, img image.Image, format sia.Format) error {
	switch format {
	case sia.FormatPNG:
		return png.Encode(w, img)
	case sia.FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: r.jpegQuality})
	case sia.FormatBMP:
		return bmp.Encode(w, img)
	case sia.FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func (r *Renderer) draw(doc *sia.Document) (*canvaslib.Canvas, error) {
	if doc == nil {
		return nil, sia.RenderError("render", fmt.Errorf("document is nil"))
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, sia.RenderError("render", fmt.Errorf("invalid document size %dx%d", doc.Width, doc.Height))
	}

	family, err := loadFamily(doc.Font)
	if err != nil {
		return nil, err
	}

	c := canvaslib.New(px(float64(doc.Width)), px(float64(doc.Height)))
	ctx := canvaslib.NewContext(c)
	ctx.SetCoordSystem(canvaslib.CartesianIV) // top-left origin, y grows downwards

	bg := doc.Background
	ctx.SetFillColor(toRGBA(bg.Fill))
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	ctx.DrawPath(px(bg.X), px(bg.Y), canvaslib.Rectangle(px(bg.Width), px(bg.Height)))

	size := doc.Font.Size * ptPerPixel
	for _, run := range doc.Runs {
		face := family.Face(size, toRGBA(run.Fill), canvaslib.FontRegular, canvaslib.FontNormal)
		line := canvaslib.NewTextLine(face, run.Text, canvaslib.Left)
		ctx.DrawText(px(run.X), px(run.Y+doc.Font.Ascent), line)
	}
	return c, nil
}

func loadFamily(font sia.FontFace) (*canvaslib.FontFamily, error) {
	if len(font.Data) == 0 {
		return nil, sia.RenderError("load font", fmt.Errorf("font %q has no data", font.Family))
	}
	name := font.Family
	if name == "" {
		name = "sia"
	}
	family := canvaslib.NewFontFamily(name)
	if err := family.LoadFont(font.Data, 0, canvaslib.FontRegular); err != nil {
		return nil, sia.RenderError("load font", fmt.Errorf("%s: %w", name, err))
	}
	return family, nil
}

// px converts document pixels to canvas millimeters.
func px(v float64) float64 {
	return v * mmPerPixel
}

// toRGBA converts a paint to the alpha-premultiplied color canvas expects.
func toRGBA(p sia.Paint) color.RGBA {
	a := uint32(p.Alpha.Byte())
	premul := func(c uint8) uint8 {
		return uint8((uint32(c)*a + 127) / 255)
	}
	return color.RGBA{
		R: premul(p.Color.R),
		G: premul(p.Color.G),
		B: premul(p.Color.B),
		A: uint8(a),
	}
}
