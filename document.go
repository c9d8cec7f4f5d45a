package sia

import "errors"

// Document is a vector drawing ready for rasterization: a background
// rectangle followed by positioned, colored text runs. Coordinates are
// pixels with the origin at the top-left corner.
type Document struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Background Rect      `json:"background"`
	Font       FontFace  `json:"font"`
	Runs       []TextRun `json:"runs"`
}

// Rect is a filled rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   Paint   `json:"fill"`
}

// FontFace references the font every run is set in.
type FontFace struct {
	Family     string  `json:"family"`
	Size       float64 `json:"size"`       // Pixels per em
	Ascent     float64 `json:"ascent"`     // Baseline offset from the top of a line
	LineHeight int     `json:"lineHeight"` // Vertical advance between lines
	Data       []byte  `json:"-"`
}

// TextRun is a span of text drawn in one color. X and Y locate the
// top-left corner of the run's line box.
type TextRun struct {
	Line  int     `json:"line"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Text  string  `json:"text"`
	Fill  Paint   `json:"fill"`
}

var errNoFont = errors.New("no font to embed")

// BuildDocument lays out lines of styled tokens on a canvas of the given
// dimensions. Lines stack from the top, one line height apart; tokens on a
// line follow each other by their measured widths. Tokens without a
// highlight color use the default foreground. The document always has
// exactly the given dimensions.
func BuildDocument(dims Dimensions, colors Colors, font *FontConfig, lines []Line) (*Document, error) {
	if font == nil || font.font == nil || len(font.data) == 0 {
		return nil, renderError("build document", errNoFont)
	}

	lineHeight := font.LineHeight()
	doc := &Document{
		Width:  dims.Width,
		Height: dims.Height,
		Background: Rect{
			Width:  float64(dims.Width),
			Height: float64(dims.Height),
			Fill:   colors.BackgroundPaint(),
		},
		Font: FontFace{
			Family:     font.Family(),
			Size:       font.Size(),
			Ascent:     font.Ascent(),
			LineHeight: lineHeight,
			Data:       font.Data(),
		},
	}

	for i, line := range lines {
		y := float64(i * lineHeight)
		var x float64
		for _, tok := range line {
			if tok.Text == "" {
				continue
			}
			w := font.MeasureLineWidth(tok.Text)
			doc.Runs = append(doc.Runs, TextRun{
				Line:  i,
				X:     x,
				Y:     y,
				Width: w,
				Text:  tok.Text,
				Fill:  colors.ForegroundPaint(tok.Style.Foreground),
			})
			x += w
		}
	}

	return doc, nil
}
