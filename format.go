package sia

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output image encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
)

// IsRaster reports whether the format stores pixels rather than vectors.
func (f Format) IsRaster() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatBMP, FormatTIFF:
		return true
	}
	return false
}

// FormatFromPath picks the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", ConfigError("output format", fmt.Errorf("unsupported output extension %q for %s", ext, path))
}
