package sia

import (
	"errors"
	"flag"
	"strconv"
	"strings"
)

// Compile-time interface verification.
var _ flag.Getter = (*Dimensions)(nil)

// Dimensions is a canvas size in pixels. The zero value means no size was
// requested and both values must be derived from the content.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ParseDimensions parses "<width>x<height>", e.g. "800x600". Both sides
// must be positive base-10 integers without a sign.
func ParseDimensions(text string) (Dimensions, error) {
	s := strings.TrimSpace(text)
	sep := strings.IndexAny(s, "xX")
	if sep < 0 {
		return Dimensions{}, parseError("parse dimensions", "invalid dimensions %q, expected <width>x<height>", text)
	}
	w, err := parsePositive(s[:sep])
	if err != nil {
		return Dimensions{}, parseError("parse dimensions", "invalid width in %q: %v", text, err)
	}
	h, err := parsePositive(s[sep+1:])
	if err != nil {
		return Dimensions{}, parseError("parse dimensions", "invalid height in %q: %v", text, err)
	}
	return Dimensions{Width: w, Height: h}, nil
}

// parsePositive accepts unsigned base-10 digits only; Atoi alone would
// also take a leading sign.
func parsePositive(s string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, strconv.ErrSyntax
	}
	if v <= 0 {
		return 0, errNotPositive
	}
	return v, nil
}

var errNotPositive = errors.New("must be greater than zero")

// IsZero reports whether no size is set.
func (d Dimensions) IsZero() bool {
	return d.Width == 0 && d.Height == 0
}

// String renders the dimensions as "<width>x<height>", or "" when unset.
func (d Dimensions) String() string {
	if d.IsZero() {
		return ""
	}
	return strconv.Itoa(d.Width) + "x" + strconv.Itoa(d.Height)
}

// Set parses text into d. An empty string clears the size.
func (d *Dimensions) Set(text string) error {
	if strings.TrimSpace(text) == "" {
		*d = Dimensions{}
		return nil
	}
	parsed, err := ParseDimensions(text)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Get returns the current value.
func (d *Dimensions) Get() any {
	return *d
}
