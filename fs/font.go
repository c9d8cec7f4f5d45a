package fs

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fwojciec/sia"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// BuiltinPrefix marks a font argument as one of the bundled Go fonts.
const BuiltinPrefix = "builtin:"

var builtinFonts = map[string][]byte{
	"gobold":           gobold.TTF,
	"goitalic":         goitalic.TTF,
	"gomedium":         gomedium.TTF,
	"gomono":           gomono.TTF,
	"gomonobold":       gomonobold.TTF,
	"gomonobolditalic": gomonobolditalic.TTF,
	"gomonoitalic":     gomonoitalic.TTF,
	"goregular":        goregular.TTF,
}

// BuiltinFonts returns the names of the bundled fonts, sorted.
func BuiltinFonts() []string {
	names := make([]string, 0, len(builtinFonts))
	for name := range builtinFonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFont returns the font data named by arg: "builtin:<name>" for a
// bundled font, otherwise a path to a TrueType or OpenType file. A bare
// bundled font name is accepted when no file of that name exists.
func LoadFont(arg string) (name string, data []byte, err error) {
	if strings.HasPrefix(arg, BuiltinPrefix) {
		return builtin(strings.TrimPrefix(arg, BuiltinPrefix))
	}
	if arg == "" {
		return "", nil, sia.ConfigError("load font", errors.New("no font given"))
	}

	data, err = os.ReadFile(arg)
	if err == nil {
		return arg, data, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		if _, ok := builtinFonts[arg]; ok {
			return builtin(arg)
		}
	}
	return "", nil, sia.ConfigError("load font", err)
}

func builtin(name string) (string, []byte, error) {
	data, ok := builtinFonts[strings.ToLower(name)]
	if !ok {
		return "", nil, sia.ConfigError("load font",
			fmt.Errorf("unknown built-in font %q (available: %s)", name, strings.Join(BuiltinFonts(), ", ")))
	}
	return BuiltinPrefix + strings.ToLower(name), data, nil
}
