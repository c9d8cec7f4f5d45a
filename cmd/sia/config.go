package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/sia"
	"github.com/fwojciec/sia/fs"
)

// Config holds the parsed command line.
type Config struct {
	Font       string // Built-in font name or font file path
	Output     string
	Dimensions sia.Dimensions
	FontSize   sia.FontSize
	Foreground *sia.Color // Nil means the theme's text color
	Background *sia.Color // Nil means the theme's background
	FgAlpha    sia.Alpha
	BgAlpha    sia.Alpha
	Theme      string
	Language   string
	Inputs     []string
	LayoutOut  string
	TabWidth   int
	Workers    int
	ListThemes bool
	LogLevel   slog.Level
}

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// ParseConfig parses command-line arguments. Options left off the command
// line are read from the environment through getenv, then from defaults.
// Usage and flag errors are written to stderr.
func ParseConfig(args []string, getenv func(string) string, stderr io.Writer) (*Config, error) {
	d := sia.NewDefaults()
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	var (
		cfg      Config
		inputs   stringList
		fontSize string
		bgColor  string
		fgColor  string
		bgAlpha  string
		fgAlpha  string
		logLevel string
	)

	if v := getenv("SIA_DIMENSIONS"); v != "" {
		if err := cfg.Dimensions.Set(v); err != nil {
			return nil, fmt.Errorf("SIA_DIMENSIONS: %w", err)
		}
	}

	set := flag.NewFlagSet("sia", flag.ContinueOnError)
	set.SetOutput(stderr)
	set.Usage = func() {
		fmt.Fprintln(stderr, "Usage: sia [flags] [text or file ...]")
		fmt.Fprintln(stderr, "\nRender text into a syntax-highlighted image.")
		fmt.Fprintf(stderr, "\nBuilt-in fonts: %s\n\nFlags:\n", strings.Join(fs.BuiltinFonts(), ", "))
		set.PrintDefaults()
	}

	fontDefault := env("SIA_FONT", d.Font)
	set.StringVar(&cfg.Font, "font", fontDefault, "font file, or builtin:<name> `font` (env SIA_FONT)")
	set.StringVar(&cfg.Font, "F", fontDefault, "shorthand for -font")
	outputDefault := env("SIA_OUT_FILE", d.Output)
	set.StringVar(&cfg.Output, "output", outputDefault, "output image `path`; the extension picks the format (env SIA_OUT_FILE)")
	set.StringVar(&cfg.Output, "O", outputDefault, "shorthand for -output")
	set.Var(&cfg.Dimensions, "size", "image size `WxH`; fitted to the text when empty (env SIA_DIMENSIONS)")
	set.StringVar(&fontSize, "font-size", env("SIA_FONT_SIZE", d.FontSize.String()), "font size in px, or a percentage of the width (env SIA_FONT_SIZE)")
	set.StringVar(&bgColor, "bg-color", getenv("SIA_BG_COLOR"), "background `color` #RRGGBB[AA]; theme background when empty (env SIA_BG_COLOR)")
	set.StringVar(&fgColor, "fg-color", getenv("SIA_FG_COLOR"), "text `color` #RRGGBB[AA]; theme text color when empty (env SIA_FG_COLOR)")
	set.StringVar(&bgAlpha, "bg-alpha", env("SIA_BG_ALPHA", d.BgAlpha.String()), "background opacity 0..1 (env SIA_BG_ALPHA)")
	set.StringVar(&fgAlpha, "fg-alpha", env("SIA_FG_ALPHA", d.FgAlpha.String()), "text opacity 0..1 (env SIA_FG_ALPHA)")
	set.StringVar(&cfg.Theme, "theme", env("SIA_THEME", d.Theme), "highlighting theme (env SIA_THEME)")
	set.StringVar(&cfg.Language, "lang", getenv("SIA_LANGUAGE"), "input language; detected when empty (env SIA_LANGUAGE)")
	set.Var(&inputs, "input", "`text` or file to render; repeatable")
	set.Var(&inputs, "I", "shorthand for -input")
	set.StringVar(&cfg.LayoutOut, "layout-out", "", "also write the document layout as JSONL to `path`")
	set.IntVar(&cfg.TabWidth, "tab-width", d.TabWidth, "columns per tab stop")
	set.IntVar(&cfg.Workers, "workers", d.Workers, "inputs rendered in parallel")
	set.BoolVar(&cfg.ListThemes, "list-themes", false, "list available themes and exit")
	set.StringVar(&logLevel, "log-level", env("SIA_LOG", "warn"), "debug, info, warn or error (env SIA_LOG)")

	if err := set.Parse(args); err != nil {
		return nil, err
	}

	cfg.Inputs = append([]string(inputs), set.Args()...)
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{""}
	}

	var err error
	if cfg.FontSize, err = sia.ParseFontSize(fontSize); err != nil {
		return nil, err
	}
	if cfg.Background, err = parseOptionalColor(bgColor); err != nil {
		return nil, err
	}
	if cfg.Foreground, err = parseOptionalColor(fgColor); err != nil {
		return nil, err
	}
	if cfg.BgAlpha, err = sia.ParseAlpha(bgAlpha); err != nil {
		return nil, err
	}
	if cfg.FgAlpha, err = sia.ParseAlpha(fgAlpha); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, sia.ConfigError("parse log level", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &cfg, nil
}

func parseOptionalColor(s string) (*sia.Color, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	c, err := sia.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
