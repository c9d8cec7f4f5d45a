package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/sia"
	"github.com/fwojciec/sia/canvas"
	"github.com/fwojciec/sia/chroma"
	"github.com/fwojciec/sia/fs"
	"github.com/fwojciec/sia/jsonl"
	"github.com/fwojciec/sia/lipgloss"
)

// ErrNoJobs is returned when there is nothing to render.
var ErrNoJobs = errors.New("nothing to render")

// Job is one input rendered to one output file.
type Job struct {
	Input  fs.Input
	Output string
	Layout string // Optional JSONL layout path
}

// Settings are the rendering options shared by every job.
type Settings struct {
	Theme      string
	Language   string // Empty to detect per input
	Font       string // Identifies the font in logs
	FontData   []byte
	FontSize   sia.FontSize
	Dimensions sia.Dimensions // Zero to fit the text
	Foreground *sia.Color     // Nil for the theme's text color
	Background *sia.Color     // Nil for the theme's background
	FgAlpha    sia.Alpha
	BgAlpha    sia.Alpha
	TabWidth   int
}

// App encapsulates the application logic for testing.
type App struct {
	Highlighter sia.Highlighter
	Themes      sia.ThemeSource
	Detector    sia.LanguageDetector
	Renderer    sia.Renderer
	Layout      sia.LayoutWriter
	Logger      *slog.Logger

	Settings Settings
	Jobs     []Job
	// Workers sets the number of jobs rendered at once. If <= 1, jobs run
	// one after another.
	Workers int
}

// Run renders every job. The first failure cancels jobs not yet started
// and is returned.
func (a *App) Run(ctx context.Context) error {
	if len(a.Jobs) == 0 {
		return ErrNoJobs
	}

	colors, err := a.colors()
	if err != nil {
		return err
	}

	size, err := a.Settings.FontSize.Pixels(a.Settings.Dimensions)
	if err != nil {
		return err
	}
	font, err := sia.NewFontConfig(a.Settings.FontData, a.Settings.Font, size)
	if err != nil {
		return err
	}
	a.logger().Info("loaded font", "font", font.Name(), "family", font.Family(), "size", size)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.Workers, 1))

	for _, job := range a.Jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.render(job, colors, font)
		})
	}

	return g.Wait()
}

// colors resolves the default colors, filling unset ones from the theme.
func (a *App) colors() (sia.Colors, error) {
	s := a.Settings
	fg, bg := s.Foreground, s.Background
	if fg == nil || bg == nil {
		palette, err := a.Themes.Palette(s.Theme)
		if err != nil {
			return sia.Colors{}, err
		}
		if fg == nil {
			fg = &palette.Foreground
		}
		if bg == nil {
			bg = &palette.Background
		}
	}
	return sia.NewColors(*fg, *bg, s.FgAlpha, s.BgAlpha), nil
}

func (a *App) render(job Job, colors sia.Colors, font *sia.FontConfig) error {
	log := a.logger().With("output", job.Output)

	format, err := sia.FormatFromPath(job.Output)
	if err != nil {
		return err
	}

	language := a.Settings.Language
	if language == "" {
		language = a.Detector.Detect(job.Input.Path, job.Input.Contents)
	}
	log.Info("highlighting", "input", job.Input.Path, "language", language, "theme", a.Settings.Theme)

	text := lipgloss.ExpandTabs(job.Input.Contents, a.Settings.TabWidth)
	if missing := font.MissingRunes(text); len(missing) > 0 {
		log.Warn("font has no glyphs for some characters", "font", font.Name(), "missing", string(missing))
	}

	lines, err := a.Highlighter.Highlight(language, a.Settings.Theme, text)
	if err != nil {
		return err
	}

	dims := sia.ResolveDimensions(a.Settings.Dimensions, font, sia.LineTexts(lines))
	doc, err := sia.BuildDocument(dims, colors, font, lines)
	if err != nil {
		return err
	}
	log.Info("laid out document", "lines", len(lines), "size", dims.String(), "runs", len(doc.Runs))
	for _, run := range doc.Runs {
		log.Debug("run", "line", run.Line, "x", run.X, "y", run.Y, "text", run.Text, "fill", run.Fill.Hex())
	}

	if err := a.write(job.Output, doc, format); err != nil {
		return err
	}

	if job.Layout != "" && a.Layout != nil {
		if err := a.Layout.Write(job.Layout, doc); err != nil {
			return fmt.Errorf("write layout %s: %w", job.Layout, err)
		}
		log.Info("wrote layout", "layout", job.Layout)
	}

	log.Info("saved image", "format", format)
	return nil
}

// write renders doc into path, removing the file again if rendering fails.
func (a *App) write(path string, doc *sia.Document, format sia.Format) error {
	if err := fs.EnsureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.Renderer.Render(f, doc, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func main() {
	if err := run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Error("sia failed", "kind", sia.KindOf(err), "err", err)
		os.Exit(1)
	}
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	cfg, err := ParseConfig(args, getenv, stderr)
	if err != nil {
		return err
	}

	highlighter := chroma.NewHighlighter()
	if cfg.ListThemes {
		return lipgloss.NewThemeList(stdout, highlighter).Print()
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	name, data, err := fs.LoadFont(cfg.Font)
	if err != nil {
		return err
	}

	jobs := make([]Job, len(cfg.Inputs))
	for i, arg := range cfg.Inputs {
		input, err := fs.ReadInput(arg)
		if err != nil {
			return err
		}
		jobs[i] = Job{
			Input:  input,
			Output: fs.OutputPath(cfg.Output, i, len(cfg.Inputs)),
		}
		if cfg.LayoutOut != "" {
			jobs[i].Layout = fs.OutputPath(cfg.LayoutOut, i, len(cfg.Inputs))
		}
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Highlighter: highlighter,
		Themes:      highlighter,
		Detector:    chroma.NewDetector(),
		Renderer:    canvas.NewRenderer(),
		Layout:      jsonl.NewStore(),
		Logger:      logger,
		Settings: Settings{
			Theme:      cfg.Theme,
			Language:   cfg.Language,
			Font:       name,
			FontData:   data,
			FontSize:   cfg.FontSize,
			Dimensions: cfg.Dimensions,
			Foreground: cfg.Foreground,
			Background: cfg.Background,
			FgAlpha:    cfg.FgAlpha,
			BgAlpha:    cfg.BgAlpha,
			TabWidth:   cfg.TabWidth,
		},
		Jobs:    jobs,
		Workers: cfg.Workers,
	}
	return app.Run(ctx)
}
