package sia

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by the rendering pipeline.
type ErrorKind int

// Error kinds.
const (
	KindParse  ErrorKind = iota + 1 // Malformed color, alpha, dimensions or size text
	KindConfig                      // Missing or invalid font data, bad settings
	KindRender                      // Document assembly or rendering failure
)

// String returns the human-readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per kind. Every *Error matches the sentinel of its
// kind with errors.Is.
var (
	ErrParse  = errors.New("parse error")
	ErrConfig = errors.New("config error")
	ErrRender = errors.New("render error")
)

// Error describes a pipeline failure.
type Error struct {
	Kind ErrorKind // What went wrong
	Op   string    // Operation that failed, e.g. "parse color"
	Err  error     // Underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrParse:
		return e.Kind == KindParse
	case ErrConfig:
		return e.Kind == KindConfig
	case ErrRender:
		return e.Kind == KindRender
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func parseError(op, format string, args ...any) error {
	return &Error{Kind: KindParse, Op: op, Err: fmt.Errorf(format, args...)}
}

func configError(op, format string, args ...any) error {
	return &Error{Kind: KindConfig, Op: op, Err: fmt.Errorf(format, args...)}
}

func renderError(op string, err error) error {
	return &Error{Kind: KindRender, Op: op, Err: err}
}

// ConfigError wraps err as a config error raised by op. Adapters use it
// to report invalid settings such as unknown themes or missing fonts.
func ConfigError(op string, err error) error {
	return &Error{Kind: KindConfig, Op: op, Err: err}
}

// RenderError wraps err as a render error raised by op.
func RenderError(op string, err error) error {
	return renderError(op, err)
}
