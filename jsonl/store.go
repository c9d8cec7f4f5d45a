// Package jsonl persists document layouts as JSON Lines.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sia"
)

// Compile-time interface verification.
var _ sia.LayoutWriter = (*Store)(nil)

// Record kinds, in the order they appear in a file.
const (
	KindDocument   = "document"
	KindBackground = "background"
	KindRun        = "run"
)

type documentRecord struct {
	Kind   string       `json:"kind"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Font   sia.FontFace `json:"font"`
}

type backgroundRecord struct {
	Kind string `json:"kind"`
	sia.Rect
}

type runRecord struct {
	Kind string `json:"kind"`
	sia.TextRun
}

// Store writes and reads document layouts. Font bytes are not persisted.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write saves doc to a JSONL file, creating parent directories if needed:
// one document record, one background record, then one record per run.
func (s *Store) Write(path string, doc *sia.Document) error {
	if doc == nil {
		return fmt.Errorf("write layout %s: document is nil", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, doc); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes doc as JSONL records to w.
func Encode(w io.Writer, doc *sia.Document) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(documentRecord{
		Kind:   KindDocument,
		Width:  doc.Width,
		Height: doc.Height,
		Font:   doc.Font,
	}); err != nil {
		return err
	}
	if err := enc.Encode(backgroundRecord{Kind: KindBackground, Rect: doc.Background}); err != nil {
		return err
	}
	for _, run := range doc.Runs {
		if err := enc.Encode(runRecord{Kind: KindRun, TextRun: run}); err != nil {
			return err
		}
	}
	return nil
}

// Read loads a layout written by Write. The returned document has no font
// data.
func (s *Store) Read(path string) (*sia.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		doc     *sia.Document
		lineNum int
	)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var head struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal([]byte(line), &head); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if doc == nil && head.Kind != KindDocument {
			return nil, fmt.Errorf("line %d: expected %s record, got %q", lineNum, KindDocument, head.Kind)
		}

		switch head.Kind {
		case KindDocument:
			if doc != nil {
				return nil, fmt.Errorf("line %d: duplicate %s record", lineNum, KindDocument)
			}
			var rec documentRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			doc = &sia.Document{Width: rec.Width, Height: rec.Height, Font: rec.Font}
		case KindBackground:
			var rec backgroundRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			doc.Background = rec.Rect
		case KindRun:
			var rec runRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			doc.Runs = append(doc.Runs, rec.TextRun)
		default:
			return nil, fmt.Errorf("line %d: unknown record kind %q", lineNum, head.Kind)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%s: no %s record", path, KindDocument)
	}
	return doc, nil
}
