// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a transcript document into plain text using a
// pluggable backend: the file as-is, pdftotext, or the markitdown container.
// Page order is preserved; whitespace and line breaks are whatever the
// backend produces.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/transcript-engine/internal/container"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

// TextExtractor returns the concatenated text of the document at path.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// New returns the extractor for backend. The markitdown backend detects a
// container runtime and checks for its image; pdftotext checks that the
// binary is on PATH.
func New(ctx context.Context, backend types.TextBackend) (TextExtractor, error) {
	return newWith(ctx, backend, container.OSExecutor{}, container.DetectRuntime)
}

func newWith(ctx context.Context, backend types.TextBackend, e container.Executor,
	detect func(context.Context) (container.Runtime, error)) (TextExtractor, error) {
	switch backend {
	case types.BackendText:
		return PlainText{}, nil
	case types.BackendPdftotext, "":
		p, err := NewPdftotext(e)
		if err != nil {
			return nil, err
		}
		return p, nil
	case types.BackendMarkitdown:
		rt, err := detect(ctx)
		if err != nil {
			return nil, err
		}
		m, err := NewMarkitdown(ctx, rt)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported text backend %q: use text, pdftotext, or markitdown", backend)
	}
}

// ReadTranscript extracts the text of path and writes a one-line status to
// w. A document without text is not an error; the caller ends up with an
// empty collection.
func ReadTranscript(ctx context.Context, te TextExtractor, path string, w io.Writer) (string, error) {
	name := filepath.Base(path)

	text, err := te.ExtractText(ctx, path)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return "", fmt.Errorf("reading transcript %s: %w", path, err)
	}

	if strings.TrimSpace(text) == "" {
		fmt.Fprintf(w, "warning: %s produced no text\n", name)
		return "", nil
	}

	fmt.Fprintf(w, "read: %s (%d characters)\n", name, len(text))
	return text, nil
}

// PlainText reads the document as UTF-8 text. It serves transcripts that
// were exported to .txt beforehand.
type PlainText struct{}

func (PlainText) ExtractText(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	return string(data), nil
}
