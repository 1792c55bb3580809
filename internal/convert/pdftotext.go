// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdiddy/transcript-engine/internal/container"
)

const binPdftotext = "pdftotext"

// Pdftotext runs poppler's pdftotext. Layout mode keeps each transcript row
// on one line where the PDF allows it.
type Pdftotext struct {
	exec container.Executor
}

// NewPdftotext fails when pdftotext is not on PATH.
func NewPdftotext(e container.Executor) (*Pdftotext, error) {
	if _, err := e.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not found on PATH (install poppler-utils or use --backend markitdown): %w", binPdftotext, err)
	}
	return &Pdftotext{exec: e}, nil
}

func (p *Pdftotext) ExtractText(ctx context.Context, path string) (string, error) {
	var out bytes.Buffer
	args := []string{"-layout", "-enc", "UTF-8", path, "-"}
	if err := p.exec.RunPiped(ctx, binPdftotext, args, nil, &out); err != nil {
		return "", fmt.Errorf("running %s on %s: %w", binPdftotext, path, err)
	}
	return out.String(), nil
}
