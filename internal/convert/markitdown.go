// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/transcript-engine/internal/container"
)

const imageMarkitdown = "markitdown:latest"

// Markitdown pipes the document through the markitdown container image.
type Markitdown struct {
	runtime container.Runtime
}

// NewMarkitdown verifies that the markitdown image exists in rt.
func NewMarkitdown(ctx context.Context, rt container.Runtime) (*Markitdown, error) {
	if err := rt.ImageExists(ctx, imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &Markitdown{runtime: rt}, nil
}

func (m *Markitdown) ExtractText(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(ctx, imageMarkitdown, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with markitdown: %w", path, err)
	}
	return out.String(), nil
}
