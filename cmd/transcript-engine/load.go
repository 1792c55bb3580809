// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"

	"github.com/pdiddy/transcript-engine/internal/convert"
	"github.com/pdiddy/transcript-engine/internal/discover"
	"github.com/pdiddy/transcript-engine/internal/session"
	"github.com/pdiddy/transcript-engine/internal/transcript"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

type loadedSession struct {
	sess   *session.Session
	source string
}

// loadSession runs the pipeline from document to session: discover the
// document when path is empty, extract its text, parse and deduplicate the
// entries, and capture the baseline. Progress goes to w.
func loadSession(ctx context.Context, cfg types.Config, path string, w io.Writer) (loadedSession, error) {
	return loadSessionWith(ctx, cfg, path, w, convert.New)
}

func loadSessionWith(ctx context.Context, cfg types.Config, path string, w io.Writer,
	newExtractor func(context.Context, types.TextBackend) (convert.TextExtractor, error)) (loadedSession, error) {
	if path == "" {
		found, err := discover.FindDocument(cfg.Document.Dir, cfg.Document.Extensions)
		if err != nil {
			return loadedSession{}, err
		}
		path = found
	}

	te, err := newExtractor(ctx, cfg.Document.Backend)
	if err != nil {
		return loadedSession{}, err
	}

	text, err := convert.ReadTranscript(ctx, te, path, w)
	if err != nil {
		return loadedSession{}, err
	}

	records := transcript.Deduplicate(transcript.ExtractWith(text, cfg.Transcript))
	return loadedSession{sess: session.New(records), source: path}, nil
}
