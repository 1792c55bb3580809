// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/transcript-engine/internal/convert"
	"github.com/pdiddy/transcript-engine/internal/discover"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

const transcriptText = `Unofficial academic record
CMPT 214 Main Campus UG Programming in C 80 3.000
MATH 110 Main Campus
UG Calculus I 90 3.000
ENG XXX Off-campus Site UG Transfer English TR 6.000
CMPT 214 Main Campus UG Programming in C 88 3.000
`

func textConfig(dir string) types.Config {
	return types.Config{
		Document:   types.DocumentConfig{Dir: dir, Extensions: []string{".txt"}, Backend: types.BackendText},
		Transcript: types.TranscriptConfig{CampusLabel: types.DefaultCampusLabel},
	}
}

func TestLoadSession_Discovered(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transcript.txt"), []byte(transcriptText), 0o644))

	var log bytes.Buffer
	loaded, err := loadSession(context.Background(), textConfig(dir), "", &log)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "transcript.txt"), loaded.source)
	assert.Contains(t, log.String(), "read: transcript.txt")

	records := loaded.sess.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "CMPT214", records[0].Label)
	assert.Equal(t, "88", records[0].Grade)
	assert.Equal(t, types.LocationOffCampus, records[2].Location)
	assert.InDelta(t, 89.0, loaded.sess.Summary().Average, 1e-9)
}

func TestLoadSession_NoDocument(t *testing.T) {
	_, err := loadSession(context.Background(), textConfig(t.TempDir()), "", &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, discover.ErrNoDocumentFound))
}

func TestLoadSession_EmptyText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	var log bytes.Buffer
	loaded, err := loadSession(context.Background(), textConfig("."), path, &log)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.sess.Len())
	assert.Equal(t, types.Summary{}, loaded.sess.Summary())
	assert.Contains(t, log.String(), "produced no text")
}

func TestLoadSession_BackendError(t *testing.T) {
	failing := func(context.Context, types.TextBackend) (convert.TextExtractor, error) {
		return nil, errors.New("pdftotext not found on PATH")
	}
	path := filepath.Join(t.TempDir(), "t.pdf")
	_, err := loadSessionWith(context.Background(), textConfig("."), path, &bytes.Buffer{}, failing)
	assert.ErrorContains(t, err, "pdftotext not found")
}

func TestConfigFrom(t *testing.T) {
	v := viper.New()
	cfg := configFrom(v)
	assert.Equal(t, ".", cfg.Document.Dir)
	assert.Equal(t, types.DefaultCampusLabel, cfg.Transcript.CampusLabel)

	v.Set("document.dir", "/transcripts")
	v.Set("document.extensions", []string{".txt", ".pdf"})
	v.Set("document.backend", "markitdown")
	v.Set("transcript.campus_label", "Regina Campus")
	v.Set("report.output_dir", "reports")
	v.Set("report.format", "xlsx")

	cfg = configFrom(v)
	assert.Equal(t, types.Config{
		Document: types.DocumentConfig{
			Dir:        "/transcripts",
			Extensions: []string{".txt", ".pdf"},
			Backend:    types.BackendMarkitdown,
		},
		Transcript: types.TranscriptConfig{CampusLabel: "Regina Campus"},
		Report:     types.ReportConfig{OutputDir: "reports", Format: types.ReportXLSX},
	}, cfg)
}

func TestConfigFlagsBound(t *testing.T) {
	for key, flag := range configFlags {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "flag for %s", key)
	}
}
