// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a session's records and summary to YAML, JSON, or
// XLSX. Reports are output only; nothing reads them back.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcript-engine/internal/session"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

const baseName = "transcript-report"

// Report is the serialized form of a session.
type Report struct {
	SessionID   string         `json:"session_id" yaml:"session_id"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Source      string         `json:"source,omitempty" yaml:"source,omitempty"`
	Records     []types.Record `json:"records" yaml:"records"`
	Summary     types.Summary  `json:"summary" yaml:"summary"`
}

// Build captures the current working collection of sess.
func Build(sess *session.Session, source string) Report {
	return Report{
		SessionID:   sess.ID(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Records:     sess.Records(),
		Summary:     sess.Summary(),
	}
}

// Write stores r in cfg.OutputDir as transcript-report.<format> and returns
// the path written.
func Write(r Report, cfg types.ReportConfig) (string, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	format := cfg.Format
	if format == "" {
		format = types.ReportYAML
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	path := filepath.Join(dir, baseName+"."+string(format))

	var err error
	switch format {
	case types.ReportYAML:
		err = writeYAML(path, r)
	case types.ReportJSON:
		err = writeJSON(path, r)
	case types.ReportXLSX:
		err = writeXLSX(path, r)
	default:
		return "", fmt.Errorf("unsupported report format %q: use yaml, json, or xlsx", format)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

func writeYAML(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeJSON(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
