// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

// configFlags maps viper keys to the persistent flags bound to them. Keys
// are also the config file paths; the environment variable is the key
// upper-cased with dots replaced, e.g. TRANSCRIPT_ENGINE_DOCUMENT_DIR.
var configFlags = map[string]string{
	"document.dir":            "dir",
	"document.extensions":     "extensions",
	"document.backend":        "backend",
	"transcript.campus_label": "campus-label",
	"report.output_dir":       "out",
	"report.format":           "format",
}

// loadConfig reads the merged flag, file, and environment settings.
func loadConfig() types.Config {
	return configFrom(viper.GetViper())
}

func configFrom(v *viper.Viper) types.Config {
	cfg := types.Config{
		Document: types.DocumentConfig{
			Dir:        v.GetString("document.dir"),
			Extensions: v.GetStringSlice("document.extensions"),
			Backend:    types.TextBackend(v.GetString("document.backend")),
		},
		Transcript: types.TranscriptConfig{
			CampusLabel: v.GetString("transcript.campus_label"),
		},
		Report: types.ReportConfig{
			OutputDir: v.GetString("report.output_dir"),
			Format:    types.ReportFormat(v.GetString("report.format")),
		},
	}
	if cfg.Document.Dir == "" {
		cfg.Document.Dir = "."
	}
	if cfg.Transcript.CampusLabel == "" {
		cfg.Transcript.CampusLabel = types.DefaultCampusLabel
	}
	return cfg
}
