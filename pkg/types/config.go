// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TextBackend identifies the tool that turns a document into plain text.
type TextBackend string

const (
	BackendText       TextBackend = "text"
	BackendPdftotext  TextBackend = "pdftotext"
	BackendMarkitdown TextBackend = "markitdown"
)

// DocumentConfig holds settings for locating and reading the transcript.
type DocumentConfig struct {
	// Dir is the directory scanned for a transcript document (default ".").
	Dir string `json:"dir" yaml:"dir"`

	// Extensions lists accepted file extensions, compared case-insensitively
	// (default [".pdf"]).
	Extensions []string `json:"extensions" yaml:"extensions"`

	// Backend selects the text extraction tool: text, pdftotext, or markitdown.
	Backend TextBackend `json:"backend" yaml:"backend"`
}

// TranscriptConfig holds settings for turning transcript text into records.
type TranscriptConfig struct {
	// CampusLabel is the location assigned to entries without the
	// off-campus marker (default DefaultCampusLabel).
	CampusLabel string `json:"campus_label" yaml:"campus_label"`
}

// ReportFormat selects the report output format.
type ReportFormat string

const (
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
	ReportXLSX ReportFormat = "xlsx"
)

// ReportConfig holds settings for session reports.
type ReportConfig struct {
	// OutputDir is the directory the report file is written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects yaml, json, or xlsx.
	Format ReportFormat `json:"format" yaml:"format"`
}

// Config groups all settings read from flags, the config file, and the
// environment.
type Config struct {
	Document   DocumentConfig   `json:"document" yaml:"document"`
	Transcript TranscriptConfig `json:"transcript" yaml:"transcript"`
	Report     ReportConfig     `json:"report" yaml:"report"`
}
