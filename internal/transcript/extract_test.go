// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"strings"
	"testing"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

// sampleTranscript mimics the layout pdftotext produces for a transcript
// page: entries broken across lines, headers and footers in between.
const sampleTranscript = `University of Saskatchewan
Unofficial Transcript
Term: 2023 Fall
CMPT 214 001 USask - Main
Campus UG Programming Principles and
Practice 85 3.000
MATH 110 002 USask - Main Campus UG Calculus I 72 3.000
Term: 2024 Winter
ENG XXX Transfer Off-campus Site UG English Elective TR 6.000
CMPT 270 01 USask - Main Campus UG Developing Object-Oriented
Systems W 3.000
Page 1 of 2
CMPT 214 001 USask - Main Campus UG Programming Principles and Practice 91 3.000
`

func TestExtract_Sample(t *testing.T) {
	got := Extract(sampleTranscript)

	want := []types.Record{
		{Label: "CMPT214", Location: types.DefaultCampusLabel, Level: "UG", Title: "Programming Principles and Practice", Grade: "85", CreditHours: 3},
		{Label: "MATH110", Location: types.DefaultCampusLabel, Level: "UG", Title: "Calculus I", Grade: "72", CreditHours: 3},
		{Label: "ENGXXX", Location: types.LocationOffCampus, Level: "UG", Title: "English Elective", Grade: "TR", CreditHours: 6},
		{Label: "CMPT270", Location: types.DefaultCampusLabel, Level: "UG", Title: "Developing Object-Oriented Systems", Grade: "W", CreditHours: 3},
		{Label: "CMPT214", Location: types.DefaultCampusLabel, Level: "UG", Title: "Programming Principles and Practice", Grade: "91", CreditHours: 3},
	}

	if len(got) != len(want) {
		for i, r := range got {
			t.Logf("  record[%d]: %+v", i, r)
		}
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExtract_SingleEntry(t *testing.T) {
	text := "CMPT 214 USask - Main Campus UG Introduction to Software Development 85 3.000"
	got := Extract(text)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	r := got[0]
	if r.Label != "CMPT214" {
		t.Errorf("label = %q, want CMPT214", r.Label)
	}
	if r.Location != types.DefaultCampusLabel {
		t.Errorf("location = %q, want %q", r.Location, types.DefaultCampusLabel)
	}
	if r.Title != "Introduction to Software Development" {
		t.Errorf("title = %q", r.Title)
	}
	if r.Grade != "85" {
		t.Errorf("grade = %q, want 85", r.Grade)
	}
	if r.CreditHours != 3.0 {
		t.Errorf("credit hours = %v, want 3.0", r.CreditHours)
	}
}

func TestExtract_OffCampus(t *testing.T) {
	text := "CMPT 214 Off-campus Site UG Introduction to Software Development 85 3.000"
	got := Extract(text)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].Location != types.LocationOffCampus {
		t.Errorf("location = %q, want %q", got[0].Location, types.LocationOffCampus)
	}
}

func TestExtract_OffCampusScopedToEntry(t *testing.T) {
	text := "HIST 101 Off-campus Site UG World History 70 3.000\n" +
		"CMPT 214 Main Campus UG Software 85 3.000\n"
	got := Extract(text)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Location != types.LocationOffCampus {
		t.Errorf("first location = %q, want off-campus", got[0].Location)
	}
	if got[1].Location != types.DefaultCampusLabel {
		t.Errorf("second location = %q, want main campus", got[1].Location)
	}
}

func TestExtractWith_CampusLabel(t *testing.T) {
	text := "CMPT 214 Main Campus UG Software 85 3.000"
	got := ExtractWith(text, types.TranscriptConfig{CampusLabel: "North Campus"})
	if len(got) != 1 || got[0].Location != "North Campus" {
		t.Fatalf("got %+v, want one record at North Campus", got)
	}
}

func TestExtract_Tokens(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLabel []string
		wantGrade []string
		wantTitle []string
	}{
		{
			name: "empty text",
			text: "",
		},
		{
			name: "no entries",
			text: "Unofficial Transcript\nNo courses on record.\n",
		},
		{
			name: "missing credits is skipped",
			text: "CMPT 214 Main Campus UG Software 85",
		},
		{
			name: "credits need three decimals",
			text: "CMPT 214 Main Campus UG Software 85 3.00",
		},
		{
			name: "four digit grade is not a grade",
			text: "CMPT 214 Main Campus UG Software 1000 3.000",
		},
		{
			name: "missing level is skipped",
			text: "CMPT 214 Main Campus Software 85 3.000",
		},
		{
			name:      "graduate level",
			text:      "CMPT 898 Main Campus GR Research Methods 88 3.000",
			wantLabel: []string{"CMPT898"},
			wantGrade: []string{"88"},
			wantTitle: []string{"Research Methods"},
		},
		{
			name:      "letter course number",
			text:      "ENG XX Site UG Elective TR 3.000",
			wantLabel: []string{"ENGXX"},
			wantGrade: []string{"TR"},
			wantTitle: []string{"Elective"},
		},
		{
			name:      "four digit course number falls back to no match",
			text:      "CMPT 2140 Main Campus UG Software 85 3.000",
			wantLabel: nil,
		},
		{
			name:      "title digits do not end the title early",
			text:      "MATH 266 Main Campus UG Linear Algebra 2 (Honours) 90 3.000",
			wantLabel: []string{"MATH266"},
			wantGrade: []string{"90"},
			wantTitle: []string{"Linear Algebra 2 (Honours)"},
		},
		{
			name:      "one digit grade",
			text:      "PHYS 115 Main Campus UG Physics 5 3.000",
			wantLabel: []string{"PHYS115"},
			wantGrade: []string{"5"},
			wantTitle: []string{"Physics"},
		},
		{
			name:      "title whitespace collapsed across lines",
			text:      "BIOL 120\tMain Campus\nUG   The Nature\n\n of   Life  82\n3.000",
			wantLabel: []string{"BIOL120"},
			wantGrade: []string{"82"},
			wantTitle: []string{"The Nature of Life"},
		},
		{
			name:      "long uppercase run yields trailing subject",
			text:      "XCMPT 214 Main Campus UG Software 85 3.000",
			wantLabel: []string{"CMPT214"},
			wantGrade: []string{"85"},
			wantTitle: []string{"Software"},
		},
		{
			name:      "empty title",
			text:      "CMPT 214 Main Campus UG  85 3.000",
			wantLabel: []string{"CMPT214"},
			wantGrade: []string{"85"},
			wantTitle: []string{""},
		},
		{
			name:      "two entries on one line",
			text:      "CMPT 214 Main Campus UG A 80 3.000 CMPT 215 Main Campus UG B 70 3.000",
			wantLabel: []string{"CMPT214", "CMPT215"},
			wantGrade: []string{"80", "70"},
			wantTitle: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if got == nil {
				t.Fatal("Extract returned nil, want non-nil slice")
			}
			if len(got) != len(tt.wantLabel) {
				t.Fatalf("got %d records %+v, want labels %v", len(got), got, tt.wantLabel)
			}
			for i := range got {
				if got[i].Label != tt.wantLabel[i] {
					t.Errorf("record[%d].Label = %q, want %q", i, got[i].Label, tt.wantLabel[i])
				}
				if got[i].Grade != tt.wantGrade[i] {
					t.Errorf("record[%d].Grade = %q, want %q", i, got[i].Grade, tt.wantGrade[i])
				}
				if got[i].Title != tt.wantTitle[i] {
					t.Errorf("record[%d].Title = %q, want %q", i, got[i].Title, tt.wantTitle[i])
				}
			}
		})
	}
}

func TestExtract_LabelsMatchIdentifierShape(t *testing.T) {
	for _, r := range Extract(sampleTranscript) {
		if len(r.Label) < 3 {
			t.Errorf("label %q too short", r.Label)
		}
		if strings.TrimFunc(r.Label, func(c rune) bool {
			return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		}) != "" {
			t.Errorf("label %q has characters outside A-Z0-9", r.Label)
		}
	}
}
