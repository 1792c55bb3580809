// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/transcript-engine/internal/grades"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

var (
	// ErrNotFound reports an edit aimed at a label that is not in the
	// working collection.
	ErrNotFound = errors.New("course not found")

	// ErrInvalidInput reports a grade, credit value, or label that cannot
	// be used for an edit.
	ErrInvalidInput = errors.New("invalid input")
)

// The operations below never modify their input slice. On success they
// return a new slice; on failure they return the input unchanged.

// UpdateGrade replaces the grade of the first record labelled label. The
// grade is not validated here; callers that accept user input check it
// with ValidateGrade first.
func UpdateGrade(records []types.Record, label, grade string) ([]types.Record, error) {
	i := indexOf(records, label)
	if i < 0 {
		return records, fmt.Errorf("updating %s: %w", label, ErrNotFound)
	}
	out := clone(records)
	out[i] = out[i].WithGrade(grade)
	return out, nil
}

// Add appends a user-supplied estimate. Location, level, and title are set
// to types.TemporaryEstimate. A label already in the collection is accepted
// and coexists with the original record.
func Add(records []types.Record, label, grade, credits string) ([]types.Record, error) {
	r, err := NewEstimate(label, grade, credits)
	if err != nil {
		return records, err
	}
	out := make([]types.Record, len(records), len(records)+1)
	copy(out, records)
	return append(out, r), nil
}

// NewEstimate validates and builds the record that Add appends.
func NewEstimate(label, grade, credits string) (types.Record, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return types.Record{}, fmt.Errorf("empty course label: %w", ErrInvalidInput)
	}
	grade = strings.TrimSpace(grade)
	if err := ValidateGrade(grade); err != nil {
		return types.Record{}, err
	}
	ch, err := parseCredits(credits)
	if err != nil {
		return types.Record{}, err
	}
	return types.Record{
		Label:       label,
		Location:    types.TemporaryEstimate,
		Level:       types.TemporaryEstimate,
		Title:       types.TemporaryEstimate,
		Grade:       grade,
		CreditHours: ch,
	}, nil
}

// Delete removes the first record labelled label. It reports whether a
// record was removed; an absent label leaves the collection as it was.
func Delete(records []types.Record, label string) ([]types.Record, bool) {
	i := indexOf(records, label)
	if i < 0 {
		return records, false
	}
	out := make([]types.Record, 0, len(records)-1)
	out = append(out, records[:i]...)
	return append(out, records[i+1:]...), true
}

// Restore returns fresh copies of every snapshot record in snapshot order.
// All adds, deletes, and grade edits made since the snapshot are discarded.
func Restore(snap Snapshot) []types.Record {
	return snap.Records()
}

// Preview computes the summary the collection would have if label's grade
// were grade. Nothing is modified.
func Preview(records []types.Record, label, grade string) (types.Summary, error) {
	if err := ValidateGrade(grade); err != nil {
		return types.Summary{}, err
	}
	updated, err := UpdateGrade(records, label, strings.TrimSpace(grade))
	if err != nil {
		return types.Summary{}, err
	}
	return grades.Aggregate(updated), nil
}

// ValidateGrade accepts any finite number, including values outside 0-100.
// "TR" and "W" are rejected: they are never offered as edits.
func ValidateGrade(grade string) error {
	if _, ok := grades.ParseGrade(grade); !ok {
		return fmt.Errorf("grade %q is not numeric: %w", grade, ErrInvalidInput)
	}
	return nil
}

func parseCredits(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("credit hours %q is not numeric: %w", s, ErrInvalidInput)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("credit hours %q out of range: %w", s, ErrInvalidInput)
	}
	return v, nil
}

func indexOf(records []types.Record, label string) int {
	for i, r := range records {
		if r.Label == label {
			return i
		}
	}
	return -1
}

func clone(records []types.Record) []types.Record {
	out := make([]types.Record, len(records))
	copy(out, records)
	return out
}
