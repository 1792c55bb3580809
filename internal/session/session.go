// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the working collection of a what-if session and the
// snapshot it can be restored to. Edits are plain functions over record
// slices; Session applies them to the collection it owns.
package session

import (
	"github.com/google/uuid"

	"github.com/pdiddy/transcript-engine/internal/grades"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

// Snapshot is the baseline captured when a session starts: an ordered map
// from label to record. It is never modified after construction.
type Snapshot struct {
	order   []string
	records map[string]types.Record
}

// NewSnapshot captures records keyed by label. A repeated label keeps the
// last record at the first label's position, so a deduplicated collection
// round-trips unchanged.
func NewSnapshot(records []types.Record) Snapshot {
	s := Snapshot{records: make(map[string]types.Record, len(records))}
	for _, r := range records {
		if _, ok := s.records[r.Label]; !ok {
			s.order = append(s.order, r.Label)
		}
		s.records[r.Label] = r
	}
	return s
}

// Len returns the number of records in the snapshot.
func (s Snapshot) Len() int { return len(s.order) }

// Get returns the snapshot record for label.
func (s Snapshot) Get(label string) (types.Record, bool) {
	r, ok := s.records[label]
	return r, ok
}

// Records returns a new slice holding the snapshot records in order.
func (s Snapshot) Records() []types.Record {
	out := make([]types.Record, 0, len(s.order))
	for _, label := range s.order {
		out = append(out, s.records[label])
	}
	return out
}

// Session owns one working collection and its snapshot. It is used from a
// single goroutine; the shell runs one edit to completion before reading the
// next command.
type Session struct {
	id       string
	snapshot Snapshot
	working  []types.Record
}

// New starts a session from the baseline collection, normally the
// deduplicated extraction result.
func New(baseline []types.Record) *Session {
	snap := NewSnapshot(baseline)
	return &Session{
		id:       uuid.New().String(),
		snapshot: snap,
		working:  snap.Records(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot returns the baseline the session restores to.
func (s *Session) Snapshot() Snapshot { return s.snapshot }

// Records returns a copy of the working collection.
func (s *Session) Records() []types.Record { return clone(s.working) }

// Len returns the number of records in the working collection.
func (s *Session) Len() int { return len(s.working) }

// Find returns the first working record labelled label.
func (s *Session) Find(label string) (types.Record, bool) {
	if i := indexOf(s.working, label); i >= 0 {
		return s.working[i], true
	}
	return types.Record{}, false
}

// Summary aggregates the current working collection.
func (s *Session) Summary() types.Summary { return grades.Aggregate(s.working) }

// UpdateGrade sets the grade of label. It returns ErrNotFound when the label
// is absent.
func (s *Session) UpdateGrade(label, grade string) error {
	out, err := UpdateGrade(s.working, label, grade)
	if err != nil {
		return err
	}
	s.working = out
	return nil
}

// Add appends an estimate record. It returns ErrInvalidInput when grade or
// credits are not numeric.
func (s *Session) Add(label, grade, credits string) error {
	out, err := Add(s.working, label, grade, credits)
	if err != nil {
		return err
	}
	s.working = out
	return nil
}

// Delete removes label and reports whether it was present.
func (s *Session) Delete(label string) bool {
	out, ok := Delete(s.working, label)
	s.working = out
	return ok
}

// Restore discards every edit and reloads the snapshot.
func (s *Session) Restore() { s.working = Restore(s.snapshot) }

// Preview returns the summary the session would have with label's grade
// set to grade, leaving the session unchanged.
func (s *Session) Preview(label, grade string) (types.Summary, error) {
	return Preview(s.working, label, grade)
}
