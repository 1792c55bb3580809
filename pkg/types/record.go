// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Location and level values assigned by the extractor and by Add.
const (
	// LocationOffCampus is the location of entries whose span carries the
	// off-campus marker.
	LocationOffCampus = "Off-campus Site"

	// DefaultCampusLabel is the location of every other extracted entry
	// unless configured otherwise.
	DefaultCampusLabel = "USask - Main Campus"

	// OffCampusMarker is the literal that flags an entry as off-campus.
	OffCampusMarker = "Off-campus"

	// TemporaryEstimate fills location, level and title of user-added records.
	TemporaryEstimate = "Temporary Estimate"
)

// Grade tokens with special meaning in a transcript.
const (
	// GradeTransfer marks transfer credit. It carries no numeric weight.
	GradeTransfer = "TR"

	// GradeWithdrawal marks a withdrawn course. It is excluded from totals.
	GradeWithdrawal = "W"
)

// Course levels found in the source transcript.
const (
	LevelUndergraduate = "UG"
	LevelGraduate      = "GR"
)

// Record is one course entry parsed from a transcript or added by the user.
// Records are values; edits produce copies with a replaced field.
type Record struct {
	// Label is the subject code followed by the course number (e.g. "CMPT214").
	Label string `json:"label" yaml:"label"`

	// Location is LocationOffCampus, the configured campus label, or
	// TemporaryEstimate.
	Location string `json:"location" yaml:"location"`

	// Level is "UG", "GR", or TemporaryEstimate.
	Level string `json:"level" yaml:"level"`

	// Title is the course title with whitespace runs collapsed.
	Title string `json:"title" yaml:"title"`

	// Grade is a numeric string, GradeTransfer, or GradeWithdrawal.
	Grade string `json:"grade" yaml:"grade"`

	// CreditHours is the credit weight of the course.
	CreditHours float64 `json:"credit_hours" yaml:"credit_hours"`
}

// WithGrade returns a copy of r with the grade replaced.
func (r Record) WithGrade(grade string) Record {
	r.Grade = grade
	return r
}

// Summary is the credit-weighted aggregate of a record collection.
type Summary struct {
	// TotalCredits sums the credit hours of numerically graded records.
	TotalCredits float64 `json:"total_credits" yaml:"total_credits"`

	// WeightedSum sums grade times credit hours over the same records.
	WeightedSum float64 `json:"weighted_sum" yaml:"weighted_sum"`

	// Average is WeightedSum / TotalCredits, or 0 when there are no credits.
	Average float64 `json:"average" yaml:"average"`
}
