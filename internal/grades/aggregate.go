// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package grades computes credit-weighted grade averages over course records.
package grades

import (
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

// ParseGrade reports the numeric value of grade. Withdrawals, transfer
// credit, and anything else that is not a finite number return false.
func ParseGrade(grade string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(grade), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Aggregate sums credits and grade-weighted credits over the records with a
// numeric grade. "W" and non-numeric grades such as "TR" contribute
// nothing. The average is 0 when no credits qualify.
func Aggregate(records []types.Record) types.Summary {
	var s types.Summary
	for _, r := range records {
		if r.Grade == types.GradeWithdrawal {
			continue
		}
		g, ok := ParseGrade(r.Grade)
		if !ok {
			continue
		}
		s.TotalCredits += r.CreditHours
		s.WeightedSum += g * r.CreditHours
	}
	if s.TotalCredits > 0 {
		s.Average = s.WeightedSum / s.TotalCredits
	}
	return s
}
