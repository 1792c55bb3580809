// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetCourses = "Courses"

var courseHeader = []string{"Course", "Location", "Level", "Title", "Grade", "Credits"}

// writeXLSX lays out one row per record under a header, then the summary
// block two rows below the last record.
func writeXLSX(path string, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetCourses); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := setRow(f, 1, toCells(courseHeader)); err != nil {
		return err
	}
	for i, rec := range r.Records {
		row := []any{rec.Label, rec.Location, rec.Level, rec.Title, rec.Grade, rec.CreditHours}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	next := len(r.Records) + 3
	summary := [][]any{
		{"Total Credits", r.Summary.TotalCredits},
		{"Weighted Grade Sum", r.Summary.WeightedSum},
		{"Average Grade", r.Summary.Average},
		{"Session", r.SessionID},
		{"Generated", r.GeneratedAt.Format(time.RFC3339)},
	}
	for i, row := range summary {
		if err := setRow(f, next+i, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheetCourses, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

func toCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
