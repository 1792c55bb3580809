// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/pdiddy/transcript-engine/pkg/types"
)

var tableHeader = []string{"Course", "Title", "Grade", "Credits"}

// WriteTable renders records as a table in collection order.
func WriteTable(w io.Writer, records []types.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, r := range records {
		table.Append([]string{
			r.Label,
			r.Title,
			r.Grade,
			fmt.Sprintf("%.3f", r.CreditHours),
		})
	}

	table.Render()
}

// FormatSummary returns the one-line form of s.
func FormatSummary(s types.Summary) string {
	return fmt.Sprintf("Total Credits: %.3f  Weighted Grade Sum: %.2f  Average Grade: %.2f",
		s.TotalCredits, s.WeightedSum, s.Average)
}

// WriteSummary writes FormatSummary(s) followed by a newline.
func WriteSummary(w io.Writer, s types.Summary) {
	fmt.Fprintln(w, FormatSummary(s))
}
