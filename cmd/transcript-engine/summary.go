// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-engine/internal/shell"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [path]",
	Short: "Print the course table and weighted average of a transcript",
	Long: `Summary extracts the transcript at path, or the document discovered in
--dir when path is omitted, and prints its deduplicated course table followed
by total credits, weighted grade sum, and average grade.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadSession(cmd.Context(), loadConfig(), firstArg(args), os.Stderr)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		shell.WriteTable(out, loaded.sess.Records())
		shell.WriteSummary(out, loaded.sess.Summary())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
