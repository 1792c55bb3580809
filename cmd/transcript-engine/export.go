// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-engine/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write a YAML, JSON, or XLSX report of a transcript",
	Long: `Export extracts the transcript at path, or the discovered document, and
writes transcript-report.<format> to --out. The report lists every
deduplicated course and the credit-weighted summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		loaded, err := loadSession(cmd.Context(), cfg, firstArg(args), os.Stderr)
		if err != nil {
			return err
		}
		path, err := report.Write(report.Build(loaded.sess, loaded.source), cfg.Report)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote: %s (%d courses)\n", path, loaded.sess.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
