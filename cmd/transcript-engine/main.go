// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transcript-engine CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/transcript-engine/internal/discover"
	"github.com/pdiddy/transcript-engine/internal/shell"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd finds a transcript in the working directory and opens a what-if
// session on it.
var rootCmd = &cobra.Command{
	Use:   "transcript-engine",
	Short: "Explore what-if grade scenarios for an academic transcript",
	Long: `transcript-engine reads a transcript document, extracts its course entries,
and opens an interactive session where grades can be edited, estimated courses
added or removed, and the credit-weighted average recomputed after each change.

Run without arguments in a directory holding the transcript PDF. The summary
and export subcommands work on the same document without a session.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	loaded, err := loadSession(cmd.Context(), cfg, "", os.Stderr)
	if err != nil {
		return err
	}

	sh := shell.New(loaded.sess, cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
		Source: loaded.source,
		Report: cfg.Report,
	})
	return sh.Run()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./transcript-engine.yaml or ~/.config/transcript-engine/config.yaml)")
	pf.String("dir", ".", "directory searched for the transcript document")
	pf.StringSlice("extensions", discover.DefaultExtensions, "accepted document extensions")
	pf.String("backend", "pdftotext", "text backend: text, pdftotext, or markitdown")
	pf.String("campus-label", "", "location recorded for on-campus courses")
	pf.String("out", ".", "directory reports are written to")
	pf.String("format", "yaml", "report format: yaml, json, or xlsx")

	for key, flag := range configFlags {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: reading .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcript-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transcript-engine"))
		}
	}

	viper.SetEnvPrefix("TRANSCRIPT_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, discover.ErrNoDocumentFound) {
			fmt.Fprintf(os.Stderr, "%v\nPlace the transcript PDF in the directory or pass --dir.\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
