package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rulesetPath string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Screen resumes for fraud indicators",
	Long: `screener runs the candidate verification heuristics over resume files:
AI-content detection, timeline consistency, trap terms, buzzword density,
specificity, and red-flag aggregation, producing a 0-100 risk score per file.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&rulesetPath, "ruleset", "", "YAML file overriding the built-in rule tables")

	// CLI output goes to stderr as text, keeping stdout for report content.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
