package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgentry11/candidate-verification-app/internal/adapter/organizer"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/report"
	localext "github.com/mgentry11/candidate-verification-app/internal/adapter/textextractor/local"
	"github.com/mgentry11/candidate-verification-app/internal/analysis"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/internal/usecase"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	scanJobDescription     string
	scanJobDescriptionFile string
	scanOutputDir          string
	scanFormat             string
	scanOrganizeDir        string
)

//nolint:gochecknoglobals // Cobra boilerplate
var scanCmd = &cobra.Command{
	Use:   "scan [resume-directory]",
	Short: "Screen every resume in a directory and write reports",
	Long: `Scans a directory for .pdf, .docx, and .txt resumes, scores each one,
and writes screening_report.html and screening_report.txt into the output
directory. With --organize, files are additionally copied into numbered
risk-level folders.

Examples:
  # Screen a directory of resumes
  screener scan ./resumes --out ./screening

  # Screen against a job description and organize by risk
  screener scan ./resumes --jd-file posting.txt --organize ./sorted`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanJobDescription, "jd", "", "Job description text to match resumes against")
	scanCmd.Flags().StringVar(&scanJobDescriptionFile, "jd-file", "", "File containing the job description")
	scanCmd.Flags().StringVar(&scanOutputDir, "out", ".", "Directory for generated reports")
	scanCmd.Flags().StringVar(&scanFormat, "format", "both", "Report format: html, text, or both")
	scanCmd.Flags().StringVar(&scanOrganizeDir, "organize", "", "Also copy files into risk-level folders under this directory")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rules, err := analysis.LoadRuleset(rulesetPath)
	if err != nil {
		return fmt.Errorf("load ruleset: %w", err)
	}
	analyzer := analysis.New(rules)
	extractor := localext.New()

	jd := scanJobDescription
	if scanJobDescriptionFile != "" {
		data, err := os.ReadFile(scanJobDescriptionFile)
		if err != nil {
			return fmt.Errorf("read job description file: %w", err)
		}
		jd = string(data)
	}

	files, err := collectResumes(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resume files (.pdf, .docx, .txt) found in %s", args[0])
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Screening %d file(s)...\n", len(files))
	}

	batch := usecase.NewBatchService(analyzer, extractor)
	result := batch.Run(ctx, files, jd)

	if err := writeReports(result); err != nil {
		return err
	}
	printScanSummary(result)

	if scanOrganizeDir != "" {
		orgFiles := make([]organizer.File, 0, len(files))
		for _, f := range files {
			orgFiles = append(orgFiles, organizer.File{Filename: f.Filename, Data: f.Data})
		}
		res, err := organizer.New(analyzer, extractor).Run(ctx, scanOrganizeDir, jd, orgFiles)
		if err != nil {
			return fmt.Errorf("organize files: %w", err)
		}
		fmt.Printf("Organized %d file(s) into %s\n", res.OrganizedCount, res.OutputDir)
	}
	return nil
}

// collectResumes reads every supported file in dir, non-recursively. Filenames
// keep only the base so batch output never leaks local paths.
func collectResumes(dir string) ([]usecase.BatchFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read resume directory: %w", err)
	}
	var files []usecase.BatchFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".docx", ".txt":
		default:
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", entry.Name(), err)
			continue
		}
		files = append(files, usecase.BatchFile{Filename: entry.Name(), Data: data})
	}
	return files, nil
}

func writeReports(result domain.BatchResult) error {
	if err := os.MkdirAll(scanOutputDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	gen := report.New()

	if scanFormat == "html" || scanFormat == "both" {
		html, err := gen.HTML(result)
		if err != nil {
			return fmt.Errorf("render html report: %w", err)
		}
		path := filepath.Join(scanOutputDir, "screening_report.html")
		if err := os.WriteFile(path, []byte(html), 0o600); err != nil {
			return fmt.Errorf("write html report: %w", err)
		}
		fmt.Printf("Report written to %s\n", path)
	}
	if scanFormat == "text" || scanFormat == "both" {
		path := filepath.Join(scanOutputDir, "screening_report.txt")
		if err := os.WriteFile(path, []byte(gen.Text(result)), 0o600); err != nil {
			return fmt.Errorf("write text report: %w", err)
		}
		fmt.Printf("Report written to %s\n", path)
	}
	return nil
}

func printScanSummary(result domain.BatchResult) {
	fmt.Printf("Screened %d file(s): %d processed, %d failed\n",
		result.TotalFiles, result.Processed, result.Failed)
	fmt.Printf("  Critical: %d  High: %d  Medium: %d  Low: %d  Minimal: %d\n",
		result.Summary.CriticalRisk, result.Summary.HighRisk,
		result.Summary.MediumRisk, result.Summary.LowRisk, result.Summary.MinimalRisk)
	if result.Summary.AIGeneratedCount > 0 {
		fmt.Printf("  Likely AI-generated: %d\n", result.Summary.AIGeneratedCount)
	}
	if result.Summary.TrapTermsCount > 0 {
		fmt.Printf("  Trap terms found: %d\n", result.Summary.TrapTermsCount)
	}
}
