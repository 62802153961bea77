// Package organizer sorts screened resume files into risk-level folders on
// disk and writes a summary of the layout.
package organizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgentry11/candidate-verification-app/internal/analysis"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/internal/observability"
	"github.com/mgentry11/candidate-verification-app/internal/scoring"
	"github.com/mgentry11/candidate-verification-app/pkg/textx"
)

// Folder names per risk level. The numeric prefix keeps directory listings
// sorted worst-first.
var folderNames = map[domain.RiskLevel]string{
	domain.RiskCritical: "1_CRITICAL_RISK",
	domain.RiskHigh:     "2_HIGH_RISK",
	domain.RiskMedium:   "3_MEDIUM_RISK",
	domain.RiskLow:      "4_LOW_RISK",
	domain.RiskMinimal:  "5_SAFE_TO_PROCEED",
}

const summaryFilename = "ORGANIZATION_SUMMARY.txt"

// File is one resume document to organize.
type File struct {
	Filename string
	Data     []byte
}

// Placement records where one file ended up.
type Placement struct {
	Filename    string           `json:"filename"`
	RiskLevel   domain.RiskLevel `json:"risk_level"`
	Destination string           `json:"destination"`
	Error       string           `json:"error,omitempty"`
}

// Result is the outcome of one organize run.
type Result struct {
	OrganizedCount int                         `json:"organized_count"`
	OutputDir      string                      `json:"output_directory"`
	Folders        map[domain.RiskLevel]string `json:"folders"`
	Placements     []Placement                 `json:"results"`
	Summary        domain.BatchSummary         `json:"summary"`
}

// Organizer screens files and writes them into per-risk-level directories.
type Organizer struct {
	analyzer  *analysis.Analyzer
	extractor domain.TextExtractor
}

// New constructs an Organizer.
func New(an *analysis.Analyzer, ex domain.TextExtractor) *Organizer {
	return &Organizer{analyzer: an, extractor: ex}
}

// Run scores every file and copies it into the folder matching its risk
// level, then writes ORGANIZATION_SUMMARY.txt at the output root. Files with
// unsupported extensions are skipped; per-file failures are recorded and do
// not abort the run.
func (o *Organizer) Run(ctx context.Context, outputDir, jobDescription string, files []File) (Result, error) {
	if outputDir == "" {
		return Result{}, fmt.Errorf("%w: no output directory specified", domain.ErrInvalidArgument)
	}
	if len(files) == 0 {
		return Result{}, fmt.Errorf("%w: no files provided", domain.ErrInvalidArgument)
	}

	res := Result{
		OutputDir:  outputDir,
		Folders:    make(map[domain.RiskLevel]string, len(folderNames)),
		Placements: []Placement{},
	}
	for level, name := range folderNames {
		dir := filepath.Join(outputDir, name)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return Result{}, fmt.Errorf("%w: create %s: %v", domain.ErrInternal, dir, err)
		}
		res.Folders[level] = dir
	}

	lg := observability.LoggerFromContext(ctx)
	for _, f := range files {
		if !supportedExt(f.Filename) {
			continue
		}
		placement := o.organizeOne(ctx, res.Folders, f, jobDescription)
		if placement.Error == "" {
			res.OrganizedCount++
			bumpSummary(&res.Summary, placement.RiskLevel)
		} else {
			lg.Warn("organize failed", "filename", f.Filename, "error", placement.Error)
		}
		res.Placements = append(res.Placements, placement)
	}

	if err := o.writeSummary(res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (o *Organizer) organizeOne(ctx context.Context, folders map[domain.RiskLevel]string, f File, jobDescription string) Placement {
	placement := Placement{Filename: f.Filename}

	text := ""
	if o.extractor != nil {
		extracted, err := o.extractor.Extract(ctx, f.Filename, f.Data)
		if err != nil {
			placement.Error = err.Error()
			return placement
		}
		text = extracted
	} else {
		text = textx.SanitizeText(string(f.Data))
	}

	bundle := o.analyzer.Analyze(text, jobDescription)
	level := scoring.LevelFor(scoring.ScoreResume(bundle))
	placement.RiskLevel = level
	placement.Destination = folders[level]

	// filepath.Base strips any path components smuggled into the upload name.
	dest := filepath.Join(folders[level], filepath.Base(f.Filename))
	if err := os.WriteFile(dest, f.Data, 0o600); err != nil {
		placement.Error = err.Error()
		return placement
	}
	return placement
}

func (o *Organizer) writeSummary(res Result) error {
	var b strings.Builder
	b.WriteString("File Organization Summary\n")
	b.WriteString("========================\n\n")
	fmt.Fprintf(&b, "Total Files Organized: %d\n\n", res.OrganizedCount)
	fmt.Fprintf(&b, "Critical Risk: %d files -> %s\n", res.Summary.CriticalRisk, res.Folders[domain.RiskCritical])
	fmt.Fprintf(&b, "High Risk: %d files -> %s\n", res.Summary.HighRisk, res.Folders[domain.RiskHigh])
	fmt.Fprintf(&b, "Medium Risk: %d files -> %s\n", res.Summary.MediumRisk, res.Folders[domain.RiskMedium])
	fmt.Fprintf(&b, "Low Risk: %d files -> %s\n", res.Summary.LowRisk, res.Folders[domain.RiskLow])
	fmt.Fprintf(&b, "Safe to Proceed: %d files -> %s\n", res.Summary.MinimalRisk, res.Folders[domain.RiskMinimal])

	path := filepath.Join(res.OutputDir, summaryFilename)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("%w: write summary: %v", domain.ErrInternal, err)
	}
	return nil
}

func bumpSummary(s *domain.BatchSummary, level domain.RiskLevel) {
	switch level {
	case domain.RiskCritical:
		s.CriticalRisk++
	case domain.RiskHigh:
		s.HighRisk++
	case domain.RiskMedium:
		s.MediumRisk++
	case domain.RiskLow:
		s.LowRisk++
	case domain.RiskMinimal:
		s.MinimalRisk++
	}
}

func supportedExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".txt":
		return true
	default:
		return false
	}
}
