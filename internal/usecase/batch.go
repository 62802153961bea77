package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/internal/observability"
	"github.com/mgentry11/candidate-verification-app/internal/scoring"
	"github.com/mgentry11/candidate-verification-app/pkg/textx"
)

// BatchFile is one submission in a batch run. Data is the raw document when a
// file was uploaded; Text short-circuits extraction for pre-extracted input.
type BatchFile struct {
	Filename      string
	CandidateName string
	Text          string
	Data          []byte
}

// BatchService screens many resumes in one run. Entries are isolated: one
// failing file never aborts the batch, it becomes an error row.
type BatchService struct {
	Analyzer  resumeAnalyzer
	Extractor domain.TextExtractor
	newID     func() string
}

type resumeAnalyzer interface {
	Analyze(text, jobDescription string) domain.HeuristicBundle
}

// NewBatchService constructs a BatchService.
func NewBatchService(an resumeAnalyzer, ex domain.TextExtractor) BatchService {
	return BatchService{Analyzer: an, Extractor: ex, newID: uuid.NewString}
}

// Run screens every file sequentially and returns entries sorted by risk score
// descending. Ties keep submission order so reruns produce identical output.
func (s BatchService) Run(ctx context.Context, files []BatchFile, jobDescription string) domain.BatchResult {
	lg := observability.LoggerFromContext(ctx)
	result := domain.BatchResult{
		TotalFiles: len(files),
		Entries:    make([]domain.BatchEntry, 0, len(files)),
	}

	for _, f := range files {
		entry := s.screenOne(ctx, f, jobDescription)
		if entry.Error != "" {
			result.Failed++
			lg.Warn("batch entry failed", "filename", f.Filename, "error", entry.Error)
		} else {
			result.Processed++
		}
		result.Entries = append(result.Entries, entry)
	}

	sort.SliceStable(result.Entries, func(i, j int) bool {
		return result.Entries[i].Assessment.Score > result.Entries[j].Assessment.Score
	})
	result.Summary = summarize(result.Entries)

	lg.Info("batch run complete",
		"total", result.TotalFiles,
		"processed", result.Processed,
		"failed", result.Failed)
	return result
}

func (s BatchService) screenOne(ctx context.Context, f BatchFile, jobDescription string) domain.BatchEntry {
	entry := domain.BatchEntry{
		ID:            s.newID(),
		Filename:      f.Filename,
		CandidateName: f.CandidateName,
	}

	text := f.Text
	if text == "" && len(f.Data) > 0 {
		if s.Extractor == nil {
			return errorEntry(entry, "no text extractor configured")
		}
		extracted, err := s.Extractor.Extract(ctx, f.Filename, f.Data)
		if err != nil {
			return errorEntry(entry, err.Error())
		}
		text = extracted
	}
	text = textx.SanitizeText(text)
	if text == "" {
		return errorEntry(entry, "empty resume text")
	}

	bundle := s.Analyzer.Analyze(text, jobDescription)
	entry.Assessment = scoring.Assess(bundle)
	entry.AIGenerated = bundle.AIDetection.IsAIGenerated
	entry.AIConfidence = bundle.AIDetection.Confidence
	entry.CriticalFlags = len(bundle.RedFlags.Critical)
	entry.WarningFlags = len(bundle.RedFlags.Warning)
	entry.MinorFlags = len(bundle.RedFlags.Minor)
	entry.TrapTermsFound = bundle.Authenticity.TrapTerms.HasTrapTerms
	entry.BuzzwordDensity = bundle.Authenticity.BuzzwordDensity.Density
	entry.SpecificityScore = bundle.Authenticity.Specificity.Score
	entry.DatesValid = bundle.Consistency.DatesValid
	entry.TotalExperienceYears = bundle.Consistency.TotalExperienceYears
	entry.Bundle = &bundle
	return entry
}

func errorEntry(entry domain.BatchEntry, msg string) domain.BatchEntry {
	entry.Error = msg
	entry.Assessment = domain.RiskAssessment{
		Score:          0,
		Level:          domain.RiskError,
		Recommendation: "Could not process file",
	}
	return entry
}

// summarize counts levels and cross-cutting flags in one scan. Error entries
// are excluded from the risk-level tallies.
func summarize(entries []domain.BatchEntry) domain.BatchSummary {
	var s domain.BatchSummary
	for _, e := range entries {
		switch e.Assessment.Level {
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
		if e.AIGenerated {
			s.AIGeneratedCount++
		}
		if e.TrapTermsFound {
			s.TrapTermsCount++
		}
	}
	return s
}
