// Package usecase wires the analysis, scoring, and identity layers into the
// operations exposed by the HTTP surface and the CLI.
package usecase

import (
	"context"
	"fmt"

	"github.com/mgentry11/candidate-verification-app/internal/analysis"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/internal/identity"
	"github.com/mgentry11/candidate-verification-app/internal/observability"
	"github.com/mgentry11/candidate-verification-app/internal/scoring"
	"github.com/mgentry11/candidate-verification-app/pkg/textx"
)

// VerifyService runs the single-candidate verification operations.
type VerifyService struct {
	Analyzer  *analysis.Analyzer
	Extractor domain.TextExtractor
	Presence  *identity.PresenceChecker
	LinkedIn  *identity.LinkedInVerifier
}

// NewVerifyService constructs a VerifyService.
func NewVerifyService(an *analysis.Analyzer, ex domain.TextExtractor, pc *identity.PresenceChecker, li *identity.LinkedInVerifier) VerifyService {
	return VerifyService{Analyzer: an, Extractor: ex, Presence: pc, LinkedIn: li}
}

// VerifyResumeText analyzes raw resume text and scores it.
func (s VerifyService) VerifyResumeText(ctx context.Context, text, jobDescription string) (domain.ResumeVerification, error) {
	text = textx.SanitizeText(text)
	if text == "" {
		return domain.ResumeVerification{}, fmt.Errorf("%w: empty resume text", domain.ErrInvalidArgument)
	}
	bundle := s.Analyzer.Analyze(text, jobDescription)
	res := domain.ResumeVerification{
		Bundle:     bundle,
		Assessment: scoring.Assess(bundle),
	}
	observability.LoggerFromContext(ctx).Info("resume verified",
		"risk_score", res.Assessment.Score,
		"risk_level", res.Assessment.Level,
		"red_flags", bundle.RedFlags.TotalCount)
	return res, nil
}

// VerifyResumeFile extracts text from an uploaded document and analyzes it.
func (s VerifyService) VerifyResumeFile(ctx context.Context, filename string, data []byte, jobDescription string) (domain.ResumeVerification, error) {
	if s.Extractor == nil {
		return domain.ResumeVerification{}, fmt.Errorf("%w: no text extractor configured", domain.ErrInternal)
	}
	text, err := s.Extractor.Extract(ctx, filename, data)
	if err != nil {
		return domain.ResumeVerification{}, err
	}
	return s.VerifyResumeText(ctx, text, jobDescription)
}

// VerifyLinkedIn vets a LinkedIn profile URL.
func (s VerifyService) VerifyLinkedIn(ctx context.Context, profileURL string) (domain.LinkedInReport, error) {
	if s.LinkedIn == nil {
		return domain.LinkedInReport{}, fmt.Errorf("%w: no linkedin verifier configured", domain.ErrInternal)
	}
	return s.LinkedIn.VerifyProfile(ctx, profileURL)
}

// VerifyPresence assembles the online-presence report for a candidate.
func (s VerifyService) VerifyPresence(ctx context.Context, candidate domain.CandidateInfo) (domain.PresenceReport, error) {
	if s.Presence == nil {
		return domain.PresenceReport{}, fmt.Errorf("%w: no presence checker configured", domain.ErrInternal)
	}
	if candidate.Name == "" && candidate.Email == "" {
		return domain.PresenceReport{}, fmt.Errorf("%w: candidate name or email required", domain.ErrInvalidArgument)
	}
	return s.Presence.Verify(ctx, candidate), nil
}

// VerifyComprehensive runs every check and blends them into one assessment.
// LinkedIn profile signals are supplied by the caller when a reviewer has
// resolved them; nil excludes that term from the blend.
func (s VerifyService) VerifyComprehensive(ctx context.Context, text, jobDescription string, candidate domain.CandidateInfo, linkedin *domain.LinkedInSignals) (domain.ComprehensiveReport, error) {
	text = textx.SanitizeText(text)
	if text == "" {
		return domain.ComprehensiveReport{}, fmt.Errorf("%w: empty resume text", domain.ErrInvalidArgument)
	}
	bundle := s.Analyzer.Analyze(text, jobDescription)

	report := domain.ComprehensiveReport{
		Candidate: candidate,
		Resume:    bundle,
	}

	var presenceSignals *domain.PresenceSignals
	if s.Presence != nil && (candidate.Name != "" || candidate.Email != "") {
		report.Presence = s.Presence.Verify(ctx, candidate)
		presenceSignals = &report.Presence.Signals
	}

	if s.LinkedIn != nil && candidate.LinkedIn != "" {
		li, err := s.LinkedIn.VerifyProfile(ctx, candidate.LinkedIn)
		if err == nil {
			report.LinkedIn = &li
		} else {
			observability.LoggerFromContext(ctx).Warn("linkedin verification skipped", "error", err)
		}
	}

	report.Assessment = scoring.AssessComprehensive(bundle, linkedin, presenceSignals)
	observability.LoggerFromContext(ctx).Info("comprehensive verification done",
		"risk_score", report.Assessment.Score,
		"risk_level", report.Assessment.Level)
	return report, nil
}
