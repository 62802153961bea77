// Package domain holds the core entities, error taxonomy, and ports of the
// candidate verification service.
package domain

import (
	"context"
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrExtractionFailed  = errors.New("extraction failed")
	ErrValidation        = errors.New("validation error")
	ErrInternal          = errors.New("internal error")
)

// Severity classifies a finding into exactly one tier.
type Severity string

// Severity tiers, never merged or reordered.
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityMinor    Severity = "MINOR"
)

// Finding is one atomic flagged observation. Immutable once produced.
type Finding struct {
	Kind           string         `json:"type"`
	Severity       Severity       `json:"severity"`
	Description    string         `json:"description"`
	Evidence       map[string]any `json:"evidence,omitempty"`
	Recommendation string         `json:"recommendation,omitempty"`
}

// RiskLevel is the ordinal category derived from a numeric score.
type RiskLevel string

// Risk levels. RiskError marks batch entries that failed before scoring.
const (
	RiskMinimal  RiskLevel = "MINIMAL"
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
	RiskError    RiskLevel = "ERROR"
)

// RiskAssessment is derived deterministically from a HeuristicBundle.
// Recompute, don't patch.
type RiskAssessment struct {
	Score          int       `json:"risk_score"`
	Level          RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
}

// AIDetection is the result of the AI-content heuristics over one resume.
type AIDetection struct {
	IsAIGenerated       bool      `json:"is_ai_generated"`
	Confidence          float64   `json:"confidence"`
	Indicators          []Finding `json:"indicators"`
	PatternMatches      int       `json:"pattern_matches"`
	SentenceUniformity  float64   `json:"sentence_uniformity"`
	VocabularyDiversity float64   `json:"vocabulary_diversity"`
}

// Consistency reports timeline validation over extracted date ranges.
// TotalExperienceYears sums ranges without deduplicating overlaps; overlaps
// are reported separately as their own signal.
type Consistency struct {
	DatesValid             bool     `json:"dates_valid"`
	HasOverlaps            bool     `json:"has_overlaps"`
	Overlaps               []string `json:"overlaps"`
	DateErrors             []string `json:"date_errors"`
	TotalExperienceYears   int      `json:"total_experience_years"`
	CareerProgressionValid bool     `json:"career_progression_valid"`
}

// TerminologyError is one incorrect-terminology hit.
type TerminologyError struct {
	Found    string `json:"found"`
	ShouldBe string `json:"should_be"`
	Context  string `json:"context"`
}

// Terminology reports misspelled tool names found in the resume.
type Terminology struct {
	HasErrors  bool               `json:"has_errors"`
	Errors     []TerminologyError `json:"errors"`
	ErrorCount int                `json:"error_count"`
}

// GenericContent measures how closely the resume mirrors the job description.
type GenericContent struct {
	IsGeneric       bool    `json:"is_generic"`
	MatchPercentage float64 `json:"match_percentage"`
}

// CareerProgression flags implausibly fast title jumps.
type CareerProgression struct {
	HasRapidProgression bool `json:"has_rapid_progression"`
	PositionsFound      int  `json:"positions_found"`
}

// BuzzwordDensity is the percentage of buzzword-bearing words.
type BuzzwordDensity struct {
	Density       float64 `json:"density"`
	BuzzwordCount int     `json:"buzzword_count"`
	IsExcessive   bool    `json:"is_excessive"`
}

// TrapTerms reports planted trap terms found in the text. Any hit is critical.
type TrapTerms struct {
	HasTrapTerms bool     `json:"has_trap_terms"`
	TermsFound   []string `json:"terms_found"`
	CriticalFlag bool     `json:"critical_flag"`
}

// Specificity scores concrete detail (metrics, versions, built-X phrases).
type Specificity struct {
	Score             int  `json:"score"`
	MetricsCount      int  `json:"metrics_count"`
	VersionReferences int  `json:"version_references"`
	SpecificDetails   int  `json:"specific_details"`
	IsVague           bool `json:"is_vague"`
}

// Authenticity bundles the pattern-based fabrication signals.
type Authenticity struct {
	GenericContent         GenericContent    `json:"generic_content"`
	UnrealisticProgression CareerProgression `json:"unrealistic_progression"`
	BuzzwordDensity        BuzzwordDensity   `json:"buzzword_density"`
	TrapTerms              TrapTerms         `json:"trap_terms_found"`
	Specificity            Specificity       `json:"specificity_score"`
}

// RedFlagSet is the severity-classified output of the red-flag rules.
// Findings keep rule-evaluation order within each tier.
type RedFlagSet struct {
	Critical   []Finding `json:"critical"`
	Warning    []Finding `json:"warning"`
	Minor      []Finding `json:"minor"`
	TotalCount int       `json:"total_count"`
}

// HeuristicBundle is the full set of per-resume check results, built once and
// consumed read-only by the scoring engine.
type HeuristicBundle struct {
	Authenticity Authenticity `json:"authenticity"`
	AIDetection  AIDetection  `json:"ai_detection"`
	Consistency  Consistency  `json:"consistency_check"`
	Terminology  Terminology  `json:"terminology_check"`
	RedFlags     RedFlagSet   `json:"red_flags"`
}

// ResumeVerification pairs a bundle with its assessment.
type ResumeVerification struct {
	Bundle     HeuristicBundle `json:"verification"`
	Assessment RiskAssessment  `json:"assessment"`
}

// BatchEntry is one candidate's row in a batch result. Error entries carry
// score 0 and RiskError instead of a bundle.
type BatchEntry struct {
	ID                   string           `json:"id"`
	Filename             string           `json:"filename"`
	CandidateName        string           `json:"candidate_name"`
	Assessment           RiskAssessment   `json:"assessment"`
	AIGenerated          bool             `json:"ai_generated"`
	AIConfidence         float64          `json:"ai_confidence"`
	CriticalFlags        int              `json:"critical_flags"`
	WarningFlags         int              `json:"warning_flags"`
	MinorFlags           int              `json:"minor_flags"`
	TrapTermsFound       bool             `json:"trap_terms_found"`
	BuzzwordDensity      float64          `json:"buzzword_density"`
	SpecificityScore     int              `json:"specificity_score"`
	DatesValid           bool             `json:"dates_valid"`
	TotalExperienceYears int              `json:"total_experience_years"`
	Bundle               *HeuristicBundle `json:"detailed_results,omitempty"`
	Error                string           `json:"error,omitempty"`
}

// BatchSummary holds per-level counts plus the two cross-cutting flags.
type BatchSummary struct {
	CriticalRisk     int `json:"critical_risk"`
	HighRisk         int `json:"high_risk"`
	MediumRisk       int `json:"medium_risk"`
	LowRisk          int `json:"low_risk"`
	MinimalRisk      int `json:"minimal_risk"`
	AIGeneratedCount int `json:"ai_generated_count"`
	TrapTermsCount   int `json:"trap_terms_count"`
}

// BatchResult is the ordered outcome of a batch run. Entries are sorted
// descending by score; ties keep submission order.
type BatchResult struct {
	TotalFiles int          `json:"total_files"`
	Processed  int          `json:"processed"`
	Failed     int          `json:"failed"`
	Entries    []BatchEntry `json:"results"`
	Summary    BatchSummary `json:"summary"`
}

// TextExtractor (port)
// Extract converts an uploaded document into plain text. Implementations fail
// with ErrUnsupportedFormat for unrecognized extensions and ErrExtractionFailed
// for unreadable content.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (string, error)
}

// GitHubLookup (port) resolves public GitHub presence for a candidate name.
type GitHubLookup interface {
	FindProfiles(ctx context.Context, name string) (GitHubPresence, error)
}

// ArchiveLookup (port) resolves historical snapshots of a profile URL.
type ArchiveLookup interface {
	Snapshot(ctx context.Context, pageURL string) (ArchiveSnapshot, error)
}
