// Package analysis implements the text heuristics engine and red-flag
// aggregation for resume screening.
//
// Every operation is a pure function of the input text (plus an optional job
// description); the Analyzer only carries immutable rule tables and compiled
// patterns, so a single instance is safe for concurrent use.
package analysis

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// Analyzer runs the screening heuristics against resume text.
type Analyzer struct {
	rules Ruleset
	now   func() time.Time

	aiPatterns  []*regexp.Regexp
	actionVerbs map[string]struct{}

	bulletFirstWordRe *regexp.Regexp
	bulletLineRe      *regexp.Regexp
	verbToOutcomeRe   *regexp.Regexp
	firstPersonRe     *regexp.Regexp
	camelCaseRe       *regexp.Regexp
	personalMetricRe  *regexp.Regexp
	dateRangeRe       *regexp.Regexp
	yearRangeRe       *regexp.Regexp
	yearRe            *regexp.Regexp
	jdPhraseRe        *regexp.Regexp
	metricsRe         *regexp.Regexp
	versionRe         *regexp.Regexp
	detailRe          *regexp.Regexp
	titleRes          []*regexp.Regexp
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the clock used to resolve "present" in date ranges.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New compiles the rule tables into an Analyzer.
func New(rules Ruleset, opts ...Option) *Analyzer {
	a := &Analyzer{
		rules:       rules,
		now:         time.Now,
		actionVerbs: make(map[string]struct{}, len(rules.ActionVerbs)),

		bulletFirstWordRe: regexp.MustCompile(`(?m)^\s*[•\-\*]\s*(\w+)`),
		bulletLineRe:      regexp.MustCompile(`(?m)^\s*[•\-\*]\s*(.+)$`),
		verbToOutcomeRe:   regexp.MustCompile(`(?i)^\s*\w+\s+\w+.*\s+to\s+`),
		firstPersonRe:     regexp.MustCompile(`\b(i|my|me)\b`),
		camelCaseRe:       regexp.MustCompile(`\b[A-Z][a-z]+[A-Z]\w*\b`),
		personalMetricRe:  regexp.MustCompile(`\d+%|\$\d+|\d+x`),
		dateRangeRe:       regexp.MustCompile(`(?i)(\d{1,2}/\d{4}|\d{4})\s*[-–]\s*(\d{1,2}/\d{4}|\d{4}|present|current)`),
		yearRangeRe:       regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`),
		yearRe:            regexp.MustCompile(`\d{4}`),
		jdPhraseRe:        regexp.MustCompile(`\b\w+(?:\s+\w+){2,}\b`),
		metricsRe:         regexp.MustCompile(`(?i)\d+%|\$\d+|reduced|increased|improved|managed \d+|team of \d+`),
		versionRe:         regexp.MustCompile(`\d+\.\d+`),
		detailRe:          regexp.MustCompile(`(?i)(implemented|designed|built|created|developed)\s+\w+`),
		titleRes: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(junior|associate|senior|lead|principal|staff|architect|manager|director|vp|cto|ceo)`),
			regexp.MustCompile(`(?i)(engineer|developer|analyst|administrator|specialist)`),
		},
	}
	for _, p := range rules.AIPatterns {
		a.aiPatterns = append(a.aiPatterns, regexp.MustCompile(`(?i)`+p))
	}
	for _, v := range rules.ActionVerbs {
		a.actionVerbs[strings.ToLower(v)] = struct{}{}
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze runs every heuristic and assembles the full bundle for one resume.
func (a *Analyzer) Analyze(text, jobDescription string) domain.HeuristicBundle {
	return domain.HeuristicBundle{
		Authenticity: a.AnalyzeAuthenticity(text, jobDescription),
		AIDetection:  a.DetectAIContent(text),
		Consistency:  a.CheckConsistency(text),
		Terminology:  a.CheckTerminology(text),
		RedFlags:     a.IdentifyRedFlags(text, jobDescription),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
