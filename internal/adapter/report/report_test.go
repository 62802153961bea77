package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

func fixedGenerator() *Generator {
	fixed := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	return New(WithClock(func() time.Time { return fixed }))
}

func sampleResult() domain.BatchResult {
	bundle := domain.HeuristicBundle{
		RedFlags: domain.RedFlagSet{
			Critical: []domain.Finding{{
				Kind:           "TRAP_TERM_DETECTED",
				Severity:       domain.SeverityCritical,
				Description:    "Resume contains planted trap term(s): back-office engineering",
				Recommendation: "REJECT - This is a clear indicator of resume scraping",
			}},
			Warning:    []domain.Finding{{Kind: "VAGUE_CONTENT", Severity: domain.SeverityWarning, Description: "Lack of specific details (score: 5/100)"}},
			TotalCount: 2,
		},
	}
	return domain.BatchResult{
		TotalFiles: 2,
		Processed:  2,
		Entries: []domain.BatchEntry{
			{
				ID:            "1",
				Filename:      "suspect.pdf",
				CandidateName: "John Smith",
				Assessment:    domain.RiskAssessment{Score: 85, Level: domain.RiskCritical, Recommendation: "REJECT - Multiple critical fraud indicators detected. Do not proceed with this candidate."},
				AIGenerated:   true,
				CriticalFlags: 1,
				WarningFlags:  1,
				Bundle:        &bundle,
			},
			{
				ID:         "2",
				Filename:   "clean.pdf",
				Assessment: domain.RiskAssessment{Score: 5, Level: domain.RiskMinimal, Recommendation: "PROCEED - No significant fraud indicators detected. Continue with normal hiring process."},
			},
		},
		Summary: domain.BatchSummary{CriticalRisk: 1, MinimalRisk: 1, AIGeneratedCount: 1, TrapTermsCount: 1},
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()
	g := fixedGenerator()

	html, err := g.HTML(sampleResult())
	require.NoError(t, err)

	assert.Contains(t, html, "2026-01-15 10:30:00")
	assert.Contains(t, html, "John Smith")
	assert.Contains(t, html, "TRAP_TERM_DETECTED")
	assert.Contains(t, html, "badge-critical")
	// Entries without a name are reported as Unknown.
	assert.Contains(t, html, "Unknown")
	// The high-priority section excludes the minimal-risk candidate, the
	// all-candidates table includes both.
	assert.Equal(t, 1, strings.Count(html, "Detailed Red Flags"))
}

func TestHTML_NoHighPriority(t *testing.T) {
	t.Parallel()
	g := fixedGenerator()

	result := domain.BatchResult{
		Entries: []domain.BatchEntry{
			{CandidateName: "Jane Doe", Assessment: domain.RiskAssessment{Score: 3, Level: domain.RiskMinimal}},
		},
		Summary: domain.BatchSummary{MinimalRisk: 1},
	}
	html, err := g.HTML(result)
	require.NoError(t, err)
	assert.Contains(t, html, "No high-priority fraud indicators detected!")
}

func TestHTML_EscapesCandidateInput(t *testing.T) {
	t.Parallel()
	g := fixedGenerator()

	result := domain.BatchResult{
		Entries: []domain.BatchEntry{
			{CandidateName: "<script>alert(1)</script>", Assessment: domain.RiskAssessment{Score: 80, Level: domain.RiskCritical}},
		},
	}
	html, err := g.HTML(result)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestText(t *testing.T) {
	t.Parallel()
	g := fixedGenerator()

	text := g.Text(sampleResult())

	assert.Contains(t, text, "CANDIDATE VERIFICATION REPORT")
	assert.Contains(t, text, "Generated: 2026-01-15 10:30:00")
	assert.Contains(t, text, "Critical Risk:          1")
	assert.Contains(t, text, "1. John Smith")
	assert.Contains(t, text, "Risk Score: 85/100")
	assert.Contains(t, text, "AI Generated: YES")
	assert.Contains(t, text, "CRITICAL RED FLAGS:")
	assert.Contains(t, text, "TRAP_TERM_DETECTED")
	assert.Contains(t, text, "ALL CANDIDATES SUMMARY")
}

func TestText_EmptyBatch(t *testing.T) {
	t.Parallel()
	g := fixedGenerator()

	text := g.Text(domain.BatchResult{})
	assert.Contains(t, text, "No high-priority fraud indicators detected.")
}
