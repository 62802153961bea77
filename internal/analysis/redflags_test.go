package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

func TestIdentifyRedFlags_TrapTermIsAlwaysCritical(t *testing.T) {
	t.Parallel()
	a := newTestAnalyzer(t)

	set := a.IdentifyRedFlags("Owned back-office engineering processes", "")

	require.NotEmpty(t, set.Critical)
	assert.Equal(t, "TRAP_TERM_DETECTED", set.Critical[0].Kind)
	assert.Equal(t, domain.SeverityCritical, set.Critical[0].Severity)
	assert.Contains(t, set.Critical[0].Description, "back-office engineering")
	assert.Contains(t, set.Critical[0].Recommendation, "REJECT")
}

func TestIdentifyRedFlags_JDMatchTiers(t *testing.T) {
	t.Parallel()
	a := newTestAnalyzer(t)

	jd := "We need an engineer who automates cloud infrastructure with strong pipeline skills"

	t.Run("full copy is critical", func(t *testing.T) {
		t.Parallel()
		set := a.IdentifyRedFlags(jd, jd)
		assert.Contains(t, flagKinds(set.Critical), "EXACT_JD_MATCH")
		assert.NotContains(t, flagKinds(set.Warning), "HIGH_JD_SIMILARITY")
	})

	t.Run("no job description skips the check", func(t *testing.T) {
		t.Parallel()
		set := a.IdentifyRedFlags(jd, "")
		assert.NotContains(t, flagKinds(set.Critical), "EXACT_JD_MATCH")
	})
}

func TestIdentifyRedFlags_BuzzwordTiers(t *testing.T) {
	t.Parallel()
	a := newTestAnalyzer(t)

	t.Run("moderate density is minor", func(t *testing.T) {
		t.Parallel()
		set := a.IdentifyRedFlags(buzzText(t, 100, 6), "")
		assert.Contains(t, flagKinds(set.Minor), "MODERATE_BUZZWORDS")
		assert.NotContains(t, flagKinds(set.Warning), "EXCESSIVE_BUZZWORDS")
	})

	t.Run("at the boundary no flag fires", func(t *testing.T) {
		t.Parallel()
		set := a.IdentifyRedFlags(buzzText(t, 100, 5), "")
		assert.NotContains(t, flagKinds(set.Minor), "MODERATE_BUZZWORDS")
		assert.NotContains(t, flagKinds(set.Warning), "EXCESSIVE_BUZZWORDS")
	})
}

func TestIdentifyRedFlags_TerminologyAndProgression(t *testing.T) {
	t.Parallel()
	a := newTestAnalyzer(t)

	text := "Junior Engineer 2020-2021\nSenior Engineer 2021-2023\nDeployed with Kubenetes"
	set := a.IdentifyRedFlags(text, "")

	kinds := flagKinds(set.Warning)
	assert.Contains(t, kinds, "TERMINOLOGY_ERROR")
	assert.Contains(t, kinds, "RAPID_PROGRESSION")
}

func TestIdentifyRedFlags_VagueContent(t *testing.T) {
	t.Parallel()
	a := newTestAnalyzer(t)

	vague := a.IdentifyRedFlags("responsible for various tasks and duties", "")
	assert.Contains(t, flagKinds(vague.Warning), "VAGUE_CONTENT")

	specific := a.IdentifyRedFlags(strings.Repeat("improved throughput by 25%. ", 15), "")
	assert.NotContains(t, flagKinds(specific.Warning), "VAGUE_CONTENT")
}

func TestIdentifyRedFlags_TotalCount(t *testing.T) {
	t.Parallel()
	a := newTestAnalyzer(t)

	set := a.IdentifyRedFlags("Owned back-office engineering with Kubenetes", "")
	assert.Equal(t, len(set.Critical)+len(set.Warning)+len(set.Minor), set.TotalCount)
	assert.NotZero(t, set.TotalCount)
}

func flagKinds(findings []domain.Finding) []string {
	kinds := make([]string, 0, len(findings))
	for _, f := range findings {
		kinds = append(kinds, f.Kind)
	}
	return kinds
}
