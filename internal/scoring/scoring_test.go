package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

func cleanBundle() domain.HeuristicBundle {
	return domain.HeuristicBundle{
		Consistency: domain.Consistency{DatesValid: true, CareerProgressionValid: true},
	}
}

func flags(critical, warning, minor int) domain.RedFlagSet {
	mk := func(n int, sev domain.Severity) []domain.Finding {
		out := make([]domain.Finding, n)
		for i := range out {
			out[i] = domain.Finding{Kind: "TEST", Severity: sev}
		}
		return out
	}
	return domain.RedFlagSet{
		Critical:   mk(critical, domain.SeverityCritical),
		Warning:    mk(warning, domain.SeverityWarning),
		Minor:      mk(minor, domain.SeverityMinor),
		TotalCount: critical + warning + minor,
	}
}

func TestScoreResume(t *testing.T) {
	t.Parallel()

	t.Run("clean bundle scores zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, ScoreResume(cleanBundle()))
	})

	t.Run("red flag weights", func(t *testing.T) {
		t.Parallel()
		b := cleanBundle()
		b.RedFlags = flags(1, 2, 3)
		assert.Equal(t, 10+2*5+3*2, ScoreResume(b))
	})

	t.Run("ai confidence contributes only when flagged", func(t *testing.T) {
		t.Parallel()
		b := cleanBundle()
		b.AIDetection = domain.AIDetection{IsAIGenerated: false, Confidence: 0.5}
		assert.Equal(t, 0, ScoreResume(b))

		b.AIDetection.IsAIGenerated = true
		assert.Equal(t, 15, ScoreResume(b))
	})

	t.Run("date and progression penalties", func(t *testing.T) {
		t.Parallel()
		b := cleanBundle()
		b.Consistency.DatesValid = false
		assert.Equal(t, 15, ScoreResume(b))

		b.Consistency.CareerProgressionValid = false
		assert.Equal(t, 30, ScoreResume(b))
	})

	t.Run("clamped to 100", func(t *testing.T) {
		t.Parallel()
		b := cleanBundle()
		b.RedFlags = flags(20, 0, 0)
		assert.Equal(t, 100, ScoreResume(b))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		b := cleanBundle()
		b.RedFlags = flags(2, 1, 4)
		b.AIDetection = domain.AIDetection{IsAIGenerated: true, Confidence: 0.82}
		first := ScoreResume(b)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ScoreResume(b))
		}
	})
}

func TestScoreComprehensive(t *testing.T) {
	t.Parallel()

	t.Run("nil linkedin excludes the term", func(t *testing.T) {
		t.Parallel()
		b := cleanBundle()
		withNil := ScoreComprehensive(b, nil, nil)
		assert.Equal(t, 0, withNil)

		// A reported profile with no badge is riskier than no report at all.
		li := &domain.LinkedInSignals{HasVerificationBadge: false}
		assert.Equal(t, 6, ScoreComprehensive(b, li, nil))
	})

	t.Run("linkedin weights", func(t *testing.T) {
		t.Parallel()
		li := &domain.LinkedInSignals{
			RecentlyCreated:      true,
			HasVerificationBadge: false,
			LowConnections:       true,
			VagueExperience:      true,
		}
		// (30+20+25+25) * 0.3 = 30
		assert.Equal(t, 30, ScoreComprehensive(cleanBundle(), li, nil))
	})

	t.Run("presence absent vs unchecked", func(t *testing.T) {
		t.Parallel()
		f := false
		pr := &domain.PresenceSignals{HasLinkedIn: &f, HasGitHub: &f, HasGooglePresence: &f, EmailSuspicious: true}
		// (30+20+30+20) * 0.3 = 30
		assert.Equal(t, 30, ScoreComprehensive(cleanBundle(), nil, pr))

		unchecked := &domain.PresenceSignals{}
		assert.Equal(t, 0, ScoreComprehensive(cleanBundle(), nil, unchecked))
	})

	t.Run("resume term omits date penalties and minor flags", func(t *testing.T) {
		t.Parallel()
		b := cleanBundle()
		b.Consistency.DatesValid = false
		b.Consistency.CareerProgressionValid = false
		b.RedFlags = flags(0, 0, 5)
		assert.Equal(t, 0, ScoreComprehensive(b, nil, nil))
		require.NotZero(t, ScoreResume(b))
	})
}

func TestLevelBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		score int
		level domain.RiskLevel
	}{
		{0, domain.RiskMinimal},
		{14, domain.RiskMinimal},
		{15, domain.RiskLow},
		{29, domain.RiskLow},
		{30, domain.RiskMedium},
		{49, domain.RiskMedium},
		{50, domain.RiskHigh},
		{69, domain.RiskHigh},
		{70, domain.RiskCritical},
		{100, domain.RiskCritical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelFor(tc.score), "score %d", tc.score)
	}
}

func TestRecommendationFor(t *testing.T) {
	t.Parallel()
	assert.Contains(t, RecommendationFor(0), "PROCEED -")
	assert.Contains(t, RecommendationFor(15), "PROCEED WITH NORMAL SCREENING")
	assert.Contains(t, RecommendationFor(30), "INVESTIGATE")
	assert.Contains(t, RecommendationFor(50), "CAUTION")
	assert.Contains(t, RecommendationFor(70), "REJECT")
}

func TestAssess(t *testing.T) {
	t.Parallel()
	b := cleanBundle()
	b.RedFlags = flags(2, 2, 0)
	got := Assess(b)
	assert.Equal(t, 30, got.Score)
	assert.Equal(t, domain.RiskMedium, got.Level)
	assert.Equal(t, RecommendationFor(30), got.Recommendation)
}
