// Package scoring maps heuristic findings to bounded risk scores, ordinal
// risk levels, and advisory recommendations. Every function is pure and
// deterministic: the same bundle always produces the same assessment.
package scoring

import (
	"math"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// Blend weights for comprehensive scoring.
const (
	weightResume   = 0.4
	weightLinkedIn = 0.3
	weightPresence = 0.3
)

// ScoreResume computes the single-resume risk score from a heuristic bundle:
// AI confidence (up to 30), red flags (10/5/2 per critical/warning/minor),
// and 15 each for invalid dates and invalid progression, clamped to [0,100].
func ScoreResume(b domain.HeuristicBundle) int {
	var score float64
	if b.AIDetection.IsAIGenerated {
		score += b.AIDetection.Confidence * 30
	}
	score += float64(len(b.RedFlags.Critical)) * 10
	score += float64(len(b.RedFlags.Warning)) * 5
	score += float64(len(b.RedFlags.Minor)) * 2
	if !b.Consistency.DatesValid {
		score += 15
	}
	if !b.Consistency.CareerProgressionValid {
		score += 15
	}
	return clamp(score)
}

// ScoreComprehensive blends the resume score with LinkedIn and online-presence
// signals using fixed weights (0.4/0.3/0.3). A nil linkedin drops that
// weighted term entirely rather than substituting zero or full risk. The
// resume term deliberately omits the date/progression penalty and minor flags
// that ScoreResume applies.
func ScoreComprehensive(b domain.HeuristicBundle, linkedin *domain.LinkedInSignals, presence *domain.PresenceSignals) int {
	var resumeScore float64
	if b.AIDetection.IsAIGenerated {
		resumeScore += b.AIDetection.Confidence * 30
	}
	resumeScore += float64(len(b.RedFlags.Critical)) * 10
	resumeScore += float64(len(b.RedFlags.Warning)) * 5

	score := resumeScore * weightResume

	if linkedin != nil {
		var liScore float64
		if linkedin.RecentlyCreated {
			liScore += 30
		}
		if !linkedin.HasVerificationBadge {
			liScore += 20
		}
		if linkedin.LowConnections {
			liScore += 25
		}
		if linkedin.VagueExperience {
			liScore += 25
		}
		score += liScore * weightLinkedIn
	}

	if presence != nil {
		var prScore float64
		if checkedAbsent(presence.HasLinkedIn) {
			prScore += 30
		}
		if checkedAbsent(presence.HasGitHub) {
			prScore += 20
		}
		if checkedAbsent(presence.HasGooglePresence) {
			prScore += 30
		}
		if presence.EmailSuspicious {
			prScore += 20
		}
		score += prScore * weightPresence
	}

	return clamp(score)
}

// ScoreBatchEntry scores one batch entry. It is ScoreResume over the subset
// of checks the batch pipeline produces; the formulas are identical.
func ScoreBatchEntry(b domain.HeuristicBundle) int {
	return ScoreResume(b)
}

// checkedAbsent reports a presence field that was actually checked and came
// back negative. nil means "not checked" and never contributes risk.
func checkedAbsent(v *bool) bool {
	return v != nil && !*v
}

func clamp(score float64) int {
	n := int(math.Round(score))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// LevelFor maps a score onto the five fixed risk tiers. The intervals
// partition [0,100] without gaps.
func LevelFor(score int) domain.RiskLevel {
	switch {
	case score >= 70:
		return domain.RiskCritical
	case score >= 50:
		return domain.RiskHigh
	case score >= 30:
		return domain.RiskMedium
	case score >= 15:
		return domain.RiskLow
	default:
		return domain.RiskMinimal
	}
}

// RecommendationFor returns the fixed advisory string for a score's tier.
func RecommendationFor(score int) string {
	switch {
	case score >= 70:
		return "REJECT - Multiple critical fraud indicators detected. Do not proceed with this candidate."
	case score >= 50:
		return "CAUTION - Significant red flags present. Conduct thorough additional verification before proceeding."
	case score >= 30:
		return "INVESTIGATE - Some concerning patterns detected. Additional screening recommended."
	case score >= 15:
		return "PROCEED WITH NORMAL SCREENING - Minor concerns noted. Standard interview process recommended."
	default:
		return "PROCEED - No significant fraud indicators detected. Continue with normal hiring process."
	}
}

// Assess derives the full assessment for a bundle via ScoreResume.
func Assess(b domain.HeuristicBundle) domain.RiskAssessment {
	score := ScoreResume(b)
	return domain.RiskAssessment{
		Score:          score,
		Level:          LevelFor(score),
		Recommendation: RecommendationFor(score),
	}
}

// AssessComprehensive derives the blended assessment.
func AssessComprehensive(b domain.HeuristicBundle, linkedin *domain.LinkedInSignals, presence *domain.PresenceSignals) domain.RiskAssessment {
	score := ScoreComprehensive(b, linkedin, presence)
	return domain.RiskAssessment{
		Score:          score,
		Level:          LevelFor(score),
		Recommendation: RecommendationFor(score),
	}
}
