package analysis

import (
	"fmt"
	"strings"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// IdentifyRedFlags evaluates the fixed rule table and classifies every hit
// into one severity tier. Rule order is fixed and determines finding order
// within each tier; findings are never re-sorted.
func (a *Analyzer) IdentifyRedFlags(text, jobDescription string) domain.RedFlagSet {
	set := domain.RedFlagSet{
		Critical: []domain.Finding{},
		Warning:  []domain.Finding{},
		Minor:    []domain.Finding{},
	}

	trap := a.CheckTrapTerms(text)
	if trap.HasTrapTerms {
		set.Critical = append(set.Critical, domain.Finding{
			Kind:           "TRAP_TERM_DETECTED",
			Severity:       domain.SeverityCritical,
			Description:    fmt.Sprintf("Resume contains planted trap term(s): %s", strings.Join(trap.TermsFound, ", ")),
			Recommendation: "REJECT - This is a clear indicator of resume scraping",
		})
	}

	if jobDescription != "" {
		generic := a.CheckGenericContent(text, jobDescription)
		if generic.MatchPercentage > 90 {
			set.Critical = append(set.Critical, domain.Finding{
				Kind:           "EXACT_JD_MATCH",
				Severity:       domain.SeverityCritical,
				Description:    fmt.Sprintf("Resume matches job description %.2f%%", generic.MatchPercentage),
				Evidence:       map[string]any{"match_percentage": generic.MatchPercentage},
				Recommendation: "Likely AI-generated or copy-pasted from job description",
			})
		} else if generic.MatchPercentage > 75 {
			set.Warning = append(set.Warning, domain.Finding{
				Kind:           "HIGH_JD_SIMILARITY",
				Severity:       domain.SeverityWarning,
				Description:    fmt.Sprintf("Resume closely mirrors job description (%.2f%%)", generic.MatchPercentage),
				Evidence:       map[string]any{"match_percentage": generic.MatchPercentage},
				Recommendation: "Investigate further - may be tailored excessively",
			})
		}
	}

	buzz := a.CalculateBuzzwordDensity(text)
	if buzz.Density > 8 {
		set.Warning = append(set.Warning, domain.Finding{
			Kind:           "EXCESSIVE_BUZZWORDS",
			Severity:       domain.SeverityWarning,
			Description:    fmt.Sprintf("High buzzword density: %.2f%%", buzz.Density),
			Evidence:       map[string]any{"density": buzz.Density},
			Recommendation: "Resume may lack substance, verify claims thoroughly",
		})
	} else if buzz.Density > 5 {
		set.Minor = append(set.Minor, domain.Finding{
			Kind:           "MODERATE_BUZZWORDS",
			Severity:       domain.SeverityMinor,
			Description:    fmt.Sprintf("Moderate buzzword usage: %.2f%%", buzz.Density),
			Evidence:       map[string]any{"density": buzz.Density},
			Recommendation: "Monitor during interview",
		})
	}

	specificity := a.CalculateSpecificity(text)
	if specificity.IsVague {
		set.Warning = append(set.Warning, domain.Finding{
			Kind:           "VAGUE_CONTENT",
			Severity:       domain.SeverityWarning,
			Description:    fmt.Sprintf("Lack of specific details (score: %d/100)", specificity.Score),
			Evidence:       map[string]any{"score": specificity.Score},
			Recommendation: "Resume lacks concrete metrics and project details",
		})
	}

	terminology := a.CheckTerminology(text)
	for _, e := range terminology.Errors {
		set.Warning = append(set.Warning, domain.Finding{
			Kind:           "TERMINOLOGY_ERROR",
			Severity:       domain.SeverityWarning,
			Description:    fmt.Sprintf("Incorrect terminology: '%s' (should be '%s')", e.Found, e.ShouldBe),
			Recommendation: "Candidate may lack real-world experience with the technology",
		})
	}

	progression := a.CheckCareerProgression(text)
	if progression.HasRapidProgression {
		set.Warning = append(set.Warning, domain.Finding{
			Kind:           "RAPID_PROGRESSION",
			Severity:       domain.SeverityWarning,
			Description:    "Unrealistic career progression detected",
			Recommendation: "Verify employment history and responsibilities",
		})
	}

	set.TotalCount = len(set.Critical) + len(set.Warning) + len(set.Minor)
	return set
}
