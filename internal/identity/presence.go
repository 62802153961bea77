package identity

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// PresenceChecker assembles the online-footprint report for one candidate.
// GitHub is the only automated lookup; every other platform check comes back
// as explicit manual instructions.
type PresenceChecker struct {
	github        domain.GitHubLookup
	defaultRegion string
}

// NewPresenceChecker builds a checker. A nil github lookup degrades that
// check to a ManualCheck instead of reporting absence.
func NewPresenceChecker(github domain.GitHubLookup, defaultRegion string) *PresenceChecker {
	return &PresenceChecker{github: github, defaultRegion: defaultRegion}
}

// Verify runs every presence check and scores the candidate's footprint.
// Higher scores mean a more established, more legitimate presence.
func (c *PresenceChecker) Verify(ctx context.Context, candidate domain.CandidateInfo) domain.PresenceReport {
	report := domain.PresenceReport{
		Candidate: candidate,
		Email:     CheckEmail(candidate.Email),
		Phone:     CheckPhone(candidate.Phone, c.defaultRegion),
		LinkedIn:  linkedInManualCheck(candidate.Name),
		Google:    googleManualCheck(candidate),
		Breaches:  breachManualCheck(candidate.Email),
		RedFlags:  []domain.Finding{},
		Warnings:  []domain.Finding{},
	}

	if c.github != nil && candidate.Name != "" {
		gh, err := c.github.FindProfiles(ctx, candidate.Name)
		if err != nil {
			report.GitHubManual = &domain.ManualCheck{
				RequiresManualCheck: true,
				Instructions:        fmt.Sprintf("Search GitHub manually for %q", candidate.Name),
				CheckURL:            "https://github.com/search?type=users&q=" + url.QueryEscape(candidate.Name),
			}
		} else {
			report.GitHub = &gh
			exists := gh.Exists
			report.Signals.HasGitHub = &exists
		}
	}

	c.flagConcerns(&report)
	report.OSINT = osintRecommendations(candidate)
	report.PresenceScore = presenceScore(report)
	report.PresenceLevel = presenceLevel(report.PresenceScore)
	report.Signals.EmailSuspicious = report.Email.IsDisposable || report.Email.IsSuspicious
	return report
}

func (c *PresenceChecker) flagConcerns(report *domain.PresenceReport) {
	if report.Email.IsDisposable {
		report.RedFlags = append(report.RedFlags, domain.Finding{
			Kind:           "DISPOSABLE_EMAIL",
			Severity:       domain.SeverityCritical,
			Description:    "Candidate is using a disposable email address",
			Recommendation: "REJECT - Clear fraud indicator",
		})
	} else if report.Email.IsSuspicious {
		report.Warnings = append(report.Warnings, domain.Finding{
			Kind:        "SUSPICIOUS_EMAIL",
			Severity:    domain.SeverityWarning,
			Description: "Email address has suspicious patterns",
			Evidence:    map[string]any{"flags": report.Email.Flags},
		})
	}

	if len(report.Phone.Flags) > 0 {
		report.Warnings = append(report.Warnings, domain.Finding{
			Kind:        "SUSPICIOUS_PHONE",
			Severity:    domain.SeverityWarning,
			Description: "Phone number has suspicious characteristics",
			Evidence:    map[string]any{"flags": report.Phone.Flags},
		})
	}

	if report.GitHub != nil && !report.GitHub.Exists {
		report.Warnings = append(report.Warnings, domain.Finding{
			Kind:           "NO_GITHUB_PRESENCE",
			Severity:       domain.SeverityWarning,
			Description:    "No GitHub profile found - unusual for DevOps candidate",
			Recommendation: "Ask candidate about their open source contributions or personal projects",
		})
	}
}

// presenceScore rewards verifiable footprint. LinkedIn and Google stay out of
// the automated score; they require manual checks.
func presenceScore(report domain.PresenceReport) int {
	score := 0
	if report.Email.Valid {
		score += 20
	}
	if report.Email.IsDisposable {
		score -= 30
	}
	if report.Phone.Valid {
		score += 15
	}
	if report.GitHub != nil && report.GitHub.Exists {
		hasRepos := false
		for _, p := range report.GitHub.Profiles {
			if p.PublicRepos > 0 {
				hasRepos = true
				break
			}
		}
		if hasRepos {
			score += 25
		} else {
			score += 10
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func presenceLevel(score int) string {
	switch {
	case score >= 70:
		return "STRONG"
	case score >= 50:
		return "MODERATE"
	case score >= 30:
		return "WEAK"
	default:
		return "MINIMAL/SUSPICIOUS"
	}
}

func linkedInManualCheck(name string) domain.ManualCheck {
	if name == "" {
		return domain.ManualCheck{
			RequiresManualCheck: true,
			Instructions:        "No name provided, request candidate's LinkedIn profile URL",
		}
	}
	return domain.ManualCheck{
		RequiresManualCheck: true,
		Instructions:        fmt.Sprintf("Search LinkedIn for: %q", name),
		CheckURL:            "https://www.linkedin.com/search/results/people/?keywords=" + url.QueryEscape(name),
		RedFlags: []string{
			"No profile found at all",
			"Multiple profiles with exact same name and location",
			"Profile exists but created very recently",
		},
	}
}

func googleManualCheck(candidate domain.CandidateInfo) domain.ManualCheck {
	if candidate.Name == "" {
		return domain.ManualCheck{
			RequiresManualCheck: true,
			Instructions:        "No name provided, cannot build search queries",
		}
	}
	queries := []string{fmt.Sprintf("%q", candidate.Name)}
	if candidate.Location != "" {
		queries = append(queries, fmt.Sprintf("%q %s", candidate.Name, candidate.Location))
	}
	queries = append(queries,
		fmt.Sprintf("%q DevOps engineer", candidate.Name),
		fmt.Sprintf("%q LinkedIn", candidate.Name),
	)
	return domain.ManualCheck{
		RequiresManualCheck: true,
		Instructions:        "Perform these Google searches and check for legitimate results",
		SearchQueries:       queries,
		RedFlags: []string{
			"Absolutely no search results",
			"Only fake or spam websites",
			"Results don't match candidate's claimed location/experience",
		},
		ExpectedResults: []string{
			"LinkedIn profile",
			"GitHub profile",
			"Professional blog or portfolio",
			"Conference presentations or talks",
			"Technical articles or contributions",
			"Company employee directory mentions",
		},
	}
}

func breachManualCheck(email string) domain.ManualCheck {
	if email == "" {
		return domain.ManualCheck{
			RequiresManualCheck: true,
			Instructions:        "No email provided",
		}
	}
	return domain.ManualCheck{
		RequiresManualCheck: true,
		CheckURL:            "https://haveibeenpwned.com/",
		Instructions:        fmt.Sprintf("Enter email %q on HaveIBeenPwned.com", email),
		Note:                "Real people usually have some breach history. Complete absence might indicate fake email.",
	}
}

func osintRecommendations(candidate domain.CandidateInfo) []domain.OSINTRecommendation {
	return []domain.OSINTRecommendation{
		{
			Tool:    "ThatsThem",
			URL:     "https://thatsthem.com/",
			Purpose: "Search for name, phone, address, email",
			Action:  fmt.Sprintf("Search for: %s, %s", candidate.Name, candidate.Email),
		},
		{
			Tool:    "HaveIBeenPwned",
			URL:     "https://haveibeenpwned.com/",
			Purpose: "Check if email appears in data breaches",
			Action:  "Check email: " + candidate.Email,
		},
		{
			Tool:    "WhatsMyName",
			URL:     "https://whatsmyname.app/",
			Purpose: "Search for username across 400+ platforms",
			Action:  "Extract potential usernames from email/LinkedIn and search",
		},
		{
			Tool:    "Intelligence X",
			URL:     "https://intelx.io/",
			Purpose: "Deep web search for email, domain, name",
			Action:  "Search for email and name in dark web databases",
		},
		{
			Tool:    "FamilyTreeNow",
			URL:     "https://www.familytreenow.com/",
			Purpose: "Verify US-based candidates (public records)",
			Action:  "Search for name and location to verify identity",
		},
	}
}

// UsernameGuesses derives likely GitHub usernames from a candidate name.
func UsernameGuesses(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	guesses := []string{
		strings.ReplaceAll(lower, " ", ""),
		strings.ReplaceAll(lower, " ", "-"),
		strings.ReplaceAll(lower, " ", "_"),
	}
	parts := strings.Fields(lower)
	if len(parts) > 1 {
		guesses = append(guesses, parts[0]+parts[len(parts)-1])
	}
	seen := make(map[string]struct{}, len(guesses))
	out := guesses[:0]
	for _, g := range guesses {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
