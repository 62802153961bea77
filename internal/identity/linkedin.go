package identity

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

var (
	linkedinUsernameRe = regexp.MustCompile(`linkedin\.com/in/([^/?#]+)`)
	linkedinURLRe      = regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?$`)

	// Username shapes common to throwaway or generated accounts.
	suspiciousUsernamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\d{5,}`),
		regexp.MustCompile(`(?i)^[a-z]{1,2}\d{5,}`),
		regexp.MustCompile(`(?i)[a-z]{20,}`),
		regexp.MustCompile(`(?i)^(test|fake|demo)`),
	}
)

const minUsernameLen = 5

// ExtractLinkedInUsername pulls the profile slug out of a linkedin.com/in URL.
func ExtractLinkedInUsername(profileURL string) (string, bool) {
	m := linkedinUsernameRe.FindStringSubmatch(profileURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CheckLinkedInURL runs the unauthenticated checks over the profile URL.
func CheckLinkedInURL(profileURL, username string) domain.LinkedInURLCheck {
	check := domain.LinkedInURLCheck{
		URLFormatValid: linkedinURLRe.MatchString(profileURL),
		Username:       username,
	}
	for _, re := range suspiciousUsernamePatterns {
		if re.MatchString(username) {
			check.SuspiciousUsername = true
			check.PatternMatched = re.String()
			break
		}
	}
	check.UsernameTooShort = len(username) < minUsernameLen
	return check
}

// LinkedInRiskScore scores the automated findings. An archived snapshot is
// evidence of account history and subtracts risk; its absence adds some.
func LinkedInRiskScore(check domain.LinkedInURLCheck, archive *domain.ArchiveSnapshot) int {
	risk := 0
	if !check.URLFormatValid {
		risk += 20
	}
	if check.SuspiciousUsername {
		risk += 30
	}
	if check.UsernameTooShort {
		risk += 15
	}
	if archive != nil && archive.HasArchive {
		risk -= 10
	} else {
		risk += 10
	}
	if risk < 0 {
		return 0
	}
	if risk > 100 {
		return 100
	}
	return risk
}

// LinkedInRiskLevel maps the automated risk score onto the four-tier ladder
// used for profile vetting.
func LinkedInRiskLevel(score int) domain.RiskLevel {
	switch {
	case score >= 70:
		return domain.RiskCritical
	case score >= 50:
		return domain.RiskHigh
	case score >= 30:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// LinkedInVerifier vets profile URLs, optionally consulting the web archive.
type LinkedInVerifier struct {
	archive domain.ArchiveLookup
}

// NewLinkedInVerifier builds a verifier. A nil archive lookup disables the
// history check and its score adjustment is taken as "no archive".
func NewLinkedInVerifier(archive domain.ArchiveLookup) *LinkedInVerifier {
	return &LinkedInVerifier{archive: archive}
}

// VerifyProfile produces the full LinkedIn report for one profile URL.
func (v *LinkedInVerifier) VerifyProfile(ctx context.Context, profileURL string) (domain.LinkedInReport, error) {
	if profileURL == "" {
		return domain.LinkedInReport{}, fmt.Errorf("%w: no profile URL provided", domain.ErrInvalidArgument)
	}
	username, ok := ExtractLinkedInUsername(profileURL)
	if !ok {
		return domain.LinkedInReport{}, fmt.Errorf("%w: invalid LinkedIn URL format", domain.ErrInvalidArgument)
	}

	report := domain.LinkedInReport{
		ProfileURL: profileURL,
		Username:   username,
		Checks:     CheckLinkedInURL(profileURL, username),
		Checklist:  VerificationChecklist(profileURL, username),
	}

	if v.archive != nil {
		snap, err := v.archive.Snapshot(ctx, profileURL)
		if err != nil {
			snap = domain.ArchiveSnapshot{Note: "Archive lookup unavailable, check manually"}
		}
		report.Archive = &snap
	}

	report.RiskScore = LinkedInRiskScore(report.Checks, report.Archive)
	report.RiskLevel = LinkedInRiskLevel(report.RiskScore)
	return report, nil
}

// FieldMismatch is one resume/profile disagreement found by CheckImpersonation.
type FieldMismatch struct {
	Field    string          `json:"field"`
	Resume   string          `json:"resume"`
	LinkedIn string          `json:"linkedin"`
	Severity domain.Severity `json:"severity"`
}

// ImpersonationResult reports whether a profile may belong to someone else.
type ImpersonationResult struct {
	IsPotentialImpersonation bool            `json:"is_potential_impersonation"`
	Mismatches               []FieldMismatch `json:"mismatches"`
	Recommendation           string          `json:"recommendation"`
}

// CheckImpersonation compares the resume's claimed name with the profile name.
func CheckImpersonation(resumeName, profileName string) ImpersonationResult {
	res := ImpersonationResult{Mismatches: []FieldMismatch{}}
	if resumeName != "" && profileName != "" && !strings.EqualFold(resumeName, profileName) {
		res.Mismatches = append(res.Mismatches, FieldMismatch{
			Field:    "name",
			Resume:   resumeName,
			LinkedIn: profileName,
			Severity: domain.SeverityCritical,
		})
	}
	res.IsPotentialImpersonation = len(res.Mismatches) > 0
	if res.IsPotentialImpersonation {
		res.Recommendation = "REJECT - Profile may belong to different person"
	} else {
		res.Recommendation = "No obvious impersonation detected"
	}
	return res
}

// VerificationChecklist builds the eight-step manual vetting checklist for a
// profile. Steps are fixed; only the URL-derived fields vary.
func VerificationChecklist(profileURL, username string) []domain.ChecklistItem {
	return []domain.ChecklistItem{
		{
			Step:   1,
			Title:  "Check Profile Age",
			Action: "Click More -> About this profile -> Joined",
			CriticalFlags: []string{
				"Profile created within 1-2 months of job posting",
				"Profile created very recently (< 3 months)",
			},
			WarningFlags: []string{"Profile less than 6 months old"},
		},
		{
			Step:   2,
			Title:  "Verify Identity Badge",
			Action: "Look for blue verification checkmark on profile",
			CriticalFlags: []string{
				"No verification badge (especially for US-based profiles)",
			},
		},
		{
			Step:   3,
			Title:  "Examine Experience Entries",
			Action: "Click on each work experience to see details",
			CriticalFlags: []string{
				"Only company name, title, dates - no description",
				"All entries lack specific details",
			},
			WarningFlags: []string{
				"Vague or generic descriptions",
				"Descriptions that exactly match resume",
			},
		},
		{
			Step:   4,
			Title:  "Check Connections",
			Action: "Review connection count and mutual connections",
			CriticalFlags: []string{
				"Less than 10 connections",
				"No mutual connections in same region/industry",
			},
			WarningFlags: []string{
				"Less than 50 connections",
				"Connections seem random or unrelated",
			},
		},
		{
			Step:   5,
			Title:  "Review Activity",
			Action: "Scroll through posts and comments",
			CriticalFlags: []string{
				"Zero posts or activity",
				"Only generic \"Congratulations!\" comments",
			},
			WarningFlags: []string{
				"Very limited engagement",
				"No posts in last 6 months",
			},
		},
		{
			Step:   6,
			Title:  "Verify Profile Photo",
			Action: "Download profile photo and check with reverse image search",
			Tools: []string{
				"Google Reverse Image Search",
				"TinEye",
				"AI photo detector",
			},
			CriticalFlags: []string{
				"No profile photo",
				"AI-generated photo (unnatural features)",
				"Stock photo or image found elsewhere",
			},
		},
		{
			Step:   7,
			Title:  "Check Account History (Wayback Machine)",
			Action: "Visit: https://web.archive.org/web/*/" + profileURL,
			CriticalFlags: []string{
				"Profile shows different name in archived versions",
				"Profile URL was used by different person before",
			},
			Note: "Look for evidence of account rotation/hijacking",
		},
		{
			Step:   8,
			Title:  "Search for Profile Reuse",
			Action: fmt.Sprintf("Search Google for: %q site:linkedin.com", username),
			CriticalFlags: []string{
				"Search results show cached pages with different name",
				"Evidence of recent name change",
			},
		},
	}
}
