package domain

// EmailSignals classifies a candidate email address. Every field is computed
// locally from the address itself; breach history stays a ManualCheck.
type EmailSignals struct {
	Provided       bool     `json:"provided"`
	Valid          bool     `json:"valid"`
	Address        string   `json:"email,omitempty"`
	Domain         string   `json:"domain,omitempty"`
	IsDisposable   bool     `json:"is_disposable"`
	IsSuspicious   bool     `json:"is_suspicious"`
	IsFreeProvider bool     `json:"is_free_provider"`
	Flags          []string `json:"flags,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// PhoneSignals classifies a candidate phone number after normalization.
type PhoneSignals struct {
	Provided  bool     `json:"provided"`
	Valid     bool     `json:"valid"`
	Formatted string   `json:"formatted,omitempty"`
	Region    string   `json:"country,omitempty"`
	IsMobile  bool     `json:"is_mobile"`
	IsVOIP    bool     `json:"is_voip"`
	Flags     []string `json:"flags,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// ManualCheck is the explicit "manual verification required" sentinel returned
// when an external collaborator cannot resolve a signal. Consumers must branch
// on it rather than treat the signal as negative.
type ManualCheck struct {
	RequiresManualCheck bool     `json:"requires_manual_check"`
	Instructions        string   `json:"instructions"`
	CheckURL            string   `json:"check_url,omitempty"`
	SearchQueries       []string `json:"search_queries,omitempty"`
	RedFlags            []string `json:"red_flags,omitempty"`
	ExpectedResults     []string `json:"expected_results,omitempty"`
	Note                string   `json:"note,omitempty"`
}

// GitHubProfile is one resolved profile candidate from the users API.
type GitHubProfile struct {
	Username    string `json:"username"`
	ProfileURL  string `json:"profile_url"`
	Name        string `json:"name,omitempty"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// GitHubPresence is the resolved GitHub lookup result.
type GitHubPresence struct {
	Exists   bool            `json:"exists"`
	Profiles []GitHubProfile `json:"profiles_found,omitempty"`
	Note     string          `json:"note,omitempty"`
}

// ArchiveSnapshot is the resolved Wayback Machine availability result.
type ArchiveSnapshot struct {
	HasArchive bool   `json:"has_archive"`
	URL        string `json:"archive_url,omitempty"`
	Timestamp  string `json:"archive_date,omitempty"`
	Note       string `json:"note,omitempty"`
}

// LinkedInURLCheck holds the automated, unauthenticated checks over a profile
// URL and its username.
type LinkedInURLCheck struct {
	URLFormatValid     bool   `json:"url_format_valid"`
	Username           string `json:"username"`
	SuspiciousUsername bool   `json:"suspicious_username_pattern"`
	PatternMatched     string `json:"username_pattern_matched,omitempty"`
	UsernameTooShort   bool   `json:"username_too_short"`
}

// ChecklistItem is one step of the manual LinkedIn verification checklist.
type ChecklistItem struct {
	Step          int      `json:"step"`
	Title         string   `json:"title"`
	Action        string   `json:"action"`
	CriticalFlags []string `json:"critical_flags,omitempty"`
	WarningFlags  []string `json:"warning_flags,omitempty"`
	Tools         []string `json:"tools,omitempty"`
	Note          string   `json:"note,omitempty"`
}

// LinkedInReport is the full LinkedIn verification output: automated checks,
// an optional archive snapshot, a risk score over the automated findings, and
// the manual checklist.
type LinkedInReport struct {
	ProfileURL string           `json:"profile_url"`
	Username   string           `json:"username"`
	Checks     LinkedInURLCheck `json:"automated_checks"`
	Archive    *ArchiveSnapshot `json:"wayback_machine_check,omitempty"`
	RiskScore  int              `json:"risk_score"`
	RiskLevel  RiskLevel        `json:"risk_level"`
	Checklist  []ChecklistItem  `json:"manual_checks_required"`
}

// LinkedInSignals are externally resolved profile facts consumed by the
// comprehensive scorer. A nil *LinkedInSignals means "not checked" and the
// whole weighted term is excluded from the blend.
type LinkedInSignals struct {
	RecentlyCreated      bool `json:"recently_created"`
	HasVerificationBadge bool `json:"has_verification_badge"`
	LowConnections       bool `json:"low_connections"`
	VagueExperience      bool `json:"vague_experience"`
}

// PresenceSignals summarize the online-footprint checks. Pointer fields
// distinguish "checked: negative" (false) from "not checked" (nil); only an
// explicit negative contributes risk points.
type PresenceSignals struct {
	HasLinkedIn       *bool `json:"has_linkedin,omitempty"`
	HasGitHub         *bool `json:"has_github,omitempty"`
	HasGooglePresence *bool `json:"has_google_presence,omitempty"`
	EmailSuspicious   bool  `json:"email_suspicious"`
}

// CandidateInfo is the auxiliary metadata supplied alongside a resume.
type CandidateInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// OSINTRecommendation points the reviewer at one external lookup tool.
type OSINTRecommendation struct {
	Tool    string `json:"tool"`
	URL     string `json:"url"`
	Purpose string `json:"purpose"`
	Action  string `json:"action"`
}

// PresenceReport is the assembled online-presence verification output.
type PresenceReport struct {
	Candidate     CandidateInfo         `json:"candidate_info"`
	Email         EmailSignals          `json:"email"`
	Phone         PhoneSignals          `json:"phone"`
	GitHub        *GitHubPresence       `json:"github,omitempty"`
	GitHubManual  *ManualCheck          `json:"github_manual,omitempty"`
	LinkedIn      ManualCheck           `json:"linkedin"`
	Google        ManualCheck           `json:"google"`
	Breaches      ManualCheck           `json:"data_breaches"`
	RedFlags      []Finding             `json:"red_flags"`
	Warnings      []Finding             `json:"warnings"`
	OSINT         []OSINTRecommendation `json:"osint_recommendations"`
	PresenceScore int                   `json:"presence_score"`
	PresenceLevel string                `json:"presence_level"`
	Signals       PresenceSignals       `json:"signals"`
}

// ComprehensiveReport combines resume heuristics with identity verification
// into the blended risk assessment.
type ComprehensiveReport struct {
	Candidate  CandidateInfo   `json:"candidate_info"`
	Resume     HeuristicBundle `json:"resume_verification"`
	LinkedIn   *LinkedInReport `json:"linkedin,omitempty"`
	Presence   PresenceReport  `json:"presence"`
	Assessment RiskAssessment  `json:"overall"`
}
