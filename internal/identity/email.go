// Package identity implements the candidate identity checks: email and phone
// normalization, LinkedIn profile vetting, and the online-presence report.
// External signals that cannot be resolved without authentication come back as
// explicit ManualCheck values, never as silent negatives.
package identity

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

var disposableDomains = []string{
	"tempmail", "guerrillamail", "10minutemail", "throwaway",
	"mailinator", "yopmail", "temp-mail", "fakeinbox",
}

var freeProviders = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"hotmail.com": {},
	"outlook.com": {},
	"aol.com":     {},
}

var suspiciousEmailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+@`),
	regexp.MustCompile(`@\d+\.`),
	regexp.MustCompile(`[a-z]{20,}@`),
}

var emailValidate = validator.New(validator.WithRequiredStructEnabled())

// CheckEmail classifies a candidate email address. All signals are computed
// from the address itself; deliverability and breach history are out of scope
// here and stay on the manual checklist.
func CheckEmail(email string) domain.EmailSignals {
	if email == "" {
		return domain.EmailSignals{Error: "No email provided"}
	}
	res := domain.EmailSignals{Provided: true, Address: email, Flags: []string{}}
	if err := emailValidate.Var(email, "email"); err != nil {
		res.Error = "Invalid email format"
		res.IsSuspicious = true
		return res
	}
	res.Valid = true
	res.Domain = email[strings.LastIndex(email, "@")+1:]

	domainLower := strings.ToLower(res.Domain)
	for _, disp := range disposableDomains {
		if strings.Contains(domainLower, disp) {
			res.IsDisposable = true
			res.Flags = append(res.Flags, "Disposable email domain")
			break
		}
	}
	for _, re := range suspiciousEmailPatterns {
		if re.MatchString(strings.ToLower(email)) {
			res.IsSuspicious = true
			res.Flags = append(res.Flags, "Suspicious pattern: "+re.String())
		}
	}
	_, res.IsFreeProvider = freeProviders[domainLower]
	return res
}
