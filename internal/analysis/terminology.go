package analysis

import (
	"strings"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// CheckTerminology scans for known misspellings of industry tool names.
// Table order fixes the order of reported errors.
func (a *Analyzer) CheckTerminology(text string) domain.Terminology {
	lower := strings.ToLower(text)
	res := domain.Terminology{Errors: []domain.TerminologyError{}}
	for _, tc := range a.rules.TermCorrections {
		if strings.Contains(lower, tc.Found) {
			res.Errors = append(res.Errors, domain.TerminologyError{
				Found:    tc.Found,
				ShouldBe: tc.Canonical,
				Context:  "Possible typo or lack of familiarity with technology",
			})
		}
	}
	res.ErrorCount = len(res.Errors)
	res.HasErrors = res.ErrorCount > 0
	return res
}
