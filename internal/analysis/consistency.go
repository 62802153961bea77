package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// CheckConsistency extracts every start-end date range from the text and
// validates the timeline: end-before-start and future end dates are errors,
// intersecting ranges are reported as overlaps. Total experience sums every
// range without deduplicating overlaps; that raw signal is intentional, the
// overlap report covers the double counting.
func (a *Analyzer) CheckConsistency(text string) domain.Consistency {
	res := domain.Consistency{
		DatesValid:             true,
		CareerProgressionValid: true,
		Overlaps:               []string{},
		DateErrors:             []string{},
	}

	currentYear := a.now().Year()
	matches := a.dateRangeRe.FindAllStringSubmatch(text, -1)

	type span struct{ start, end int }
	spans := make([]span, 0, len(matches))
	total := 0
	for _, m := range matches {
		startYear, ok := a.yearOf(m[1])
		if !ok {
			continue
		}
		endStr := strings.ToLower(m[2])
		var endYear int
		if endStr == "present" || endStr == "current" {
			endYear = currentYear
		} else {
			endYear, ok = a.yearOf(m[2])
			if !ok {
				continue
			}
		}

		if endYear < startYear {
			res.DateErrors = append(res.DateErrors, fmt.Sprintf("End date before start date: %s - %s", m[1], m[2]))
		} else if endYear > currentYear {
			res.DateErrors = append(res.DateErrors, fmt.Sprintf("Future end date: %s", m[2]))
		}

		spans = append(spans, span{start: startYear, end: endYear})
		total += endYear - startYear
	}

	for i, s1 := range spans {
		for _, s2 := range spans[i+1:] {
			if (s1.start <= s2.start && s2.start <= s1.end) || (s2.start <= s1.start && s1.start <= s2.end) {
				res.Overlaps = append(res.Overlaps, fmt.Sprintf("Overlapping dates: %d-%d and %d-%d", s1.start, s1.end, s2.start, s2.end))
			}
		}
	}

	res.DatesValid = len(res.DateErrors) == 0
	res.HasOverlaps = len(res.Overlaps) > 0
	res.TotalExperienceYears = total
	res.CareerProgressionValid = total >= 0
	return res
}

func (a *Analyzer) yearOf(s string) (int, bool) {
	y := a.yearRe.FindString(s)
	if y == "" {
		return 0, false
	}
	n, err := strconv.Atoi(y)
	if err != nil {
		return 0, false
	}
	return n, true
}
