package analysis

import (
	"sort"
	"strings"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// AnalyzeAuthenticity bundles the fabrication-pattern signals for one resume.
func (a *Analyzer) AnalyzeAuthenticity(text, jobDescription string) domain.Authenticity {
	return domain.Authenticity{
		GenericContent:         a.CheckGenericContent(text, jobDescription),
		UnrealisticProgression: a.CheckCareerProgression(text),
		BuzzwordDensity:        a.CalculateBuzzwordDensity(text),
		TrapTerms:              a.CheckTrapTerms(text),
		Specificity:            a.CalculateSpecificity(text),
	}
}

// CheckGenericContent measures what share of the job description's 3+-word
// phrases appear verbatim in the resume. An absent job description disables
// the check (zero match, not an error).
func (a *Analyzer) CheckGenericContent(text, jobDescription string) domain.GenericContent {
	if jobDescription == "" {
		return domain.GenericContent{}
	}
	resumeLower := strings.ToLower(text)
	jdLower := strings.ToLower(jobDescription)

	phrases := make(map[string]struct{})
	for _, p := range a.jdPhraseRe.FindAllString(jdLower, -1) {
		phrases[p] = struct{}{}
	}
	if len(phrases) == 0 {
		return domain.GenericContent{}
	}
	matched := 0
	for p := range phrases {
		if strings.Contains(resumeLower, p) {
			matched++
		}
	}
	pct := round2(float64(matched) / float64(len(phrases)) * 100)
	return domain.GenericContent{IsGeneric: pct > 80, MatchPercentage: pct}
}

// CheckCareerProgression looks for junior-to-senior/lead jumps inside a
// two-year window across date-bearing title lines.
func (a *Analyzer) CheckCareerProgression(text string) domain.CareerProgression {
	type position struct {
		line string
		year int
	}
	var positions []position
	for _, line := range strings.Split(text, "\n") {
		m := a.yearRangeRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, titleRe := range a.titleRes {
			if titleRe.MatchString(line) {
				year, ok := a.yearOf(m[1])
				if ok {
					positions = append(positions, position{line: line, year: year})
				}
				break
			}
		}
	}

	rapid := false
	if len(positions) >= 2 {
		sort.SliceStable(positions, func(i, j int) bool { return positions[i].year < positions[j].year })
		for i := 0; i < len(positions)-1; i++ {
			if positions[i+1].year-positions[i].year >= 2 {
				continue
			}
			earlier := strings.ToLower(positions[i].line)
			later := strings.ToLower(positions[i+1].line)
			if strings.Contains(earlier, "junior") && (strings.Contains(later, "senior") || strings.Contains(later, "lead")) {
				rapid = true
			}
		}
	}
	return domain.CareerProgression{HasRapidProgression: rapid, PositionsFound: len(positions)}
}

// CalculateBuzzwordDensity reports the percentage of words carrying a
// buzzword from the fixed table.
func (a *Analyzer) CalculateBuzzwordDensity(text string) domain.BuzzwordDensity {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return domain.BuzzwordDensity{}
	}
	count := 0
	for _, w := range words {
		for _, buzz := range a.rules.Buzzwords {
			if strings.Contains(w, buzz) {
				count++
				break
			}
		}
	}
	density := round2(float64(count) / float64(len(words)) * 100)
	return domain.BuzzwordDensity{
		Density:       density,
		BuzzwordCount: count,
		IsExcessive:   density > 5,
	}
}

// CheckTrapTerms scans for planted trap terms. Any hit is a critical signal.
func (a *Analyzer) CheckTrapTerms(text string) domain.TrapTerms {
	lower := strings.ToLower(text)
	found := []string{}
	for _, trap := range a.rules.TrapTerms {
		if strings.Contains(lower, strings.ToLower(trap)) {
			found = append(found, trap)
		}
	}
	return domain.TrapTerms{
		HasTrapTerms: len(found) > 0,
		TermsFound:   found,
		CriticalFlag: len(found) > 0,
	}
}

// CalculateSpecificity scores concrete detail: metric mentions x5, version
// references x3, implemented/designed/built phrases x2, capped at 100.
func (a *Analyzer) CalculateSpecificity(text string) domain.Specificity {
	metrics := len(a.metricsRe.FindAllString(text, -1))
	versions := len(a.versionRe.FindAllString(text, -1))
	details := len(a.detailRe.FindAllString(text, -1))

	score := metrics*5 + versions*3 + details*2
	if score > 100 {
		score = 100
	}
	return domain.Specificity{
		Score:             score,
		MetricsCount:      metrics,
		VersionReferences: versions,
		SpecificDetails:   details,
		IsVague:           score < 30,
	}
}
