package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/pkg/textx"
)

// Minimum sample sizes below which statistical checks return neutral zeros
// instead of scoring.
const (
	minSentences  = 5
	minWords      = 50
	minBullets    = 5
	minSentenceCh = 10
)

// DetectAIContent combines six independent heuristics into a confidence that
// the resume text was machine-generated. Partial scores are summed, capped at
// 100 and normalized to [0,1]; the text is flagged when confidence > 0.6.
func (a *Analyzer) DetectAIContent(text string) domain.AIDetection {
	res := domain.AIDetection{Indicators: []domain.Finding{}}

	patternCount, examples := a.countAIPatterns(text)
	res.PatternMatches = patternCount
	if patternCount > 5 {
		if len(examples) > 3 {
			examples = examples[:3]
		}
		res.Indicators = append(res.Indicators, domain.Finding{
			Kind:        "COMMON_AI_PHRASES",
			Severity:    domain.SeverityWarning,
			Description: fmt.Sprintf("Found %d common AI-generated phrases", patternCount),
			Evidence:    map[string]any{"examples": examples},
		})
	}

	uniformity := a.sentenceUniformity(text)
	res.SentenceUniformity = uniformity
	if uniformity > 0.7 {
		res.Indicators = append(res.Indicators, domain.Finding{
			Kind:        "UNIFORM_SENTENCE_STRUCTURE",
			Severity:    domain.SeverityWarning,
			Description: "Sentences have suspiciously uniform structure (typical of AI)",
			Evidence:    map[string]any{"score": uniformity},
		})
	}

	ttr, ttrMeasured := a.vocabularyDiversity(text)
	res.VocabularyDiversity = ttr
	if ttrMeasured {
		if ttr > 0.8 {
			res.Indicators = append(res.Indicators, domain.Finding{
				Kind:        "EXCESSIVE_VOCABULARY",
				Severity:    domain.SeverityWarning,
				Description: "Unnaturally high vocabulary diversity",
				Evidence:    map[string]any{"score": ttr},
			})
		} else if ttr < 0.3 {
			res.Indicators = append(res.Indicators, domain.Finding{
				Kind:        "REPETITIVE_VOCABULARY",
				Severity:    domain.SeverityWarning,
				Description: "Extremely repetitive word usage",
				Evidence:    map[string]any{"score": ttr},
			})
		}
	}

	grammarPerfect, grammarDetails := a.perfectGrammar(text)
	if grammarPerfect {
		res.Indicators = append(res.Indicators, domain.Finding{
			Kind:        "OVERLY_PERFECT_GRAMMAR",
			Severity:    domain.SeverityWarning,
			Description: "Grammar is suspiciously perfect (no common human errors)",
			Evidence:    map[string]any{"details": grammarDetails},
		})
	}

	repetitive, patternType, bulletDetail := a.repetitiveBullets(text)
	if repetitive {
		res.Indicators = append(res.Indicators, domain.Finding{
			Kind:        "REPETITIVE_STRUCTURE",
			Severity:    domain.SeverityWarning,
			Description: fmt.Sprintf("Bullet points follow identical structure (%s)", patternType),
			Evidence:    map[string]any{"details": bulletDetail},
		})
	}

	lacksVoice, voiceScore := a.personalVoice(text)
	if lacksVoice {
		res.Indicators = append(res.Indicators, domain.Finding{
			Kind:        "LACKS_PERSONALITY",
			Severity:    domain.SeverityWarning,
			Description: "Resume lacks personal voice and specific anecdotes",
			Evidence:    map[string]any{"score": voiceScore},
		})
	}

	var pts float64
	switch {
	case patternCount > 8:
		pts += 30
	case patternCount > 5:
		pts += 20
	case patternCount > 3:
		pts += 10
	}
	pts += uniformity * 20
	if ttrMeasured && (ttr > 0.75 || ttr < 0.35) {
		pts += 15
	}
	if grammarPerfect {
		pts += 15
	}
	if repetitive {
		pts += 10
	}
	if lacksVoice {
		pts += 10
	}

	res.Confidence = round2(math.Min(pts, 100) / 100)
	res.IsAIGenerated = res.Confidence > 0.6
	return res
}

func (a *Analyzer) countAIPatterns(text string) (int, []string) {
	lower := strings.ToLower(text)
	var examples []string
	count := 0
	for _, re := range a.aiPatterns {
		found := re.FindAllString(lower, -1)
		count += len(found)
		examples = append(examples, found...)
	}
	return count, examples
}

// sentenceUniformity measures how even sentence lengths are. Low variance is
// the suspicious case. Fewer than five qualifying sentences is insufficient
// signal, not uniformity.
func (a *Analyzer) sentenceUniformity(text string) float64 {
	sentences := textx.Sentences(text, minSentenceCh)
	if len(sentences) < minSentences {
		return 0
	}
	lengths := make([]float64, len(sentences))
	var sum float64
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))
	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))
	stddev := math.Sqrt(variance)
	uniformity := math.Max(0, 1-stddev/10)

	// Bullets all opening with action verbs push uniformity up on their own.
	bullets := a.bulletFirstWordRe.FindAllStringSubmatch(text, -1)
	if len(bullets) > 3 {
		actionStarts := 0
		for _, b := range bullets {
			if _, ok := a.actionVerbs[strings.ToLower(b[1])]; ok {
				actionStarts++
			}
		}
		if float64(actionStarts)/float64(len(bullets)) > 0.9 {
			uniformity = math.Max(uniformity, 0.8)
		}
	}
	return round2(uniformity)
}

// vocabularyDiversity returns the type-token ratio and whether the sample was
// large enough to measure it.
func (a *Analyzer) vocabularyDiversity(text string) (float64, bool) {
	words := textx.Words(text)
	if len(words) < minWords {
		return 0, false
	}
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	return round2(float64(len(unique)) / float64(len(words))), true
}

func (a *Analyzer) perfectGrammar(text string) (bool, []string) {
	var details []string
	lower := strings.ToLower(text)

	hasColloquialisms := false
	for _, c := range a.rules.Colloquialisms {
		if strings.Contains(lower, c) {
			hasColloquialisms = true
			break
		}
	}
	if !hasColloquialisms && len(text) > 200 {
		details = append(details, "No informal language or colloquialisms")
	}

	formalStarts := 0
	for _, s := range a.rules.FormalStarters {
		if strings.Contains(lower, s) {
			formalStarts++
		}
	}
	if formalStarts > 3 {
		details = append(details, fmt.Sprintf("Uses %d overly formal sentence starters", formalStarts))
	}

	semicolons := strings.Count(text, ";")
	if float64(semicolons) > float64(textx.SentenceCount(text))*0.1 {
		details = append(details, "Excessive use of semicolons")
	}

	return len(details) >= 2, details
}

func (a *Analyzer) repetitiveBullets(text string) (bool, string, string) {
	matches := a.bulletLineRe.FindAllStringSubmatch(text, -1)
	if len(matches) < minBullets {
		return false, "", ""
	}
	var starts []string
	for _, m := range matches {
		fields := strings.Fields(m[1])
		if len(fields) > 0 {
			starts = append(starts, strings.ToLower(fields[0]))
		}
	}
	actionStarts := 0
	for _, s := range starts {
		if _, ok := a.actionVerbs[s]; ok {
			actionStarts++
		}
	}
	repetitive := len(starts) > 0 && float64(actionStarts)/float64(len(starts)) > 0.85

	toMatches := 0
	for _, m := range matches {
		if a.verbToOutcomeRe.MatchString(m[1]) {
			toMatches++
		}
	}
	patternType := "action-verb-start"
	if float64(toMatches)/float64(len(matches)) > 0.7 {
		repetitive = true
		patternType = "verb-noun-to-outcome"
	}
	if !repetitive {
		return false, "", ""
	}
	detail := fmt.Sprintf("%d/%d bullets start with action verbs", actionStarts, len(starts))
	return true, patternType, detail
}

// personalVoice counts signals that a human wrote the text: first-person
// pronouns, CamelCase project names, concrete metrics, informal touches.
func (a *Analyzer) personalVoice(text string) (bool, float64) {
	lower := strings.ToLower(text)
	indicators := 0
	if a.firstPersonRe.MatchString(lower) {
		indicators++
	}
	if len(a.camelCaseRe.FindAllString(text, -1)) > 2 {
		indicators++
	}
	if len(a.personalMetricRe.FindAllString(text, -1)) > 3 {
		indicators++
	}
	if strings.Contains(text, "&") || strings.Contains(lower, "etc") {
		indicators++
	}
	score := round2(float64(indicators) / 4)
	return score < 0.25, score
}
