// Package textx provides small text utilities used across the project.
package textx

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`\b\w+\b`)

var sentenceRe = regexp.MustCompile(`[.!?]+`)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Words returns the lowercased word tokens of s.
func Words(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}

// Sentences splits s on sentence terminators and returns trimmed parts longer
// than minLen characters.
func Sentences(s string, minLen int) []string {
	parts := sentenceRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > minLen {
			out = append(out, p)
		}
	}
	return out
}

// SentenceCount returns the raw number of terminator-delimited segments,
// including empty trailing segments. Kept raw so ratio checks line up with the
// semicolon heuristic.
func SentenceCount(s string) int {
	return len(sentenceRe.Split(s, -1))
}
