// Package report renders batch screening results as HTML and plain-text
// reports for reviewers.
package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// Generator renders batch results. Safe for concurrent use; the template is
// parsed once at construction.
type Generator struct {
	tmpl *template.Template
	now  func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New constructs a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		tmpl: template.Must(template.New("batch").Funcs(template.FuncMap{
			"lower":      strings.ToLower,
			"badgeClass": badgeClass,
			"name":       nameOrUnknown,
			"add1":       func(i int) int { return i + 1 },
		}).Parse(htmlTemplate)),
		now: time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func badgeClass(level domain.RiskLevel) string {
	switch level {
	case domain.RiskCritical:
		return "badge-critical"
	case domain.RiskHigh:
		return "badge-high"
	case domain.RiskMedium:
		return "badge-medium"
	default:
		return "badge-low"
	}
}

type htmlData struct {
	Timestamp    string
	Result       domain.BatchResult
	HighPriority []domain.BatchEntry
	LowMinimal   int
}

func highPriority(entries []domain.BatchEntry) []domain.BatchEntry {
	out := make([]domain.BatchEntry, 0)
	for _, e := range entries {
		if e.Assessment.Level == domain.RiskCritical || e.Assessment.Level == domain.RiskHigh {
			out = append(out, e)
		}
	}
	return out
}

// HTML renders the full dark-theme HTML report.
func (g *Generator) HTML(result domain.BatchResult) (string, error) {
	data := htmlData{
		Timestamp:    g.now().Format("2006-01-02 15:04:05"),
		Result:       result,
		HighPriority: highPriority(result.Entries),
		LowMinimal:   result.Summary.LowRisk + result.Summary.MinimalRisk,
	}
	var b strings.Builder
	if err := g.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: render report: %v", domain.ErrInternal, err)
	}
	return b.String(), nil
}

// Text renders the plain-text report.
func (g *Generator) Text(result domain.BatchResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	sep := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "%s\n        CANDIDATE VERIFICATION REPORT\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Generated: %s\n\n", g.now().Format("2006-01-02 15:04:05"))
	b.WriteString("SUMMARY STATISTICS\n" + sep + "\n")
	fmt.Fprintf(&b, "Total Processed:        %d\n", result.Processed)
	fmt.Fprintf(&b, "Critical Risk:          %d\n", result.Summary.CriticalRisk)
	fmt.Fprintf(&b, "High Risk:              %d\n", result.Summary.HighRisk)
	fmt.Fprintf(&b, "Medium Risk:            %d\n", result.Summary.MediumRisk)
	fmt.Fprintf(&b, "Low/Minimal Risk:       %d\n", result.Summary.LowRisk+result.Summary.MinimalRisk)
	fmt.Fprintf(&b, "AI Generated:           %d\n", result.Summary.AIGeneratedCount)
	fmt.Fprintf(&b, "Trap Terms Found:       %d\n\n", result.Summary.TrapTermsCount)

	b.WriteString("HIGH PRIORITY CANDIDATES (CRITICAL & HIGH RISK)\n" + sep + "\n")
	high := highPriority(result.Entries)
	if len(high) == 0 {
		b.WriteString("No high-priority fraud indicators detected.\n")
	}
	for i, e := range high {
		aiFlag := "NO"
		if e.AIGenerated {
			aiFlag = "YES"
		}
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, nameOrUnknown(e))
		fmt.Fprintf(&b, "   File: %s\n", e.Filename)
		fmt.Fprintf(&b, "   Risk Score: %d/100\n", e.Assessment.Score)
		fmt.Fprintf(&b, "   Risk Level: %s\n", e.Assessment.Level)
		fmt.Fprintf(&b, "   AI Generated: %s\n", aiFlag)
		fmt.Fprintf(&b, "   Red Flags: Critical=%d, Warning=%d, Minor=%d\n", e.CriticalFlags, e.WarningFlags, e.MinorFlags)
		fmt.Fprintf(&b, "   Recommendation: %s\n", e.Assessment.Recommendation)
		if e.Bundle != nil && len(e.Bundle.RedFlags.Critical) > 0 {
			b.WriteString("   CRITICAL RED FLAGS:\n")
			for _, f := range e.Bundle.RedFlags.Critical {
				fmt.Fprintf(&b, "   - %s: %s\n", f.Kind, f.Description)
			}
		}
	}

	b.WriteString("\nALL CANDIDATES SUMMARY\n" + sep + "\n")
	for i, e := range result.Entries {
		fmt.Fprintf(&b, "%d. %-40s Risk: %3d [%-8s]\n", i+1, nameOrUnknown(e), e.Assessment.Score, e.Assessment.Level)
	}

	b.WriteString("\n" + rule + "\n")
	b.WriteString("Report generated by Candidate Verification System v1.0\n")
	b.WriteString(rule + "\n")
	return b.String()
}

func nameOrUnknown(e domain.BatchEntry) string {
	if e.CandidateName == "" {
		return "Unknown"
	}
	return e.CandidateName
}
