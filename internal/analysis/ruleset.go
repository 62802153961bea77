package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TermCorrection maps a known misspelling to the canonical tool name.
// Matching is case-insensitive substring, so entries also hit inside longer
// words; the table is data and can be tuned without touching the checker.
type TermCorrection struct {
	Found     string `yaml:"found"`
	Canonical string `yaml:"canonical"`
}

// Ruleset holds the declarative lookup tables consumed by the Analyzer.
// Tables are fixed after construction; the Analyzer never mutates them.
type Ruleset struct {
	AIPatterns      []string         `yaml:"ai_patterns"`
	FormalStarters  []string         `yaml:"formal_starters"`
	ActionVerbs     []string         `yaml:"action_verbs"`
	Colloquialisms  []string         `yaml:"colloquialisms"`
	TrapTerms       []string         `yaml:"trap_terms"`
	Buzzwords       []string         `yaml:"buzzwords"`
	TermCorrections []TermCorrection `yaml:"term_corrections"`
}

// DefaultRuleset returns the built-in tables tuned for DevOps screening.
func DefaultRuleset() Ruleset {
	return Ruleset{
		AIPatterns: []string{
			`as an? (?:experienced|seasoned|dedicated|passionate)`,
			`results?-driven`,
			`proven track record`,
			`extensive experience in`,
			`highly motivated`,
			`team player`,
			`detail-oriented`,
			`excellent (?:communication|problem-solving) skills`,
			`throughout my career`,
			`leveraged? (?:cutting-edge|state-of-the-art)`,
			`spearheaded`,
			`championed`,
			`orchestrated`,
			`comprehensive understanding of`,
			`adept at`,
			`proficient in`,
		},
		FormalStarters: []string{
			"furthermore", "moreover", "additionally", "in addition",
			"consequently", "therefore", "thus", "hence",
		},
		ActionVerbs: []string{
			"developed", "implemented", "created", "designed", "built",
			"managed", "led", "orchestrated", "spearheaded", "championed",
			"optimized", "streamlined", "enhanced", "improved",
		},
		Colloquialisms: []string{
			"got", "gonna", "wanna", "kinda", "sorta", "&", "etc.", "i.e.", "e.g.",
		},
		TrapTerms: []string{
			"back-office engineering",
		},
		Buzzwords: []string{
			"synergy", "paradigm shift", "blockchain", "ai/ml", "cloud-native",
			"microservices", "kubernetes", "docker", "terraform", "ansible",
			"ci/cd", "devops", "agile", "scrum", "serverless",
		},
		TermCorrections: []TermCorrection{
			{Found: "kubenetes", Canonical: "kubernetes"},
			{Found: "dock", Canonical: "docker"},
			{Found: "jenkin", Canonical: "jenkins"},
			{Found: "anisble", Canonical: "ansible"},
		},
	}
}

// LoadRuleset reads a YAML override file and merges non-empty tables over the
// defaults. An empty path returns the defaults unchanged.
func LoadRuleset(path string) (Ruleset, error) {
	rs := DefaultRuleset()
	if path == "" {
		return rs, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("op=analysis.LoadRuleset: %w", err)
	}
	var override Ruleset
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Ruleset{}, fmt.Errorf("op=analysis.LoadRuleset: %w", err)
	}
	rs.merge(override)
	return rs, nil
}

func (r *Ruleset) merge(o Ruleset) {
	if len(o.AIPatterns) > 0 {
		r.AIPatterns = o.AIPatterns
	}
	if len(o.FormalStarters) > 0 {
		r.FormalStarters = o.FormalStarters
	}
	if len(o.ActionVerbs) > 0 {
		r.ActionVerbs = o.ActionVerbs
	}
	if len(o.Colloquialisms) > 0 {
		r.Colloquialisms = o.Colloquialisms
	}
	if len(o.TrapTerms) > 0 {
		r.TrapTerms = o.TrapTerms
	}
	if len(o.Buzzwords) > 0 {
		r.Buzzwords = o.Buzzwords
	}
	if len(o.TermCorrections) > 0 {
		r.TermCorrections = o.TermCorrections
	}
}
