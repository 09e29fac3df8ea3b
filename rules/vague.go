package rules

import (
	"regexp"

	"github.com/Tharun135/docscan"
)

var _ docscan.Rule = (*VagueTerms)(nil)

// VagueTerms flags filler words and imprecise quantifiers that weaken
// technical writing.
type VagueTerms struct {
	patterns []vaguePattern
}

type vaguePattern struct {
	re      *regexp.Regexp
	message string
}

// NewVagueTerms creates the vague terms rule.
func NewVagueTerms() *VagueTerms {
	terms := []struct {
		expr    string
		message string
	}{
		{`\b(?:simply|just|easily)\b`, "minimizing word; what is easy for the writer may not be for the reader"},
		{`\b(?:obviously|of course|clearly|needless to say)\b`, "assumes reader knowledge; state the fact without commentary"},
		{`\b(?:basically|essentially|actually|generally)\b`, "filler word that adds no information"},
		{`\b(?:very|quite|really|extremely)\b`, "intensifier without a measurable claim"},
		{`\b(?:several|various|numerous|a number of|a few)\b`, "imprecise quantifier; give a number or range"},
		{`\betc\.|\b(?:and so on|and more)\b`, "open-ended list; enumerate the items or say what they have in common"},
		{`\b(?:stuff|things)\b`, "imprecise noun; name the objects"},
	}

	patterns := make([]vaguePattern, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, vaguePattern{
			re:      regexp.MustCompile(`(?i)` + term.expr),
			message: term.message,
		})
	}
	return &VagueTerms{patterns: patterns}
}

// Name implements docscan.Rule.
func (r *VagueTerms) Name() string { return "vague-terms" }

// Category implements docscan.Rule.
func (r *VagueTerms) Category() docscan.Category { return docscan.CategoryVagueTerms }

// Check implements docscan.Rule.
func (r *VagueTerms) Check(sentence docscan.Sentence) []docscan.Issue {
	var issues []docscan.Issue

	for _, pattern := range r.patterns {
		for _, loc := range pattern.re.FindAllStringIndex(sentence.Text, -1) {
			issues = append(issues, docscan.Issue{
				Rule:     r.Name(),
				Category: r.Category(),
				Severity: docscan.SeverityInfo,
				Message:  "vague term " + quote(sentence.Text[loc[0]:loc[1]]) + ": " + pattern.message,
				Match:    sentence.Text[loc[0]:loc[1]],
				Sentence: sentence.Text,
				Start:    loc[0],
				End:      loc[1],
			})
		}
	}

	return issues
}

func quote(s string) string {
	return `"` + s + `"`
}
