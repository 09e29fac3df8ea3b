package rules

import (
	"regexp"

	"github.com/Tharun135/docscan"
)

var _ docscan.Rule = (*Accessibility)(nil)

// Accessibility flags phrasing that fails for screen reader users or for
// readers who cannot rely on visual layout or color.
type Accessibility struct {
	patterns []accessibilityPattern
}

type accessibilityPattern struct {
	re          *regexp.Regexp
	message     string
	replacement string
}

// NewAccessibility creates the accessibility rule.
func NewAccessibility() *Accessibility {
	return &Accessibility{patterns: []accessibilityPattern{
		{
			re:          regexp.MustCompile(`(?i)\bclick here\b`),
			message:     "link text must describe the destination; screen readers announce links out of context",
			replacement: "a descriptive link label",
		},
		{
			re:      regexp.MustCompile(`(?i)\b(?:see|shown|described|listed)\s+(?:above|below)\b`),
			message: "directional reference breaks in reflowed or linearized layouts; name the section instead",
		},
		{
			re:      regexp.MustCompile(`(?i)\b(?:the|this)\s+(?:image|figure|screenshot|diagram)\s+(?:above|below)\b`),
			message: "refer to figures by caption or number, not by position",
		},
		{
			re:      regexp.MustCompile(`(?i)\b(?:marked|shown|highlighted|displayed)\s+in\s+(?:red|green|blue|yellow|orange)\b`),
			message: "color alone is not perceivable by all readers; add a non-color cue",
		},
		{
			re:          regexp.MustCompile(`(?i)\babove-mentioned\b`),
			message:     "positional reference; name the item instead",
			replacement: "the named item",
		},
	}}
}

// Name implements docscan.Rule.
func (r *Accessibility) Name() string { return "accessibility" }

// Category implements docscan.Rule.
func (r *Accessibility) Category() docscan.Category { return docscan.CategoryAccessibility }

// Check implements docscan.Rule.
func (r *Accessibility) Check(sentence docscan.Sentence) []docscan.Issue {
	var issues []docscan.Issue

	for _, pattern := range r.patterns {
		for _, loc := range pattern.re.FindAllStringIndex(sentence.Text, -1) {
			issues = append(issues, docscan.Issue{
				Rule:        r.Name(),
				Category:    r.Category(),
				Severity:    docscan.SeverityWarning,
				Message:     pattern.message,
				Match:       sentence.Text[loc[0]:loc[1]],
				Replacement: pattern.replacement,
				Sentence:    sentence.Text,
				Start:       loc[0],
				End:         loc[1],
			})
		}
	}

	return issues
}
