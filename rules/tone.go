package rules

import (
	"regexp"
	"strings"

	"github.com/Tharun135/docscan"
)

var _ docscan.Rule = (*Tone)(nil)

// Tone flags informal or opinionated phrasing that does not belong in
// technical documentation.
type Tone struct {
	informalRe *regexp.Regexp
	opinionRe  *regexp.Regexp
}

// NewTone creates the tone rule.
func NewTone() *Tone {
	return &Tone{
		informalRe: regexp.MustCompile(`(?i)\b(?:awesome|cool|super|amazing|gonna|wanna|gotta|kinda|sorta|a lot of|tons of)\b`),
		opinionRe:  regexp.MustCompile(`(?i)\b(?:I think|I believe|I feel|in my opinion|personally)\b`),
	}
}

// Name implements docscan.Rule.
func (r *Tone) Name() string { return "tone" }

// Category implements docscan.Rule.
func (r *Tone) Category() docscan.Category { return docscan.CategoryTone }

// Check implements docscan.Rule.
func (r *Tone) Check(sentence docscan.Sentence) []docscan.Issue {
	var issues []docscan.Issue

	for _, loc := range r.informalRe.FindAllStringIndex(sentence.Text, -1) {
		issues = append(issues, docscan.Issue{
			Rule:     r.Name(),
			Category: r.Category(),
			Severity: docscan.SeverityInfo,
			Message:  "informal word " + quote(sentence.Text[loc[0]:loc[1]]) + "; keep a neutral register",
			Match:    sentence.Text[loc[0]:loc[1]],
			Sentence: sentence.Text,
			Start:    loc[0],
			End:      loc[1],
		})
	}

	for _, loc := range r.opinionRe.FindAllStringIndex(sentence.Text, -1) {
		issues = append(issues, docscan.Issue{
			Rule:     r.Name(),
			Category: r.Category(),
			Severity: docscan.SeverityInfo,
			Message:  "opinion hedge " + quote(sentence.Text[loc[0]:loc[1]]) + "; state the recommendation directly",
			Match:    sentence.Text[loc[0]:loc[1]],
			Sentence: sentence.Text,
			Start:    loc[0],
			End:      loc[1],
		})
	}

	if idx := strings.Index(sentence.Text, "!"); idx >= 0 {
		issues = append(issues, docscan.Issue{
			Rule:     r.Name(),
			Category: r.Category(),
			Severity: docscan.SeverityInfo,
			Message:  "exclamation mark; technical prose stays calm",
			Match:    "!",
			Sentence: sentence.Text,
			Start:    idx,
			End:      idx + 1,
		})
	}

	return issues
}
