package rules

import (
	"regexp"

	"github.com/Tharun135/docscan"
)

var _ docscan.Rule = (*Terminology)(nil)

// Terminology flags nonpreferred terms and supplies the standard
// replacement. The default table follows common style guide conventions;
// additional pairs can be registered with AddTerm.
type Terminology struct {
	entries []termEntry
}

type termEntry struct {
	re        *regexp.Regexp
	preferred string
}

// defaultTerms maps nonpreferred spellings to preferred ones.
var defaultTerms = []struct {
	pattern   string
	preferred string
}{
	{`e-mail`, "email"},
	{`web site`, "website"},
	{`web-site`, "website"},
	{`data base`, "database"},
	{`on-line`, "online"},
	{`back-end`, "backend"},
	{`front-end`, "frontend"},
	{`log into`, "log in to"},
	{`login to`, "log in to"},
	{`whitelist`, "allowlist"},
	{`blacklist`, "blocklist"},
	{`master/slave`, "primary/replica"},
	{`sanity check`, "consistency check"},
}

// NewTerminology creates the terminology rule with the default term table.
func NewTerminology() *Terminology {
	t := &Terminology{}
	for _, term := range defaultTerms {
		t.AddTerm(term.pattern, term.preferred)
	}
	return t
}

// AddTerm registers a nonpreferred term pattern and its replacement.
// The pattern is matched case-insensitively on word boundaries.
func (r *Terminology) AddTerm(pattern, preferred string) {
	r.entries = append(r.entries, termEntry{
		re:        regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(pattern) + `\b`),
		preferred: preferred,
	})
}

// Name implements docscan.Rule.
func (r *Terminology) Name() string { return "terminology" }

// Category implements docscan.Rule.
func (r *Terminology) Category() docscan.Category { return docscan.CategoryTerminology }

// Check implements docscan.Rule.
func (r *Terminology) Check(sentence docscan.Sentence) []docscan.Issue {
	var issues []docscan.Issue

	for _, entry := range r.entries {
		for _, loc := range entry.re.FindAllStringIndex(sentence.Text, -1) {
			match := sentence.Text[loc[0]:loc[1]]
			issues = append(issues, docscan.Issue{
				Rule:        r.Name(),
				Category:    r.Category(),
				Severity:    docscan.SeverityInfo,
				Message:     "prefer " + quote(entry.preferred) + " over " + quote(match),
				Match:       match,
				Replacement: entry.preferred,
				Sentence:    sentence.Text,
				Start:       loc[0],
				End:         loc[1],
			})
		}
	}

	return issues
}
