package docscan

import (
	"fmt"
	"sort"
	"strings"
)

// ReportStats summarizes issues by severity and category.
type ReportStats struct {
	Sentences  int              `json:"sentences"`
	Issues     int              `json:"issues"`
	BySeverity map[Severity]int `json:"bySeverity,omitempty"`
	ByCategory map[Category]int `json:"byCategory,omitempty"`
}

// Report is the outcome of scanning one document.
type Report struct {
	Document *Document   `json:"document"`
	Issues   []Issue     `json:"issues"`
	Stats    ReportStats `json:"stats"`
}

// NewReport builds a report with computed stats.
func NewReport(doc *Document, issues []Issue, sentences int) *Report {
	stats := ReportStats{
		Sentences:  sentences,
		Issues:     len(issues),
		BySeverity: make(map[Severity]int),
		ByCategory: make(map[Category]int),
	}
	for _, issue := range issues {
		stats.BySeverity[issue.Severity]++
		stats.ByCategory[issue.Category]++
	}
	return &Report{Document: doc, Issues: issues, Stats: stats}
}

// MaxSeverity returns the most severe issue severity in the report.
// Returns false if the report has no issues.
func (r *Report) MaxSeverity() (Severity, bool) {
	if len(r.Issues) == 0 {
		return "", false
	}
	max := SeverityInfo
	for _, issue := range r.Issues {
		if issue.Severity.AtLeast(max) {
			max = issue.Severity
		}
	}
	return max, true
}

// FormatReport formats a report for terminal display.
// Issues are grouped in document order with a trailing summary line.
func FormatReport(r *Report) string {
	var sb strings.Builder

	name := r.Document.Name
	if name == "" {
		name = r.Document.SourcePath
	}
	fmt.Fprintf(&sb, "%s: %d issue(s) in %d sentence(s)\n", name, r.Stats.Issues, r.Stats.Sentences)

	for _, issue := range r.Issues {
		fmt.Fprintf(&sb, "  [%s] %s: %s\n", issue.Severity, issue.Rule, issue.Message)
		fmt.Fprintf(&sb, "    > %s\n", issue.Sentence)
		if issue.Suggestion != "" {
			fmt.Fprintf(&sb, "    = %s\n", issue.Suggestion)
		} else if issue.Replacement != "" {
			fmt.Fprintf(&sb, "    = consider %q\n", issue.Replacement)
		}
	}

	if r.Stats.Issues > 0 {
		sb.WriteString("  " + formatTally(r.Stats.ByCategory) + "\n")
	}

	return sb.String()
}

// formatTally renders category counts as "category=N" pairs in stable order.
func formatTally(byCategory map[Category]int) string {
	keys := make([]string, 0, len(byCategory))
	for c := range byCategory {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, byCategory[Category(k)]))
	}
	return strings.Join(parts, " ")
}

// FormatChunks formats knowledge chunks for LLM context.
// Uses title if available, falls back to category.
// Chunks are separated by blank lines.
func FormatChunks(chunks []*KnowledgeChunk) string {
	if len(chunks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		header := chunk.Title
		if header == "" {
			header = string(chunk.Category)
		}
		parts = append(parts, "## Guidance: "+header+"\n"+chunk.Content)
	}

	return strings.Join(parts, "\n\n")
}
