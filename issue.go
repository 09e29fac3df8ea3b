package docscan

import (
	"context"
	"time"
)

// Category classifies the kind of style problem a rule detects.
type Category string

// Rule categories.
const (
	CategoryPassiveVoice  Category = "passive_voice"
	CategoryVagueTerms    Category = "vague_terms"
	CategoryAccessibility Category = "accessibility"
	CategoryTone          Category = "tone"
	CategoryTerminology   Category = "terminology"
)

// Categories returns all known rule categories.
func Categories() []Category {
	return []Category{
		CategoryPassiveVoice,
		CategoryVagueTerms,
		CategoryAccessibility,
		CategoryTone,
		CategoryTerminology,
	}
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryPassiveVoice, CategoryVagueTerms, CategoryAccessibility,
		CategoryTone, CategoryTerminology:
		return true
	}
	return false
}

// Severity ranks how strongly an issue should be surfaced.
type Severity string

// Issue severities, ordered from least to most severe.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// severityRank maps severities to a comparable order.
var severityRank = map[Severity]int{
	SeverityInfo:    0,
	SeverityWarning: 1,
	SeverityError:   2,
}

// AtLeast reports whether s is at least as severe as threshold.
// Unknown severities are never at least anything.
func (s Severity) AtLeast(threshold Severity) bool {
	sr, ok := severityRank[s]
	if !ok {
		return false
	}
	tr, ok := severityRank[threshold]
	if !ok {
		return false
	}
	return sr >= tr
}

// Issue represents a single style problem found in a sentence.
// Start and End are byte offsets into the sentence text.
type Issue struct {
	ID         string   `json:"id"`
	DocumentID string   `json:"documentId,omitempty"`
	Rule       string   `json:"rule"`
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`

	// Match is the offending text; Replacement is a rule-supplied rewrite
	// of the match alone, when one exists.
	Match       string `json:"match"`
	Replacement string `json:"replacement,omitempty"`

	// Suggestion is a full-sentence rewrite, filled in by a Suggester.
	Suggestion string `json:"suggestion,omitempty"`

	Sentence string `json:"sentence"`
	Start    int    `json:"start"`
	End      int    `json:"end"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the issue contains invalid fields.
func (i *Issue) Validate() error {
	if i.Rule == "" {
		return Errorf(EINVALID, "issue rule required")
	}
	if !ValidCategory(i.Category) {
		return Errorf(EINVALID, "unknown issue category %q", i.Category)
	}
	if _, ok := severityRank[i.Severity]; !ok {
		return Errorf(EINVALID, "unknown issue severity %q", i.Severity)
	}
	if i.Start < 0 || i.End < i.Start || i.End > len(i.Sentence) {
		return Errorf(EINVALID, "issue span [%d,%d) out of range", i.Start, i.End)
	}
	return nil
}

// IssueService represents a service for persisting issues found by scans.
type IssueService interface {
	// CreateIssues creates issues for a document in a batch.
	CreateIssues(ctx context.Context, issues []*Issue) error

	// FindIssueByID retrieves an issue by ID.
	// Returns ENOTFOUND if issue does not exist.
	FindIssueByID(ctx context.Context, id string) (*Issue, error)

	// FindIssues retrieves issues matching the filter.
	FindIssues(ctx context.Context, filter IssueFilter) ([]*Issue, error)

	// DeleteIssuesByDocument removes all issues for a document.
	DeleteIssuesByDocument(ctx context.Context, documentID string) error
}

// IssueFilter represents a filter for FindIssues.
type IssueFilter struct {
	ID         *string   `json:"id"`
	DocumentID *string   `json:"documentId"`
	Category   *Category `json:"category"`
	Severity   *Severity `json:"severity"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
