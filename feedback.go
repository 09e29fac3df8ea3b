package docscan

import (
	"context"
	"time"
)

// Feedback verdicts.
const (
	VerdictAccepted = "accepted"
	VerdictRejected = "rejected"
)

// Feedback records whether a user accepted or rejected a suggestion for a
// stored issue.
type Feedback struct {
	ID        string    `json:"id"`
	IssueID   string    `json:"issueId"`
	Verdict   string    `json:"verdict"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the feedback contains invalid fields.
func (f *Feedback) Validate() error {
	if f.IssueID == "" {
		return Errorf(EINVALID, "feedback issue ID required")
	}
	if f.Verdict != VerdictAccepted && f.Verdict != VerdictRejected {
		return Errorf(EINVALID, "unknown feedback verdict %q", f.Verdict)
	}
	return nil
}

// FeedbackService represents a service for recording suggestion feedback.
type FeedbackService interface {
	// CreateFeedback records feedback for an issue.
	// Returns ENOTFOUND if the issue does not exist.
	CreateFeedback(ctx context.Context, fb *Feedback) error

	// FindFeedback retrieves feedback matching the filter.
	FindFeedback(ctx context.Context, filter FeedbackFilter) ([]*Feedback, error)
}

// FeedbackFilter represents a filter for FindFeedback.
type FeedbackFilter struct {
	IssueID *string `json:"issueId"`
	Verdict *string `json:"verdict"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
