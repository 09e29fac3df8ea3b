package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/Tharun135/docscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docscan.FeedbackService = (*FeedbackService)(nil)

// FeedbackService implements docscan.FeedbackService using SQLite.
type FeedbackService struct {
	db *DB
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(db *DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// CreateFeedback records feedback for an issue.
func (s *FeedbackService) CreateFeedback(ctx context.Context, fb *docscan.Feedback) error {
	if err := fb.Validate(); err != nil {
		return err
	}

	// The foreign key would reject an unknown issue anyway; checking first
	// turns the constraint violation into ENOTFOUND.
	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM issues WHERE id = ?", fb.IssueID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return docscan.Errorf(docscan.ENOTFOUND, "issue not found")
	}

	fb.ID = uuid.New().String()
	fb.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, issue_id, verdict, comment, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, fb.ID, fb.IssueID, fb.Verdict, fb.Comment, fb.CreatedAt.Format(time.RFC3339))

	return err
}

// FindFeedback retrieves feedback matching the filter.
func (s *FeedbackService) FindFeedback(ctx context.Context, filter docscan.FeedbackFilter) ([]*docscan.Feedback, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, issue_id, verdict, comment, created_at FROM feedback WHERE 1=1")

	if filter.IssueID != nil {
		query.WriteString(" AND issue_id = ?")
		args = append(args, *filter.IssueID)
	}
	if filter.Verdict != nil {
		query.WriteString(" AND verdict = ?")
		args = append(args, *filter.Verdict)
	}

	query.WriteString(" ORDER BY created_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []*docscan.Feedback
	for rows.Next() {
		var fb docscan.Feedback
		var createdAt string

		if err := rows.Scan(&fb.ID, &fb.IssueID, &fb.Verdict, &fb.Comment, &createdAt); err != nil {
			return nil, err
		}

		fb.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		feedback = append(feedback, &fb)
	}

	return feedback, rows.Err()
}
