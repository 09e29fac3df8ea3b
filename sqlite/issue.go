package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Tharun135/docscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docscan.IssueService = (*IssueService)(nil)

// IssueService implements docscan.IssueService using SQLite.
type IssueService struct {
	db *DB
}

// NewIssueService creates a new IssueService.
func NewIssueService(db *DB) *IssueService {
	return &IssueService{db: db}
}

// CreateIssues creates issues for a document in a batch.
func (s *IssueService) CreateIssues(ctx context.Context, issues []*docscan.Issue) error {
	for _, issue := range issues {
		if issue.DocumentID == "" {
			return docscan.Errorf(docscan.EINVALID, "issue document ID required")
		}
		if err := issue.Validate(); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	for _, issue := range issues {
		issue.ID = uuid.New().String()
		issue.CreatedAt = now

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO issues (id, document_id, rule, category, severity, message, match_text, replacement, suggestion, sentence, start_pos, end_pos, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, issue.ID, issue.DocumentID, issue.Rule, string(issue.Category), string(issue.Severity),
			issue.Message, issue.Match, issue.Replacement, issue.Suggestion, issue.Sentence,
			issue.Start, issue.End, now.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

const issueColumns = "id, document_id, rule, category, severity, message, match_text, replacement, suggestion, sentence, start_pos, end_pos, created_at"

// scanIssue scans one issue row.
func scanIssue(scan func(dest ...any) error) (*docscan.Issue, error) {
	var issue docscan.Issue
	var category, severity, createdAt string

	if err := scan(&issue.ID, &issue.DocumentID, &issue.Rule, &category, &severity,
		&issue.Message, &issue.Match, &issue.Replacement, &issue.Suggestion,
		&issue.Sentence, &issue.Start, &issue.End, &createdAt); err != nil {
		return nil, err
	}

	issue.Category = docscan.Category(category)
	issue.Severity = docscan.Severity(severity)

	var err error
	issue.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &issue, nil
}

// FindIssueByID retrieves an issue by ID.
func (s *IssueService) FindIssueByID(ctx context.Context, id string) (*docscan.Issue, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+issueColumns+" FROM issues WHERE id = ?", id)

	issue, err := scanIssue(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docscan.Errorf(docscan.ENOTFOUND, "issue not found")
	}
	if err != nil {
		return nil, err
	}

	return issue, nil
}

// FindIssues retrieves issues matching the filter.
func (s *IssueService) FindIssues(ctx context.Context, filter docscan.IssueFilter) ([]*docscan.Issue, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + issueColumns + " FROM issues WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Severity != nil {
		query.WriteString(" AND severity = ?")
		args = append(args, string(*filter.Severity))
	}

	// Document order: issues were inserted in scan order, so sort by the
	// sentence span start after rowid-stable creation time.
	query.WriteString(" ORDER BY created_at ASC, start_pos ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []*docscan.Issue
	for rows.Next() {
		issue, err := scanIssue(rows.Scan)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

// DeleteIssuesByDocument removes all issues for a document.
func (s *IssueService) DeleteIssuesByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM issues WHERE document_id = ?", documentID)
	return err
}
