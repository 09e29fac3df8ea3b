package mock

import (
	"context"

	"github.com/Tharun135/docscan"
)

var _ docscan.IssueService = (*IssueService)(nil)

// IssueService is a mock implementation of docscan.IssueService.
type IssueService struct {
	CreateIssuesFn           func(ctx context.Context, issues []*docscan.Issue) error
	FindIssueByIDFn          func(ctx context.Context, id string) (*docscan.Issue, error)
	FindIssuesFn             func(ctx context.Context, filter docscan.IssueFilter) ([]*docscan.Issue, error)
	DeleteIssuesByDocumentFn func(ctx context.Context, documentID string) error
}

func (s *IssueService) CreateIssues(ctx context.Context, issues []*docscan.Issue) error {
	return s.CreateIssuesFn(ctx, issues)
}

func (s *IssueService) FindIssueByID(ctx context.Context, id string) (*docscan.Issue, error) {
	return s.FindIssueByIDFn(ctx, id)
}

func (s *IssueService) FindIssues(ctx context.Context, filter docscan.IssueFilter) ([]*docscan.Issue, error) {
	return s.FindIssuesFn(ctx, filter)
}

func (s *IssueService) DeleteIssuesByDocument(ctx context.Context, documentID string) error {
	return s.DeleteIssuesByDocumentFn(ctx, documentID)
}
