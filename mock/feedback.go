package mock

import (
	"context"

	"github.com/Tharun135/docscan"
)

var _ docscan.FeedbackService = (*FeedbackService)(nil)

// FeedbackService is a mock implementation of docscan.FeedbackService.
type FeedbackService struct {
	CreateFeedbackFn func(ctx context.Context, fb *docscan.Feedback) error
	FindFeedbackFn   func(ctx context.Context, filter docscan.FeedbackFilter) ([]*docscan.Feedback, error)
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, fb *docscan.Feedback) error {
	return s.CreateFeedbackFn(ctx, fb)
}

func (s *FeedbackService) FindFeedback(ctx context.Context, filter docscan.FeedbackFilter) ([]*docscan.Feedback, error) {
	return s.FindFeedbackFn(ctx, filter)
}
