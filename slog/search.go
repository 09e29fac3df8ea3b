package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Tharun135/docscan"
)

// Ensure LoggingSearchService implements docscan.SearchService.
var _ docscan.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with query logging.
type LoggingSearchService struct {
	next   docscan.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next docscan.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the result count.
func (s *LoggingSearchService) Search(ctx context.Context, query string, opts docscan.SearchOptions) ([]docscan.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.Search(ctx, query, opts)
	if err != nil {
		s.logger.Error("search",
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	var topScore float32
	if len(results) > 0 {
		topScore = results[0].Score
	}
	s.logger.Info("search",
		"results", len(results),
		"top_score", topScore,
		"duration", time.Since(begin),
	)
	return results, nil
}
