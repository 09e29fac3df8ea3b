// Package slog provides logging decorators for suggestion and search
// services using the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Tharun135/docscan"
)

// Ensure LoggingSuggester implements docscan.Suggester.
var _ docscan.Suggester = (*LoggingSuggester)(nil)

// LoggingSuggester wraps a Suggester with request logging.
type LoggingSuggester struct {
	next   docscan.Suggester
	logger *slog.Logger
}

// NewLoggingSuggester creates a new LoggingSuggester.
func NewLoggingSuggester(next docscan.Suggester, logger *slog.Logger) *LoggingSuggester {
	return &LoggingSuggester{next: next, logger: logger}
}

// Suggest delegates to the wrapped suggester and logs the outcome.
func (s *LoggingSuggester) Suggest(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
	begin := time.Now()
	suggestion, err := s.next.Suggest(ctx, req)
	if err != nil {
		s.logger.Error("suggest",
			"rule", req.Issue.Rule,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	s.logger.Info("suggest",
		"rule", req.Issue.Rule,
		"source", suggestion.Source,
		"model", suggestion.Model,
		"duration", time.Since(begin),
	)
	return suggestion, nil
}
