package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/mock"
	docslog "github.com/Tharun135/docscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearchService_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs result count and top score", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.SearchService{
			SearchFn: func(context.Context, string, docscan.SearchOptions) ([]docscan.SearchResult, error) {
				return []docscan.SearchResult{
					{Chunk: &docscan.KnowledgeChunk{Category: docscan.CategoryTone}, Score: 0.9},
					{Chunk: &docscan.KnowledgeChunk{Category: docscan.CategoryTone}, Score: 0.5},
				}, nil
			},
		}

		s := docslog.NewLoggingSearchService(inner, logger)

		results, err := s.Search(context.Background(), "friendly tone", docscan.SearchOptions{})
		require.NoError(t, err)
		assert.Len(t, results, 2)

		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "results=2")
		assert.Contains(t, output, "top_score=0.9")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.SearchService{
			SearchFn: func(context.Context, string, docscan.SearchOptions) ([]docscan.SearchResult, error) {
				return nil, docscan.Errorf(docscan.EUNAVAILABLE, "embedder down")
			},
		}

		s := docslog.NewLoggingSearchService(inner, logger)

		_, err := s.Search(context.Background(), "q", docscan.SearchOptions{})
		require.Error(t, err)

		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "embedder down")
	})
}
