package gocache_test

import (
	"context"
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/gocache"
	"github.com/Tharun135/docscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(sentence, rule string) docscan.SuggestionRequest {
	return docscan.SuggestionRequest{
		Sentence: sentence,
		Issue: docscan.Issue{
			Rule:     rule,
			Category: docscan.CategoryVagueTerms,
			Severity: docscan.SeverityInfo,
			Message:  "vague term",
		},
	}
}

func TestSuggester_Suggest(t *testing.T) {
	t.Parallel()

	t.Run("caches by sentence and rule", func(t *testing.T) {
		t.Parallel()

		calls := 0
		inner := &mock.Suggester{
			SuggestFn: func(_ context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				calls++
				return &docscan.Suggestion{Text: "rewritten", Source: docscan.SuggestionSourceLLM}, nil
			},
		}
		s := gocache.NewSuggester(inner)
		ctx := context.Background()

		first, err := s.Suggest(ctx, request("Simply run it.", "vague-terms"))
		require.NoError(t, err)
		second, err := s.Suggest(ctx, request("Simply run it.", "vague-terms"))
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, first.Text, second.Text)

		// Same sentence under a different rule misses the cache.
		_, err = s.Suggest(ctx, request("Simply run it.", "tone"))
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not cache errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		inner := &mock.Suggester{
			SuggestFn: func(_ context.Context, _ docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				calls++
				if calls == 1 {
					return nil, docscan.Errorf(docscan.EUNAVAILABLE, "model down")
				}
				return &docscan.Suggestion{Text: "rewritten", Source: docscan.SuggestionSourceLLM}, nil
			},
		}
		s := gocache.NewSuggester(inner)
		ctx := context.Background()

		_, err := s.Suggest(ctx, request("Just try again.", "vague-terms"))
		assert.Equal(t, docscan.EUNAVAILABLE, docscan.ErrorCode(err))

		suggestion, err := s.Suggest(ctx, request("Just try again.", "vague-terms"))
		require.NoError(t, err)
		assert.Equal(t, "rewritten", suggestion.Text)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns a copy of the cached suggestion", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Suggester{
			SuggestFn: func(_ context.Context, _ docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				return &docscan.Suggestion{Text: "rewritten", Source: docscan.SuggestionSourceLLM}, nil
			},
		}
		s := gocache.NewSuggester(inner)
		ctx := context.Background()

		first, err := s.Suggest(ctx, request("Very good.", "vague-terms"))
		require.NoError(t, err)
		first.Text = "mutated"

		second, err := s.Suggest(ctx, request("Very good.", "vague-terms"))
		require.NoError(t, err)
		assert.Equal(t, "rewritten", second.Text)
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		t.Parallel()

		s := gocache.NewSuggester(&mock.Suggester{})

		_, err := s.Suggest(context.Background(), docscan.SuggestionRequest{})
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
	})
}
