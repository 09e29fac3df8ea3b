package docscan_test

import (
	"context"
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggesterChain(t *testing.T) {
	t.Parallel()

	req := docscan.SuggestionRequest{
		Sentence: "The file was deleted.",
		Issue:    docscan.Issue{Rule: "passive-voice", Category: docscan.CategoryPassiveVoice},
	}

	t.Run("returns first available suggestion", func(t *testing.T) {
		t.Parallel()

		first := &mock.Suggester{
			SuggestFn: func(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				return &docscan.Suggestion{Text: "Delete the file.", Source: docscan.SuggestionSourceLLM}, nil
			},
		}

		chain := docscan.NewSuggesterChain(first)

		suggestion, err := chain.Suggest(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Delete the file.", suggestion.Text)
	})

	t.Run("falls through on EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		down := &mock.Suggester{
			SuggestFn: func(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				return nil, docscan.Errorf(docscan.EUNAVAILABLE, "backend unreachable")
			},
		}
		fallback := &mock.Suggester{
			SuggestFn: func(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				return &docscan.Suggestion{Text: "Delete the file.", Source: docscan.SuggestionSourceRule}, nil
			},
		}

		chain := docscan.NewSuggesterChain(down, fallback)

		suggestion, err := chain.Suggest(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, docscan.SuggestionSourceRule, suggestion.Source)
	})

	t.Run("stops on non-unavailable errors", func(t *testing.T) {
		t.Parallel()

		bad := &mock.Suggester{
			SuggestFn: func(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				return nil, docscan.Errorf(docscan.EINVALID, "bad request")
			},
		}
		neverCalled := &mock.Suggester{
			SuggestFn: func(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				t.Fatal("second suggester should not be called")
				return nil, nil
			},
		}

		chain := docscan.NewSuggesterChain(bad, neverCalled)

		_, err := chain.Suggest(context.Background(), req)
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE when every backend is down", func(t *testing.T) {
		t.Parallel()

		down := &mock.Suggester{
			SuggestFn: func(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
				return nil, docscan.Errorf(docscan.EUNAVAILABLE, "backend unreachable")
			},
		}

		chain := docscan.NewSuggesterChain(down, down)

		_, err := chain.Suggest(context.Background(), req)
		assert.Equal(t, docscan.EUNAVAILABLE, docscan.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE for empty chain", func(t *testing.T) {
		t.Parallel()

		chain := docscan.NewSuggesterChain()

		_, err := chain.Suggest(context.Background(), req)
		assert.Equal(t, docscan.EUNAVAILABLE, docscan.ErrorCode(err))
	})
}
