package gemini_test

import (
	"context"
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/gemini"
	"github.com/Tharun135/docscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() docscan.SuggestionRequest {
	return docscan.SuggestionRequest{
		Sentence: "The file is deleted by the cleanup job.",
		Issue: docscan.Issue{
			Rule:     "passive-voice",
			Category: docscan.CategoryPassiveVoice,
			Severity: docscan.SeverityWarning,
			Message:  "passive voice",
			Match:    "is deleted",
		},
	}
}

func TestSuggester_Suggest_RejectsInvalidRequests(t *testing.T) {
	t.Parallel()

	s := gemini.NewSuggester(nil, nil, nil, "") // nil client ok for this test

	_, err := s.Suggest(context.Background(), docscan.SuggestionRequest{})

	require.Error(t, err)
	assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
}

func TestSuggester_Suggest_PropagatesTokenCounterError(t *testing.T) {
	t.Parallel()

	search := &mock.SearchService{
		SearchFn: func(context.Context, string, docscan.SearchOptions) ([]docscan.SearchResult, error) {
			return []docscan.SearchResult{
				{Chunk: &docscan.KnowledgeChunk{Category: docscan.CategoryPassiveVoice, Content: "guidance"}, Score: 0.9},
			}, nil
		},
	}
	counter := &mock.TokenCounter{
		CountTokensFn: func(context.Context, string) (int, error) {
			return 0, docscan.Errorf(docscan.EINTERNAL, "tokenizer error")
		},
	}

	s := gemini.NewSuggester(nil, search, counter, "")

	_, err := s.Suggest(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, docscan.EINTERNAL, docscan.ErrorCode(err))
	assert.Contains(t, docscan.ErrorMessage(err), "tokenizer error")
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes issue, match and sentence", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildUserPrompt(testRequest(), nil)
		assert.Contains(t, prompt, "passive voice")
		assert.Contains(t, prompt, `"is deleted"`)
		assert.Contains(t, prompt, "Sentence: The file is deleted by the cleanup job.")
		assert.NotContains(t, prompt, "Style guidance")
	})

	t.Run("includes retrieved guidance", func(t *testing.T) {
		t.Parallel()

		chunks := []*docscan.KnowledgeChunk{{
			Category: docscan.CategoryPassiveVoice,
			Title:    "Active voice",
			Content:  "Name the actor performing the action.",
		}}

		prompt := gemini.BuildUserPrompt(testRequest(), chunks)
		assert.Contains(t, prompt, "Style guidance:")
		assert.Contains(t, prompt, "## Guidance: Active voice")
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()
	require.NotNil(t, config)
	require.NotNil(t, config.SystemInstruction)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.3, float64(*config.Temperature), 0.001)
}
