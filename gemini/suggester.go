// Package gemini implements rewrite suggestions using Google Gemini, as a
// fallback when no local model is reachable.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tharun135/docscan"
	"google.golang.org/genai"
)

// DefaultModel is used for rewrite suggestions when none is configured.
const DefaultModel = "gemini-2.5-flash"

// guidanceTokenBudget caps how many tokens of retrieved guidance go into a
// prompt. Chunks past the budget are dropped.
const guidanceTokenBudget = 2048

// Ensure Suggester implements docscan.Suggester at compile time.
var _ docscan.Suggester = (*Suggester)(nil)

// Suggester implements docscan.Suggester using Google Gemini, grounding the
// prompt in knowledge base chunks retrieved for the flagged issue.
type Suggester struct {
	client  *genai.Client
	search  docscan.SearchService
	counter docscan.TokenCounter
	model   string
}

// NewSuggester creates a new Suggester. search and counter may be nil:
// without search the prompt carries no retrieved guidance, without counter
// guidance is not token-budgeted.
func NewSuggester(client *genai.Client, search docscan.SearchService, counter docscan.TokenCounter, model string) *Suggester {
	if model == "" {
		model = DefaultModel
	}
	return &Suggester{client: client, search: search, counter: counter, model: model}
}

// Suggest rewrites the flagged sentence. API failures are reported as
// EUNAVAILABLE so a chain can fall through to rule-based rewrites.
func (s *Suggester) Suggest(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	chunks, err := s.retrieve(ctx, req)
	if err != nil {
		return nil, err
	}

	prompt := BuildUserPrompt(req, chunks)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, docscan.Errorf(docscan.EUNAVAILABLE, "gemini request failed: %s", err)
	}
	if result == nil {
		return nil, docscan.Errorf(docscan.EUNAVAILABLE, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, docscan.Errorf(docscan.EUNAVAILABLE, "gemini returned empty suggestion")
	}

	return &docscan.Suggestion{
		Text:   text,
		Source: docscan.SuggestionSourceLLM,
		Model:  s.model,
	}, nil
}

// retrieve fetches guidance chunks for the issue, trimming to the token
// budget. Retrieval failures degrade to an unguided prompt.
func (s *Suggester) retrieve(ctx context.Context, req docscan.SuggestionRequest) ([]*docscan.KnowledgeChunk, error) {
	if s.search == nil {
		return nil, nil
	}

	query := req.Issue.Message + " " + req.Sentence
	results, err := s.search.Search(ctx, query, docscan.SearchOptions{
		Categories: []docscan.Category{req.Issue.Category},
		Limit:      3,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}

	var (
		chunks []*docscan.KnowledgeChunk
		used   int
	)
	for _, r := range results {
		if s.counter != nil {
			n, err := s.counter.CountTokens(ctx, r.Chunk.Content)
			if err != nil {
				return nil, err
			}
			if used+n > guidanceTokenBudget {
				break
			}
			used += n
		}
		chunks = append(chunks, r.Chunk)
	}
	return chunks, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a technical writing assistant. Rewrite the flagged sentence to fix the described problem. Preserve the meaning and any technical terms. Respond with the rewritten sentence only, without quotes or commentary.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the rewrite prompt containing retrieved guidance,
// the flagged sentence, and the issue to fix.
func BuildUserPrompt(req docscan.SuggestionRequest, chunks []*docscan.KnowledgeChunk) string {
	var sb strings.Builder
	if guidance := docscan.FormatChunks(chunks); guidance != "" {
		sb.WriteString("Style guidance:\n\n")
		sb.WriteString(guidance)
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "Problem (%s): %s\n", req.Issue.Category, req.Issue.Message)
	if req.Issue.Match != "" {
		fmt.Fprintf(&sb, "Flagged text: %q\n", req.Issue.Match)
	}
	fmt.Fprintf(&sb, "\nSentence: %s", req.Sentence)
	return sb.String()
}
