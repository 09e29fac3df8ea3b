// Package ollama implements rewrite suggestions and embeddings against a
// local Ollama server through its OpenAI-compatible API. A local model being
// down is an expected condition, so connection failures surface as
// EUNAVAILABLE and let a suggester chain fall through.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/Tharun135/docscan"
	"github.com/avast/retry-go/v4"
	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is the Ollama server address out of the box.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is used for rewrite suggestions when none is configured.
	DefaultModel = "llama3.2"

	retryAttempts = 3
)

// NewClient returns an OpenAI-compatible client pointed at an Ollama server.
// Ollama ignores the API key, but the client library requires one.
func NewClient(baseURL string) *openai.Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	config := openai.DefaultConfig("ollama")
	config.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"
	return openai.NewClientWithConfig(config)
}

// Ensure Suggester implements docscan.Suggester at compile time.
var _ docscan.Suggester = (*Suggester)(nil)

// Suggester implements docscan.Suggester using a local Ollama model, grounding
// the prompt in knowledge base chunks retrieved for the flagged issue.
type Suggester struct {
	client *openai.Client
	search docscan.SearchService
	model  string
}

// NewSuggester creates a new Suggester. search may be nil, in which case
// prompts carry no retrieved guidance.
func NewSuggester(client *openai.Client, search docscan.SearchService, model string) *Suggester {
	if model == "" {
		model = DefaultModel
	}
	return &Suggester{client: client, search: search, model: model}
}

// Suggest rewrites the flagged sentence.
func (s *Suggester) Suggest(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	chunks, err := s.retrieve(ctx, req)
	if err != nil {
		return nil, err
	}

	prompt := BuildUserPrompt(req, chunks)

	resp, err := s.complete(ctx, prompt)
	if err != nil {
		if isUnavailable(err) {
			return nil, docscan.Errorf(docscan.EUNAVAILABLE, "ollama unreachable: %s", err)
		}
		return nil, err
	}

	text := cleanResponse(resp)
	if text == "" {
		return nil, docscan.Errorf(docscan.EUNAVAILABLE, "ollama returned empty suggestion")
	}

	return &docscan.Suggestion{
		Text:   text,
		Source: docscan.SuggestionSourceLLM,
		Model:  s.model,
	}, nil
}

// retrieve fetches guidance chunks for the issue. Retrieval failures degrade
// to an unguided prompt rather than failing the suggestion.
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
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, nil
	}

	chunks := make([]*docscan.KnowledgeChunk, 0, len(results))
	for _, r := range results {
		chunks = append(chunks, r.Chunk)
	}
	return chunks, nil
}

func (s *Suggester) complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := retry.DoWithData(func() (openai.ChatCompletionResponse, error) {
		return s.client.CreateChatCompletion(ctx, req)
	}, retry.Context(ctx), retry.Attempts(retryAttempts), retry.LastErrorOnly(true))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", docscan.Errorf(docscan.EUNAVAILABLE, "ollama returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

const systemPrompt = "You are a technical writing assistant. Rewrite the flagged sentence to fix the described problem. Preserve the meaning and any technical terms. Respond with the rewritten sentence only, without quotes or commentary."

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

// cleanResponse strips quoting and labels models tend to wrap answers in.
func cleanResponse(text string) string {
	text = strings.TrimSpace(text)
	for _, prefix := range []string{"Rewritten sentence:", "Rewrite:", "Suggestion:"} {
		if rest, ok := strings.CutPrefix(text, prefix); ok {
			text = strings.TrimSpace(rest)
			break
		}
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return strings.TrimSpace(text)
}

// isUnavailable reports whether err indicates the server cannot currently
// serve requests, as opposed to rejecting this particular request.
func isUnavailable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 500 || reqErr.HTTPStatusCode == 429 || reqErr.HTTPStatusCode == 0
	}
	return strings.Contains(err.Error(), "connection refused")
}
