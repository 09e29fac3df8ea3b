package mock

import (
	"context"

	"github.com/Tharun135/docscan"
)

var _ docscan.Suggester = (*Suggester)(nil)

// Suggester is a mock implementation of docscan.Suggester.
type Suggester struct {
	SuggestFn func(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error)
}

func (s *Suggester) Suggest(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
	return s.SuggestFn(ctx, req)
}

var _ docscan.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of docscan.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return c.CountTokensFn(ctx, text)
}

var _ docscan.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of docscan.Embedder.
type Embedder struct {
	EmbedFn      func(ctx context.Context, text string) ([]float32, error)
	EmbedBatchFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedBatchFn(ctx, texts)
}
