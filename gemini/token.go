package gemini

import (
	"context"

	"github.com/Tharun135/docscan"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ docscan.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens with the local Gemini tokenizer, so
// retrieved guidance can be budgeted without spending an API call.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for the given model. The model
// must be one the local tokenizer ships vocabulary for.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, docscan.WrapError(err, docscan.EINTERNAL, "load tokenizer")
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the token count for text. Empty text short-circuits
// to zero without touching the tokenizer.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, docscan.WrapError(err, docscan.EINTERNAL, "count tokens")
	}

	return int(result.TotalTokens), nil
}
