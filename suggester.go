package docscan

import "context"

// Suggestion sources.
const (
	SuggestionSourceLLM  = "llm"
	SuggestionSourceRule = "rule"
)

// SuggestionRequest asks for a rewrite of a flagged sentence.
type SuggestionRequest struct {
	// Sentence is the full sentence to rewrite.
	Sentence string `json:"sentence"`

	// Issue is the problem the rewrite should fix.
	Issue Issue `json:"issue"`
}

// Validate returns an error if the request contains invalid fields.
func (r *SuggestionRequest) Validate() error {
	if r.Sentence == "" {
		return Errorf(EINVALID, "suggestion sentence required")
	}
	if r.Issue.Rule == "" {
		return Errorf(EINVALID, "suggestion issue rule required")
	}
	return nil
}

// Suggestion is a proposed rewrite of a flagged sentence.
type Suggestion struct {
	// Text is the rewritten sentence.
	Text string `json:"text"`

	// Source indicates how the suggestion was produced
	// (SuggestionSourceLLM or SuggestionSourceRule).
	Source string `json:"source"`

	// Model names the model that produced an LLM suggestion, if any.
	Model string `json:"model,omitempty"`
}

// Suggester produces rewrite suggestions for flagged sentences.
// Implementations backed by unreachable services return EUNAVAILABLE so a
// SuggesterChain can fall through to the next backend.
type Suggester interface {
	Suggest(ctx context.Context, req SuggestionRequest) (*Suggestion, error)
}

// TokenCounter counts model tokens in text. Suggesters use it to budget how
// much retrieved guidance fits in a prompt.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// SuggesterChain tries each suggester in order, falling through on
// EUNAVAILABLE. Any other error stops the chain. With a rule-based
// suggester as the final element the chain always answers.
type SuggesterChain struct {
	suggesters []Suggester
}

// NewSuggesterChain creates a chain over the given suggesters.
func NewSuggesterChain(suggesters ...Suggester) *SuggesterChain {
	return &SuggesterChain{suggesters: suggesters}
}

// Suggest implements Suggester.
func (c *SuggesterChain) Suggest(ctx context.Context, req SuggestionRequest) (*Suggestion, error) {
	if len(c.suggesters) == 0 {
		return nil, Errorf(EUNAVAILABLE, "no suggestion backends configured")
	}

	var lastErr error
	for _, s := range c.suggesters {
		suggestion, err := s.Suggest(ctx, req)
		if err == nil {
			return suggestion, nil
		}
		if ErrorCode(err) != EUNAVAILABLE {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}
