package rules

import (
	"context"
	"strings"

	"github.com/Tharun135/docscan"
)

var _ docscan.Suggester = (*Suggester)(nil)

// Suggester produces deterministic rewrite suggestions from rule metadata.
// It never fails, which makes it the natural final element of a
// SuggesterChain.
type Suggester struct{}

// NewSuggester creates a rule-based Suggester.
func NewSuggester() *Suggester {
	return &Suggester{}
}

// Suggest implements docscan.Suggester.
func (s *Suggester) Suggest(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &docscan.Suggestion{
		Text:   rewrite(req),
		Source: docscan.SuggestionSourceRule,
	}, nil
}

// rewrite applies the mechanical fix the issue allows: substitute the
// preferred term, drop a filler word, or fall back to restating the rule
// guidance when no safe mechanical rewrite exists.
func rewrite(req docscan.SuggestionRequest) string {
	issue := req.Issue

	if issue.Replacement != "" && issue.Match != "" {
		return strings.Replace(req.Sentence, issue.Match, issue.Replacement, 1)
	}

	switch issue.Category {
	case docscan.CategoryVagueTerms, docscan.CategoryTone:
		if issue.Match != "" && issue.Match != "!" {
			return dropWord(req.Sentence, issue.Match)
		}
	}

	if issue.Message != "" {
		return req.Sentence + " [" + issue.Message + "]"
	}
	return req.Sentence
}

// dropWord removes the first occurrence of word from sentence and tidies
// the surrounding whitespace.
func dropWord(sentence, word string) string {
	idx := strings.Index(sentence, word)
	if idx < 0 {
		return sentence
	}

	before := sentence[:idx]
	after := sentence[idx+len(word):]

	// Collapse the doubled space left behind mid-sentence.
	if strings.HasSuffix(before, " ") && strings.HasPrefix(after, " ") {
		after = after[1:]
	}

	out := before + after
	out = strings.TrimSpace(out)

	// Re-capitalize if the dropped word opened the sentence.
	if idx == 0 && out != "" {
		out = strings.ToUpper(out[:1]) + out[1:]
	}
	return out
}
