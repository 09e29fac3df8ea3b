// Package prose provides sentence segmentation and part-of-speech tagging
// using the jdkato/prose NLP library.
package prose

import (
	"context"
	"strings"

	"github.com/Tharun135/docscan"
	"github.com/jdkato/prose/v2"
)

// Ensure Segmenter implements docscan.Segmenter at compile time.
var _ docscan.Segmenter = (*Segmenter)(nil)

// Segmenter splits plain text into sentences and tags tokens with Penn
// Treebank part-of-speech tags.
type Segmenter struct {
	tagging bool
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithoutTagging disables part-of-speech tagging. Rules that rely on tags
// fall back to their regex paths.
func WithoutTagging() Option {
	return func(s *Segmenter) {
		s.tagging = false
	}
}

// NewSegmenter creates a new Segmenter with tagging enabled.
func NewSegmenter(opts ...Option) *Segmenter {
	s := &Segmenter{tagging: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment implements docscan.Segmenter.
func (s *Segmenter) Segment(ctx context.Context, text string) ([]docscan.Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return nil, docscan.Errorf(docscan.EINTERNAL, "sentence segmentation failed: %s", err)
	}

	proseSentences := doc.Sentences()
	sentences := make([]docscan.Sentence, 0, len(proseSentences))

	pos := 0
	for _, ps := range proseSentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw := strings.TrimSpace(ps.Text)
		if raw == "" {
			continue
		}

		start := strings.Index(text[pos:], raw)
		if start < 0 {
			// Segmenter may normalize whitespace; fall back to the
			// running offset so spans stay monotonic.
			start = 0
		}
		start += pos
		end := start + len(raw)
		pos = end

		sentence := docscan.Sentence{
			Text:  raw,
			Start: start,
			End:   end,
		}

		if s.tagging {
			tokens, err := tagSentence(raw)
			if err != nil {
				return nil, err
			}
			sentence.Tokens = tokens
		}

		sentences = append(sentences, sentence)
	}

	return sentences, nil
}

// tagSentence tokenizes and tags one sentence.
func tagSentence(text string) ([]docscan.Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, docscan.Errorf(docscan.EINTERNAL, "tagging failed: %s", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]docscan.Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, docscan.Token{Text: tok.Text, Tag: tok.Tag})
	}
	return tokens, nil
}
