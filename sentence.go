package docscan

import "context"

// Token is a single word or punctuation mark with its part-of-speech tag.
// Tags follow the Penn Treebank convention (e.g., "VBN", "NN", "JJ").
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Sentence represents one segmented sentence of a document's plain text.
// Start and End are byte offsets into the plain text it was segmented from.
type Sentence struct {
	Text   string  `json:"text"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Tokens []Token `json:"tokens,omitempty"`
}

// Segmenter splits plain text into sentences with part-of-speech tags.
type Segmenter interface {
	// Segment splits text into sentences. Implementations tag tokens when
	// tagging is supported; rules that need tags must tolerate empty
	// Tokens slices.
	Segment(ctx context.Context, text string) ([]Sentence, error)
}
