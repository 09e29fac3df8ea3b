package mock

import (
	"context"

	"github.com/Tharun135/docscan"
)

var _ docscan.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of docscan.Segmenter.
type Segmenter struct {
	SegmentFn func(ctx context.Context, text string) ([]docscan.Sentence, error)
}

func (s *Segmenter) Segment(ctx context.Context, text string) ([]docscan.Sentence, error) {
	return s.SegmentFn(ctx, text)
}

var _ docscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of docscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docscan.Extractor.
type Extractor struct {
	ExtractFn func(raw string) (*docscan.ExtractResult, error)
}

func (e *Extractor) Extract(raw string) (*docscan.ExtractResult, error) {
	return e.ExtractFn(raw)
}
