// Package bloom provides sentence deduplication using Bloom filters.
// Documentation sets repeat boilerplate sentences (legal notices, shared
// intros) across many files; the scanner uses a filter to flag each distinct
// sentence once per run.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter for sentence deduplication. Sentences are
// normalized before hashing so whitespace and casing differences do not
// defeat deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected sentences
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a sentence to the filter.
func (f *Filter) Add(sentence string) {
	f.f.AddString(normalize(sentence))
}

// Seen returns true if the sentence might have been added before.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(sentence string) bool {
	return f.f.TestString(normalize(sentence))
}

// EstimatedCount returns the approximate number of distinct sentences.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

func normalize(sentence string) string {
	return strings.ToLower(strings.Join(strings.Fields(sentence), " "))
}
