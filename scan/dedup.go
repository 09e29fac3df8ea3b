package scan

import (
	"sync"

	"github.com/Tharun135/docscan/bloom"
)

// Dedup filter sizing for a scan run.
const (
	// dedupExpectedSentences is the expected sentence count for Bloom filter sizing.
	dedupExpectedSentences = 100000
	// dedupFalsePositiveRate is the acceptable false positive rate for deduplication.
	dedupFalsePositiveRate = 0.001
)

// sentenceSet tracks sentences seen during a run using a Bloom filter.
// It is safe for concurrent use by multiple goroutines.
type sentenceSet struct {
	mu   sync.Mutex
	seen *bloom.Filter
}

func newSentenceSet() *sentenceSet {
	return &sentenceSet{
		seen: bloom.NewFilter(dedupExpectedSentences, dedupFalsePositiveRate),
	}
}

// seenOrAdd returns true if the sentence was probably seen before, and marks
// it seen either way. False positives are possible; false negatives are not.
func (s *sentenceSet) seenOrAdd(sentence string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen.Seen(sentence) {
		return true
	}
	s.seen.Add(sentence)
	return false
}
