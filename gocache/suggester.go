// Package gocache provides an in-memory caching layer for suggesters, so
// repeated scans of the same document do not re-query a model for sentences
// that have not changed.
package gocache

import (
	"context"
	"strconv"
	"time"

	"github.com/Tharun135/docscan"
	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 24 * time.Hour
	cleanupInterval   = time.Hour
)

// Ensure Suggester implements docscan.Suggester at compile time.
var _ docscan.Suggester = (*Suggester)(nil)

// Suggester wraps another suggester with an expiring in-memory cache keyed by
// the flagged sentence and rule.
type Suggester struct {
	next  docscan.Suggester
	cache *cache.Cache
}

// NewSuggester creates a caching wrapper around next.
func NewSuggester(next docscan.Suggester) *Suggester {
	return &Suggester{
		next:  next,
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Suggest returns a cached suggestion when one exists, otherwise delegates to
// the wrapped suggester and stores the result. Errors are never cached.
func (s *Suggester) Suggest(ctx context.Context, req docscan.SuggestionRequest) (*docscan.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := cacheKey(req)
	if cached, ok := s.cache.Get(key); ok {
		suggestion := cached.(docscan.Suggestion)
		return &suggestion, nil
	}

	suggestion, err := s.next.Suggest(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, *suggestion, cache.DefaultExpiration)
	return suggestion, nil
}

// cacheKey derives a stable key from the sentence and the rule that flagged
// it. The same sentence flagged by two rules caches separately.
func cacheKey(req docscan.SuggestionRequest) string {
	h := xxhash.Sum64String(req.Issue.Rule + "\x00" + req.Issue.Match + "\x00" + req.Sentence)
	return strconv.FormatUint(h, 16)
}
