// Package vector implements semantic search over the knowledge base with
// brute-force cosine similarity. Embeddings are loaded from the knowledge
// store on each query.
package vector

import (
	"context"
	"math"
	"sort"

	"github.com/Tharun135/docscan"
)

const defaultLimit = 5

// SearchService implements docscan.SearchService by embedding the query and
// ranking stored chunks by cosine similarity.
type SearchService struct {
	knowledge docscan.KnowledgeService
	embedder  docscan.Embedder
}

var _ docscan.SearchService = (*SearchService)(nil)

// NewSearchService returns a search service backed by the given knowledge
// store and embedder.
func NewSearchService(knowledge docscan.KnowledgeService, embedder docscan.Embedder) *SearchService {
	return &SearchService{knowledge: knowledge, embedder: embedder}
}

// Search embeds the query and returns the most similar chunks, best first.
// Chunks without a stored embedding are skipped.
func (s *SearchService) Search(ctx context.Context, query string, opts docscan.SearchOptions) ([]docscan.SearchResult, error) {
	if query == "" {
		return nil, docscan.Errorf(docscan.EINVALID, "search query required")
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	chunks, err := s.loadChunks(ctx, opts.Categories)
	if err != nil {
		return nil, err
	}

	results := make([]docscan.SearchResult, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Embedding) != len(queryVec) {
			continue
		}
		score := cosineSimilarity(queryVec, chunk.Embedding)
		if score < opts.MinScore {
			continue
		}
		results = append(results, docscan.SearchResult{Chunk: chunk, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// loadChunks fetches candidate chunks, narrowing by category in the store
// when a single category is requested.
func (s *SearchService) loadChunks(ctx context.Context, categories []docscan.Category) ([]*docscan.KnowledgeChunk, error) {
	var filter docscan.ChunkFilter
	if len(categories) == 1 {
		filter.Category = &categories[0]
	}

	chunks, err := s.knowledge.FindChunks(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(categories) <= 1 {
		return chunks, nil
	}

	wanted := make(map[docscan.Category]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}
	filtered := chunks[:0]
	for _, chunk := range chunks {
		if _, ok := wanted[chunk.Category]; ok {
			filtered = append(filtered, chunk)
		}
	}
	return filtered, nil
}

// cosineSimilarity returns the cosine of the angle between a and b.
// Both vectors must have the same length; a zero vector scores zero.
func cosineSimilarity(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
