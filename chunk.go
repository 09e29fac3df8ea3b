package docscan

import (
	"context"
	"time"
)

// KnowledgeChunk represents one entry of the style knowledge base: a short
// guidance snippet (rule explanation, before/after rewrite, style guide
// excerpt) used to ground AI rewrite suggestions.
type KnowledgeChunk struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Embedding   []float32 `json:"embedding,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *KnowledgeChunk) Validate() error {
	if !ValidCategory(c.Category) {
		return Errorf(EINVALID, "unknown chunk category %q", c.Category)
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// KnowledgeService represents a service for managing knowledge chunks.
type KnowledgeService interface {
	// CreateChunk creates a new chunk.
	CreateChunk(ctx context.Context, chunk *KnowledgeChunk) error

	// CreateChunks creates multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*KnowledgeChunk) error

	// FindChunkByID retrieves a chunk by ID.
	// Returns ENOTFOUND if chunk does not exist.
	FindChunkByID(ctx context.Context, id string) (*KnowledgeChunk, error)

	// FindChunks retrieves chunks matching the filter.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*KnowledgeChunk, error)

	// DeleteChunk permanently removes a chunk.
	// Returns ENOTFOUND if chunk does not exist.
	DeleteChunk(ctx context.Context, id string) error
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	ID          *string   `json:"id"`
	Category    *Category `json:"category"`
	ContentHash *string   `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SearchService provides semantic search over knowledge chunks.
type SearchService interface {
	// Search returns chunks ordered by descending relevance to the query.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Filter results to specific categories
	Categories []Category `json:"categories,omitempty"`

	// Maximum number of results to return
	Limit int `json:"limit,omitempty"`

	// Minimum similarity score (0-1)
	MinScore float32 `json:"minScore,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Chunk *KnowledgeChunk `json:"chunk"`
	Score float32         `json:"score"`
}
