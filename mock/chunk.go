package mock

import (
	"context"

	"github.com/Tharun135/docscan"
)

var _ docscan.KnowledgeService = (*KnowledgeService)(nil)

// KnowledgeService is a mock implementation of docscan.KnowledgeService.
type KnowledgeService struct {
	CreateChunkFn   func(ctx context.Context, chunk *docscan.KnowledgeChunk) error
	CreateChunksFn  func(ctx context.Context, chunks []*docscan.KnowledgeChunk) error
	FindChunkByIDFn func(ctx context.Context, id string) (*docscan.KnowledgeChunk, error)
	FindChunksFn    func(ctx context.Context, filter docscan.ChunkFilter) ([]*docscan.KnowledgeChunk, error)
	DeleteChunkFn   func(ctx context.Context, id string) error
}

func (s *KnowledgeService) CreateChunk(ctx context.Context, chunk *docscan.KnowledgeChunk) error {
	return s.CreateChunkFn(ctx, chunk)
}

func (s *KnowledgeService) CreateChunks(ctx context.Context, chunks []*docscan.KnowledgeChunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *KnowledgeService) FindChunkByID(ctx context.Context, id string) (*docscan.KnowledgeChunk, error) {
	return s.FindChunkByIDFn(ctx, id)
}

func (s *KnowledgeService) FindChunks(ctx context.Context, filter docscan.ChunkFilter) ([]*docscan.KnowledgeChunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *KnowledgeService) DeleteChunk(ctx context.Context, id string) error {
	return s.DeleteChunkFn(ctx, id)
}

var _ docscan.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docscan.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts docscan.SearchOptions) ([]docscan.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts docscan.SearchOptions) ([]docscan.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}
