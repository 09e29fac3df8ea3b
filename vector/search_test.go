package vector_test

import (
	"context"
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/mock"
	"github.com/Tharun135/docscan/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunk(id string, category docscan.Category, embedding []float32) *docscan.KnowledgeChunk {
	return &docscan.KnowledgeChunk{
		ID:        id,
		Category:  category,
		Title:     id,
		Content:   "guidance",
		Embedding: embedding,
	}
}

func fixedEmbedder(vec []float32) *mock.Embedder {
	return &mock.Embedder{
		EmbedFn: func(_ context.Context, _ string) ([]float32, error) {
			return vec, nil
		},
	}
}

func TestSearchService_Search(t *testing.T) {
	t.Parallel()

	t.Run("ranks results by similarity", func(t *testing.T) {
		t.Parallel()

		knowledge := &mock.KnowledgeService{
			FindChunksFn: func(_ context.Context, _ docscan.ChunkFilter) ([]*docscan.KnowledgeChunk, error) {
				return []*docscan.KnowledgeChunk{
					chunk("orthogonal", docscan.CategoryTone, []float32{0, 1, 0}),
					chunk("exact", docscan.CategoryTone, []float32{1, 0, 0}),
					chunk("close", docscan.CategoryTone, []float32{1, 1, 0}),
				}, nil
			},
		}
		svc := vector.NewSearchService(knowledge, fixedEmbedder([]float32{1, 0, 0}))

		results, err := svc.Search(context.Background(), "active voice", docscan.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "exact", results[0].Chunk.ID)
		assert.Equal(t, "close", results[1].Chunk.ID)
		assert.Equal(t, "orthogonal", results[2].Chunk.ID)
		assert.InDelta(t, 1.0, results[0].Score, 0.001)
	})

	t.Run("applies limit and min score", func(t *testing.T) {
		t.Parallel()

		knowledge := &mock.KnowledgeService{
			FindChunksFn: func(_ context.Context, _ docscan.ChunkFilter) ([]*docscan.KnowledgeChunk, error) {
				return []*docscan.KnowledgeChunk{
					chunk("a", docscan.CategoryTone, []float32{1, 0, 0}),
					chunk("b", docscan.CategoryTone, []float32{1, 0.5, 0}),
					chunk("c", docscan.CategoryTone, []float32{0, 1, 0}),
				}, nil
			},
		}
		svc := vector.NewSearchService(knowledge, fixedEmbedder([]float32{1, 0, 0}))

		results, err := svc.Search(context.Background(), "q", docscan.SearchOptions{Limit: 1, MinScore: 0.5})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "a", results[0].Chunk.ID)
	})

	t.Run("pushes single category filter to the store", func(t *testing.T) {
		t.Parallel()

		var gotFilter docscan.ChunkFilter
		knowledge := &mock.KnowledgeService{
			FindChunksFn: func(_ context.Context, filter docscan.ChunkFilter) ([]*docscan.KnowledgeChunk, error) {
				gotFilter = filter
				return nil, nil
			},
		}
		svc := vector.NewSearchService(knowledge, fixedEmbedder([]float32{1}))

		_, err := svc.Search(context.Background(), "q", docscan.SearchOptions{
			Categories: []docscan.Category{docscan.CategoryPassiveVoice},
		})
		require.NoError(t, err)
		require.NotNil(t, gotFilter.Category)
		assert.Equal(t, docscan.CategoryPassiveVoice, *gotFilter.Category)
	})

	t.Run("filters multiple categories in memory", func(t *testing.T) {
		t.Parallel()

		knowledge := &mock.KnowledgeService{
			FindChunksFn: func(_ context.Context, filter docscan.ChunkFilter) ([]*docscan.KnowledgeChunk, error) {
				assert.Nil(t, filter.Category)
				return []*docscan.KnowledgeChunk{
					chunk("tone", docscan.CategoryTone, []float32{1, 0}),
					chunk("passive", docscan.CategoryPassiveVoice, []float32{1, 0}),
					chunk("term", docscan.CategoryTerminology, []float32{1, 0}),
				}, nil
			},
		}
		svc := vector.NewSearchService(knowledge, fixedEmbedder([]float32{1, 0}))

		results, err := svc.Search(context.Background(), "q", docscan.SearchOptions{
			Categories: []docscan.Category{docscan.CategoryTone, docscan.CategoryTerminology},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.NotEqual(t, docscan.CategoryPassiveVoice, r.Chunk.Category)
		}
	})

	t.Run("skips chunks with mismatched dimensions", func(t *testing.T) {
		t.Parallel()

		knowledge := &mock.KnowledgeService{
			FindChunksFn: func(_ context.Context, _ docscan.ChunkFilter) ([]*docscan.KnowledgeChunk, error) {
				return []*docscan.KnowledgeChunk{
					chunk("bad", docscan.CategoryTone, []float32{1}),
					chunk("none", docscan.CategoryTone, nil),
					chunk("good", docscan.CategoryTone, []float32{1, 0}),
				}, nil
			},
		}
		svc := vector.NewSearchService(knowledge, fixedEmbedder([]float32{1, 0}))

		results, err := svc.Search(context.Background(), "q", docscan.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "good", results[0].Chunk.ID)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		t.Parallel()

		svc := vector.NewSearchService(&mock.KnowledgeService{}, &mock.Embedder{})

		_, err := svc.Search(context.Background(), "", docscan.SearchOptions{})
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
	})
}
