package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Tharun135/docscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docscan.KnowledgeService = (*KnowledgeService)(nil)

// KnowledgeService implements docscan.KnowledgeService using SQLite.
// Embeddings are stored as little-endian float32 BLOBs.
type KnowledgeService struct {
	db *DB
}

// NewKnowledgeService creates a new KnowledgeService.
func NewKnowledgeService(db *DB) *KnowledgeService {
	return &KnowledgeService{db: db}
}

// CreateChunk creates a new chunk.
func (s *KnowledgeService) CreateChunk(ctx context.Context, chunk *docscan.KnowledgeChunk) error {
	if err := chunk.Validate(); err != nil {
		return err
	}

	chunk.ID = uuid.New().String()
	chunk.CreatedAt = time.Now().UTC()
	chunk.ContentHash = hashContent(chunk.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO knowledge_chunks (id, category, title, content, content_hash, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, chunk.ID, string(chunk.Category), chunk.Title, chunk.Content, chunk.ContentHash,
		encodeEmbedding(chunk.Embedding), chunk.CreatedAt.Format(time.RFC3339))

	return err
}

// CreateChunks creates multiple chunks in a batch.
func (s *KnowledgeService) CreateChunks(ctx context.Context, chunks []*docscan.KnowledgeChunk) error {
	for _, chunk := range chunks {
		if err := s.CreateChunk(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}

const chunkColumns = "id, category, title, content, content_hash, embedding, created_at"

// scanChunk scans one chunk row.
func scanChunk(scan func(dest ...any) error) (*docscan.KnowledgeChunk, error) {
	var chunk docscan.KnowledgeChunk
	var category, createdAt string
	var embedding []byte

	if err := scan(&chunk.ID, &category, &chunk.Title, &chunk.Content,
		&chunk.ContentHash, &embedding, &createdAt); err != nil {
		return nil, err
	}

	chunk.Category = docscan.Category(category)

	var err error
	chunk.Embedding, err = decodeEmbedding(embedding)
	if err != nil {
		return nil, err
	}
	chunk.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &chunk, nil
}

// FindChunkByID retrieves a chunk by ID.
func (s *KnowledgeService) FindChunkByID(ctx context.Context, id string) (*docscan.KnowledgeChunk, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+chunkColumns+" FROM knowledge_chunks WHERE id = ?", id)

	chunk, err := scanChunk(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docscan.Errorf(docscan.ENOTFOUND, "chunk not found")
	}
	if err != nil {
		return nil, err
	}

	return chunk, nil
}

// FindChunks retrieves chunks matching the filter.
func (s *KnowledgeService) FindChunks(ctx context.Context, filter docscan.ChunkFilter) ([]*docscan.KnowledgeChunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + chunkColumns + " FROM knowledge_chunks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*docscan.KnowledgeChunk
	for rows.Next() {
		chunk, err := scanChunk(rows.Scan)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}

	return chunks, rows.Err()
}

// DeleteChunk permanently removes a chunk.
func (s *KnowledgeService) DeleteChunk(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM knowledge_chunks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docscan.Errorf(docscan.ENOTFOUND, "chunk not found")
	}

	return nil
}
