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
var _ docscan.DocumentService = (*DocumentService)(nil)

// DocumentService implements docscan.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docscan.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ScannedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, source_path, format, content, content_hash, issue_count, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Name, doc.SourcePath, string(doc.Format), doc.Content, doc.ContentHash,
		doc.IssueCount, doc.ScannedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docscan.Document, error) {
	var doc docscan.Document
	var format, scannedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_path, format, content, content_hash, issue_count, scanned_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Name, &doc.SourcePath, &format, &doc.Content,
		&doc.ContentHash, &doc.IssueCount, &scannedAt)

	if err == sql.ErrNoRows {
		return nil, docscan.Errorf(docscan.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.Format = docscan.DocumentFormat(format)
	doc.ScannedAt, err = parseRFC3339(scannedAt, "scanned_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docscan.DocumentFilter) ([]*docscan.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_path, format, content, content_hash, issue_count, scanned_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}
	if filter.Format != nil {
		query.WriteString(" AND format = ?")
		args = append(args, string(*filter.Format))
	}

	query.WriteString(" ORDER BY scanned_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docscan.Document
	for rows.Next() {
		var doc docscan.Document
		var format, scannedAt string

		if err := rows.Scan(&doc.ID, &doc.Name, &doc.SourcePath, &format, &doc.Content,
			&doc.ContentHash, &doc.IssueCount, &scannedAt); err != nil {
			return nil, err
		}

		doc.Format = docscan.DocumentFormat(format)
		doc.ScannedAt, err = parseRFC3339(scannedAt, "scanned_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd docscan.DocumentUpdate) (*docscan.Document, error) {
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		doc.Name = *upd.Name
	}
	if upd.Content != nil {
		doc.Content = *upd.Content
		doc.ContentHash = hashContent(doc.Content)
	}
	if upd.IssueCount != nil {
		doc.IssueCount = *upd.IssueCount
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET name = ?, content = ?, content_hash = ?, issue_count = ?
		WHERE id = ?
	`, doc.Name, doc.Content, doc.ContentHash, doc.IssueCount, id)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document. Associated issues are
// removed by the foreign key cascade.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docscan.Errorf(docscan.ENOTFOUND, "document not found")
	}

	return nil
}
