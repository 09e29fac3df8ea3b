package mock

import (
	"context"

	"github.com/Tharun135/docscan"
)

var _ docscan.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docscan.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *docscan.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*docscan.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter docscan.DocumentFilter) ([]*docscan.Document, error)
	UpdateDocumentFn   func(ctx context.Context, id string, upd docscan.DocumentUpdate) (*docscan.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *docscan.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docscan.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter docscan.DocumentFilter) ([]*docscan.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd docscan.DocumentUpdate) (*docscan.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
