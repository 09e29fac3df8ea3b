package docscan

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// DocumentFormat identifies the source format of a scanned document.
type DocumentFormat string

// Supported document formats.
const (
	FormatMarkdown DocumentFormat = "markdown"
	FormatHTML     DocumentFormat = "html"
	FormatXML      DocumentFormat = "xml"
	FormatText     DocumentFormat = "text"
)

// DetectFormat guesses the document format from a file path extension.
// Unknown extensions are treated as plain text.
func DetectFormat(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdx":
		return FormatMarkdown
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".xml", ".dita":
		return FormatXML
	default:
		return FormatText
	}
}

// Document represents a scanned document and its normalized content.
// Content holds the markdown representation regardless of source format.
type Document struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	SourcePath  string         `json:"sourcePath"`
	Format      DocumentFormat `json:"format"`
	Content     string         `json:"content"`
	ContentHash string         `json:"contentHash"`
	IssueCount  int            `json:"issueCount"`
	ScannedAt   time.Time      `json:"scannedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Format == "" {
		return Errorf(EINVALID, "document format required")
	}
	return nil
}

// DocumentService represents a service for managing scanned documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument updates an existing document.
	// Returns ENOTFOUND if document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document and its issues.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID         *string         `json:"id"`
	Name       *string         `json:"name"`
	SourcePath *string         `json:"sourcePath"`
	Format     *DocumentFormat `json:"format"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentUpdate represents fields that can be updated on a document.
type DocumentUpdate struct {
	Name       *string `json:"name"`
	Content    *string `json:"content"`
	IssueCount *int    `json:"issueCount"`
}
