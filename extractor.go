package docscan

// ExtractResult holds the extracted content from a structured document.
type ExtractResult struct {
	// Title is the document title extracted from metadata or headings.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar) has been removed.
	ContentHTML string
}

// Extractor extracts main content from structured markup (HTML pages,
// XML authoring topics), removing boilerplate.
type Extractor interface {
	// Extract processes raw markup and returns the main content.
	Extract(raw string) (*ExtractResult, error)
}
