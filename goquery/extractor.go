// Package goquery implements a selector-based content extractor used as a
// fallback when heuristic extraction finds nothing, and for stripped-down
// HTML fragments that lack the page structure heuristics rely on.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Tharun135/docscan"
)

// contentSelectors are tried in order; the first non-empty match wins.
// Ordered from most to least specific.
var contentSelectors = []string{
	"main article",
	"article",
	"main",
	"div.content",
	"div#content",
	"body",
}

// chromeSelectors match page chrome removed from the chosen content node.
var chromeSelectors = []string{
	"nav",
	"header",
	"footer",
	"aside",
	"script",
	"style",
	"noscript",
}

// Ensure Extractor implements docscan.Extractor at compile time.
var _ docscan.Extractor = (*Extractor)(nil)

// Extractor extracts content by trying common content selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses HTML and returns the first matching content region with
// page chrome removed.
func (e *Extractor) Extract(rawHTML string) (*docscan.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docscan.Errorf(docscan.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docscan.Errorf(docscan.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}

		sel.Find(strings.Join(chromeSelectors, ", ")).Remove()

		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}

		contentHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		return &docscan.ExtractResult{
			Title:       title,
			ContentHTML: contentHTML,
		}, nil
	}

	return &docscan.ExtractResult{Title: title}, nil
}

// extractTitle prefers the first h1, then the document title with common
// site suffixes trimmed.
func extractTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	for _, sep := range []string{" - ", " | ", " — "} {
		if i := strings.Index(title, sep); i > 0 {
			title = title[:i]
			break
		}
	}
	return strings.TrimSpace(title)
}
