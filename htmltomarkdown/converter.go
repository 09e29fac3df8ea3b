// Package htmltomarkdown converts extracted HTML into Markdown, the common
// format every scan input is normalized to before rule checks.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/Tharun135/docscan"
)

// Ensure Converter implements docscan.Converter at compile time.
var _ docscan.Converter = (*Converter)(nil)

// Converter normalizes HTML to Markdown using html-to-markdown with the
// commonmark and table plugins, so tables in reference docs survive
// conversion instead of collapsing into run-on text.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Output is trimmed to a
// single trailing newline so stored document content is stable across
// converter versions.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docscan.Errorf(docscan.EINVALID, "empty HTML input")
	}

	markdown, err := c.conv.ConvertString(html)
	if err != nil {
		return "", docscan.WrapError(err, docscan.EINTERNAL, "convert HTML")
	}

	return strings.TrimSpace(markdown) + "\n", nil
}
