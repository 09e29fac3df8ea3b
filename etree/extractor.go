// Package etree extracts content from DITA-style XML topics, mapping topic
// markup to HTML so XML sources flow through the same Markdown conversion
// path as HTML sources.
package etree

import (
	"strings"

	"github.com/Tharun135/docscan"
	"github.com/beevik/etree"
)

// bodyTags are the topic body containers, one per DITA topic type.
var bodyTags = []string{"body", "conbody", "taskbody", "refbody"}

// tagMap renames DITA elements to their closest HTML equivalents. Elements
// not listed keep their tag, which the Markdown converter treats as inline
// content.
var tagMap = map[string]string{
	"conbody":      "div",
	"taskbody":     "div",
	"refbody":      "div",
	"body":         "div",
	"section":      "section",
	"title":        "h2",
	"shortdesc":    "p",
	"steps":        "ol",
	"step":         "li",
	"cmd":          "p",
	"info":         "p",
	"note":         "p",
	"codeblock":    "pre",
	"codeph":       "code",
	"filepath":     "code",
	"userinput":    "code",
	"systemoutput": "code",
	"uicontrol":    "b",
	"xref":         "a",
	"simpletable":  "table",
	"sthead":       "tr",
	"strow":        "tr",
	"stentry":      "td",
}

// Ensure Extractor implements docscan.Extractor at compile time.
var _ docscan.Extractor = (*Extractor)(nil)

// Extractor extracts title and body content from XML topics.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses an XML topic and returns its title and body as HTML.
func (e *Extractor) Extract(rawXML string) (*docscan.ExtractResult, error) {
	if strings.TrimSpace(rawXML) == "" {
		return nil, docscan.Errorf(docscan.EINVALID, "empty XML input")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(rawXML); err != nil {
		return nil, docscan.Errorf(docscan.EINVALID, "failed to parse XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docscan.Errorf(docscan.EINVALID, "XML document has no root element")
	}

	var title string
	if el := root.FindElement("title"); el != nil {
		title = strings.TrimSpace(el.Text())
	}

	body := findBody(root)
	if body == nil {
		return &docscan.ExtractResult{Title: title}, nil
	}

	renameTags(body)

	rendered := etree.NewDocument()
	rendered.SetRoot(body.Copy())
	contentHTML, err := rendered.WriteToString()
	if err != nil {
		return nil, err
	}

	return &docscan.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

// findBody returns the first topic body container under root, searching
// nested topics as well.
func findBody(root *etree.Element) *etree.Element {
	for _, tag := range bodyTags {
		if el := root.FindElement(".//" + tag); el != nil {
			return el
		}
	}
	return nil
}

// renameTags rewrites DITA tags to HTML in place, depth first.
func renameTags(el *etree.Element) {
	for _, child := range el.ChildElements() {
		renameTags(child)
	}
	if mapped, ok := tagMap[el.Tag]; ok {
		el.Tag = mapped
	}
}
