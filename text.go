package docscan

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in a markdown document.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`

	// Content is the text between this heading and the next one.
	Content string `json:"content"`
}

var (
	codeBlockRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`\n]*`")
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	headingRe    = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	htmlTagRe    = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	emphasisRe   = regexp.MustCompile(`(\*\*|__|\*|_)([^*_\n]+)(\*\*|__|\*|_)`)
	listMarkerRe = regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+`)
	blockquoteRe = regexp.MustCompile(`(?m)^\s*>+\s?`)
	tableRowRe   = regexp.MustCompile(`(?m)^\s*\|.*\|\s*$`)
	hrRe         = regexp.MustCompile(`(?m)^\s*([-*_]\s*){3,}$`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown converts markdown to plain text suitable for sentence
// segmentation. Code blocks, tables, and horizontal rules are dropped
// entirely; prose markers (emphasis, links, list bullets) are unwrapped.
func StripMarkdown(markdown string) string {
	if markdown == "" {
		return ""
	}

	text := codeBlockRe.ReplaceAllString(markdown, "")
	text = tableRowRe.ReplaceAllString(text, "")
	text = hrRe.ReplaceAllString(text, "")
	text = inlineCodeRe.ReplaceAllString(text, "")
	text = imageRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = headingRe.ReplaceAllString(text, "$2")
	text = htmlTagRe.ReplaceAllString(text, "")
	// Run emphasis twice: bold inside italics leaves nested markers.
	text = emphasisRe.ReplaceAllString(text, "$2")
	text = emphasisRe.ReplaceAllString(text, "$2")
	text = blockquoteRe.ReplaceAllString(text, "")
	text = listMarkerRe.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// ExtractSections parses markdown and returns all headings (H1-H6) with
// the content below each. It generates URL-safe anchors and handles
// duplicates with numeric suffixes.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	// Remove code blocks to avoid matching # in code
	cleaned := codeBlockRe.ReplaceAllString(markdown, "")

	locs := headingRe.FindAllStringSubmatchIndex(cleaned, -1)
	if len(locs) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(locs))
	anchorCounts := make(map[string]int)

	for i, loc := range locs {
		level := loc[3] - loc[2]
		title := strings.TrimSpace(cleaned[loc[4]:loc[5]])
		baseAnchor := generateAnchor(title)

		// Handle duplicates
		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		contentEnd := len(cleaned)
		if i+1 < len(locs) {
			contentEnd = locs[i+1][0]
		}
		content := strings.TrimSpace(cleaned[loc[1]:contentEnd])

		sections = append(sections, Section{
			Level:   level,
			Title:   title,
			Anchor:  anchor,
			Content: content,
		})
	}

	return sections
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}
