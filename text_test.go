package docscan_test

import (
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("unwraps links and emphasis", func(t *testing.T) {
		t.Parallel()

		markdown := "See the [user guide](https://example.com) for **more** details."

		text := docscan.StripMarkdown(markdown)

		assert.Equal(t, "See the user guide for more details.", text)
	})

	t.Run("removes heading markers but keeps titles", func(t *testing.T) {
		t.Parallel()

		markdown := "# Getting Started\n\nInstall the tool first."

		text := docscan.StripMarkdown(markdown)

		assert.Contains(t, text, "Getting Started")
		assert.Contains(t, text, "Install the tool first.")
		assert.NotContains(t, text, "#")
	})

	t.Run("drops fenced code blocks", func(t *testing.T) {
		t.Parallel()

		markdown := "Run the command:\n\n```bash\necho hello\n```\n\nThen check the output."

		text := docscan.StripMarkdown(markdown)

		assert.NotContains(t, text, "echo hello")
		assert.Contains(t, text, "Then check the output.")
	})

	t.Run("drops inline code", func(t *testing.T) {
		t.Parallel()

		text := docscan.StripMarkdown("Use `kubectl` to deploy.")

		assert.Equal(t, "Use  to deploy.", text)
	})

	t.Run("unwraps list items", func(t *testing.T) {
		t.Parallel()

		markdown := "- First step here.\n- Second step here.\n1. Numbered step."

		text := docscan.StripMarkdown(markdown)

		assert.NotContains(t, text, "- ")
		assert.Contains(t, text, "First step here.")
		assert.Contains(t, text, "Numbered step.")
	})

	t.Run("drops tables", func(t *testing.T) {
		t.Parallel()

		markdown := "Intro text.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\nOutro text."

		text := docscan.StripMarkdown(markdown)

		assert.NotContains(t, text, "|")
		assert.Contains(t, text, "Intro text.")
		assert.Contains(t, text, "Outro text.")
	})

	t.Run("strips html tags", func(t *testing.T) {
		t.Parallel()

		text := docscan.StripMarkdown("Click the <b>Save</b> button.")

		assert.Equal(t, "Click the Save button.", text)
	})

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docscan.StripMarkdown(""))
	})
}

func TestExtractSections(t *testing.T) {
	t.Parallel()

	t.Run("extracts heading with content", func(t *testing.T) {
		t.Parallel()

		markdown := "# Introduction\n\nSome content here."

		sections := docscan.ExtractSections(markdown)

		require.Len(t, sections, 1)
		assert.Equal(t, 1, sections[0].Level)
		assert.Equal(t, "Introduction", sections[0].Title)
		assert.Equal(t, "introduction", sections[0].Anchor)
		assert.Equal(t, "Some content here.", sections[0].Content)
	})

	t.Run("splits content between headings", func(t *testing.T) {
		t.Parallel()

		markdown := "# First\n\nAlpha text.\n\n## Second\n\nBeta text."

		sections := docscan.ExtractSections(markdown)

		require.Len(t, sections, 2)
		assert.Equal(t, "Alpha text.", sections[0].Content)
		assert.Equal(t, "Beta text.", sections[1].Content)
	})

	t.Run("generates URL-safe anchors", func(t *testing.T) {
		t.Parallel()

		sections := docscan.ExtractSections("# Getting Started With Go")

		require.Len(t, sections, 1)
		assert.Equal(t, "getting-started-with-go", sections[0].Anchor)
	})

	t.Run("handles duplicate headings with numeric suffixes", func(t *testing.T) {
		t.Parallel()

		markdown := "# Example\n## Example\n### Example"

		sections := docscan.ExtractSections(markdown)

		require.Len(t, sections, 3)
		assert.Equal(t, "example", sections[0].Anchor)
		assert.Equal(t, "example-1", sections[1].Anchor)
		assert.Equal(t, "example-2", sections[2].Anchor)
	})

	t.Run("ignores code blocks with hash symbols", func(t *testing.T) {
		t.Parallel()

		markdown := "# Real Heading\n\n```bash\n# This is a comment\necho hello\n```\n\n## Another Real Heading"

		sections := docscan.ExtractSections(markdown)

		require.Len(t, sections, 2)
		assert.Equal(t, "Real Heading", sections[0].Title)
		assert.Equal(t, "Another Real Heading", sections[1].Title)
	})

	t.Run("returns empty slice for markdown without headings", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docscan.ExtractSections("Just some text.\n\nWith paragraphs."))
	})
}
