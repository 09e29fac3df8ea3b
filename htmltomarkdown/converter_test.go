package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Click the button to continue.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Click the button to continue.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Installation</h1><h2>Prerequisites</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Installation")
		assert.Contains(t, md, "## Prerequisites")
	})

	t.Run("converts code blocks", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<pre><code>make install</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "make install")
		assert.Contains(t, md, "```")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Flag</th><th>Default</th></tr><tr><td>--json</td><td>false</td></tr></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Flag")
		assert.Contains(t, md, "--json")
		assert.Contains(t, md, "|")
	})

	t.Run("trims output to a single trailing newline", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<p>First.</p>\n\n\n")

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(md, ".\n"), "got %q", md)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
	})
}
