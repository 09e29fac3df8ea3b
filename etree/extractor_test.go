package etree_test

import (
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and concept body", func(t *testing.T) {
		t.Parallel()

		xml := `<?xml version="1.0" encoding="UTF-8"?>
<concept id="overview">
  <title>Product Overview</title>
  <conbody>
    <p>The product is installed by the setup wizard.</p>
    <codeblock>setup.exe /quiet</codeblock>
  </conbody>
</concept>`

		ext := etree.NewExtractor()
		result, err := ext.Extract(xml)

		require.NoError(t, err)
		assert.Equal(t, "Product Overview", result.Title)
		assert.Contains(t, result.ContentHTML, "installed by the setup wizard")
		assert.Contains(t, result.ContentHTML, "<pre>setup.exe /quiet</pre>")
	})

	t.Run("maps task steps to a list", func(t *testing.T) {
		t.Parallel()

		xml := `<task id="install">
  <title>Installing</title>
  <taskbody>
    <steps>
      <step><cmd>Download the package.</cmd></step>
      <step><cmd>Run the installer.</cmd></step>
    </steps>
  </taskbody>
</task>`

		ext := etree.NewExtractor()
		result, err := ext.Extract(xml)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "<ol>")
		assert.Contains(t, result.ContentHTML, "<li>")
		assert.Contains(t, result.ContentHTML, "Run the installer.")
	})

	t.Run("maps inline markup to code", func(t *testing.T) {
		t.Parallel()

		xml := `<topic id="config">
  <title>Configuration</title>
  <body>
    <p>Edit <filepath>/etc/app.conf</filepath> and set <codeph>debug=true</codeph>.</p>
  </body>
</topic>`

		ext := etree.NewExtractor()
		result, err := ext.Extract(xml)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "<code>/etc/app.conf</code>")
		assert.Contains(t, result.ContentHTML, "<code>debug=true</code>")
	})

	t.Run("handles topics without a body", func(t *testing.T) {
		t.Parallel()

		xml := `<topic id="stub"><title>Stub Topic</title></topic>`

		ext := etree.NewExtractor()
		result, err := ext.Extract(xml)

		require.NoError(t, err)
		assert.Equal(t, "Stub Topic", result.Title)
		assert.Empty(t, result.ContentHTML)
	})

	t.Run("rejects malformed XML", func(t *testing.T) {
		t.Parallel()

		ext := etree.NewExtractor()
		_, err := ext.Extract("<topic><title>Broken")

		require.Error(t, err)
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := etree.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
	})
}
