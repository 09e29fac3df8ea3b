package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tharun135/docscan"
	main "github.com/Tharun135/docscan/cmd/docscan"
	"github.com/Tharun135/docscan/mock"
	"github.com/Tharun135/docscan/rules"
	"github.com/Tharun135/docscan/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineSegmenter treats every line of text as one sentence.
func lineSegmenter() *mock.Segmenter {
	return &mock.Segmenter{
		SegmentFn: func(_ context.Context, text string) ([]docscan.Sentence, error) {
			var sentences []docscan.Sentence
			offset := 0
			for _, line := range strings.Split(text, "\n") {
				if trimmed := strings.TrimSpace(line); trimmed != "" {
					sentences = append(sentences, docscan.Sentence{
						Text:  trimmed,
						Start: offset,
						End:   offset + len(line),
					})
				}
				offset += len(line) + 1
			}
			return sentences, nil
		},
	}
}

func testScanner() *scan.Scanner {
	return &scan.Scanner{
		Segmenter: lineSegmenter(),
		Rules:     rules.Default(),
	}
}

func TestScanCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports issues and prints a summary", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "guide.md")
		require.NoError(t, os.WriteFile(path,
			[]byte("Simply run the installer.\nThe tool copies the file.\n"), 0644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scanner: testScanner(),
		}

		cmd := &main.ScanCmd{Paths: []string{path}, Dedup: true, Concurrency: 1}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "guide.md")
		assert.Contains(t, output, "vague-terms")
		assert.Contains(t, output, "1 files scanned")
		assert.Contains(t, stderr.String(), "Scanning 1 files")
	})

	t.Run("json output is machine readable", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "guide.md")
		require.NoError(t, os.WriteFile(path, []byte("Simply run it.\n"), 0644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scanner: testScanner(),
		}

		cmd := &main.ScanCmd{Paths: []string{path}, JSON: true, Dedup: true}

		err := cmd.Run(deps)
		require.NoError(t, err)

		var reports []*docscan.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, "guide.md", reports[0].Document.Name)
		assert.NotEmpty(t, reports[0].Issues)
		assert.Empty(t, stderr.String(), "json mode should not print progress")
	})

	t.Run("fail-on returns an error when threshold met", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "guide.md")
		require.NoError(t, os.WriteFile(path, []byte("Simply run it.\n"), 0644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scanner: testScanner(),
		}

		cmd := &main.ScanCmd{Paths: []string{path}, FailOn: "info", Dedup: true}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
	})

	t.Run("rejects unknown severity", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.ScanCmd{Paths: []string{"x.md"}, Severity: "critical"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
		assert.Contains(t, stderr.String(), "critical")
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.ScanCmd{Paths: []string{"x.md"}, Categories: []string{"grammar"}}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, docscan.EINVALID, docscan.ErrorCode(err))
	})

	t.Run("reports when no scannable files found", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.ScanCmd{Paths: []string{t.TempDir()}}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No scannable files found")
	})
}
