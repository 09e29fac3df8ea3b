package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tharun135/docscan"
	main "github.com/Tharun135/docscan/cmd/docscan"
	"github.com/Tharun135/docscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists documents with ID, name, and issue count", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ docscan.DocumentFilter) ([]*docscan.Document, error) {
				return []*docscan.Document{
					{
						ID:         "doc-123",
						Name:       "install.md",
						Format:     docscan.FormatMarkdown,
						IssueCount: 4,
						ScannedAt:  time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:         "doc-456",
						Name:       "api.html",
						Format:     docscan.FormatHTML,
						IssueCount: 0,
						ScannedAt:  time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Documents: documents,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "doc-123")
		assert.Contains(t, output, "doc-456")
		assert.Contains(t, output, "install.md")
		assert.Contains(t, output, "api.html")
		assert.Contains(t, output, "4 issues")
	})

	t.Run("shows helpful message when no documents exist", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ docscan.DocumentFilter) ([]*docscan.Document, error) {
				return []*docscan.Document{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Documents: documents,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents found")
	})

	t.Run("writes error to stderr on service failure", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ docscan.DocumentFilter) ([]*docscan.Document, error) {
				return nil, errors.New("database locked")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Documents: documents,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
