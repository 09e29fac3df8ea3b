// Package scan provides document scanning orchestration.
// It coordinates format conversion, sentence segmentation, rule checks,
// and optional rewrite suggestions and persistence.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/Tharun135/docscan"
	"golang.org/x/sync/errgroup"
)

// Scanner orchestrates scanning documentation files.
type Scanner struct {
	Segmenter         docscan.Segmenter
	Rules             *docscan.RuleSet
	Converter         docscan.Converter
	HTMLExtractor     docscan.Extractor
	FallbackExtractor docscan.Extractor
	XMLExtractor      docscan.Extractor
	Suggester         docscan.Suggester
	Documents         docscan.DocumentService
	Issues            docscan.IssueService
	Limiter           *SuggestLimiter
	Concurrency       int
}

// Options configures a scan run.
type Options struct {
	// Categories restricts which rule categories run. Empty means all.
	Categories []docscan.Category

	// MinSeverity drops issues below the threshold. Empty keeps all.
	MinSeverity docscan.Severity

	// Suggest attaches rewrite suggestions to each issue.
	Suggest bool

	// Save persists documents and issues to storage.
	Save bool

	// DedupSentences flags each distinct sentence once per run, so
	// boilerplate repeated across files is reported a single time.
	DedupSentences bool
}

// Result holds the outcome of a scan operation.
type Result struct {
	Reports   []*docscan.Report
	Files     int
	Failed    int
	Issues    int
	Sentences int
}

// ProgressEvent reports progress during a scan operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of processing a single file.
type fileResult struct {
	position int
	path     string
	report   *docscan.Report
	err      error
}

// ScanPaths scans the given files and returns per-file reports in input
// order. The progress callback, if provided, receives events as scanning
// proceeds.
func (s *Scanner) ScanPaths(ctx context.Context, paths []string, opts Options, progress ProgressFunc) (*Result, error) {
	if len(paths) == 0 {
		return &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var seen *sentenceSet
	if opts.DedupSentences {
		seen = newSentenceSet()
	}

	resultCh := make(chan fileResult, len(paths))

	var completed atomic.Int64
	total := len(paths)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			g.Go(func() error {
				result := s.processFile(gctx, i, path, opts, seen)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]fileResult, len(paths))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Path:      result.path,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      result.path,
			})
		}
	}

	// Assemble reports and persist
	out := &Result{Files: total, Failed: failedCount}
	for _, result := range results {
		if result.err != nil {
			continue
		}

		report := result.report
		if opts.Save && s.Documents != nil {
			if err := s.saveReport(ctx, report); err != nil {
				out.Failed++
				if progress != nil {
					progress(ProgressEvent{
						Type:      ProgressFailed,
						Completed: total,
						Total:     total,
						Path:      report.Document.SourcePath,
						Error:     err,
					})
				}
				continue
			}
		}

		out.Reports = append(out.Reports, report)
		out.Issues += report.Stats.Issues
		out.Sentences += report.Stats.Sentences
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return out, nil
}

// processFile reads, normalizes, segments, and checks a single file.
func (s *Scanner) processFile(ctx context.Context, position int, path string, opts Options, seen *sentenceSet) fileResult {
	result := fileResult{
		position: position,
		path:     path,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		result.err = err
		return result
	}

	format := docscan.DetectFormat(path)
	markdown, err := s.normalize(format, string(raw))
	if err != nil {
		result.err = err
		return result
	}

	plain := docscan.StripMarkdown(markdown)

	sentences, err := s.Segmenter.Segment(ctx, plain)
	if err != nil {
		result.err = err
		return result
	}

	var issues []docscan.Issue
	for _, sentence := range sentences {
		if seen != nil && seen.seenOrAdd(sentence.Text) {
			continue
		}
		for _, issue := range s.Rules.Check(sentence, opts.Categories...) {
			if opts.MinSeverity != "" && !issue.Severity.AtLeast(opts.MinSeverity) {
				continue
			}
			issues = append(issues, issue)
		}
	}

	if opts.Suggest && s.Suggester != nil {
		if err := s.suggest(ctx, issues); err != nil {
			result.err = err
			return result
		}
	}

	doc := &docscan.Document{
		Name:       filepath.Base(path),
		SourcePath: path,
		Format:     format,
		Content:    markdown,
		IssueCount: len(issues),
	}

	result.report = docscan.NewReport(doc, issues, len(sentences))
	return result
}

// normalize converts a document of any supported format to Markdown.
func (s *Scanner) normalize(format docscan.DocumentFormat, content string) (string, error) {
	switch format {
	case docscan.FormatHTML:
		extracted, err := s.extractHTML(content)
		if err != nil {
			return "", err
		}
		if extracted.ContentHTML == "" {
			return "", docscan.Errorf(docscan.EINVALID, "no content extracted from HTML")
		}
		return s.Converter.Convert(extracted.ContentHTML)

	case docscan.FormatXML:
		extracted, err := s.XMLExtractor.Extract(content)
		if err != nil {
			return "", err
		}
		if extracted.ContentHTML == "" {
			return extracted.Title, nil
		}
		return s.Converter.Convert(extracted.ContentHTML)

	default:
		return content, nil
	}
}

// extractHTML tries the primary extractor, falling back to the secondary
// when the primary fails or finds nothing.
func (s *Scanner) extractHTML(content string) (*docscan.ExtractResult, error) {
	extracted, err := s.HTMLExtractor.Extract(content)
	if err == nil && extracted.ContentHTML != "" {
		return extracted, nil
	}
	if s.FallbackExtractor == nil {
		return extracted, err
	}
	return s.FallbackExtractor.Extract(content)
}

// suggest attaches a rewrite suggestion to each issue. Suggestion failures
// leave the issue without one rather than failing the file; context errors
// still abort.
func (s *Scanner) suggest(ctx context.Context, issues []docscan.Issue) error {
	for i := range issues {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return err
			}
		}

		suggestion, err := s.Suggester.Suggest(ctx, docscan.SuggestionRequest{
			Sentence: issues[i].Sentence,
			Issue:    issues[i],
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		issues[i].Suggestion = suggestion.Text
	}
	return nil
}

// saveReport persists the report's document and issues.
func (s *Scanner) saveReport(ctx context.Context, report *docscan.Report) error {
	if err := s.Documents.CreateDocument(ctx, report.Document); err != nil {
		return err
	}

	if len(report.Issues) == 0 || s.Issues == nil {
		return nil
	}

	batch := make([]*docscan.Issue, len(report.Issues))
	for i := range report.Issues {
		report.Issues[i].DocumentID = report.Document.ID
		batch[i] = &report.Issues[i]
	}
	return s.Issues.CreateIssues(ctx, batch)
}
