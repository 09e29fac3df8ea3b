package main

import (
	"encoding/json"
	"fmt"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/scan"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	minSeverity, err := parseSeverity(c.Severity)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	failOn, err := parseSeverity(c.FailOn)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	categories, err := parseCategories(c.Categories)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	files, err := scan.CollectFiles(c.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(deps.Stdout, "No scannable files found.")
		return nil
	}

	opts := scan.Options{
		Categories:     categories,
		MinSeverity:    minSeverity,
		Suggest:        c.Suggest,
		Save:           c.Save,
		DedupSentences: c.Dedup,
	}

	var progress scan.ProgressFunc
	if !c.JSON {
		progress = func(event scan.ProgressEvent) {
			switch event.Type {
			case scan.ProgressStarted:
				fmt.Fprintf(deps.Stderr, "Scanning %d files\n", event.Total)
			case scan.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
			}
		}
	}

	result, err := deps.Scanner.ScanPaths(deps.Ctx, files, opts, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Reports); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	} else {
		for _, report := range result.Reports {
			if len(report.Issues) == 0 {
				continue
			}
			fmt.Fprintln(deps.Stdout, docscan.FormatReport(report))
		}
		fmt.Fprintf(deps.Stdout, "%d files scanned, %d sentences, %d issues",
			result.Files, result.Sentences, result.Issues)
		if result.Failed > 0 {
			fmt.Fprintf(deps.Stdout, ", %d failed", result.Failed)
		}
		fmt.Fprintln(deps.Stdout)
	}

	if failOn != "" {
		for _, report := range result.Reports {
			if max, ok := report.MaxSeverity(); ok && max.AtLeast(failOn) {
				return docscan.Errorf(docscan.EINVALID,
					"issues at or above severity %q found", failOn)
			}
		}
	}

	return nil
}

// parseSeverity validates a severity flag value. Empty means unset.
func parseSeverity(s string) (docscan.Severity, error) {
	switch docscan.Severity(s) {
	case "", docscan.SeverityInfo, docscan.SeverityWarning, docscan.SeverityError:
		return docscan.Severity(s), nil
	}
	return "", docscan.Errorf(docscan.EINVALID, "unknown severity %q (expected info, warning or error)", s)
}

// parseCategories validates category flag values.
func parseCategories(values []string) ([]docscan.Category, error) {
	var categories []docscan.Category
	for _, v := range values {
		c := docscan.Category(v)
		if !docscan.ValidCategory(c) {
			return nil, docscan.Errorf(docscan.EINVALID, "unknown category %q", v)
		}
		categories = append(categories, c)
	}
	return categories, nil
}
