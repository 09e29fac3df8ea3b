package main

import (
	"fmt"

	"github.com/Tharun135/docscan"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if docscan.ErrorCode(err) == docscan.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'docscan list' to see stored documents.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		}
		return err
	}

	issues, err := deps.Issues.FindIssues(deps.Ctx, docscan.IssueFilter{DocumentID: &doc.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	deref := make([]docscan.Issue, len(issues))
	for i, issue := range issues {
		deref[i] = *issue
	}

	report := docscan.NewReport(doc, deref, 0)
	fmt.Fprintln(deps.Stdout, docscan.FormatReport(report))
	return nil
}
