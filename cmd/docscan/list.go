package main

import (
	"fmt"

	"github.com/Tharun135/docscan"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, docscan.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'docscan scan --save' to store one.")
		return nil
	}

	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %-30s  %-8s  %3d issues  %s\n",
			doc.ID, doc.Name, doc.Format, doc.IssueCount, doc.ScannedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
