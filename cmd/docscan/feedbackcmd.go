package main

import (
	"fmt"

	"github.com/Tharun135/docscan"
)

// Run executes the feedback command.
func (c *FeedbackCmd) Run(deps *Dependencies) error {
	fb := &docscan.Feedback{
		IssueID: c.IssueID,
		Verdict: c.Verdict,
		Comment: c.Comment,
	}

	if err := deps.Feedback.CreateFeedback(deps.Ctx, fb); err != nil {
		if docscan.ErrorCode(err) == docscan.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: issue %q not found\n", c.IssueID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Recorded %s feedback for issue %s\n", fb.Verdict, fb.IssueID)
	return nil
}
