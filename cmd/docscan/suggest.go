package main

import (
	"fmt"

	"github.com/Tharun135/docscan"
)

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	category := docscan.Category(c.Category)
	if !docscan.ValidCategory(category) {
		fmt.Fprintf(deps.Stderr, "error: unknown category %q\n", c.Category)
		return docscan.Errorf(docscan.EINVALID, "unknown category %q", c.Category)
	}

	req := docscan.SuggestionRequest{
		Sentence: c.Sentence,
		Issue: docscan.Issue{
			Rule:     "manual",
			Category: category,
			Severity: docscan.SeverityInfo,
			Message:  c.Message,
			Sentence: c.Sentence,
		},
	}

	suggestion, err := deps.Suggester.Suggest(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, suggestion.Text)
	if suggestion.Source == docscan.SuggestionSourceLLM {
		fmt.Fprintf(deps.Stderr, "(%s via %s)\n", suggestion.Source, suggestion.Model)
	} else {
		fmt.Fprintf(deps.Stderr, "(%s)\n", suggestion.Source)
	}
	return nil
}
