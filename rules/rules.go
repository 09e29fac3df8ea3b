// Package rules provides the style rule modules that scan sentences for
// writing problems: passive voice, vague terms, accessibility phrasing,
// tone, and terminology. Each rule implements docscan.Rule and is safe
// for concurrent use.
package rules

import (
	"strings"

	"github.com/Tharun135/docscan"
)

// Default returns a RuleSet with every built-in rule registered.
func Default() *docscan.RuleSet {
	return docscan.NewRuleSet(
		NewPassiveVoice(),
		NewVagueTerms(),
		NewAccessibility(),
		NewTone(),
		NewTerminology(),
	)
}

// tokenOffsets returns the byte offset of each token within the sentence
// text. Tokens are located by sequential search, so repeated words resolve
// to their in-order occurrence.
func tokenOffsets(s docscan.Sentence) []int {
	offsets := make([]int, len(s.Tokens))
	pos := 0
	for i, tok := range s.Tokens {
		idx := strings.Index(s.Text[pos:], tok.Text)
		if idx < 0 {
			offsets[i] = -1
			continue
		}
		offsets[i] = pos + idx
		pos += idx + len(tok.Text)
	}
	return offsets
}
