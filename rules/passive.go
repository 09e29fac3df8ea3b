package rules

import (
	"regexp"
	"strings"

	"github.com/Tharun135/docscan"
)

var _ docscan.Rule = (*PassiveVoice)(nil)

// PassiveVoice flags sentences written in passive voice. When the sentence
// carries part-of-speech tags it looks for an auxiliary "be" (or "get")
// followed by a past participle; otherwise it falls back to a regex over
// common participles.
type PassiveVoice struct {
	exceptions map[string]bool
}

// auxiliaries that mark a passive construction.
var passiveAux = map[string]bool{
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"get": true, "gets": true, "got": true, "gotten": true,
}

// Participles that usually act as adjectives rather than passive verbs.
var defaultExceptions = []string{
	"interested", "located", "involved", "related", "based", "designed",
	"intended", "supposed", "used", "limited", "concerned", "associated",
}

// passiveFallbackRe matches aux + participle when no POS tags are available.
var passiveFallbackRe = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+(?:\w+ly\s+)?([a-z]+ed|known|given|taken|seen|done|made|found|written|shown|built|sent|held|kept|chosen|driven|drawn|thrown|broken|hidden)\b`)

// NewPassiveVoice creates the passive voice rule with default exceptions.
func NewPassiveVoice() *PassiveVoice {
	exceptions := make(map[string]bool, len(defaultExceptions))
	for _, word := range defaultExceptions {
		exceptions[word] = true
	}
	return &PassiveVoice{exceptions: exceptions}
}

// Name implements docscan.Rule.
func (r *PassiveVoice) Name() string { return "passive-voice" }

// Category implements docscan.Rule.
func (r *PassiveVoice) Category() docscan.Category { return docscan.CategoryPassiveVoice }

// Check implements docscan.Rule.
func (r *PassiveVoice) Check(sentence docscan.Sentence) []docscan.Issue {
	if len(sentence.Tokens) > 0 {
		return r.checkTagged(sentence)
	}
	return r.checkUntagged(sentence)
}

// checkTagged detects passive constructions using POS tags: an auxiliary
// followed by a past participle (VBN), allowing intervening adverbs.
func (r *PassiveVoice) checkTagged(sentence docscan.Sentence) []docscan.Issue {
	var issues []docscan.Issue
	offsets := tokenOffsets(sentence)
	tokens := sentence.Tokens

	for i, tok := range tokens {
		if !passiveAux[strings.ToLower(tok.Text)] {
			continue
		}

		// Look past adverbs ("was quickly deleted") but no further.
		j := i + 1
		for j < len(tokens) && strings.HasPrefix(tokens[j].Tag, "RB") {
			j++
		}
		if j >= len(tokens) || tokens[j].Tag != "VBN" {
			continue
		}
		participle := strings.ToLower(tokens[j].Text)
		if r.exceptions[participle] {
			continue
		}
		if offsets[i] < 0 || offsets[j] < 0 {
			continue
		}

		start := offsets[i]
		end := offsets[j] + len(tokens[j].Text)
		issues = append(issues, docscan.Issue{
			Rule:     r.Name(),
			Category: r.Category(),
			Severity: docscan.SeverityWarning,
			Message:  "sentence uses passive voice; prefer active voice naming the actor",
			Match:    sentence.Text[start:end],
			Sentence: sentence.Text,
			Start:    start,
			End:      end,
		})
	}

	return issues
}

// checkUntagged falls back to a regex when no POS tags are available.
func (r *PassiveVoice) checkUntagged(sentence docscan.Sentence) []docscan.Issue {
	var issues []docscan.Issue

	for _, loc := range passiveFallbackRe.FindAllStringSubmatchIndex(sentence.Text, -1) {
		participle := strings.ToLower(sentence.Text[loc[4]:loc[5]])
		if r.exceptions[participle] {
			continue
		}
		issues = append(issues, docscan.Issue{
			Rule:     r.Name(),
			Category: r.Category(),
			Severity: docscan.SeverityWarning,
			Message:  "sentence uses passive voice; prefer active voice naming the actor",
			Match:    sentence.Text[loc[0]:loc[1]],
			Sentence: sentence.Text,
			Start:    loc[0],
			End:      loc[1],
		})
	}

	return issues
}
