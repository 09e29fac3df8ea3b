package rules_test

import (
	"testing"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVagueTerms(t *testing.T) {
	t.Parallel()

	rule := rules.NewVagueTerms()

	t.Run("flags minimizing words", func(t *testing.T) {
		t.Parallel()

		issues := rule.Check(docscan.Sentence{Text: "Simply click the button."})

		require.Len(t, issues, 1)
		assert.Equal(t, "Simply", issues[0].Match)
		assert.Equal(t, docscan.SeverityInfo, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "minimizing word")
	})

	t.Run("flags imprecise quantifiers", func(t *testing.T) {
		t.Parallel()

		issues := rule.Check(docscan.Sentence{Text: "There are various options available."})

		require.Len(t, issues, 1)
		assert.Equal(t, "various", issues[0].Match)
	})

	t.Run("flags open-ended lists", func(t *testing.T) {
		t.Parallel()

		issues := rule.Check(docscan.Sentence{Text: "Configure the host, port, and so on."})

		require.Len(t, issues, 1)
		assert.Equal(t, "and so on", issues[0].Match)
	})

	t.Run("reports every occurrence", func(t *testing.T) {
		t.Parallel()

		issues := rule.Check(docscan.Sentence{Text: "Just install it and just run it."})

		assert.Len(t, issues, 2)
	})

	t.Run("does not match inside words", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, rule.Check(docscan.Sentence{Text: "The justification is documented."}))
	})

	t.Run("clean sentence has no issues", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, rule.Check(docscan.Sentence{Text: "Set the timeout to 30 seconds."}))
	})
}
