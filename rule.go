package docscan

// Rule checks a single sentence for one class of style problem.
// Implementations must be safe for concurrent use.
type Rule interface {
	// Name returns a stable rule identifier (e.g., "passive-voice").
	Name() string

	// Category returns the category of issues this rule produces.
	Category() Category

	// Check scans a sentence and returns any issues found. Issues are
	// returned with sentence-relative spans; DocumentID and ID are left
	// for the caller to fill in.
	Check(sentence Sentence) []Issue
}

// RuleSet is an ordered collection of rules with category filtering.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates a RuleSet from the given rules.
func NewRuleSet(rules ...Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// Register appends a rule to the set.
func (rs *RuleSet) Register(r Rule) {
	rs.rules = append(rs.rules, r)
}

// Rules returns all registered rules in registration order.
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}

// ForCategories returns the subset of rules matching the given categories.
// An empty category list returns all rules.
func (rs *RuleSet) ForCategories(categories ...Category) []Rule {
	if len(categories) == 0 {
		return rs.rules
	}
	want := make(map[Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	var out []Rule
	for _, r := range rs.rules {
		if want[r.Category()] {
			out = append(out, r)
		}
	}
	return out
}

// Check runs every rule (optionally filtered by category) over a sentence.
func (rs *RuleSet) Check(sentence Sentence, categories ...Category) []Issue {
	var issues []Issue
	for _, r := range rs.ForCategories(categories...) {
		issues = append(issues, r.Check(sentence)...)
	}
	return issues
}
