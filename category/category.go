// Package category assigns spending categories to transaction descriptions
// using an ordered keyword rule table.
//
// The rule table is configuration, not business logic: callers inject their
// own rules at construction time, which keeps categorization swappable per
// statement provider without touching extraction.
package category

import "strings"

// Category is the label assigned to a transaction once categorized.
type Category string

// Other is the sentinel returned when no rule matches a description.
const Other Category = "Other"

// Rule selects a category when any of its keywords occurs in a description.
// Keywords must be lowercase; matching is case-insensitive substring
// presence.
type Rule struct {
	Name     Category
	Keywords []string
}

// DefaultRules returns the rule table observed to work on wallet statements
// so far. It is intentionally small; extend or replace it via New.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "Food", Keywords: []string{"restaurant", "dining", "cafe"}},
		{Name: "Groceries", Keywords: []string{"supermarket", "grocery", "mart"}},
	}
}

// Categorizer maps descriptions to categories with a first-match policy.
type Categorizer struct {
	rules []Rule
}

// New creates a Categorizer over the given rules. Rules are tested in slice
// order; the first rule with a keyword present in the description wins.
func New(rules []Rule) *Categorizer {
	return &Categorizer{rules: rules}
}

// Categorize returns exactly one category for the description, falling back
// to Other when no keyword matches. Descriptions are short merchant strings,
// so substring presence is signal enough; no scoring is attempted.
func (c *Categorizer) Categorize(description string) Category {
	desc := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, keyword) {
				return rule.Name
			}
		}
	}
	return Other
}
