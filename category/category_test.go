package category

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCategorizeDefaultRules(t *testing.T) {
	tests := []struct {
		description string
		want        Category
	}{
		{"Cafe Coffee Day", "Food"},
		{"Big Bazaar Supermarket", "Groceries"},
		{"Reliance SMART Point", "Groceries"}, // "mart" substring
		{"Barbeque Nation Restaurant", "Food"},
		{"Unknown Merchant XYZ", Other},
		{"", Other},
	}

	c := New(DefaultRules())
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.description))
		})
	}
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	// "cafe mart" matches both rules; slice order decides.
	rules := []Rule{
		{Name: "Food", Keywords: []string{"cafe"}},
		{Name: "Groceries", Keywords: []string{"mart"}},
	}
	assert.Equal(t, Category("Food"), New(rules).Categorize("Cafe Mart"))

	reversed := []Rule{rules[1], rules[0]}
	assert.Equal(t, Category("Groceries"), New(reversed).Categorize("Cafe Mart"))
}

func TestCategorizeCustomRules(t *testing.T) {
	rules := []Rule{
		{Name: "Transport", Keywords: []string{"metro", "fuel", "irctc"}},
	}
	c := New(rules)
	assert.Equal(t, Category("Transport"), c.Categorize("IRCTC Ticket Booking"))
	assert.Equal(t, Other, c.Categorize("Big Bazaar Supermarket"))
}

func TestCategorizeEmptyRuleTable(t *testing.T) {
	c := New(nil)
	assert.Equal(t, Other, c.Categorize("anything at all"))
}
