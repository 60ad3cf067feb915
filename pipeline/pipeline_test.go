package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"passbook/category"
	"passbook/ledger"
)

func TestRunEndToEnd(t *testing.T) {
	page := "Jan 15, 2024 10:30 am DEBIT ₹500.00 Big Bazaar Supermarket\n" +
		"Jan 16, 2024 09:00 am CREDIT ₹1,000.00 Salary Credit\n"

	l, err := Run(context.Background(), []string{page})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(l.Transactions))

	first := l.Transactions[0]
	assert.Equal(t, time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC), first.Timestamp)
	assert.Equal(t, "Big Bazaar Supermarket", first.Description)
	assert.Equal(t, ledger.Debit, first.Direction)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, category.Category("Groceries"), first.Category)

	second := l.Transactions[1]
	assert.Equal(t, "Salary Credit", second.Description)
	assert.Equal(t, ledger.Credit, second.Direction)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("1000.00")))
	assert.Equal(t, category.Other, second.Category)
}

func TestRunConcatenatesPagesInOrder(t *testing.T) {
	page1 := "Jan 15, 2024 10:30 am DEBIT ₹500.00 Big Bazaar Supermarket\n"
	page2 := "Jan 16, 2024 09:00 am CREDIT ₹1,000.00 Salary Credit\n"

	l, err := Run(context.Background(), []string{page1, page2})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(l.Transactions))
	assert.Equal(t, "Big Bazaar Supermarket", l.Transactions[0].Description)
	assert.Equal(t, "Salary Credit", l.Transactions[1].Description)
}

func TestRunExtractsPeriodAcrossPages(t *testing.T) {
	page1 := "Transaction Statement for 9876543210 01 Jan, 2024 - 31 Jan, 2024\n"
	page2 := "Jan 15, 2024 10:30 am DEBIT ₹500.00 Big Bazaar Supermarket\n"

	l, err := Run(context.Background(), []string{page1, page2})
	assert.NoError(t, err)
	assert.Equal(t, "01 Jan, 2024 - 31 Jan, 2024", l.Period)
}

func TestRunPeriodSentinel(t *testing.T) {
	l, err := Run(context.Background(), []string{"no transactions here\n"})
	assert.NoError(t, err)
	assert.True(t, l.Empty())
	assert.Equal(t, ledger.PeriodNotFound, l.Period)
}

func TestRunCustomRules(t *testing.T) {
	page := "Jan 15, 2024 10:30 am DEBIT ₹50.00 Metro Recharge\n"
	rules := []category.Rule{{Name: "Transport", Keywords: []string{"metro"}}}

	l, err := Run(context.Background(), []string{page}, WithRules(rules))
	assert.NoError(t, err)
	assert.Equal(t, category.Category("Transport"), l.Transactions[0].Category)
}

func TestRunRecoversPanics(t *testing.T) {
	// A nil rule table is fine, but a categorizer constructed inside Run
	// never panics on it; force a panic through a poisoned option instead.
	boom := func(c *config) { panic("stage blew up") }

	l, err := Run(context.Background(), []string{"text"}, boom)
	assert.Zero(t, l)
	runErr, ok := err.(*RunError)
	assert.True(t, ok, "should be RunError, got %T", err)
	assert.Contains(t, runErr.Error(), "stage blew up")
}

func TestPages(t *testing.T) {
	assert.Equal(t, []string{"single page"}, Pages("single page"))
	assert.Equal(t, []string{"page one\n", "page two\n"}, Pages("page one\n\fpage two\n"))
}
