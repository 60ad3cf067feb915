package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"passbook/ledger"
)

// EmptyLedgerError reports an aggregate that requires at least one dated
// transaction. Per-day means divide by the distinct-date count, so an empty
// selection is an explicit failure rather than a silent zero or NaN.
type EmptyLedgerError struct {
	View string
}

func (e *EmptyLedgerError) Error() string {
	return fmt.Sprintf("%s: ledger has no dated transactions", e.View)
}

// Totals holds the whole-ledger scalar aggregates: the summed amount, the
// number of distinct calendar dates, and the mean amount per distinct date.
type Totals struct {
	Sum       decimal.Decimal
	Days      int
	DailyMean decimal.Decimal
}

// Aggregate computes Totals over every transaction in the ledger.
func Aggregate(l *ledger.Ledger) (Totals, error) {
	return aggregate("aggregate totals", l.Transactions, nil)
}

// AggregateDebit computes Totals whose sum covers DEBIT transactions only.
// The mean keeps the ledger-wide distinct-date count as its denominator, so
// days that saw only credits still dilute the debit average.
func AggregateDebit(l *ledger.Ledger) (Totals, error) {
	debit := func(t ledger.Transaction) bool { return t.Direction == ledger.Debit }
	return aggregate("aggregate debit totals", l.Transactions, debit)
}

func aggregate(view string, txns []ledger.Transaction, include func(ledger.Transaction) bool) (Totals, error) {
	seen := make(map[string]struct{})
	sum := decimal.Zero
	for _, t := range txns {
		seen[t.Date().Format("2006-01-02")] = struct{}{}
		if include != nil && !include(t) {
			continue
		}
		sum = sum.Add(t.Amount)
	}

	days := len(seen)
	if days == 0 {
		return Totals{}, &EmptyLedgerError{View: view}
	}

	return Totals{
		Sum:       sum,
		Days:      days,
		DailyMean: sum.Div(decimal.NewFromInt(int64(days))),
	}, nil
}
