// Package summary computes read-only aggregation views over a ledger.
//
// Every view is a pure function of the ledger value: nothing is cached,
// nothing is mutated, and recomputing a view over the same ledger yields an
// identical result. All views return zero rows for an empty ledger; only
// the per-day mean aggregates treat emptiness as a failure, since they
// divide by the distinct-date count.
//
// Presentation concerns (titles, axis labels, chart types) stay out of this
// package; a view's contract is its grouping key, measure and ordering.
package summary

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"passbook/ledger"
)

// DefaultTopN is the row cutoff for the top-counterparty views.
const DefaultTopN = 5

// Row is one grouped result within an amount-valued view.
type Row struct {
	Key   string
	Value decimal.Decimal
}

// CountRow is one grouped result within a count-valued view.
type CountRow struct {
	Key   string
	Count int
}

// sumBy groups transactions by key and sums their amounts, preserving
// first-appearance order of the keys. That order doubles as the stable
// tie-break for the sorted top-N views.
func sumBy(txns []ledger.Transaction, key func(ledger.Transaction) string) []Row {
	index := make(map[string]int)
	var rows []Row
	for _, t := range txns {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, Row{Key: k})
		}
		rows[i].Value = rows[i].Value.Add(t.Amount)
	}
	return rows
}

// countBy groups transactions by key and counts occurrences, preserving
// first-appearance order of the keys.
func countBy(txns []ledger.Transaction, key func(ledger.Transaction) string) []CountRow {
	index := make(map[string]int)
	var rows []CountRow
	for _, t := range txns {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, CountRow{Key: k})
		}
		rows[i].Count++
	}
	return rows
}

// ByType sums amounts grouped by direction. At most two rows, in
// first-appearance order.
func ByType(l *ledger.Ledger) []Row {
	return sumBy(l.Transactions, func(t ledger.Transaction) string {
		return string(t.Direction)
	})
}

// ByTypeShare expresses each direction's total as a share of the overall
// total, in the 0..1 range. Shares are zero when the overall total is zero.
func ByTypeShare(l *ledger.Ledger) []Row {
	rows := ByType(l)
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Value)
	}
	if total.IsZero() {
		for i := range rows {
			rows[i].Value = decimal.Zero
		}
		return rows
	}
	for i := range rows {
		rows[i].Value = rows[i].Value.Div(total)
	}
	return rows
}

// TopByAmount groups by description, sums amounts and returns the n largest
// sums in descending order. Ties keep first-appearance order.
func TopByAmount(l *ledger.Ledger, n int) []Row {
	return topRows(sumBy(l.Transactions, description), n)
}

// TopByCount groups by description, counts occurrences and returns the n
// most frequent in descending order. Ties keep first-appearance order.
func TopByCount(l *ledger.Ledger, n int) []CountRow {
	rows := countBy(l.Transactions, description)
	slices.SortStableFunc(rows, func(a, b CountRow) int {
		return b.Count - a.Count
	})
	return clip(rows, n)
}

// TopDebitByAmount is TopByAmount restricted to DEBIT transactions.
func TopDebitByAmount(l *ledger.Ledger, n int) []Row {
	var debits []ledger.Transaction
	for _, t := range l.Transactions {
		if t.Direction == ledger.Debit {
			debits = append(debits, t)
		}
	}
	return topRows(sumBy(debits, description), n)
}

// ByCategory sums amounts grouped by category, in first-appearance order.
func ByCategory(l *ledger.Ledger) []Row {
	return sumBy(l.Transactions, func(t ledger.Transaction) string {
		return string(t.Category)
	})
}

func description(t ledger.Transaction) string { return t.Description }

func topRows(rows []Row, n int) []Row {
	slices.SortStableFunc(rows, func(a, b Row) int {
		return b.Value.Cmp(a.Value)
	})
	return clip(rows, n)
}

func clip[E any](rows []E, n int) []E {
	if n >= 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
