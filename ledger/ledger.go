// Package ledger defines the typed transaction ledger extracted from a
// statement, together with the normalization step that turns raw text
// captures into validated records.
//
// A Ledger is built once per analyzed document and never mutated afterwards;
// aggregation packages treat it as an immutable value. Ordering is page
// order, then in-page match order. Identical transactions are legitimate and
// counted separately; there is no deduplication.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"passbook/category"
)

// Direction indicates whether money left (DEBIT) or entered (CREDIT) the
// account.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// Transaction is a single statement entry after normalization. Amount is
// always non-negative; Direction carries the sign semantics. Category is
// assigned before a Transaction enters a Ledger and is never empty.
type Transaction struct {
	Timestamp   time.Time
	Description string
	Direction   Direction
	Amount      decimal.Decimal
	Category    category.Category
}

// Date returns the transaction's posting date truncated to midnight.
// Transactions whose layout variant drops the time-of-day compare as
// simultaneous on the same date.
func (t Transaction) Date() time.Time {
	return time.Date(t.Timestamp.Year(), t.Timestamp.Month(), t.Timestamp.Day(), 0, 0, 0, 0, t.Timestamp.Location())
}

// Ledger is the ordered collection of all transactions extracted from one
// statement, plus the period label the statement declares for itself.
type Ledger struct {
	Transactions []Transaction

	// Period is the declared statement span, or PeriodNotFound when the
	// document carries no recognizable period label.
	Period string
}

// Empty reports whether the ledger holds no transactions. Aggregations over
// an empty ledger yield zero rows, not errors.
func (l *Ledger) Empty() bool {
	return len(l.Transactions) == 0
}
