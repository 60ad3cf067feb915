package summary

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"passbook/ledger"
)

func txn(day int, desc string, dir ledger.Direction, amount string) ledger.Transaction {
	return ledger.Transaction{
		Timestamp:   time.Date(2024, time.January, day, 10, 0, 0, 0, time.UTC),
		Description: desc,
		Direction:   dir,
		Amount:      decimal.RequireFromString(amount),
		Category:    "Other",
	}
}

func testLedger(txns ...ledger.Transaction) *ledger.Ledger {
	return &ledger.Ledger{Transactions: txns, Period: ledger.PeriodNotFound}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "got %s, want %s", got, want)
}

func TestByType(t *testing.T) {
	l := testLedger(
		txn(1, "A", ledger.Debit, "100"),
		txn(1, "B", ledger.Credit, "50"),
		txn(2, "C", ledger.Debit, "25"),
	)

	rows := ByType(l)
	assert.Equal(t, 2, len(rows))
	assert.Equal(t, "DEBIT", rows[0].Key)
	assertAmount(t, "125", rows[0].Value)
	assert.Equal(t, "CREDIT", rows[1].Key)
	assertAmount(t, "50", rows[1].Value)
}

func TestByTypeEmptyLedger(t *testing.T) {
	assert.Equal(t, 0, len(ByType(testLedger())))
}

func TestByTypeShare(t *testing.T) {
	l := testLedger(
		txn(1, "A", ledger.Debit, "75"),
		txn(1, "B", ledger.Credit, "25"),
	)

	rows := ByTypeShare(l)
	assert.Equal(t, 2, len(rows))
	assertAmount(t, "0.75", rows[0].Value)
	assertAmount(t, "0.25", rows[1].Value)
}

func TestByTypeShareZeroTotal(t *testing.T) {
	l := testLedger(txn(1, "A", ledger.Debit, "0"))
	rows := ByTypeShare(l)
	assert.Equal(t, 1, len(rows))
	assertAmount(t, "0", rows[0].Value)
}

func TestTopByAmount(t *testing.T) {
	l := testLedger(
		txn(1, "Chai Point", ledger.Debit, "30"),
		txn(2, "Rent", ledger.Debit, "15000"),
		txn(3, "Chai Point", ledger.Debit, "30"),
		txn(4, "Grocery Mart", ledger.Debit, "900"),
		txn(5, "Salary", ledger.Credit, "50000"),
		txn(6, "Electricity", ledger.Debit, "1200"),
		txn(7, "Mobile Recharge", ledger.Debit, "299"),
	)

	rows := TopByAmount(l, DefaultTopN)
	assert.Equal(t, 5, len(rows))
	assert.Equal(t, "Salary", rows[0].Key)
	assert.Equal(t, "Rent", rows[1].Key)
	assert.Equal(t, "Electricity", rows[2].Key)
	assert.Equal(t, "Grocery Mart", rows[3].Key)
	assert.Equal(t, "Mobile Recharge", rows[4].Key)
}

func TestTopByAmountStableTies(t *testing.T) {
	l := testLedger(
		txn(1, "First", ledger.Debit, "100"),
		txn(2, "Second", ledger.Debit, "100"),
		txn(3, "Third", ledger.Debit, "100"),
	)

	rows := TopByAmount(l, 2)
	assert.Equal(t, "First", rows[0].Key)
	assert.Equal(t, "Second", rows[1].Key)
}

func TestTopByAmountIdempotent(t *testing.T) {
	l := testLedger(
		txn(1, "A", ledger.Debit, "10"),
		txn(2, "B", ledger.Debit, "20"),
		txn(3, "A", ledger.Debit, "5"),
	)

	first := TopByAmount(l, DefaultTopN)
	second := TopByAmount(l, DefaultTopN)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
		assert.True(t, first[i].Value.Equal(second[i].Value))
	}
}

func TestTopByCount(t *testing.T) {
	l := testLedger(
		txn(1, "Chai Point", ledger.Debit, "30"),
		txn(2, "Chai Point", ledger.Debit, "30"),
		txn(3, "Chai Point", ledger.Debit, "30"),
		txn(4, "Rent", ledger.Debit, "15000"),
		txn(5, "Grocery Mart", ledger.Debit, "900"),
		txn(6, "Grocery Mart", ledger.Debit, "450"),
	)

	rows := TopByCount(l, 2)
	assert.Equal(t, []CountRow{
		{Key: "Chai Point", Count: 3},
		{Key: "Grocery Mart", Count: 2},
	}, rows)
}

func TestTopDebitByAmountExcludesCredits(t *testing.T) {
	l := testLedger(
		txn(1, "Salary", ledger.Credit, "50000"),
		txn(2, "Rent", ledger.Debit, "15000"),
		txn(3, "Chai Point", ledger.Debit, "30"),
	)

	rows := TopDebitByAmount(l, DefaultTopN)
	assert.Equal(t, 2, len(rows))
	assert.Equal(t, "Rent", rows[0].Key)
	assert.Equal(t, "Chai Point", rows[1].Key)
}

func TestByCategory(t *testing.T) {
	a := txn(1, "Cafe Coffee Day", ledger.Debit, "120")
	a.Category = "Food"
	b := txn(2, "Big Bazaar", ledger.Debit, "900")
	b.Category = "Groceries"
	c := txn(3, "Dominos Restaurant", ledger.Debit, "450")
	c.Category = "Food"

	rows := ByCategory(testLedger(a, b, c))
	assert.Equal(t, 2, len(rows))
	assert.Equal(t, "Food", rows[0].Key)
	assertAmount(t, "570", rows[0].Value)
	assert.Equal(t, "Groceries", rows[1].Key)
	assertAmount(t, "900", rows[1].Value)
}

func TestCategoryTree(t *testing.T) {
	a := txn(1, "Cafe Coffee Day", ledger.Debit, "120")
	a.Category = "Food"
	b := txn(2, "Cafe Coffee Day", ledger.Debit, "80")
	b.Category = "Food"
	c := txn(3, "Dominos Restaurant", ledger.Debit, "450")
	c.Category = "Food"
	d := txn(4, "Big Bazaar", ledger.Debit, "900")
	d.Category = "Groceries"

	branches := CategoryTree(testLedger(a, b, c, d))
	assert.Equal(t, 2, len(branches))

	food := branches[0]
	assert.Equal(t, "Food", food.Label)
	assertAmount(t, "650", food.Total)
	assert.Equal(t, 2, len(food.Details))
	assert.Equal(t, "Cafe Coffee Day", food.Details[0].Key)
	assertAmount(t, "200", food.Details[0].Value)
	assert.Equal(t, "Dominos Restaurant", food.Details[1].Key)

	assert.Equal(t, "Groceries", branches[1].Label)
	assertAmount(t, "900", branches[1].Total)
}

func TestTypeTree(t *testing.T) {
	l := testLedger(
		txn(1, "Cafe Coffee Day", ledger.Debit, "120"),
		txn(2, "Salary", ledger.Credit, "50000"),
		txn(3, "Cafe Coffee Day", ledger.Debit, "80"),
		txn(4, "Rent", ledger.Debit, "15000"),
	)

	branches := TypeTree(l)
	assert.Equal(t, 2, len(branches))

	debit := branches[0]
	assert.Equal(t, "DEBIT", debit.Label)
	assertAmount(t, "15200", debit.Total)
	assert.Equal(t, 2, len(debit.Details))
	assert.Equal(t, "Cafe Coffee Day", debit.Details[0].Key)
	assertAmount(t, "200", debit.Details[0].Value)
	assert.Equal(t, "Rent", debit.Details[1].Key)

	credit := branches[1]
	assert.Equal(t, "CREDIT", credit.Label)
	assertAmount(t, "50000", credit.Total)
	assert.Equal(t, 1, len(credit.Details))
	assert.Equal(t, "Salary", credit.Details[0].Key)
}

func TestTimeSeries(t *testing.T) {
	l := testLedger(
		txn(1, "A", ledger.Debit, "10"),
		txn(2, "B", ledger.Credit, "20"),
	)

	points := TimeSeries(l)
	assert.Equal(t, 2, len(points))
	assert.Equal(t, l.Transactions[0].Timestamp, points[0].Timestamp)
	assertAmount(t, "10", points[0].Amount)
	assertAmount(t, "20", points[1].Amount)

	assert.Equal(t, 0, len(TimeSeries(testLedger())))
}

func TestAggregate(t *testing.T) {
	l := testLedger(
		txn(1, "A", ledger.Debit, "100"),
		txn(1, "B", ledger.Debit, "50"),
		txn(2, "C", ledger.Credit, "150"),
	)

	totals, err := Aggregate(l)
	assert.NoError(t, err)
	assertAmount(t, "300", totals.Sum)
	assert.Equal(t, 2, totals.Days)
	assertAmount(t, "150", totals.DailyMean)
}

func TestAggregateDebitOnly(t *testing.T) {
	l := testLedger(
		txn(1, "A", ledger.Debit, "100"),
		txn(2, "B", ledger.Credit, "900"),
		txn(3, "C", ledger.Debit, "50"),
	)

	totals, err := AggregateDebit(l)
	assert.NoError(t, err)
	assertAmount(t, "150", totals.Sum)
	assert.Equal(t, 3, totals.Days)
	assertAmount(t, "50", totals.DailyMean)
}

func TestAggregateEmptyLedger(t *testing.T) {
	_, err := Aggregate(testLedger())
	emptyErr, ok := err.(*EmptyLedgerError)
	assert.True(t, ok, "should be EmptyLedgerError, got %T", err)
	assert.NotZero(t, emptyErr.View)
}

func TestAggregateDebitCreditsOnly(t *testing.T) {
	// Credit-only days still count toward the denominator, so a ledger
	// without a single debit averages to zero rather than failing.
	l := testLedger(txn(1, "Salary", ledger.Credit, "50000"))
	totals, err := AggregateDebit(l)
	assert.NoError(t, err)
	assertAmount(t, "0", totals.Sum)
	assert.Equal(t, 1, totals.Days)
	assertAmount(t, "0", totals.DailyMean)
}

func TestAggregateDebitEmptyLedger(t *testing.T) {
	_, err := AggregateDebit(testLedger())
	_, ok := err.(*EmptyLedgerError)
	assert.True(t, ok, "should be EmptyLedgerError, got %T", err)
}
