package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"passbook/ledger"
)

// Branch is one top-level node of a two-level amount hierarchy, with the
// summed amount per description beneath it. Drill-down renderings
// (treemaps, sunbursts) consume this shape directly.
type Branch struct {
	Label   string
	Total   decimal.Decimal
	Details []Row
}

// CategoryTree groups amounts by category, then by description within each
// category. Both levels keep first-appearance order.
func CategoryTree(l *ledger.Ledger) []Branch {
	return tree(l, func(t ledger.Transaction) string { return string(t.Category) })
}

// TypeTree groups amounts by transaction type, then by description within
// each type. Same shape and ordering rules as CategoryTree.
func TypeTree(l *ledger.Ledger) []Branch {
	return tree(l, func(t ledger.Transaction) string { return string(t.Direction) })
}

func tree(l *ledger.Ledger, label func(ledger.Transaction) string) []Branch {
	index := make(map[string]int)
	var branches []Branch
	for _, t := range l.Transactions {
		k := label(t)
		i, ok := index[k]
		if !ok {
			i = len(branches)
			index[k] = i
			branches = append(branches, Branch{Label: k})
		}
		branches[i].Total = branches[i].Total.Add(t.Amount)

		found := false
		for j := range branches[i].Details {
			if branches[i].Details[j].Key == t.Description {
				branches[i].Details[j].Value = branches[i].Details[j].Value.Add(t.Amount)
				found = true
				break
			}
		}
		if !found {
			branches[i].Details = append(branches[i].Details, Row{Key: t.Description, Value: t.Amount})
		}
	}
	return branches
}

// Point is a single time-series observation: one transaction's amount at
// its posting timestamp.
type Point struct {
	Timestamp time.Time
	Amount    decimal.Decimal
}

// TimeSeries returns one point per transaction in ledger order. No grouping
// or summing happens here; renderers plot the raw sequence.
func TimeSeries(l *ledger.Ledger) []Point {
	if l.Empty() {
		return nil
	}
	points := make([]Point, 0, len(l.Transactions))
	for _, t := range l.Transactions {
		points = append(points, Point{Timestamp: t.Timestamp, Amount: t.Amount})
	}
	return points
}
