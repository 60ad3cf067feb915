package ledger

import "regexp"

// PeriodNotFound is the literal sentinel attached to a ledger whose
// statement text lacks a recognizable period label. Absence is a valid
// value, not an error.
const PeriodNotFound = "Period not found"

// periodPattern matches the statement's self-declared coverage label, e.g.
// "Transaction Statement for 9876543210 01 Jan, 2024 - 31 Jan, 2024".
// Statements write the range day-first while transaction rows are
// month-first; both orderings are accepted. The single capture is the
// date-range substring.
var periodPattern = regexp.MustCompile(`Transaction Statement for \d{10}\s+(\d{2} \w+, \d{4}\s*-\s*\d{2} \w+, \d{4}|\w+ \d{2}, \d{4}\s*-\s*\w+ \d{2}, \d{4})`)

// Build assembles the final ledger from already normalized and categorized
// transactions, in the order supplied, and pulls the declared statement
// period out of the full concatenated document text. Building is atomic:
// callers either receive the complete ledger or the pipeline has already
// failed; no partial state escapes.
func Build(transactions []Transaction, fullText string) *Ledger {
	return &Ledger{
		Transactions: transactions,
		Period:       ExtractPeriod(fullText),
	}
}

// ExtractPeriod searches document text for the statement period label and
// returns the captured date range, or PeriodNotFound when absent.
func ExtractPeriod(text string) string {
	if m := periodPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return PeriodNotFound
}
