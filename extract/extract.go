// Package extract scans statement page text for transaction-shaped lines.
//
// Wallet statements arrive as loosely formatted text once an external tool
// has pulled it out of the PDF. Each transaction occupies a single line of
// the form:
//
//	Jan 15, 2024 10:30 am DEBIT ₹500.00 Big Bazaar Supermarket
//
// Extraction is best effort: headers, footers, page numbers and other
// non-transaction lines are expected in the input and are skipped without
// error. Whatever matches the layout is captured verbatim; typing and
// cleanup happen later in the ledger package.
package extract

import (
	"regexp"
	"strings"
)

// transactionPattern matches a single statement line. Capture groups, in
// order: date, 12-hour time, direction token, amount (grouping separators
// and glyph intact), description to end of line.
var transactionPattern = regexp.MustCompile(`(\w+ \d{2}, \d{4})\s+(\d{2}:\d{2} [apm]{2})\s+(DEBIT|CREDIT)\s+₹([\d,.]+)\s+([^\n]+)`)

// Position locates a captured match within the source document.
type Position struct {
	Page int // 1-based page number
	Line int // 1-based line number within the page
}

// RawMatch holds the untyped captures for one transaction line, exactly as
// they appear in the page text. The amount still carries its currency glyph
// context (glyph itself is consumed by the pattern) and grouping separators;
// the description may contain any punctuation up to the newline.
type RawMatch struct {
	Date        string
	Time        string
	Direction   string
	Amount      string
	Description string
	Pos         Position
}

// Page returns every non-overlapping transaction match in one page's text,
// scanning left to right until no further match exists. The returned slice
// is empty (never an error) when the page contains no transaction lines.
func Page(pageNum int, text string) []RawMatch {
	indexes := transactionPattern.FindAllStringSubmatchIndex(text, -1)
	if len(indexes) == 0 {
		return nil
	}

	matches := make([]RawMatch, 0, len(indexes))
	for _, idx := range indexes {
		group := func(n int) string {
			return text[idx[2*n]:idx[2*n+1]]
		}
		matches = append(matches, RawMatch{
			Date:        group(1),
			Time:        group(2),
			Direction:   group(3),
			Amount:      group(4),
			Description: group(5),
			Pos: Position{
				Page: pageNum,
				Line: strings.Count(text[:idx[0]], "\n") + 1,
			},
		})
	}
	return matches
}
