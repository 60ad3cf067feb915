package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"passbook/extract"
)

// Layouts for the date and 12-hour time as they appear in statement text.
const (
	timestampLayout = "Jan 02, 2006 03:04 pm"
	dateLayout      = "Jan 02, 2006"
)

// amountCleaner strips the currency glyph and thousands separators before
// numeric parsing. The glyph is normally consumed by the extraction pattern
// but callers may pass amounts with it still attached.
var amountCleaner = strings.NewReplacer("₹", "", ",", "")

// Normalize converts raw captures into a typed Transaction.
//
// The direction token is already constrained to DEBIT/CREDIT by the
// extraction grammar, so it maps directly. The description is trimmed of
// surrounding whitespace only; internal whitespace and punctuation are kept
// verbatim. The category is left unset; assignment happens in the pipeline.
func Normalize(raw extract.RawMatch) (Transaction, error) {
	amount, err := ParseAmount(raw.Amount)
	if err != nil {
		return Transaction{}, &MalformedAmountError{Raw: raw.Amount, Pos: raw.Pos}
	}

	ts, err := time.Parse(timestampLayout, raw.Date+" "+raw.Time)
	if err != nil {
		// Layout variants without a time capture retain only the date;
		// same-day transactions then compare as simultaneous.
		ts, err = time.Parse(dateLayout, raw.Date)
		if err != nil {
			return Transaction{}, &MalformedTimestampError{Raw: raw.Date + " " + raw.Time, Pos: raw.Pos}
		}
	}

	return Transaction{
		Timestamp:   ts,
		Description: strings.TrimSpace(raw.Description),
		Direction:   Direction(raw.Direction),
		Amount:      amount,
	}, nil
}

// ParseAmount parses an amount string into a decimal value, stripping the
// currency glyph and grouping separators first. "1,234.50" and "₹1,234.50"
// both yield 1234.50.
func ParseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(amountCleaner.Replace(raw))
}
