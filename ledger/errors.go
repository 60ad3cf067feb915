package ledger

import (
	"fmt"

	"passbook/extract"
)

// MalformedAmountError is returned when an amount substring survived
// extraction but does not parse as a number once the currency glyph and
// grouping separators are stripped. It aborts the whole run; there is no
// per-row recovery.
type MalformedAmountError struct {
	Raw string
	Pos extract.Position
}

func (e *MalformedAmountError) Error() string {
	return fmt.Sprintf("page %d, line %d: malformed amount %q", e.Pos.Page, e.Pos.Line, e.Raw)
}

// Position returns where in the source document the bad amount was captured.
func (e *MalformedAmountError) Position() extract.Position {
	return e.Pos
}

// MalformedTimestampError is returned when the captured date or time cannot
// be parsed into a calendar value. Like a malformed amount it fails the run.
type MalformedTimestampError struct {
	Raw string
	Pos extract.Position
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("page %d, line %d: malformed timestamp %q", e.Pos.Page, e.Pos.Line, e.Raw)
}

// Position returns where in the source document the bad timestamp was captured.
func (e *MalformedTimestampError) Position() extract.Position {
	return e.Pos
}
