// Package export writes the analyzed ledger to the flat CSV snapshot that
// downstream tools consume.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"passbook/ledger"
)

// DefaultFilename is the snapshot name inside the staging directory. It is
// overwritten on every run: last write wins, no locking. Services that run
// analyses concurrently must namespace the staging path themselves.
const DefaultFilename = "processed_data.csv"

// Header matches the snapshot layout consumed downstream.
var Header = []string{"Date", "Transaction Details", "Type", "Amount", "Category"}

// dateLayout renders the posting timestamp the way the statement printed it.
const dateLayout = "Jan 02, 2006 03:04 pm"

// WriteCSV renders the header row and one row per transaction. Amounts are
// plain decimals without currency glyph or grouping separators.
func WriteCSV(w io.Writer, l *ledger.Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, t := range l.Transactions {
		record := []string{
			t.Timestamp.Format(dateLayout),
			t.Description,
			string(t.Direction),
			t.Amount.String(),
			string(t.Category),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile stages the snapshot at path, replacing any previous run's file.
// Parent directories are created as needed.
func WriteFile(path string, l *ledger.Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteCSV(f, l); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
