// Package report renders summary views as aligned terminal tables.
//
// Rendering choices live here, away from the aggregation contracts: the
// summary package decides grouping and ordering, this package only decides
// how the rows look on screen.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"passbook/output"
	"passbook/summary"
)

// fallbackWidth is used when the writer is not a terminal.
const fallbackWidth = 100

// Renderer writes tables to a single destination with consistent styling.
type Renderer struct {
	w      io.Writer
	styles *output.Styles
	width  int
}

// NewRenderer creates a renderer for w. When w is a terminal its width
// bounds the key column; otherwise a fixed width applies.
func NewRenderer(w io.Writer) *Renderer {
	width := fallbackWidth
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}

	return &Renderer{
		w:      w,
		styles: output.NewStyles(w),
		width:  width,
	}
}

// AmountRows renders an amount-valued view as a two-column table.
func (r *Renderer) AmountRows(title, keyHeader string, rows []summary.Row) {
	cells := make([][2]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, [2]string{row.Key, row.Value.String()})
	}
	r.table(title, [2]string{keyHeader, "Amount"}, cells, r.styles.Amount)
}

// CountRows renders a count-valued view as a two-column table.
func (r *Renderer) CountRows(title, keyHeader string, rows []summary.CountRow) {
	cells := make([][2]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, [2]string{row.Key, fmt.Sprintf("%d", row.Count)})
	}
	r.table(title, [2]string{keyHeader, "Count"}, cells, r.styles.Dim)
}

// Tree renders the category/description hierarchy with indented detail rows.
func (r *Renderer) Tree(title string, branches []summary.Branch) {
	var cells [][2]string
	for _, b := range branches {
		cells = append(cells, [2]string{r.styles.Category(b.Label), b.Total.String()})
		for _, d := range b.Details {
			cells = append(cells, [2]string{"  " + d.Key, d.Value.String()})
		}
	}
	r.table(title, [2]string{"Category / Counterparty", "Amount"}, cells, r.styles.Amount)
}

// Totals renders the whole-ledger scalar aggregates as a short table.
func (r *Renderer) Totals(title string, t summary.Totals) {
	r.table(title, [2]string{"Measure", "Value"}, [][2]string{
		{"Total amount", t.Sum.String()},
		{"Distinct dates", fmt.Sprintf("%d", t.Days)},
		{"Mean per day", t.DailyMean.StringFixed(2)},
	}, r.styles.Amount)
}

// table writes a titled two-column table. The key column is truncated to
// keep rows within the terminal width; the value column is right-aligned.
func (r *Renderer) table(title string, header [2]string, cells [][2]string, valueStyle func(string) string) {
	valueWidth := runewidth.StringWidth(header[1])
	for _, c := range cells {
		if w := runewidth.StringWidth(c[1]); w > valueWidth {
			valueWidth = w
		}
	}

	maxKeyWidth := r.width - valueWidth - 4
	if maxKeyWidth < 8 {
		maxKeyWidth = 8
	}

	keyWidth := runewidth.StringWidth(header[0])
	for _, c := range cells {
		if w := runewidth.StringWidth(c[0]); w > keyWidth {
			keyWidth = w
		}
	}
	if keyWidth > maxKeyWidth {
		keyWidth = maxKeyWidth
	}

	fmt.Fprintf(r.w, "%s\n", r.styles.Heading(title))
	fmt.Fprintf(r.w, "%s  %s\n",
		r.styles.Dim(runewidth.FillRight(header[0], keyWidth)),
		r.styles.Dim(runewidth.FillLeft(header[1], valueWidth)))

	if len(cells) == 0 {
		fmt.Fprintf(r.w, "%s\n\n", r.styles.Dim("(no rows)"))
		return
	}

	for _, c := range cells {
		key := runewidth.Truncate(c[0], keyWidth, "…")
		fmt.Fprintf(r.w, "%s  %s\n",
			runewidth.FillRight(key, keyWidth),
			valueStyle(runewidth.FillLeft(c[1], valueWidth)))
	}
	fmt.Fprintln(r.w)
}

// Period renders the statement's declared period line.
func (r *Renderer) Period(period string) {
	fmt.Fprintf(r.w, "%s %s\n\n", r.styles.Heading("Statement period:"), period)
}

// Timeline renders the per-transaction amount sequence as a sparkbar list.
func (r *Renderer) Timeline(title string, points []summary.Point) {
	fmt.Fprintf(r.w, "%s\n", r.styles.Heading(title))
	if len(points) == 0 {
		fmt.Fprintf(r.w, "%s\n\n", r.styles.Dim("(no rows)"))
		return
	}

	max := points[0].Amount
	for _, p := range points[1:] {
		if p.Amount.GreaterThan(max) {
			max = p.Amount
		}
	}

	for _, p := range points {
		bar := 0
		if !max.IsZero() {
			bar = int(p.Amount.Div(max).Mul(decimal.NewFromInt(20)).IntPart())
		}
		fmt.Fprintf(r.w, "%s  %s %s\n",
			r.styles.Dim(p.Timestamp.Format("Jan 02, 2006")),
			r.styles.Amount(runewidth.FillLeft(p.Amount.String(), 12)),
			strings.Repeat("▇", bar))
	}
	fmt.Fprintln(r.w)
}
