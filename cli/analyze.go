package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"passbook/output"
	"passbook/pipeline"
	"passbook/report"
	"passbook/summary"
	"passbook/telemetry"
)

type AnalyzeCmd struct {
	File FileOrStdin `help:"Statement text filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Top  int         `help:"Row cutoff for the top-counterparty views." default:"5"`
}

func (cmd *AnalyzeCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var analyzeSpan telemetry.Span
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				analyzeSpan.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		analyzeSpan = collector.Start(fmt.Sprintf("analyze %s", filepath.Base(cmd.File.Filename)))
		defer reportTelemetry()
	}

	doc, err := cmd.File.Document()
	if err != nil {
		return fmt.Errorf("failed to read statement: %w", err)
	}

	pages := pipeline.Pages(string(doc))
	l, err := pipeline.Run(runCtx, pages)
	if err != nil {
		renderer := NewErrorRenderer(pages)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "analysis failed")

		reportTelemetry()
		return NewCommandError(1)
	}

	r := report.NewRenderer(ctx.Stdout)
	r.Period(l.Period)
	r.AmountRows("Totals by type", "Type", summary.ByType(l))
	r.AmountRows("Share of total by type", "Type", summary.ByTypeShare(l))
	r.AmountRows(fmt.Sprintf("Top %d counterparties by amount", cmd.Top), "Counterparty", summary.TopByAmount(l, cmd.Top))
	r.CountRows(fmt.Sprintf("Top %d counterparties by frequency", cmd.Top), "Counterparty", summary.TopByCount(l, cmd.Top))
	r.AmountRows(fmt.Sprintf("Top %d debit counterparties", cmd.Top), "Counterparty", summary.TopDebitByAmount(l, cmd.Top))
	r.AmountRows("Totals by category", "Category", summary.ByCategory(l))
	r.Tree("Category breakdown", summary.CategoryTree(l))
	r.Tree("Type breakdown", summary.TypeTree(l))
	r.Timeline("Amounts over time", summary.TimeSeries(l))

	if totals, err := summary.Aggregate(l); err == nil {
		r.Totals("All transactions", totals)
	}
	if totals, err := summary.AggregateDebit(l); err == nil {
		r.Totals("Debit transactions", totals)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%d transaction(s) analyzed", len(l.Transactions)))

	return nil
}
