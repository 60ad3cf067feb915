// Package pipeline runs the full statement analysis: extraction,
// normalization, categorization and ledger building, one document per run.
//
// A run is synchronous and stateless; the only value shared between stages
// is the transaction slice handed from one to the next. Callers own the
// returned ledger exclusively and may treat it as immutable.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"passbook/category"
	"passbook/extract"
	"passbook/ledger"
	"passbook/telemetry"
)

// RunError is the single opaque failure surfaced when a stage fails in an
// unexpected way mid-run. Once a run has failed, no partial results are
// returned.
type RunError struct {
	Cause string
}

func (e *RunError) Error() string {
	return "statement analysis failed: " + e.Cause
}

// Option configures a run.
type Option func(*config)

type config struct {
	rules []category.Rule
}

// WithRules substitutes the categorization rule table for this run.
func WithRules(rules []category.Rule) Option {
	return func(c *config) {
		c.rules = rules
	}
}

// Pages splits a whole extracted document into per-page text blobs on the
// form-feed separators emitted by pdftotext-style tools. A document without
// separators is a single page.
func Pages(doc string) []string {
	return strings.Split(doc, "\f")
}

// Run processes the document's pages in order and returns the built ledger.
//
// Extraction is best effort per line: non-transaction lines are dropped
// silently. Structural issues abort the whole run instead: a malformed
// amount or timestamp anywhere fails with its typed error, and a panic in
// any stage is recovered at this boundary and surfaced as a single
// RunError.
func Run(ctx context.Context, pages []string, opts ...Option) (l *ledger.Ledger, err error) {
	defer func() {
		if r := recover(); r != nil {
			l, err = nil, &RunError{Cause: fmt.Sprintf("%v", r)}
		}
	}()

	cfg := config{rules: category.DefaultRules()}
	for _, opt := range opts {
		opt(&cfg)
	}

	span := telemetry.FromContext(ctx).Start(fmt.Sprintf("analyze %d page(s)", len(pages)))
	defer span.End()

	categorizer := category.New(cfg.rules)

	extractSpan := span.Child("extract pages")
	var txns []ledger.Transaction
	for i, page := range pages {
		for _, raw := range extract.Page(i+1, page) {
			txn, err := ledger.Normalize(raw)
			if err != nil {
				extractSpan.End()
				return nil, err
			}
			txn.Category = categorizer.Categorize(txn.Description)
			txns = append(txns, txn)
		}
	}
	extractSpan.End()

	buildSpan := span.Child("build ledger")
	l = ledger.Build(txns, strings.Join(pages, "\n"))
	buildSpan.End()

	return l, nil
}
