// Package passbook analyzes wallet statement text into a typed transaction
// ledger and summary views.
//
// The heavy lifting lives in the subpackages: extract finds
// transaction-shaped lines, ledger types and builds the result, category
// labels descriptions, summary aggregates, and pipeline wires the stages
// together. This package offers the one-call entry points most consumers
// want.
//
//	pages := pipeline.Pages(documentText)
//	l, err := passbook.Analyze(ctx, pages)
//	if err != nil {
//	    // a malformed amount or timestamp aborted the run
//	}
//	rows := summary.ByType(l)
package passbook

import (
	"context"

	"passbook/ledger"
	"passbook/pipeline"
)

// Analyze runs the full pipeline over pre-extracted per-page text blobs and
// returns the built ledger.
func Analyze(ctx context.Context, pages []string, opts ...pipeline.Option) (*ledger.Ledger, error) {
	return pipeline.Run(ctx, pages, opts...)
}

// AnalyzeDocument splits a whole extracted document on form-feed page
// separators before analyzing it.
func AnalyzeDocument(ctx context.Context, doc string, opts ...pipeline.Option) (*ledger.Ledger, error) {
	return pipeline.Run(ctx, pipeline.Pages(doc), opts...)
}
