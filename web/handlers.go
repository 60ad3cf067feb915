package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"passbook/summary"
)

// TransactionResponse is the JSON shape of one ledger entry.
type TransactionResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// TransactionsResponse is the JSON response for the transactions endpoint.
type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// PeriodResponse is the JSON response for the period endpoint.
type PeriodResponse struct {
	Period string `json:"period"`
}

// RowsResponse is the JSON response for amount-valued summary views.
type RowsResponse struct {
	View string        `json:"view"`
	Rows []summary.Row `json:"rows"`
}

// handleGetTransactions handles GET /api/transactions.
func (s *Server) handleGetTransactions(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := make([]TransactionResponse, 0, len(s.ledger.Transactions))
	for _, t := range s.ledger.Transactions {
		txns = append(txns, TransactionResponse{
			Date:        t.Timestamp.Format(time.RFC3339),
			Description: t.Description,
			Type:        string(t.Direction),
			Amount:      t.Amount,
			Category:    string(t.Category),
		})
	}

	writeJSONResponse(w, &TransactionsResponse{Transactions: txns, Count: len(txns)})
}

// handleGetPeriod handles GET /api/period.
func (s *Server) handleGetPeriod(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSONResponse(w, &PeriodResponse{Period: s.ledger.Period})
}

// handleGetSummary handles GET /api/summary/{view}.
//
// Supported views: by-type, by-type-share, by-category, top-amount,
// top-count, top-debit, tree, type-tree, timeseries, totals, totals-debit.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := r.PathValue("view")
	l := s.ledger

	switch view {
	case "by-type":
		writeJSONResponse(w, &RowsResponse{View: view, Rows: summary.ByType(l)})
	case "by-type-share":
		writeJSONResponse(w, &RowsResponse{View: view, Rows: summary.ByTypeShare(l)})
	case "by-category":
		writeJSONResponse(w, &RowsResponse{View: view, Rows: summary.ByCategory(l)})
	case "top-amount":
		writeJSONResponse(w, &RowsResponse{View: view, Rows: summary.TopByAmount(l, summary.DefaultTopN)})
	case "top-debit":
		writeJSONResponse(w, &RowsResponse{View: view, Rows: summary.TopDebitByAmount(l, summary.DefaultTopN)})
	case "top-count":
		writeJSONResponse(w, map[string]any{"view": view, "rows": summary.TopByCount(l, summary.DefaultTopN)})
	case "tree":
		writeJSONResponse(w, map[string]any{"view": view, "branches": summary.CategoryTree(l)})
	case "type-tree":
		writeJSONResponse(w, map[string]any{"view": view, "branches": summary.TypeTree(l)})
	case "timeseries":
		writeJSONResponse(w, map[string]any{"view": view, "points": summary.TimeSeries(l)})
	case "totals", "totals-debit":
		aggregate := summary.Aggregate
		if view == "totals-debit" {
			aggregate = summary.AggregateDebit
		}
		totals, err := aggregate(l)
		var emptyErr *summary.EmptyLedgerError
		if errors.As(err, &emptyErr) {
			http.Error(w, emptyErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSONResponse(w, map[string]any{"view": view, "totals": totals})
	default:
		http.Error(w, "unknown summary view: "+view, http.StatusNotFound)
	}
}

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
