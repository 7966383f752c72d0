package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/httputil"
	"atelier/internal/service/finance"
)

// FinanceHandler handles income/expense tracker HTTP requests
type FinanceHandler struct {
	finance *finance.Service
	logger  *slog.Logger
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *finance.Service, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{
		finance: financeService,
		logger:  logger,
	}
}

// CreateTransaction records a transaction
// POST /api/finance/transactions
func (h *FinanceHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req finance.SaveTransactionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.finance.Create(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, tx)
}

// ListTransactions lists transactions, optionally scoped by ?year= and ?month=
// GET /api/finance/transactions
func (h *FinanceHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")
	month := r.URL.Query().Get("month")
	httputil.RespondJSON(w, http.StatusOK, h.finance.List(year, month))
}

// UpdateTransaction replaces a transaction's editable fields
// PUT /api/finance/transactions/{id}
func (h *FinanceHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req finance.SaveTransactionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.finance.Update(r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tx)
}

// DeleteTransaction removes a transaction
// DELETE /api/finance/transactions/{id}
func (h *FinanceHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.finance.Delete(r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSummary returns one month's income, expense, and balance
// GET /api/finance/summary?year=&month=
func (h *FinanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")
	month := r.URL.Query().Get("month")
	if year == "" || month == "" {
		httputil.RespondError(w, http.StatusBadRequest, "year and month are required")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.finance.MonthSummary(year, month))
}

// GetOverview returns twelve per-month summaries for a year
// GET /api/finance/overview?year=
func (h *FinanceHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")
	if year == "" {
		httputil.RespondError(w, http.StatusBadRequest, "year is required")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.finance.YearOverview(year))
}
