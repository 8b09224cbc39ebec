package summary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"moneytrack/internal/money"
	"moneytrack/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/balance", h.balance)
	r.Get("/monthly/{year}/{month}", h.monthly)
	r.Get("/categories", h.categories)
}

type balanceResponse struct {
	TotalIncome   money.Amount `json:"total_income"`
	TotalExpenses money.Amount `json:"total_expenses"`
	Balance       money.Amount `json:"balance"`
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Balance(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, balanceResponse{
		TotalIncome:   b.Income,
		TotalExpenses: b.Expense,
		Balance:       b.Balance,
	})
}

type monthlyResponse struct {
	Year         int                   `json:"year"`
	Month        int                   `json:"month"`
	Income       money.Amount          `json:"income"`
	Expenses     money.Amount          `json:"expenses"`
	Balance      money.Amount          `json:"balance"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	summary, err := h.svc.MonthlySummary(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidMonth) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, monthlyResponse{
		Year:         summary.Year,
		Month:        summary.Month,
		Income:       summary.Income,
		Expenses:     summary.Expense,
		Balance:      summary.Balance,
		Transactions: toResponseList(summary.Transactions),
	})
}

type categoryTotalsResponse struct {
	ExpenseCategories map[string]money.Amount `json:"expense_categories"`
	IncomeCategories  map[string]money.Amount `json:"income_categories"`
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.CategoryTotals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, categoryTotalsResponse{
		ExpenseCategories: totals.Expense,
		IncomeCategories:  totals.Income,
	})
}

type transactionResponse struct {
	ID          int64            `json:"id"`
	Type        transaction.Type `json:"type"`
	Amount      money.Amount     `json:"amount"`
	Date        string           `json:"date"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = transactionResponse{
			ID:          tx.ID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Date:        tx.Date.Format(time.DateOnly),
			Category:    tx.Category,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		}
	}

	return resp
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
