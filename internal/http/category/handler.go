package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"moneytrack/internal/transaction"
)

// Handler serves the fixed category enumerations so clients can populate
// pickers without hardcoding the lists.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type categoryListResponse struct {
	ExpenseCategories []string `json:"expense_categories"`
	IncomeCategories  []string `json:"income_categories"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := categoryListResponse{
		ExpenseCategories: transaction.ExpenseCategories,
		IncomeCategories:  transaction.IncomeCategories,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
