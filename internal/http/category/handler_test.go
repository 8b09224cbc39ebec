package category_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneytrack/internal/http/category"
)

func TestHandler_List(t *testing.T) {
	h := category.NewHandler()
	r := chi.NewRouter()
	h.Routes(r)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ExpenseCategories []string `json:"expense_categories"`
		IncomeCategories  []string `json:"income_categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, []string{"food", "transport", "bills", "shopping", "fun", "other"}, got.ExpenseCategories)
	assert.Equal(t, []string{"salary", "freelance", "gift", "business", "other"}, got.IncomeCategories)
}
