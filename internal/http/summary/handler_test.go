package summary_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"moneytrack/internal/http/summary"
	"moneytrack/internal/money"
	"moneytrack/internal/transaction"
)

func newRouter(t *testing.T, repo *transaction.MockRepository) http.Handler {
	t.Helper()

	h := summary.NewHandler(transaction.NewService(repo))
	r := chi.NewRouter()
	h.Routes(r)

	return r
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		SumByType(gomock.Any()).
		Return(money.Amount(100000), money.Amount(4550), nil)

	rec := get(t, newRouter(t, repo), "/balance")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_income":1000.00,"total_expenses":45.50,"balance":954.50}`, rec.Body.String())
}

func TestHandler_Monthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := []*transaction.Transaction{
		{
			ID:          1,
			Type:        transaction.TypeExpense,
			Amount:      4550,
			Date:        time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
			Category:    "food",
			Description: "Lunch",
			CreatedAt:   time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Type:        transaction.TypeIncome,
			Amount:      100000,
			Date:        time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			Category:    "salary",
			Description: "Paycheck",
			CreatedAt:   time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListByMonth(gomock.Any(), 2025, 11).
		Return(txs, nil)

	rec := get(t, newRouter(t, repo), "/monthly/2025/11")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Year         int               `json:"year"`
		Month        int               `json:"month"`
		Income       json.Number       `json:"income"`
		Expenses     json.Number       `json:"expenses"`
		Balance      json.Number       `json:"balance"`
		Transactions []json.RawMessage `json:"transactions"`
	}

	dec := json.NewDecoder(rec.Body)
	dec.UseNumber()
	require.NoError(t, dec.Decode(&got))

	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, 11, got.Month)
	assert.Equal(t, "1000.00", got.Income.String())
	assert.Equal(t, "45.50", got.Expenses.String())
	assert.Equal(t, "954.50", got.Balance.String())
	assert.Len(t, got.Transactions, 2)
}

func TestHandler_Monthly_EmptyMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListByMonth(gomock.Any(), 2025, 10).
		Return(nil, nil)

	rec := get(t, newRouter(t, repo), "/monthly/2025/10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"year":2025,"month":10,"income":0.00,"expenses":0.00,"balance":0.00,"transactions":[]}`,
		rec.Body.String())
}

func TestHandler_Monthly_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No ListByMonth expectation: month 13 must be rejected before the store.
	repo := transaction.NewMockRepository(ctrl)

	rec := get(t, newRouter(t, repo), "/monthly/2025/13")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Monthly_NonNumericParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	rec := get(t, newRouter(t, repo), "/monthly/abcd/11")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, newRouter(t, repo), "/monthly/2025/nov")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CategoryTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		SumByTypeAndCategory(gomock.Any()).
		Return(
			map[string]money.Amount{"food": 4550},
			map[string]money.Amount{"salary": 100000},
			nil,
		)

	rec := get(t, newRouter(t, repo), "/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"expense_categories":{"food":45.50},"income_categories":{"salary":1000.00}}`,
		rec.Body.String())
}
