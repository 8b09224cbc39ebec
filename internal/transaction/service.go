package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moneytrack/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	ListByMonth(ctx context.Context, year, month int) ([]*Transaction, error)
	SumByType(ctx context.Context) (income, expense money.Amount, err error)
	SumByTypeAndCategory(ctx context.Context) (expense, income map[string]money.Amount, err error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Type        Type
	Amount      money.Amount
	Date        time.Time
	Category    string
	Description string
}

// Create validates the parameters and appends a new transaction to the
// ledger. The storage layer independently enforces the type enumeration
// via its CHECK constraint.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, params.Type)
	}

	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if !ValidCategory(params.Type, params.Category) {
		return nil, fmt.Errorf("%w: %q is not a valid %s category, use one of: %s",
			ErrInvalidCategory, params.Category, params.Type,
			strings.Join(CategoriesFor(params.Type), ", "))
	}

	tx := &Transaction{
		Type:        params.Type,
		Amount:      params.Amount,
		Date:        params.Date,
		Category:    params.Category,
		Description: params.Description,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// List returns every recorded transaction, most recent activity first.
func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

type Balance struct {
	Income  money.Amount
	Expense money.Amount
	Balance money.Amount
}

// Balance recomputes the overall totals from the ledger. Nothing is
// cached; two calls without intervening inserts yield identical results.
func (s *Service) Balance(ctx context.Context) (Balance, error) {
	income, expense, err := s.repo.SumByType(ctx)
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		Income:  income,
		Expense: expense,
		Balance: income - expense,
	}, nil
}

type MonthlySummary struct {
	Year         int
	Month        int
	Income       money.Amount
	Expense      money.Amount
	Balance      money.Amount
	Transactions []*Transaction
}

// MonthlySummary returns the transactions of one calendar month together
// with their totals. The totals are summed over the returned set itself,
// so the list and the figures can never disagree.
func (s *Service) MonthlySummary(ctx context.Context, year, month int) (MonthlySummary, error) {
	if month < 1 || month > 12 {
		return MonthlySummary{}, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	txs, err := s.repo.ListByMonth(ctx, year, month)
	if err != nil {
		return MonthlySummary{}, err
	}

	var income, expense money.Amount

	for _, tx := range txs {
		switch tx.Type {
		case TypeIncome:
			income += tx.Amount
		case TypeExpense:
			expense += tx.Amount
		}
	}

	return MonthlySummary{
		Year:         year,
		Month:        month,
		Income:       income,
		Expense:      expense,
		Balance:      income - expense,
		Transactions: txs,
	}, nil
}

type CategoryTotals struct {
	Expense map[string]money.Amount
	Income  map[string]money.Amount
}

// CategoryTotals returns per-category sums for each transaction type.
// Categories without any transactions are absent from the maps.
func (s *Service) CategoryTotals(ctx context.Context) (CategoryTotals, error) {
	expense, income, err := s.repo.SumByTypeAndCategory(ctx)
	if err != nil {
		return CategoryTotals{}, err
	}

	return CategoryTotals{Expense: expense, Income: income}, nil
}
