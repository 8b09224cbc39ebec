package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"moneytrack/internal/money"
	"moneytrack/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner and returns a populated Transaction.
// Expected column order: id, type, amount, date, category, description, created_at.
// The amount column is selected as text so it is parsed as exact decimal,
// never through float64.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr, amountStr string

	var desc sql.NullString

	if err := s.Scan(
		&tx.ID, &typeStr, &amountStr, &tx.Date, &tx.Category, &desc, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	amount, err := money.Parse(amountStr)
	if err != nil {
		return nil, fmt.Errorf("parsing stored amount: %w", err)
	}

	tx.Type = transaction.Type(typeStr)
	tx.Amount = amount
	tx.Description = desc.String

	return &tx, nil
}

const selectTransactionColumns = `
	id, type, amount::text, date, category, description, created_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (type, amount, date, category, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Type,
		tx.Amount.String(),
		tx.Date,
		tx.Category,
		tx.Description,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		ORDER BY date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListByMonth filters on a half-open date range so the date index is
// usable; month validation is the caller's concern.
func (s *Store) ListByMonth(ctx context.Context, year, month int) ([]*transaction.Transaction, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE date >= $1 AND date < $2
		ORDER BY date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing transactions by month: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows *sql.Rows) ([]*transaction.Transaction, error) {
	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) SumByType(ctx context.Context) (money.Amount, money.Amount, error) {
	query := `
		SELECT type, SUM(amount)::text
		FROM transactions
		GROUP BY type
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return 0, 0, fmt.Errorf("summing by type: %w", err)
	}
	defer rows.Close()

	var income, expense money.Amount

	for rows.Next() {
		var typeStr, totalStr string
		if err := rows.Scan(&typeStr, &totalStr); err != nil {
			return 0, 0, fmt.Errorf("scanning type total: %w", err)
		}

		total, err := money.Parse(totalStr)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing type total: %w", err)
		}

		switch transaction.Type(typeStr) {
		case transaction.TypeIncome:
			income = total
		case transaction.TypeExpense:
			expense = total
		}
	}

	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("iterating type totals: %w", err)
	}

	return income, expense, nil
}

func (s *Store) SumByTypeAndCategory(ctx context.Context) (map[string]money.Amount, map[string]money.Amount, error) {
	query := `
		SELECT type, category, SUM(amount)::text
		FROM transactions
		GROUP BY type, category
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("summing by category: %w", err)
	}
	defer rows.Close()

	expense := make(map[string]money.Amount)
	income := make(map[string]money.Amount)

	for rows.Next() {
		var typeStr, category, totalStr string
		if err := rows.Scan(&typeStr, &category, &totalStr); err != nil {
			return nil, nil, fmt.Errorf("scanning category total: %w", err)
		}

		total, err := money.Parse(totalStr)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing category total: %w", err)
		}

		switch transaction.Type(typeStr) {
		case transaction.TypeIncome:
			income[category] = total
		case transaction.TypeExpense:
			expense[category] = total
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating category totals: %w", err)
	}

	return expense, income, nil
}
