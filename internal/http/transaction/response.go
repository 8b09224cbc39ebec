package transaction

import (
	"time"

	"moneytrack/internal/money"
	"moneytrack/internal/transaction"
)

type transactionResponse struct {
	ID          int64            `json:"id"`
	Type        transaction.Type `json:"type"`
	Amount      money.Amount     `json:"amount"`
	Date        string           `json:"date"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Type:        tx.Type,
		Amount:      tx.Amount,
		Date:        tx.Date.Format(time.DateOnly),
		Category:    tx.Category,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
