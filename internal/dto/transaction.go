package dto

import (
	"time"

	"finance-api/internal/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /transactions. Pointer fields
// let validation tell an absent value from a zero one.
type CreateTransactionRequest struct {
	Amount    *decimal.Decimal            `json:"amount" validate:"required,money"`
	IsDebit   *bool                       `json:"is_debit" validate:"required"`
	AccountID int64                       `json:"account_id" validate:"required,gt=0"`
	Category  *models.TransactionCategory `json:"category,omitempty" validate:"omitempty,category"`
}

// UpdateTransactionRequest is the body of PATCH /transactions/:id.
// is_debit must be sent but is never written.
type UpdateTransactionRequest struct {
	Amount   *decimal.Decimal            `json:"amount,omitempty" validate:"omitempty,money"`
	IsDebit  *bool                       `json:"is_debit" validate:"required"`
	Category *models.TransactionCategory `json:"category,omitempty" validate:"omitempty,category"`
}

func (r UpdateTransactionRequest) Patch() models.TransactionPatch {
	return models.TransactionPatch{
		Amount:   r.Amount,
		Category: r.Category,
	}
}

type ListTransactionsQuery struct {
	AccountID int64 `query:"account_id" validate:"gte=0"`
}

type AccountOut struct {
	ID      int64           `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

type TransactionResponse struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	IsDebit   bool            `json:"is_debit"`
	AccountID int64           `json:"account_id"`
	UserID    int64           `json:"user_id"`
	Category  string          `json:"category"`
	CreatedAt string          `json:"created_at"`
	Account   AccountOut      `json:"account"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        tx.ID,
		Amount:    tx.Amount,
		IsDebit:   tx.IsDebit,
		AccountID: tx.AccountID,
		UserID:    tx.UserID,
		Category:  string(tx.Category),
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		Account: AccountOut{
			ID:      tx.Account.ID,
			Balance: tx.Account.Balance,
		},
	}
}

func NewTransactionResponses(txs []*models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = NewTransactionResponse(tx)
	}
	return out
}
