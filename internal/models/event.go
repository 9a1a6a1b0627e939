package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionEventType string

const (
	TransactionCreated TransactionEventType = "transaction.created"
	TransactionUpdated TransactionEventType = "transaction.updated"
	TransactionDeleted TransactionEventType = "transaction.deleted"
)

// TransactionEvent is published after a transaction write commits.
type TransactionEvent struct {
	Type          TransactionEventType `json:"type"`
	TransactionID int64                `json:"transaction_id"`
	UserID        int64                `json:"user_id"`
	AccountID     int64                `json:"account_id"`
	Amount        decimal.Decimal      `json:"amount"`
	IsDebit       bool                 `json:"is_debit"`
	Category      TransactionCategory  `json:"category"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

func NewTransactionEvent(eventType TransactionEventType, tx *Transaction, at time.Time) TransactionEvent {
	return TransactionEvent{
		Type:          eventType,
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		AccountID:     tx.AccountID,
		Amount:        tx.Amount,
		IsDebit:       tx.IsDebit,
		Category:      tx.Category,
		OccurredAt:    at.UTC(),
	}
}

// Key partitions events by account so one account's history stays ordered.
func (e TransactionEvent) Key() string {
	return strconv.FormatInt(e.AccountID, 10)
}
