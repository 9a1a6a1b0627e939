package service

import (
	"context"

	"finance-api/internal/models"
)

// The stores below are satisfied by the postgres repositories.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Account, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Transaction, error)
	ListByAccountID(ctx context.Context, userID, accountID int64) ([]*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, userID, id int64) error
}

// EventPublisher receives transaction change events.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }
