package repository

import (
	"context"
	"fmt"

	"finance-api/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AccountRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAccountRepository(db *pgxpool.Pool, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger,
	}
}

func selectAccounts() squirrel.SelectBuilder {
	return squirrel.Select("id", "user_id", "name", "balance", "created_at").
		From("accounts").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	sql, args, err := squirrel.Insert("accounts").
		Columns("user_id", "name", "balance").
		Values(account.UserID, account.Name, account.Balance).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&account.ID, &account.CreatedAt); err != nil {
		return fmt.Errorf("insert account: %w", translate(err))
	}
	return nil
}

// GetByID loads an account regardless of owner.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	sql, args, err := selectAccounts().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var a models.Account
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.UserID, &a.Name, &a.Balance, &a.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AccountRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Account, error) {
	sql, args, err := selectAccounts().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Balance, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, &a)
	}

	return accounts, rows.Err()
}
