package repository

import (
	"context"
	"fmt"

	"finance-api/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// selectTransactions joins each row with the balance of its account.
func selectTransactions() squirrel.SelectBuilder {
	return squirrel.Select(
		"t.id", "t.user_id", "t.account_id", "t.amount", "t.is_debit", "t.category", "t.created_at",
		"a.id", "a.balance",
	).
		From("transactions t").
		Join("accounts a ON a.id = t.account_id").
		PlaceholderFormat(squirrel.Dollar)
}

func transactionsByUser(userID int64) squirrel.SelectBuilder {
	return selectTransactions().
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.created_at DESC", "t.id DESC")
}

func transactionsByAccount(userID, accountID int64) squirrel.SelectBuilder {
	return transactionsByUser(userID).Where(squirrel.Eq{"t.account_id": accountID})
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID, &tx.UserID, &tx.AccountID, &tx.Amount, &tx.IsDebit, &tx.Category, &tx.CreatedAt,
		&tx.Account.ID, &tx.Account.Balance,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Create inserts tx and fills in its id and creation time.
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	sql, args, err := squirrel.Insert("transactions").
		Columns("user_id", "account_id", "amount", "is_debit", "category").
		Values(tx.UserID, tx.AccountID, tx.Amount, tx.IsDebit, tx.Category).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&tx.ID, &tx.CreatedAt); err != nil {
		return fmt.Errorf("insert transaction: %w", translate(err))
	}
	return nil
}

// GetByID loads a transaction regardless of owner; callers enforce ownership.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	sql, args, err := selectTransactions().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	tx, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translate(err)
	}
	return tx, nil
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	return r.list(ctx, transactionsByUser(userID))
}

func (r *TransactionRepository) ListByAccountID(ctx context.Context, userID, accountID int64) ([]*models.Transaction, error) {
	return r.list(ctx, transactionsByAccount(userID, accountID))
}

func (r *TransactionRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// Update writes the mutable fields of tx. Only the owner's row can match.
func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	sql, args, err := squirrel.Update("transactions").
		Set("amount", tx.Amount).
		Set("category", tx.Category).
		Where(squirrel.Eq{"id": tx.ID, "user_id": tx.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", tx.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, id int64) error {
	sql, args, err := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.logger.Debug("Transaction deleted", zap.Int64("transaction_id", id), zap.Int64("user_id", userID))
	return nil
}
