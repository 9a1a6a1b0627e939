package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsByUser_SQL(t *testing.T) {
	sql, args, err := transactionsByUser(5).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM transactions t JOIN accounts a ON a.id = t.account_id")
	assert.Contains(t, sql, "WHERE t.user_id = $1")
	assert.Contains(t, sql, "ORDER BY t.created_at DESC, t.id DESC")
	assert.Equal(t, []interface{}{int64(5)}, args)
}

func TestTransactionsByAccount_ScopedToUser(t *testing.T) {
	sql, args, err := transactionsByAccount(5, 9).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE t.user_id = $1 AND t.account_id = $2")
	assert.Equal(t, []interface{}{int64(5), int64(9)}, args)
}

func TestSelectTransactions_IncludesAccountView(t *testing.T) {
	sql, _, err := selectTransactions().ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "a.id, a.balance")
}

func TestSelectAccounts_SQL(t *testing.T) {
	sql, _, err := selectAccounts().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, user_id, name, balance, created_at FROM accounts", sql)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23505"}), ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}
