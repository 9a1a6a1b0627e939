package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is owned by exactly one user. Its balance is stored as supplied and
// is never derived from transactions.
type Account struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}
