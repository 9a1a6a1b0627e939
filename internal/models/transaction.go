package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionCategory string

const (
	CategoryFood          TransactionCategory = "food"
	CategoryTransport     TransactionCategory = "transport"
	CategoryUtilities     TransactionCategory = "utilities"
	CategoryShopping      TransactionCategory = "shopping"
	CategoryEntertainment TransactionCategory = "entertainment"
	CategoryHealthcare    TransactionCategory = "healthcare"
	CategoryEducation     TransactionCategory = "education"
	CategorySalary        TransactionCategory = "salary"
	CategoryTransfer      TransactionCategory = "transfer"
	CategoryOther         TransactionCategory = "other"
)

// DefaultCategory is assigned when a transaction is created without one.
const DefaultCategory = CategoryOther

var categories = []TransactionCategory{
	CategoryFood, CategoryTransport, CategoryUtilities, CategoryShopping, CategoryEntertainment,
	CategoryHealthcare, CategoryEducation, CategorySalary, CategoryTransfer, CategoryOther,
}

func Categories() []TransactionCategory {
	out := make([]TransactionCategory, len(categories))
	copy(out, categories)
	return out
}

func (c TransactionCategory) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// AccountView is the slice of the owning account carried with a transaction.
type AccountView struct {
	ID      int64           `db:"account_id"`
	Balance decimal.Decimal `db:"account_balance"`
}

type Transaction struct {
	ID        int64               `db:"id"`
	UserID    int64               `db:"user_id"`
	AccountID int64               `db:"account_id"`
	Amount    decimal.Decimal     `db:"amount"`
	IsDebit   bool                `db:"is_debit"`
	Category  TransactionCategory `db:"category"`
	CreatedAt time.Time           `db:"created_at"`
	Account   AccountView
}

// TransactionPatch describes a partial update. Nil fields are left unchanged.
// The debit flag is not patchable.
type TransactionPatch struct {
	Amount   *decimal.Decimal
	Category *TransactionCategory
}

// Apply returns a copy of tx with every present patch field written over it.
func (p TransactionPatch) Apply(tx Transaction) Transaction {
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Category != nil {
		tx.Category = *p.Category
	}
	return tx
}

// KeepsAmount reports whether the patch resubmits the current amount unchanged.
// Such a patch is not written at all, whatever else it carries.
func (p TransactionPatch) KeepsAmount(current decimal.Decimal) bool {
	return p.Amount != nil && p.Amount.Equal(current)
}
